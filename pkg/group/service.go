package group

import (
	"context"

	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gatherhub/event-manager/pkg/model"
)

type Repository interface {
	Find(ctx context.Context, groupID string) (*model.Group, error)
	FindAll(ctx context.Context) ([]model.Group, error)
	Save(ctx context.Context, group model.Group) error
}

func NewService(repository Repository) *Service {
	return &Service{repository}
}

type Service struct {
	repository Repository
}

func (s Service) Find(ctx context.Context, groupID string) (model.Group, error) {
	group, err := s.repository.Find(ctx, groupID)
	if err != nil {
		return model.Group{}, err
	}
	if group == nil {
		return model.Group{}, errdef.NewNotFound("group %q not found", groupID)
	}
	return *group, nil
}

func (s Service) List(ctx context.Context) ([]model.Group, error) {
	return s.repository.FindAll(ctx)
}

// Save is used by the seed loader only.
func (s Service) Save(ctx context.Context, group model.Group) error {
	return s.repository.Save(ctx, group)
}
