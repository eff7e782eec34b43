package comment

import (
	"context"

	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, comment model.Comment) error
	UpdateText(ctx context.Context, commentID string, text string) (storage.UpdateResult, error)
	Delete(ctx context.Context, commentID string) (bool, error)
	FindByEvent(ctx context.Context, eventID string) ([]model.Comment, error)
}

func NewService(repository Repository) *Service {
	return &Service{repository}
}

type Service struct {
	repository Repository
}

// Add stores a new comment under a fresh identifier. A user gets at most one comment
// per event; a second attempt is rejected with a conflict. The uniqueness check is a
// scan over existing comments followed by the insert, the pair is not part of the table
// key so two concurrent adds for the same pair can both pass the check.
func (s Service) Add(ctx context.Context, eventID string, userID string, text string) (model.Comment, error) {
	existing, err := s.repository.FindByEvent(ctx, eventID)
	if err != nil {
		return model.Comment{}, err
	}
	for _, comment := range existing {
		if comment.UserID == userID {
			return model.Comment{}, errdef.NewConflict("User has already commented on this event")
		}
	}

	comment := model.Comment{
		CommentID: uuid.NewString(),
		EventID:   eventID,
		UserID:    userID,
		Text:      text,
	}
	if err := s.repository.Save(ctx, comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// Update rewrites the comment's text. An equal text is a no-op, reported through the
// returned bool as changed=false; an absent comment is not found.
func (s Service) Update(ctx context.Context, commentID string, text string) (changed bool, err error) {
	result, err := s.repository.UpdateText(ctx, commentID, text)
	if err != nil {
		return false, err
	}

	switch result.Outcome {
	case storage.UpdateNotFound:
		return false, errdef.NewNotFound("No such comment exists")
	case storage.UpdateUnchanged:
		return false, nil
	default:
		return true, nil
	}
}

func (s Service) Delete(ctx context.Context, commentID string) error {
	deleted, err := s.repository.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return errdef.NewNotFound("No such comment exists")
	}
	return nil
}

func (s Service) ListByEvent(ctx context.Context, eventID string) ([]model.Comment, error) {
	return s.repository.FindByEvent(ctx, eventID)
}
