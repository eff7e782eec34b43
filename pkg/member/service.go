package member

import (
	"context"

	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gatherhub/event-manager/pkg/model"
)

type Repository interface {
	Add(ctx context.Context, eventID string, userID string) (bool, error)
	Remove(ctx context.Context, eventID string, userID string) (bool, error)
	FindByEvent(ctx context.Context, eventID string) ([]model.EventMemberRelation, error)
	FindByUser(ctx context.Context, userID string) ([]model.EventMemberRelation, error)
}

// eventLister resolves event ids to full records; membership only stores the pairs.
type eventLister interface {
	ListByIDs(ctx context.Context, eventIDs []string) ([]model.Event, error)
}

func NewService(repository Repository, events eventLister) *Service {
	return &Service{
		repository: repository,
		events:     events,
	}
}

type Service struct {
	repository Repository
	events     eventLister
}

// Add records the membership pair. The returned bool reports whether the pair was newly
// added; false means it already existed, which is not an error so the operation stays
// idempotent under retries. Insertion is a single conditional write, concurrent adds of
// the same pair cannot both succeed.
func (s Service) Add(ctx context.Context, eventID string, userID string) (bool, error) {
	return s.repository.Add(ctx, eventID, userID)
}

// Remove deletes the membership pair. An absent pair is reported as not found.
func (s Service) Remove(ctx context.Context, eventID string, userID string) error {
	removed, err := s.repository.Remove(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return errdef.NewNotFound("No such member exists in the event")
	}
	return nil
}

// ListAttendees returns the user ids attending eventID.
func (s Service) ListAttendees(ctx context.Context, eventID string) ([]string, error) {
	relations, err := s.repository.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(relations))
	for _, relation := range relations {
		userIDs = append(userIDs, relation.UserID)
	}
	return userIDs, nil
}

// ListEventsForUser resolves the user's membership pairs to full event records. Events
// deleted since the pair was written are dropped from the result.
func (s Service) ListEventsForUser(ctx context.Context, userID string) ([]model.Event, error) {
	relations, err := s.repository.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]string, 0, len(relations))
	for _, relation := range relations {
		eventIDs = append(eventIDs, relation.EventID)
	}
	return s.events.ListByIDs(ctx, eventIDs)
}
