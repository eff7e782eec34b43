package event

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, event model.Event) error
	Find(ctx context.Context, eventID string) (*model.Event, error)
	Exists(ctx context.Context, eventID string) (bool, error)
	UpdateField(ctx context.Context, eventID string, field Field, value types.AttributeValue) (storage.UpdateResult, error)
	Replace(ctx context.Context, event model.Event) error
	Delete(ctx context.Context, eventID string) (bool, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByGroup(ctx context.Context, groupID string) ([]model.Event, error)
}

// notifier is the outbound sink told about new events. The contract is best-effort,
// implementations never return an error.
type notifier interface {
	EventCreated(ctx context.Context, event model.Event)
}

func NewService(logger *slog.Logger, repository Repository, notifier notifier) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		notifier:   notifier,
	}
}

type Service struct {
	logger     *slog.Logger
	repository Repository
	notifier   notifier
}

// CreateEvent is the caller-supplied part of a new event. Identity and ownership are
// stamped by Create.
type CreateEvent struct {
	EventName   string
	Description string
	Location    string
	Time        string
	Duration    int
	Capacity    int
	Status      string
	Tag1        string
	Tag2        string
}

// Create stores a new event under a fresh identifier and notifies the outbound sink.
// The notification result is ignored.
func (s Service) Create(ctx context.Context, organizerID string, groupID string, create CreateEvent) (model.Event, error) {
	if create.Time != "" {
		if err := model.ParseTimestamp(create.Time); err != nil {
			return model.Event{}, errdef.NewBadRequest("invalid time format")
		}
	}

	event := model.Event{
		EventID:     uuid.NewString(),
		GroupID:     groupID,
		OrganizerID: organizerID,
		EventName:   create.EventName,
		Description: create.Description,
		Location:    create.Location,
		Time:        create.Time,
		Duration:    create.Duration,
		Capacity:    create.Capacity,
		Status:      create.Status,
		Tag1:        create.Tag1,
		Tag2:        create.Tag2,
	}

	if err := s.repository.Create(ctx, event); err != nil {
		return model.Event{}, err
	}

	s.notifier.EventCreated(ctx, event)

	return event, nil
}

func (s Service) Find(ctx context.Context, eventID string) (model.Event, error) {
	event, err := s.repository.Find(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}
	if event == nil {
		return model.Event{}, errdef.NewNotFound("event %q not found", eventID)
	}
	return *event, nil
}

// Exists reports whether eventID is stored. A store failure degrades to false, so
// callers must tolerate false negatives; mutating operations rely on conditional writes
// rather than this guard.
func (s Service) Exists(ctx context.Context, eventID string) bool {
	exists, err := s.repository.Exists(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "Existence check failed", "eventId", eventID, "error", err)
		return false
	}
	return exists
}

// FieldUpdate is the outcome of a scoped field update. Unchanged reports a no-op: the
// stored value already equaled the requested one and no write took place.
type FieldUpdate struct {
	EventID   string `json:"event_id"`
	Field     Field  `json:"field"`
	Previous  string `json:"previous"`
	Updated   string `json:"updated"`
	Unchanged bool   `json:"-"`
}

// UpdateField writes a single attribute on condition that the event exists and the
// value actually differs. Existence, equality check and write are one conditional store
// operation, so concurrent updates cannot interleave between check and act.
func (s Service) UpdateField(ctx context.Context, eventID string, field Field, value any) (FieldUpdate, error) {
	if field == FieldTime {
		str, ok := value.(string)
		if !ok || model.ParseTimestamp(str) != nil {
			return FieldUpdate{}, errdef.NewBadRequest("invalid time format")
		}
	}

	attr, err := attributevalue.Marshal(value)
	if err != nil {
		return FieldUpdate{}, err
	}

	result, err := s.repository.UpdateField(ctx, eventID, field, attr)
	if err != nil {
		return FieldUpdate{}, err
	}

	switch result.Outcome {
	case storage.UpdateNotFound:
		return FieldUpdate{}, errdef.NewNotFound("event %q not found", eventID)
	case storage.UpdateUnchanged:
		return FieldUpdate{EventID: eventID, Field: field, Unchanged: true}, nil
	default:
		return FieldUpdate{
			EventID:  eventID,
			Field:    field,
			Previous: storage.AttributeString(result.Previous),
			Updated:  storage.AttributeString(attr),
		}, nil
	}
}

// Replace overwrites the full record unconditionally. Unlike the scoped updates there
// is no existence guard and no no-op detection; absent events are created and equal
// writes are repeated. It is the one escape hatch from the guarded update contract and
// is not audited.
func (s Service) Replace(ctx context.Context, eventID string, event model.Event) (model.Event, error) {
	event.EventID = eventID
	if event.Time != "" {
		if err := model.ParseTimestamp(event.Time); err != nil {
			return model.Event{}, errdef.NewBadRequest("invalid time format")
		}
	}

	if err := s.repository.Replace(ctx, event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func (s Service) Delete(ctx context.Context, eventID string) error {
	deleted, err := s.repository.Delete(ctx, eventID)
	if err != nil {
		return err
	}
	if !deleted {
		return errdef.NewNotFound("event %q not found", eventID)
	}
	return nil
}

// List returns a limit-sized slice of all events starting at skip. Scan order is not
// stable across calls; callers get eventual-consistency semantics, not pagination over
// a fixed ordering.
func (s Service) List(ctx context.Context, limit int, skip int) ([]model.Event, error) {
	events, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if skip > len(events) {
		skip = len(events)
	}
	end := len(events)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return events[skip:end], nil
}

func (s Service) ListByGroup(ctx context.Context, groupID string) ([]model.Event, error) {
	return s.repository.FindByGroup(ctx, groupID)
}

// ListByIDs resolves ids to full event records, silently dropping ids that no longer
// exist.
func (s Service) ListByIDs(ctx context.Context, eventIDs []string) ([]model.Event, error) {
	events := make([]model.Event, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		event, err := s.repository.Find(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			continue
		}
		events = append(events, *event)
	}
	return events, nil
}
