package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/google/uuid"
)

type Repository interface {
	Append(ctx context.Context, entry model.AuditLogEntry) error
	List(ctx context.Context, limit int, skip int) ([]model.AuditLogEntry, error)
	ListByEvent(ctx context.Context, eventID string, limit int, skip int) ([]model.AuditLogEntry, error)
}

func NewService(logger *slog.Logger, repository Repository) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
	}
}

type Service struct {
	logger     *slog.Logger
	repository Repository
}

// Record persists an audit log entry for op if its kind is auditable. The write is
// best-effort: the mutation op describes has already been committed, so a failure to
// append is logged and swallowed rather than surfaced to the caller.
func (s Service) Record(ctx context.Context, op Operation) {
	if !op.Kind.Auditable() {
		return
	}

	entry := model.AuditLogEntry{
		LogID:     uuid.NewString(),
		EventID:   op.EventID,
		Action:    op.Action,
		Details:   op.details(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UserID:    op.UserID,
	}

	if err := s.repository.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "Failed to append audit log entry", "action", op.Action, "eventId", op.EventID, "error", err)
	}
}

func (s Service) ListLogs(ctx context.Context, limit int, skip int) ([]model.AuditLogEntry, error) {
	return s.repository.List(ctx, limit, skip)
}

func (s Service) ListLogsForEvent(ctx context.Context, eventID string, limit int, skip int) ([]model.AuditLogEntry, error) {
	return s.repository.ListByEvent(ctx, eventID, limit, skip)
}
