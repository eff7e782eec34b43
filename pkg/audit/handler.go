package audit

import (
	"context"
	"net/http"

	"github.com/gatherhub/event-manager/internal/handler"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(service auditService) Handler {
	return Handler{service}
}

type Handler struct {
	service auditService
}

type auditService interface {
	ListLogs(ctx context.Context, limit int, skip int) ([]model.AuditLogEntry, error)
	ListLogsForEvent(ctx context.Context, eventID string, limit int, skip int) ([]model.AuditLogEntry, error)
}

// ListLogs lists audit log entries
func (h Handler) ListLogs(c *gin.Context) {
	// swagger:route GET /logs listLogs
	//
	// List audit log entries
	//
	// Responses:
	//   200: []AuditLogEntry
	//   400: Error
	limit, skip, err := handler.Pagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.service.ListLogs(c.Request.Context(), limit, skip)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListLogsForEvent lists audit log entries for one event
func (h Handler) ListLogsForEvent(c *gin.Context) {
	// swagger:route GET /events/{eventId}/logs listLogsForEvent
	//
	// List audit log entries for an event
	//
	// Responses:
	//   200: []AuditLogEntry
	//   400: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, skip, err := handler.Pagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.service.ListLogsForEvent(c.Request.Context(), eventID, limit, skip)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
