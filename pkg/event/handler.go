package event

import (
	"context"
	"net/http"

	"github.com/gatherhub/event-manager/internal/handler"
	"github.com/gatherhub/event-manager/pkg/audit"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService, recorder auditRecorder) Handler {
	return Handler{
		eventService: eventService,
		recorder:     recorder,
	}
}

type Handler struct {
	eventService eventService
	recorder     auditRecorder
}

type eventService interface {
	Create(ctx context.Context, organizerID string, groupID string, create CreateEvent) (model.Event, error)
	Find(ctx context.Context, eventID string) (model.Event, error)
	UpdateField(ctx context.Context, eventID string, field Field, value any) (FieldUpdate, error)
	Replace(ctx context.Context, eventID string, event model.Event) (model.Event, error)
	Delete(ctx context.Context, eventID string) error
	List(ctx context.Context, limit int, skip int) ([]model.Event, error)
	ListByGroup(ctx context.Context, groupID string) ([]model.Event, error)
}

type auditRecorder interface {
	Record(ctx context.Context, op audit.Operation)
}

func action(c *gin.Context) string {
	return c.Request.Method + " " + c.Request.URL.Path
}

type createEventRequest struct {
	EventName   string `json:"event_name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Time        string `json:"time" binding:"omitempty,iso8601"`
	Duration    int    `json:"duration" binding:"gte=0"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	Status      string `json:"status"`
	Tag1        string `json:"tag_1"`
	Tag2        string `json:"tag_2"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /groups/{groupId}/events createEvent
	//
	// Create event
	//
	// Responses:
	//   201: Event
	//   400: Error
	//   415: Error
	groupID, err := handler.GetPathParameter(c, "groupId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request createEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	userID := handler.ActingUserID(c)
	event, err := h.eventService.Create(ctx, userID, groupID, CreateEvent{
		EventName:   request.EventName,
		Description: request.Description,
		Location:    request.Location,
		Time:        request.Time,
		Duration:    request.Duration,
		Capacity:    request.Capacity,
		Status:      request.Status,
		Tag1:        request.Tag1,
		Tag2:        request.Tag2,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.recorder.Record(ctx, audit.Operation{
		Kind:    audit.KindEventCreated,
		Action:  action(c),
		EventID: event.EventID,
		UserID:  userID,
		Created: &event,
	})

	c.JSON(http.StatusCreated, event)
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /events/{eventId} findEvent
	//
	// Find event
	//
	// Responses:
	//   200: Event
	//   404: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Find(c.Request.Context(), eventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// List events
func (h Handler) List(c *gin.Context) {
	// swagger:route GET /events listEvents
	//
	// List events
	//
	// Responses:
	//   200: []Event
	//   400: Error
	limit, skip, err := handler.Pagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.eventService.List(c.Request.Context(), limit, skip)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// ListByGroup events
func (h Handler) ListByGroup(c *gin.Context) {
	// swagger:route GET /groups/{groupId}/events listEventsByGroup
	//
	// List events belonging to a group
	//
	// Responses:
	//   200: []Event
	//   400: Error
	groupID, err := handler.GetPathParameter(c, "groupId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.eventService.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

type replaceEventRequest struct {
	GroupID     string `json:"group_id" binding:"required"`
	OrganizerID string `json:"organizer_id" binding:"required"`
	EventName   string `json:"event_name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Time        string `json:"time" binding:"omitempty,iso8601"`
	Duration    int    `json:"duration" binding:"gte=0"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	Status      string `json:"status"`
	Tag1        string `json:"tag_1"`
	Tag2        string `json:"tag_2"`
}

// Replace event
func (h Handler) Replace(c *gin.Context) {
	// swagger:route PUT /events/{eventId} replaceEvent
	//
	// Replace event
	//
	// Overwrites the full record unconditionally; no existence guard, no no-op
	// detection, no audit entry.
	//
	// Responses:
	//   200: Event
	//   400: Error
	//   415: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request replaceEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Replace(c.Request.Context(), eventID, model.Event{
		GroupID:     request.GroupID,
		OrganizerID: request.OrganizerID,
		EventName:   request.EventName,
		Description: request.Description,
		Location:    request.Location,
		Time:        request.Time,
		Duration:    request.Duration,
		Capacity:    request.Capacity,
		Status:      request.Status,
		Tag1:        request.Tag1,
		Tag2:        request.Tag2,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{eventId} deleteEvent
	//
	// Delete event
	//
	// Responses:
	//   200: Message
	//   404: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), eventID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

type updateStringRequest struct {
	Value string `json:"value" binding:"required"`
}

type updateTimeRequest struct {
	Value string `json:"value" binding:"required,iso8601"`
}

type updateIntRequest struct {
	Value *int `json:"value" binding:"required,gte=0"`
}

// UpdateName event
func (h Handler) UpdateName(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/name updateEventName
	h.updateStringField(c, FieldName)
}

// UpdateLocation event
func (h Handler) UpdateLocation(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/location updateEventLocation
	h.updateStringField(c, FieldLocation)
}

// UpdateTime event
func (h Handler) UpdateTime(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/time updateEventTime
	var request updateTimeRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}
	h.updateField(c, FieldTime, request.Value)
}

// UpdateCapacity event
func (h Handler) UpdateCapacity(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/capacity updateEventCapacity
	h.updateIntField(c, FieldCapacity)
}

// UpdateDuration event
func (h Handler) UpdateDuration(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/duration updateEventDuration
	h.updateIntField(c, FieldDuration)
}

// UpdateStatus event
func (h Handler) UpdateStatus(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/status updateEventStatus
	h.updateStringField(c, FieldStatus)
}

// UpdateDescription event
func (h Handler) UpdateDescription(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/description updateEventDescription
	h.updateStringField(c, FieldDescription)
}

// UpdateTag2 event
func (h Handler) UpdateTag2(c *gin.Context) {
	// swagger:route PUT /events/{eventId}/tag2 updateEventTag2
	h.updateStringField(c, FieldTag2)
}

func (h Handler) updateStringField(c *gin.Context, field Field) {
	var request updateStringRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}
	h.updateField(c, field, request.Value)
}

func (h Handler) updateIntField(c *gin.Context, field Field) {
	var request updateIntRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}
	h.updateField(c, field, *request.Value)
}

func (h Handler) updateField(c *gin.Context, field Field, value any) {
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	update, err := h.eventService.UpdateField(ctx, eventID, field, value)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if update.Unchanged {
		c.JSON(http.StatusOK, gin.H{"message": "Event unchanged"})
		return
	}

	h.recorder.Record(ctx, audit.Operation{
		Kind:    audit.KindFieldUpdated,
		Action:  action(c),
		EventID: eventID,
		UserID:  handler.ActingUserID(c),
		Change: &audit.Change{
			Field:    string(update.Field),
			Previous: update.Previous,
			Updated:  update.Updated,
		},
	})

	c.JSON(http.StatusOK, update)
}
