package member

import (
	"context"
	"net/http"

	"github.com/gatherhub/event-manager/internal/handler"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(memberService memberService) Handler {
	return Handler{memberService}
}

type Handler struct {
	memberService memberService
}

type memberService interface {
	Add(ctx context.Context, eventID string, userID string) (bool, error)
	Remove(ctx context.Context, eventID string, userID string) error
	ListAttendees(ctx context.Context, eventID string) ([]string, error)
	ListEventsForUser(ctx context.Context, userID string) ([]model.Event, error)
}

func pairParameters(c *gin.Context) (eventID string, userID string, err error) {
	eventID, err = handler.GetPathParameter(c, "eventId")
	if err != nil {
		return "", "", err
	}
	userID, err = handler.GetPathParameter(c, "userId")
	if err != nil {
		return "", "", err
	}
	return eventID, userID, nil
}

// Add member
func (h Handler) Add(c *gin.Context) {
	// swagger:route POST /events/{eventId}/members/{userId} addMember
	//
	// Add member to event
	//
	// Adding a pair that already exists is not an error; the response says so and
	// nothing is written.
	//
	// Responses:
	//   200: Message
	//   201: Message
	//   400: Error
	eventID, userID, err := pairParameters(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	added, err := h.memberService.Add(c.Request.Context(), eventID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !added {
		c.JSON(http.StatusOK, gin.H{"message": "Member already exists in the event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Member added to event successfully"})
}

// Remove member
func (h Handler) Remove(c *gin.Context) {
	// swagger:route DELETE /events/{eventId}/members/{userId} removeMember
	//
	// Remove member from event
	//
	// Responses:
	//   200: Message
	//   400: Error
	//   404: Error
	eventID, userID, err := pairParameters(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.memberService.Remove(c.Request.Context(), eventID, userID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed from event successfully"})
}

// ListAttendees members
func (h Handler) ListAttendees(c *gin.Context) {
	// swagger:route GET /events/{eventId}/members listAttendees
	//
	// List user ids attending an event
	//
	// Responses:
	//   200: []string
	//   400: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	userIDs, err := h.memberService.ListAttendees(c.Request.Context(), eventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, userIDs)
}

// ListEventsForUser members
func (h Handler) ListEventsForUser(c *gin.Context) {
	// swagger:route GET /users/{userId}/events listEventsForUser
	//
	// List events a user attends
	//
	// Responses:
	//   200: []Event
	//   400: Error
	userID, err := handler.GetPathParameter(c, "userId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.memberService.ListEventsForUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}
