package comment

import (
	"context"
	"net/http"

	"github.com/gatherhub/event-manager/internal/handler"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(commentService commentService) Handler {
	return Handler{commentService}
}

type Handler struct {
	commentService commentService
}

type commentService interface {
	Add(ctx context.Context, eventID string, userID string, text string) (model.Comment, error)
	Update(ctx context.Context, commentID string, text string) (bool, error)
	Delete(ctx context.Context, commentID string) error
	ListByEvent(ctx context.Context, eventID string) ([]model.Comment, error)
}

type addCommentRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// Add comment
func (h Handler) Add(c *gin.Context) {
	// swagger:route POST /events/{eventId}/comments addComment
	//
	// Add comment to event
	//
	// Each user gets at most one comment per event.
	//
	// Responses:
	//   201: Comment
	//   400: Error
	//   409: Error
	//   415: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request addCommentRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), eventID, request.UserID, request.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

type updateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Update comment
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /comments/{commentId} updateComment
	//
	// Update comment text
	//
	// Responses:
	//   200: Message
	//   400: Error
	//   404: Error
	//   415: Error
	commentID, err := handler.GetPathParameter(c, "commentId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request updateCommentRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	changed, err := h.commentService.Update(c.Request.Context(), commentID, request.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !changed {
		c.JSON(http.StatusOK, gin.H{"message": "Comment unchanged"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

// Delete comment
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /comments/{commentId} deleteComment
	//
	// Delete comment
	//
	// Responses:
	//   200: Message
	//   400: Error
	//   404: Error
	commentID, err := handler.GetPathParameter(c, "commentId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ListByEvent comments
func (h Handler) ListByEvent(c *gin.Context) {
	// swagger:route GET /events/{eventId}/comments listComments
	//
	// List comments on an event
	//
	// Responses:
	//   200: []Comment
	//   400: Error
	eventID, err := handler.GetPathParameter(c, "eventId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.commentService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
