package group

import (
	"context"
	"net/http"

	"github.com/gatherhub/event-manager/internal/handler"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(groupService groupService) Handler {
	return Handler{groupService}
}

type Handler struct {
	groupService groupService
}

type groupService interface {
	Find(ctx context.Context, groupID string) (model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
}

// Find group
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /groups/{groupId} findGroup
	//
	// Find group
	//
	// Responses:
	//   200: Group
	//   404: Error
	groupID, err := handler.GetPathParameter(c, "groupId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	group, err := h.groupService.Find(c.Request.Context(), groupID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// List groups
func (h Handler) List(c *gin.Context) {
	// swagger:route GET /groups listGroups
	//
	// List groups
	//
	// Responses:
	//   200: []Group
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, groups)
}
