package handler

import (
	"github.com/gatherhub/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
)

// GetPathParameter returns the named path parameter. Identifiers are opaque strings, the
// only invalid value is an empty one.
func GetPathParameter(c *gin.Context, parameter string) (string, error) {
	value := c.Param(parameter)
	if value == "" {
		return "", errdef.NewBadRequest("missing path parameter %q", parameter)
	}
	return value, nil
}

// ActingUserID returns the best-effort identity of the caller. The routing layer in
// front of this service forwards it as a header; an empty value is acceptable.
func ActingUserID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
