package middleware

import (
	"fmt"
	"net/http"

	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the Gin context into HTTP responses.
// Domain-expected outcomes (not found, conflict, duplicate) become soft {"message": ...}
// payloads, validation failures become {"error": ...}, and anything unexpected is
// downgraded to a generic 500 carrying the request correlation id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if c.Writer.Written() {
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errdef.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		} else if errdef.IsDuplicated(err) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		} else if errdef.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		} else if errdef.IsUnsupportedMediaType(err) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		} else {
			id, _ := GetCorrelationID(c.Request.Context())
			message := fmt.Sprintf("something went wrong. We'll look into it if you send us the id %q", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		}
	}
}
