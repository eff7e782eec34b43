package audit

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, handler Handler) {
	r.GET("/logs", handler.ListLogs)
	r.GET("/events/:eventId/logs", handler.ListLogsForEvent)
}
