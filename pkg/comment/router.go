package comment

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, handler Handler) {
	r.POST("/events/:eventId/comments", handler.Add)
	r.GET("/events/:eventId/comments", handler.ListByEvent)
	r.PUT("/comments/:commentId", handler.Update)
	r.DELETE("/comments/:commentId", handler.Delete)
}
