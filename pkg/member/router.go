package member

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, handler Handler) {
	r.POST("/events/:eventId/members/:userId", handler.Add)
	r.DELETE("/events/:eventId/members/:userId", handler.Remove)
	r.GET("/events/:eventId/members", handler.ListAttendees)
	r.GET("/users/:userId/events", handler.ListEventsForUser)
}
