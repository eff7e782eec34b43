package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, handler Handler) {
	r.POST("/groups/:groupId/events", handler.Create)
	r.GET("/groups/:groupId/events", handler.ListByGroup)

	r.GET("/events", handler.List)
	r.GET("/events/:eventId", handler.FindById)
	r.PUT("/events/:eventId", handler.Replace)
	r.DELETE("/events/:eventId", handler.Delete)

	r.PUT("/events/:eventId/name", handler.UpdateName)
	r.PUT("/events/:eventId/location", handler.UpdateLocation)
	r.PUT("/events/:eventId/time", handler.UpdateTime)
	r.PUT("/events/:eventId/capacity", handler.UpdateCapacity)
	r.PUT("/events/:eventId/duration", handler.UpdateDuration)
	r.PUT("/events/:eventId/status", handler.UpdateStatus)
	r.PUT("/events/:eventId/description", handler.UpdateDescription)
	r.PUT("/events/:eventId/tag2", handler.UpdateTag2)
}
