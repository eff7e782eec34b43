package group

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, handler Handler) {
	r.GET("/groups", handler.List)
	r.GET("/groups/:groupId", handler.Find)
}
