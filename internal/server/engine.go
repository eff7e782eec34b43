package server

import (
	"log/slog"
	"net/http"

	"github.com/gatherhub/event-manager/internal/handler"
	"github.com/gatherhub/event-manager/internal/middleware"
	"github.com/gatherhub/event-manager/pkg/audit"
	"github.com/gatherhub/event-manager/pkg/comment"
	"github.com/gatherhub/event-manager/pkg/event"
	"github.com/gatherhub/event-manager/pkg/group"
	"github.com/gatherhub/event-manager/pkg/member"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Event   event.Handler
	Group   group.Handler
	Member  member.Handler
	Comment comment.Handler
	Audit   audit.Handler
}

func GetEngine(logger *slog.Logger, basePath string, handlers Handlers) (*gin.Engine, error) {
	if err := handler.RegisterValidation(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	router.GET("/health", health)

	event.Routes(router, handlers.Event)
	group.Routes(router, handlers.Group)
	member.Routes(router, handlers.Member)
	comment.Routes(router, handlers.Comment)
	audit.Routes(router, handlers.Audit)

	return r, nil
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
