// Package classification Event Manager Service.
//
// Persistence and audit service for the event-management domain
//
//    Version: 0.1.0
//
//    Consumes:
//      - application/json
//
//    Produces:
//      - application/json
//
// swagger:meta
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gatherhub/event-manager/internal/log"
	"github.com/gatherhub/event-manager/internal/server"
	"github.com/gatherhub/event-manager/pkg/audit"
	"github.com/gatherhub/event-manager/pkg/comment"
	"github.com/gatherhub/event-manager/pkg/config"
	"github.com/gatherhub/event-manager/pkg/event"
	"github.com/gatherhub/event-manager/pkg/group"
	"github.com/gatherhub/event-manager/pkg/member"
	"github.com/gatherhub/event-manager/pkg/notification"
	"github.com/gatherhub/event-manager/pkg/storage"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, nil)
	if os.Getenv("LOG_PRETTY") == "true" {
		handler = log.NewPrettyJSONHandler(os.Stdout, &log.PrettyJSONHandlerOptions{PrettyPrint: true})
	}
	logger := slog.New(log.New(handler))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.ProvideConfig()

	ctx := context.Background()
	client, err := storage.NewDynamoDBClient(ctx, cfg.AWS.Region, cfg.AWS.Endpoint)
	if err != nil {
		return err
	}

	eventTable := storage.NewDynamoDBTable(client, cfg.Tables.Events, "event_id", "")
	groupTable := storage.NewDynamoDBTable(client, cfg.Tables.Groups, "group_id", "")
	commentTable := storage.NewDynamoDBTable(client, cfg.Tables.Comments, "comment_id", "")
	relationTable := storage.NewDynamoDBTable(client, cfg.Tables.Relations, "event_id", "user_id")
	logTable := storage.NewDynamoDBTable(client, cfg.Tables.Logs, "log_id", "")

	connection, err := amqp.Dial(cfg.RabbitMQ.GetUrl())
	if err != nil {
		return err
	}
	defer connection.Close()

	channel, err := connection.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	if _, err := channel.QueueDeclare(notification.QueueEventCreated, false, false, false, false, nil); err != nil {
		return err
	}
	publisher := notification.NewPublisher(logger, channel)

	auditService := audit.NewService(logger, audit.NewRepository(logTable))
	eventService := event.NewService(logger, event.NewRepository(eventTable), publisher)
	groupService := group.NewService(group.NewRepository(groupTable))
	memberService := member.NewService(member.NewRepository(relationTable), eventService)
	commentService := comment.NewService(comment.NewRepository(commentTable))

	engine, err := server.GetEngine(logger, cfg.BasePath, server.Handlers{
		Event:   event.NewHandler(eventService, auditService),
		Group:   group.NewHandler(groupService),
		Member:  member.NewHandler(memberService),
		Comment: comment.NewHandler(commentService),
		Audit:   audit.NewHandler(auditService),
	})
	if err != nil {
		return err
	}

	return engine.Run()
}
