// Package inttest provides setup functions that create Docker containers for the
// service's external dependencies. Every setup function ensures the container is ready
// before returning, cleans it up after the test and returns a client ready to interact
// with it.
package inttest

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/go-connections/nat"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const natAMQPPort = "5672/tcp"

// SetupRabbitMQ creates a RabbitMQ container with an AMQP channel ready to publish and
// consume messages.
func SetupRabbitMQ(t *testing.T) *AMQP {
	t.Helper()
	ctx := context.TODO()

	container, err := newRabbitMQ(ctx)
	require.NoError(t, err, "failed setting up RabbitMQ")
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx), "failed to terminate RabbitMQ")
	})

	uri, err := container.amqpURI(ctx)
	require.NoError(t, err, "failed to get RabbitMQ AMQP URI")
	conn, err := amqp.Dial(uri)
	require.NoError(t, err, "failed setting up AMQP connection")
	t.Cleanup(func() {
		require.NoError(t, conn.Close(), "failed to close AMQP connection")
	})

	channel, err := conn.Channel()
	require.NoError(t, err, "failed setting up AMQP channel")

	return &AMQP{Channel: channel, URI: uri}
}

// AMQP allows talking to RabbitMQ via the low-level github.com/rabbitmq/amqp091-go
// library.
type AMQP struct {
	Channel *amqp.Channel
	URI     string
}

type rabbitmqContainer struct {
	testcontainers.Container
	user string
	pw   string
}

func (rc *rabbitmqContainer) amqpURI(ctx context.Context) (string, error) {
	ip, err := rc.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := rc.MappedPort(ctx, nat.Port(natAMQPPort))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s", rc.user, rc.pw, ip, port.Port()), nil
}

func newRabbitMQ(ctx context.Context) (*rabbitmqContainer, error) {
	user := "guest"
	pw := "guest"
	req := testcontainers.ContainerRequest{
		Image: "bitnami/rabbitmq:3.13",
		Env: map[string]string{
			"RABBITMQ_USERNAME":                 user,
			"RABBITMQ_PASSWORD":                 pw,
			"RABBITMQ_DISK_FREE_ABSOLUTE_LIMIT": "100MB",
		},
		ExposedPorts: []string{natAMQPPort},
		WaitingFor:   wait.ForLog("Time to start RabbitMQ").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	return &rabbitmqContainer{Container: container, user: user, pw: pw}, nil
}
