package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gatherhub/event-manager/internal/log"
	"github.com/gatherhub/event-manager/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(log.New(slog.NewJSONHandler(&buf, nil)))

	ctx := middleware.NewContextWithCorrelationID(context.Background(), "some-id")
	logger.InfoContext(ctx, "some message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "some message", record["msg"])
	assert.Equal(t, "some-id", record[middleware.RequestLoggerKeyCorrelationID])
}

func TestContextHandlerWithoutCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(log.New(slog.NewJSONHandler(&buf, nil)))

	logger.InfoContext(context.Background(), "some message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, middleware.RequestLoggerKeyCorrelationID)
}
