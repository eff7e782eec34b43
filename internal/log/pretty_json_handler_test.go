package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJSONHandlerIndentsOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPrettyJSONHandler(buf, &PrettyJSONHandlerOptions{PrettyPrint: true}))

	logger.Info("Event stored", "eventId", "e1")

	out := buf.String()
	assert.Greater(t, strings.Count(out, "\n"), 1, "expected indented multi-line output")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Event stored", record["msg"])
	assert.Equal(t, "e1", record["eventId"])
}

func TestPrettyJSONHandlerDefaultsToCompactOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPrettyJSONHandler(buf, nil))

	logger.Info("Event stored", "eventId", "e1")

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
