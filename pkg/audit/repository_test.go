package audit

import (
	"context"
	"strconv"
	"testing"

	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestRepositoryAppendAndList(t *testing.T) {
	ctx := context.Background()
	repository := NewRepository(storage.NewInMemoryTable("log_id", ""))

	for i := 0; i < 5; i++ {
		entry := model.AuditLogEntry{
			LogID:     "log-" + strconv.Itoa(i),
			EventID:   "e1",
			Action:    "PUT /events/e1/name",
			Details:   "Event is updated from event_name: a to event_name: b.",
			Timestamp: "2023-06-14T10:00:00Z",
		}
		require.NoError(t, repository.Append(ctx, entry))
	}
	require.NoError(t, repository.Append(ctx, model.AuditLogEntry{
		LogID:   "log-other",
		EventID: "e2",
		Action:  "PUT /events/e2/status",
		Details: "Event is updated from status: open to status: closed.",
	}))

	t.Run("list respects limit and skip", func(t *testing.T) {
		entries, err := repository.List(ctx, 4, 0)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		entries, err = repository.List(ctx, 10, 4)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		entries, err = repository.List(ctx, 10, 100)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("list by event filters on subject", func(t *testing.T) {
		entries, err := repository.ListByEvent(ctx, "e2", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "log-other", entries[0].LogID)
	})
}
