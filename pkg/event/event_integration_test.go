package event_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherhub/event-manager/internal/server"
	"github.com/gatherhub/event-manager/pkg/audit"
	"github.com/gatherhub/event-manager/pkg/comment"
	"github.com/gatherhub/event-manager/pkg/event"
	"github.com/gatherhub/event-manager/pkg/group"
	"github.com/gatherhub/event-manager/pkg/member"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardNotifier struct{}

func (discardNotifier) EventCreated(context.Context, model.Event) {}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.Default()

	groupService := group.NewService(group.NewRepository(storage.NewInMemoryTable("group_id", "")))
	require.NoError(t, groupService.Save(context.Background(), model.Group{GroupID: "g1", Name: "Hikers"}))

	auditService := audit.NewService(logger, audit.NewRepository(storage.NewInMemoryTable("log_id", "")))
	eventService := event.NewService(logger, event.NewRepository(storage.NewInMemoryTable("event_id", "")), discardNotifier{})
	memberService := member.NewService(member.NewRepository(storage.NewInMemoryTable("event_id", "user_id")), eventService)
	commentService := comment.NewService(comment.NewRepository(storage.NewInMemoryTable("comment_id", "")))

	engine, err := server.GetEngine(logger, "", server.Handlers{
		Event:   event.NewHandler(eventService, auditService),
		Group:   group.NewHandler(groupService),
		Member:  member.NewHandler(memberService),
		Comment: comment.NewHandler(commentService),
		Audit:   audit.NewHandler(auditService),
	})
	require.NoError(t, err)

	ts := httptest.NewServer(engine.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method string, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	request, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("X-User-ID", "u1")

	response, err := ts.Client().Do(request)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, response.Body.Close())
	}()
	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, payload
}

func TestEventLifecycle(t *testing.T) {
	t.Parallel()
	ts := setupServer(t)

	status, body := doJSON(t, ts, http.MethodPost, "/groups/g1/events", gin.H{
		"event_name": "Summer Meetup",
		"location":   "Berlin",
		"capacity":   10,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created model.Event
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.EventID)
	assert.Equal(t, "g1", created.GroupID)
	assert.Equal(t, "u1", created.OrganizerID)

	status, body = doJSON(t, ts, http.MethodGet, "/events/"+created.EventID, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	t.Run("capacity update is guarded and audited", func(t *testing.T) {
		status, body := doJSON(t, ts, http.MethodPut, "/events/"+created.EventID+"/capacity", gin.H{"value": 10})
		require.Equal(t, http.StatusOK, status, string(body))
		assert.JSONEq(t, `{"message": "Event unchanged"}`, string(body))

		status, body = doJSON(t, ts, http.MethodPut, "/events/"+created.EventID+"/capacity", gin.H{"value": 25})
		require.Equal(t, http.StatusOK, status, string(body))
		assert.JSONEq(t, fmt.Sprintf(`{"event_id": %q, "field": "capacity", "previous": "10", "updated": "25"}`, created.EventID), string(body))

		status, body = doJSON(t, ts, http.MethodGet, "/events/"+created.EventID+"/logs", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		var entries []model.AuditLogEntry
		require.NoError(t, json.Unmarshal(body, &entries))
		require.Len(t, entries, 2) // creation plus the one applied update
		details := []string{entries[0].Details, entries[1].Details}
		assert.Contains(t, details, "Event is updated from capacity: 10 to capacity: 25.")
	})

	t.Run("update on missing event", func(t *testing.T) {
		status, body := doJSON(t, ts, http.MethodPut, "/events/missing/capacity", gin.H{"value": 1})
		require.Equal(t, http.StatusNotFound, status, string(body))
	})

	t.Run("malformed time is rejected", func(t *testing.T) {
		status, body := doJSON(t, ts, http.MethodPut, "/events/"+created.EventID+"/time", gin.H{"value": "tomorrow at noon"})
		require.Equal(t, http.StatusBadRequest, status, string(body))
	})

	t.Run("delete", func(t *testing.T) {
		status, body := doJSON(t, ts, http.MethodDelete, "/events/"+created.EventID, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.JSONEq(t, `{"message": "Event deleted"}`, string(body))

		status, _ = doJSON(t, ts, http.MethodDelete, "/events/"+created.EventID, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestMembershipAndComments(t *testing.T) {
	t.Parallel()
	ts := setupServer(t)

	status, body := doJSON(t, ts, http.MethodPost, "/groups/g1/events", gin.H{"event_name": "Summer Meetup"})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created model.Event
	require.NoError(t, json.Unmarshal(body, &created))

	t.Run("membership is idempotent", func(t *testing.T) {
		status, body := doJSON(t, ts, http.MethodPost, "/events/"+created.EventID+"/members/u2", nil)
		require.Equal(t, http.StatusCreated, status, string(body))
		assert.JSONEq(t, `{"message": "Member added to event successfully"}`, string(body))

		status, body = doJSON(t, ts, http.MethodPost, "/events/"+created.EventID+"/members/u2", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.JSONEq(t, `{"message": "Member already exists in the event"}`, string(body))

		status, body = doJSON(t, ts, http.MethodGet, "/users/u2/events", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		var events []model.Event
		require.NoError(t, json.Unmarshal(body, &events))
		require.Len(t, events, 1)
		assert.Equal(t, created.EventID, events[0].EventID)

		status, body = doJSON(t, ts, http.MethodDelete, "/events/"+created.EventID+"/members/u2", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.JSONEq(t, `{"message": "Member removed from event successfully"}`, string(body))

		status, body = doJSON(t, ts, http.MethodDelete, "/events/"+created.EventID+"/members/u2", nil)
		require.Equal(t, http.StatusNotFound, status, string(body))
		assert.JSONEq(t, `{"message": "No such member exists in the event"}`, string(body))
	})

	t.Run("one comment per user per event", func(t *testing.T) {
		status, body := doJSON(t, ts, http.MethodPost, "/events/"+created.EventID+"/comments", gin.H{"user_id": "u2", "text": "count me in"})
		require.Equal(t, http.StatusCreated, status, string(body))
		var comment model.Comment
		require.NoError(t, json.Unmarshal(body, &comment))

		status, body = doJSON(t, ts, http.MethodPost, "/events/"+created.EventID+"/comments", gin.H{"user_id": "u2", "text": "again"})
		require.Equal(t, http.StatusConflict, status, string(body))
		assert.JSONEq(t, `{"message": "User has already commented on this event"}`, string(body))

		status, body = doJSON(t, ts, http.MethodPut, "/comments/"+comment.CommentID, gin.H{"text": "changed my mind"})
		require.Equal(t, http.StatusOK, status, string(body))

		status, body = doJSON(t, ts, http.MethodDelete, "/comments/"+comment.CommentID, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		status, body = doJSON(t, ts, http.MethodPut, "/comments/"+comment.CommentID, gin.H{"text": "too late"})
		require.Equal(t, http.StatusNotFound, status, string(body))
		assert.JSONEq(t, `{"message": "No such comment exists"}`, string(body))
	})
}
