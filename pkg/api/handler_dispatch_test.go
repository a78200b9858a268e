package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/dispatch"
)

func seedQueuedDispatch(t *testing.T, f *apiFixture) string {
	t.Helper()
	row, err := f.ledger.Create(context.Background(), dispatch.CreateInput{
		QueueKey:   "chatsvc:C1:agent-1",
		SessionKey: "chatsvc:C1",
		AgentID:    "agent-1",
		InputText:  "hello",
	})
	require.NoError(t, err)
	return row.ID
}

func TestListDispatchesWithFilters(t *testing.T) {
	f := newAPIFixture(t)
	id := seedQueuedDispatch(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/dispatches?status=queued&session_key=chatsvc:C1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0]["id"])

	rec = f.do(t, http.MethodGet, "/api/v1/dispatches?status=failed", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}

func TestGetDispatch(t *testing.T) {
	f := newAPIFixture(t)
	id := seedQueuedDispatch(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/dispatches/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "queued", decodeBody(t, rec)["status"])

	rec = f.do(t, http.MethodGet, "/api/v1/dispatches/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelQueuedDispatch(t *testing.T) {
	f := newAPIFixture(t)
	id := seedQueuedDispatch(t, f)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatches/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancel_requested", decodeBody(t, rec)["status"])

	row, err := f.db.Client.RunDispatch.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusCancelled, row.Status)
}

func TestCancelTerminalDispatchConflicts(t *testing.T) {
	f := newAPIFixture(t)
	id := seedQueuedDispatch(t, f)

	err := f.db.Client.RunDispatch.UpdateOneID(id).
		SetStatus(rundispatch.StatusCompleted).
		Exec(context.Background())
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatches/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPauseRequiresRunningDispatch(t *testing.T) {
	f := newAPIFixture(t)
	id := seedQueuedDispatch(t, f)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatches/"+id+"/pause", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumePausedDispatch(t *testing.T) {
	f := newAPIFixture(t)
	id := seedQueuedDispatch(t, f)
	ctx := context.Background()

	err := f.db.Client.RunDispatch.UpdateOneID(id).
		SetStatus(rundispatch.StatusPaused).
		SetControlState(rundispatch.ControlStatePauseRequested).
		Exec(ctx)
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatches/"+id+"/resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	row, err := f.db.Client.RunDispatch.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusQueued, row.Status)
	assert.Equal(t, rundispatch.ControlStateNormal, row.ControlState)

	// Resuming again is a no-op conflict: the dispatch is queued now.
	rec = f.do(t, http.MethodPost, "/api/v1/dispatches/"+id+"/resume", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
