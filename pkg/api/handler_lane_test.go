package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent/queuelane"
)

func seedLane(t *testing.T, f *apiFixture, key string) {
	t.Helper()
	err := f.db.Client.QueueLane.Create().
		SetID(key).
		SetSessionKey("chatsvc:C1").
		SetAgentID("agent-1").
		Exec(context.Background())
	require.NoError(t, err)
}

func TestGetLane(t *testing.T) {
	f := newAPIFixture(t)
	seedLane(t, f, "chatsvc:C1:agent-1")

	rec := f.do(t, http.MethodGet, "/api/v1/lanes/chatsvc:C1:agent-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "idle", body["state"])
	assert.Equal(t, "collect", body["mode"])

	rec = f.do(t, http.MethodGet, "/api/v1/lanes/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetLaneMode(t *testing.T) {
	f := newAPIFixture(t)
	seedLane(t, f, "chatsvc:C1:agent-1")
	ctx := context.Background()

	rec := f.do(t, http.MethodPut, "/api/v1/lanes/chatsvc:C1:agent-1/mode",
		map[string]interface{}{"mode": "followup"})
	assert.Equal(t, http.StatusOK, rec.Code)

	row, err := f.db.Client.QueueLane.Get(ctx, "chatsvc:C1:agent-1")
	require.NoError(t, err)
	assert.Equal(t, queuelane.ModeFollowup, row.Mode)

	rec = f.do(t, http.MethodPut, "/api/v1/lanes/chatsvc:C1:agent-1/mode",
		map[string]interface{}{"mode": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/lanes/missing/mode",
		map[string]interface{}{"mode": "followup"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetLanePaused(t *testing.T) {
	f := newAPIFixture(t)
	seedLane(t, f, "chatsvc:C1:agent-1")
	ctx := context.Background()

	rec := f.do(t, http.MethodPut, "/api/v1/lanes/chatsvc:C1:agent-1/paused",
		map[string]interface{}{"paused": true})
	assert.Equal(t, http.StatusOK, rec.Code)

	row, err := f.db.Client.QueueLane.Get(ctx, "chatsvc:C1:agent-1")
	require.NoError(t, err)
	assert.True(t, row.IsPaused)
}
