package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/workitem"
)

func seedWorkItem(t *testing.T, f *apiFixture, sessionKey string, status workitem.Status) string {
	t.Helper()
	id := uuid.New().String()
	err := f.db.Client.WorkItem.Create().
		SetID(id).
		SetPluginInstanceID("inst-1").
		SetSessionKey(sessionKey).
		SetSource("chatsvc").
		SetStatus(status).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestListWorkItemsWithFilters(t *testing.T) {
	f := newAPIFixture(t)
	id := seedWorkItem(t, f, "chatsvc:C1", workitem.StatusNew)
	seedWorkItem(t, f, "chatsvc:C2", workitem.StatusCompleted)

	rec := f.do(t, http.MethodGet, "/api/v1/work-items?status=new&session_key=chatsvc:C1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0]["id"])
}

func TestGetWorkItemNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/work-items/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListWorkItemEvents(t *testing.T) {
	f := newAPIFixture(t)
	id := seedWorkItem(t, f, "chatsvc:C1", workitem.StatusNew)

	err := f.db.Client.PluginEvent.Create().
		SetID(uuid.New().String()).
		SetPluginID("inst-1").
		SetKind(pluginevent.KindWebhookIngress).
		SetStatus("accepted").
		SetWorkItemID(id).
		SetCreatedAt(time.Now()).
		Exec(context.Background())
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/work-items/"+id+"/events", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "accepted", rows[0]["status"])
}
