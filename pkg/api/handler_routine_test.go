package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRoutine(t *testing.T, f *apiFixture) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/routines", map[string]interface{}{
		"agent_id":      "agent-1",
		"name":          "new issues",
		"trigger_kind":  "event",
		"rule_json":     `{"field":"eventType","op":"eq","value":"issues"}`,
		"action_prompt": "triage the new issue",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := decodeBody(t, rec)["id"].(string)
	require.True(t, ok)
	return id
}

func TestCreateRoutineEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	id := createTestRoutine(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/routines/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "new issues", body["name"])
	assert.Equal(t, "event", body["trigger_kind"])
	assert.Equal(t, true, body["enabled"])
}

func TestCreateRoutineValidation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/routines", map[string]interface{}{
		"agent_id":      "agent-1",
		"trigger_kind":  "cron",
		"cron_expr":     "not a schedule",
		"action_prompt": "p",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRoutinesFiltersByAgent(t *testing.T) {
	f := newAPIFixture(t)
	createTestRoutine(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/routines?agent_id=agent-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)

	rec = f.do(t, http.MethodGet, "/api/v1/routines?agent_id=other", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}

func TestSetRoutineEnabled(t *testing.T) {
	f := newAPIFixture(t)
	id := createTestRoutine(t, f)

	rec := f.do(t, http.MethodPut, "/api/v1/routines/"+id+"/enabled",
		map[string]interface{}{"enabled": false})
	assert.Equal(t, http.StatusOK, rec.Code)

	row, err := f.db.Client.Routine.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, row.Enabled)
}

func TestRoutineNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/routines/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRoutineRunsEmpty(t *testing.T) {
	f := newAPIFixture(t)
	id := createTestRoutine(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/routines/"+id+"/runs?limit=5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}
