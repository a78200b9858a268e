package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInstance(t *testing.T, f *apiFixture) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/plugin-instances", map[string]interface{}{
		"type":   "canned",
		"name":   "main",
		"config": map[string]interface{}{"room": "general"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := decodeBody(t, rec)["id"].(string)
	require.True(t, ok)
	return id
}

func TestCreateInstanceEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	id := createTestInstance(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/plugin-instances/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "canned", body["type"])
	assert.Equal(t, "main", body["name"])
}

func TestCreateInstanceUnknownType(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/plugin-instances", map[string]interface{}{
		"type": "nope",
		"name": "main",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListInstancesFiltersByType(t *testing.T) {
	f := newAPIFixture(t)
	createTestInstance(t, f)

	rec := f.do(t, http.MethodGet, "/api/v1/plugin-instances?type=canned", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)

	rec = f.do(t, http.MethodGet, "/api/v1/plugin-instances?type=other", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}

func TestSetInstanceEnabled(t *testing.T) {
	f := newAPIFixture(t)
	id := createTestInstance(t, f)

	rec := f.do(t, http.MethodPut, "/api/v1/plugin-instances/"+id+"/enabled",
		map[string]interface{}{"enabled": false})
	assert.Equal(t, http.StatusOK, rec.Code)

	row, err := f.db.Client.PluginInstance.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, row.Enabled)
}

func TestInstanceNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/plugin-instances/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
