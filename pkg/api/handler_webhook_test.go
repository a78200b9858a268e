package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/plugin"
)

func cannedAccepted(instanceID string) *plugin.ParseResult {
	return &plugin.ParseResult{
		ShouldProcess: true,
		WorkItem: &plugin.WorkItemDraft{
			SessionKey: "canned:room-1",
			Source:     "canned",
			SourceRef:  "room-1",
			Title:      "incoming message",
			Text:       "hello",
		},
		IdempotencyKeys: []string{"canned:" + instanceID + ":msg:1"},
		IngressEventID:  "canned:" + instanceID + ":msg:1",
	}
}

func TestWebhookEndpointAccepted(t *testing.T) {
	f := newAPIFixture(t)
	instID := createTestInstance(t, f)
	f.handler.result = cannedAccepted(instID)

	rec := f.do(t, http.MethodPost, "/hooks/canned/"+instID,
		map[string]interface{}{"text": "hello"})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["created"])
	workItemID, ok := body["workItemId"].(string)
	require.True(t, ok)

	rec = f.do(t, http.MethodGet, "/api/v1/work-items/"+workItemID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "canned:room-1", body["session_key"])
	assert.Equal(t, "incoming message", body["title"])
}

func TestWebhookEndpointUnknownType(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/hooks/nope/inst-1",
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookEndpointUnknownInstance(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/hooks/canned/missing",
		map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookPayloadTooLarge(t *testing.T) {
	f := newAPIFixture(t)
	instID := createTestInstance(t, f)

	payload := bytes.Repeat([]byte("x"), maxWebhookBody+1)
	req := httptest.NewRequest(http.MethodPost, "/hooks/canned/"+instID, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
