package repohook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/plugin"
)

func testInstance() *plugin.Instance {
	return &plugin.Instance{
		ID:      "inst-1",
		Type:    PluginType,
		Name:    "main",
		Enabled: true,
		Config:  map[string]interface{}{"api_token": "ghp_test"},
	}
}

func webhookRequest(eventType, deliveryID, body string) *plugin.WebhookRequest {
	headers := http.Header{}
	headers.Set("X-GitHub-Event", eventType)
	if deliveryID != "" {
		headers.Set("X-GitHub-Delivery", deliveryID)
	}
	return &plugin.WebhookRequest{
		Method:  http.MethodPost,
		Headers: headers,
		Body:    []byte(body),
	}
}

func TestValidateConfig(t *testing.T) {
	h := New()
	assert.Error(t, h.ValidateConfig(map[string]interface{}{}))
	assert.NoError(t, h.ValidateConfig(map[string]interface{}{"api_token": "ghp_1"}))
}

func TestParseWebhookIssueComment(t *testing.T) {
	h := New()
	body := `{
		"action": "created",
		"repository": {"full_name": "acme/widgets"},
		"issue": {"number": 12},
		"comment": {"id": 9001, "body": "please take a look"},
		"sender": {"login": "alice", "type": "User"}
	}`

	res, err := h.ParseWebhook(context.Background(), webhookRequest("issue_comment", "dlv-1", body), testInstance())
	require.NoError(t, err)

	require.True(t, res.ShouldProcess)
	require.NotNil(t, res.WorkItem)
	assert.Equal(t, "repo:acme/widgets#12", res.WorkItem.SessionKey)
	assert.Equal(t, "please take a look", res.WorkItem.Text)
	assert.Equal(t, "alice", res.WorkItem.SenderName)
	assert.Equal(t, "dlv-1", res.WorkItem.SourceRef)

	require.Len(t, res.IdempotencyKeys, 2)
	assert.Equal(t, "repohook:inst-1:comment:9001", res.IdempotencyKeys[0])
	assert.Equal(t, "repohook:delivery:dlv-1", res.IdempotencyKeys[1])

	assert.Equal(t, "acme/widgets", res.ResponseContext["repo"])
	assert.Equal(t, 12, res.ResponseContext["number"])
	assert.Equal(t, "user", res.Actor.Kind)
}

func TestParseWebhookIssueCommentSkipsBots(t *testing.T) {
	h := New()
	body := `{
		"action": "created",
		"repository": {"full_name": "acme/widgets"},
		"issue": {"number": 12},
		"comment": {"id": 1, "body": "automated"},
		"sender": {"login": "ci[bot]", "type": "Bot"}
	}`

	res, err := h.ParseWebhook(context.Background(), webhookRequest("issue_comment", "dlv-1", body), testInstance())
	require.NoError(t, err)
	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "bot_echo", res.SkipReason)
}

func TestParseWebhookIssueCommentIgnoresEdits(t *testing.T) {
	h := New()
	body := `{
		"action": "edited",
		"repository": {"full_name": "acme/widgets"},
		"issue": {"number": 12},
		"comment": {"id": 1, "body": "edited text"},
		"sender": {"login": "alice"}
	}`

	res, err := h.ParseWebhook(context.Background(), webhookRequest("issue_comment", "", body), testInstance())
	require.NoError(t, err)
	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "unsupported_event_type", res.SkipReason)
}

func TestParseWebhookIssueOpened(t *testing.T) {
	h := New()
	body := `{
		"action": "opened",
		"repository": {"full_name": "acme/widgets"},
		"issue": {"id": 555, "number": 3, "title": "crash on startup", "body": "stacktrace below"},
		"sender": {"login": "bob"}
	}`

	res, err := h.ParseWebhook(context.Background(), webhookRequest("issues", "dlv-2", body), testInstance())
	require.NoError(t, err)

	require.True(t, res.ShouldProcess)
	assert.Equal(t, "repo:acme/widgets#3", res.WorkItem.SessionKey)
	assert.Equal(t, "crash on startup", res.WorkItem.Title)
	assert.Equal(t, "crash on startup\n\nstacktrace below", res.WorkItem.Text)
	assert.Equal(t, "repohook:inst-1:issue:555", res.IngressEventID)
}

func TestParseWebhookPullRequestOpened(t *testing.T) {
	h := New()
	body := `{
		"action": "opened",
		"repository": {"full_name": "acme/widgets"},
		"pull_request": {"id": 777, "number": 8, "title": "fix leak", "body": ""},
		"sender": {"login": "carol"}
	}`

	res, err := h.ParseWebhook(context.Background(), webhookRequest("pull_request", "dlv-3", body), testInstance())
	require.NoError(t, err)

	require.True(t, res.ShouldProcess)
	assert.Equal(t, "repo:acme/widgets#8", res.WorkItem.SessionKey)
	assert.Equal(t, "fix leak", res.WorkItem.Text, "empty body must not append a separator")
	assert.Equal(t, "repohook:inst-1:pr:777", res.IngressEventID)
}

func TestParseWebhookUnsupportedEvent(t *testing.T) {
	h := New()
	res, err := h.ParseWebhook(context.Background(), webhookRequest("push", "dlv-4", `{"ref":"refs/heads/main"}`), testInstance())
	require.NoError(t, err)
	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "unsupported_event_type", res.SkipReason)
}

func TestParseWebhookMissingEventHeader(t *testing.T) {
	h := New()
	req := &plugin.WebhookRequest{Method: http.MethodPost, Headers: http.Header{}, Body: []byte("{}")}
	_, err := h.ParseWebhook(context.Background(), req, testInstance())
	assert.Error(t, err)
}

func TestParseWebhookMalformedBody(t *testing.T) {
	h := New()
	_, err := h.ParseWebhook(context.Background(), webhookRequest("issues", "dlv", "{nope"), testInstance())
	assert.Error(t, err)
}

func TestPostResponse(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var payload struct {
			Body string `json:"body"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotBody = payload.Body
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 31337, "body": "fixed in v2"}`)
	}))
	defer srv.Close()

	h := NewWithBaseURL(srv.URL + "/")
	res, err := h.PostResponse(context.Background(), testInstance(), "code", map[string]interface{}{
		"text": "fixed in v2",
		"response_context": map[string]interface{}{
			"repo":   "acme/widgets",
			"number": float64(12), // JSON round-trip delivers numbers as float64
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "31337", res.ProviderRef)
	assert.Equal(t, "posted", res.Status)
	assert.Contains(t, gotPath, "/repos/acme/widgets/issues/12/comments")
	assert.Equal(t, "fixed in v2", gotBody)
}

func TestPostResponseRejectsIncompletePayload(t *testing.T) {
	h := New()

	_, err := h.PostResponse(context.Background(), testInstance(), "code", map[string]interface{}{
		"repo": "acme/widgets", "number": 1,
	})
	assert.Error(t, err, "missing text")

	_, err = h.PostResponse(context.Background(), testInstance(), "code", map[string]interface{}{
		"text": "hello",
	})
	assert.Error(t, err, "missing target")

	_, err = h.PostResponse(context.Background(), testInstance(), "code", map[string]interface{}{
		"text": "hello", "repo": "not-owner-name", "number": 1,
	})
	assert.Error(t, err, "malformed repo")
}

func TestSplitRepo(t *testing.T) {
	owner, name, err := splitRepo("acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", name)

	for _, bad := range []string{"", "acme", "acme/", "/widgets"} {
		_, _, err := splitRepo(bad)
		assert.Error(t, err, bad)
	}
}

func TestIntValue(t *testing.T) {
	assert.Equal(t, 3, intValue(3))
	assert.Equal(t, 3, intValue(int64(3)))
	assert.Equal(t, 3, intValue(float64(3)))
	assert.Equal(t, 0, intValue("3"))
	assert.Equal(t, 0, intValue(nil))
}
