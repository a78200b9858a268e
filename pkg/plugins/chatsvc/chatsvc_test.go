package chatsvc

import (
	"context"
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
		Config:  map[string]interface{}{"bot_token": "xoxb-test"},
	}
}

func webhookRequest(body string) *plugin.WebhookRequest {
	return &plugin.WebhookRequest{
		Method:  http.MethodPost,
		Headers: http.Header{"Content-Type": []string{"application/json"}},
		Body:    []byte(body),
	}
}

func messageEventBody(eventID, channel, user, ts, threadTS, text, botID, subType string) string {
	return fmt.Sprintf(`{
		"type": "event_callback",
		"event_id": %q,
		"event": {
			"type": "message",
			"channel": %q,
			"user": %q,
			"ts": %q,
			"thread_ts": %q,
			"text": %q,
			"bot_id": %q,
			"subtype": %q
		}
	}`, eventID, channel, user, ts, threadTS, text, botID, subType)
}

func TestValidateConfig(t *testing.T) {
	h := New()
	assert.Error(t, h.ValidateConfig(map[string]interface{}{}))
	assert.Error(t, h.ValidateConfig(map[string]interface{}{"bot_token": ""}))
	assert.NoError(t, h.ValidateConfig(map[string]interface{}{"bot_token": "xoxb-1"}))
}

func TestParseWebhookURLVerification(t *testing.T) {
	h := New()
	body := `{"type":"url_verification","challenge":"ch-42","token":"t"}`

	res, err := h.ParseWebhook(context.Background(), webhookRequest(body), testInstance())
	require.NoError(t, err)

	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "url_verification", res.SkipReason)
	require.NotNil(t, res.WebhookResponse)
	assert.Equal(t, http.StatusOK, res.WebhookResponse.Status)
	assert.Equal(t, "ch-42", res.WebhookResponse.Body["challenge"])
}

func TestParseWebhookMessageEvent(t *testing.T) {
	h := New()
	body := messageEventBody("Ev123", "C42", "U7", "1700000000.000100", "", "deploy finished", "", "")

	res, err := h.ParseWebhook(context.Background(), webhookRequest(body), testInstance())
	require.NoError(t, err)

	require.True(t, res.ShouldProcess)
	require.NotNil(t, res.WorkItem)
	assert.Equal(t, "chatsvc:C42", res.WorkItem.SessionKey)
	assert.Equal(t, PluginType, res.WorkItem.Source)
	assert.Equal(t, "1700000000.000100", res.WorkItem.SourceRef)
	assert.Equal(t, "deploy finished", res.WorkItem.Text)
	assert.Equal(t, "U7", res.WorkItem.SenderName)

	// Unthreaded messages anchor their own thread
	assert.Equal(t, "1700000000.000100", res.WorkItem.Payload["thread_ts"])

	require.Len(t, res.IdempotencyKeys, 2)
	assert.Equal(t, "chatsvc:inst-1:C42:1700000000.000100", res.IdempotencyKeys[0])
	assert.Equal(t, "chatsvc:event:Ev123", res.IdempotencyKeys[1])
	assert.Equal(t, res.IdempotencyKeys[0], res.IngressEventID)

	assert.Equal(t, "C42", res.ResponseContext["channel"])
	assert.Equal(t, "1700000000.000100", res.ResponseContext["thread_ts"])

	require.NotNil(t, res.Actor)
	assert.Equal(t, "user", res.Actor.Kind)
	assert.Equal(t, "U7", res.Actor.Handle)
}

func TestParseWebhookThreadedMessageKeepsThread(t *testing.T) {
	h := New()
	body := messageEventBody("Ev1", "C42", "U7", "1700000005.000200", "1700000000.000100", "reply", "", "")

	res, err := h.ParseWebhook(context.Background(), webhookRequest(body), testInstance())
	require.NoError(t, err)

	require.True(t, res.ShouldProcess)
	assert.Equal(t, "1700000000.000100", res.ResponseContext["thread_ts"])
	assert.Equal(t, "1700000005.000200", res.WorkItem.SourceRef)
}

func TestParseWebhookSkipsBotEcho(t *testing.T) {
	h := New()

	res, err := h.ParseWebhook(context.Background(),
		webhookRequest(messageEventBody("Ev1", "C1", "", "1.2", "", "echo", "B99", "")), testInstance())
	require.NoError(t, err)
	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "bot_echo", res.SkipReason)

	// Edits carry a subtype and are skipped the same way
	res, err = h.ParseWebhook(context.Background(),
		webhookRequest(messageEventBody("Ev2", "C1", "U1", "1.2", "", "edited", "", "message_changed")), testInstance())
	require.NoError(t, err)
	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "bot_echo", res.SkipReason)
}

func TestParseWebhookSkipsEmptyMessage(t *testing.T) {
	h := New()
	res, err := h.ParseWebhook(context.Background(),
		webhookRequest(messageEventBody("Ev1", "C1", "U1", "1.2", "", "", "", "")), testInstance())
	require.NoError(t, err)
	assert.False(t, res.ShouldProcess)
	assert.Equal(t, "empty_message", res.SkipReason)
}

func TestParseWebhookMalformedBody(t *testing.T) {
	h := New()
	_, err := h.ParseWebhook(context.Background(), webhookRequest("{nope"), testInstance())
	assert.Error(t, err)
}

func TestPostResponse(t *testing.T) {
	var gotChannel, gotThread, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChannel = r.FormValue("channel")
		gotThread = r.FormValue("thread_ts")
		gotText = r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"channel":"C42","ts":"1700000099.000300"}`)
	}))
	defer srv.Close()

	h := NewWithAPIURL(srv.URL + "/")
	res, err := h.PostResponse(context.Background(), testInstance(), "chat", map[string]interface{}{
		"text": "done!",
		"response_context": map[string]interface{}{
			"channel":   "C42",
			"thread_ts": "1700000000.000100",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1700000099.000300", res.ProviderRef)
	assert.Equal(t, "posted", res.Status)
	assert.Equal(t, "C42", gotChannel)
	assert.Equal(t, "1700000000.000100", gotThread)
	assert.Equal(t, "done!", gotText)
}

func TestPostResponseAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":false,"error":"channel_not_found"}`)
	}))
	defer srv.Close()

	h := NewWithAPIURL(srv.URL + "/")
	_, err := h.PostResponse(context.Background(), testInstance(), "chat", map[string]interface{}{
		"text":    "hello",
		"channel": "C404",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestPostResponseRejectsIncompletePayload(t *testing.T) {
	h := New()

	_, err := h.PostResponse(context.Background(), testInstance(), "chat", map[string]interface{}{
		"channel": "C1",
	})
	assert.Error(t, err, "missing text")

	_, err = h.PostResponse(context.Background(), testInstance(), "chat", map[string]interface{}{
		"text": "hello",
	})
	assert.Error(t, err, "missing channel")
}

func TestReconcileEffectFindsDeliveredMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"messages":[
			{"type":"message","text":"other","ts":"1.1"},
			{"type":"message","text":"done!","ts":"2.2"}
		]}`)
	}))
	defer srv.Close()

	h := NewWithAPIURL(srv.URL + "/")
	ref, delivered, err := h.ReconcileEffect(context.Background(), testInstance(), "chat", map[string]interface{}{
		"text":    "done!",
		"channel": "C42",
	})
	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, "2.2", ref)
}

func TestReconcileEffectMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"messages":[{"type":"message","text":"other","ts":"1.1"}]}`)
	}))
	defer srv.Close()

	h := NewWithAPIURL(srv.URL + "/")
	_, delivered, err := h.ReconcileEffect(context.Background(), testInstance(), "chat", map[string]interface{}{
		"text":    "done!",
		"channel": "C42",
	})
	require.NoError(t, err)
	assert.False(t, delivered)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 120))
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	got := truncate(string(long), 120)
	assert.Len(t, got, 120)
	assert.Equal(t, "...", got[117:])
}
