package ingress

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/idempotencykey"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/database"
	"github.com/hooklinehq/hookline/pkg/events"
	"github.com/hooklinehq/hookline/pkg/hooks"
	"github.com/hooklinehq/hookline/pkg/plugin"
	testdb "github.com/hooklinehq/hookline/test/database"
)

// scriptedHandler returns a canned parse result, so router behavior can be
// tested without a real provider payload.
type scriptedHandler struct {
	plugin.Base
	result *plugin.ParseResult
	err    error
}

func (h *scriptedHandler) Type() string { return "scripted" }

func (h *scriptedHandler) ParseWebhook(_ context.Context, _ *plugin.WebhookRequest, _ *plugin.Instance) (*plugin.ParseResult, error) {
	return h.result, h.err
}

type routerFixture struct {
	db           *database.Client
	handler      *scriptedHandler
	registry     *plugin.Registry
	hookRegistry *hooks.Registry
	router       *Router
}

func newRouterFixture(t *testing.T) *routerFixture {
	db := testdb.NewTestClient(t)

	handler := &scriptedHandler{}
	registry := plugin.NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, registry.Register(handler))

	err := db.Client.PluginInstance.Create().
		SetID("inst-1").
		SetType("scripted").
		SetName("main").
		SetConfig(map[string]interface{}{}).
		Exec(context.Background())
	require.NoError(t, err)

	recorder := events.NewRecorder(db.Client, db.DB())
	hookRegistry := hooks.NewRegistry()
	hookDispatcher := hooks.NewDispatcher(hookRegistry, recorder, nil, time.Second)

	r := NewRouter(db.Client, registry, plugin.PlainDecoder{}, hookDispatcher, recorder, nil, nil)
	return &routerFixture{
		db:           db,
		handler:      handler,
		registry:     registry,
		hookRegistry: hookRegistry,
		router:       r,
	}
}

func acceptedResult() *plugin.ParseResult {
	return &plugin.ParseResult{
		ShouldProcess: true,
		WorkItem: &plugin.WorkItemDraft{
			SessionKey: "scripted:room-1",
			Source:     "scripted",
			SourceRef:  "room-1",
			Title:      "incoming message",
			Text:       "hello",
			Payload:    map[string]interface{}{"event_type": "message"},
		},
		IdempotencyKeys: []string{"scripted:inst-1:msg:1", "scripted:delivery:d-1"},
		IngressEventID:  "scripted:inst-1:msg:1",
	}
}

func webhookReq() *plugin.WebhookRequest {
	return &plugin.WebhookRequest{Method: http.MethodPost, Body: []byte(`{}`)}
}

func requireIngressEvent(t *testing.T, client *ent.Client, status string) *ent.PluginEvent {
	t.Helper()
	var row *ent.PluginEvent
	require.Eventually(t, func() bool {
		var err error
		row, err = client.PluginEvent.Query().
			Where(
				pluginevent.KindEQ(pluginevent.KindWebhookIngress),
				pluginevent.StatusEQ(status),
			).
			First(context.Background())
		return err == nil
	}, 5*time.Second, 10*time.Millisecond, "expected a %s ingress event", status)
	return row
}

func TestRouteWebhookAccepted(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = acceptedResult()

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusCreated, res.Status)
	require.NotEmpty(t, res.WorkItemID)
	assert.Equal(t, true, res.Body["created"])
	assert.Equal(t, res.WorkItemID, res.Body["workItemId"])

	item, err := f.db.Client.WorkItem.Get(context.Background(), res.WorkItemID)
	require.NoError(t, err)
	assert.Equal(t, "scripted:room-1", item.SessionKey)
	assert.Equal(t, "scripted", item.Source)
	assert.Equal(t, "incoming message", item.Title)

	keys, err := f.db.Client.IdempotencyKey.Query().
		Where(idempotencykey.WorkItemIDEQ(res.WorkItemID)).
		All(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	evt := requireIngressEvent(t, f.db.Client, events.IngressAccepted)
	assert.Equal(t, res.WorkItemID, evt.WorkItemID)
}

func TestRouteWebhookDuplicateReturnsExisting(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = acceptedResult()
	ctx := context.Background()

	first := f.router.RouteWebhook(ctx, "scripted", "inst-1", webhookReq())
	require.Equal(t, http.StatusCreated, first.Status)

	// Same idempotency keys: replay maps to the original work item.
	second := f.router.RouteWebhook(ctx, "scripted", "inst-1", webhookReq())
	assert.Equal(t, http.StatusOK, second.Status)
	assert.Equal(t, true, second.Body["duplicate"])
	assert.Equal(t, first.WorkItemID, second.WorkItemID)

	n, err := f.db.Client.WorkItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "no second work item")

	evt := requireIngressEvent(t, f.db.Client, events.IngressDuplicate)
	assert.Equal(t, first.WorkItemID, evt.WorkItemID)
	assert.Contains(t, acceptedResult().IdempotencyKeys, evt.Detail["matchedKey"],
		"duplicate event names the key that matched")
}

func TestRouteWebhookAnyKeyAliasDedups(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = acceptedResult()
	ctx := context.Background()

	first := f.router.RouteWebhook(ctx, "scripted", "inst-1", webhookReq())
	require.Equal(t, http.StatusCreated, first.Status)

	// A later delivery matching only the secondary alias still dedups.
	f.handler.result = acceptedResult()
	f.handler.result.IdempotencyKeys = []string{"scripted:inst-1:msg:other", "scripted:delivery:d-1"}

	second := f.router.RouteWebhook(ctx, "scripted", "inst-1", webhookReq())
	assert.Equal(t, http.StatusOK, second.Status)
	assert.Equal(t, first.WorkItemID, second.WorkItemID)
}

func TestRouteWebhookSkipped(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = &plugin.ParseResult{
		ShouldProcess: false,
		SkipReason:    "bot_echo",
	}

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, true, res.Body["ignored"])
	assert.Equal(t, "bot_echo", res.Body["reason"])

	evt := requireIngressEvent(t, f.db.Client, events.IngressSkipped)
	assert.Equal(t, "bot_echo", evt.Detail["reason"])
}

func TestRouteWebhookNoWorkItemSkips(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = &plugin.ParseResult{ShouldProcess: true}

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, events.SkipNoWorkItem, res.Body["reason"])
}

func TestRouteWebhookUnknownType(t *testing.T) {
	f := newRouterFixture(t)

	res := f.router.RouteWebhook(context.Background(), "nope", "inst-1", webhookReq())

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, events.RejectUnknownPluginType, res.Body["error"])
}

func TestRouteWebhookUnknownInstance(t *testing.T) {
	f := newRouterFixture(t)

	res := f.router.RouteWebhook(context.Background(), "scripted", "missing", webhookReq())

	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestRouteWebhookTypeMismatch(t *testing.T) {
	f := newRouterFixture(t)
	other := &scriptedHandler{}
	require.NoError(t, f.registry.Register(otherTyped{other}))

	res := f.router.RouteWebhook(context.Background(), "other", "inst-1", webhookReq())

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, events.RejectPluginTypeMismatch, res.Body["error"])
}

type otherTyped struct{ *scriptedHandler }

func (otherTyped) Type() string { return "other" }

func TestRouteWebhookDisabledInstanceIgnored(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = acceptedResult()
	ctx := context.Background()

	err := f.db.Client.PluginInstance.UpdateOneID("inst-1").SetEnabled(false).Exec(ctx)
	require.NoError(t, err)

	res := f.router.RouteWebhook(ctx, "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, true, res.Body["ignored"])

	n, err := f.db.Client.WorkItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRouteWebhookParseError(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.err = assert.AnError

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, events.RejectParseError, res.Body["error"])
}

func TestRouteWebhookNilResultIsParseError(t *testing.T) {
	f := newRouterFixture(t)

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestRouteWebhookInlineResponsePreempts(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = &plugin.ParseResult{
		ShouldProcess: false,
		SkipReason:    "url_verification",
		WebhookResponse: &plugin.InlineResponse{
			Status: http.StatusOK,
			Body:   map[string]interface{}{"challenge": "abc123"},
		},
	}

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, map[string]interface{}{"challenge": "abc123"}, res.Body)
}

func TestRouteWebhookBlockedByHook(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.result = acceptedResult()
	err := f.hookRegistry.Register(hooks.Registration{
		PluginID: "blocker",
		Hook:     hooks.WorkItemPreCreate,
		Handler: func(_ context.Context, _ *hooks.Invocation) (*hooks.Result, error) {
			return &hooks.Result{Action: hooks.ActionBlock}, nil
		},
	})
	require.NoError(t, err)

	res := f.router.RouteWebhook(context.Background(), "scripted", "inst-1", webhookReq())

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, events.SkipBlockedByPluginHook, res.Body["reason"])

	n, err := f.db.Client.WorkItem.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "blocked deliveries persist nothing")
}

func TestNormalizeKeys(t *testing.T) {
	got := normalizeKeys([]string{" a ", "b", "a", "", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
