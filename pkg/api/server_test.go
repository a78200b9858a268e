package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/control"
	"github.com/hooklinehq/hookline/pkg/database"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/events"
	"github.com/hooklinehq/hookline/pkg/hooks"
	"github.com/hooklinehq/hookline/pkg/ingress"
	"github.com/hooklinehq/hookline/pkg/plugin"
	"github.com/hooklinehq/hookline/pkg/routine"
	"github.com/hooklinehq/hookline/pkg/services"
	"github.com/hooklinehq/hookline/pkg/sessionqueue"
	testdb "github.com/hooklinehq/hookline/test/database"
)

// cannedHandler is a minimal plugin handler for exercising the HTTP
// surface end to end.
type cannedHandler struct {
	plugin.Base
	result *plugin.ParseResult
	err    error
}

func (h *cannedHandler) Type() string { return "canned" }

func (h *cannedHandler) ParseWebhook(_ context.Context, _ *plugin.WebhookRequest, _ *plugin.Instance) (*plugin.ParseResult, error) {
	return h.result, h.err
}

type apiFixture struct {
	db      *database.Client
	server  *Server
	handler *cannedHandler
	ledger  *dispatch.Ledger
	queue   *sessionqueue.Manager
}

// newAPIFixture wires a full server against a test database, with a
// nil dispatch pool and crash guard.
func newAPIFixture(t *testing.T) *apiFixture {
	db := testdb.NewTestClient(t)

	ledger := dispatch.NewLedger(db.Client)
	recorder := events.NewRecorder(db.Client, db.DB())

	handler := &cannedHandler{}
	registry := plugin.NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, registry.Register(handler))

	queue := sessionqueue.NewManager(db.Client, &config.SessionConfig{
		Debounce:         10 * time.Millisecond,
		MaxQueuedPerLane: 5,
	}, ledger)
	t.Cleanup(queue.Stop)

	probes := routine.NewProbeRegistry(db.Client)
	routines := routine.NewService(db.Client, ledger, probes)
	hookDispatcher := hooks.NewDispatcher(hooks.NewRegistry(), recorder, nil, time.Second)
	ingressRouter := ingress.NewRouter(db.Client, registry, plugin.PlainDecoder{},
		hookDispatcher, recorder, queue, routines)

	srv := NewServer(db, ingressRouter,
		control.NewService(db.Client, time.Millisecond),
		routines,
		services.NewPluginInstanceService(db.Client, registry, recorder),
		services.NewWorkItemService(db.Client),
		ledger, queue, nil, nil)

	return &apiFixture{
		db:      db,
		server:  srv,
		handler: handler,
		ledger:  ledger,
		queue:   queue,
	}
}

// do runs one request through the full router, so path params and
// middleware behave as in production.
func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestSystemHealthReportsDatabase(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "database")
}

func TestSecurityHeadersSet(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
