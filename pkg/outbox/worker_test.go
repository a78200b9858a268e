package outbox

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/hooks"
	"github.com/hooklinehq/hookline/pkg/plugin"
	testdb "github.com/hooklinehq/hookline/test/database"
)

// effectorHandler scripts PostResponse and ReconcileEffect for delivery tests.
type effectorHandler struct {
	plugin.Base
	post      func(channel string, payload map[string]interface{}) (*plugin.PostResult, error)
	reconcile func(channel string, payload map[string]interface{}) (string, bool, error)
}

func (h *effectorHandler) Type() string { return "effector" }

func (h *effectorHandler) ParseWebhook(_ context.Context, _ *plugin.WebhookRequest, _ *plugin.Instance) (*plugin.ParseResult, error) {
	return nil, nil
}

func (h *effectorHandler) PostResponse(ctx context.Context, _ *plugin.Instance, channel string, payload map[string]interface{}) (*plugin.PostResult, error) {
	if h.post == nil {
		return &plugin.PostResult{ProviderRef: "ref-default"}, nil
	}
	return h.post(channel, payload)
}

func (h *effectorHandler) ReconcileEffect(_ context.Context, _ *plugin.Instance, channel string, payload map[string]interface{}) (string, bool, error) {
	if h.reconcile == nil {
		return "", false, nil
	}
	return h.reconcile(channel, payload)
}

func testOutboxConfig() *config.OutboxConfig {
	return &config.OutboxConfig{
		WorkersPerChannel: 1,
		BatchSize:         10,
		Lease:             30 * time.Second,
		PollInterval:      10 * time.Millisecond,
		SendTimeout:       100 * time.Millisecond,
		BackoffBase:       time.Second,
		BackoffCap:        time.Minute,
		MaxAttempts:       3,
	}
}

type outboxFixture struct {
	client  *ent.Client
	handler *effectorHandler
	hookReg *hooks.Registry
	worker  *Worker
	pool    *Pool
	cfg     *config.OutboxConfig
}

func newOutboxFixture(t *testing.T) *outboxFixture {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	handler := &effectorHandler{}
	registry := plugin.NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, registry.Register(handler))

	err := db.Client.PluginInstance.Create().
		SetID("inst-1").
		SetType("effector").
		SetName("main").
		SetConfig(map[string]interface{}{}).
		Exec(ctx)
	require.NoError(t, err)

	cfg := testOutboxConfig()
	deliverer := NewDeliverer(db.Client, registry, plugin.PlainDecoder{})
	hookReg := hooks.NewRegistry()
	dispatcher := hooks.NewDispatcher(hookReg, nil, nil, time.Second)
	return &outboxFixture{
		client:  db.Client,
		handler: handler,
		hookReg: hookReg,
		worker:  NewWorker("pod-1-outbox-chat-0", "chat", db.Client, cfg, deliverer, dispatcher),
		pool:    NewPool("pod-1", db.Client, cfg, deliverer, dispatcher, []string{"chat"}),
		cfg:     cfg,
	}
}

type seedOpts struct {
	dispatchID string
	channel    string
	status     outboxentry.Status
	attempts   int
	nextAt     time.Time
	createdAt  time.Time
}

func (f *outboxFixture) seedEffect(t *testing.T, opts seedOpts) *ent.OutboxEntry {
	t.Helper()
	if opts.dispatchID == "" {
		opts.dispatchID = "disp-1"
	}
	if opts.channel == "" {
		opts.channel = "chat"
	}
	if opts.status == "" {
		opts.status = outboxentry.StatusPending
	}
	if opts.nextAt.IsZero() {
		opts.nextAt = time.Now().Add(-time.Second)
	}
	if opts.createdAt.IsZero() {
		opts.createdAt = time.Now()
	}
	row, err := f.client.OutboxEntry.Create().
		SetID(uuid.New().String()).
		SetEffectKey(uuid.New().String()).
		SetDispatchID(opts.dispatchID).
		SetPluginInstanceID("inst-1").
		SetChannel(opts.channel).
		SetKind("message").
		SetPayload(map[string]interface{}{"text": "hi"}).
		SetStatus(opts.status).
		SetAttemptCount(opts.attempts).
		SetNextAttemptAt(opts.nextAt).
		SetCreatedAt(opts.createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestWorkerDeliversPendingEffect(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	f.handler.post = func(channel string, payload map[string]interface{}) (*plugin.PostResult, error) {
		assert.Equal(t, "chat", channel)
		assert.Equal(t, "hi", payload["text"])
		return &plugin.PostResult{ProviderRef: "msg-42"}, nil
	}
	entry := f.seedEffect(t, seedOpts{})

	n, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusSent, got.Status)
	require.NotNil(t, got.ProviderRef)
	assert.Equal(t, "msg-42", *got.ProviderRef)
	assert.NotNil(t, got.SentAt)
	assert.Nil(t, got.ClaimedBy)
	assert.Equal(t, 1, got.AttemptCount)
}

func TestWorkerKeepsFIFOPerDispatch(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	// Older sibling not yet due: it blocks the newer one on the same
	// dispatch+channel lane.
	f.seedEffect(t, seedOpts{createdAt: base, nextAt: time.Now().Add(time.Hour)})
	f.seedEffect(t, seedOpts{createdAt: base.Add(time.Second)})
	// A different dispatch is independent.
	other := f.seedEffect(t, seedOpts{dispatchID: "disp-2", createdAt: base})

	n, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the other dispatch's head is claimable")

	got, err := f.client.OutboxEntry.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusSent, got.Status)
}

func TestWorkerRetriesTransientFailure(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	f.handler.post = func(string, map[string]interface{}) (*plugin.PostResult, error) {
		return nil, errors.New("rate_limited: slow down")
	}
	entry := f.seedEffect(t, seedOpts{})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusPending, got.Status)
	assert.Equal(t, 1, got.AttemptCount)
	assert.True(t, got.NextAttemptAt.After(time.Now()), "retry is backed off")
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "rate_limited")
}

func TestWorkerFailsPermanentErrorImmediately(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	f.handler.post = func(string, map[string]interface{}) (*plugin.PostResult, error) {
		return nil, errors.New("invalid_auth")
	}
	entry := f.seedEffect(t, seedOpts{})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusFailed, got.Status)
	assert.False(t, got.Retryable)
}

func TestWorkerExhaustsAttempts(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	f.handler.post = func(string, map[string]interface{}) (*plugin.PostResult, error) {
		return nil, errors.New("connection refused")
	}
	// One attempt left; the claim consumes it.
	entry := f.seedEffect(t, seedOpts{attempts: f.cfg.MaxAttempts - 1})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusFailed, got.Status)
	assert.True(t, got.Retryable, "the error class stays retryable even when attempts run out")
}

func TestWorkerQuarantinesLostAck(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	f.handler.post = func(string, map[string]interface{}) (*plugin.PostResult, error) {
		// Simulate a send whose acknowledgment never arrives.
		time.Sleep(f.cfg.SendTimeout + 50*time.Millisecond)
		return nil, context.DeadlineExceeded
	}
	entry := f.seedEffect(t, seedOpts{})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusUnknown, got.Status)
	require.NotNil(t, got.UnknownReason)
	assert.Contains(t, *got.UnknownReason, "acknowledgment lost")
}

func TestPoolRecoversExpiredLeases(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	entry := f.seedEffect(t, seedOpts{status: outboxentry.StatusSending})
	err := f.client.OutboxEntry.UpdateOneID(entry.ID).
		SetClaimedBy("pod-dead-outbox-chat-0").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, f.pool.recoverExpiredLeases(ctx))

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusUnknown, got.Status)
	require.NotNil(t, got.UnknownReason)
	assert.Contains(t, *got.UnknownReason, "lease expired")
}

func TestPoolReconcilesUnknownAsSent(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	f.handler.reconcile = func(string, map[string]interface{}) (string, bool, error) {
		return "msg-99", true, nil
	}
	entry := f.seedEffect(t, seedOpts{status: outboxentry.StatusUnknown, attempts: 1})

	require.NoError(t, f.pool.reconcileUnknown(ctx))

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusSent, got.Status)
	require.NotNil(t, got.ProviderRef)
	assert.Equal(t, "msg-99", *got.ProviderRef)
}

func TestPoolRequeuesUnresolvedUnknown(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	// The handler cannot confirm delivery; a possible duplicate beats a
	// silent drop.
	f.handler.reconcile = func(string, map[string]interface{}) (string, bool, error) {
		return "", false, nil
	}
	entry := f.seedEffect(t, seedOpts{status: outboxentry.StatusUnknown, attempts: 1})

	require.NoError(t, f.pool.reconcileUnknown(ctx))

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusPending, got.Status)
	assert.True(t, got.NextAttemptAt.After(time.Now()))
}

func TestPoolFailsUnknownAfterMaxAttempts(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	entry := f.seedEffect(t, seedOpts{status: outboxentry.StatusUnknown, attempts: f.cfg.MaxAttempts})

	require.NoError(t, f.pool.reconcileUnknown(ctx))

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusFailed, got.Status)
}

func TestPoolSweepsCancelledDispatchEffects(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	err := f.client.RunDispatch.Create().
		SetID("disp-cancelled").
		SetQueueKey("chatsvc:C1|agent-1").
		SetSessionKey("chatsvc:C1").
		SetAgentID("agent-1").
		SetStatus(rundispatch.StatusCancelled).
		Exec(ctx)
	require.NoError(t, err)

	doomed := f.seedEffect(t, seedOpts{dispatchID: "disp-cancelled"})
	kept := f.seedEffect(t, seedOpts{dispatchID: "disp-live"})

	require.NoError(t, f.pool.sweepCancelled(ctx))

	got, err := f.client.OutboxEntry.Get(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusCancelled, got.Status)

	got, err = f.client.OutboxEntry.Get(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusPending, got.Status)
}

func TestWorkerSkipsNotDueRows(t *testing.T) {
	f := newOutboxFixture(t)
	f.seedEffect(t, seedOpts{nextAt: time.Now().Add(time.Hour)})

	n, err := f.worker.drainOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWorkerPreDeliverHookMutatesPayload(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	require.NoError(t, f.hookReg.Register(hooks.Registration{
		PluginID: "annotator",
		Hook:     hooks.ResponsePreDeliver,
		Handler: func(_ context.Context, inv *hooks.Invocation) (*hooks.Result, error) {
			text, _ := inv.Data["text"].(string)
			return &hooks.Result{
				Action: hooks.ActionContinue,
				Data:   map[string]interface{}{"text": text + " (edited)"},
			}, nil
		},
	}))
	var delivered string
	f.handler.post = func(_ string, payload map[string]interface{}) (*plugin.PostResult, error) {
		delivered, _ = payload["text"].(string)
		return &plugin.PostResult{ProviderRef: "msg-1"}, nil
	}
	entry := f.seedEffect(t, seedOpts{})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, "hi (edited)", delivered, "the hook's mutation reaches the provider")

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusSent, got.Status)
}

func TestWorkerPreDeliverHookBlocksEffect(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	require.NoError(t, f.hookReg.Register(hooks.Registration{
		PluginID: "gatekeeper",
		Hook:     hooks.ResponsePreDeliver,
		Handler: func(context.Context, *hooks.Invocation) (*hooks.Result, error) {
			return &hooks.Result{Action: hooks.ActionBlock}, nil
		},
	}))
	invoked := false
	f.handler.post = func(string, map[string]interface{}) (*plugin.PostResult, error) {
		invoked = true
		return &plugin.PostResult{ProviderRef: "never"}, nil
	}
	entry := f.seedEffect(t, seedOpts{})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	assert.False(t, invoked, "blocked effects never reach the provider")

	got, err := f.client.OutboxEntry.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusFailed, got.Status)
	assert.False(t, got.Retryable)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "blocked by plugin hook")
}

func TestWorkerPostDeliverHookObservesResult(t *testing.T) {
	f := newOutboxFixture(t)
	ctx := context.Background()

	observed := make(chan map[string]interface{}, 1)
	require.NoError(t, f.hookReg.Register(hooks.Registration{
		PluginID: "auditor",
		Hook:     hooks.ResponsePostDeliver,
		Handler: func(_ context.Context, inv *hooks.Invocation) (*hooks.Result, error) {
			observed <- inv.Data
			return nil, nil
		},
	}))
	f.handler.post = func(string, map[string]interface{}) (*plugin.PostResult, error) {
		return &plugin.PostResult{ProviderRef: "msg-7"}, nil
	}
	entry := f.seedEffect(t, seedOpts{})

	_, err := f.worker.drainOnce(ctx)
	require.NoError(t, err)

	select {
	case data := <-observed:
		assert.Equal(t, "msg-7", data["provider_ref"])
		assert.Equal(t, entry.Channel, data["channel"])
		assert.Equal(t, "hi", data["text"])
	case <-time.After(5 * time.Second):
		t.Fatal("post-deliver hook never fired")
	}
}

func TestNextAttemptDelayBounds(t *testing.T) {
	base := time.Second
	cap := 30 * time.Second
	for attempt := 1; attempt <= 6; attempt++ {
		floor := base
		for i := 1; i < attempt; i++ {
			floor *= 2
			if floor >= cap {
				floor = cap
				break
			}
		}
		ceiling := floor + floor/2
		if ceiling > cap {
			ceiling = cap
		}
		d := nextAttemptDelay(attempt, base, cap)
		assert.GreaterOrEqual(t, d, floor, fmt.Sprintf("attempt %d", attempt))
		assert.LessOrEqual(t, d, ceiling, fmt.Sprintf("attempt %d", attempt))
	}
}
