package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/agentrunner"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/control"
	"github.com/hooklinehq/hookline/pkg/hooks"
	testdb "github.com/hooklinehq/hookline/test/database"
)

type noopRegistry struct{}

func (noopRegistry) RegisterDispatch(string, context.CancelFunc) {}
func (noopRegistry) UnregisterDispatch(string)                   {}

func testDispatchConfig() *config.DispatchConfig {
	cfg := config.DefaultConfig().Dispatch
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.RunTimeout = 5 * time.Second
	cfg.ControlPollInterval = 10 * time.Millisecond
	return cfg
}

func newTestWorker(t *testing.T, client *ent.Client, runner agentrunner.Runner) (*Worker, *control.Service) {
	ctrl := control.NewService(client, time.Millisecond)
	w := NewWorker("pod-test-dispatch-0", "pod-test", client, testDispatchConfig(), runner, ctrl, nil, nil, noopRegistry{})
	return w, ctrl
}

func TestWorkerClaimsAndCompletesDispatch(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	runner := &agentrunner.StubRunner{Script: func(in *agentrunner.Input) []agentrunner.Chunk {
		return []agentrunner.Chunk{
			&agentrunner.OutputChunk{Text: "working on it... "},
			&agentrunner.DoneChunk{OutputText: "all done"},
		}
	}}
	w, _ := newTestWorker(t, db.Client, runner)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusCompleted, got.Status)
	assert.Equal(t, "all done", got.OutputText)
	assert.Equal(t, 1, got.AttemptCount)
	assert.Empty(t, got.ClaimedBy)
	assert.Nil(t, got.LeaseExpiresAt)
	assert.NotNil(t, got.FinishedAt)
}

func TestWorkerWritesEffectsInCompletionTransaction(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	runner := &agentrunner.StubRunner{Script: func(in *agentrunner.Input) []agentrunner.Chunk {
		return []agentrunner.Chunk{
			&agentrunner.EffectChunk{Effect: agentrunner.Effect{
				Channel:   "chat",
				EffectKey: in.DispatchID + ":final:chat",
				Payload: map[string]interface{}{
					"text":               "reply text",
					"plugin_instance_id": "inst-1",
				},
			}},
			&agentrunner.DoneChunk{OutputText: "reply text"},
		}
	}}
	w, _ := newTestWorker(t, db.Client, runner)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	entries, err := db.Client.OutboxEntry.Query().
		Where(outboxentry.DispatchIDEQ(row.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, row.ID+":final:chat", entries[0].EffectKey)
	assert.Equal(t, "chat", entries[0].Channel)
	assert.Equal(t, outboxentry.StatusPending, entries[0].Status)
	assert.Equal(t, "inst-1", entries[0].PluginInstanceID)
}

func TestWorkerRetriesRetryableFailure(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	runner := &agentrunner.StubRunner{Script: func(in *agentrunner.Input) []agentrunner.Chunk {
		return []agentrunner.Chunk{
			&agentrunner.ErrorChunk{Message: "inference backend unavailable", Retryable: true},
		}
	}}
	w, _ := newTestWorker(t, db.Client, runner)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusQueued, got.Status, "first failure requeues with backoff")
	assert.Equal(t, 1, got.AttemptCount)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "inference backend unavailable")
	assert.True(t, got.ScheduledAt.After(time.Now()), "retry is scheduled in the future")
}

func TestWorkerFailsPermanentlyOnNonRetryable(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	runner := &agentrunner.StubRunner{Script: func(in *agentrunner.Input) []agentrunner.Chunk {
		return []agentrunner.Chunk{
			&agentrunner.ErrorChunk{Message: "prompt rejected", Retryable: false},
		}
	}}
	w, _ := newTestWorker(t, db.Client, runner)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusFailed, got.Status)
	assert.NotNil(t, got.FinishedAt)
}

func TestWorkerRespectsProcessingPause(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	w, ctrl := newTestWorker(t, db.Client, &agentrunner.StubRunner{})

	_, err := ctrl.Pause(ctx, control.PauseSoft, "test")
	require.NoError(t, err)

	l := NewLedger(db.Client)
	_, err = l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrProcessingPaused)
}

func TestWorkerLaneSerialization(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	w, _ := newTestWorker(t, db.Client, &agentrunner.StubRunner{})

	l := NewLedger(db.Client)
	first, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	_, err = l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	// Simulate the first dispatch running on another pod.
	markRunning(t, db.Client, first.ID, "pod-other-dispatch-0", 0)

	// Same lane: the second row must not be claimable.
	_, err = w.claim(ctx, 0)
	assert.ErrorIs(t, err, ErrNoDispatchAvailable)

	// A different lane claims fine.
	other := testCreateInput()
	other.QueueKey = "chatsvc:C9|agent-1"
	other.SessionKey = "chatsvc:C9"
	otherRow, err := l.Create(ctx, other)
	require.NoError(t, err)

	claimed, err := w.claim(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, otherRow.ID, claimed.ID)
}

func TestWorkerHonorsFutureScheduledAt(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	w, _ := newTestWorker(t, db.Client, &agentrunner.StubRunner{})

	l := NewLedger(db.Client)
	in := testCreateInput()
	in.ScheduledAt = time.Now().Add(time.Hour)
	_, err := l.Create(ctx, in)
	require.NoError(t, err)

	_, err = w.claim(ctx, 0)
	assert.ErrorIs(t, err, ErrNoDispatchAvailable)
}

func TestAbsorbFollowUpsMergesQueuedReplays(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	l := NewLedger(db.Client)
	active, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, active.ID, "pod-test-dispatch-0", 0)

	fu := testCreateInput()
	fu.InputText = "also do this"
	fu.ReplayOfDispatchID = active.ID
	followUp, err := l.Create(ctx, fu)
	require.NoError(t, err)

	absorbed, err := absorbFollowUps(ctx, db.Client, active.ID, "pod-test-dispatch-0", 0)
	require.NoError(t, err)
	require.Len(t, absorbed, 1)
	assert.Equal(t, followUp.ID, absorbed[0].DispatchID)
	assert.Equal(t, "also do this", absorbed[0].InputText)

	got, err := l.Get(ctx, followUp.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusMerged, got.Status)
	require.NotNil(t, got.MergedIntoDispatchID)
	assert.Equal(t, active.ID, *got.MergedIntoDispatchID)

	// Second absorb finds nothing.
	absorbed, err = absorbFollowUps(ctx, db.Client, active.ID, "pod-test-dispatch-0", 0)
	require.NoError(t, err)
	assert.Empty(t, absorbed)
}

func TestAbsorbFollowUpsFencedOnLease(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	l := NewLedger(db.Client)
	active, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, active.ID, "pod-test-dispatch-0", 0)

	fu := testCreateInput()
	fu.ReplayOfDispatchID = active.ID
	followUp, err := l.Create(ctx, fu)
	require.NoError(t, err)

	// Wrong worker and wrong epoch both lose the fence.
	_, err = absorbFollowUps(ctx, db.Client, active.ID, "pod-other-dispatch-9", 0)
	assert.ErrorIs(t, err, errLeaseLost)
	_, err = absorbFollowUps(ctx, db.Client, active.ID, "pod-test-dispatch-0", 7)
	assert.ErrorIs(t, err, errLeaseLost)

	got, err := l.Get(ctx, followUp.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusQueued, got.Status, "fenced-out merge touches nothing")
}

func TestSweepOrphansRequeuesExpiredLeases(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testDispatchConfig()
	ctrl := control.NewService(db.Client, time.Millisecond)
	p := NewPool("pod-test", db.Client, cfg, &agentrunner.StubRunner{}, ctrl, nil, nil)

	l := NewLedger(db.Client)

	// Expired lease with attempts remaining: requeue.
	requeue, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	expireLease(t, db.Client, requeue.ID, 1)

	// Expired lease, out of attempts: abandon.
	abandon, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	expireLease(t, db.Client, abandon.ID, cfg.MaxAttempts)

	// Live lease: untouched.
	live, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, live.ID, "pod-live-dispatch-0", 0)

	require.NoError(t, p.sweepOrphans(ctx))

	got, _ := l.Get(ctx, requeue.ID)
	assert.Equal(t, rundispatch.StatusQueued, got.Status)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "lease expired")

	got, _ = l.Get(ctx, abandon.ID)
	assert.Equal(t, rundispatch.StatusAbandoned, got.Status)

	got, _ = l.Get(ctx, live.ID)
	assert.Equal(t, rundispatch.StatusRunning, got.Status)
}

func TestRecoverStartupOrphans(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	l := NewLedger(db.Client)

	mine, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, mine.ID, "pod-a-dispatch-3", 0)

	theirs, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, theirs.ID, "pod-b-dispatch-0", 0)

	require.NoError(t, RecoverStartupOrphans(ctx, db.Client, "pod-a"))

	got, _ := l.Get(ctx, mine.ID)
	assert.Equal(t, rundispatch.StatusQueued, got.Status)

	got, _ = l.Get(ctx, theirs.ID)
	assert.Equal(t, rundispatch.StatusRunning, got.Status, "other pods' claims are untouched")
}

func newHookedWorker(t *testing.T, client *ent.Client, runner agentrunner.Runner, reg *hooks.Registry) *Worker {
	t.Helper()
	ctrl := control.NewService(client, time.Millisecond)
	dispatcher := hooks.NewDispatcher(reg, nil, nil, time.Second)
	return NewWorker("pod-test-dispatch-0", "pod-test", client, testDispatchConfig(), runner, ctrl, nil, dispatcher, noopRegistry{})
}

func TestWorkerPrePromptHookRewritesInput(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	var seen string
	runner := &agentrunner.StubRunner{Script: func(in *agentrunner.Input) []agentrunner.Chunk {
		seen = in.InputText
		return []agentrunner.Chunk{&agentrunner.DoneChunk{OutputText: "done"}}
	}}

	reg := hooks.NewRegistry()
	require.NoError(t, reg.Register(hooks.Registration{
		PluginID: "rewriter",
		Hook:     hooks.RunPrePrompt,
		Handler: func(_ context.Context, inv *hooks.Invocation) (*hooks.Result, error) {
			text, _ := inv.Data["input_text"].(string)
			return &hooks.Result{
				Action: hooks.ActionContinue,
				Data:   map[string]interface{}{"input_text": "[reviewed] " + text},
			}, nil
		},
	}))
	w := newHookedWorker(t, db.Client, runner, reg)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, "[reviewed] do the thing", seen)
	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusCompleted, got.Status)
}

func TestWorkerPrePromptHookBlockCancelsRun(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	invoked := false
	runner := &agentrunner.StubRunner{Script: func(in *agentrunner.Input) []agentrunner.Chunk {
		invoked = true
		return []agentrunner.Chunk{&agentrunner.DoneChunk{}}
	}}

	reg := hooks.NewRegistry()
	require.NoError(t, reg.Register(hooks.Registration{
		PluginID: "gatekeeper",
		Hook:     hooks.RunPrePrompt,
		Handler: func(context.Context, *hooks.Invocation) (*hooks.Result, error) {
			return &hooks.Result{Action: hooks.ActionBlock}, nil
		},
	}))
	w := newHookedWorker(t, db.Client, runner, reg)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	assert.False(t, invoked, "a blocked run never reaches the agent")
	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusCancelled, got.Status)
	assert.Equal(t, rundispatch.ControlStateCancelled, got.ControlState)
}

func TestClaimKeepsFirstStartedAtAcrossRetries(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	w, _ := newTestWorker(t, db.Client, &agentrunner.StubRunner{})

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	// A requeued retry already carries the first attempt's start time.
	firstStart := time.Now().Add(-time.Minute)
	err = db.Client.RunDispatch.UpdateOneID(row.ID).
		SetAttemptCount(1).
		SetStartedAt(firstStart).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := w.claim(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, claimed.AttemptCount)
	require.NotNil(t, claimed.StartedAt)
	assert.WithinDuration(t, firstStart, *claimed.StartedAt, 2*time.Second,
		"re-claim keeps the original start time")
}

func TestLockLaneSerializesLanelessLanes(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	// Routine-fired dispatches have no queue_lanes row; the advisory lock
	// is the only thing serializing concurrent claimers on their lane.
	const laneKey = "routine:daily-digest|agent-1"

	tx1, err := db.Client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, lockLane(ctx, tx1, laneKey))

	acquired := make(chan error, 1)
	go func() {
		tx2, err := db.Client.Tx(ctx)
		if err != nil {
			acquired <- err
			return
		}
		err = lockLane(ctx, tx2, laneKey)
		_ = tx2.Rollback()
		acquired <- err
	}()

	select {
	case <-acquired:
		t.Fatal("second transaction took the lane lock while it was held")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, tx1.Rollback())

	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lane lock was never released")
	}
}

func TestSweepOrphansCancelsFencedRowsOnHardStop(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testDispatchConfig()
	ctrl := control.NewService(db.Client, time.Millisecond)
	p := NewPool("pod-test", db.Client, cfg, &agentrunner.StubRunner{}, ctrl, nil, nil)

	l := NewLedger(db.Client)

	// Running at the old epoch when the stop lands: fenced out, terminal.
	fenced, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, fenced.ID, "pod-other-dispatch-0", 0)

	// Queued rows just wait for resume.
	queued, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	_, err = ctrl.EmergencyStop(ctx, "incident")
	require.NoError(t, err)

	require.NoError(t, p.sweepOrphans(ctx))

	got, err := l.Get(ctx, fenced.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusCancelled, got.Status)
	assert.Equal(t, rundispatch.ControlStateCancelled, got.ControlState)
	assert.NotNil(t, got.FinishedAt)
	assert.Nil(t, got.ClaimedBy)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "hard stop")

	got, err = l.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusQueued, got.Status, "queued rows are not cancelled")
}

func TestSweepOrphansRequeuesExpiredUnderSoftPause(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testDispatchConfig()
	ctrl := control.NewService(db.Client, time.Millisecond)
	p := NewPool("pod-test", db.Client, cfg, &agentrunner.StubRunner{}, ctrl, nil, nil)

	l := NewLedger(db.Client)
	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	expireLease(t, db.Client, row.ID, 1)

	_, err = ctrl.Pause(ctx, control.PauseSoft, "maintenance")
	require.NoError(t, err)

	require.NoError(t, p.sweepOrphans(ctx))

	// Soft pause keeps the row claimable, so resume re-executes it.
	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusQueued, got.Status)
}

// expireLease puts a row into running with an already-expired lease.
func expireLease(t *testing.T, client *ent.Client, id string, attempts int) {
	t.Helper()
	err := client.RunDispatch.UpdateOneID(id).
		SetStatus(rundispatch.StatusRunning).
		SetClaimedBy("pod-dead-dispatch-0").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		SetAttemptCount(attempts).
		Exec(context.Background())
	require.NoError(t, err)
}
