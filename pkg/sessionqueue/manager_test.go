package sessionqueue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/queuemessage"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/services"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func newTestManager(t *testing.T, client *ent.Client) *Manager {
	cfg := &config.SessionConfig{
		Debounce:         20 * time.Millisecond,
		MaxQueuedPerLane: 2,
	}
	m := NewManager(client, cfg, dispatch.NewLedger(client))
	t.Cleanup(m.Stop)
	return m
}

func dispatchCount(t *testing.T, client *ent.Client, queueKey string) int {
	n, err := client.RunDispatch.Query().
		Where(rundispatch.QueueKeyEQ(queueKey)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func waitForDispatch(t *testing.T, client *ent.Client, queueKey string, want int) []*ent.RunDispatch {
	t.Helper()
	require.Eventually(t, func() bool {
		n, err := client.RunDispatch.Query().
			Where(rundispatch.QueueKeyEQ(queueKey)).
			Count(context.Background())
		return err == nil && n >= want
	}, 5*time.Second, 10*time.Millisecond)
	rows, err := client.RunDispatch.Query().
		Where(rundispatch.QueueKeyEQ(queueKey)).
		Order(ent.Asc(rundispatch.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestQueueKeyFormat(t *testing.T) {
	assert.Equal(t, "chatsvc:C1:agent-1", QueueKey("chatsvc:C1", "agent-1"))
}

func TestEnqueueDebouncesIntoOneDispatch(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "first", SenderName: "alice"}))
	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "second", SenderName: "bob"}))

	key := QueueKey("chatsvc:C1", "agent-1")
	rows := waitForDispatch(t, db.Client, key, 1)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "chatsvc:C1", row.SessionKey)
	assert.Equal(t, "agent-1", row.AgentID)
	assert.Contains(t, row.InputText, "2 messages arrived")
	assert.Contains(t, row.InputText, "first")
	assert.Contains(t, row.InputText, "second")
	assert.Equal(t, row.InputText, row.CoalescedText)

	// Both queue_messages rows were folded into the dispatch.
	included, err := db.Client.QueueMessage.Query().
		Where(
			queuemessage.QueueKeyEQ(key),
			queuemessage.StatusEQ(queuemessage.StatusIncluded),
			queuemessage.DispatchIDEQ(row.ID),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, included)

	// Lane mirror reflects the active run.
	laneRow, err := db.Client.QueueLane.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, queuelane.StateRunning, laneRow.State)
	require.NotNil(t, laneRow.ActiveDispatchID)
	assert.Equal(t, row.ID, *laneRow.ActiveDispatchID)
}

func TestSingleMessagePassesThroughUncoalesced(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "just this"}))

	rows := waitForDispatch(t, db.Client, QueueKey("chatsvc:C1", "agent-1"), 1)
	assert.Equal(t, "just this", rows[0].InputText)
	assert.Empty(t, rows[0].CoalescedText)
}

func TestCollectModeQueuesBehindActiveRun(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	var queuedSignals []string
	m.OnQueued = func(queueKey string) { queuedSignals = append(queuedSignals, queueKey) }

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "start run"}))
	rows := waitForDispatch(t, db.Client, key, 1)
	active := rows[0]

	// Arrivals during the run are collected, not dispatched.
	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "while busy"}))
	assert.Equal(t, 1, dispatchCount(t, db.Client, key))
	assert.Equal(t, []string{key}, queuedSignals)

	// Run completion drains the pending buffer into a fresh dispatch.
	m.OnRunComplete(ctx, key, active.ID, "completed")
	rows = waitForDispatch(t, db.Client, key, 2)
	assert.Equal(t, "while busy", rows[1].InputText)
}

func TestCollectModeDropsOverLimit(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "start run"}))
	waitForDispatch(t, db.Client, key, 1)

	// MaxQueuedPerLane is 2: the third pending message is dropped.
	for _, text := range []string{"p1", "p2", "p3"} {
		require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: text}))
	}

	dropped, err := db.Client.QueueMessage.Query().
		Where(
			queuemessage.QueueKeyEQ(key),
			queuemessage.StatusEQ(queuemessage.StatusDropped),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, dropped, 1)
	assert.Equal(t, "p3", dropped[0].Text)
}

func TestFollowupModeCreatesReplayDispatch(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "start run"}))
	rows := waitForDispatch(t, db.Client, key, 1)
	active := rows[0]

	require.NoError(t, m.SetMode(ctx, key, ModeFollowup))
	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "and also"}))

	rows = waitForDispatch(t, db.Client, key, 2)
	followUp := rows[1]
	assert.Equal(t, "and also", followUp.InputText)
	require.NotNil(t, followUp.ReplayOfDispatchID)
	assert.Equal(t, active.ID, *followUp.ReplayOfDispatchID)
	assert.Equal(t, rundispatch.StatusQueued, followUp.Status)
}

func TestOnRunCompleteIdlesEmptyLane(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "hello"}))
	rows := waitForDispatch(t, db.Client, key, 1)

	m.OnRunComplete(ctx, key, rows[0].ID, "completed")

	laneRow, err := db.Client.QueueLane.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, queuelane.StateIdle, laneRow.State)
	assert.Nil(t, laneRow.ActiveDispatchID)
}

func TestOnRunCompleteIgnoresStaleDispatch(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "hello"}))
	waitForDispatch(t, db.Client, key, 1)

	m.OnRunComplete(ctx, key, "some-older-dispatch", "completed")

	laneRow, err := db.Client.QueueLane.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, queuelane.StateRunning, laneRow.State, "stale completion must not idle the lane")
}

func TestSetModeRejectsUnknown(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	err := m.SetMode(context.Background(), "any", Mode("bogus"))
	assert.True(t, services.IsValidationError(err))
}

func TestPausedLaneHoldsMessagesUntilResume(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newTestManager(t, db.Client)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	// Materialize the lane, then pause it before anything is queued.
	_, err := m.getLane(ctx, "chatsvc:C1", "agent-1")
	require.NoError(t, err)
	require.NoError(t, m.SetPaused(ctx, key, true))

	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "held"}))

	// The debounce fires but the paused lane refuses to start a run.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, dispatchCount(t, db.Client, key))

	require.NoError(t, m.SetPaused(ctx, key, false))
	rows := waitForDispatch(t, db.Client, key, 1)
	assert.Equal(t, "held", rows[0].InputText)
}

func TestRecoverFlushesExpiredDebounceLane(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	// Durable state from a crashed process: a lane mid-debounce with one
	// pending message, debounce window long expired.
	err := db.Client.QueueLane.Create().
		SetID(key).
		SetSessionKey("chatsvc:C1").
		SetAgentID("agent-1").
		SetState(queuelane.StateQueued).
		SetDebounceUntil(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)
	err = db.Client.QueueMessage.Create().
		SetID("qm-1").
		SetQueueKey(key).
		SetText("orphaned message").
		SetArrivedAt(time.Now().Add(-2 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	m := newTestManager(t, db.Client)
	require.NoError(t, m.Recover(ctx))

	rows := waitForDispatch(t, db.Client, key, 1)
	assert.Equal(t, "orphaned message", rows[0].InputText)

	laneRow, err := db.Client.QueueLane.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, queuelane.StateRunning, laneRow.State)
}

func TestRecoverDrainsLaneWithTerminalDispatch(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	ledger := dispatch.NewLedger(db.Client)
	done, err := ledger.Create(ctx, dispatch.CreateInput{
		QueueKey:   key,
		SessionKey: "chatsvc:C1",
		AgentID:    "agent-1",
		InputText:  "finished earlier",
	})
	require.NoError(t, err)
	err = db.Client.RunDispatch.UpdateOneID(done.ID).
		SetStatus(rundispatch.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)

	err = db.Client.QueueLane.Create().
		SetID(key).
		SetSessionKey("chatsvc:C1").
		SetAgentID("agent-1").
		SetState(queuelane.StateRunning).
		SetActiveDispatchID(done.ID).
		Exec(ctx)
	require.NoError(t, err)
	err = db.Client.QueueMessage.Create().
		SetID("qm-1").
		SetQueueKey(key).
		SetText("waiting for the next run").
		SetArrivedAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	m := newTestManager(t, db.Client)
	require.NoError(t, m.Recover(ctx))

	rows := waitForDispatch(t, db.Client, key, 2)
	assert.Equal(t, "waiting for the next run", rows[1].InputText)
}

func TestRecoverAdoptsLiveDispatch(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	key := QueueKey("chatsvc:C1", "agent-1")

	ledger := dispatch.NewLedger(db.Client)
	live, err := ledger.Create(ctx, dispatch.CreateInput{
		QueueKey:   key,
		SessionKey: "chatsvc:C1",
		AgentID:    "agent-1",
		InputText:  "still going",
	})
	require.NoError(t, err)

	err = db.Client.QueueLane.Create().
		SetID(key).
		SetSessionKey("chatsvc:C1").
		SetAgentID("agent-1").
		SetState(queuelane.StateRunning).
		SetActiveDispatchID(live.ID).
		Exec(ctx)
	require.NoError(t, err)

	m := newTestManager(t, db.Client)
	require.NoError(t, m.Recover(ctx))

	// No new dispatch; the lane tracks the live run so completion drains it.
	assert.Equal(t, 1, dispatchCount(t, db.Client, key))
	require.NoError(t, m.Enqueue(ctx, "chatsvc:C1", "agent-1", Message{Text: "during the run"}))
	assert.Equal(t, 1, dispatchCount(t, db.Client, key))

	m.OnRunComplete(ctx, key, live.ID, "completed")
	rows := waitForDispatch(t, db.Client, key, 2)
	assert.Equal(t, "during the run", rows[1].InputText)
}
