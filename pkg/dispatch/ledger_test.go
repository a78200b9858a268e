package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/services"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func testCreateInput() CreateInput {
	return CreateInput{
		QueueKey:   "chatsvc:C1|agent-1",
		SessionKey: "chatsvc:C1",
		AgentID:    "agent-1",
		InputText:  "do the thing",
	}
}

func TestLedgerCreateDefaults(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)

	row, err := l.Create(context.Background(), testCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, row.ID)
	assert.Equal(t, rundispatch.StatusQueued, row.Status)
	assert.Equal(t, rundispatch.ControlStateNormal, row.ControlState)
	assert.Equal(t, 0, row.AttemptCount)
	assert.WithinDuration(t, time.Now(), row.ScheduledAt, 5*time.Second)
}

func TestLedgerCreateValidations(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	in := testCreateInput()
	in.QueueKey = ""
	_, err := l.Create(ctx, in)
	assert.True(t, services.IsValidationError(err))

	in = testCreateInput()
	in.SessionKey = ""
	_, err = l.Create(ctx, in)
	assert.True(t, services.IsValidationError(err))

	in = testCreateInput()
	in.AgentID = ""
	_, err = l.Create(ctx, in)
	assert.True(t, services.IsValidationError(err))
}

func TestLedgerGetNotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	_, err := l.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestLedgerListFilters(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := l.Create(ctx, testCreateInput())
		require.NoError(t, err)
	}
	other := testCreateInput()
	other.QueueKey = "chatsvc:C2|agent-1"
	other.SessionKey = "chatsvc:C2"
	_, err := l.Create(ctx, other)
	require.NoError(t, err)

	all, err := l.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	lane, err := l.List(ctx, ListFilter{QueueKey: "chatsvc:C2|agent-1"})
	require.NoError(t, err)
	assert.Len(t, lane, 1)

	queued, err := l.List(ctx, ListFilter{Status: "queued"})
	require.NoError(t, err)
	assert.Len(t, queued, 4)
}

func TestRequestCancelQueuedGoesTerminal(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	require.NoError(t, l.RequestCancel(ctx, row.ID))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusCancelled, got.Status)
	assert.Equal(t, rundispatch.ControlStateCancelled, got.ControlState)
	assert.NotNil(t, got.FinishedAt)
}

func TestRequestCancelRunningSetsFlag(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	markRunning(t, db.Client, row.ID, "pod-1-dispatch-0", 0)

	require.NoError(t, l.RequestCancel(ctx, row.ID))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusRunning, got.Status, "lease holder owns the transition")
	assert.Equal(t, rundispatch.ControlStateCancelRequested, got.ControlState)
}

func TestRequestCancelTerminalRefused(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)
	err = db.Client.RunDispatch.UpdateOneID(row.ID).
		SetStatus(rundispatch.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, l.RequestCancel(ctx, row.ID), services.ErrNotCancellable)
}

func TestRequestPauseOnlyRunning(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	assert.Error(t, l.RequestPause(ctx, row.ID), "queued rows cannot be paused")

	markRunning(t, db.Client, row.ID, "pod-1-dispatch-0", 0)
	require.NoError(t, l.RequestPause(ctx, row.ID))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.ControlStatePauseRequested, got.ControlState)
}

func TestResumePausedRequeues(t *testing.T) {
	db := testdb.NewTestClient(t)
	l := NewLedger(db.Client)
	ctx := context.Background()

	row, err := l.Create(ctx, testCreateInput())
	require.NoError(t, err)

	assert.Error(t, l.ResumePaused(ctx, row.ID), "only paused rows resume")

	err = db.Client.RunDispatch.UpdateOneID(row.ID).
		SetStatus(rundispatch.StatusPaused).
		SetControlState(rundispatch.ControlStatePaused).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, l.ResumePaused(ctx, row.ID))

	got, err := l.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, rundispatch.StatusQueued, got.Status)
	assert.Equal(t, rundispatch.ControlStateNormal, got.ControlState)
}

// markRunning simulates a worker's claim outside the claim path.
func markRunning(t *testing.T, client *ent.Client, id, workerID string, epoch int64) {
	t.Helper()
	err := client.RunDispatch.UpdateOneID(id).
		SetStatus(rundispatch.StatusRunning).
		SetClaimedBy(workerID).
		SetClaimedEpoch(epoch).
		SetLeaseExpiresAt(time.Now().Add(30 * time.Second)).
		SetStartedAt(time.Now()).
		Exec(context.Background())
	require.NoError(t, err)
}
