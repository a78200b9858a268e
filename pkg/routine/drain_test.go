package routine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/routineevent"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func newTestDrain(t *testing.T) (*Drain, *Service, *ent.Client) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, dispatch.NewLedger(db.Client), NewProbeRegistry(db.Client))
	cfg := &config.RoutineConfig{
		EventDrainWorkers: 1,
		EventLease:        time.Minute,
		PollInterval:      10 * time.Millisecond,
	}
	return NewDrain("pod-1", db.Client, cfg, svc), svc, db.Client
}

func TestEnqueueEventPersistsEnvelope(t *testing.T) {
	_, svc, client := newTestDrain(t)
	ctx := context.Background()

	require.NoError(t, svc.EnqueueEvent(ctx, matchEnvelope(), "wi-1"))

	row, err := client.RoutineEvent.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, routineevent.StatusPending, row.Status)
	assert.Equal(t, "wi-1", row.WorkItemID)
	assert.Equal(t, "repohook", row.Envelope["source"])
	assert.Zero(t, row.AttemptCount)
}

func TestClaimNextLeasesOldestPending(t *testing.T) {
	d, svc, client := newTestDrain(t)
	ctx := context.Background()

	require.NoError(t, svc.EnqueueEvent(ctx, matchEnvelope(), "wi-1"))

	event, err := d.claimNext(ctx, "pod-1-routine-0")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, routineevent.StatusProcessing, event.Status)
	require.NotNil(t, event.ClaimedBy)
	assert.Equal(t, "pod-1-routine-0", *event.ClaimedBy)
	assert.Equal(t, 1, event.AttemptCount)
	require.NotNil(t, event.LeaseExpiresAt)
	assert.True(t, event.LeaseExpiresAt.After(time.Now()))

	// The leased row is invisible to other workers.
	second, err := d.claimNext(ctx, "pod-1-routine-1")
	require.NoError(t, err)
	assert.Nil(t, second)

	n, err := client.RoutineEvent.Query().
		Where(routineevent.StatusEQ(routineevent.StatusProcessing)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClaimNextEmptyInbox(t *testing.T) {
	d, _, _ := newTestDrain(t)

	event, err := d.claimNext(context.Background(), "pod-1-routine-0")
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestProcessEvaluatesAndSettles(t *testing.T) {
	d, svc, client := newTestDrain(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`))
	require.NoError(t, err)
	require.NoError(t, svc.EnqueueEvent(ctx, matchEnvelope(), "wi-1"))

	event, err := d.claimNext(ctx, "pod-1-routine-0")
	require.NoError(t, err)
	require.NotNil(t, event)

	d.process(ctx, event, d.logger)

	got, err := client.RoutineEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, routineevent.StatusDone, got.Status)
	assert.Nil(t, got.ClaimedBy)
	assert.Nil(t, got.LeaseExpiresAt)

	// The envelope round-tripped through the inbox and matched the rule.
	n, err := client.RunDispatch.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecoverExpiredEventLeases(t *testing.T) {
	d, svc, client := newTestDrain(t)
	ctx := context.Background()

	require.NoError(t, svc.EnqueueEvent(ctx, matchEnvelope(), "wi-1"))
	event, err := d.claimNext(ctx, "pod-1-routine-0")
	require.NoError(t, err)
	require.NotNil(t, event)

	// The worker died; its lease lapses.
	err = client.RoutineEvent.UpdateOneID(event.ID).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, d.recoverExpired(ctx))

	got, err := client.RoutineEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, routineevent.StatusPending, got.Status)
	assert.Nil(t, got.ClaimedBy)
	assert.Equal(t, 1, got.AttemptCount, "attempts survive recovery")
}
