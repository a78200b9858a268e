package routine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	entroutine "github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/ent/scheduleditem"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func newTestScheduler(t *testing.T) (*Scheduler, *ent.Client, *ProbeRegistry) {
	db := testdb.NewTestClient(t)
	probes := NewProbeRegistry(db.Client)
	ledger := dispatch.NewLedger(db.Client)
	svc := NewService(db.Client, ledger, probes)
	cfg := &config.RoutineConfig{ScheduledScanInterval: 10 * time.Millisecond}
	return NewScheduler(db.Client, cfg, svc, ledger, probes), db.Client, probes
}

// seedDueRoutine inserts a timed routine whose next_run_at already passed.
func seedDueRoutine(t *testing.T, client *ent.Client, kind entroutine.TriggerKind, mutate func(*ent.RoutineCreate)) *ent.Routine {
	t.Helper()
	builder := client.Routine.Create().
		SetID(uuid.New().String()).
		SetAgentID("agent-1").
		SetTriggerKind(kind).
		SetActionPrompt("do the scheduled thing").
		SetCronExpr("*/5 * * * *").
		SetNextRunAt(time.Now().Add(-time.Minute))
	if mutate != nil {
		mutate(builder)
	}
	row, err := builder.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestAdvanceDueCronRoutine(t *testing.T) {
	s, client, _ := newTestScheduler(t)
	ctx := context.Background()

	r := seedDueRoutine(t, client, entroutine.TriggerKindCron, nil)

	require.NoError(t, s.advanceDueRoutines(ctx))

	item, err := client.ScheduledItem.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", item.AgentID)
	assert.Equal(t, scheduleditem.StatusPending, item.Status)
	assert.Equal(t, "do the scheduled thing", item.Payload["prompt"])
	assert.Equal(t, r.ID, item.RoutineID)

	got, err := client.Routine.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.NextRunAt)
	assert.True(t, got.NextRunAt.After(time.Now()), "schedule advanced past now")
	assert.Equal(t, "scheduled", got.LastStatus)
	assert.NotNil(t, got.LastFiredAt)

	run, err := client.RoutineRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, routinerun.DecisionEnqueued, run.Decision)
	assert.Equal(t, item.ID, run.ScheduledItemID)
}

func TestAdvanceOneshotDisablesAfterFire(t *testing.T) {
	s, client, _ := newTestScheduler(t)
	ctx := context.Background()

	r := seedDueRoutine(t, client, entroutine.TriggerKindOneshot, func(b *ent.RoutineCreate) {
		b.SetCronExpr("")
	})

	require.NoError(t, s.advanceDueRoutines(ctx))

	got, err := client.Routine.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Nil(t, got.NextRunAt)

	n, err := client.ScheduledItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "the single shot still fired")
}

func TestConditionProbeDeclineSkips(t *testing.T) {
	s, client, probes := newTestScheduler(t)
	ctx := context.Background()

	probes.Register("never", func(context.Context, map[string]interface{}) (bool, string, error) {
		return false, "below threshold", nil
	})
	r := seedDueRoutine(t, client, entroutine.TriggerKindCondition, func(b *ent.RoutineCreate) {
		b.SetConditionProbe("never")
	})

	require.NoError(t, s.advanceDueRoutines(ctx))

	n, err := client.ScheduledItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	run, err := client.RoutineRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, routinerun.DecisionSkipped, run.Decision)
	assert.Equal(t, "below threshold", run.DecisionReason)

	got, err := client.Routine.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.NextRunAt)
	assert.True(t, got.NextRunAt.After(time.Now()), "declined ticks still advance the schedule")
}

func TestConditionProbeFireSchedules(t *testing.T) {
	s, client, probes := newTestScheduler(t)
	ctx := context.Background()

	probes.Register("always", func(context.Context, map[string]interface{}) (bool, string, error) {
		return true, "queue backed up", nil
	})
	seedDueRoutine(t, client, entroutine.TriggerKindCondition, func(b *ent.RoutineCreate) {
		b.SetConditionProbe("always")
	})

	require.NoError(t, s.advanceDueRoutines(ctx))

	item, err := client.ScheduledItem.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "queue backed up", item.Payload["detail"])
}

func TestConditionProbeErrorRecordsReceipt(t *testing.T) {
	s, client, probes := newTestScheduler(t)
	ctx := context.Background()

	probes.Register("broken", func(context.Context, map[string]interface{}) (bool, string, error) {
		return false, "", errors.New("metrics endpoint down")
	})
	seedDueRoutine(t, client, entroutine.TriggerKindCondition, func(b *ent.RoutineCreate) {
		b.SetConditionProbe("broken")
	})

	require.NoError(t, s.advanceDueRoutines(ctx))

	run, err := client.RoutineRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, routinerun.DecisionError, run.Decision)
	assert.Contains(t, run.DecisionReason, "probe failed")
}

func TestAdvanceSkipsNotDueAndDisabled(t *testing.T) {
	s, client, _ := newTestScheduler(t)
	ctx := context.Background()

	seedDueRoutine(t, client, entroutine.TriggerKindCron, func(b *ent.RoutineCreate) {
		b.SetNextRunAt(time.Now().Add(time.Hour))
	})
	seedDueRoutine(t, client, entroutine.TriggerKindCron, func(b *ent.RoutineCreate) {
		b.SetEnabled(false)
	})

	require.NoError(t, s.advanceDueRoutines(ctx))

	n, err := client.ScheduledItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFireDueItemsCreatesDispatch(t *testing.T) {
	s, client, _ := newTestScheduler(t)
	ctx := context.Background()

	itemID := uuid.New().String()
	err := client.ScheduledItem.Create().
		SetID(itemID).
		SetAgentID("agent-1").
		SetSessionKey("ops:standup").
		SetType(scheduleditem.TypeCron).
		SetPayload(map[string]interface{}{"prompt": "post the standup summary"}).
		SetRunAt(time.Now().Add(-time.Second)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, s.fireDueItems(ctx))

	disp, err := client.RunDispatch.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ops:standup", disp.SessionKey)
	assert.Equal(t, "scheduled:"+itemID, disp.RunKey)
	assert.Equal(t, "post the standup summary", disp.InputText)
	assert.Equal(t, rundispatch.StatusQueued, disp.Status)

	got, err := client.ScheduledItem.Get(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, scheduleditem.StatusFired, got.Status)
}

func TestFireDueItemsRearmsRecurring(t *testing.T) {
	s, client, _ := newTestScheduler(t)
	ctx := context.Background()

	err := client.ScheduledItem.Create().
		SetID(uuid.New().String()).
		SetAgentID("agent-1").
		SetType(scheduleditem.TypeCron).
		SetPayload(map[string]interface{}{"prompt": "hourly check"}).
		SetRunAt(time.Now().Add(-time.Second)).
		SetRecurrence("0 * * * *").
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, s.fireDueItems(ctx))

	pending, err := client.ScheduledItem.Query().
		Where(scheduleditem.StatusEQ(scheduleditem.StatusPending)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0 * * * *", pending.Recurrence)
	assert.True(t, pending.RunAt.After(time.Now()))
	assert.Equal(t, "hourly check", pending.Payload["prompt"])
}

func TestFireDueItemsIgnoresFutureItems(t *testing.T) {
	s, client, _ := newTestScheduler(t)
	ctx := context.Background()

	err := client.ScheduledItem.Create().
		SetID(uuid.New().String()).
		SetAgentID("agent-1").
		SetType(scheduleditem.TypeCron).
		SetRunAt(time.Now().Add(time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, s.fireDueItems(ctx))

	n, err := client.RunDispatch.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
