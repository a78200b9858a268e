package routine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	entroutine "github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/services"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func newRoutineService(t *testing.T) (*Service, *ent.Client) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, dispatch.NewLedger(db.Client), NewProbeRegistry(db.Client))
	return svc, db.Client
}

func matchEnvelope() *Envelope {
	return &Envelope{
		EventID:    "evt-1",
		Source:     "repohook",
		EventType:  "issues",
		SourceRef:  "acme/widgets#12",
		SessionKey: "repo:acme/widgets#12",
		Status:     "new",
		Title:      "crash on startup",
		ActorKind:  "user",
	}
}

func eventRoutineInput(rule string) CreateInput {
	return CreateInput{
		AgentID:      "agent-1",
		Name:         "new issues",
		TriggerKind:  "event",
		RuleJSON:     rule,
		ActionPrompt: "triage the new issue",
	}
}

func TestCreateEventRoutine(t *testing.T) {
	svc, _ := newRoutineService(t)

	row, err := svc.Create(context.Background(),
		eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`))
	require.NoError(t, err)
	assert.Equal(t, entroutine.TriggerKindEvent, row.TriggerKind)
	assert.True(t, row.Enabled)
	assert.Nil(t, row.NextRunAt, "event routines are not time-driven")
}

func TestCreateCronRoutineComputesNextRun(t *testing.T) {
	svc, _ := newRoutineService(t)

	row, err := svc.Create(context.Background(), CreateInput{
		AgentID:      "agent-1",
		TriggerKind:  "cron",
		CronExpr:     "*/5 * * * *",
		ActionPrompt: "sweep the queue",
	})
	require.NoError(t, err)
	require.NotNil(t, row.NextRunAt)
	assert.True(t, row.NextRunAt.After(time.Now()))
	assert.True(t, row.NextRunAt.Before(time.Now().Add(6*time.Minute)))
}

func TestCreateOneshotRoutine(t *testing.T) {
	svc, _ := newRoutineService(t)

	at := time.Now().Add(time.Hour)
	row, err := svc.Create(context.Background(), CreateInput{
		AgentID:      "agent-1",
		TriggerKind:  "oneshot",
		RunAt:        at,
		ActionPrompt: "remind me",
	})
	require.NoError(t, err)
	require.NotNil(t, row.NextRunAt)
	assert.WithinDuration(t, at, *row.NextRunAt, time.Second)
}

func TestCreateValidations(t *testing.T) {
	svc, _ := newRoutineService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"missing agent", CreateInput{TriggerKind: "event", RuleJSON: `{"field":"source","op":"eq","value":"x"}`, ActionPrompt: "p"}},
		{"missing prompt", CreateInput{AgentID: "a", TriggerKind: "event", RuleJSON: `{"field":"source","op":"eq","value":"x"}`}},
		{"unknown trigger kind", CreateInput{AgentID: "a", TriggerKind: "webhook", ActionPrompt: "p"}},
		{"bad cron", CreateInput{AgentID: "a", TriggerKind: "cron", CronExpr: "not a cron", ActionPrompt: "p"}},
		{"missing cron", CreateInput{AgentID: "a", TriggerKind: "cron", ActionPrompt: "p"}},
		{"bad timezone", CreateInput{AgentID: "a", TriggerKind: "cron", CronExpr: "* * * * *", Timezone: "Mars/Olympus", ActionPrompt: "p"}},
		{"bad rule", CreateInput{AgentID: "a", TriggerKind: "event", RuleJSON: `{"op":"noop"}`, ActionPrompt: "p"}},
		{"oneshot without run_at", CreateInput{AgentID: "a", TriggerKind: "oneshot", ActionPrompt: "p"}},
		{"unknown probe", CreateInput{AgentID: "a", TriggerKind: "condition", CronExpr: "* * * * *", ConditionProbe: "nope", ActionPrompt: "p"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			assert.True(t, services.IsValidationError(err))
		})
	}
}

func TestSetEnabledAndGet(t *testing.T) {
	svc, _ := newRoutineService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, eventRoutineInput(`{"field":"source","op":"eq","value":"repohook"}`))
	require.NoError(t, err)

	require.NoError(t, svc.SetEnabled(ctx, row.ID, false))
	got, err := svc.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	assert.ErrorIs(t, svc.SetEnabled(ctx, "missing", true), services.ErrNotFound)
	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEvaluateEventFiresMatchingRoutine(t *testing.T) {
	svc, client := newRoutineService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`))
	require.NoError(t, err)

	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-1"))

	disp, err := client.RunDispatch.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "repo:acme/widgets#12", disp.SessionKey)
	assert.Equal(t, "agent-1", disp.AgentID)
	assert.Equal(t, "routine:"+row.ID, disp.RunKey)
	assert.Contains(t, disp.InputText, "triage the new issue")
	assert.Contains(t, disp.InputText, "triggering event: issues")
	assert.Equal(t, rundispatch.StatusQueued, disp.Status)

	runs, err := svc.Runs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, routinerun.DecisionEnqueued, runs[0].Decision)
	assert.Equal(t, disp.ID, runs[0].DispatchID)

	got, err := svc.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastFiredAt)
	assert.Equal(t, "enqueued", got.LastStatus)
}

func TestEvaluateEventSkipsNonMatch(t *testing.T) {
	svc, client := newRoutineService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, eventRoutineInput(`{"field":"eventType","op":"eq","value":"pull_request"}`))
	require.NoError(t, err)

	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-1"))

	n, err := client.RunDispatch.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	runs, err := svc.Runs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, routinerun.DecisionSkipped, runs[0].Decision)
	assert.Equal(t, "rule_not_matched", runs[0].DecisionReason)
}

func TestEvaluateEventThrottles(t *testing.T) {
	svc, client := newRoutineService(t)
	ctx := context.Background()

	in := eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`)
	in.MinInterval = time.Hour
	row, err := svc.Create(ctx, in)
	require.NoError(t, err)

	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-1"))
	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-2"))

	n, err := client.RunDispatch.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "second evaluation lands inside the minimum gap")

	runs, err := svc.Runs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, routinerun.DecisionThrottled, runs[0].Decision, "newest receipt first")
}

func TestEvaluateEventIgnoresDisabled(t *testing.T) {
	svc, client := newRoutineService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`))
	require.NoError(t, err)
	require.NoError(t, svc.SetEnabled(ctx, row.ID, false))

	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-1"))

	n, err := client.RoutineRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "disabled routines are not evaluated at all")
}

func TestEvaluateEventRecordsRuleError(t *testing.T) {
	svc, client := newRoutineService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`))
	require.NoError(t, err)
	// Corrupt the stored rule after creation.
	err = client.Routine.UpdateOneID(row.ID).SetRuleJSON(`{"op":`).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-1"))

	runs, err := svc.Runs(ctx, row.ID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, routinerun.DecisionError, runs[0].Decision)
	assert.Contains(t, runs[0].DecisionReason, "rule parse failed")
}

func TestFireDispatchSessionKeyFallbacks(t *testing.T) {
	svc, client := newRoutineService(t)
	ctx := context.Background()

	// Explicit target session key wins over the envelope.
	in := eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`)
	in.TargetSessionKey = "ops:routing"
	row, err := svc.Create(ctx, in)
	require.NoError(t, err)

	require.NoError(t, svc.EvaluateEvent(ctx, matchEnvelope(), "wi-1"))

	disp, err := client.RunDispatch.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ops:routing", disp.SessionKey)

	// Without a target or envelope key the routine gets its own lane.
	env := matchEnvelope()
	env.SessionKey = ""
	row2, err := svc.Create(ctx, eventRoutineInput(`{"field":"eventType","op":"eq","value":"issues"}`))
	require.NoError(t, err)
	require.NoError(t, client.Routine.UpdateOneID(row.ID).SetEnabled(false).Exec(ctx))

	require.NoError(t, svc.EvaluateEvent(ctx, env, "wi-2"))

	disp2, err := client.RunDispatch.Query().
		Where(rundispatch.RunKeyEQ("routine:" + row2.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "routine:"+row2.ID, disp2.SessionKey)
}
