package routine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/hooklinehq/hookline/ent"
	entroutine "github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/services"
	"github.com/hooklinehq/hookline/pkg/sessionqueue"
)

// cronParser accepts standard five-field cron expressions.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// Service manages routines, evaluates them and records receipts.
type Service struct {
	client *ent.Client
	ledger *dispatch.Ledger
	probes *ProbeRegistry
	logger *slog.Logger
}

// NewService creates a routine Service.
func NewService(client *ent.Client, ledger *dispatch.Ledger, probes *ProbeRegistry) *Service {
	return &Service{
		client: client,
		ledger: ledger,
		probes: probes,
		logger: slog.With("component", "routine_evaluator"),
	}
}

// CreateInput is the admin-facing routine definition.
type CreateInput struct {
	AgentID                string
	Name                   string
	TriggerKind            string
	CronExpr               string
	Timezone               string
	RuleJSON               string
	ConditionProbe         string
	ConditionConfig        map[string]interface{}
	TargetPluginInstanceID string
	TargetSessionKey       string
	ActionPrompt           string
	MinInterval            time.Duration
	RunAt                  time.Time // oneshot fire time
}

// Create validates the trigger definition and persists it.
func (s *Service) Create(ctx context.Context, input CreateInput) (*ent.Routine, error) {
	if input.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "agent id is required")
	}
	if input.ActionPrompt == "" {
		return nil, services.NewValidationError("action_prompt", "action prompt is required")
	}

	var nextRunAt *time.Time
	switch entroutine.TriggerKind(input.TriggerKind) {
	case entroutine.TriggerKindCron, entroutine.TriggerKindCondition:
		next, err := s.nextCronTime(input.CronExpr, input.Timezone, time.Now())
		if err != nil {
			return nil, services.NewValidationError("cron_expr", err.Error())
		}
		nextRunAt = &next

	case entroutine.TriggerKindEvent:
		if _, err := ParseRule(input.RuleJSON); err != nil {
			return nil, services.NewValidationError("rule_json", err.Error())
		}

	case entroutine.TriggerKindOneshot:
		if input.RunAt.IsZero() {
			return nil, services.NewValidationError("run_at", "oneshot routines need a fire time")
		}
		nextRunAt = &input.RunAt

	default:
		return nil, services.NewValidationError("trigger_kind",
			fmt.Sprintf("unknown trigger kind '%s'", input.TriggerKind))
	}

	if entroutine.TriggerKind(input.TriggerKind) == entroutine.TriggerKindCondition {
		if _, err := s.probes.Get(input.ConditionProbe); err != nil {
			return nil, services.NewValidationError("condition_probe", err.Error())
		}
	}

	builder := s.client.Routine.Create().
		SetID(uuid.New().String()).
		SetAgentID(input.AgentID).
		SetTriggerKind(entroutine.TriggerKind(input.TriggerKind)).
		SetActionPrompt(input.ActionPrompt).
		SetMinIntervalMs(input.MinInterval.Milliseconds())

	if input.Name != "" {
		builder.SetName(input.Name)
	}
	if input.CronExpr != "" {
		builder.SetCronExpr(input.CronExpr)
	}
	if input.Timezone != "" {
		builder.SetTimezone(input.Timezone)
	}
	if input.RuleJSON != "" {
		builder.SetRuleJSON(input.RuleJSON)
	}
	if input.ConditionProbe != "" {
		builder.SetConditionProbe(input.ConditionProbe)
	}
	if input.ConditionConfig != nil {
		builder.SetConditionConfig(input.ConditionConfig)
	}
	if input.TargetPluginInstanceID != "" {
		builder.SetTargetPluginInstanceID(input.TargetPluginInstanceID)
	}
	if input.TargetSessionKey != "" {
		builder.SetTargetSessionKey(input.TargetSessionKey)
	}
	if nextRunAt != nil {
		builder.SetNextRunAt(*nextRunAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}
	return row, nil
}

// Get fetches one routine by id.
func (s *Service) Get(ctx context.Context, id string) (*ent.Routine, error) {
	row, err := s.client.Routine.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	return row, nil
}

// List returns routines, optionally filtered by agent.
func (s *Service) List(ctx context.Context, agentID string) ([]*ent.Routine, error) {
	q := s.client.Routine.Query()
	if agentID != "" {
		q = q.Where(entroutine.AgentIDEQ(agentID))
	}
	rows, err := q.Order(ent.Asc(entroutine.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	return rows, nil
}

// SetEnabled flips a routine's enabled flag.
func (s *Service) SetEnabled(ctx context.Context, id string, enabled bool) error {
	err := s.client.Routine.UpdateOneID(id).SetEnabled(enabled).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to update routine: %w", err)
	}
	return nil
}

// Runs returns the evaluation receipts of a routine, newest first.
func (s *Service) Runs(ctx context.Context, routineID string, limit int) ([]*ent.RoutineRun, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.client.RoutineRun.Query().
		Where(routinerun.RoutineIDEQ(routineID)).
		Order(ent.Desc(routinerun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routine runs: %w", err)
	}
	return rows, nil
}

// EvaluateEvent matches one ingress envelope against every enabled event
// routine, firing dispatches for matches and recording a receipt per
// evaluation.
func (s *Service) EvaluateEvent(ctx context.Context, env *Envelope, workItemID string) error {
	routines, err := s.client.Routine.Query().
		Where(
			entroutine.TriggerKindEQ(entroutine.TriggerKindEvent),
			entroutine.Enabled(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query event routines: %w", err)
	}

	for _, r := range routines {
		s.evaluateOne(ctx, r, env, workItemID)
	}
	return nil
}

// evaluateOne runs one routine's rule against the envelope and acts on
// the verdict.
func (s *Service) evaluateOne(ctx context.Context, r *ent.Routine, env *Envelope, workItemID string) {
	receipt := receipt{routine: r, envelope: env, workItemID: workItemID}

	rule, err := ParseRule(r.RuleJSON)
	if err != nil {
		s.record(ctx, receipt.errored(fmt.Sprintf("rule parse failed: %v", err)))
		return
	}

	if !rule.Eval(env) {
		s.record(ctx, receipt.skipped("rule_not_matched"))
		return
	}

	if reason, throttled := s.throttled(r); throttled {
		s.record(ctx, receipt.throttled(reason))
		return
	}

	row, err := s.fireDispatch(ctx, r, env, workItemID)
	if err != nil {
		s.record(ctx, receipt.errored(err.Error()))
		return
	}
	receipt.dispatchID = row.ID
	s.record(ctx, receipt.enqueued("rule_matched"))
	s.markFired(ctx, r.ID, "enqueued")
}

// throttled applies the routine's minimum fire gap. Zero disables it.
func (s *Service) throttled(r *ent.Routine) (string, bool) {
	if r.MinIntervalMs <= 0 || r.LastFiredAt == nil {
		return "", false
	}
	gap := time.Duration(r.MinIntervalMs) * time.Millisecond
	elapsed := time.Since(*r.LastFiredAt)
	if elapsed < gap {
		return fmt.Sprintf("fired %s ago, minimum gap %s", elapsed.Round(time.Millisecond), gap), true
	}
	return "", false
}

// fireDispatch writes a run dispatch for a fired routine.
func (s *Service) fireDispatch(ctx context.Context, r *ent.Routine, env *Envelope, workItemID string) (*ent.RunDispatch, error) {
	sessionKey := r.TargetSessionKey
	if sessionKey == "" && env != nil {
		sessionKey = env.SessionKey
	}
	if sessionKey == "" {
		sessionKey = "routine:" + r.ID
	}

	inputText := r.ActionPrompt
	if env != nil {
		inputText = fmt.Sprintf("%s\n\n[triggering event: %s from %s, ref %s]",
			r.ActionPrompt, env.EventType, env.Source, env.SourceRef)
	}

	return s.ledger.Create(ctx, dispatch.CreateInput{
		QueueKey:   sessionqueue.QueueKey(sessionKey, r.AgentID),
		SessionKey: sessionKey,
		AgentID:    r.AgentID,
		WorkItemID: workItemID,
		RunKey:     "routine:" + r.ID,
		InputText:  inputText,
	})
}

// markFired stamps the routine's fire bookkeeping.
func (s *Service) markFired(ctx context.Context, routineID, status string) {
	err := s.client.Routine.UpdateOneID(routineID).
		SetLastFiredAt(time.Now()).
		SetLastStatus(status).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("Failed to stamp routine fire", "routine_id", routineID, "error", err)
	}
}

// nextCronTime computes the next fire time for an expression in its
// timezone.
func (s *Service) nextCronTime(expr, timezone string, after time.Time) (time.Time, error) {
	if expr == "" {
		return time.Time{}, fmt.Errorf("cron expression is required")
	}
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression: %w", err)
	}
	loc := time.UTC
	if timezone != "" {
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timezone: %w", err)
		}
	}
	return sched.Next(after.In(loc)), nil
}

// receipt accumulates one evaluation's outcome before it is recorded.
type receipt struct {
	routine    *ent.Routine
	envelope   *Envelope
	workItemID string
	dispatchID string
	scheduled  string

	decision routinerun.Decision
	reason   string
}

func (rc receipt) enqueued(reason string) receipt {
	rc.decision, rc.reason = routinerun.DecisionEnqueued, reason
	return rc
}
func (rc receipt) skipped(reason string) receipt {
	rc.decision, rc.reason = routinerun.DecisionSkipped, reason
	return rc
}
func (rc receipt) throttled(reason string) receipt {
	rc.decision, rc.reason = routinerun.DecisionThrottled, reason
	return rc
}
func (rc receipt) errored(reason string) receipt {
	rc.decision, rc.reason = routinerun.DecisionError, reason
	return rc
}

// recordTx persists one timed-evaluation receipt inside the scheduler's
// scan transaction.
func (s *Service) recordTx(ctx context.Context, tx *ent.Tx, r *ent.Routine, decision routinerun.Decision, reason, scheduledItemID string) {
	builder := tx.RoutineRun.Create().
		SetID(uuid.New().String()).
		SetRoutineID(r.ID).
		SetDecision(decision).
		SetDecisionReason(reason)
	if scheduledItemID != "" {
		builder.SetScheduledItemID(scheduledItemID)
	}
	if err := builder.Exec(ctx); err != nil {
		s.logger.Warn("Failed to record routine run",
			"routine_id", r.ID, "decision", decision, "error", err)
	}
}

// record persists one evaluation receipt.
func (s *Service) record(ctx context.Context, rc receipt) {
	builder := s.client.RoutineRun.Create().
		SetID(uuid.New().String()).
		SetRoutineID(rc.routine.ID).
		SetDecision(rc.decision).
		SetDecisionReason(rc.reason)

	if rc.envelope != nil {
		builder.SetEnvelope(rc.envelope.ToMap())
	}
	if rc.workItemID != "" {
		builder.SetWorkItemID(rc.workItemID)
	}
	if rc.dispatchID != "" {
		builder.SetDispatchID(rc.dispatchID)
	}
	if rc.scheduled != "" {
		builder.SetScheduledItemID(rc.scheduled)
	}

	if err := builder.Exec(ctx); err != nil {
		s.logger.Warn("Failed to record routine run",
			"routine_id", rc.routine.ID, "decision", rc.decision, "error", err)
	}
}
