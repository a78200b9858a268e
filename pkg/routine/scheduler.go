package routine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hooklinehq/hookline/ent"
	entroutine "github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/ent/scheduleditem"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/sessionqueue"
)

// Scheduler is the time driver: it advances due cron, oneshot and
// condition routines into scheduled items, and fires due scheduled
// items into run dispatches. Scans lease rows with SKIP LOCKED so
// replicas share the work without double-firing.
type Scheduler struct {
	client   *ent.Client
	cfg      *config.RoutineConfig
	service  *Service
	ledger   *dispatch.Ledger
	probes   *ProbeRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewScheduler creates the routine time driver.
func NewScheduler(client *ent.Client, cfg *config.RoutineConfig, service *Service, ledger *dispatch.Ledger, probes *ProbeRegistry) *Scheduler {
	return &Scheduler{
		client:  client,
		cfg:     cfg,
		service: service,
		ledger:  ledger,
		probes:  probes,
		stopCh:  make(chan struct{}),
		logger:  slog.With("component", "routine_scheduler"),
	}
}

// Start begins the scan loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the scan loop and waits for the current pass.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	s.logger.Info("Routine scheduler started",
		"scan_interval", s.cfg.ScheduledScanInterval)

	interval := s.cfg.ScheduledScanInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			s.logger.Info("Routine scheduler shutting down")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.advanceDueRoutines(ctx); err != nil {
				s.logger.Error("Routine scan failed", "error", err)
			}
			if err := s.fireDueItems(ctx); err != nil {
				s.logger.Error("Scheduled item scan failed", "error", err)
			}
		}
	}
}

// advanceDueRoutines claims timed routines whose next_run_at has passed
// and turns each tick into a scheduled item (or a skip receipt when a
// condition probe declines).
func (s *Scheduler) advanceDueRoutines(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start routine scan transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	due, err := tx.Routine.Query().
		Where(
			entroutine.Enabled(true),
			entroutine.TriggerKindIn(
				entroutine.TriggerKindCron,
				entroutine.TriggerKindCondition,
				entroutine.TriggerKindOneshot,
			),
			entroutine.NextRunAtNotNil(),
			entroutine.NextRunAtLTE(now),
		).
		Order(ent.Asc(entroutine.FieldNextRunAt)).
		Limit(50).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query due routines: %w", err)
	}

	for _, r := range due {
		if err := s.tick(ctx, tx, r, now); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit routine scan: %w", err)
	}
	return nil
}

// tick handles one due timed routine inside the scan transaction.
func (s *Scheduler) tick(ctx context.Context, tx *ent.Tx, r *ent.Routine, now time.Time) error {
	log := s.logger.With("routine_id", r.ID, "trigger_kind", r.TriggerKind)

	fire := true
	detail := "schedule due"
	if r.TriggerKind == entroutine.TriggerKindCondition {
		probe, err := s.probes.Get(r.ConditionProbe)
		if err != nil {
			s.service.recordTx(ctx, tx, r, routinerun.DecisionError, err.Error(), "")
			return s.advance(ctx, tx, r, now)
		}
		fired, probeDetail, err := probe(ctx, r.ConditionConfig)
		if err != nil {
			s.service.recordTx(ctx, tx, r, routinerun.DecisionError, fmt.Sprintf("probe failed: %v", err), "")
			return s.advance(ctx, tx, r, now)
		}
		fire, detail = fired, probeDetail
	}

	if !fire {
		s.service.recordTx(ctx, tx, r, routinerun.DecisionSkipped, detail, "")
		return s.advance(ctx, tx, r, now)
	}

	itemID := uuid.New().String()
	_, err := tx.ScheduledItem.Create().
		SetID(itemID).
		SetAgentID(r.AgentID).
		SetSessionKey(r.TargetSessionKey).
		SetType(scheduleditem.TypeCron).
		SetPayload(map[string]interface{}{
			"prompt": r.ActionPrompt,
			"detail": detail,
		}).
		SetRunAt(now).
		SetRoutineID(r.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create scheduled item: %w", err)
	}
	log.Info("Routine tick scheduled", "scheduled_item_id", itemID)

	s.service.recordTx(ctx, tx, r, routinerun.DecisionEnqueued, detail, itemID)

	err = tx.Routine.UpdateOneID(r.ID).
		SetLastFiredAt(now).
		SetLastStatus("scheduled").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to stamp routine fire: %w", err)
	}
	return s.advance(ctx, tx, r, now)
}

// advance computes and stores the routine's next fire time. Oneshots are
// disabled instead.
func (s *Scheduler) advance(ctx context.Context, tx *ent.Tx, r *ent.Routine, after time.Time) error {
	upd := tx.Routine.UpdateOneID(r.ID)
	if r.TriggerKind == entroutine.TriggerKindOneshot {
		upd.ClearNextRunAt().SetEnabled(false)
	} else {
		next, err := s.service.nextCronTime(r.CronExpr, r.Timezone, after)
		if err != nil {
			// Expression went bad after creation; park the routine.
			s.logger.Error("Routine cron expression no longer parses, disabling",
				"routine_id", r.ID, "error", err)
			upd.ClearNextRunAt().SetEnabled(false).SetLastStatus("error")
		} else {
			upd.SetNextRunAt(next)
		}
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to advance routine schedule: %w", err)
	}
	return nil
}

// fireDueItems claims due pending scheduled items and turns each into a
// run dispatch. Recurring items re-arm themselves.
func (s *Scheduler) fireDueItems(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start scheduled item transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	due, err := tx.ScheduledItem.Query().
		Where(
			scheduleditem.StatusEQ(scheduleditem.StatusPending),
			scheduleditem.RunAtLTE(now),
		).
		Order(ent.Asc(scheduleditem.FieldRunAt)).
		Limit(50).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query due scheduled items: %w", err)
	}

	for _, item := range due {
		if err := s.fireItem(ctx, tx, item, now); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scheduled item scan: %w", err)
	}
	return nil
}

func (s *Scheduler) fireItem(ctx context.Context, tx *ent.Tx, item *ent.ScheduledItem, now time.Time) error {
	log := s.logger.With("scheduled_item_id", item.ID, "type", item.Type)

	if err := tx.ScheduledItem.UpdateOneID(item.ID).
		SetStatus(scheduleditem.StatusFiring).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark scheduled item firing: %w", err)
	}

	sessionKey := item.SessionKey
	if sessionKey == "" {
		sessionKey = "scheduled:" + item.AgentID
	}
	inputText, _ := item.Payload["prompt"].(string)
	if inputText == "" {
		inputText = fmt.Sprintf("[scheduled %s invocation]", item.Type)
	}

	row, err := s.ledger.CreateTx(ctx, tx, dispatch.CreateInput{
		QueueKey:   sessionqueue.QueueKey(sessionKey, item.AgentID),
		SessionKey: sessionKey,
		AgentID:    item.AgentID,
		RunKey:     "scheduled:" + item.ID,
		InputText:  inputText,
	})
	if err != nil {
		return fmt.Errorf("failed to dispatch scheduled item: %w", err)
	}

	if err := tx.ScheduledItem.UpdateOneID(item.ID).
		SetStatus(scheduleditem.StatusFired).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark scheduled item fired: %w", err)
	}
	log.Info("Scheduled item fired", "dispatch_id", row.ID)

	if item.Recurrence != "" {
		next, err := s.service.nextCronTime(item.Recurrence, "", now)
		if err != nil {
			log.Error("Recurring item has invalid recurrence, not re-arming", "error", err)
			return nil
		}
		_, err = tx.ScheduledItem.Create().
			SetID(uuid.New().String()).
			SetAgentID(item.AgentID).
			SetSessionKey(item.SessionKey).
			SetType(item.Type).
			SetPayload(item.Payload).
			SetRunAt(next).
			SetRecurrence(item.Recurrence).
			SetRoutineID(item.RoutineID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to re-arm recurring item: %w", err)
		}
	}
	return nil
}
