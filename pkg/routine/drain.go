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
	"github.com/hooklinehq/hookline/ent/routineevent"
	"github.com/hooklinehq/hookline/pkg/config"
)

const maxEventAttempts = 3

// EnqueueEvent drops one ingress envelope into the routine event inbox.
// Ingress calls this after a work item is created; evaluation happens
// asynchronously in the drain workers.
func (s *Service) EnqueueEvent(ctx context.Context, env *Envelope, workItemID string) error {
	builder := s.client.RoutineEvent.Create().
		SetID(uuid.New().String()).
		SetEnvelope(env.ToMap())
	if workItemID != "" {
		builder.SetWorkItemID(workItemID)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue routine event: %w", err)
	}
	return nil
}

// Drain runs the event-inbox workers: each leases pending envelopes with
// SKIP LOCKED and evaluates them against the enabled event routines.
type Drain struct {
	podID    string
	client   *ent.Client
	cfg      *config.RoutineConfig
	service  *Service
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewDrain creates the event inbox drain.
func NewDrain(podID string, client *ent.Client, cfg *config.RoutineConfig, service *Service) *Drain {
	return &Drain{
		podID:   podID,
		client:  client,
		cfg:     cfg,
		service: service,
		stopCh:  make(chan struct{}),
		logger:  slog.With("component", "routine_drain"),
	}
}

// Start spawns the drain workers.
func (d *Drain) Start(ctx context.Context) {
	workers := d.cfg.EventDrainWorkers
	if workers <= 0 {
		workers = 2
	}
	d.logger.Info("Starting routine event drain", "workers", workers)
	for i := 0; i < workers; i++ {
		id := fmt.Sprintf("%s-routine-%d", d.podID, i)
		d.wg.Add(1)
		go d.run(ctx, id)
	}
}

// Stop halts the workers and waits for in-flight evaluations.
func (d *Drain) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
	d.logger.Info("Routine event drain stopped")
}

func (d *Drain) run(ctx context.Context, workerID string) {
	defer d.wg.Done()
	log := d.logger.With("worker_id", workerID)

	interval := d.cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		default:
			event, err := d.claimNext(ctx, workerID)
			if err != nil {
				log.Error("Failed to claim routine event", "error", err)
				d.sleep(time.Second)
				continue
			}
			if event == nil {
				if err := d.recoverExpired(ctx); err != nil {
					log.Error("Routine event lease recovery failed", "error", err)
				}
				d.sleep(interval)
				continue
			}
			d.process(ctx, event, log)
		}
	}
}

func (d *Drain) sleep(duration time.Duration) {
	select {
	case <-d.stopCh:
	case <-time.After(duration):
	}
}

// claimNext leases the oldest pending inbox row, or returns nil when the
// inbox is empty.
func (d *Drain) claimNext(ctx context.Context, workerID string) (*ent.RoutineEvent, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start event claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.RoutineEvent.Query().
		Where(routineevent.StatusEQ(routineevent.StatusPending)).
		Order(ent.Asc(routineevent.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, tx.Commit()
		}
		return nil, fmt.Errorf("failed to query routine events: %w", err)
	}

	lease := d.cfg.EventLease
	if lease <= 0 {
		lease = time.Minute
	}
	claimed, err := row.Update().
		SetStatus(routineevent.StatusProcessing).
		SetClaimedBy(workerID).
		SetLeaseExpiresAt(time.Now().Add(lease)).
		AddAttemptCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lease routine event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event claim: %w", err)
	}
	return claimed, nil
}

// process evaluates one claimed envelope and settles the inbox row.
func (d *Drain) process(ctx context.Context, event *ent.RoutineEvent, log *slog.Logger) {
	env := EnvelopeFromMap(event.Envelope)

	err := d.service.EvaluateEvent(ctx, env, event.WorkItemID)
	if err != nil {
		log.Error("Routine event evaluation failed",
			"routine_event_id", event.ID, "attempt", event.AttemptCount, "error", err)
		status := routineevent.StatusPending
		if event.AttemptCount >= maxEventAttempts {
			status = routineevent.StatusFailed
		}
		if uerr := d.client.RoutineEvent.UpdateOneID(event.ID).
			SetStatus(status).
			ClearClaimedBy().
			ClearLeaseExpiresAt().
			Exec(ctx); uerr != nil {
			log.Error("Failed to settle routine event", "error", uerr)
		}
		return
	}

	if uerr := d.client.RoutineEvent.UpdateOneID(event.ID).
		SetStatus(routineevent.StatusDone).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Exec(ctx); uerr != nil {
		log.Error("Failed to mark routine event done", "error", uerr)
	}
}

// recoverExpired returns processing rows with expired leases to pending.
func (d *Drain) recoverExpired(ctx context.Context) error {
	n, err := d.client.RoutineEvent.Update().
		Where(
			routineevent.StatusEQ(routineevent.StatusProcessing),
			routineevent.LeaseExpiresAtNotNil(),
			routineevent.LeaseExpiresAtLT(time.Now()),
		).
		SetStatus(routineevent.StatusPending).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover expired event leases: %w", err)
	}
	if n > 0 {
		d.logger.Warn("Recovered routine events from expired leases", "count", n)
	}
	return nil
}
