package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/hooks"
)

// Pool runs a fixed worker set per delivery channel plus the background
// sweeps: lease recovery, unknown-state reconciliation and cancellation
// propagation.
type Pool struct {
	podID     string
	client    *ent.Client
	cfg       *config.OutboxConfig
	deliverer *Deliverer
	hooks     *hooks.Dispatcher
	channels  []string
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool
}

// NewPool creates an outbox pool for the given channels (usually the
// registered plugin types). hookDispatcher may be nil.
func NewPool(podID string, client *ent.Client, cfg *config.OutboxConfig, deliverer *Deliverer, hookDispatcher *hooks.Dispatcher, channels []string) *Pool {
	return &Pool{
		podID:     podID,
		client:    client,
		cfg:       cfg,
		deliverer: deliverer,
		hooks:     hookDispatcher,
		channels:  channels,
		stopCh:    make(chan struct{}),
	}
}

// Start spawns the channel workers and sweeps.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Outbox pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	slog.Info("Starting outbox pool",
		"channels", p.channels, "workers_per_channel", p.cfg.WorkersPerChannel)

	for _, channel := range p.channels {
		for i := 0; i < p.cfg.WorkersPerChannel; i++ {
			id := fmt.Sprintf("%s-outbox-%s-%d", p.podID, channel, i)
			w := NewWorker(id, channel, p.client, p.cfg, p.deliverer, p.hooks)
			p.workers = append(p.workers, w)
			w.Start(ctx)
		}
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runSweeps(ctx)
	}()

	return nil
}

// Stop stops workers and sweeps, waiting for in-flight sends to finish.
func (p *Pool) Stop() {
	slog.Info("Stopping outbox pool")
	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Outbox pool stopped")
}

func (p *Pool) runSweeps(ctx context.Context) {
	interval := p.cfg.ReconcileInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverExpiredLeases(ctx); err != nil {
				slog.Error("Outbox lease recovery failed", "error", err)
			}
			if err := p.reconcileUnknown(ctx); err != nil {
				slog.Error("Outbox reconciliation failed", "error", err)
			}
			if err := p.sweepCancelled(ctx); err != nil {
				slog.Error("Outbox cancellation sweep failed", "error", err)
			}
		}
	}
}

// recoverExpiredLeases returns sending rows whose worker died mid-send to
// the unknown state: the send may or may not have gone out.
func (p *Pool) recoverExpiredLeases(ctx context.Context) error {
	n, err := p.client.OutboxEntry.Update().
		Where(
			outboxentry.StatusEQ(outboxentry.StatusSending),
			outboxentry.LeaseExpiresAtNotNil(),
			outboxentry.LeaseExpiresAtLT(time.Now()),
		).
		SetStatus(outboxentry.StatusUnknown).
		SetUnknownReason("worker lease expired mid-send").
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover expired effect leases: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered effects from expired leases", "count", n)
	}
	return nil
}

// reconcileUnknown re-examines unknown rows. Handlers that can poll the
// provider settle them to sent or pending; without a reconciler the row
// is retried, preferring a possible duplicate over a silent drop.
func (p *Pool) reconcileUnknown(ctx context.Context) error {
	rows, err := p.client.OutboxEntry.Query().
		Where(outboxentry.StatusEQ(outboxentry.StatusUnknown)).
		Order(ent.Asc(outboxentry.FieldCreatedAt)).
		Limit(100).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query unknown effects: %w", err)
	}

	for _, entry := range rows {
		log := slog.With("effect_key", entry.EffectKey)

		ref, delivered, ok, err := p.deliverer.Reconcile(ctx, entry)
		if err != nil {
			log.Warn("Effect reconciliation probe failed", "error", err)
			continue
		}

		switch {
		case ok && delivered:
			err = p.client.OutboxEntry.UpdateOneID(entry.ID).
				SetStatus(outboxentry.StatusSent).
				SetProviderRef(ref).
				SetSentAt(time.Now()).
				Exec(ctx)
			if err == nil {
				log.Info("Unknown effect reconciled as sent", "provider_ref", ref)
			}
		case entry.AttemptCount >= p.cfg.MaxAttempts:
			err = p.client.OutboxEntry.UpdateOneID(entry.ID).
				SetStatus(outboxentry.StatusFailed).
				SetLastError("delivery unresolved after max attempts").
				Exec(ctx)
		default:
			err = p.client.OutboxEntry.UpdateOneID(entry.ID).
				SetStatus(outboxentry.StatusPending).
				SetNextAttemptAt(time.Now().Add(nextAttemptDelay(entry.AttemptCount, p.cfg.BackoffBase, p.cfg.BackoffCap))).
				Exec(ctx)
			if err == nil {
				log.Info("Unknown effect requeued for retry")
			}
		}
		if err != nil {
			log.Error("Failed to settle unknown effect", "error", err)
		}
	}
	return nil
}

// sweepCancelled cancels pending effects of cancelled dispatches. Rows
// already sending finish their in-flight delivery and settle normally.
func (p *Pool) sweepCancelled(ctx context.Context) error {
	cancelled, err := p.client.RunDispatch.Query().
		Where(rundispatch.StatusEQ(rundispatch.StatusCancelled)).
		Select(rundispatch.FieldID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("failed to query cancelled dispatches: %w", err)
	}
	if len(cancelled) == 0 {
		return nil
	}

	n, err := p.client.OutboxEntry.Update().
		Where(
			outboxentry.StatusEQ(outboxentry.StatusPending),
			outboxentry.DispatchIDIn(cancelled...),
		).
		SetStatus(outboxentry.StatusCancelled).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel orphaned effects: %w", err)
	}
	if n > 0 {
		slog.Info("Cancelled effects of cancelled dispatches", "count", n)
	}
	return nil
}
