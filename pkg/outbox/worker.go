// Package outbox delivers run effects to external providers at-least-once:
// per-channel workers lease due rows, post them through plugin handlers
// and record the outcome, with unknown-state quarantine when an ack is
// lost.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/hooks"
)

// Worker drains one channel's due outbox rows.
type Worker struct {
	id        string
	channel   string
	client    *ent.Client
	cfg       *config.OutboxConfig
	deliverer *Deliverer
	hooks     *hooks.Dispatcher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	logger    *slog.Logger
}

// NewWorker creates an outbox worker for one channel. hookDispatcher may
// be nil when no hook pipeline is wired.
func NewWorker(id, channel string, client *ent.Client, cfg *config.OutboxConfig, deliverer *Deliverer, hookDispatcher *hooks.Dispatcher) *Worker {
	return &Worker{
		id:        id,
		channel:   channel,
		client:    client,
		cfg:       cfg,
		deliverer: deliverer,
		hooks:     hookDispatcher,
		stopCh:    make(chan struct{}),
		logger:    slog.With("worker_id", id, "channel", channel),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current batch.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	w.logger.Info("Outbox worker started")

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("Outbox worker shutting down")
			return
		case <-ctx.Done():
			return
		default:
			n, err := w.drainOnce(ctx)
			if err != nil {
				w.logger.Error("Outbox batch failed", "error", err)
				w.sleep(time.Second)
				continue
			}
			if n == 0 {
				w.sleep(w.cfg.PollInterval)
			}
		}
	}
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// drainOnce claims one batch and delivers it. Returns the batch size.
func (w *Worker) drainOnce(ctx context.Context) (int, error) {
	batch, err := w.claimBatch(ctx)
	if err != nil {
		return 0, err
	}
	for _, entry := range batch {
		w.process(ctx, entry)
	}
	return len(batch), nil
}

// claimBatch leases due pending rows on this channel, keeping FIFO per
// (dispatch, channel): a row is claimable only when no earlier sibling is
// still undelivered.
func (w *Worker) claimBatch(ctx context.Context) ([]*ent.OutboxEntry, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	rows, err := tx.OutboxEntry.Query().
		Where(
			outboxentry.ChannelEQ(w.channel),
			outboxentry.StatusEQ(outboxentry.StatusPending),
			outboxentry.NextAttemptAtLTE(now),
			fifoHead(),
		).
		Order(ent.Asc(outboxentry.FieldCreatedAt)).
		Limit(w.cfg.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due effects: %w", err)
	}
	if len(rows) == 0 {
		return nil, tx.Commit()
	}

	claimed := make([]*ent.OutboxEntry, 0, len(rows))
	for _, row := range rows {
		updated, err := row.Update().
			SetStatus(outboxentry.StatusSending).
			SetClaimedBy(w.id).
			SetLeaseExpiresAt(now.Add(w.cfg.Lease)).
			AddAttemptCount(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to lease effect: %w", err)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit effect lease: %w", err)
	}
	return claimed, nil
}

// fifoHead excludes rows with an earlier undelivered sibling in the same
// dispatch and channel.
func fifoHead() func(*sql.Selector) {
	return func(s *sql.Selector) {
		t := sql.Table(outboxentry.Table)
		s.Where(sql.NotExists(
			sql.Select().From(t).Where(sql.And(
				sql.ColumnsEQ(t.C(outboxentry.FieldDispatchID), s.C(outboxentry.FieldDispatchID)),
				sql.ColumnsEQ(t.C(outboxentry.FieldChannel), s.C(outboxentry.FieldChannel)),
				sql.ColumnsLT(t.C(outboxentry.FieldCreatedAt), s.C(outboxentry.FieldCreatedAt)),
				sql.In(t.C(outboxentry.FieldStatus),
					string(outboxentry.StatusPending),
					string(outboxentry.StatusSending),
					string(outboxentry.StatusUnknown),
				),
			)),
		))
	}
}

// process delivers one leased effect and writes its outcome.
func (w *Worker) process(ctx context.Context, entry *ent.OutboxEntry) {
	log := w.logger.With("effect_key", entry.EffectKey, "dispatch_id", entry.DispatchID)

	payload := entry.Payload
	if w.hooks != nil {
		outcome := w.hooks.Dispatch(ctx, &hooks.Invocation{
			Hook:       hooks.ResponsePreDeliver,
			DispatchID: entry.DispatchID,
			Data:       payload,
		})
		if outcome.Blocked {
			w.blockDelivery(ctx, entry, log)
			return
		}
		if outcome.Data != nil {
			payload = outcome.Data
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, w.cfg.SendTimeout)
	result, err := w.deliverer.Deliver(sendCtx, entry, payload)
	cancel()

	switch {
	case err == nil:
		n, uerr := w.client.OutboxEntry.Update().
			Where(
				outboxentry.IDEQ(entry.ID),
				outboxentry.StatusEQ(outboxentry.StatusSending),
				outboxentry.ClaimedBy(w.id),
			).
			SetStatus(outboxentry.StatusSent).
			SetProviderRef(result.ProviderRef).
			SetSentAt(time.Now()).
			ClearClaimedBy().
			ClearLeaseExpiresAt().
			Save(ctx)
		if uerr != nil {
			log.Error("Failed to mark effect sent", "error", uerr)
			return
		}
		if n == 0 {
			log.Warn("Effect lease lost after successful send; reconciliation will dedup",
				"provider_ref", result.ProviderRef)
			return
		}
		log.Info("Effect delivered", "provider_ref", result.ProviderRef)
		w.notifyDelivered(entry, result.ProviderRef, payload)

	case errors.Is(sendCtx.Err(), context.DeadlineExceeded):
		// The send may have reached the provider; only the ack is missing.
		w.quarantineUnknown(ctx, entry, log)

	default:
		w.handleFailure(ctx, entry, err, log)
	}
}

// blockDelivery settles an effect a pre-deliver hook refused. The block is
// a verdict, not a transient fault, so the row goes to failed without
// touching the provider.
func (w *Worker) blockDelivery(ctx context.Context, entry *ent.OutboxEntry, log *slog.Logger) {
	err := w.client.OutboxEntry.Update().
		Where(
			outboxentry.IDEQ(entry.ID),
			outboxentry.StatusEQ(outboxentry.StatusSending),
			outboxentry.ClaimedBy(w.id),
		).
		SetStatus(outboxentry.StatusFailed).
		SetRetryable(false).
		SetLastError("delivery blocked by plugin hook").
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Exec(ctx)
	if err != nil {
		log.Error("Failed to settle blocked effect", "error", err)
		return
	}
	log.Info("Effect delivery blocked by plugin hook")
}

// notifyDelivered fans the post-deliver hook out after a confirmed send.
// Fire-and-forget: handlers cannot affect the already-delivered effect.
func (w *Worker) notifyDelivered(entry *ent.OutboxEntry, providerRef string, payload map[string]interface{}) {
	if w.hooks == nil {
		return
	}
	data := map[string]interface{}{
		"channel":      entry.Channel,
		"provider_ref": providerRef,
	}
	for k, v := range payload {
		data[k] = v
	}
	go func() {
		hctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		w.hooks.Dispatch(hctx, &hooks.Invocation{
			Hook:       hooks.ResponsePostDeliver,
			DispatchID: entry.DispatchID,
			Data:       data,
		})
	}()
}

func (w *Worker) quarantineUnknown(ctx context.Context, entry *ent.OutboxEntry, log *slog.Logger) {
	err := w.client.OutboxEntry.Update().
		Where(
			outboxentry.IDEQ(entry.ID),
			outboxentry.StatusEQ(outboxentry.StatusSending),
			outboxentry.ClaimedBy(w.id),
		).
		SetStatus(outboxentry.StatusUnknown).
		SetUnknownReason("send timed out, acknowledgment lost").
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Exec(ctx)
	if err != nil {
		log.Error("Failed to quarantine effect as unknown", "error", err)
		return
	}
	log.Warn("Effect outcome unknown, awaiting reconciliation")
}

func (w *Worker) handleFailure(ctx context.Context, entry *ent.OutboxEntry, sendErr error, log *slog.Logger) {
	retryable := classifyRetryable(sendErr)

	if retryable && entry.AttemptCount < w.cfg.MaxAttempts {
		delay := nextAttemptDelay(entry.AttemptCount, w.cfg.BackoffBase, w.cfg.BackoffCap)
		err := w.client.OutboxEntry.Update().
			Where(
				outboxentry.IDEQ(entry.ID),
				outboxentry.StatusEQ(outboxentry.StatusSending),
				outboxentry.ClaimedBy(w.id),
			).
			SetStatus(outboxentry.StatusPending).
			SetNextAttemptAt(time.Now().Add(delay)).
			SetLastError(sendErr.Error()).
			ClearClaimedBy().
			ClearLeaseExpiresAt().
			Exec(ctx)
		if err != nil {
			log.Error("Failed to schedule effect retry", "error", err)
			return
		}
		log.Warn("Effect delivery failed, retrying",
			"error", sendErr, "attempt", entry.AttemptCount, "retry_in", delay)
		return
	}

	err := w.client.OutboxEntry.Update().
		Where(
			outboxentry.IDEQ(entry.ID),
			outboxentry.StatusEQ(outboxentry.StatusSending),
			outboxentry.ClaimedBy(w.id),
		).
		SetStatus(outboxentry.StatusFailed).
		SetRetryable(retryable).
		SetLastError(sendErr.Error()).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Exec(ctx)
	if err != nil {
		log.Error("Failed to mark effect failed", "error", err)
		return
	}
	log.Error("Effect delivery failed permanently",
		"error", sendErr, "attempts", entry.AttemptCount, "retryable", retryable)
}

// nextAttemptDelay is the outbox retry curve: doubling from base, capped,
// with up to 50% jitter.
func nextAttemptDelay(attempt int, base, cap time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if base <= 0 {
		base = time.Second
	}
	if cap <= 0 {
		cap = 60 * time.Second
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= cap {
			d = cap
			break
		}
	}
	d += time.Duration(rand.Int64N(int64(d)/2 + 1))
	if d > cap {
		d = cap
	}
	return d
}
