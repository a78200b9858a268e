package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/ent/workitem"
	"github.com/hooklinehq/hookline/pkg/agentrunner"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/control"
	"github.com/hooklinehq/hookline/pkg/hooks"
)

// DispatchRegistry is the subset of Pool used by Worker for cancel
// registration.
type DispatchRegistry interface {
	RegisterDispatch(dispatchID string, cancel context.CancelFunc)
	UnregisterDispatch(dispatchID string)
}

// runOutcome classifies how one run ended.
type runOutcome int

const (
	outcomeCompleted runOutcome = iota
	outcomeFailed
	outcomePaused
	outcomeCancelled
	// outcomeAbandoned means the lease or epoch was lost: no writes at all.
	outcomeAbandoned
)

// Worker is a single dispatcher goroutine: claim, run, write the fenced
// terminal transition.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	cfg      *config.DispatchConfig
	runner   agentrunner.Runner
	control  *control.Service
	notifier RunCompleteNotifier
	hooks    *hooks.Dispatcher
	pool     DispatchRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                  sync.RWMutex
	status              WorkerStatus
	currentDispatchID   string
	dispatchesProcessed int
	lastActivity        time.Time
}

// NewWorker creates a dispatcher worker. notifier and hookDispatcher may
// be nil (no session queue or hook pipeline wired, e.g. in tests).
func NewWorker(id, podID string, client *ent.Client, cfg *config.DispatchConfig, runner agentrunner.Runner, ctrl *control.Service, notifier RunCompleteNotifier, hookDispatcher *hooks.Dispatcher, pool DispatchRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		cfg:          cfg,
		runner:       runner,
		control:      ctrl,
		notifier:     notifier,
		hooks:        hookDispatcher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current dispatch to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              w.status,
		CurrentDispatchID:   w.currentDispatchID,
		DispatchesProcessed: w.dispatchesProcessed,
		LastActivity:        w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Dispatch worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Dispatch worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatch worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoDispatchAvailable) ||
					errors.Is(err, ErrAtCapacity) ||
					errors.Is(err, ErrProcessingPaused) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing dispatch", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// pollAndProcess checks runtime control and capacity, claims a dispatch,
// and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	snap, err := w.control.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read runtime control: %w", err)
	}
	if !snap.ProcessingEnabled {
		return ErrProcessingPaused
	}

	// Best-effort global capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	running, err := w.client.RunDispatch.Query().
		Where(rundispatch.StatusEQ(rundispatch.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running dispatches: %w", err)
	}
	if running >= snap.MaxConcurrentDispatches {
		return ErrAtCapacity
	}

	row, err := w.claim(ctx, snap.ControlEpoch)
	if err != nil {
		return err
	}

	return w.process(ctx, row, snap.ControlEpoch)
}

// claim atomically claims the oldest due queued dispatch whose lane has no
// running run, using FOR UPDATE SKIP LOCKED plus a lane-row lock to keep
// per-session serialization under concurrent claimers.
func (w *Worker) claim(ctx context.Context, epoch int64) (*ent.RunDispatch, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()

	candidate, err := tx.RunDispatch.Query().
		Where(
			rundispatch.StatusEQ(rundispatch.StatusQueued),
			rundispatch.ScheduledAtLTE(now),
			noRunningSibling(),
		).
		Order(ent.Asc(rundispatch.FieldScheduledAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoDispatchAvailable
		}
		return nil, fmt.Errorf("failed to query queued dispatch: %w", err)
	}

	// Serialize per-lane claims on the lane row, then re-check: a sibling
	// claim may have committed between the snapshot above and now.
	if err := lockLane(ctx, tx, candidate.QueueKey); err != nil {
		return nil, err
	}
	siblingRunning, err := tx.RunDispatch.Query().
		Where(
			rundispatch.QueueKeyEQ(candidate.QueueKey),
			rundispatch.StatusEQ(rundispatch.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-check lane serialization: %w", err)
	}
	if siblingRunning {
		return nil, ErrNoDispatchAvailable
	}

	update := candidate.Update().
		SetStatus(rundispatch.StatusRunning).
		SetClaimedBy(w.id).
		SetClaimedEpoch(epoch).
		SetLeaseExpiresAt(now.Add(w.cfg.Lease)).
		AddAttemptCount(1)
	// started_at marks the first attempt; retries keep it.
	if candidate.StartedAt == nil {
		update.SetStartedAt(now)
	}
	claimed, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim dispatch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// noRunningSibling excludes rows whose lane already has a running dispatch.
func noRunningSibling() func(*sql.Selector) {
	return func(s *sql.Selector) {
		t := sql.Table(rundispatch.Table)
		s.Where(sql.NotExists(
			sql.Select().From(t).Where(sql.And(
				sql.ColumnsEQ(t.C(rundispatch.FieldQueueKey), s.C(rundispatch.FieldQueueKey)),
				sql.EQ(t.C(rundispatch.FieldStatus), string(rundispatch.StatusRunning)),
			)),
		))
	}
}

// lockLane serializes claims on one lane: a transaction-scoped advisory
// lock keyed by queue_key, plus the lane row lock when a lane row exists.
// The advisory lock is what covers dispatches created outside the session
// queue (routines), which have no lane row to lock.
func lockLane(ctx context.Context, tx *ent.Tx, queueKey string) error {
	if _, err := tx.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock(hashtext($1))", queueKey); err != nil {
		return fmt.Errorf("failed to take lane advisory lock: %w", err)
	}
	_, err := tx.QueueLane.Query().
		Where(queuelane.IDEQ(queueKey)).
		ForUpdate().
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to lock queue lane: %w", err)
	}
	return nil
}

// process drives one claimed dispatch to an outcome and writes it.
func (w *Worker) process(ctx context.Context, row *ent.RunDispatch, epoch int64) error {
	log := slog.With("dispatch_id", row.ID, "worker_id", w.id, "attempt", row.AttemptCount)
	log.Info("Dispatch claimed", "queue_key", row.QueueKey)

	w.setStatus(WorkerStatusWorking, row.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.cfg.RunTimeout)
	defer cancelRun()

	w.pool.RegisterDispatch(row.ID, cancelRun)
	defer w.pool.UnregisterDispatch(row.ID)

	exec := &execution{
		worker:   w,
		row:      row,
		epoch:    epoch,
		log:      log,
		cancel:   cancelRun,
		deadline: time.Now().Add(w.cfg.RunTimeout),
	}

	outcome := exec.run(runCtx)

	// Terminal writes use a background context: the run context is usually
	// cancelled or expired by now.
	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelWrite()

	if err := exec.finish(writeCtx, outcome); err != nil {
		log.Error("Failed to write dispatch outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.dispatchesProcessed++
	w.mu.Unlock()

	log.Info("Dispatch processing complete", "outcome", exec.finalStatus)
	return nil
}

// execution is the mutable state of one in-flight run.
type execution struct {
	worker   *Worker
	row      *ent.RunDispatch
	epoch    int64
	log      *slog.Logger
	cancel   context.CancelFunc
	deadline time.Time

	mu              sync.Mutex
	pauseRequested  bool
	cancelRequested bool
	leaseLost       bool

	output      strings.Builder
	effects     []agentrunner.Effect
	runErr      error
	retryable   bool
	finalStatus rundispatch.Status
}

// run starts the agent stream and consumes it, with heartbeat and control
// polling in the background.
func (e *execution) run(ctx context.Context) runOutcome {
	input := &agentrunner.Input{
		DispatchID:      e.row.ID,
		SessionKey:      e.row.SessionKey,
		AgentID:         e.row.AgentID,
		InputText:       e.row.InputText,
		ResponseContext: e.row.ResponseContext,
		Attempt:         e.row.AttemptCount,
	}

	// Plugins get a last look at the prompt before the agent starts.
	if e.worker.hooks != nil {
		outcome := e.worker.hooks.Dispatch(ctx, &hooks.Invocation{
			Hook:       hooks.RunPrePrompt,
			WorkItemID: e.row.WorkItemID,
			DispatchID: e.row.ID,
			AgentID:    e.row.AgentID,
			Data:       map[string]interface{}{"input_text": input.InputText},
		})
		if outcome.Blocked {
			e.log.Info("Run blocked by plugin hook before prompt")
			e.mu.Lock()
			e.cancelRequested = true
			e.mu.Unlock()
			return outcomeCancelled
		}
		if text, ok := outcome.Data["input_text"].(string); ok && text != "" {
			input.InputText = text
		}
	}

	stream, err := e.worker.runner.Run(ctx, input)
	if err != nil {
		e.runErr = fmt.Errorf("failed to start agent run: %w", err)
		e.retryable = true
		return outcomeFailed
	}
	defer func() { _ = stream.Close() }()

	bgCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()

	var bg sync.WaitGroup
	bg.Add(2)
	go func() { defer bg.Done(); e.heartbeatLoop(bgCtx) }()
	go func() { defer bg.Done(); e.controlLoop(bgCtx, stream) }()

	outcome := e.consume(ctx, stream)

	stopBackground()
	bg.Wait()
	return outcome
}

// consume reads stream chunks until the run ends or control intervenes.
func (e *execution) consume(ctx context.Context, stream agentrunner.Stream) runOutcome {
	for chunk := range stream.Chunks() {
		switch c := chunk.(type) {
		case *agentrunner.OutputChunk:
			e.output.WriteString(c.Text)

		case *agentrunner.EffectChunk:
			e.effects = append(e.effects, c.Effect)

		case *agentrunner.CheckpointChunk:
			e.atCheckpoint(ctx, stream)

		case *agentrunner.DoneChunk:
			if c.OutputText != "" {
				e.output.Reset()
				e.output.WriteString(c.OutputText)
			}
			return e.resolveEnd(outcomeCompleted)

		case *agentrunner.ErrorChunk:
			e.runErr = fmt.Errorf("agent run failed: %s", c.Message)
			e.retryable = c.Retryable
			return e.resolveEnd(outcomeFailed)
		}
	}

	// Stream closed without a terminal chunk: the run context ended.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		e.runErr = fmt.Errorf("run timed out after %v", e.worker.cfg.RunTimeout)
		e.retryable = true
		return e.resolveEnd(outcomeFailed)
	}
	e.runErr = fmt.Errorf("agent stream ended without result")
	e.retryable = true
	return e.resolveEnd(outcomeFailed)
}

// resolveEnd maps control flags over the natural outcome of the stream.
func (e *execution) resolveEnd(natural runOutcome) runOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.leaseLost:
		return outcomeAbandoned
	case e.cancelRequested:
		return outcomeCancelled
	case e.pauseRequested && natural != outcomeCompleted:
		return outcomePaused
	default:
		return natural
	}
}

// atCheckpoint absorbs queued follow-ups into the live run.
func (e *execution) atCheckpoint(ctx context.Context, stream agentrunner.Stream) {
	absorbed, err := absorbFollowUps(ctx, e.worker.client, e.row.ID, e.worker.id, e.epoch)
	if err != nil {
		if errors.Is(err, errLeaseLost) {
			e.noteLeaseLost()
			return
		}
		e.log.Warn("Failed to absorb follow-ups at checkpoint", "error", err)
		return
	}
	for _, fu := range absorbed {
		if err := stream.Merge(fu.InputText, fu.ResponseContext); err != nil {
			e.log.Warn("Failed to inject merged follow-up",
				"merged_dispatch_id", fu.DispatchID, "error", err)
			continue
		}
		e.log.Info("Follow-up merged into live run", "merged_dispatch_id", fu.DispatchID)
	}
}

// heartbeatLoop extends the lease at a third of its duration. A heartbeat
// matching zero rows means the lease is gone: abandon.
func (e *execution) heartbeatLoop(ctx context.Context) {
	interval := e.worker.cfg.Lease / 3
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := e.worker.client.RunDispatch.Update().
				Where(
					rundispatch.IDEQ(e.row.ID),
					rundispatch.ClaimedBy(e.worker.id),
					rundispatch.ClaimedEpochEQ(e.epoch),
					rundispatch.StatusEQ(rundispatch.StatusRunning),
				).
				SetLeaseExpiresAt(time.Now().Add(e.worker.cfg.Lease)).
				Save(ctx)
			if err != nil {
				e.log.Warn("Heartbeat update failed", "error", err)
				continue
			}
			if n == 0 {
				e.log.Warn("Lease no longer held, abandoning run")
				e.noteLeaseLost()
				return
			}
		}
	}
}

// controlLoop polls the dispatch row's control state and the global
// runtime-control row at least once per lease period.
func (e *execution) controlLoop(ctx context.Context, stream agentrunner.Stream) {
	interval := e.worker.cfg.ControlPollInterval
	if interval <= 0 {
		interval = e.worker.cfg.Lease / 3
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := e.worker.control.Snapshot(ctx)
			if err != nil {
				e.log.Warn("Control snapshot failed", "error", err)
			} else if snap.ControlEpoch > e.epoch {
				// Emergency stop or hard pause fenced us out: results are
				// discarded, the orphan sweep owns the row now.
				e.log.Warn("Control epoch advanced, abandoning run",
					"claimed_epoch", e.epoch, "current_epoch", snap.ControlEpoch)
				e.noteLeaseLost()
				return
			}

			row, err := e.worker.client.RunDispatch.Get(ctx, e.row.ID)
			if err != nil {
				e.log.Warn("Control poll failed to read dispatch", "error", err)
				continue
			}
			switch row.ControlState {
			case rundispatch.ControlStateCancelRequested:
				e.mu.Lock()
				already := e.cancelRequested
				e.cancelRequested = true
				e.mu.Unlock()
				if !already {
					e.log.Info("Cancellation requested, winding run down")
					_ = stream.Signal(agentrunner.SignalCancel)
					e.cancel()
				}
				return
			case rundispatch.ControlStatePauseRequested:
				e.mu.Lock()
				already := e.pauseRequested
				e.pauseRequested = true
				e.mu.Unlock()
				if !already {
					e.log.Info("Pause requested, parking run")
					_ = stream.Signal(agentrunner.SignalPause)
					e.cancel()
				}
				return
			}
		}
	}
}

func (e *execution) noteLeaseLost() {
	e.mu.Lock()
	e.leaseLost = true
	e.mu.Unlock()
	e.cancel()
}

// finish writes the outcome with a lease+epoch fence. Abandoned outcomes
// write nothing.
func (e *execution) finish(ctx context.Context, outcome runOutcome) error {
	switch outcome {
	case outcomeAbandoned:
		e.finalStatus = rundispatch.StatusAbandoned
		return nil

	case outcomePaused:
		e.finalStatus = rundispatch.StatusPaused
		return e.fencedUpdate(ctx, func(u *ent.RunDispatchUpdate) {
			u.SetStatus(rundispatch.StatusPaused).
				SetControlState(rundispatch.ControlStatePaused).
				ClearClaimedBy().
				ClearLeaseExpiresAt()
		})

	case outcomeCancelled:
		e.finalStatus = rundispatch.StatusCancelled
		err := e.fencedUpdate(ctx, func(u *ent.RunDispatchUpdate) {
			u.SetStatus(rundispatch.StatusCancelled).
				SetControlState(rundispatch.ControlStateCancelled).
				SetFinishedAt(time.Now()).
				ClearClaimedBy().
				ClearLeaseExpiresAt()
		})
		if err != nil {
			return err
		}
		e.updateWorkItem(ctx, workitem.StatusCancelled)
		e.notifyComplete(ctx)
		return nil

	case outcomeCompleted:
		e.finalStatus = rundispatch.StatusCompleted
		if err := e.complete(ctx); err != nil {
			return err
		}
		e.updateWorkItem(ctx, workitem.StatusCompleted)
		e.notifyComplete(ctx)
		return nil

	case outcomeFailed:
		if e.retryable && e.row.AttemptCount < e.worker.cfg.MaxAttempts {
			e.finalStatus = rundispatch.StatusQueued
			delay := retryDelay(e.row.AttemptCount, e.worker.cfg.BackoffBase, e.worker.cfg.BackoffCap)
			e.log.Warn("Run failed, scheduling retry",
				"error", e.runErr, "retry_in", delay)
			return e.fencedUpdate(ctx, func(u *ent.RunDispatchUpdate) {
				u.SetStatus(rundispatch.StatusQueued).
					SetScheduledAt(time.Now().Add(delay)).
					SetLastError(e.runErr.Error()).
					ClearClaimedBy().
					ClearLeaseExpiresAt()
			})
		}

		e.finalStatus = rundispatch.StatusFailed
		e.log.Error("Run failed permanently", "error", e.runErr)
		err := e.fencedUpdate(ctx, func(u *ent.RunDispatchUpdate) {
			u.SetStatus(rundispatch.StatusFailed).
				SetLastError(e.runErr.Error()).
				SetFinishedAt(time.Now()).
				ClearClaimedBy().
				ClearLeaseExpiresAt()
		})
		if err != nil {
			return err
		}
		e.updateWorkItem(ctx, workitem.StatusFailed)
		e.notifyComplete(ctx)
		return nil
	}
	return nil
}

// complete writes the completed transition and the run's effects in one
// transaction, so a crash cannot acknowledge a run while dropping its
// side effects.
func (e *execution) complete(ctx context.Context) error {
	tx, err := e.worker.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start completion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.RunDispatch.Update().
		Where(
			rundispatch.IDEQ(e.row.ID),
			rundispatch.ClaimedBy(e.worker.id),
			rundispatch.ClaimedEpochEQ(e.epoch),
			rundispatch.StatusEQ(rundispatch.StatusRunning),
		).
		SetStatus(rundispatch.StatusCompleted).
		SetOutputText(e.output.String()).
		SetFinishedAt(time.Now()).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete dispatch: %w", err)
	}
	if n == 0 {
		e.finalStatus = rundispatch.StatusAbandoned
		e.log.Warn("Completion fence lost, discarding results")
		return nil
	}

	pluginInstanceID := e.resolvePluginInstanceID(ctx)
	for _, eff := range e.effects {
		instID := pluginInstanceID
		if v, ok := eff.Payload["plugin_instance_id"].(string); ok && v != "" {
			instID = v
		}
		if instID == "" {
			e.log.Warn("Dropping effect with no plugin instance",
				"channel", eff.Channel, "effect_key", eff.EffectKey)
			continue
		}
		effectKey := eff.EffectKey
		if effectKey == "" {
			effectKey = uuid.New().String()
		}
		kind := "message"
		if v, ok := eff.Payload["kind"].(string); ok && v != "" {
			kind = v
		}
		err := tx.OutboxEntry.Create().
			SetID(uuid.New().String()).
			SetEffectKey(effectKey).
			SetDispatchID(e.row.ID).
			SetPluginInstanceID(instID).
			SetChannel(eff.Channel).
			SetKind(kind).
			SetPayload(eff.Payload).
			OnConflict(sql.ConflictColumns("effect_key")).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert effect: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	return nil
}

// resolvePluginInstanceID finds the delivery target for effects without an
// explicit one: the work item's plugin instance.
func (e *execution) resolvePluginInstanceID(ctx context.Context) string {
	if e.row.WorkItemID == "" {
		return ""
	}
	item, err := e.worker.client.WorkItem.Get(ctx, e.row.WorkItemID)
	if err != nil {
		e.log.Warn("Failed to resolve work item for effects",
			"work_item_id", e.row.WorkItemID, "error", err)
		return ""
	}
	return item.PluginInstanceID
}

// fencedUpdate applies fn only while this worker still holds the claim.
func (e *execution) fencedUpdate(ctx context.Context, fn func(*ent.RunDispatchUpdate)) error {
	u := e.worker.client.RunDispatch.Update().
		Where(
			rundispatch.IDEQ(e.row.ID),
			rundispatch.ClaimedBy(e.worker.id),
			rundispatch.ClaimedEpochEQ(e.epoch),
			rundispatch.StatusEQ(rundispatch.StatusRunning),
		)
	fn(u)
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed fenced dispatch update: %w", err)
	}
	if n == 0 {
		e.finalStatus = rundispatch.StatusAbandoned
		e.log.Warn("Fenced update matched no rows, claim lost")
	}
	return nil
}

// updateWorkItem mirrors the terminal status onto the originating work
// item. Best-effort: the dispatch row is the source of truth.
func (e *execution) updateWorkItem(ctx context.Context, status workitem.Status) {
	if e.row.WorkItemID == "" {
		return
	}
	err := e.worker.client.WorkItem.UpdateOneID(e.row.WorkItemID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		e.log.Warn("Failed to update work item status",
			"work_item_id", e.row.WorkItemID, "status", status, "error", err)
	}
}

// notifyComplete tells the session queue the lane's active run ended.
func (e *execution) notifyComplete(ctx context.Context) {
	if e.worker.notifier == nil {
		return
	}
	e.worker.notifier.OnRunComplete(ctx, e.row.QueueKey, e.row.ID, string(e.finalStatus))
}

func (w *Worker) setStatus(status WorkerStatus, dispatchID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentDispatchID = dispatchID
	w.lastActivity = time.Now()
}
