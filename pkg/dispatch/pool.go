package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/agentrunner"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/control"
	"github.com/hooklinehq/hookline/pkg/hooks"
)

// Pool manages the dispatcher workers and the orphan sweep.
type Pool struct {
	podID    string
	client   *ent.Client
	cfg      *config.DispatchConfig
	runner   agentrunner.Runner
	control  *control.Service
	notifier RunCompleteNotifier
	hooks    *hooks.Dispatcher
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Dispatch cancel registry: dispatch_id → cancel function
	activeDispatches map[string]context.CancelFunc
	mu               sync.RWMutex
	started          bool

	// Orphan sweep state
	orphans orphanState
}

type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// NewPool creates a dispatcher pool.
func NewPool(podID string, client *ent.Client, cfg *config.DispatchConfig, runner agentrunner.Runner, ctrl *control.Service, notifier RunCompleteNotifier, hookDispatcher *hooks.Dispatcher) *Pool {
	return &Pool{
		podID:            podID,
		client:           client,
		cfg:              cfg,
		runner:           runner,
		control:          ctrl,
		notifier:         notifier,
		hooks:            hookDispatcher,
		workers:          make([]*Worker, 0, cfg.WorkerCount),
		stopCh:           make(chan struct{}),
		activeDispatches: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan sweep. Safe to call
// multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Dispatch pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting dispatch pool", "pod_id", p.podID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-dispatch-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.cfg, p.runner, p.control, p.notifier, p.hooks, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanSweep(ctx)
	}()

	slog.Info("Dispatch pool started")
	return nil
}

// Stop signals all workers to stop and waits for active runs to finish.
func (p *Pool) Stop() {
	slog.Info("Stopping dispatch pool gracefully")

	active := p.activeDispatchIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active dispatches to complete",
			"count", len(active), "dispatch_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Dispatch pool stopped gracefully")
}

// RegisterDispatch stores a cancel function for API-triggered cancellation.
func (p *Pool) RegisterDispatch(dispatchID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeDispatches[dispatchID] = cancel
}

// UnregisterDispatch removes the cancel function when processing ends.
func (p *Pool) UnregisterDispatch(dispatchID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeDispatches, dispatchID)
}

// CancelDispatch triggers context cancellation for a dispatch on this pod.
// Returns true if the dispatch was running here. The durable
// cancel_requested flag is the cross-pod path; this just shortcuts the
// poll latency locally.
func (p *Pool) CancelDispatch(dispatchID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeDispatches[dispatchID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.RunDispatch.Query().
		Where(rundispatch.StatusEQ(rundispatch.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	running, errA := p.client.RunDispatch.Query().
		Where(rundispatch.StatusEQ(rundispatch.StatusRunning)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query running dispatches for health check",
			"pod_id", p.podID, "error", errA)
	}

	maxConcurrent := 0
	if snap, err := p.control.Snapshot(ctx); err == nil {
		maxConcurrent = snap.MaxConcurrentDispatches
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("running dispatches query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveDispatches: running,
		MaxConcurrent:    maxConcurrent,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

func (p *Pool) activeDispatchIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeDispatches))
	for id := range p.activeDispatches {
		ids = append(ids, id)
	}
	return ids
}

// runOrphanSweep periodically reclaims expired-lease rows. All pods run
// this independently; the conditional updates are idempotent.
func (p *Pool) runOrphanSweep(ctx context.Context) {
	interval := p.cfg.OrphanSweepInterval
	if interval <= 0 {
		interval = p.cfg.Lease
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
			if err := p.sweepOrphans(ctx); err != nil {
				slog.Error("Orphan sweep failed", "error", err)
			}
		}
	}
}

// sweepOrphans requeues running rows whose lease expired without a
// heartbeat. attempt_count is left as is; the next claim increments it.
// Rows already out of attempts go to abandoned instead of looping forever.
// Under a hard pause, running rows fenced out by the epoch bump are
// terminal: they go to cancelled, not back to queued.
func (p *Pool) sweepOrphans(ctx context.Context) error {
	now := time.Now()

	snap, err := p.control.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read runtime control for sweep: %w", err)
	}

	var cancelled int
	if !snap.ProcessingEnabled && snap.PauseMode == control.PauseHard {
		cancelled, err = p.client.RunDispatch.Update().
			Where(
				rundispatch.StatusEQ(rundispatch.StatusRunning),
				rundispatch.ClaimedEpochLT(snap.ControlEpoch),
			).
			SetStatus(rundispatch.StatusCancelled).
			SetControlState(rundispatch.ControlStateCancelled).
			SetFinishedAt(now).
			ClearClaimedBy().
			ClearLeaseExpiresAt().
			SetLastError("terminated by hard stop").
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel fenced-out dispatches: %w", err)
		}
		if cancelled > 0 {
			slog.Warn("Cancelled dispatches fenced out by hard stop",
				"count", cancelled, "control_epoch", snap.ControlEpoch)
		}
	}

	requeued, err := p.client.RunDispatch.Update().
		Where(
			rundispatch.StatusEQ(rundispatch.StatusRunning),
			rundispatch.LeaseExpiresAtNotNil(),
			rundispatch.LeaseExpiresAtLT(now),
			rundispatch.AttemptCountLT(p.cfg.MaxAttempts),
		).
		SetStatus(rundispatch.StatusQueued).
		SetScheduledAt(now).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		SetLastError("lease expired without heartbeat").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned dispatches: %w", err)
	}

	abandoned, err := p.client.RunDispatch.Update().
		Where(
			rundispatch.StatusEQ(rundispatch.StatusRunning),
			rundispatch.LeaseExpiresAtNotNil(),
			rundispatch.LeaseExpiresAtLT(now),
			rundispatch.AttemptCountGTE(p.cfg.MaxAttempts),
		).
		SetStatus(rundispatch.StatusAbandoned).
		SetFinishedAt(now).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		SetLastError("lease expired with no attempts remaining").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to abandon orphaned dispatches: %w", err)
	}

	if requeued > 0 || abandoned > 0 {
		slog.Warn("Orphaned dispatches recovered",
			"requeued", requeued, "abandoned", abandoned)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += cancelled + requeued + abandoned
	p.orphans.mu.Unlock()

	return nil
}

// RecoverStartupOrphans requeues dispatches still claimed by this pod from
// a previous process. Called once during startup, before workers begin.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.RunDispatch.Update().
		Where(
			rundispatch.StatusEQ(rundispatch.StatusRunning),
			rundispatch.ClaimedByHasPrefix(podID+"-"),
		).
		SetStatus(rundispatch.StatusQueued).
		SetScheduledAt(time.Now()).
		ClearClaimedBy().
		ClearLeaseExpiresAt().
		SetLastError("pod restarted while dispatch was running").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered dispatches from previous run", "pod_id", podID, "count", n)
	}
	return nil
}
