// Package control manages the runtime_control singleton row that gates
// every worker loop: pause/resume, emergency stop, concurrency ceiling,
// and the fencing epoch.
package control

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
	"github.com/hooklinehq/hookline/pkg/services"
)

// RowID is the fixed id of the singleton row.
const RowID = "runtime"

// PauseMode selects how aggressively a pause takes effect.
type PauseMode string

const (
	// PauseSoft lets lease holders finish; claimers just wait.
	PauseSoft PauseMode = "soft"
	// PauseHard makes lease holders release at their next control check.
	PauseHard PauseMode = "hard"
)

// Snapshot is a point-in-time read of the control row.
type Snapshot struct {
	ProcessingEnabled       bool
	PauseMode               PauseMode
	PauseReason             string
	ControlEpoch            int64
	MaxConcurrentDispatches int
	UpdatedAt               time.Time
}

// Service reads and mutates the control row. Reads go through a short-TTL
// cache so every worker polling once per lease period does not hammer the
// DB with identical selects.
type Service struct {
	client *ent.Client
	logger *slog.Logger

	cacheTTL time.Duration
	mu       sync.Mutex
	cached   *Snapshot
	cachedAt time.Time
}

// NewService creates a Service. cacheTTL <= 0 defaults to 2s.
func NewService(client *ent.Client, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 2 * time.Second
	}
	return &Service{
		client:   client,
		logger:   slog.With("component", "runtime_control"),
		cacheTTL: cacheTTL,
	}
}

// Snapshot returns the control row, served from cache within the TTL.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		snap := *s.cached
		s.mu.Unlock()
		return &snap, nil
	}
	s.mu.Unlock()

	return s.refresh(ctx)
}

// refresh reads the row from the DB and repopulates the cache.
func (s *Service) refresh(ctx context.Context) (*Snapshot, error) {
	row, err := s.client.RuntimeControl.Get(ctx, RowID)
	if err != nil {
		return nil, fmt.Errorf("failed to read runtime control: %w", err)
	}
	snap := fromRow(row)

	s.mu.Lock()
	s.cached = snap
	s.cachedAt = time.Now()
	s.mu.Unlock()

	out := *snap
	return &out, nil
}

// Pause disables processing. Both modes bump the epoch; hard mode
// additionally tells lease holders to cede at their next control check.
func (s *Service) Pause(ctx context.Context, mode PauseMode, reason string) (*Snapshot, error) {
	if mode != PauseSoft && mode != PauseHard {
		return nil, services.NewValidationError("mode", fmt.Sprintf("invalid pause mode '%s'", mode))
	}

	err := s.client.RuntimeControl.UpdateOneID(RowID).
		SetProcessingEnabled(false).
		SetPauseMode(runtimecontrol.PauseMode(mode)).
		SetPauseReason(reason).
		AddControlEpoch(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause processing: %w", err)
	}

	s.logger.Warn("Processing paused", "mode", mode, "reason", reason)
	return s.refresh(ctx)
}

// Resume re-enables processing. The epoch is left alone so paused-but-live
// lease holders may continue.
func (s *Service) Resume(ctx context.Context) (*Snapshot, error) {
	err := s.client.RuntimeControl.UpdateOneID(RowID).
		SetProcessingEnabled(true).
		SetPauseReason("").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume processing: %w", err)
	}

	s.logger.Info("Processing resumed")
	return s.refresh(ctx)
}

// EmergencyStop is a hard pause: active runs observe the epoch advance and
// abandon without writes.
func (s *Service) EmergencyStop(ctx context.Context, reason string) (*Snapshot, error) {
	err := s.client.RuntimeControl.UpdateOneID(RowID).
		SetProcessingEnabled(false).
		SetPauseMode(runtimecontrol.PauseModeHard).
		SetPauseReason(reason).
		AddControlEpoch(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to emergency stop: %w", err)
	}

	s.logger.Error("Emergency stop engaged", "reason", reason)
	return s.refresh(ctx)
}

// SetMaxConcurrent changes the dispatcher pool ceiling, bounded 1..100.
func (s *Service) SetMaxConcurrent(ctx context.Context, n int) (*Snapshot, error) {
	if n < 1 || n > 100 {
		return nil, services.NewValidationError("max_concurrent_dispatches",
			fmt.Sprintf("must be between 1 and 100, got %d", n))
	}

	err := s.client.RuntimeControl.UpdateOneID(RowID).
		SetMaxConcurrentDispatches(n).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set max concurrent dispatches: %w", err)
	}

	s.logger.Info("Max concurrent dispatches updated", "value", n)
	return s.refresh(ctx)
}

func fromRow(row *ent.RuntimeControl) *Snapshot {
	return &Snapshot{
		ProcessingEnabled:       row.ProcessingEnabled,
		PauseMode:               PauseMode(row.PauseMode),
		PauseReason:             row.PauseReason,
		ControlEpoch:            row.ControlEpoch,
		MaxConcurrentDispatches: row.MaxConcurrentDispatches,
		UpdatedAt:               row.UpdatedAt,
	}
}
