package sessionqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/queuemessage"
	"github.com/hooklinehq/hookline/ent/rundispatch"
)

// Recover reconciles durable lane state after a restart:
//
//  1. running lanes whose active dispatch is terminal (or gone) go idle,
//     or re-enqueue their pending messages into a fresh run;
//  2. lanes stuck in the debounce window past debounce_until flush as if
//     the timer had fired.
//
// Called once during startup, before ingress starts accepting.
func (m *Manager) Recover(ctx context.Context) error {
	if err := m.recoverRunningLanes(ctx); err != nil {
		return err
	}
	return m.recoverExpiredDebounce(ctx)
}

func (m *Manager) recoverRunningLanes(ctx context.Context) error {
	lanes, err := m.client.QueueLane.Query().
		Where(queuelane.StateEQ(queuelane.StateRunning)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query running lanes: %w", err)
	}

	for _, row := range lanes {
		if row.ActiveDispatchID != nil {
			active, err := m.client.RunDispatch.Query().
				Where(
					rundispatch.IDEQ(*row.ActiveDispatchID),
					rundispatch.StatusIn(
						rundispatch.StatusQueued,
						rundispatch.StatusRunning,
						rundispatch.StatusPaused,
					),
				).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check active dispatch: %w", err)
			}
			if active {
				// The dispatch is still live (another replica may be
				// driving it); adopt the lane as running.
				m.adoptLane(row, laneRunning, *row.ActiveDispatchID)
				continue
			}
		}

		// Active run is terminal or missing: drain or idle.
		if err := m.reflushPending(ctx, row); err != nil {
			m.logger.Error("Failed to recover running lane",
				"queue_key", row.ID, "error", err)
		}
	}
	return nil
}

func (m *Manager) recoverExpiredDebounce(ctx context.Context) error {
	now := time.Now()
	lanes, err := m.client.QueueLane.Query().
		Where(
			queuelane.StateEQ(queuelane.StateQueued),
			queuelane.DebounceUntilNotNil(),
			queuelane.DebounceUntilLT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired debounce lanes: %w", err)
	}

	for _, row := range lanes {
		if err := m.reflushPending(ctx, row); err != nil {
			m.logger.Error("Failed to flush expired debounce lane",
				"queue_key", row.ID, "error", err)
		}
	}
	return nil
}

// reflushPending loads the lane's pending messages and starts a run with
// them, or idles the lane when there is nothing to do.
func (m *Manager) reflushPending(ctx context.Context, row *ent.QueueLane) error {
	rows, err := m.client.QueueMessage.Query().
		Where(
			queuemessage.QueueKeyEQ(row.ID),
			queuemessage.StatusEQ(queuemessage.StatusPending),
		).
		Order(ent.Asc(queuemessage.FieldArrivedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending messages: %w", err)
	}

	ln := m.adoptLane(row, laneIdle, "")

	if len(rows) == 0 {
		ln.mu.Lock()
		ln.state = laneIdle
		ln.activeDispatchID = ""
		m.mirrorLane(ctx, ln)
		ln.mu.Unlock()
		return nil
	}

	msgs := make([]Message, 0, len(rows))
	for _, r := range rows {
		msgs = append(msgs, Message{
			WorkItemID: r.WorkItemID,
			Text:       r.Text,
			SenderName: r.SenderName,
			ArrivedAt:  r.ArrivedAt,
		})
	}

	m.logger.Info("Recovering lane with pending messages",
		"queue_key", row.ID, "messages", len(msgs))

	ln.mu.Lock()
	m.startRun(ctx, ln, msgs)
	ln.mu.Unlock()
	return nil
}

// adoptLane seeds the in-memory lane map from a durable row.
func (m *Manager) adoptLane(row *ent.QueueLane, state laneState, activeDispatchID string) *lane {
	m.mu.Lock()
	defer m.mu.Unlock()

	ln, ok := m.lanes[row.ID]
	if !ok {
		ln = &lane{
			key:        row.ID,
			sessionKey: row.SessionKey,
			agentID:    row.AgentID,
			mode:       Mode(row.Mode),
			paused:     row.IsPaused,
			debounce:   time.Duration(row.DebounceMs) * time.Millisecond,
			maxQueued:  row.MaxQueued,
		}
		if ln.debounce <= 0 {
			ln.debounce = m.cfg.Debounce
		}
		if ln.maxQueued <= 0 {
			ln.maxQueued = m.cfg.MaxQueuedPerLane
		}
		m.lanes[row.ID] = ln
	}
	ln.mu.Lock()
	ln.state = state
	ln.activeDispatchID = activeDispatchID
	ln.mu.Unlock()
	return ln
}
