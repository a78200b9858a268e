// Package sessionqueue serializes agent runs per conversation: messages
// land on per-session lanes, get debounced and coalesced into run
// dispatches, and queue up while a run is active. Lane state is mirrored
// to queue_lanes/queue_messages so a restart can recover it.
package sessionqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/queuemessage"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/services"
)

// QueueKey derives the lane key for a session/agent pair.
func QueueKey(sessionKey, agentID string) string {
	return sessionKey + ":" + agentID
}

// laneState is the in-memory lane state. The durable mirror folds
// debouncing into "queued".
type laneState int

const (
	laneIdle laneState = iota
	laneDebouncing
	laneRunning
)

// Mode decides what happens to messages arriving during an active run.
type Mode string

const (
	// ModeCollect buffers messages for a follow-up run after the active
	// one finishes.
	ModeCollect Mode = "collect"
	// ModeFollowup writes a replay dispatch that may merge into the
	// active run at a checkpoint.
	ModeFollowup Mode = "followup"
	// ModeSteer is accepted and delivered like followup; the intent is
	// recorded on the lane.
	ModeSteer Mode = "steer"
)

type lane struct {
	mu sync.Mutex

	key        string
	sessionKey string
	agentID    string
	state      laneState
	mode       Mode
	paused     bool

	debounce  time.Duration
	maxQueued int

	buffer  []Message // debounce window
	pending []Message // arrived during the active run (collect mode)
	timer   *time.Timer

	activeDispatchID string
}

// Manager owns the lane map for this process.
type Manager struct {
	client *ent.Client
	cfg    *config.SessionConfig
	ledger *dispatch.Ledger
	logger *slog.Logger

	// OnQueued, when set, is signalled every time a message is queued
	// behind an active run (typing indicator etc). Must not block.
	OnQueued func(queueKey string)

	mu    sync.Mutex
	lanes map[string]*lane
}

// NewManager creates a Manager.
func NewManager(client *ent.Client, cfg *config.SessionConfig, ledger *dispatch.Ledger) *Manager {
	return &Manager{
		client: client,
		cfg:    cfg,
		ledger: ledger,
		logger: slog.With("component", "session_queue"),
		lanes:  make(map[string]*lane),
	}
}

// Enqueue routes one message onto its lane. Non-blocking and never
// rejects; over-limit messages are dropped with a dropped-message receipt.
func (m *Manager) Enqueue(ctx context.Context, sessionKey, agentID string, msg Message) error {
	if msg.ArrivedAt.IsZero() {
		msg.ArrivedAt = time.Now()
	}

	ln, err := m.getLane(ctx, sessionKey, agentID)
	if err != nil {
		return err
	}

	ln.mu.Lock()
	defer ln.mu.Unlock()

	msgID, err := m.persistMessage(ctx, ln.key, msg)
	if err != nil {
		return err
	}

	switch ln.state {
	case laneIdle:
		ln.buffer = append(ln.buffer, msg)
		ln.state = laneDebouncing
		m.armTimer(ln)
		m.mirrorLane(ctx, ln)

	case laneDebouncing:
		ln.buffer = append(ln.buffer, msg)
		m.armTimer(ln)
		m.mirrorLane(ctx, ln)

	case laneRunning:
		switch ln.mode {
		case ModeFollowup, ModeSteer:
			m.createFollowup(ctx, ln, msg, msgID)
		default: // collect
			if len(ln.pending) >= ln.maxQueued {
				m.logger.Warn("Lane pending queue full, dropping message",
					"queue_key", ln.key, "max_queued", ln.maxQueued)
				m.setMessageStatus(ctx, msgID, queuemessage.StatusDropped, "")
				return nil
			}
			ln.pending = append(ln.pending, msg)
			if m.OnQueued != nil {
				m.OnQueued(ln.key)
			}
		}
	}

	return nil
}

// OnRunComplete is called by the dispatcher when a lane's active run
// reaches a terminal state: drain pending into a follow-up run, or idle.
func (m *Manager) OnRunComplete(ctx context.Context, queueKey, dispatchID string, status string) {
	m.mu.Lock()
	ln, ok := m.lanes[queueKey]
	m.mu.Unlock()
	if !ok {
		// Lane owned by another process (or lost in a restart); the
		// recovery sweep reconciles durable state.
		return
	}

	ln.mu.Lock()
	defer ln.mu.Unlock()

	if ln.activeDispatchID != "" && ln.activeDispatchID != dispatchID {
		return
	}

	if len(ln.pending) == 0 {
		ln.state = laneIdle
		ln.activeDispatchID = ""
		m.mirrorLane(ctx, ln)
		return
	}

	msgs := ln.pending
	ln.pending = nil
	m.startRun(ctx, ln, msgs)
}

// flush fires when the debounce timer expires: coalesce the buffer into a
// new run dispatch.
func (m *Manager) flush(queueKey string) {
	m.mu.Lock()
	ln, ok := m.lanes[queueKey]
	m.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	ln.mu.Lock()
	defer ln.mu.Unlock()

	if ln.state != laneDebouncing || len(ln.buffer) == 0 {
		return
	}

	msgs := ln.buffer
	ln.buffer = nil
	m.startRun(ctx, ln, msgs)
}

// startRun coalesces msgs into a new dispatch and moves the lane to
// running. Caller holds ln.mu.
func (m *Manager) startRun(ctx context.Context, ln *lane, msgs []Message) {
	if ln.paused {
		// Paused lanes accumulate; messages stay pending in the DB and the
		// buffer until an operator resumes the lane.
		ln.state = laneIdle
		ln.activeDispatchID = ""
		ln.pending = append(ln.pending, msgs...)
		m.mirrorLane(ctx, ln)
		m.logger.Info("Lane paused, holding messages",
			"queue_key", ln.key, "held", len(ln.pending))
		return
	}

	text, responseContext := coalesce(msgs)
	coalescedText := ""
	if len(msgs) > 1 {
		coalescedText = text
	}

	row, err := m.ledger.Create(ctx, dispatch.CreateInput{
		QueueKey:        ln.key,
		SessionKey:      ln.sessionKey,
		AgentID:         ln.agentID,
		WorkItemID:      lastWorkItemID(msgs),
		InputText:       text,
		CoalescedText:   coalescedText,
		ResponseContext: responseContext,
	})
	if err != nil {
		// Leave the messages pending; the recovery sweep retries them.
		m.logger.Error("Failed to create run dispatch, lane left for recovery",
			"queue_key", ln.key, "error", err)
		ln.state = laneIdle
		ln.activeDispatchID = ""
		return
	}

	ln.state = laneRunning
	ln.activeDispatchID = row.ID
	m.mirrorLane(ctx, ln)
	m.markIncluded(ctx, ln.key, msgs, row.ID)

	m.logger.Info("Run dispatch created",
		"queue_key", ln.key, "dispatch_id", row.ID, "messages", len(msgs))
}

// createFollowup writes a replay dispatch targeting the active run.
// Caller holds ln.mu.
func (m *Manager) createFollowup(ctx context.Context, ln *lane, msg Message, msgID string) {
	text, responseContext := coalesce([]Message{msg})
	row, err := m.ledger.Create(ctx, dispatch.CreateInput{
		QueueKey:           ln.key,
		SessionKey:         ln.sessionKey,
		AgentID:            ln.agentID,
		WorkItemID:         msg.WorkItemID,
		InputText:          text,
		ResponseContext:    responseContext,
		ReplayOfDispatchID: ln.activeDispatchID,
	})
	if err != nil {
		m.logger.Error("Failed to create follow-up dispatch",
			"queue_key", ln.key, "error", err)
		return
	}
	m.setMessageStatus(ctx, msgID, queuemessage.StatusIncluded, row.ID)
	if m.OnQueued != nil {
		m.OnQueued(ln.key)
	}
}

// armTimer (re)arms the debounce timer. Caller holds ln.mu.
func (m *Manager) armTimer(ln *lane) {
	if ln.timer != nil {
		ln.timer.Stop()
	}
	key := ln.key
	ln.timer = time.AfterFunc(ln.debounce, func() { m.flush(key) })
}

// getLane returns the in-memory lane, creating it and its durable row on
// first use.
func (m *Manager) getLane(ctx context.Context, sessionKey, agentID string) (*lane, error) {
	key := QueueKey(sessionKey, agentID)

	m.mu.Lock()
	if ln, ok := m.lanes[key]; ok {
		m.mu.Unlock()
		return ln, nil
	}
	m.mu.Unlock()

	row, err := m.ensureLaneRow(ctx, key, sessionKey, agentID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ln, ok := m.lanes[key]; ok {
		return ln, nil
	}

	ln := &lane{
		key:        key,
		sessionKey: sessionKey,
		agentID:    agentID,
		state:      laneIdle,
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
	m.lanes[key] = ln
	return ln, nil
}

// ensureLaneRow upserts the durable lane row and reads it back.
func (m *Manager) ensureLaneRow(ctx context.Context, key, sessionKey, agentID string) (*ent.QueueLane, error) {
	err := m.client.QueueLane.Create().
		SetID(key).
		SetSessionKey(sessionKey).
		SetAgentID(agentID).
		SetDebounceMs(int(m.cfg.Debounce / time.Millisecond)).
		SetMaxQueued(m.cfg.MaxQueuedPerLane).
		OnConflictColumns(queuelane.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert queue lane: %w", err)
	}
	row, err := m.client.QueueLane.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue lane: %w", err)
	}
	return row, nil
}

// SetMode changes a lane's run-time message handling mode.
func (m *Manager) SetMode(ctx context.Context, queueKey string, mode Mode) error {
	switch mode {
	case ModeCollect, ModeFollowup, ModeSteer:
	default:
		return services.NewValidationError("mode", fmt.Sprintf("invalid lane mode %q", mode))
	}

	err := m.client.QueueLane.UpdateOneID(queueKey).
		SetMode(queuelane.Mode(mode)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("queue lane %q: %w", queueKey, services.ErrNotFound)
		}
		return fmt.Errorf("failed to update lane mode: %w", err)
	}

	m.mu.Lock()
	ln, ok := m.lanes[queueKey]
	m.mu.Unlock()
	if ok {
		ln.mu.Lock()
		ln.mode = mode
		ln.mu.Unlock()
	}
	return nil
}

// SetPaused pauses or resumes a lane. Resuming flushes any held messages
// into a run.
func (m *Manager) SetPaused(ctx context.Context, queueKey string, paused bool) error {
	err := m.client.QueueLane.UpdateOneID(queueKey).
		SetIsPaused(paused).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("queue lane %q: %w", queueKey, services.ErrNotFound)
		}
		return fmt.Errorf("failed to update lane pause flag: %w", err)
	}

	m.mu.Lock()
	ln, ok := m.lanes[queueKey]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	ln.mu.Lock()
	defer ln.mu.Unlock()
	ln.paused = paused
	if !paused && ln.state == laneIdle && len(ln.pending) > 0 {
		msgs := ln.pending
		ln.pending = nil
		m.startRun(ctx, ln, msgs)
	}
	return nil
}

// Lane returns the durable lane row, for admin inspection.
func (m *Manager) Lane(ctx context.Context, queueKey string) (*ent.QueueLane, error) {
	row, err := m.client.QueueLane.Get(ctx, queueKey)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("queue lane %q: %w", queueKey, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read queue lane: %w", err)
	}
	return row, nil
}

// Stop stops all debounce timers. Buffered messages stay durable as
// pending queue_messages rows; the recovery sweep flushes them on the
// next start.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ln := range m.lanes {
		ln.mu.Lock()
		if ln.timer != nil {
			ln.timer.Stop()
		}
		ln.mu.Unlock()
	}
}

// ── Durable mirror helpers ──

// mirrorLane writes the lane's current state to queue_lanes. Mirror
// failures are logged, not propagated: the recovery sweep heals drift.
func (m *Manager) mirrorLane(ctx context.Context, ln *lane) {
	u := m.client.QueueLane.UpdateOneID(ln.key).
		SetState(durableState(ln.state)).
		SetMode(queuelane.Mode(ln.mode))

	if ln.state == laneDebouncing {
		u.SetDebounceUntil(time.Now().Add(ln.debounce))
	} else {
		u.ClearDebounceUntil()
	}
	if ln.activeDispatchID != "" {
		u.SetActiveDispatchID(ln.activeDispatchID)
	} else {
		u.ClearActiveDispatchID()
	}

	if err := u.Exec(ctx); err != nil {
		m.logger.Warn("Failed to mirror lane state",
			"queue_key", ln.key, "error", err)
	}
}

func durableState(s laneState) queuelane.State {
	switch s {
	case laneRunning:
		return queuelane.StateRunning
	case laneDebouncing:
		return queuelane.StateQueued
	default:
		return queuelane.StateIdle
	}
}

// persistMessage inserts the queue_messages row for an inbound message.
func (m *Manager) persistMessage(ctx context.Context, queueKey string, msg Message) (string, error) {
	id := uuid.New().String()
	builder := m.client.QueueMessage.Create().
		SetID(id).
		SetQueueKey(queueKey).
		SetText(msg.Text).
		SetArrivedAt(msg.ArrivedAt)
	if msg.WorkItemID != "" {
		builder.SetWorkItemID(msg.WorkItemID)
	}
	if msg.SenderName != "" {
		builder.SetSenderName(msg.SenderName)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to persist queue message: %w", err)
	}
	return id, nil
}

func (m *Manager) setMessageStatus(ctx context.Context, msgID string, status queuemessage.Status, dispatchID string) {
	u := m.client.QueueMessage.UpdateOneID(msgID).SetStatus(status)
	if dispatchID != "" {
		u.SetDispatchID(dispatchID)
	}
	if err := u.Exec(ctx); err != nil {
		m.logger.Warn("Failed to update queue message status",
			"queue_message_id", msgID, "status", status, "error", err)
	}
}

// markIncluded marks the coalesced messages as included in a dispatch.
// Matching is by pending status and arrival window, which covers every
// message this process buffered.
func (m *Manager) markIncluded(ctx context.Context, queueKey string, msgs []Message, dispatchID string) {
	if len(msgs) == 0 {
		return
	}
	last := msgs[len(msgs)-1].ArrivedAt
	_, err := m.client.QueueMessage.Update().
		Where(
			queuemessage.QueueKeyEQ(queueKey),
			queuemessage.StatusEQ(queuemessage.StatusPending),
			queuemessage.ArrivedAtLTE(last),
		).
		SetStatus(queuemessage.StatusIncluded).
		SetDispatchID(dispatchID).
		Save(ctx)
	if err != nil {
		m.logger.Warn("Failed to mark messages included",
			"queue_key", queueKey, "dispatch_id", dispatchID, "error", err)
	}
}

func lastWorkItemID(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].WorkItemID != "" {
			return msgs[i].WorkItemID
		}
	}
	return ""
}
