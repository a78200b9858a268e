package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/pkg/services"
)

// Ledger creates and administers run dispatch rows. Claiming and terminal
// transitions during execution belong to Worker, not here.
type Ledger struct {
	client *ent.Client
	logger *slog.Logger
}

// NewLedger creates a Ledger.
func NewLedger(client *ent.Client) *Ledger {
	return &Ledger{
		client: client,
		logger: slog.With("component", "dispatch_ledger"),
	}
}

// CreateInput describes one run to schedule.
type CreateInput struct {
	QueueKey        string
	SessionKey      string
	AgentID         string
	WorkItemID      string
	RunKey          string
	InputText       string
	CoalescedText   string
	ResponseContext map[string]interface{}

	// ReplayOfDispatchID marks a follow-up that may be merged into the
	// named active dispatch at a checkpoint.
	ReplayOfDispatchID string

	// ScheduledAt defaults to now.
	ScheduledAt time.Time
}

// Create inserts a queued dispatch row.
func (l *Ledger) Create(ctx context.Context, input CreateInput) (*ent.RunDispatch, error) {
	return createDispatch(ctx, l.client.RunDispatch, input)
}

// CreateTx inserts a queued dispatch row inside the caller's transaction.
func (l *Ledger) CreateTx(ctx context.Context, tx *ent.Tx, input CreateInput) (*ent.RunDispatch, error) {
	return createDispatch(ctx, tx.RunDispatch, input)
}

func createDispatch(ctx context.Context, c *ent.RunDispatchClient, input CreateInput) (*ent.RunDispatch, error) {
	if input.QueueKey == "" {
		return nil, services.NewValidationError("queue_key", "queue key is required")
	}
	if input.SessionKey == "" {
		return nil, services.NewValidationError("session_key", "session key is required")
	}
	if input.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "agent id is required")
	}

	scheduledAt := input.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = time.Now()
	}

	builder := c.Create().
		SetID(uuid.New().String()).
		SetQueueKey(input.QueueKey).
		SetSessionKey(input.SessionKey).
		SetAgentID(input.AgentID).
		SetInputText(input.InputText).
		SetScheduledAt(scheduledAt)

	if input.WorkItemID != "" {
		builder.SetWorkItemID(input.WorkItemID)
	}
	if input.RunKey != "" {
		builder.SetRunKey(input.RunKey)
	}
	if input.CoalescedText != "" {
		builder.SetCoalescedText(input.CoalescedText)
	}
	if input.ResponseContext != nil {
		builder.SetResponseContext(input.ResponseContext)
	}
	if input.ReplayOfDispatchID != "" {
		builder.SetReplayOfDispatchID(input.ReplayOfDispatchID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch: %w", err)
	}
	return row, nil
}

// Get fetches one dispatch by id.
func (l *Ledger) Get(ctx context.Context, id string) (*ent.RunDispatch, error) {
	row, err := l.client.RunDispatch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dispatch: %w", err)
	}
	return row, nil
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status     string
	SessionKey string
	QueueKey   string
	Limit      int
}

// List returns dispatches newest-first.
func (l *Ledger) List(ctx context.Context, f ListFilter) ([]*ent.RunDispatch, error) {
	q := l.client.RunDispatch.Query()
	if f.Status != "" {
		q = q.Where(rundispatch.StatusEQ(rundispatch.Status(f.Status)))
	}
	if f.SessionKey != "" {
		q = q.Where(rundispatch.SessionKeyEQ(f.SessionKey))
	}
	if f.QueueKey != "" {
		q = q.Where(rundispatch.QueueKeyEQ(f.QueueKey))
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := q.Order(ent.Desc(rundispatch.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	return rows, nil
}

// RequestCancel cancels a dispatch. Queued rows go terminal immediately;
// running and paused rows get cancel_requested and the lease holder
// transitions them at its next safe point. Terminal rows are refused.
func (l *Ledger) RequestCancel(ctx context.Context, id string) error {
	row, err := l.Get(ctx, id)
	if err != nil {
		return err
	}

	switch row.Status {
	case rundispatch.StatusQueued:
		n, err := l.client.RunDispatch.Update().
			Where(
				rundispatch.IDEQ(id),
				rundispatch.StatusEQ(rundispatch.StatusQueued),
			).
			SetStatus(rundispatch.StatusCancelled).
			SetControlState(rundispatch.ControlStateCancelled).
			SetFinishedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel queued dispatch: %w", err)
		}
		if n == 0 {
			// Claimed between read and write; fall back to the request path.
			return l.requestCancelActive(ctx, id)
		}
		l.logger.Info("Queued dispatch cancelled", "dispatch_id", id)
		return nil

	case rundispatch.StatusRunning, rundispatch.StatusPaused:
		return l.requestCancelActive(ctx, id)

	default:
		return services.ErrNotCancellable
	}
}

func (l *Ledger) requestCancelActive(ctx context.Context, id string) error {
	n, err := l.client.RunDispatch.Update().
		Where(
			rundispatch.IDEQ(id),
			rundispatch.StatusIn(rundispatch.StatusRunning, rundispatch.StatusPaused),
			rundispatch.ControlStateNotIn(rundispatch.ControlStateCancelled),
		).
		SetControlState(rundispatch.ControlStateCancelRequested).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to request dispatch cancellation: %w", err)
	}
	if n == 0 {
		return services.ErrNotCancellable
	}
	l.logger.Info("Dispatch cancellation requested", "dispatch_id", id)
	return nil
}

// RequestPause asks the lease holder to park a running dispatch at its
// next safe point.
func (l *Ledger) RequestPause(ctx context.Context, id string) error {
	n, err := l.client.RunDispatch.Update().
		Where(
			rundispatch.IDEQ(id),
			rundispatch.StatusEQ(rundispatch.StatusRunning),
			rundispatch.ControlStateEQ(rundispatch.ControlStateNormal),
		).
		SetControlState(rundispatch.ControlStatePauseRequested).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to request dispatch pause: %w", err)
	}
	if n == 0 {
		return services.NewValidationError("status", "dispatch is not running normally")
	}
	return nil
}

// ResumePaused requeues a paused dispatch for a fresh claim.
func (l *Ledger) ResumePaused(ctx context.Context, id string) error {
	n, err := l.client.RunDispatch.Update().
		Where(
			rundispatch.IDEQ(id),
			rundispatch.StatusEQ(rundispatch.StatusPaused),
		).
		SetStatus(rundispatch.StatusQueued).
		SetControlState(rundispatch.ControlStateNormal).
		SetScheduledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume dispatch: %w", err)
	}
	if n == 0 {
		return services.NewValidationError("status", "dispatch is not paused")
	}
	l.logger.Info("Paused dispatch requeued", "dispatch_id", id)
	return nil
}
