package dispatch

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/rundispatch"
)

// absorbedFollowUp is one follow-up dispatch merged into a live run.
type absorbedFollowUp struct {
	DispatchID      string
	InputText       string
	ResponseContext map[string]interface{}
}

// absorbFollowUps merges queued follow-up rows targeting the active
// dispatch. Called at run checkpoints while the caller holds the lease; the
// whole operation is fenced on that lease inside one transaction, so a
// concurrent orphan requeue or cancellation makes it a no-op.
func absorbFollowUps(ctx context.Context, client *ent.Client, dispatchID, workerID string, epoch int64) ([]absorbedFollowUp, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start merge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Fence: the active row must still be ours.
	owned, err := tx.RunDispatch.Query().
		Where(
			rundispatch.IDEQ(dispatchID),
			rundispatch.StatusEQ(rundispatch.StatusRunning),
			rundispatch.ClaimedBy(workerID),
			rundispatch.ClaimedEpochEQ(epoch),
		).
		ForUpdate().
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify dispatch lease: %w", err)
	}
	if !owned {
		return nil, errLeaseLost
	}

	followUps, err := tx.RunDispatch.Query().
		Where(
			rundispatch.ReplayOfDispatchID(dispatchID),
			rundispatch.StatusEQ(rundispatch.StatusQueued),
		).
		Order(ent.Asc(rundispatch.FieldScheduledAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow-ups: %w", err)
	}
	if len(followUps) == 0 {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit merge: %w", err)
		}
		return nil, nil
	}

	now := time.Now()
	absorbed := make([]absorbedFollowUp, 0, len(followUps))
	for _, fu := range followUps {
		err := tx.RunDispatch.UpdateOneID(fu.ID).
			SetStatus(rundispatch.StatusMerged).
			SetMergedIntoDispatchID(dispatchID).
			SetFinishedAt(now).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark follow-up merged: %w", err)
		}
		absorbed = append(absorbed, absorbedFollowUp{
			DispatchID:      fu.ID,
			InputText:       fu.InputText,
			ResponseContext: fu.ResponseContext,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merge: %w", err)
	}
	return absorbed, nil
}
