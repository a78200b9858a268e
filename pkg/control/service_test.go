package control

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/services"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func TestSnapshotDefaults(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Millisecond)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.ProcessingEnabled)
	assert.Equal(t, PauseSoft, snap.PauseMode)
	assert.Empty(t, snap.PauseReason)
	assert.Equal(t, int64(0), snap.ControlEpoch)
	assert.Equal(t, 20, snap.MaxConcurrentDispatches)
}

func TestPauseAndResume(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Millisecond)
	ctx := context.Background()

	snap, err := svc.Pause(ctx, PauseSoft, "maintenance window")
	require.NoError(t, err)
	assert.False(t, snap.ProcessingEnabled)
	assert.Equal(t, PauseSoft, snap.PauseMode)
	assert.Equal(t, "maintenance window", snap.PauseReason)
	assert.Equal(t, int64(1), snap.ControlEpoch, "pause bumps the epoch")

	snap, err = svc.Resume(ctx)
	require.NoError(t, err)
	assert.True(t, snap.ProcessingEnabled)
	assert.Empty(t, snap.PauseReason)
	assert.Equal(t, int64(1), snap.ControlEpoch, "resume leaves the epoch alone")
}

func TestPauseHardBumpsEpoch(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Millisecond)
	ctx := context.Background()

	snap, err := svc.Pause(ctx, PauseHard, "incident")
	require.NoError(t, err)
	assert.Equal(t, PauseHard, snap.PauseMode)
	assert.Equal(t, int64(1), snap.ControlEpoch)

	snap, err = svc.Pause(ctx, PauseHard, "still down")
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.ControlEpoch)
}

func TestPauseRejectsUnknownMode(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Millisecond)

	_, err := svc.Pause(context.Background(), PauseMode("frozen"), "")
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestEmergencyStop(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Millisecond)

	snap, err := svc.EmergencyStop(context.Background(), "runaway agent")
	require.NoError(t, err)
	assert.False(t, snap.ProcessingEnabled)
	assert.Equal(t, PauseHard, snap.PauseMode)
	assert.Equal(t, "runaway agent", snap.PauseReason)
	assert.Equal(t, int64(1), snap.ControlEpoch)
}

func TestSetMaxConcurrentBounds(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Millisecond)
	ctx := context.Background()

	snap, err := svc.SetMaxConcurrent(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, snap.MaxConcurrentDispatches)

	_, err = svc.SetMaxConcurrent(ctx, 0)
	assert.Error(t, err)
	_, err = svc.SetMaxConcurrent(ctx, 101)
	assert.Error(t, err)
}

func TestSnapshotCaching(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(db.Client, time.Minute)
	ctx := context.Background()

	first, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	// Mutate the row behind the cache's back.
	err = db.Client.RuntimeControl.UpdateOneID(RowID).SetMaxConcurrentDispatches(3).Exec(ctx)
	require.NoError(t, err)

	cached, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.MaxConcurrentDispatches, cached.MaxConcurrentDispatches,
		"within the TTL the cached snapshot is served")

	// Writes refresh immediately.
	snap, err := svc.SetMaxConcurrent(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, snap.MaxConcurrentDispatches)
}
