package crashguard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDisabler struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeDisabler) SetEnabled(_ context.Context, pluginID string, enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !enabled {
		f.calls = append(f.calls, pluginID)
	}
	return nil
}

func (f *fakeDisabler) disabled() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func TestGuardTripsAtThreshold(t *testing.T) {
	disabler := &fakeDisabler{}
	g := New(3, 5*time.Minute, disabler, nil)

	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	assert.False(t, g.Disabled("inst-1"), "below threshold must not trip")

	g.RecordFailure("inst-1")
	assert.True(t, g.Disabled("inst-1"))
	assert.Equal(t, []string{"inst-1"}, disabler.disabled())
}

func TestGuardWindowPrunesOldFailures(t *testing.T) {
	g := New(3, time.Minute, nil, nil)

	clock := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }

	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")

	// Two minutes later the earlier failures have aged out.
	clock = clock.Add(2 * time.Minute)
	g.RecordFailure("inst-1")
	assert.False(t, g.Disabled("inst-1"))

	// Two more inside the window trips it.
	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	assert.True(t, g.Disabled("inst-1"))
}

func TestGuardSuccessResetsCount(t *testing.T) {
	g := New(3, 5*time.Minute, nil, nil)

	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	g.RecordSuccess("inst-1")
	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	assert.False(t, g.Disabled("inst-1"), "success must clear the failure buffer")

	g.RecordFailure("inst-1")
	assert.True(t, g.Disabled("inst-1"))
}

func TestGuardTracksPluginsIndependently(t *testing.T) {
	g := New(2, 5*time.Minute, nil, nil)

	g.RecordFailure("inst-1")
	g.RecordFailure("inst-2")
	assert.False(t, g.Disabled("inst-1"))
	assert.False(t, g.Disabled("inst-2"))

	g.RecordFailure("inst-1")
	assert.True(t, g.Disabled("inst-1"))
	assert.False(t, g.Disabled("inst-2"))
}

func TestGuardReenable(t *testing.T) {
	g := New(2, 5*time.Minute, nil, nil)

	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	require.True(t, g.Disabled("inst-1"))

	g.Reenable("inst-1")
	assert.False(t, g.Disabled("inst-1"))

	// The failure buffer restarts from zero after re-enable.
	g.RecordFailure("inst-1")
	assert.False(t, g.Disabled("inst-1"))
	g.RecordFailure("inst-1")
	assert.True(t, g.Disabled("inst-1"))
}

func TestGuardIgnoresFailuresWhileDisabled(t *testing.T) {
	disabler := &fakeDisabler{}
	g := New(2, 5*time.Minute, disabler, nil)

	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")
	g.RecordFailure("inst-1")

	// Only the trip itself persists the disable.
	assert.Equal(t, []string{"inst-1"}, disabler.disabled())
}

func TestGuardDefaults(t *testing.T) {
	g := New(0, 0, nil, nil)
	assert.Equal(t, 5, g.threshold)
	assert.Equal(t, 5*time.Minute, g.window)
}
