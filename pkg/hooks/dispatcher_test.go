package hooks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/events"
)

type fakeGuard struct {
	mu        sync.Mutex
	failures  []string
	successes []string
	down      map[string]bool
}

func (f *fakeGuard) RecordFailure(pluginID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, pluginID)
}

func (f *fakeGuard) RecordSuccess(pluginID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successes = append(f.successes, pluginID)
}

func (f *fakeGuard) Disabled(pluginID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.down[pluginID]
}

func okHandler(data map[string]interface{}) Handler {
	return func(_ context.Context, _ *Invocation) (*Result, error) {
		return &Result{Action: ActionContinue, Data: data}, nil
	}
}

func TestRegistryRejectsUnknownHook(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Registration{PluginID: "p1", Hook: "no.such.hook", Handler: okHandler(nil)})
	assert.Error(t, err)
}

func TestRegistryRejectsNilHandler(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Registration{PluginID: "p1", Hook: WorkItemPreCreate})
	assert.Error(t, err)
}

func TestRegistryOrdersByPriorityThenPluginID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{PluginID: "bbb", Hook: WorkItemPreCreate, Handler: okHandler(nil), Priority: 1}))
	require.NoError(t, r.Register(Registration{PluginID: "aaa", Hook: WorkItemPreCreate, Handler: okHandler(nil), Priority: 1}))
	require.NoError(t, r.Register(Registration{PluginID: "zzz", Hook: WorkItemPreCreate, Handler: okHandler(nil), Priority: 9}))

	regs := r.Handlers(WorkItemPreCreate)
	require.Len(t, regs, 3)
	assert.Equal(t, "zzz", regs[0].PluginID, "higher priority first")
	assert.Equal(t, "aaa", regs[1].PluginID, "plugin id breaks priority ties")
	assert.Equal(t, "bbb", regs[2].PluginID)
}

func TestRegistryUnregisterRemovesAllHooks(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{PluginID: "p1", Hook: WorkItemPreCreate, Handler: okHandler(nil)}))
	require.NoError(t, r.Register(Registration{PluginID: "p1", Hook: ResponsePreDeliver, Handler: okHandler(nil)}))
	require.NoError(t, r.Register(Registration{PluginID: "p2", Hook: WorkItemPreCreate, Handler: okHandler(nil)}))

	r.Unregister("p1")
	assert.Len(t, r.Handlers(WorkItemPreCreate), 1)
	assert.Empty(t, r.Handlers(ResponsePreDeliver))
}

func TestDispatchMergesDataAcrossHandlers(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{
		PluginID: "p1", Hook: WorkItemPreCreate, Priority: 2,
		Handler: okHandler(map[string]interface{}{"a": 1, "shared": "first"}),
	}))
	require.NoError(t, r.Register(Registration{
		PluginID: "p2", Hook: WorkItemPreCreate, Priority: 1,
		Handler: okHandler(map[string]interface{}{"b": 2, "shared": "second"}),
	}))

	d := NewDispatcher(r, nil, nil, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{
		Hook: WorkItemPreCreate,
		Data: map[string]interface{}{"orig": true},
	})

	assert.False(t, out.Blocked)
	assert.Equal(t, true, out.Data["orig"])
	assert.Equal(t, 1, out.Data["a"])
	assert.Equal(t, 2, out.Data["b"])
	// Later handler wins the shallow merge
	assert.Equal(t, "second", out.Data["shared"])
	assert.Len(t, out.Receipts, 2)
}

func TestDispatchBlockStopsChain(t *testing.T) {
	r := NewRegistry()
	var secondRan bool
	require.NoError(t, r.Register(Registration{
		PluginID: "blocker", Hook: WorkItemPreCreate, Priority: 2,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			return &Result{Action: ActionBlock}, nil
		},
	}))
	require.NoError(t, r.Register(Registration{
		PluginID: "after", Hook: WorkItemPreCreate, Priority: 1,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			secondRan = true
			return &Result{Action: ActionContinue}, nil
		},
	}))

	d := NewDispatcher(r, nil, nil, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	assert.True(t, out.Blocked)
	assert.False(t, secondRan, "handlers after a block must not run")
	require.Len(t, out.Receipts, 1)
	assert.Equal(t, events.HookBlocked, out.Receipts[0].Status)
}

func TestDispatchFailOpenContinuesPastError(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{
		PluginID: "broken", Hook: WorkItemPreCreate, Priority: 2, FailPolicy: FailOpen,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			return nil, errors.New("boom")
		},
	}))
	require.NoError(t, r.Register(Registration{
		PluginID: "healthy", Hook: WorkItemPreCreate, Priority: 1,
		Handler: okHandler(map[string]interface{}{"ok": true}),
	}))

	guard := &fakeGuard{}
	d := NewDispatcher(r, nil, guard, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	assert.False(t, out.Blocked)
	assert.Equal(t, true, out.Data["ok"])
	assert.Equal(t, []string{"broken"}, guard.failures)
	assert.Equal(t, []string{"healthy"}, guard.successes)
}

func TestDispatchFailClosedBlocksOnError(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{
		PluginID: "broken", Hook: WorkItemPreCreate, FailPolicy: FailClosed,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			return nil, errors.New("boom")
		},
	}))

	d := NewDispatcher(r, nil, nil, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	assert.True(t, out.Blocked)
	require.Len(t, out.Receipts, 1)
	assert.Equal(t, events.HookError, out.Receipts[0].Status)
}

func TestDispatchSkipsDisabledPlugins(t *testing.T) {
	r := NewRegistry()
	var ran bool
	require.NoError(t, r.Register(Registration{
		PluginID: "down", Hook: WorkItemPreCreate,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			ran = true
			return &Result{Action: ActionContinue}, nil
		},
	}))

	guard := &fakeGuard{down: map[string]bool{"down": true}}
	d := NewDispatcher(r, nil, guard, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	assert.False(t, ran)
	assert.Empty(t, out.Receipts)
}

func TestDispatchHandlerTimeout(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{
		PluginID: "slow", Hook: WorkItemPreCreate, Timeout: 30 * time.Millisecond,
		Handler: func(ctx context.Context, _ *Invocation) (*Result, error) {
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
			}
			return &Result{Action: ActionContinue}, nil
		},
	}))

	guard := &fakeGuard{}
	d := NewDispatcher(r, nil, guard, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	require.Len(t, out.Receipts, 1)
	assert.Equal(t, events.HookTimeout, out.Receipts[0].Status)
	assert.Equal(t, []string{"slow"}, guard.failures)
}

func TestDispatchHandlerPanicBecomesError(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{
		PluginID: "panicky", Hook: WorkItemPreCreate,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			panic("unexpected state")
		},
	}))

	d := NewDispatcher(r, nil, nil, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	assert.False(t, out.Blocked)
	require.Len(t, out.Receipts, 1)
	assert.Equal(t, events.HookError, out.Receipts[0].Status)
	assert.Contains(t, out.Receipts[0].Error, "handler panic")
}

func TestDispatchBudgetExhaustion(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Registration{
		PluginID: "eater", Hook: WorkItemPreCreate, Priority: 2,
		Handler: func(ctx context.Context, _ *Invocation) (*Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))
	var secondRan bool
	require.NoError(t, r.Register(Registration{
		PluginID: "starved", Hook: WorkItemPreCreate, Priority: 1,
		Handler: func(_ context.Context, _ *Invocation) (*Result, error) {
			secondRan = true
			return &Result{Action: ActionContinue}, nil
		},
	}))

	d := NewDispatcher(r, nil, nil, 50*time.Millisecond)
	out := d.Dispatch(context.Background(), &Invocation{Hook: WorkItemPreCreate})

	require.Len(t, out.Receipts, 2)
	assert.Equal(t, events.HookTimeout, out.Receipts[0].Status)
	assert.Equal(t, events.HookBudgetExceeded, out.Receipts[1].Status)
	assert.False(t, secondRan, "budget-exceeded handler must not be invoked")
}

func TestDispatchNoHandlersIsNoop(t *testing.T) {
	d := NewDispatcher(NewRegistry(), nil, nil, time.Second)
	out := d.Dispatch(context.Background(), &Invocation{
		Hook: WorkItemPreCreate,
		Data: map[string]interface{}{"x": 1},
	})

	assert.False(t, out.Blocked)
	assert.Equal(t, 1, out.Data["x"])
	assert.Empty(t, out.Receipts)
}
