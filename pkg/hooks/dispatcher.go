package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hooklinehq/hookline/pkg/events"
)

// GuardNotifier is the crash-guard surface the dispatcher reports into.
type GuardNotifier interface {
	RecordFailure(pluginID string)
	RecordSuccess(pluginID string)
	Disabled(pluginID string) bool
}

// Dispatcher runs the ordered handler chain for a hook event.
type Dispatcher struct {
	registry *Registry
	recorder *events.Recorder
	guard    GuardNotifier
	// budget caps the cumulative handler time of one event.
	budget time.Duration
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher. recorder and guard may be nil in
// tests; budget <= 0 falls back to 8s.
func NewDispatcher(registry *Registry, recorder *events.Recorder, guard GuardNotifier, budget time.Duration) *Dispatcher {
	if budget <= 0 {
		budget = 8 * time.Second
	}
	return &Dispatcher{
		registry: registry,
		recorder: recorder,
		guard:    guard,
		budget:   budget,
		logger:   slog.With("component", "hook_dispatcher"),
	}
}

// Dispatch invokes every handler registered for the hook, in order, and
// returns the merged payload plus per-handler receipts. Receipts are flushed
// to the audit log asynchronously; the caller gets them synchronously in the
// Outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *Invocation) *Outcome {
	out := &Outcome{Data: inv.Data}
	if out.Data == nil {
		out.Data = make(map[string]interface{})
	}

	deadline := time.Now().Add(d.budget)

	for _, reg := range d.registry.Handlers(inv.Hook) {
		if d.guard != nil && d.guard.Disabled(reg.PluginID) {
			continue
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			d.append(out, Receipt{
				PluginID: reg.PluginID,
				Hook:     inv.Hook,
				Status:   events.HookBudgetExceeded,
			}, inv)
			if d.guard != nil {
				d.guard.RecordFailure(reg.PluginID)
			}
			if reg.FailPolicy == FailClosed {
				out.Blocked = true
				break
			}
			continue
		}

		timeout := reg.Timeout
		if timeout <= 0 || timeout > remaining {
			timeout = remaining
		}

		receipt, result := d.invoke(ctx, reg, inv, out.Data, timeout)
		d.append(out, receipt, inv)

		switch receipt.Status {
		case events.HookOK, events.HookBlocked:
			if d.guard != nil {
				d.guard.RecordSuccess(reg.PluginID)
			}
		default:
			if d.guard != nil {
				d.guard.RecordFailure(reg.PluginID)
			}
			if reg.FailPolicy == FailClosed {
				out.Blocked = true
				return out
			}
			continue
		}

		if result != nil && result.Action == ActionBlock {
			out.Blocked = true
			return out
		}
		if result != nil && result.Data != nil {
			for k, v := range result.Data {
				out.Data[k] = v
			}
		}
	}

	return out
}

// invoke runs one handler under its effective timeout, converting panics
// and deadline overruns into receipts.
func (d *Dispatcher) invoke(ctx context.Context, reg Registration, inv *Invocation, data map[string]interface{}, timeout time.Duration) (Receipt, *Result) {
	hctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	type handlerReturn struct {
		result *Result
		err    error
	}
	done := make(chan handlerReturn, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- handlerReturn{err: fmt.Errorf("handler panic: %v", p)}
			}
		}()
		res, err := reg.Handler(hctx, &Invocation{
			Hook:       inv.Hook,
			PluginID:   reg.PluginID,
			WorkItemID: inv.WorkItemID,
			DispatchID: inv.DispatchID,
			AgentID:    inv.AgentID,
			Data:       data,
		})
		done <- handlerReturn{result: res, err: err}
	}()

	receipt := Receipt{PluginID: reg.PluginID, Hook: inv.Hook}

	select {
	case ret := <-done:
		receipt.Duration = time.Since(start)
		if ret.err != nil {
			receipt.Status = events.HookError
			receipt.Error = ret.err.Error()
			return receipt, nil
		}
		if ret.result != nil && ret.result.Action == ActionBlock {
			receipt.Status = events.HookBlocked
		} else {
			receipt.Status = events.HookOK
		}
		return receipt, ret.result
	case <-hctx.Done():
		receipt.Duration = time.Since(start)
		receipt.Status = events.HookTimeout
		receipt.Error = hctx.Err().Error()
		// The goroutine may still be running; its late result is dropped.
		return receipt, nil
	}
}

// append records the receipt on the outcome and flushes it to the audit log.
func (d *Dispatcher) append(out *Outcome, r Receipt, inv *Invocation) {
	out.Receipts = append(out.Receipts, r)

	if r.Status != events.HookOK {
		d.logger.Warn("Hook handler did not complete cleanly",
			"hook", r.Hook, "plugin_id", r.PluginID, "status", r.Status, "error", r.Error)
	}

	if d.recorder == nil {
		return
	}
	detail := map[string]interface{}{
		"hook":        r.Hook,
		"duration_ms": r.Duration.Milliseconds(),
	}
	if r.Error != "" {
		detail["error"] = r.Error
	}
	d.recorder.RecordAsync(events.Entry{
		PluginID:   r.PluginID,
		Kind:       "hook",
		Status:     r.Status,
		WorkItemID: inv.WorkItemID,
		Detail:     detail,
	})
}
