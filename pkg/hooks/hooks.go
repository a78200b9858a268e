// Package hooks runs plugin-registered handlers at fixed points in the
// event pipeline, under per-handler timeouts and a cumulative per-event
// budget.
package hooks

import (
	"context"
	"time"
)

// Hook names form a closed set; registration against any other name is
// rejected.
const (
	WorkItemPreCreate   = "work_item.pre_create"
	WorkItemPostCreate  = "work_item.post_create"
	RunPrePrompt        = "run.pre_prompt"
	ModelPreCall        = "model.pre_call"
	ModelPostCall       = "model.post_call"
	ToolPreExec         = "tool.pre_exec"
	ToolPostExec        = "tool.post_exec"
	ResponsePreDeliver  = "response.pre_deliver"
	ResponsePostDeliver = "response.post_deliver"
)

var knownHooks = map[string]bool{
	WorkItemPreCreate:   true,
	WorkItemPostCreate:  true,
	RunPrePrompt:        true,
	ModelPreCall:        true,
	ModelPostCall:       true,
	ToolPreExec:         true,
	ToolPostExec:        true,
	ResponsePreDeliver:  true,
	ResponsePostDeliver: true,
}

// KnownHook reports whether name is part of the closed hook set.
func KnownHook(name string) bool { return knownHooks[name] }

// FailPolicy decides whether a handler failure stops the chain.
type FailPolicy string

const (
	FailOpen   FailPolicy = "fail_open"
	FailClosed FailPolicy = "fail_closed"
)

// Action is a handler's verdict on the running payload.
type Action string

const (
	ActionContinue Action = "continue"
	ActionBlock    Action = "block"
)

// Invocation is the context a handler receives.
type Invocation struct {
	Hook       string
	PluginID   string
	WorkItemID string
	DispatchID string
	AgentID    string
	Data       map[string]interface{}
}

// Result is a handler's return. Data mutations are shallow-merged into the
// running payload on continue.
type Result struct {
	Action Action
	Data   map[string]interface{}
}

// Handler is one hook callback. It must respect ctx cancellation; the
// dispatcher enforces the deadline regardless.
type Handler func(ctx context.Context, inv *Invocation) (*Result, error)

// Registration binds a handler to a hook point.
type Registration struct {
	PluginID string
	Hook     string
	Handler  Handler
	// Priority orders handlers within a hook, higher first. Ties break on
	// PluginID, then registration order.
	Priority   int
	FailPolicy FailPolicy
	Timeout    time.Duration
}

// Receipt records one handler invocation for the audit log.
type Receipt struct {
	PluginID string
	Hook     string
	Status   string
	Duration time.Duration
	Error    string
}

// Outcome is the result of dispatching one hook event.
type Outcome struct {
	// Data is the payload after all continue-merges.
	Data map[string]interface{}
	// Blocked is true when a handler returned block, or a fail_closed
	// handler failed.
	Blocked  bool
	Receipts []Receipt
}
