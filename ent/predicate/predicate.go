// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IdempotencyKey is the predicate function for idempotencykey builders.
type IdempotencyKey func(*sql.Selector)

// OutboxEntry is the predicate function for outboxentry builders.
type OutboxEntry func(*sql.Selector)

// PluginEvent is the predicate function for pluginevent builders.
type PluginEvent func(*sql.Selector)

// PluginInstance is the predicate function for plugininstance builders.
type PluginInstance func(*sql.Selector)

// QueueLane is the predicate function for queuelane builders.
type QueueLane func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)

// Routine is the predicate function for routine builders.
type Routine func(*sql.Selector)

// RoutineEvent is the predicate function for routineevent builders.
type RoutineEvent func(*sql.Selector)

// RoutineRun is the predicate function for routinerun builders.
type RoutineRun func(*sql.Selector)

// RunDispatch is the predicate function for rundispatch builders.
type RunDispatch func(*sql.Selector)

// RuntimeControl is the predicate function for runtimecontrol builders.
type RuntimeControl func(*sql.Selector)

// ScheduledItem is the predicate function for scheduleditem builders.
type ScheduledItem func(*sql.Selector)

// WorkItem is the predicate function for workitem builders.
type WorkItem func(*sql.Selector)
