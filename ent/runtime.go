// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hooklinehq/hookline/ent/idempotencykey"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/plugininstance"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/queuemessage"
	"github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routineevent"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
	"github.com/hooklinehq/hookline/ent/scheduleditem"
	"github.com/hooklinehq/hookline/ent/schema"
	"github.com/hooklinehq/hookline/ent/workitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	idempotencykeyFields := schema.IdempotencyKey{}.Fields()
	_ = idempotencykeyFields
	// idempotencykeyDescCreatedAt is the schema descriptor for created_at field.
	idempotencykeyDescCreatedAt := idempotencykeyFields[3].Descriptor()
	// idempotencykey.DefaultCreatedAt holds the default value on creation for the created_at field.
	idempotencykey.DefaultCreatedAt = idempotencykeyDescCreatedAt.Default.(func() time.Time)
	outboxentryFields := schema.OutboxEntry{}.Fields()
	_ = outboxentryFields
	// outboxentryDescRetryable is the schema descriptor for retryable field.
	outboxentryDescRetryable := outboxentryFields[8].Descriptor()
	// outboxentry.DefaultRetryable holds the default value on creation for the retryable field.
	outboxentry.DefaultRetryable = outboxentryDescRetryable.Default.(bool)
	// outboxentryDescAttemptCount is the schema descriptor for attempt_count field.
	outboxentryDescAttemptCount := outboxentryFields[9].Descriptor()
	// outboxentry.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	outboxentry.DefaultAttemptCount = outboxentryDescAttemptCount.Default.(int)
	// outboxentryDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	outboxentryDescNextAttemptAt := outboxentryFields[10].Descriptor()
	// outboxentry.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	outboxentry.DefaultNextAttemptAt = outboxentryDescNextAttemptAt.Default.(func() time.Time)
	// outboxentryDescClaimedEpoch is the schema descriptor for claimed_epoch field.
	outboxentryDescClaimedEpoch := outboxentryFields[13].Descriptor()
	// outboxentry.DefaultClaimedEpoch holds the default value on creation for the claimed_epoch field.
	outboxentry.DefaultClaimedEpoch = outboxentryDescClaimedEpoch.Default.(int64)
	// outboxentryDescCreatedAt is the schema descriptor for created_at field.
	outboxentryDescCreatedAt := outboxentryFields[18].Descriptor()
	// outboxentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxentry.DefaultCreatedAt = outboxentryDescCreatedAt.Default.(func() time.Time)
	plugineventFields := schema.PluginEvent{}.Fields()
	_ = plugineventFields
	// plugineventDescCreatedAt is the schema descriptor for created_at field.
	plugineventDescCreatedAt := plugineventFields[7].Descriptor()
	// pluginevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	pluginevent.DefaultCreatedAt = plugineventDescCreatedAt.Default.(func() time.Time)
	plugininstanceFields := schema.PluginInstance{}.Fields()
	_ = plugininstanceFields
	// plugininstanceDescEnabled is the schema descriptor for enabled field.
	plugininstanceDescEnabled := plugininstanceFields[4].Descriptor()
	// plugininstance.DefaultEnabled holds the default value on creation for the enabled field.
	plugininstance.DefaultEnabled = plugininstanceDescEnabled.Default.(bool)
	// plugininstanceDescCreatedAt is the schema descriptor for created_at field.
	plugininstanceDescCreatedAt := plugininstanceFields[5].Descriptor()
	// plugininstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	plugininstance.DefaultCreatedAt = plugininstanceDescCreatedAt.Default.(func() time.Time)
	// plugininstanceDescUpdatedAt is the schema descriptor for updated_at field.
	plugininstanceDescUpdatedAt := plugininstanceFields[6].Descriptor()
	// plugininstance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plugininstance.DefaultUpdatedAt = plugininstanceDescUpdatedAt.Default.(func() time.Time)
	// plugininstance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plugininstance.UpdateDefaultUpdatedAt = plugininstanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	queuelaneFields := schema.QueueLane{}.Fields()
	_ = queuelaneFields
	// queuelaneDescIsPaused is the schema descriptor for is_paused field.
	queuelaneDescIsPaused := queuelaneFields[5].Descriptor()
	// queuelane.DefaultIsPaused holds the default value on creation for the is_paused field.
	queuelane.DefaultIsPaused = queuelaneDescIsPaused.Default.(bool)
	// queuelaneDescDebounceMs is the schema descriptor for debounce_ms field.
	queuelaneDescDebounceMs := queuelaneFields[7].Descriptor()
	// queuelane.DefaultDebounceMs holds the default value on creation for the debounce_ms field.
	queuelane.DefaultDebounceMs = queuelaneDescDebounceMs.Default.(int)
	// queuelaneDescMaxQueued is the schema descriptor for max_queued field.
	queuelaneDescMaxQueued := queuelaneFields[8].Descriptor()
	// queuelane.DefaultMaxQueued holds the default value on creation for the max_queued field.
	queuelane.DefaultMaxQueued = queuelaneDescMaxQueued.Default.(int)
	// queuelaneDescUpdatedAt is the schema descriptor for updated_at field.
	queuelaneDescUpdatedAt := queuelaneFields[10].Descriptor()
	// queuelane.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queuelane.DefaultUpdatedAt = queuelaneDescUpdatedAt.Default.(func() time.Time)
	// queuelane.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queuelane.UpdateDefaultUpdatedAt = queuelaneDescUpdatedAt.UpdateDefault.(func() time.Time)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescArrivedAt is the schema descriptor for arrived_at field.
	queuemessageDescArrivedAt := queuemessageFields[5].Descriptor()
	// queuemessage.DefaultArrivedAt holds the default value on creation for the arrived_at field.
	queuemessage.DefaultArrivedAt = queuemessageDescArrivedAt.Default.(func() time.Time)
	routineFields := schema.Routine{}.Fields()
	_ = routineFields
	// routineDescEnabled is the schema descriptor for enabled field.
	routineDescEnabled := routineFields[12].Descriptor()
	// routine.DefaultEnabled holds the default value on creation for the enabled field.
	routine.DefaultEnabled = routineDescEnabled.Default.(bool)
	// routineDescMinIntervalMs is the schema descriptor for min_interval_ms field.
	routineDescMinIntervalMs := routineFields[13].Descriptor()
	// routine.DefaultMinIntervalMs holds the default value on creation for the min_interval_ms field.
	routine.DefaultMinIntervalMs = routineDescMinIntervalMs.Default.(int64)
	// routineDescCreatedAt is the schema descriptor for created_at field.
	routineDescCreatedAt := routineFields[17].Descriptor()
	// routine.DefaultCreatedAt holds the default value on creation for the created_at field.
	routine.DefaultCreatedAt = routineDescCreatedAt.Default.(func() time.Time)
	// routineDescUpdatedAt is the schema descriptor for updated_at field.
	routineDescUpdatedAt := routineFields[18].Descriptor()
	// routine.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	routine.DefaultUpdatedAt = routineDescUpdatedAt.Default.(func() time.Time)
	// routine.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	routine.UpdateDefaultUpdatedAt = routineDescUpdatedAt.UpdateDefault.(func() time.Time)
	routineeventFields := schema.RoutineEvent{}.Fields()
	_ = routineeventFields
	// routineeventDescAttemptCount is the schema descriptor for attempt_count field.
	routineeventDescAttemptCount := routineeventFields[6].Descriptor()
	// routineevent.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	routineevent.DefaultAttemptCount = routineeventDescAttemptCount.Default.(int)
	// routineeventDescCreatedAt is the schema descriptor for created_at field.
	routineeventDescCreatedAt := routineeventFields[7].Descriptor()
	// routineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	routineevent.DefaultCreatedAt = routineeventDescCreatedAt.Default.(func() time.Time)
	routinerunFields := schema.RoutineRun{}.Fields()
	_ = routinerunFields
	// routinerunDescCreatedAt is the schema descriptor for created_at field.
	routinerunDescCreatedAt := routinerunFields[8].Descriptor()
	// routinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	routinerun.DefaultCreatedAt = routinerunDescCreatedAt.Default.(func() time.Time)
	rundispatchFields := schema.RunDispatch{}.Fields()
	_ = rundispatchFields
	// rundispatchDescAttemptCount is the schema descriptor for attempt_count field.
	rundispatchDescAttemptCount := rundispatchFields[12].Descriptor()
	// rundispatch.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	rundispatch.DefaultAttemptCount = rundispatchDescAttemptCount.Default.(int)
	// rundispatchDescClaimedEpoch is the schema descriptor for claimed_epoch field.
	rundispatchDescClaimedEpoch := rundispatchFields[15].Descriptor()
	// rundispatch.DefaultClaimedEpoch holds the default value on creation for the claimed_epoch field.
	rundispatch.DefaultClaimedEpoch = rundispatchDescClaimedEpoch.Default.(int64)
	// rundispatchDescScheduledAt is the schema descriptor for scheduled_at field.
	rundispatchDescScheduledAt := rundispatchFields[19].Descriptor()
	// rundispatch.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	rundispatch.DefaultScheduledAt = rundispatchDescScheduledAt.Default.(func() time.Time)
	// rundispatchDescCreatedAt is the schema descriptor for created_at field.
	rundispatchDescCreatedAt := rundispatchFields[22].Descriptor()
	// rundispatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	rundispatch.DefaultCreatedAt = rundispatchDescCreatedAt.Default.(func() time.Time)
	runtimecontrolFields := schema.RuntimeControl{}.Fields()
	_ = runtimecontrolFields
	// runtimecontrolDescProcessingEnabled is the schema descriptor for processing_enabled field.
	runtimecontrolDescProcessingEnabled := runtimecontrolFields[1].Descriptor()
	// runtimecontrol.DefaultProcessingEnabled holds the default value on creation for the processing_enabled field.
	runtimecontrol.DefaultProcessingEnabled = runtimecontrolDescProcessingEnabled.Default.(bool)
	// runtimecontrolDescControlEpoch is the schema descriptor for control_epoch field.
	runtimecontrolDescControlEpoch := runtimecontrolFields[4].Descriptor()
	// runtimecontrol.DefaultControlEpoch holds the default value on creation for the control_epoch field.
	runtimecontrol.DefaultControlEpoch = runtimecontrolDescControlEpoch.Default.(int64)
	// runtimecontrolDescMaxConcurrentDispatches is the schema descriptor for max_concurrent_dispatches field.
	runtimecontrolDescMaxConcurrentDispatches := runtimecontrolFields[5].Descriptor()
	// runtimecontrol.DefaultMaxConcurrentDispatches holds the default value on creation for the max_concurrent_dispatches field.
	runtimecontrol.DefaultMaxConcurrentDispatches = runtimecontrolDescMaxConcurrentDispatches.Default.(int)
	// runtimecontrolDescUpdatedAt is the schema descriptor for updated_at field.
	runtimecontrolDescUpdatedAt := runtimecontrolFields[6].Descriptor()
	// runtimecontrol.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	runtimecontrol.DefaultUpdatedAt = runtimecontrolDescUpdatedAt.Default.(func() time.Time)
	// runtimecontrol.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	runtimecontrol.UpdateDefaultUpdatedAt = runtimecontrolDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduleditemFields := schema.ScheduledItem{}.Fields()
	_ = scheduleditemFields
	// scheduleditemDescCreatedAt is the schema descriptor for created_at field.
	scheduleditemDescCreatedAt := scheduleditemFields[10].Descriptor()
	// scheduleditem.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduleditem.DefaultCreatedAt = scheduleditemDescCreatedAt.Default.(func() time.Time)
	workitemFields := schema.WorkItem{}.Fields()
	_ = workitemFields
	// workitemDescCreatedAt is the schema descriptor for created_at field.
	workitemDescCreatedAt := workitemFields[8].Descriptor()
	// workitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	workitem.DefaultCreatedAt = workitemDescCreatedAt.Default.(func() time.Time)
	// workitemDescUpdatedAt is the schema descriptor for updated_at field.
	workitemDescUpdatedAt := workitemFields[9].Descriptor()
	// workitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workitem.DefaultUpdatedAt = workitemDescUpdatedAt.Default.(func() time.Time)
	// workitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workitem.UpdateDefaultUpdatedAt = workitemDescUpdatedAt.UpdateDefault.(func() time.Time)
}
