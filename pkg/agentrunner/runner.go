// Package agentrunner is the orchestrator-side client of the external
// agent inference service. Runs stream back output, effects and
// checkpoints; the orchestrator owns all durable state.
package agentrunner

import "context"

// Input describes one run to execute.
type Input struct {
	DispatchID      string
	SessionKey      string
	AgentID         string
	InputText       string
	ResponseContext map[string]interface{}
	Attempt         int
}

// Effect is a side-effect request produced by a run. The dispatcher inserts
// these into the outbox in the completion transaction.
type Effect struct {
	Channel   string
	EffectKey string
	Payload   map[string]interface{}
}

// Chunk is one streamed run message.
type Chunk interface{ isChunk() }

// OutputChunk carries an output text delta.
type OutputChunk struct{ Text string }

// EffectChunk carries one effect request.
type EffectChunk struct{ Effect Effect }

// CheckpointChunk marks a safe point where merges and pause/cancel
// requests are honored.
type CheckpointChunk struct{ Kind string }

// DoneChunk terminates a successful run.
type DoneChunk struct{ OutputText string }

// ErrorChunk terminates a failed run.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (*OutputChunk) isChunk()     {}
func (*EffectChunk) isChunk()     {}
func (*CheckpointChunk) isChunk() {}
func (*DoneChunk) isChunk()       {}
func (*ErrorChunk) isChunk()      {}

// Stream is one live run. Chunks is closed when the run ends; Merge and
// Signal are only honored by the service at its next checkpoint.
type Stream interface {
	Chunks() <-chan Chunk

	// Merge injects coalesced follow-up text into the live run.
	Merge(text string, responseContext map[string]interface{}) error

	// Signal asks the service to wind down ("pause" or "cancel").
	Signal(kind string) error

	// Close tears the stream down. Safe after the channel closes.
	Close() error
}

// Runner executes agent runs. Implementations must close the chunk channel
// when the stream ends and respect ctx cancellation.
type Runner interface {
	Run(ctx context.Context, input *Input) (Stream, error)
}

// Control signal kinds.
const (
	SignalPause  = "pause"
	SignalCancel = "cancel"
)
