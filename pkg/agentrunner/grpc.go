package agentrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	runnerv1 "github.com/hooklinehq/hookline/proto"
)

// GRPCRunner implements Runner against the external inference service.
type GRPCRunner struct {
	conn   *grpc.ClientConn
	client runnerv1.AgentRunnerClient
}

// NewGRPCRunner creates a client for the runner service at addr.
func NewGRPCRunner(addr string) (*GRPCRunner, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent runner at %s: %w", addr, err)
	}
	return &GRPCRunner{
		conn:   conn,
		client: runnerv1.NewAgentRunnerClient(conn),
	}, nil
}

// Run opens the bidirectional stream, sends the start message and returns
// a Stream pumping response chunks.
func (r *GRPCRunner) Run(ctx context.Context, input *Input) (Stream, error) {
	grpcStream, err := r.client.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("gRPC Run call failed: %w", err)
	}

	start, err := toProtoStart(input)
	if err != nil {
		return nil, err
	}
	if err := grpcStream.Send(&runnerv1.RunInput{
		Input: &runnerv1.RunInput_Start{Start: start},
	}); err != nil {
		return nil, fmt.Errorf("failed to send run start: %w", err)
	}

	s := &runStream{stream: grpcStream, ch: make(chan Chunk, 32)}
	go s.receiveLoop(ctx)
	return s, nil
}

// Close releases the gRPC connection.
func (r *GRPCRunner) Close() error {
	return r.conn.Close()
}

type runStream struct {
	stream runnerv1.AgentRunner_RunClient
	ch     chan Chunk
}

func (s *runStream) Chunks() <-chan Chunk { return s.ch }

func (s *runStream) Merge(text string, responseContext map[string]interface{}) error {
	merge := &runnerv1.MergeInput{Text: text}
	if responseContext != nil {
		raw, err := json.Marshal(responseContext)
		if err != nil {
			return fmt.Errorf("failed to encode merge response context: %w", err)
		}
		merge.ResponseContextJson = string(raw)
	}
	return s.stream.Send(&runnerv1.RunInput{
		Input: &runnerv1.RunInput_Merge{Merge: merge},
	})
}

func (s *runStream) Signal(kind string) error {
	return s.stream.Send(&runnerv1.RunInput{
		Input: &runnerv1.RunInput_Control{Control: &runnerv1.ControlSignal{Kind: kind}},
	})
}

func (s *runStream) Close() error {
	return s.stream.CloseSend()
}

func (s *runStream) receiveLoop(ctx context.Context) {
	defer close(s.ch)
	for {
		resp, err := s.stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			select {
			case s.ch <- &ErrorChunk{Message: err.Error(), Retryable: true}:
			case <-ctx.Done():
			}
			return
		}
		chunk := fromProtoResponse(resp)
		if chunk != nil {
			select {
			case s.ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}
}

func toProtoStart(input *Input) (*runnerv1.RunStart, error) {
	start := &runnerv1.RunStart{
		DispatchId: input.DispatchID,
		SessionKey: input.SessionKey,
		AgentId:    input.AgentID,
		InputText:  input.InputText,
		Attempt:    int32(input.Attempt),
	}
	if input.ResponseContext != nil {
		raw, err := json.Marshal(input.ResponseContext)
		if err != nil {
			return nil, fmt.Errorf("failed to encode response context: %w", err)
		}
		start.ResponseContextJson = string(raw)
	}
	return start, nil
}

func fromProtoResponse(resp *runnerv1.RunResponse) Chunk {
	switch c := resp.Content.(type) {
	case *runnerv1.RunResponse_Output:
		return &OutputChunk{Text: c.Output.Text}
	case *runnerv1.RunResponse_Effect:
		payload := map[string]interface{}{}
		if c.Effect.PayloadJson != "" {
			// A payload the service could not encode cleanly still flows
			// through as an empty map; delivery will fail loudly downstream.
			_ = json.Unmarshal([]byte(c.Effect.PayloadJson), &payload)
		}
		return &EffectChunk{Effect: Effect{
			Channel:   c.Effect.Channel,
			EffectKey: c.Effect.EffectKey,
			Payload:   payload,
		}}
	case *runnerv1.RunResponse_Checkpoint:
		return &CheckpointChunk{Kind: c.Checkpoint.Kind}
	case *runnerv1.RunResponse_Done:
		return &DoneChunk{OutputText: c.Done.OutputText}
	case *runnerv1.RunResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
