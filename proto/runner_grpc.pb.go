// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: runner.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AgentRunner_Run_FullMethodName = "/runner.v1.AgentRunner/Run"
)

// AgentRunnerClient is the client API for AgentRunner service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AgentRunner is the external inference service executing one agent run per
// Run RPC. The call is bidirectional: the orchestrator opens with a Start,
// may inject merged follow-up text at checkpoints, and the service streams
// back output, effects and checkpoints.
type AgentRunnerClient interface {
	Run(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[RunInput, RunResponse], error)
}

type agentRunnerClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentRunnerClient(cc grpc.ClientConnInterface) AgentRunnerClient {
	return &agentRunnerClient{cc}
}

func (c *agentRunnerClient) Run(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[RunInput, RunResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AgentRunner_ServiceDesc.Streams[0], AgentRunner_Run_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[RunInput, RunResponse]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentRunner_RunClient = grpc.BidiStreamingClient[RunInput, RunResponse]

// AgentRunnerServer is the server API for AgentRunner service.
// All implementations must embed UnimplementedAgentRunnerServer
// for forward compatibility.
//
// AgentRunner is the external inference service executing one agent run per
// Run RPC. The call is bidirectional: the orchestrator opens with a Start,
// may inject merged follow-up text at checkpoints, and the service streams
// back output, effects and checkpoints.
type AgentRunnerServer interface {
	Run(grpc.BidiStreamingServer[RunInput, RunResponse]) error
	mustEmbedUnimplementedAgentRunnerServer()
}

// UnimplementedAgentRunnerServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAgentRunnerServer struct{}

func (UnimplementedAgentRunnerServer) Run(grpc.BidiStreamingServer[RunInput, RunResponse]) error {
	return status.Error(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedAgentRunnerServer) mustEmbedUnimplementedAgentRunnerServer() {}
func (UnimplementedAgentRunnerServer) testEmbeddedByValue()                     {}

// UnsafeAgentRunnerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentRunnerServer will
// result in compilation errors.
type UnsafeAgentRunnerServer interface {
	mustEmbedUnimplementedAgentRunnerServer()
}

func RegisterAgentRunnerServer(s grpc.ServiceRegistrar, srv AgentRunnerServer) {
	// If the following call panics, it indicates UnimplementedAgentRunnerServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AgentRunner_ServiceDesc, srv)
}

func _AgentRunner_Run_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(AgentRunnerServer).Run(&grpc.GenericServerStream[RunInput, RunResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentRunner_RunServer = grpc.BidiStreamingServer[RunInput, RunResponse]

// AgentRunner_ServiceDesc is the grpc.ServiceDesc for AgentRunner service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentRunner_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "runner.v1.AgentRunner",
	HandlerType: (*AgentRunnerServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Run",
			Handler:       _AgentRunner_Run_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "runner.proto",
}
