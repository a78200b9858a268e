// Package proto holds the AgentRunner gRPC contract. Generated code is
// produced by protoc; regenerate after editing runner.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative runner.proto
