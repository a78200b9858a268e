// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: runner.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// One client-to-server message. The first must be start; later messages
// inject merges or control signals at the next checkpoint.
type RunInput struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Input:
	//
	//	*RunInput_Start
	//	*RunInput_Merge
	//	*RunInput_Control
	Input         isRunInput_Input `protobuf_oneof:"input"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunInput) Reset() {
	*x = RunInput{}
	mi := &file_runner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunInput) ProtoMessage() {}

func (x *RunInput) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunInput.ProtoReflect.Descriptor instead.
func (*RunInput) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{0}
}

func (x *RunInput) GetInput() isRunInput_Input {
	if x != nil {
		return x.Input
	}
	return nil
}

func (x *RunInput) GetStart() *RunStart {
	if x != nil {
		if x, ok := x.Input.(*RunInput_Start); ok {
			return x.Start
		}
	}
	return nil
}

func (x *RunInput) GetMerge() *MergeInput {
	if x != nil {
		if x, ok := x.Input.(*RunInput_Merge); ok {
			return x.Merge
		}
	}
	return nil
}

func (x *RunInput) GetControl() *ControlSignal {
	if x != nil {
		if x, ok := x.Input.(*RunInput_Control); ok {
			return x.Control
		}
	}
	return nil
}

type isRunInput_Input interface {
	isRunInput_Input()
}

type RunInput_Start struct {
	Start *RunStart `protobuf:"bytes,1,opt,name=start,proto3,oneof"`
}

type RunInput_Merge struct {
	Merge *MergeInput `protobuf:"bytes,2,opt,name=merge,proto3,oneof"`
}

type RunInput_Control struct {
	Control *ControlSignal `protobuf:"bytes,3,opt,name=control,proto3,oneof"`
}

func (*RunInput_Start) isRunInput_Input() {}

func (*RunInput_Merge) isRunInput_Input() {}

func (*RunInput_Control) isRunInput_Input() {}

type RunStart struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DispatchId string                 `protobuf:"bytes,1,opt,name=dispatch_id,json=dispatchId,proto3" json:"dispatch_id,omitempty"`
	SessionKey string                 `protobuf:"bytes,2,opt,name=session_key,json=sessionKey,proto3" json:"session_key,omitempty"`
	AgentId    string                 `protobuf:"bytes,3,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	InputText  string                 `protobuf:"bytes,4,opt,name=input_text,json=inputText,proto3" json:"input_text,omitempty"`
	// JSON-encoded response context carried from ingress to effect delivery.
	ResponseContextJson string `protobuf:"bytes,5,opt,name=response_context_json,json=responseContextJson,proto3" json:"response_context_json,omitempty"`
	Attempt             int32  `protobuf:"varint,6,opt,name=attempt,proto3" json:"attempt,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *RunStart) Reset() {
	*x = RunStart{}
	mi := &file_runner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunStart) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunStart) ProtoMessage() {}

func (x *RunStart) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunStart.ProtoReflect.Descriptor instead.
func (*RunStart) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{1}
}

func (x *RunStart) GetDispatchId() string {
	if x != nil {
		return x.DispatchId
	}
	return ""
}

func (x *RunStart) GetSessionKey() string {
	if x != nil {
		return x.SessionKey
	}
	return ""
}

func (x *RunStart) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *RunStart) GetInputText() string {
	if x != nil {
		return x.InputText
	}
	return ""
}

func (x *RunStart) GetResponseContextJson() string {
	if x != nil {
		return x.ResponseContextJson
	}
	return ""
}

func (x *RunStart) GetAttempt() int32 {
	if x != nil {
		return x.Attempt
	}
	return 0
}

// MergeInput carries coalesced follow-up text absorbed into the live run.
type MergeInput struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Text                string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	ResponseContextJson string                 `protobuf:"bytes,2,opt,name=response_context_json,json=responseContextJson,proto3" json:"response_context_json,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *MergeInput) Reset() {
	*x = MergeInput{}
	mi := &file_runner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeInput) ProtoMessage() {}

func (x *MergeInput) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeInput.ProtoReflect.Descriptor instead.
func (*MergeInput) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{2}
}

func (x *MergeInput) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *MergeInput) GetResponseContextJson() string {
	if x != nil {
		return x.ResponseContextJson
	}
	return ""
}

// ControlSignal asks the service to wind the run down at the next safe
// point. kind is "pause" or "cancel".
type ControlSignal struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ControlSignal) Reset() {
	*x = ControlSignal{}
	mi := &file_runner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ControlSignal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ControlSignal) ProtoMessage() {}

func (x *ControlSignal) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ControlSignal.ProtoReflect.Descriptor instead.
func (*ControlSignal) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{3}
}

func (x *ControlSignal) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

// One streamed chunk of a run.
type RunResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*RunResponse_Output
	//	*RunResponse_Effect
	//	*RunResponse_Checkpoint
	//	*RunResponse_Done
	//	*RunResponse_Error
	Content       isRunResponse_Content `protobuf_oneof:"content"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunResponse) Reset() {
	*x = RunResponse{}
	mi := &file_runner_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunResponse) ProtoMessage() {}

func (x *RunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunResponse.ProtoReflect.Descriptor instead.
func (*RunResponse) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{4}
}

func (x *RunResponse) GetContent() isRunResponse_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *RunResponse) GetOutput() *OutputDelta {
	if x != nil {
		if x, ok := x.Content.(*RunResponse_Output); ok {
			return x.Output
		}
	}
	return nil
}

func (x *RunResponse) GetEffect() *Effect {
	if x != nil {
		if x, ok := x.Content.(*RunResponse_Effect); ok {
			return x.Effect
		}
	}
	return nil
}

func (x *RunResponse) GetCheckpoint() *Checkpoint {
	if x != nil {
		if x, ok := x.Content.(*RunResponse_Checkpoint); ok {
			return x.Checkpoint
		}
	}
	return nil
}

func (x *RunResponse) GetDone() *RunDone {
	if x != nil {
		if x, ok := x.Content.(*RunResponse_Done); ok {
			return x.Done
		}
	}
	return nil
}

func (x *RunResponse) GetError() *RunError {
	if x != nil {
		if x, ok := x.Content.(*RunResponse_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isRunResponse_Content interface {
	isRunResponse_Content()
}

type RunResponse_Output struct {
	Output *OutputDelta `protobuf:"bytes,1,opt,name=output,proto3,oneof"`
}

type RunResponse_Effect struct {
	Effect *Effect `protobuf:"bytes,2,opt,name=effect,proto3,oneof"`
}

type RunResponse_Checkpoint struct {
	Checkpoint *Checkpoint `protobuf:"bytes,3,opt,name=checkpoint,proto3,oneof"`
}

type RunResponse_Done struct {
	Done *RunDone `protobuf:"bytes,4,opt,name=done,proto3,oneof"`
}

type RunResponse_Error struct {
	Error *RunError `protobuf:"bytes,5,opt,name=error,proto3,oneof"`
}

func (*RunResponse_Output) isRunResponse_Content() {}

func (*RunResponse_Effect) isRunResponse_Content() {}

func (*RunResponse_Checkpoint) isRunResponse_Content() {}

func (*RunResponse_Done) isRunResponse_Content() {}

func (*RunResponse_Error) isRunResponse_Content() {}

type OutputDelta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OutputDelta) Reset() {
	*x = OutputDelta{}
	mi := &file_runner_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutputDelta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutputDelta) ProtoMessage() {}

func (x *OutputDelta) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutputDelta.ProtoReflect.Descriptor instead.
func (*OutputDelta) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{5}
}

func (x *OutputDelta) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

// Effect is a side-effect request the orchestrator persists to the outbox
// in the dispatch's completion transaction.
type Effect struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Channel   string                 `protobuf:"bytes,1,opt,name=channel,proto3" json:"channel,omitempty"`
	EffectKey string                 `protobuf:"bytes,2,opt,name=effect_key,json=effectKey,proto3" json:"effect_key,omitempty"`
	// JSON-encoded provider payload.
	PayloadJson   string `protobuf:"bytes,3,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Effect) Reset() {
	*x = Effect{}
	mi := &file_runner_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Effect) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Effect) ProtoMessage() {}

func (x *Effect) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Effect.ProtoReflect.Descriptor instead.
func (*Effect) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{6}
}

func (x *Effect) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *Effect) GetEffectKey() string {
	if x != nil {
		return x.EffectKey
	}
	return ""
}

func (x *Effect) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

// Checkpoint marks a safe point: the orchestrator may merge queued
// follow-ups into the run or honor a pause/cancel request here.
type Checkpoint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Checkpoint) Reset() {
	*x = Checkpoint{}
	mi := &file_runner_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Checkpoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Checkpoint) ProtoMessage() {}

func (x *Checkpoint) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Checkpoint.ProtoReflect.Descriptor instead.
func (*Checkpoint) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{7}
}

func (x *Checkpoint) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type RunDone struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputText    string                 `protobuf:"bytes,1,opt,name=output_text,json=outputText,proto3" json:"output_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunDone) Reset() {
	*x = RunDone{}
	mi := &file_runner_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDone) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDone) ProtoMessage() {}

func (x *RunDone) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDone.ProtoReflect.Descriptor instead.
func (*RunDone) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{8}
}

func (x *RunDone) GetOutputText() string {
	if x != nil {
		return x.OutputText
	}
	return ""
}

type RunError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Retryable     bool                   `protobuf:"varint,3,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunError) Reset() {
	*x = RunError{}
	mi := &file_runner_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunError) ProtoMessage() {}

func (x *RunError) ProtoReflect() protoreflect.Message {
	mi := &file_runner_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunError.ProtoReflect.Descriptor instead.
func (*RunError) Descriptor() ([]byte, []int) {
	return file_runner_proto_rawDescGZIP(), []int{9}
}

func (x *RunError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *RunError) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *RunError) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

var File_runner_proto protoreflect.FileDescriptor

const file_runner_proto_rawDesc = "" +
	"\n" +
	"\frunner.proto\x12\trunner.v1\"\xa5\x01\n" +
	"\bRunInput\x12+\n" +
	"\x05start\x18\x01 \x01(\v2\x13.runner.v1.RunStartH\x00R\x05start\x12-\n" +
	"\x05merge\x18\x02 \x01(\v2\x15.runner.v1.MergeInputH\x00R\x05merge\x124\n" +
	"\acontrol\x18\x03 \x01(\v2\x18.runner.v1.ControlSignalH\x00R\acontrolB\a\n" +
	"\x05input\"\xd4\x01\n" +
	"\bRunStart\x12\x1f\n" +
	"\vdispatch_id\x18\x01 \x01(\tR\n" +
	"dispatchId\x12\x1f\n" +
	"\vsession_key\x18\x02 \x01(\tR\n" +
	"sessionKey\x12\x19\n" +
	"\bagent_id\x18\x03 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"input_text\x18\x04 \x01(\tR\tinputText\x122\n" +
	"\x15response_context_json\x18\x05 \x01(\tR\x13responseContextJson\x12\x18\n" +
	"\aattempt\x18\x06 \x01(\x05R\aattempt\"T\n" +
	"\n" +
	"MergeInput\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x122\n" +
	"\x15response_context_json\x18\x02 \x01(\tR\x13responseContextJson\"#\n" +
	"\rControlSignal\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\"\x87\x02\n" +
	"\vRunResponse\x120\n" +
	"\x06output\x18\x01 \x01(\v2\x16.runner.v1.OutputDeltaH\x00R\x06output\x12+\n" +
	"\x06effect\x18\x02 \x01(\v2\x11.runner.v1.EffectH\x00R\x06effect\x127\n" +
	"\n" +
	"checkpoint\x18\x03 \x01(\v2\x15.runner.v1.CheckpointH\x00R\n" +
	"checkpoint\x12(\n" +
	"\x04done\x18\x04 \x01(\v2\x12.runner.v1.RunDoneH\x00R\x04done\x12+\n" +
	"\x05error\x18\x05 \x01(\v2\x13.runner.v1.RunErrorH\x00R\x05errorB\t\n" +
	"\acontent\"!\n" +
	"\vOutputDelta\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"d\n" +
	"\x06Effect\x12\x18\n" +
	"\achannel\x18\x01 \x01(\tR\achannel\x12\x1d\n" +
	"\n" +
	"effect_key\x18\x02 \x01(\tR\teffectKey\x12!\n" +
	"\fpayload_json\x18\x03 \x01(\tR\vpayloadJson\" \n" +
	"\n" +
	"Checkpoint\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\"*\n" +
	"\aRunDone\x12\x1f\n" +
	"\voutput_text\x18\x01 \x01(\tR\n" +
	"outputText\"V\n" +
	"\bRunError\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x1c\n" +
	"\tretryable\x18\x03 \x01(\bR\tretryable2E\n" +
	"\vAgentRunner\x126\n" +
	"\x03Run\x12\x13.runner.v1.RunInput\x1a\x16.runner.v1.RunResponse(\x010\x01B&Z$github.com/hooklinehq/hookline/protob\x06proto3"

var (
	file_runner_proto_rawDescOnce sync.Once
	file_runner_proto_rawDescData []byte
)

func file_runner_proto_rawDescGZIP() []byte {
	file_runner_proto_rawDescOnce.Do(func() {
		file_runner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_runner_proto_rawDesc), len(file_runner_proto_rawDesc)))
	})
	return file_runner_proto_rawDescData
}

var file_runner_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_runner_proto_goTypes = []any{
	(*RunInput)(nil),      // 0: runner.v1.RunInput
	(*RunStart)(nil),      // 1: runner.v1.RunStart
	(*MergeInput)(nil),    // 2: runner.v1.MergeInput
	(*ControlSignal)(nil), // 3: runner.v1.ControlSignal
	(*RunResponse)(nil),   // 4: runner.v1.RunResponse
	(*OutputDelta)(nil),   // 5: runner.v1.OutputDelta
	(*Effect)(nil),        // 6: runner.v1.Effect
	(*Checkpoint)(nil),    // 7: runner.v1.Checkpoint
	(*RunDone)(nil),       // 8: runner.v1.RunDone
	(*RunError)(nil),      // 9: runner.v1.RunError
}
var file_runner_proto_depIdxs = []int32{
	1, // 0: runner.v1.RunInput.start:type_name -> runner.v1.RunStart
	2, // 1: runner.v1.RunInput.merge:type_name -> runner.v1.MergeInput
	3, // 2: runner.v1.RunInput.control:type_name -> runner.v1.ControlSignal
	5, // 3: runner.v1.RunResponse.output:type_name -> runner.v1.OutputDelta
	6, // 4: runner.v1.RunResponse.effect:type_name -> runner.v1.Effect
	7, // 5: runner.v1.RunResponse.checkpoint:type_name -> runner.v1.Checkpoint
	8, // 6: runner.v1.RunResponse.done:type_name -> runner.v1.RunDone
	9, // 7: runner.v1.RunResponse.error:type_name -> runner.v1.RunError
	0, // 8: runner.v1.AgentRunner.Run:input_type -> runner.v1.RunInput
	4, // 9: runner.v1.AgentRunner.Run:output_type -> runner.v1.RunResponse
	9, // [9:10] is the sub-list for method output_type
	8, // [8:9] is the sub-list for method input_type
	8, // [8:8] is the sub-list for extension type_name
	8, // [8:8] is the sub-list for extension extendee
	0, // [0:8] is the sub-list for field type_name
}

func init() { file_runner_proto_init() }
func file_runner_proto_init() {
	if File_runner_proto != nil {
		return
	}
	file_runner_proto_msgTypes[0].OneofWrappers = []any{
		(*RunInput_Start)(nil),
		(*RunInput_Merge)(nil),
		(*RunInput_Control)(nil),
	}
	file_runner_proto_msgTypes[4].OneofWrappers = []any{
		(*RunResponse_Output)(nil),
		(*RunResponse_Effect)(nil),
		(*RunResponse_Checkpoint)(nil),
		(*RunResponse_Done)(nil),
		(*RunResponse_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_runner_proto_rawDesc), len(file_runner_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_runner_proto_goTypes,
		DependencyIndexes: file_runner_proto_depIdxs,
		MessageInfos:      file_runner_proto_msgTypes,
	}.Build()
	File_runner_proto = out.File
	file_runner_proto_goTypes = nil
	file_runner_proto_depIdxs = nil
}
