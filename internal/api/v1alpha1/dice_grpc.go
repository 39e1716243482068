package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DiceServiceName is the fully qualified service name
const DiceServiceName = "paranormal.api.v1alpha1.DiceService"

// Full method names
const (
	DiceService_RollDice_FullMethodName         = "/" + DiceServiceName + "/RollDice"
	DiceService_RollCustom_FullMethodName       = "/" + DiceServiceName + "/RollCustom"
	DiceService_RollAttribute_FullMethodName    = "/" + DiceServiceName + "/RollAttribute"
	DiceService_RollSkill_FullMethodName        = "/" + DiceServiceName + "/RollSkill"
	DiceService_RollAttack_FullMethodName       = "/" + DiceServiceName + "/RollAttack"
	DiceService_GetRollSession_FullMethodName   = "/" + DiceServiceName + "/GetRollSession"
	DiceService_ClearRollSession_FullMethodName = "/" + DiceServiceName + "/ClearRollSession"
)

// DiceServiceServer is the server API for dice rolls and roll sessions
type DiceServiceServer interface {
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)
	RollCustom(context.Context, *RollCustomRequest) (*RollCustomResponse, error)
	RollAttribute(context.Context, *RollAttributeRequest) (*RollAttributeResponse, error)
	RollSkill(context.Context, *RollSkillRequest) (*RollSkillResponse, error)
	RollAttack(context.Context, *RollAttackRequest) (*RollAttackResponse, error)
	GetRollSession(context.Context, *GetRollSessionRequest) (*GetRollSessionResponse, error)
	ClearRollSession(context.Context, *ClearRollSessionRequest) (*ClearRollSessionResponse, error)
}

// UnimplementedDiceServiceServer can be embedded to stay forward compatible
type UnimplementedDiceServiceServer struct{}

// RollDice returns Unimplemented
func (UnimplementedDiceServiceServer) RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollDice not implemented")
}

// RollCustom returns Unimplemented
func (UnimplementedDiceServiceServer) RollCustom(context.Context, *RollCustomRequest) (*RollCustomResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollCustom not implemented")
}

// RollAttribute returns Unimplemented
func (UnimplementedDiceServiceServer) RollAttribute(context.Context, *RollAttributeRequest) (*RollAttributeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollAttribute not implemented")
}

// RollSkill returns Unimplemented
func (UnimplementedDiceServiceServer) RollSkill(context.Context, *RollSkillRequest) (*RollSkillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollSkill not implemented")
}

// RollAttack returns Unimplemented
func (UnimplementedDiceServiceServer) RollAttack(context.Context, *RollAttackRequest) (*RollAttackResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollAttack not implemented")
}

// GetRollSession returns Unimplemented
func (UnimplementedDiceServiceServer) GetRollSession(context.Context, *GetRollSessionRequest) (*GetRollSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRollSession not implemented")
}

// ClearRollSession returns Unimplemented
func (UnimplementedDiceServiceServer) ClearRollSession(context.Context, *ClearRollSessionRequest) (*ClearRollSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearRollSession not implemented")
}

// RegisterDiceServiceServer registers srv with a gRPC server
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceService_ServiceDesc, srv)
}

// DiceService_ServiceDesc describes DiceService to grpc.Server
var DiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DiceServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RollDice",
			Handler: unaryHandler(DiceService_RollDice_FullMethodName, func(srv any, ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
				return srv.(DiceServiceServer).RollDice(ctx, req)
			}),
		},
		{
			MethodName: "RollCustom",
			Handler: unaryHandler(DiceService_RollCustom_FullMethodName, func(srv any, ctx context.Context, req *RollCustomRequest) (*RollCustomResponse, error) {
				return srv.(DiceServiceServer).RollCustom(ctx, req)
			}),
		},
		{
			MethodName: "RollAttribute",
			Handler: unaryHandler(DiceService_RollAttribute_FullMethodName, func(srv any, ctx context.Context, req *RollAttributeRequest) (*RollAttributeResponse, error) {
				return srv.(DiceServiceServer).RollAttribute(ctx, req)
			}),
		},
		{
			MethodName: "RollSkill",
			Handler: unaryHandler(DiceService_RollSkill_FullMethodName, func(srv any, ctx context.Context, req *RollSkillRequest) (*RollSkillResponse, error) {
				return srv.(DiceServiceServer).RollSkill(ctx, req)
			}),
		},
		{
			MethodName: "RollAttack",
			Handler: unaryHandler(DiceService_RollAttack_FullMethodName, func(srv any, ctx context.Context, req *RollAttackRequest) (*RollAttackResponse, error) {
				return srv.(DiceServiceServer).RollAttack(ctx, req)
			}),
		},
		{
			MethodName: "GetRollSession",
			Handler: unaryHandler(DiceService_GetRollSession_FullMethodName, func(srv any, ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error) {
				return srv.(DiceServiceServer).GetRollSession(ctx, req)
			}),
		},
		{
			MethodName: "ClearRollSession",
			Handler: unaryHandler(DiceService_ClearRollSession_FullMethodName, func(srv any, ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error) {
				return srv.(DiceServiceServer).ClearRollSession(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paranormal/api/v1alpha1/dice.go",
}

// DiceServiceClient is the client API for dice rolls and roll sessions
type DiceServiceClient interface {
	RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error)
	RollCustom(ctx context.Context, in *RollCustomRequest, opts ...grpc.CallOption) (*RollCustomResponse, error)
	RollAttribute(ctx context.Context, in *RollAttributeRequest, opts ...grpc.CallOption) (*RollAttributeResponse, error)
	RollSkill(ctx context.Context, in *RollSkillRequest, opts ...grpc.CallOption) (*RollSkillResponse, error)
	RollAttack(ctx context.Context, in *RollAttackRequest, opts ...grpc.CallOption) (*RollAttackResponse, error)
	GetRollSession(ctx context.Context, in *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error)
	ClearRollSession(ctx context.Context, in *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error)
}

type diceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient creates a client that speaks the JSON codec
func NewDiceServiceClient(cc grpc.ClientConnInterface) DiceServiceClient {
	return &diceServiceClient{cc: cc}
}

func (c *diceServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	return invoke[RollDiceResponse](ctx, c.cc, DiceService_RollDice_FullMethodName, in, opts)
}

func (c *diceServiceClient) RollCustom(ctx context.Context, in *RollCustomRequest, opts ...grpc.CallOption) (*RollCustomResponse, error) {
	return invoke[RollCustomResponse](ctx, c.cc, DiceService_RollCustom_FullMethodName, in, opts)
}

func (c *diceServiceClient) RollAttribute(ctx context.Context, in *RollAttributeRequest, opts ...grpc.CallOption) (*RollAttributeResponse, error) {
	return invoke[RollAttributeResponse](ctx, c.cc, DiceService_RollAttribute_FullMethodName, in, opts)
}

func (c *diceServiceClient) RollSkill(ctx context.Context, in *RollSkillRequest, opts ...grpc.CallOption) (*RollSkillResponse, error) {
	return invoke[RollSkillResponse](ctx, c.cc, DiceService_RollSkill_FullMethodName, in, opts)
}

func (c *diceServiceClient) RollAttack(ctx context.Context, in *RollAttackRequest, opts ...grpc.CallOption) (*RollAttackResponse, error) {
	return invoke[RollAttackResponse](ctx, c.cc, DiceService_RollAttack_FullMethodName, in, opts)
}

func (c *diceServiceClient) GetRollSession(ctx context.Context, in *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error) {
	return invoke[GetRollSessionResponse](ctx, c.cc, DiceService_GetRollSession_FullMethodName, in, opts)
}

func (c *diceServiceClient) ClearRollSession(ctx context.Context, in *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error) {
	return invoke[ClearRollSessionResponse](ctx, c.cc, DiceService_ClearRollSession_FullMethodName, in, opts)
}
