package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CharacterServiceName is the fully qualified service name
const CharacterServiceName = "paranormal.api.v1alpha1.CharacterService"

// Full method names
const (
	CharacterService_CreateCharacter_FullMethodName = "/" + CharacterServiceName + "/CreateCharacter"
	CharacterService_GetCharacter_FullMethodName    = "/" + CharacterServiceName + "/GetCharacter"
	CharacterService_ListCharacters_FullMethodName  = "/" + CharacterServiceName + "/ListCharacters"
	CharacterService_DeleteCharacter_FullMethodName = "/" + CharacterServiceName + "/DeleteCharacter"
	CharacterService_UpdateCharacter_FullMethodName = "/" + CharacterServiceName + "/UpdateCharacter"
	CharacterService_SetAttribute_FullMethodName    = "/" + CharacterServiceName + "/SetAttribute"
	CharacterService_ChangeArchetype_FullMethodName = "/" + CharacterServiceName + "/ChangeArchetype"
	CharacterService_AdjustPool_FullMethodName      = "/" + CharacterServiceName + "/AdjustPool"
	CharacterService_TrainSkill_FullMethodName      = "/" + CharacterServiceName + "/TrainSkill"
	CharacterService_AddItem_FullMethodName         = "/" + CharacterServiceName + "/AddItem"
	CharacterService_IncrementItem_FullMethodName   = "/" + CharacterServiceName + "/IncrementItem"
	CharacterService_ModifyItem_FullMethodName      = "/" + CharacterServiceName + "/ModifyItem"
	CharacterService_RemoveItem_FullMethodName      = "/" + CharacterServiceName + "/RemoveItem"
)

// CharacterServiceServer is the server API for character sheets
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	UpdateCharacter(context.Context, *UpdateCharacterRequest) (*UpdateCharacterResponse, error)
	SetAttribute(context.Context, *SetAttributeRequest) (*SetAttributeResponse, error)
	ChangeArchetype(context.Context, *ChangeArchetypeRequest) (*ChangeArchetypeResponse, error)
	AdjustPool(context.Context, *AdjustPoolRequest) (*AdjustPoolResponse, error)
	TrainSkill(context.Context, *TrainSkillRequest) (*TrainSkillResponse, error)
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	IncrementItem(context.Context, *IncrementItemRequest) (*IncrementItemResponse, error)
	ModifyItem(context.Context, *ModifyItemRequest) (*ModifyItemResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error)
}

// UnimplementedCharacterServiceServer can be embedded to stay forward compatible
type UnimplementedCharacterServiceServer struct{}

// CreateCharacter returns Unimplemented
func (UnimplementedCharacterServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCharacter not implemented")
}

// GetCharacter returns Unimplemented
func (UnimplementedCharacterServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

// ListCharacters returns Unimplemented
func (UnimplementedCharacterServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}

// DeleteCharacter returns Unimplemented
func (UnimplementedCharacterServiceServer) DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCharacter not implemented")
}

// UpdateCharacter returns Unimplemented
func (UnimplementedCharacterServiceServer) UpdateCharacter(context.Context, *UpdateCharacterRequest) (*UpdateCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCharacter not implemented")
}

// SetAttribute returns Unimplemented
func (UnimplementedCharacterServiceServer) SetAttribute(context.Context, *SetAttributeRequest) (*SetAttributeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetAttribute not implemented")
}

// ChangeArchetype returns Unimplemented
func (UnimplementedCharacterServiceServer) ChangeArchetype(context.Context, *ChangeArchetypeRequest) (*ChangeArchetypeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeArchetype not implemented")
}

// AdjustPool returns Unimplemented
func (UnimplementedCharacterServiceServer) AdjustPool(context.Context, *AdjustPoolRequest) (*AdjustPoolResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustPool not implemented")
}

// TrainSkill returns Unimplemented
func (UnimplementedCharacterServiceServer) TrainSkill(context.Context, *TrainSkillRequest) (*TrainSkillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TrainSkill not implemented")
}

// AddItem returns Unimplemented
func (UnimplementedCharacterServiceServer) AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}

// IncrementItem returns Unimplemented
func (UnimplementedCharacterServiceServer) IncrementItem(context.Context, *IncrementItemRequest) (*IncrementItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IncrementItem not implemented")
}

// ModifyItem returns Unimplemented
func (UnimplementedCharacterServiceServer) ModifyItem(context.Context, *ModifyItemRequest) (*ModifyItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ModifyItem not implemented")
}

// RemoveItem returns Unimplemented
func (UnimplementedCharacterServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

// RegisterCharacterServiceServer registers srv with a gRPC server
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterService_ServiceDesc, srv)
}

// CharacterService_ServiceDesc describes CharacterService to grpc.Server
var CharacterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCharacter",
			Handler: unaryHandler(CharacterService_CreateCharacter_FullMethodName, func(srv any, ctx context.Context, req *CreateCharacterRequest) (*CreateCharacterResponse, error) {
				return srv.(CharacterServiceServer).CreateCharacter(ctx, req)
			}),
		},
		{
			MethodName: "GetCharacter",
			Handler: unaryHandler(CharacterService_GetCharacter_FullMethodName, func(srv any, ctx context.Context, req *GetCharacterRequest) (*GetCharacterResponse, error) {
				return srv.(CharacterServiceServer).GetCharacter(ctx, req)
			}),
		},
		{
			MethodName: "ListCharacters",
			Handler: unaryHandler(CharacterService_ListCharacters_FullMethodName, func(srv any, ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error) {
				return srv.(CharacterServiceServer).ListCharacters(ctx, req)
			}),
		},
		{
			MethodName: "DeleteCharacter",
			Handler: unaryHandler(CharacterService_DeleteCharacter_FullMethodName, func(srv any, ctx context.Context, req *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
				return srv.(CharacterServiceServer).DeleteCharacter(ctx, req)
			}),
		},
		{
			MethodName: "UpdateCharacter",
			Handler: unaryHandler(CharacterService_UpdateCharacter_FullMethodName, func(srv any, ctx context.Context, req *UpdateCharacterRequest) (*UpdateCharacterResponse, error) {
				return srv.(CharacterServiceServer).UpdateCharacter(ctx, req)
			}),
		},
		{
			MethodName: "SetAttribute",
			Handler: unaryHandler(CharacterService_SetAttribute_FullMethodName, func(srv any, ctx context.Context, req *SetAttributeRequest) (*SetAttributeResponse, error) {
				return srv.(CharacterServiceServer).SetAttribute(ctx, req)
			}),
		},
		{
			MethodName: "ChangeArchetype",
			Handler: unaryHandler(CharacterService_ChangeArchetype_FullMethodName, func(srv any, ctx context.Context, req *ChangeArchetypeRequest) (*ChangeArchetypeResponse, error) {
				return srv.(CharacterServiceServer).ChangeArchetype(ctx, req)
			}),
		},
		{
			MethodName: "AdjustPool",
			Handler: unaryHandler(CharacterService_AdjustPool_FullMethodName, func(srv any, ctx context.Context, req *AdjustPoolRequest) (*AdjustPoolResponse, error) {
				return srv.(CharacterServiceServer).AdjustPool(ctx, req)
			}),
		},
		{
			MethodName: "TrainSkill",
			Handler: unaryHandler(CharacterService_TrainSkill_FullMethodName, func(srv any, ctx context.Context, req *TrainSkillRequest) (*TrainSkillResponse, error) {
				return srv.(CharacterServiceServer).TrainSkill(ctx, req)
			}),
		},
		{
			MethodName: "AddItem",
			Handler: unaryHandler(CharacterService_AddItem_FullMethodName, func(srv any, ctx context.Context, req *AddItemRequest) (*AddItemResponse, error) {
				return srv.(CharacterServiceServer).AddItem(ctx, req)
			}),
		},
		{
			MethodName: "IncrementItem",
			Handler: unaryHandler(CharacterService_IncrementItem_FullMethodName, func(srv any, ctx context.Context, req *IncrementItemRequest) (*IncrementItemResponse, error) {
				return srv.(CharacterServiceServer).IncrementItem(ctx, req)
			}),
		},
		{
			MethodName: "ModifyItem",
			Handler: unaryHandler(CharacterService_ModifyItem_FullMethodName, func(srv any, ctx context.Context, req *ModifyItemRequest) (*ModifyItemResponse, error) {
				return srv.(CharacterServiceServer).ModifyItem(ctx, req)
			}),
		},
		{
			MethodName: "RemoveItem",
			Handler: unaryHandler(CharacterService_RemoveItem_FullMethodName, func(srv any, ctx context.Context, req *RemoveItemRequest) (*RemoveItemResponse, error) {
				return srv.(CharacterServiceServer).RemoveItem(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paranormal/api/v1alpha1/character.go",
}

// CharacterServiceClient is the client API for character sheets
type CharacterServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	UpdateCharacter(ctx context.Context, in *UpdateCharacterRequest, opts ...grpc.CallOption) (*UpdateCharacterResponse, error)
	SetAttribute(ctx context.Context, in *SetAttributeRequest, opts ...grpc.CallOption) (*SetAttributeResponse, error)
	ChangeArchetype(ctx context.Context, in *ChangeArchetypeRequest, opts ...grpc.CallOption) (*ChangeArchetypeResponse, error)
	AdjustPool(ctx context.Context, in *AdjustPoolRequest, opts ...grpc.CallOption) (*AdjustPoolResponse, error)
	TrainSkill(ctx context.Context, in *TrainSkillRequest, opts ...grpc.CallOption) (*TrainSkillResponse, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error)
	IncrementItem(ctx context.Context, in *IncrementItemRequest, opts ...grpc.CallOption) (*IncrementItemResponse, error)
	ModifyItem(ctx context.Context, in *ModifyItemRequest, opts ...grpc.CallOption) (*ModifyItemResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient creates a client that speaks the JSON codec
func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc: cc}
}

func (c *characterServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	return invoke[CreateCharacterResponse](ctx, c.cc, CharacterService_CreateCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	return invoke[GetCharacterResponse](ctx, c.cc, CharacterService_GetCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, CharacterService_ListCharacters_FullMethodName, in, opts)
}

func (c *characterServiceClient) DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, CharacterService_DeleteCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) UpdateCharacter(ctx context.Context, in *UpdateCharacterRequest, opts ...grpc.CallOption) (*UpdateCharacterResponse, error) {
	return invoke[UpdateCharacterResponse](ctx, c.cc, CharacterService_UpdateCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) SetAttribute(ctx context.Context, in *SetAttributeRequest, opts ...grpc.CallOption) (*SetAttributeResponse, error) {
	return invoke[SetAttributeResponse](ctx, c.cc, CharacterService_SetAttribute_FullMethodName, in, opts)
}

func (c *characterServiceClient) ChangeArchetype(ctx context.Context, in *ChangeArchetypeRequest, opts ...grpc.CallOption) (*ChangeArchetypeResponse, error) {
	return invoke[ChangeArchetypeResponse](ctx, c.cc, CharacterService_ChangeArchetype_FullMethodName, in, opts)
}

func (c *characterServiceClient) AdjustPool(ctx context.Context, in *AdjustPoolRequest, opts ...grpc.CallOption) (*AdjustPoolResponse, error) {
	return invoke[AdjustPoolResponse](ctx, c.cc, CharacterService_AdjustPool_FullMethodName, in, opts)
}

func (c *characterServiceClient) TrainSkill(ctx context.Context, in *TrainSkillRequest, opts ...grpc.CallOption) (*TrainSkillResponse, error) {
	return invoke[TrainSkillResponse](ctx, c.cc, CharacterService_TrainSkill_FullMethodName, in, opts)
}

func (c *characterServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	return invoke[AddItemResponse](ctx, c.cc, CharacterService_AddItem_FullMethodName, in, opts)
}

func (c *characterServiceClient) IncrementItem(ctx context.Context, in *IncrementItemRequest, opts ...grpc.CallOption) (*IncrementItemResponse, error) {
	return invoke[IncrementItemResponse](ctx, c.cc, CharacterService_IncrementItem_FullMethodName, in, opts)
}

func (c *characterServiceClient) ModifyItem(ctx context.Context, in *ModifyItemRequest, opts ...grpc.CallOption) (*ModifyItemResponse, error) {
	return invoke[ModifyItemResponse](ctx, c.cc, CharacterService_ModifyItem_FullMethodName, in, opts)
}

func (c *characterServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error) {
	return invoke[RemoveItemResponse](ctx, c.cc, CharacterService_RemoveItem_FullMethodName, in, opts)
}
