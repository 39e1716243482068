package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CatalogServiceName is the fully qualified service name
const CatalogServiceName = "paranormal.api.v1alpha1.CatalogService"

// Full method names
const (
	CatalogService_ListEntries_FullMethodName = "/" + CatalogServiceName + "/ListEntries"
	CatalogService_GetEntry_FullMethodName    = "/" + CatalogServiceName + "/GetEntry"
	CatalogService_PutEntry_FullMethodName    = "/" + CatalogServiceName + "/PutEntry"
	CatalogService_DeleteEntry_FullMethodName = "/" + CatalogServiceName + "/DeleteEntry"
	CatalogService_SeedCatalog_FullMethodName = "/" + CatalogServiceName + "/SeedCatalog"
)

// CatalogServiceServer is the server API for the reference tables
type CatalogServiceServer interface {
	ListEntries(context.Context, *ListEntriesRequest) (*ListEntriesResponse, error)
	GetEntry(context.Context, *GetEntryRequest) (*GetEntryResponse, error)
	PutEntry(context.Context, *PutEntryRequest) (*PutEntryResponse, error)
	DeleteEntry(context.Context, *DeleteEntryRequest) (*DeleteEntryResponse, error)
	SeedCatalog(context.Context, *SeedCatalogRequest) (*SeedCatalogResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to stay forward compatible
type UnimplementedCatalogServiceServer struct{}

// ListEntries returns Unimplemented
func (UnimplementedCatalogServiceServer) ListEntries(context.Context, *ListEntriesRequest) (*ListEntriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEntries not implemented")
}

// GetEntry returns Unimplemented
func (UnimplementedCatalogServiceServer) GetEntry(context.Context, *GetEntryRequest) (*GetEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEntry not implemented")
}

// PutEntry returns Unimplemented
func (UnimplementedCatalogServiceServer) PutEntry(context.Context, *PutEntryRequest) (*PutEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PutEntry not implemented")
}

// DeleteEntry returns Unimplemented
func (UnimplementedCatalogServiceServer) DeleteEntry(context.Context, *DeleteEntryRequest) (*DeleteEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEntry not implemented")
}

// SeedCatalog returns Unimplemented
func (UnimplementedCatalogServiceServer) SeedCatalog(context.Context, *SeedCatalogRequest) (*SeedCatalogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SeedCatalog not implemented")
}

// RegisterCatalogServiceServer registers srv with a gRPC server
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// CatalogService_ServiceDesc describes CatalogService to grpc.Server
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListEntries",
			Handler: unaryHandler(CatalogService_ListEntries_FullMethodName, func(srv any, ctx context.Context, req *ListEntriesRequest) (*ListEntriesResponse, error) {
				return srv.(CatalogServiceServer).ListEntries(ctx, req)
			}),
		},
		{
			MethodName: "GetEntry",
			Handler: unaryHandler(CatalogService_GetEntry_FullMethodName, func(srv any, ctx context.Context, req *GetEntryRequest) (*GetEntryResponse, error) {
				return srv.(CatalogServiceServer).GetEntry(ctx, req)
			}),
		},
		{
			MethodName: "PutEntry",
			Handler: unaryHandler(CatalogService_PutEntry_FullMethodName, func(srv any, ctx context.Context, req *PutEntryRequest) (*PutEntryResponse, error) {
				return srv.(CatalogServiceServer).PutEntry(ctx, req)
			}),
		},
		{
			MethodName: "DeleteEntry",
			Handler: unaryHandler(CatalogService_DeleteEntry_FullMethodName, func(srv any, ctx context.Context, req *DeleteEntryRequest) (*DeleteEntryResponse, error) {
				return srv.(CatalogServiceServer).DeleteEntry(ctx, req)
			}),
		},
		{
			MethodName: "SeedCatalog",
			Handler: unaryHandler(CatalogService_SeedCatalog_FullMethodName, func(srv any, ctx context.Context, req *SeedCatalogRequest) (*SeedCatalogResponse, error) {
				return srv.(CatalogServiceServer).SeedCatalog(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paranormal/api/v1alpha1/catalog.go",
}

// CatalogServiceClient is the client API for the reference tables
type CatalogServiceClient interface {
	ListEntries(ctx context.Context, in *ListEntriesRequest, opts ...grpc.CallOption) (*ListEntriesResponse, error)
	GetEntry(ctx context.Context, in *GetEntryRequest, opts ...grpc.CallOption) (*GetEntryResponse, error)
	PutEntry(ctx context.Context, in *PutEntryRequest, opts ...grpc.CallOption) (*PutEntryResponse, error)
	DeleteEntry(ctx context.Context, in *DeleteEntryRequest, opts ...grpc.CallOption) (*DeleteEntryResponse, error)
	SeedCatalog(ctx context.Context, in *SeedCatalogRequest, opts ...grpc.CallOption) (*SeedCatalogResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient creates a client that speaks the JSON codec
func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) ListEntries(ctx context.Context, in *ListEntriesRequest, opts ...grpc.CallOption) (*ListEntriesResponse, error) {
	return invoke[ListEntriesResponse](ctx, c.cc, CatalogService_ListEntries_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetEntry(ctx context.Context, in *GetEntryRequest, opts ...grpc.CallOption) (*GetEntryResponse, error) {
	return invoke[GetEntryResponse](ctx, c.cc, CatalogService_GetEntry_FullMethodName, in, opts)
}

func (c *catalogServiceClient) PutEntry(ctx context.Context, in *PutEntryRequest, opts ...grpc.CallOption) (*PutEntryResponse, error) {
	return invoke[PutEntryResponse](ctx, c.cc, CatalogService_PutEntry_FullMethodName, in, opts)
}

func (c *catalogServiceClient) DeleteEntry(ctx context.Context, in *DeleteEntryRequest, opts ...grpc.CallOption) (*DeleteEntryResponse, error) {
	return invoke[DeleteEntryResponse](ctx, c.cc, CatalogService_DeleteEntry_FullMethodName, in, opts)
}

func (c *catalogServiceClient) SeedCatalog(ctx context.Context, in *SeedCatalogRequest, opts ...grpc.CallOption) (*SeedCatalogResponse, error) {
	return invoke[SeedCatalogResponse](ctx, c.cc, CatalogService_SeedCatalog_FullMethodName, in, opts)
}
