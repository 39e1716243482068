// Package v1alpha1 holds the wire messages, service descriptors and clients
// of the paranormal gRPC API. Messages are plain structs carried by a JSON
// codec registered under the "json" content subtype.
package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype every service in this package uses
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals messages as JSON
type Codec struct{}

// Marshal implements encoding.Codec
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name implements encoding.Codec
func (Codec) Name() string {
	return CodecName
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(srv any, ctx context.Context, req *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	fullMethod string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
