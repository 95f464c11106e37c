package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the listing service
const ServiceName = "newreleases.v1.NewReleasesService"

const (
	listItemsMethod          = "/" + ServiceName + "/ListItems"
	getExtraMediaInfoMethod  = "/" + ServiceName + "/GetExtraMediaInfo"
	getChannelFeaturesMethod = "/" + ServiceName + "/GetChannelFeatures"
	getCacheKeyMethod        = "/" + ServiceName + "/GetCacheKey"
)

// NewReleasesServiceServer is the server API for the listing service
type NewReleasesServiceServer interface {
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	GetExtraMediaInfo(context.Context, *GetExtraMediaInfoRequest) (*GetExtraMediaInfoResponse, error)
	GetChannelFeatures(context.Context, *GetChannelFeaturesRequest) (*GetChannelFeaturesResponse, error)
	GetCacheKey(context.Context, *GetCacheKeyRequest) (*GetCacheKeyResponse, error)
}

// RegisterNewReleasesServiceServer registers srv on s
func RegisterNewReleasesServiceServer(s grpc.ServiceRegistrar, srv NewReleasesServiceServer) {
	s.RegisterService(&newReleasesServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodDesc
func unaryHandler[Req, Resp any](fullMethod string, call func(NewReleasesServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NewReleasesServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(NewReleasesServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var newReleasesServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NewReleasesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListItems",
			Handler:    unaryHandler(listItemsMethod, NewReleasesServiceServer.ListItems),
		},
		{
			MethodName: "GetExtraMediaInfo",
			Handler:    unaryHandler(getExtraMediaInfoMethod, NewReleasesServiceServer.GetExtraMediaInfo),
		},
		{
			MethodName: "GetChannelFeatures",
			Handler:    unaryHandler(getChannelFeaturesMethod, NewReleasesServiceServer.GetChannelFeatures),
		},
		{
			MethodName: "GetCacheKey",
			Handler:    unaryHandler(getCacheKeyMethod, NewReleasesServiceServer.GetCacheKey),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "newreleases/v1/newreleases.proto",
}

// NewReleasesServiceClient is the client API for the listing service
type NewReleasesServiceClient interface {
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	GetExtraMediaInfo(ctx context.Context, in *GetExtraMediaInfoRequest, opts ...grpc.CallOption) (*GetExtraMediaInfoResponse, error)
	GetChannelFeatures(ctx context.Context, in *GetChannelFeaturesRequest, opts ...grpc.CallOption) (*GetChannelFeaturesResponse, error)
	GetCacheKey(ctx context.Context, in *GetCacheKeyRequest, opts ...grpc.CallOption) (*GetCacheKeyResponse, error)
}

type newReleasesServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNewReleasesServiceClient returns a client that speaks the JSON codec over cc
func NewNewReleasesServiceClient(cc grpc.ClientConnInterface) NewReleasesServiceClient {
	return &newReleasesServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *newReleasesServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c.cc, listItemsMethod, in, opts)
}

func (c *newReleasesServiceClient) GetExtraMediaInfo(ctx context.Context, in *GetExtraMediaInfoRequest, opts ...grpc.CallOption) (*GetExtraMediaInfoResponse, error) {
	return invoke[GetExtraMediaInfoResponse](ctx, c.cc, getExtraMediaInfoMethod, in, opts)
}

func (c *newReleasesServiceClient) GetChannelFeatures(ctx context.Context, in *GetChannelFeaturesRequest, opts ...grpc.CallOption) (*GetChannelFeaturesResponse, error) {
	return invoke[GetChannelFeaturesResponse](ctx, c.cc, getChannelFeaturesMethod, in, opts)
}

func (c *newReleasesServiceClient) GetCacheKey(ctx context.Context, in *GetCacheKeyRequest, opts ...grpc.CallOption) (*GetCacheKeyResponse, error) {
	return invoke[GetCacheKeyResponse](ctx, c.cc, getCacheKeyMethod, in, opts)
}
