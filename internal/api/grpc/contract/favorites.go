package contract

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	FavoritesServiceName = "favcities.Favorites"

	FavoritesAddFullMethodName    = "/favcities.Favorites/AddFavoriteCity"
	FavoritesRemoveFullMethodName = "/favcities.Favorites/RemoveFavoriteCity"
	FavoritesListFullMethodName   = "/favcities.Favorites/ListFavoriteCities"
)

// FavoritesServer is the server API of the Favorites service.
type FavoritesServer interface {
	AddFavoriteCity(context.Context, *CityRequest) (*AddFavoriteCityResponse, error)
	RemoveFavoriteCity(context.Context, *CityRequest) (*RemoveFavoriteCityResponse, error)
	ListFavoriteCities(context.Context, *ListFavoriteCitiesRequest) (*ListFavoriteCitiesResponse, error)
}

// UnimplementedFavoritesServer can be embedded to have forward compatible implementations.
type UnimplementedFavoritesServer struct{}

func (UnimplementedFavoritesServer) AddFavoriteCity(context.Context, *CityRequest) (*AddFavoriteCityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddFavoriteCity not implemented")
}

func (UnimplementedFavoritesServer) RemoveFavoriteCity(context.Context, *CityRequest) (*RemoveFavoriteCityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveFavoriteCity not implemented")
}

func (UnimplementedFavoritesServer) ListFavoriteCities(context.Context, *ListFavoriteCitiesRequest) (*ListFavoriteCitiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFavoriteCities not implemented")
}

func RegisterFavoritesServer(s grpc.ServiceRegistrar, srv FavoritesServer) {
	s.RegisterService(&FavoritesServiceDesc, srv)
}

func favoritesAddHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FavoritesServer).AddFavoriteCity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FavoritesAddFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FavoritesServer).AddFavoriteCity(ctx, req.(*CityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func favoritesRemoveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FavoritesServer).RemoveFavoriteCity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FavoritesRemoveFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FavoritesServer).RemoveFavoriteCity(ctx, req.(*CityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func favoritesListHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListFavoriteCitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FavoritesServer).ListFavoriteCities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FavoritesListFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FavoritesServer).ListFavoriteCities(ctx, req.(*ListFavoriteCitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FavoritesServiceDesc is the grpc.ServiceDesc for the Favorites service.
var FavoritesServiceDesc = grpc.ServiceDesc{
	ServiceName: FavoritesServiceName,
	HandlerType: (*FavoritesServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddFavoriteCity", Handler: favoritesAddHandler},
		{MethodName: "RemoveFavoriteCity", Handler: favoritesRemoveHandler},
		{MethodName: "ListFavoriteCities", Handler: favoritesListHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "favcities/favorites",
}

// FavoritesClient is the client API of the Favorites service.
type FavoritesClient interface {
	AddFavoriteCity(ctx context.Context, in *CityRequest, opts ...grpc.CallOption) (*AddFavoriteCityResponse, error)
	RemoveFavoriteCity(ctx context.Context, in *CityRequest, opts ...grpc.CallOption) (*RemoveFavoriteCityResponse, error)
	ListFavoriteCities(ctx context.Context, in *ListFavoriteCitiesRequest, opts ...grpc.CallOption) (*ListFavoriteCitiesResponse, error)
}

type favoritesClient struct {
	cc grpc.ClientConnInterface
}

func NewFavoritesClient(cc grpc.ClientConnInterface) FavoritesClient {
	return &favoritesClient{cc: cc}
}

func (c *favoritesClient) AddFavoriteCity(ctx context.Context, in *CityRequest, opts ...grpc.CallOption) (*AddFavoriteCityResponse, error) {
	out := new(AddFavoriteCityResponse)
	if err := c.cc.Invoke(ctx, FavoritesAddFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *favoritesClient) RemoveFavoriteCity(ctx context.Context, in *CityRequest, opts ...grpc.CallOption) (*RemoveFavoriteCityResponse, error) {
	out := new(RemoveFavoriteCityResponse)
	if err := c.cc.Invoke(ctx, FavoritesRemoveFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *favoritesClient) ListFavoriteCities(ctx context.Context, in *ListFavoriteCitiesRequest, opts ...grpc.CallOption) (*ListFavoriteCitiesResponse, error) {
	out := new(ListFavoriteCitiesResponse)
	if err := c.cc.Invoke(ctx, FavoritesListFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
