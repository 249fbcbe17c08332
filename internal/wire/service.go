package wire

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "wheel.v1.GarageService"

// FullMethod returns the "/service/method" path for method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// GarageServiceServer is implemented by the gRPC server.
type GarageServiceServer interface {
	GetState(context.Context, *GetStateRequest) (*StateResponse, error)
	SetBudget(context.Context, *SetBudgetRequest) (*SetBudgetResponse, error)
	ToggleMustHave(context.Context, *ToggleMustHaveRequest) (*ToggleMustHaveResponse, error)
	GetSwipeDeck(context.Context, *GetSwipeDeckRequest) (*VehicleListResponse, error)
	LikeCar(context.Context, *DecisionRequest) (*DecisionResponse, error)
	NopeCar(context.Context, *DecisionRequest) (*DecisionResponse, error)
	GetCar(context.Context, *GetCarRequest) (*GetCarResponse, error)
	ListCars(context.Context, *ListCarsRequest) (*VehicleListResponse, error)
	ListLiked(context.Context, *ListLikedRequest) (*VehicleListResponse, error)
}

// unary builds the MethodDesc for one request/response method.
func unary[Req, Resp any](name string, call func(GarageServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GarageServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GarageServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var GarageServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GarageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetState", GarageServiceServer.GetState),
		unary("SetBudget", GarageServiceServer.SetBudget),
		unary("ToggleMustHave", GarageServiceServer.ToggleMustHave),
		unary("GetSwipeDeck", GarageServiceServer.GetSwipeDeck),
		unary("LikeCar", GarageServiceServer.LikeCar),
		unary("NopeCar", GarageServiceServer.NopeCar),
		unary("GetCar", GarageServiceServer.GetCar),
		unary("ListCars", GarageServiceServer.ListCars),
		unary("ListLiked", GarageServiceServer.ListLiked),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wheel/v1/garage",
}

func RegisterGarageServiceServer(s grpc.ServiceRegistrar, srv GarageServiceServer) {
	s.RegisterService(&GarageServiceDesc, srv)
}

// GarageServiceClient is the client stub. Every call is sent with the
// JSON content subtype.
type GarageServiceClient interface {
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*StateResponse, error)
	SetBudget(ctx context.Context, in *SetBudgetRequest, opts ...grpc.CallOption) (*SetBudgetResponse, error)
	ToggleMustHave(ctx context.Context, in *ToggleMustHaveRequest, opts ...grpc.CallOption) (*ToggleMustHaveResponse, error)
	GetSwipeDeck(ctx context.Context, in *GetSwipeDeckRequest, opts ...grpc.CallOption) (*VehicleListResponse, error)
	LikeCar(ctx context.Context, in *DecisionRequest, opts ...grpc.CallOption) (*DecisionResponse, error)
	NopeCar(ctx context.Context, in *DecisionRequest, opts ...grpc.CallOption) (*DecisionResponse, error)
	GetCar(ctx context.Context, in *GetCarRequest, opts ...grpc.CallOption) (*GetCarResponse, error)
	ListCars(ctx context.Context, in *ListCarsRequest, opts ...grpc.CallOption) (*VehicleListResponse, error)
	ListLiked(ctx context.Context, in *ListLikedRequest, opts ...grpc.CallOption) (*VehicleListResponse, error)
}

type garageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGarageServiceClient(cc grpc.ClientConnInterface) GarageServiceClient {
	return &garageServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *garageServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[StateResponse](ctx, c.cc, "GetState", in, opts)
}

func (c *garageServiceClient) SetBudget(ctx context.Context, in *SetBudgetRequest, opts ...grpc.CallOption) (*SetBudgetResponse, error) {
	return invoke[SetBudgetResponse](ctx, c.cc, "SetBudget", in, opts)
}

func (c *garageServiceClient) ToggleMustHave(ctx context.Context, in *ToggleMustHaveRequest, opts ...grpc.CallOption) (*ToggleMustHaveResponse, error) {
	return invoke[ToggleMustHaveResponse](ctx, c.cc, "ToggleMustHave", in, opts)
}

func (c *garageServiceClient) GetSwipeDeck(ctx context.Context, in *GetSwipeDeckRequest, opts ...grpc.CallOption) (*VehicleListResponse, error) {
	return invoke[VehicleListResponse](ctx, c.cc, "GetSwipeDeck", in, opts)
}

func (c *garageServiceClient) LikeCar(ctx context.Context, in *DecisionRequest, opts ...grpc.CallOption) (*DecisionResponse, error) {
	return invoke[DecisionResponse](ctx, c.cc, "LikeCar", in, opts)
}

func (c *garageServiceClient) NopeCar(ctx context.Context, in *DecisionRequest, opts ...grpc.CallOption) (*DecisionResponse, error) {
	return invoke[DecisionResponse](ctx, c.cc, "NopeCar", in, opts)
}

func (c *garageServiceClient) GetCar(ctx context.Context, in *GetCarRequest, opts ...grpc.CallOption) (*GetCarResponse, error) {
	return invoke[GetCarResponse](ctx, c.cc, "GetCar", in, opts)
}

func (c *garageServiceClient) ListCars(ctx context.Context, in *ListCarsRequest, opts ...grpc.CallOption) (*VehicleListResponse, error) {
	return invoke[VehicleListResponse](ctx, c.cc, "ListCars", in, opts)
}

func (c *garageServiceClient) ListLiked(ctx context.Context, in *ListLikedRequest, opts ...grpc.CallOption) (*VehicleListResponse, error) {
	return invoke[VehicleListResponse](ctx, c.cc, "ListLiked", in, opts)
}
