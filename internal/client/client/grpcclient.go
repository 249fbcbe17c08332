package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/wire"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      wire.GarageServiceClient
	health      healthpb.HealthClient
}

// withRequestID adds a fresh x-request-id unless ctx already carries one.
func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

// requestInterceptor stamps the request id and bounds the call by the
// configured timeout.
func (s *GRPCClient) requestInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withRequestID(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGarageClient creates a client for endpointURL. No connection is made
// until the first call.
func NewGarageClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.requestInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = wire.NewGarageServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Ping asks the standard health service whether GarageService is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: wire.ServiceName})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) State(ctx context.Context) (*wire.StateResponse, error) {
	resp, err := s.client.GetState(ctx, &wire.GetStateRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SetBudget(ctx context.Context, budget float64) (*wire.SetBudgetResponse, error) {
	resp, err := s.client.SetBudget(ctx, &wire.SetBudgetRequest{Budget: budget})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ToggleMustHave(ctx context.Context, feature string) (*wire.ToggleMustHaveResponse, error) {
	resp, err := s.client.ToggleMustHave(ctx, &wire.ToggleMustHaveRequest{Feature: feature})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SwipeDeck(ctx context.Context) ([]wire.Vehicle, error) {
	resp, err := s.client.GetSwipeDeck(ctx, &wire.GetSwipeDeckRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Cars, nil
}

func (s *GRPCClient) Like(ctx context.Context, id int64) (*wire.DecisionResponse, error) {
	resp, err := s.client.LikeCar(ctx, &wire.DecisionRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Nope(ctx context.Context, id int64) (*wire.DecisionResponse, error) {
	resp, err := s.client.NopeCar(ctx, &wire.DecisionRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Car returns common.ErrorNotFound when the id is not in the catalog.
func (s *GRPCClient) Car(ctx context.Context, id int64) (*wire.Vehicle, error) {
	resp, err := s.client.GetCar(ctx, &wire.GetCarRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	if !resp.Found || resp.Car == nil {
		return nil, fmt.Errorf("%w: vehicle %d", common.ErrorNotFound, id)
	}
	return resp.Car, nil
}

func (s *GRPCClient) Cars(ctx context.Context) ([]wire.Vehicle, error) {
	resp, err := s.client.ListCars(ctx, &wire.ListCarsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Cars, nil
}

func (s *GRPCClient) Garage(ctx context.Context) ([]wire.Vehicle, error) {
	resp, err := s.client.ListLiked(ctx, &wire.ListLikedRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Cars, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorInvalidArgument, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrorAlreadyDecided, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
