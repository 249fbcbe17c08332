// Package grpc serves the shopper's session over gRPC using the
// GarageService contract from internal/wire.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/logging"
	"github.com/dmitrijs2005/wheel/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// garageStore is the part of *garage.Store the handlers need.
type garageStore interface {
	Snapshot() garage.State
	CarsForSwiping() []garage.Vehicle
	AllCars() []garage.Vehicle
	LikedCars() []garage.Vehicle
	MustHaves() garage.MustHaves
	GetCarByID(id garage.VehicleID) (garage.Vehicle, bool)
	SetBudget(b float64) error
	ToggleMustHave(f garage.MustHave) (bool, error)
	LikeCar(car garage.Vehicle) error
	NopeCar(car garage.Vehicle) error
}

// callRecorder receives one observation per finished call.
type callRecorder interface {
	ObserveGRPC(method, code string)
}

type GRPCServer struct {
	address string
	store   garageStore
	logger  logging.Logger
	metrics callRecorder
	health  *health.Server
}

// NewGRPCServer builds a server for store. m may be nil.
func NewGRPCServer(a string, l logging.Logger, store garageStore, m callRecorder) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		store:   store,
		metrics: m,
		health:  health.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))

	wire.RegisterGarageServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(wire.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
