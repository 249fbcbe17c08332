package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps store sentinels onto gRPC codes. Unknown errors are
// reported as Internal without their text.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyDecided):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) GetState(ctx context.Context, req *wire.GetStateRequest) (*wire.StateResponse, error) {

	st := s.store.Snapshot()

	seen := make([]int64, len(st.SeenCarIDs))
	for i, id := range st.SeenCarIDs {
		seen[i] = int64(id)
	}

	return &wire.StateResponse{
		Budget:     st.Budget,
		MustHaves:  st.MustHaves.Map(),
		LikedCars:  wire.FromVehicles(st.LikedCars),
		SeenCarIDs: seen,
		DeckSize:   len(garage.DeriveSwipeDeck(st)),
		TotalCars:  len(st.AllCars),
	}, nil
}

func (s *GRPCServer) SetBudget(ctx context.Context, req *wire.SetBudgetRequest) (*wire.SetBudgetResponse, error) {

	if err := s.store.SetBudget(req.Budget); err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Budget set", "budget", req.Budget)
	return &wire.SetBudgetResponse{Budget: req.Budget, DeckSize: len(s.store.CarsForSwiping())}, nil
}

func (s *GRPCServer) ToggleMustHave(ctx context.Context, req *wire.ToggleMustHaveRequest) (*wire.ToggleMustHaveResponse, error) {

	f, err := garage.ParseMustHave(req.Feature)
	if err != nil {
		return nil, toStatus(err)
	}

	enabled, err := s.store.ToggleMustHave(f)
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Must-have toggled", "feature", f.Key(), "enabled", enabled)
	return &wire.ToggleMustHaveResponse{
		Feature:   f.Key(),
		Enabled:   enabled,
		MustHaves: s.store.MustHaves().Map(),
		DeckSize:  len(s.store.CarsForSwiping()),
	}, nil
}

func (s *GRPCServer) GetSwipeDeck(ctx context.Context, req *wire.GetSwipeDeckRequest) (*wire.VehicleListResponse, error) {
	return &wire.VehicleListResponse{Cars: wire.FromVehicles(s.store.CarsForSwiping())}, nil
}

func (s *GRPCServer) LikeCar(ctx context.Context, req *wire.DecisionRequest) (*wire.DecisionResponse, error) {
	return s.decide(ctx, req.ID, true)
}

func (s *GRPCServer) NopeCar(ctx context.Context, req *wire.DecisionRequest) (*wire.DecisionResponse, error) {
	return s.decide(ctx, req.ID, false)
}

func (s *GRPCServer) decide(ctx context.Context, id int64, like bool) (*wire.DecisionResponse, error) {

	car, ok := s.store.GetCarByID(garage.VehicleID(id))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "vehicle %d not found", id)
	}

	var err error
	if like {
		err = s.store.LikeCar(car)
	} else {
		err = s.store.NopeCar(car)
	}
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Decision recorded", "id", id, "like", like)
	return &wire.DecisionResponse{Car: wire.FromVehicle(car), DeckSize: len(s.store.CarsForSwiping())}, nil
}

func (s *GRPCServer) GetCar(ctx context.Context, req *wire.GetCarRequest) (*wire.GetCarResponse, error) {

	car, ok := s.store.GetCarByID(garage.VehicleID(req.ID))
	if !ok {
		return &wire.GetCarResponse{Found: false}, nil
	}

	v := wire.FromVehicle(car)
	return &wire.GetCarResponse{Found: true, Car: &v}, nil
}

func (s *GRPCServer) ListCars(ctx context.Context, req *wire.ListCarsRequest) (*wire.VehicleListResponse, error) {
	return &wire.VehicleListResponse{Cars: wire.FromVehicles(s.store.AllCars())}, nil
}

func (s *GRPCServer) ListLiked(ctx context.Context, req *wire.ListLikedRequest) (*wire.VehicleListResponse, error) {
	return &wire.VehicleListResponse{Cars: wire.FromVehicles(s.store.LikedCars())}, nil
}
