package client

import (
	"context"

	"github.com/dmitrijs2005/wheel/internal/wire"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	State(ctx context.Context) (*wire.StateResponse, error)
	SetBudget(ctx context.Context, budget float64) (*wire.SetBudgetResponse, error)
	ToggleMustHave(ctx context.Context, feature string) (*wire.ToggleMustHaveResponse, error)
	SwipeDeck(ctx context.Context) ([]wire.Vehicle, error)
	Like(ctx context.Context, id int64) (*wire.DecisionResponse, error)
	Nope(ctx context.Context, id int64) (*wire.DecisionResponse, error)
	Car(ctx context.Context, id int64) (*wire.Vehicle, error)
	Cars(ctx context.Context) ([]wire.Vehicle, error)
	Garage(ctx context.Context) ([]wire.Vehicle, error)
}
