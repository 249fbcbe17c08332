package wire

import (
	"slices"

	"github.com/dmitrijs2005/wheel/internal/garage"
)

// Vehicle is the wire form of a catalog listing. MonthlyPayment is
// filled by the server so clients never repeat the price rule.
type Vehicle struct {
	ID             int64    `json:"id"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Year           int      `json:"year"`
	Price          float64  `json:"price"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Image          string   `json:"img,omitempty"`
}

func FromVehicle(v garage.Vehicle) Vehicle {
	return Vehicle{
		ID:             int64(v.ID),
		Make:           v.Make,
		Model:          v.Model,
		Year:           v.Year,
		Price:          v.Price,
		MonthlyPayment: v.MonthlyPayment(),
		Description:    v.Description,
		Features:       slices.Clone(v.Features),
		Image:          v.Image,
	}
}

func FromVehicles(vs []garage.Vehicle) []Vehicle {
	out := make([]Vehicle, len(vs))
	for i, v := range vs {
		out[i] = FromVehicle(v)
	}
	return out
}

// ToGarage drops the derived MonthlyPayment.
func (v Vehicle) ToGarage() garage.Vehicle {
	return garage.Vehicle{
		ID:          garage.VehicleID(v.ID),
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Price:       v.Price,
		Description: v.Description,
		Features:    slices.Clone(v.Features),
		Image:       v.Image,
	}
}

type GetStateRequest struct{}

type StateResponse struct {
	Budget     float64         `json:"budget"`
	MustHaves  map[string]bool `json:"mustHaves"`
	LikedCars  []Vehicle       `json:"likedCars"`
	SeenCarIDs []int64         `json:"seenCarIds"`
	DeckSize   int             `json:"deckSize"`
	TotalCars  int             `json:"totalCars"`
}

type SetBudgetRequest struct {
	Budget float64 `json:"budget"`
}

type SetBudgetResponse struct {
	Budget   float64 `json:"budget"`
	DeckSize int     `json:"deckSize"`
}

// ToggleMustHaveRequest names the filter by key ("appleCarPlay") or alias
// ("apple-carplay").
type ToggleMustHaveRequest struct {
	Feature string `json:"feature"`
}

type ToggleMustHaveResponse struct {
	Feature   string          `json:"feature"`
	Enabled   bool            `json:"enabled"`
	MustHaves map[string]bool `json:"mustHaves"`
	DeckSize  int             `json:"deckSize"`
}

type GetSwipeDeckRequest struct{}

type ListCarsRequest struct{}

type ListLikedRequest struct{}

type VehicleListResponse struct {
	Cars []Vehicle `json:"cars"`
}

// DecisionRequest is shared by LikeCar and NopeCar.
type DecisionRequest struct {
	ID int64 `json:"id"`
}

type DecisionResponse struct {
	Car      Vehicle `json:"car"`
	DeckSize int     `json:"deckSize"`
}

type GetCarRequest struct {
	ID int64 `json:"id"`
}

// GetCarResponse reports a miss with Found=false rather than an error.
type GetCarResponse struct {
	Found bool     `json:"found"`
	Car   *Vehicle `json:"car,omitempty"`
}
