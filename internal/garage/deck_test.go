package garage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSwipeDeck_Properties(t *testing.T) {
	cars := testCars()
	states := []State{
		{Budget: 450, AllCars: cars},
		{Budget: 1000, AllCars: cars, SeenCarIDs: []VehicleID{1}},
		{Budget: 1000, AllCars: cars, MustHaves: MustHaves{AWD: true}},
		{Budget: 600, AllCars: cars, MustHaves: MustHaves{PushToStart: true, AppleCarPlay: true}, SeenCarIDs: []VehicleID{2}},
		{Budget: 0, AllCars: cars},
	}

	for _, st := range states {
		for _, v := range DeriveSwipeDeck(st) {
			assert.NotContains(t, st.SeenCarIDs, v.ID)
			assert.LessOrEqual(t, v.Price/72, st.Budget)
			for _, f := range AllMustHaves {
				if st.MustHaves.Enabled(f) {
					assert.Contains(t, v.Features, f.Label())
				}
			}
		}
	}
}

func TestDeriveSwipeDeck_Scenarios(t *testing.T) {
	cars := testCars()

	assert.Equal(t, []VehicleID{2}, ids(DeriveSwipeDeck(State{Budget: 450, AllCars: cars})))
	assert.Equal(t, []VehicleID{1, 3}, ids(DeriveSwipeDeck(State{Budget: 1000, AllCars: cars, MustHaves: MustHaves{AWD: true}})))
	assert.Equal(t, []VehicleID{1, 3}, ids(DeriveSwipeDeck(State{Budget: 1000, AllCars: cars, SeenCarIDs: []VehicleID{2}})))
	assert.Empty(t, DeriveSwipeDeck(State{Budget: 1000}))
}

func TestDeriveSwipeDeck_ReturnsCopies(t *testing.T) {
	cars := testCars()
	deck := DeriveSwipeDeck(State{Budget: 1000, AllCars: cars})
	deck[0].Features[0] = "mutated"
	assert.Equal(t, LabelHeatedSeats, cars[0].Features[0])
}
