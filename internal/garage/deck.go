package garage

// State is a point-in-time copy of everything the store holds.
type State struct {
	Budget     float64
	MustHaves  MustHaves
	AllCars    []Vehicle
	LikedCars  []Vehicle
	SeenCarIDs []VehicleID
}

// DeriveSwipeDeck returns, in catalog order, every vehicle of st.AllCars
// that has not been decided, whose price/72 does not exceed st.Budget, and
// that carries the label of every enabled must-have.
func DeriveSwipeDeck(st State) []Vehicle {
	seen := make(map[VehicleID]struct{}, len(st.SeenCarIDs))
	for _, id := range st.SeenCarIDs {
		seen[id] = struct{}{}
	}
	return deriveSwipeDeck(st.AllCars, st.Budget, st.MustHaves, seen)
}

func deriveSwipeDeck(all []Vehicle, budget float64, mh MustHaves, seen map[VehicleID]struct{}) []Vehicle {
	required := mh.Required()

	deck := make([]Vehicle, 0, len(all))
	for _, car := range all {
		if _, ok := seen[car.ID]; ok {
			continue
		}
		if car.MonthlyPayment() > budget {
			continue
		}
		if !hasAll(car, required) {
			continue
		}
		deck = append(deck, car.Clone())
	}
	return deck
}

func hasAll(car Vehicle, labels []string) bool {
	for _, l := range labels {
		if !car.HasFeature(l) {
			return false
		}
	}
	return true
}
