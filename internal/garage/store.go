package garage

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/dmitrijs2005/wheel/internal/common"
)

// DefaultBudget is the monthly budget a new session starts with.
const DefaultBudget = 450

// Store is one shopper's session. All mutation goes through its methods;
// every read returns a copy.
type Store struct {
	mu sync.RWMutex

	budget    float64
	mustHaves MustHaves
	allCars   []Vehicle
	byID      map[VehicleID]int
	likedCars []Vehicle
	seen      map[VehicleID]struct{}

	observer Observer
}

// Option configures a Store at construction.
type Option func(*Store)

// WithBudget overrides DefaultBudget.
func WithBudget(b float64) Option {
	return func(s *Store) { s.budget = b }
}

// WithObserver registers o to receive an Event after every mutation.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// NewStore builds a session over cars. The catalog is copied and never
// changes afterwards. Duplicate ids, non-positive prices and an invalid
// initial budget are rejected.
func NewStore(cars []Vehicle, opts ...Option) (*Store, error) {
	s := &Store{
		budget:  DefaultBudget,
		allCars: cloneVehicles(cars),
		byID:    make(map[VehicleID]int, len(cars)),
		seen:    make(map[VehicleID]struct{}),
	}

	for i, car := range s.allCars {
		if car.Price <= 0 || math.IsNaN(car.Price) || math.IsInf(car.Price, 0) {
			return nil, fmt.Errorf("%w: vehicle %d has price %v", common.ErrorInvalidArgument, car.ID, car.Price)
		}
		if _, dup := s.byID[car.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate vehicle id %d", common.ErrorInvalidArgument, car.ID)
		}
		s.byID[car.ID] = i
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := validateBudget(s.budget); err != nil {
		return nil, err
	}

	return s, nil
}

func validateBudget(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return fmt.Errorf("%w: budget must be a finite number", common.ErrorInvalidArgument)
	}
	if b < 0 {
		return fmt.Errorf("%w: budget must not be negative, got %v", common.ErrorInvalidArgument, b)
	}
	return nil
}

func (s *Store) Budget() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget
}

func (s *Store) MustHaves() MustHaves {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mustHaves
}

// AllCars returns the catalog in source order.
func (s *Store) AllCars() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneVehicles(s.allCars)
}

// LikedCars returns the liked snapshots in the order they were liked.
func (s *Store) LikedCars() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneVehicles(s.likedCars)
}

// SeenCarIDs returns every decided vehicle id in ascending order.
func (s *Store) SeenCarIDs() []VehicleID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seenIDsLocked()
}

func (s *Store) seenIDsLocked() []VehicleID {
	ids := make([]VehicleID, 0, len(s.seen))
	for id := range s.seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsSeen reports whether a like or nope has been recorded for id.
func (s *Store) IsSeen(id VehicleID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[id]
	return ok
}

// Snapshot returns a consistent copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Budget:     s.budget,
		MustHaves:  s.mustHaves,
		AllCars:    cloneVehicles(s.allCars),
		LikedCars:  cloneVehicles(s.likedCars),
		SeenCarIDs: s.seenIDsLocked(),
	}
}

// CarsForSwiping derives the swipe deck from the current state. It is
// recomputed on every call.
func (s *Store) CarsForSwiping() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deckLocked()
}

func (s *Store) deckLocked() []Vehicle {
	return deriveSwipeDeck(s.allCars, s.budget, s.mustHaves, s.seen)
}

// GetCarByID returns the catalog listing with the given id.
func (s *Store) GetCarByID(id VehicleID) (Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Vehicle{}, false
	}
	return s.allCars[i].Clone(), true
}

// SetBudget replaces the monthly budget. NaN, infinities and negative
// values are rejected with common.ErrorInvalidArgument.
func (s *Store) SetBudget(b float64) error {
	if err := validateBudget(b); err != nil {
		return err
	}

	s.mu.Lock()
	s.budget = b
	ev := Event{Kind: EventBudgetSet, Budget: b, DeckSize: len(s.deckLocked())}
	s.mu.Unlock()

	s.emit(ev)
	return nil
}

// ToggleMustHave flips filter f and returns its new value.
func (s *Store) ToggleMustHave(f MustHave) (bool, error) {
	if !f.Valid() {
		return false, fmt.Errorf("%w: unknown must-have %d", common.ErrorInvalidArgument, int(f))
	}

	s.mu.Lock()
	p := s.mustHaves.field(f)
	*p = !*p
	enabled := *p
	ev := Event{Kind: EventMustHaveToggled, MustHave: f, Enabled: enabled, DeckSize: len(s.deckLocked())}
	s.mu.Unlock()

	s.emit(ev)
	return enabled, nil
}

// LikeCar records a like for car.ID and appends a snapshot of the catalog
// listing to the liked list.
func (s *Store) LikeCar(car Vehicle) error {
	return s.decide(car.ID, true)
}

// NopeCar records a rejection for car.ID.
func (s *Store) NopeCar(car Vehicle) error {
	return s.decide(car.ID, false)
}

// decide enforces: the id is in the catalog, and it has not been decided
// before. On either failure nothing changes.
func (s *Store) decide(id VehicleID, like bool) error {
	s.mu.Lock()

	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: vehicle %d", common.ErrorNotFound, id)
	}
	if _, done := s.seen[id]; done {
		s.mu.Unlock()
		return fmt.Errorf("%w: vehicle %d", common.ErrorAlreadyDecided, id)
	}

	snapshot := s.allCars[i].Clone()
	kind := EventCarNoped
	if like {
		s.likedCars = append(s.likedCars, snapshot)
		kind = EventCarLiked
	}
	s.seen[id] = struct{}{}

	ev := Event{Kind: kind, Car: snapshot.Clone(), DeckSize: len(s.deckLocked())}
	s.mu.Unlock()

	s.emit(ev)
	return nil
}

func (s *Store) emit(ev Event) {
	if s.observer != nil {
		s.observer.Observe(ev)
	}
}
