package garage

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventBudgetSet       EventKind = "budget_set"
	EventMustHaveToggled EventKind = "musthave_toggled"
	EventCarLiked        EventKind = "car_liked"
	EventCarNoped        EventKind = "car_noped"
)

// Event describes a successful store mutation. Only the fields relevant
// to Kind are set; DeckSize is always the deck length after the mutation.
type Event struct {
	Kind     EventKind
	Budget   float64
	MustHave MustHave
	Enabled  bool
	Car      Vehicle
	DeckSize int
}

// Observer receives store events. Observe is called after the store lock
// is released, so it may read the store.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
