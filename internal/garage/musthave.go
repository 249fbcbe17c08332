package garage

import (
	"fmt"

	"github.com/dmitrijs2005/wheel/internal/common"
)

// MustHave is one of the four feature filters a shopper can switch on.
type MustHave int

const (
	HeatedSeats MustHave = iota
	PushToStart
	AppleCarPlay
	AWD
)

// AllMustHaves lists every filter in display order.
var AllMustHaves = []MustHave{HeatedSeats, PushToStart, AppleCarPlay, AWD}

var mustHaveTable = [...]struct {
	key   string
	alias string
	label string
}{
	HeatedSeats:  {key: "heatedSeats", alias: "heated-seats", label: LabelHeatedSeats},
	PushToStart:  {key: "pushToStart", alias: "push-to-start", label: LabelPushToStart},
	AppleCarPlay: {key: "appleCarPlay", alias: "apple-carplay", label: LabelAppleCarPlay},
	AWD:          {key: "awd", alias: "awd", label: LabelAWD},
}

// Valid reports whether m is one of the four known filters.
func (m MustHave) Valid() bool {
	return m >= HeatedSeats && m <= AWD
}

// Key is the stable identifier used on the wire, e.g. "heatedSeats".
func (m MustHave) Key() string {
	if !m.Valid() {
		return fmt.Sprintf("MustHave(%d)", int(m))
	}
	return mustHaveTable[m].key
}

// Label is the catalog feature label the filter requires.
func (m MustHave) Label() string {
	if !m.Valid() {
		return ""
	}
	return mustHaveTable[m].label
}

func (m MustHave) String() string {
	return m.Key()
}

// ParseMustHave accepts a key ("appleCarPlay") or its kebab-case alias
// ("apple-carplay").
func ParseMustHave(s string) (MustHave, error) {
	for _, m := range AllMustHaves {
		if s == mustHaveTable[m].key || s == mustHaveTable[m].alias {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown must-have %q", common.ErrorInvalidArgument, s)
}

// MustHaves is the set of filter toggles. The zero value has every filter off.
type MustHaves struct {
	HeatedSeats  bool `json:"heatedSeats"`
	PushToStart  bool `json:"pushToStart"`
	AppleCarPlay bool `json:"appleCarPlay"`
	AWD          bool `json:"awd"`
}

func (m *MustHaves) field(f MustHave) *bool {
	switch f {
	case HeatedSeats:
		return &m.HeatedSeats
	case PushToStart:
		return &m.PushToStart
	case AppleCarPlay:
		return &m.AppleCarPlay
	case AWD:
		return &m.AWD
	}
	return nil
}

// Enabled reports whether filter f is on. Unknown filters are never on.
func (m MustHaves) Enabled(f MustHave) bool {
	p := m.field(f)
	return p != nil && *p
}

// Map returns the toggles keyed by MustHave.Key.
func (m MustHaves) Map() map[string]bool {
	out := make(map[string]bool, len(AllMustHaves))
	for _, f := range AllMustHaves {
		out[f.Key()] = m.Enabled(f)
	}
	return out
}

// Required returns the labels a vehicle must carry under these toggles.
func (m MustHaves) Required() []string {
	var labels []string
	for _, f := range AllMustHaves {
		if m.Enabled(f) {
			labels = append(labels, f.Label())
		}
	}
	return labels
}
