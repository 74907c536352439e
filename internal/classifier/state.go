package classifier

import "fmt"

// State is the classified mental-health state. The numeric value is the
// severity ordinal used by trend analysis.
type State int

const (
	StateNormal State = iota
	StateStress
	StateAnxiety
	StateDepression
	StateCritical
)

// States returns all states in canonical order. Canonical order drives
// probability iteration and the rounding tie-break, and intentionally
// differs from severity order.
func States() []State {
	return []State{StateNormal, StateAnxiety, StateStress, StateDepression, StateCritical}
}

// Severity returns the severity ordinal, Normal lowest.
func (s State) Severity() int {
	return int(s)
}

func (s State) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateStress:
		return "Stress"
	case StateAnxiety:
		return "Anxiety"
	case StateDepression:
		return "Depression"
	case StateCritical:
		return "Critical Distress"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState maps a state name back to its State. Unknown names map to
// Normal with ok=false, so malformed history records degrade safely.
func ParseState(name string) (State, bool) {
	switch name {
	case "Normal":
		return StateNormal, true
	case "Stress":
		return StateStress, true
	case "Anxiety":
		return StateAnxiety, true
	case "Depression":
		return StateDepression, true
	case "Critical Distress":
		return StateCritical, true
	default:
		return StateNormal, false
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, _ := ParseState(string(text))
	*s = parsed
	return nil
}
