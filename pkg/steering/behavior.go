package steering

import (
	"errors"
	"fmt"
	"strings"
)

// Behavior is the mode an agent is configured with. It does not change while the agent runs.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorSeek
	BehaviorEvade
)

var behaviorNames = map[Behavior]string{
	BehaviorIdle:  "Idle",
	BehaviorSeek:  "Seek",
	BehaviorEvade: "Evade",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// ParseBehavior accepts the behavior names case-insensitively.
func ParseBehavior(s string) (Behavior, error) {
	for b, name := range behaviorNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return b, nil
		}
	}
	return BehaviorIdle, fmt.Errorf("%w: %q", ErrUnknownBehavior, s)
}

// MarshalText lets a Behavior appear as its name in JSON and YAML.
func (b Behavior) MarshalText() ([]byte, error) {
	if _, ok := behaviorNames[b]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBehavior, int(b))
	}
	return []byte(strings.ToLower(b.String())), nil
}

func (b *Behavior) UnmarshalText(text []byte) error {
	parsed, err := ParseBehavior(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// State is what the controller decided to do on the last tick.
type State int

const (
	StateIdle State = iota
	StateArrive
	StateSeek
	StateEvade
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateArrive:
		return "Arrive"
	case StateSeek:
		return "Seek"
	case StateEvade:
		return "Evade"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrUnknownState is returned by ParseState.
var ErrUnknownState = errors.New("unknown state")

func ParseState(s string) (State, error) {
	for st := StateIdle; st <= StateEvade; st++ {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return StateIdle, fmt.Errorf("%w: %q", ErrUnknownState, s)
}

// Label is the text shown by a display sink, e.g. "ARRIVE".
func (s State) Label() string {
	return strings.ToUpper(s.String())
}
