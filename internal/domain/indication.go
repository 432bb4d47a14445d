package domain

import (
	"fmt"
	"time"
)

// State is the direction shown by the indicator
type State int

const (
	StateIdle State = iota
	StateLeft
	StateRight
	StateCenter
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLeft:
		return "left"
	case StateRight:
		return "right"
	case StateCenter:
		return "center"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Color returns the pixel color bound to the state.
// Center shares Idle's blue.
func (s State) Color() Color {
	switch s {
	case StateLeft:
		return Green
	case StateRight:
		return Yellow
	default:
		return Blue
	}
}

// Variant selects the precedence policy used when classifying a reading.
// The two variants only disagree when both sensors fire at once.
type Variant int

const (
	// VariantCenter reports both-active as Center and emits numeric tokens.
	VariantCenter Variant = iota
	// VariantLeftFirst lets the left sensor win and emits word tokens.
	VariantLeftFirst
)

func (v Variant) String() string {
	switch v {
	case VariantCenter:
		return "center"
	case VariantLeftFirst:
		return "left-first"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a configuration value to a Variant
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "center", "numeric", "a", "A":
		return VariantCenter, nil
	case "left-first", "words", "b", "B":
		return VariantLeftFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Status tokens written to the status channel
const (
	TokenLeft      = "1"
	TokenCenter    = "2"
	TokenRight     = "3"
	TokenLeftWord  = "left"
	TokenRightWord = "right"

	// Banner is emitted once after startup
	Banner = "Started!"
)

// Indication is everything one cycle pushes out: the state, the pixel color
// and the optional status line. LED and status are always taken from the
// same Indication.
type Indication struct {
	State     State
	Color     Color
	Status    string
	HasStatus bool
}

// Classify derives the indication for a reading under the given variant
func Classify(r Reading, v Variant) Indication {
	switch v {
	case VariantLeftFirst:
		switch {
		case r.Left:
			return indicate(StateLeft, TokenLeftWord)
		case r.Right:
			return indicate(StateRight, TokenRightWord)
		}
	default:
		switch {
		case r.IsBoth():
			return indicate(StateCenter, TokenCenter)
		case r.Left:
			return indicate(StateLeft, TokenLeft)
		case r.Right:
			return indicate(StateRight, TokenRight)
		}
	}
	// Plain idle is silent in both variants
	return Indication{State: StateIdle, Color: StateIdle.Color()}
}

func indicate(s State, token string) Indication {
	return Indication{
		State:     s,
		Color:     s.Color(),
		Status:    token,
		HasStatus: true,
	}
}

// Polling interval bounds. The fixed delay is the only debounce.
const (
	DefaultInterval = 100 * time.Millisecond
	MinInterval     = 100 * time.Millisecond
	MaxInterval     = 200 * time.Millisecond
)

// ValidateInterval rejects delays outside the supported polling window
func ValidateInterval(d time.Duration) error {
	if d < MinInterval || d > MaxInterval {
		return fmt.Errorf("%w: %s not in [%s, %s]", ErrInvalidInterval, d, MinInterval, MaxInterval)
	}
	return nil
}
