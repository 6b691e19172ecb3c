package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned when a difficulty key is not in the registry.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// UnlimitedLives is the Lives sentinel for profiles without a life budget.
const UnlimitedLives = -1

// Key identifies a difficulty profile.
type Key string

const (
	Easy       Key = "easy"
	Normal     Key = "normal"
	Hard       Key = "hard"
	TimeAttack Key = "timeattack"
)

// Operator is an arithmetic operation the procedural generator may draw.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "×"
	OpDiv Operator = "÷"
	OpPow Operator = "^"
)

// Range is an inclusive operand range.
type Range struct {
	Min int
	Max int
}

// Profile holds the gameplay parameters for a difficulty key.
type Profile struct {
	Key Key

	// Lives is the starting life count, or UnlimitedLives.
	Lives int

	// TimerTick is the interval between per-question countdown ticks.
	// The countdown runs 100 ticks, so a question lasts 100 × TimerTick.
	TimerTick time.Duration

	// Range bounds both operands of procedural questions.
	Range Range

	// Operators is the ordered set of operators drawn uniformly per question.
	Operators []Operator

	// Complexity is a coarse difficulty tier (1-3) for display.
	Complexity int
}

// Unlimited reports whether the profile has no life budget.
func (p Profile) Unlimited() bool {
	return p.Lives == UnlimitedLives
}

// QuestionBudget returns the total time a question may stay on screen.
func (p Profile) QuestionBudget() time.Duration {
	return 100 * p.TimerTick
}

// DisplayName returns a human-readable label for the key.
func (k Key) DisplayName() string {
	switch k {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case TimeAttack:
		return "Time Attack"
	default:
		return string(k)
	}
}

var registry = map[Key]Profile{
	Easy: {
		Key:        Easy,
		Lives:      5,
		TimerTick:  120 * time.Millisecond,
		Range:      Range{Min: 1, Max: 20},
		Operators:  []Operator{OpAdd, OpSub},
		Complexity: 1,
	},
	Normal: {
		Key:        Normal,
		Lives:      3,
		TimerTick:  100 * time.Millisecond,
		Range:      Range{Min: 1, Max: 50},
		Operators:  []Operator{OpAdd, OpSub, OpMul, OpDiv},
		Complexity: 2,
	},
	Hard: {
		Key:        Hard,
		Lives:      2,
		TimerTick:  80 * time.Millisecond,
		Range:      Range{Min: 1, Max: 100},
		Operators:  []Operator{OpAdd, OpSub, OpMul, OpDiv, OpPow},
		Complexity: 3,
	},
	TimeAttack: {
		Key:        TimeAttack,
		Lives:      UnlimitedLives,
		TimerTick:  80 * time.Millisecond,
		Range:      Range{Min: 1, Max: 50},
		Operators:  []Operator{OpAdd, OpSub, OpMul, OpDiv},
		Complexity: 2,
	},
}

// Keys returns all difficulty keys in menu order.
func Keys() []Key {
	return []Key{Easy, Normal, Hard, TimeAttack}
}

// Lookup returns the profile for key.
func Lookup(key Key) (Profile, error) {
	p, ok := registry[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(key))
	}
	// Copy the operator slice so callers cannot mutate the registry.
	p.Operators = append([]Operator(nil), p.Operators...)
	return p, nil
}

// Resolve is Lookup with the session fallback: an empty key means Normal.
// Unknown non-empty keys still fail.
func Resolve(key Key) (Profile, error) {
	if key == "" {
		key = Normal
	}
	return Lookup(key)
}

// ParseKey normalizes s and returns the matching key.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return k, nil
}
