// Package answer turns generated questions into the artifacts a player
// answers: a four-option multiple choice or a free-entry numeric check.
package answer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/mathblitz/internal/problemgen"
)

// ErrUnknownAnswerMode is returned for answer-mode selectors outside the
// fixed set.
var ErrUnknownAnswerMode = errors.New("unknown answer mode")

// Tolerance is the absolute difference under which a numeric answer is
// accepted. It absorbs the 2-decimal display rounding.
const Tolerance = 0.01

// Rand is the randomness source for mode resolution, distractors, and
// shuffling.
type Rand = problemgen.Rand

// Mode selects how a question is answered.
type Mode string

const (
	ModeMultiple Mode = "multiple"
	ModeEssay    Mode = "essay"
	ModeRandom   Mode = "random"
)

// Modes returns the selectable answer modes in menu order.
func Modes() []Mode {
	return []Mode{ModeMultiple, ModeEssay, ModeRandom}
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeMultiple:
		return "Multiple Choice"
	case ModeEssay:
		return "Essay"
	case ModeRandom:
		return "Random"
	default:
		return string(m)
	}
}

// Next cycles through Modes.
func (m Mode) Next() Mode {
	modes := Modes()
	for i, mm := range modes {
		if mm == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ModeMultiple
}

// ParseMode normalizes s and returns the matching mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeMultiple, ModeEssay, ModeRandom:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAnswerMode, s)
}

// Artifact is the answerable form of a question. It is created once per
// round and evaluated once.
type Artifact interface {
	// Kind is ModeMultiple or ModeEssay, never ModeRandom.
	Kind() Mode

	// Correct returns the expected numeric answer.
	Correct() float64

	// Check reports whether raw is within Tolerance of the correct answer.
	// Non-numeric input is never correct.
	Check(raw string) bool
}

// Present wraps q in an artifact for mode. ModeRandom resolves to multiple
// choice or essay with equal probability.
func Present(q *problemgen.Question, mode Mode, rng Rand) (Artifact, error) {
	if mode == ModeRandom {
		if rng.IntN(2) == 0 {
			mode = ModeMultiple
		} else {
			mode = ModeEssay
		}
	}

	switch mode {
	case ModeMultiple:
		return NewMultipleChoice(q.Answer, rng), nil
	case ModeEssay:
		return &Essay{Answer: q.Answer, Tolerance: Tolerance}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAnswerMode, string(mode))
}

// Essay accepts any number within Tolerance of Answer.
type Essay struct {
	Answer    float64
	Tolerance float64
}

func (e *Essay) Kind() Mode       { return ModeEssay }
func (e *Essay) Correct() float64 { return e.Answer }

func (e *Essay) Check(raw string) bool {
	return matches(raw, e.Answer, e.Tolerance)
}

// matches parses raw and compares it with want. Parse failures, hex floats
// and NaN are treated as a miss.
func matches(raw string, want, tol float64) bool {
	raw = strings.TrimSpace(raw)
	if isHex(raw) {
		return false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return false
	}
	return math.Abs(v-want) < tol
}

func isHex(raw string) bool {
	raw = strings.TrimLeft(raw, "+-")
	return strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X")
}
