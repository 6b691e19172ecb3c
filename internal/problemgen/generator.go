package problemgen

import (
	"fmt"

	"github.com/abhisek/mathblitz/internal/profile"
)

// Generator produces questions for a difficulty profile or curriculum level.
// It is not safe for concurrent use because it shares its Rand.
type Generator struct {
	rng    Rand
	config Config
}

// New creates a Generator drawing from rng.
func New(rng Rand, cfg Config) *Generator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Generator{rng: rng, config: cfg}
}

// Generate produces a single validated question. key is a difficulty key
// in ModeDifficulty and a curriculum code in ModeCurriculum.
func (g *Generator) Generate(mode Mode, key string) (*Question, error) {
	build, err := g.builder(mode, key)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		q := build()
		q.Mode = mode
		q.Key = key

		verr := g.validate(q)
		if verr == nil {
			return q, nil
		}
		if !verr.Retryable || attempt >= g.config.MaxAttempts {
			return nil, verr
		}
	}
}

// builder resolves mode/key to a question constructor.
func (g *Generator) builder(mode Mode, key string) (func() *Question, error) {
	switch mode {
	case ModeDifficulty:
		p, err := profile.Lookup(profile.Key(key))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownGenerator, err)
		}
		return func() *Question {
			return arithmetic(g.rng, p.Range, p.Operators)
		}, nil

	case ModeCurriculum:
		h, ok := curriculumHandlers[Curriculum(key)]
		if !ok {
			return nil, fmt.Errorf("%w: curriculum %q", ErrUnknownGenerator, key)
		}
		return func() *Question { return h(g.rng) }, nil
	}
	return nil, fmt.Errorf("%w: mode %q", ErrUnknownGenerator, string(mode))
}

func (g *Generator) validate(q *Question) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

// arithmetic draws two operands from rng and one operator from ops.
//
// Subtraction is presented as (a+b) - b and division as (a·b) ÷ b, so the
// answer is always the drawn operand a: non-negative and exact.
func arithmetic(r Rand, rng profile.Range, ops []profile.Operator) *Question {
	a := randInt(r, rng.Min, rng.Max)
	b := randInt(r, rng.Min, rng.Max)
	op := pick(r, ops)

	switch op {
	case profile.OpAdd:
		return newQuestion("add", fmt.Sprintf("%d + %d", a, b), float64(a+b))
	case profile.OpSub:
		return newQuestion("sub", fmt.Sprintf("%d - %d", a+b, b), float64(a))
	case profile.OpMul:
		return newQuestion("mul", fmt.Sprintf("%d × %d", a, b), float64(a*b))
	case profile.OpDiv:
		return newQuestion("div", fmt.Sprintf("%d ÷ %d", a*b, b), float64(a))
	case profile.OpPow:
		base := randInt(r, 2, 10)
		exp := randInt(r, 2, 3)
		result := 1
		for range exp {
			result *= base
		}
		return newQuestion("pow", fmt.Sprintf("%d^%d", base, exp), float64(result))
	}
	// Unreachable for registry profiles; fall back to addition.
	return newQuestion("add", fmt.Sprintf("%d + %d", a, b), float64(a+b))
}
