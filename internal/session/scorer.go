package session

import "github.com/abhisek/mathblitz/internal/problemgen"

// ScoreInput describes a correct answer being scored. Combo already
// includes the answer; Level is the level it was answered at.
type ScoreInput struct {
	Level      int
	Combo      int
	TimeAttack bool
	Question   *problemgen.Question
}

// Scorer computes the points awarded for a correct answer. Negative
// results are clamped to zero by the engine.
type Scorer interface {
	Points(in ScoreInput) int
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(in ScoreInput) int

func (f ScorerFunc) Points(in ScoreInput) int { return f(in) }

// ComboScorer awards Base × Level, multiplied by one more for every Step
// consecutive correct answers.
type ComboScorer struct {
	Base int
	Step int
}

// DefaultScorer returns the standard ComboScorer.
func DefaultScorer() ComboScorer {
	return ComboScorer{Base: 10, Step: 3}
}

func (s ComboScorer) Points(in ScoreInput) int {
	step := s.Step
	if step < 1 {
		step = 1
	}
	return s.Base * in.Level * (1 + in.Combo/step)
}
