package session

import (
	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
)

// Event is a notification emitted after a state mutation.
type Event interface {
	isEvent()
}

// ScreenEvent reports a coarse state transition.
type ScreenEvent struct {
	Screen Screen
}

// ScoreEvent reports the new score and the points just awarded.
type ScoreEvent struct {
	Score int
	Delta int
}

// LevelEvent reports the current level.
type LevelEvent struct {
	Level int
}

// ComboEvent reports the current combo. Big is set from BigComboThreshold.
type ComboEvent struct {
	Combo int
	Big   bool
}

// LivesEvent reports remaining lives.
type LivesEvent struct {
	Lives     int
	Unlimited bool
}

// TimerEvent reports a countdown value: 0-100 for the per-question timer,
// seconds remaining when Global is set.
type TimerEvent struct {
	Value  int
	Global bool
}

// QuestionEvent reports a newly displayed question.
type QuestionEvent struct {
	Question *problemgen.Question
	Artifact answer.Artifact
}

// AnswerEvent reports how the current question was resolved.
type AnswerEvent struct {
	Correct  bool
	TimedOut bool
	Expected float64
}

// GameOverEvent carries the final stats.
type GameOverEvent struct {
	Summary *Summary
}

func (ScreenEvent) isEvent()   {}
func (ScoreEvent) isEvent()    {}
func (LevelEvent) isEvent()    {}
func (ComboEvent) isEvent()    {}
func (LivesEvent) isEvent()    {}
func (TimerEvent) isEvent()    {}
func (QuestionEvent) isEvent() {}
func (AnswerEvent) isEvent()   {}
func (GameOverEvent) isEvent() {}
