package session

import (
	"time"

	"github.com/abhisek/mathblitz/internal/problemgen"
)

// Summary holds the final stats displayed on the game-over screen.
type Summary struct {
	Score        int
	Level        int
	MaxCombo     int
	CorrectCount int

	SessionID     string
	Mode          problemgen.Mode
	Key           string
	TotalAnswered int
	Accuracy      float64
	Duration      time.Duration
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(state *SessionState) *Summary {
	var accuracy float64
	if state.TotalAnswered > 0 {
		accuracy = float64(state.CorrectCount) / float64(state.TotalAnswered)
	}

	var duration time.Duration
	if !state.EndTime.IsZero() {
		duration = state.EndTime.Sub(state.StartTime)
	}

	return &Summary{
		Score:         state.Score,
		Level:         state.Level,
		MaxCombo:      state.MaxCombo,
		CorrectCount:  state.CorrectCount,
		SessionID:     state.SessionID,
		Mode:          state.Mode,
		Key:           state.Key,
		TotalAnswered: state.TotalAnswered,
		Accuracy:      accuracy,
		Duration:      duration,
	}
}
