package session

import (
	"time"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
)

const (
	// DefaultQuestionsPerLevel is the number of correct answers per level.
	DefaultQuestionsPerLevel = 3

	// DefaultGlobalSeconds is the time-attack countdown length.
	DefaultGlobalSeconds = 60

	// TimerMax is the per-question countdown start value.
	TimerMax = 100

	// BigComboThreshold is the combo at which ComboEvent.Big is set.
	BigComboThreshold = 3
)

// Screen is the coarse state of the game.
type Screen int

const (
	ScreenMainMenu   Screen = iota // Title menu
	ScreenModeSelect               // Choosing difficulty vs curriculum
	ScreenKeySelect                // Choosing the difficulty or curriculum key
	ScreenPlaying                  // Serving questions
	ScreenGameOver                 // Showing final stats
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main-menu"
	case ScreenModeSelect:
		return "mode-select"
	case ScreenKeySelect:
		return "key-select"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// SessionState is the mutable aggregate owned by an Engine. Callers get
// copies through Engine.State and never mutate the live value.
type SessionState struct {
	// Screen is the current coarse state.
	Screen Screen

	// Mode and Key select what questions are generated.
	Mode problemgen.Mode
	Key  string

	// AnswerMode is the player's answer-mode selection.
	AnswerMode answer.Mode

	// Level starts at 1 and increments every QuestionsPerLevel correct answers.
	Level int

	// Score never decreases during a game.
	Score int

	// Lives is profile.UnlimitedLives in time attack.
	Lives int

	// Combo counts consecutive correct answers; MaxCombo is its high-water mark.
	Combo    int
	MaxCombo int

	// CorrectCount is the number of correct answers this game.
	CorrectCount int

	// QuestionsThisLevel counts correct answers toward the next level.
	QuestionsThisLevel int
	QuestionsPerLevel  int

	// Timer is the per-question countdown in [0, TimerMax].
	Timer int

	// TimerTick is the interval between per-question countdown ticks.
	TimerTick time.Duration

	// TimeAttack disables lives and the per-question countdown in favor of
	// GlobalTimer seconds.
	TimeAttack  bool
	GlobalTimer int

	// CurrentQuestion and CurrentArtifact are nil between questions and
	// after the game ends.
	CurrentQuestion *problemgen.Question
	CurrentArtifact answer.Artifact

	// Active is true while a game accepts answers and timer ticks.
	Active bool

	// SessionID is the UUID for this game.
	SessionID string

	// StartTime and EndTime bound the game.
	StartTime time.Time
	EndTime   time.Time

	// TotalAnswered counts submissions and timeouts.
	TotalAnswered int
}
