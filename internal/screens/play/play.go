package play

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/screens/gameover"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/components"
	"github.com/abhisek/mathblitz/internal/ui/layout"
)

// feedback is the banner shown for the previous answer.
type feedback struct {
	correct  bool
	timedOut bool
	expected float64
	delta    int
}

// PlayScreen implements screen.Screen for a running game. Game state lives
// in the engine; the screen only keeps input widgets and transient banners.
type PlayScreen struct {
	engine *session.Engine

	question *problemgen.Question
	choice   components.MultiChoice
	mcActive bool
	input    components.TextInput

	last        *feedback
	bigCombo    bool
	confirmQuit bool
	globalTotal int
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.HUDProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the game the engine is running.
func New(engine *session.Engine) *PlayScreen {
	return &PlayScreen{
		engine: engine,
		input:  components.NewTextInput("Type your answer...", 20),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	state := s.engine.State()
	s.globalTotal = state.GlobalTimer
	s.load(state.CurrentQuestion, state.CurrentArtifact)
	return s.input.Init()
}

// load resets the input widgets for a newly displayed question.
func (s *PlayScreen) load(q *problemgen.Question, art answer.Artifact) {
	s.question = q
	s.input.Reset()
	s.mcActive = false
	if mc, ok := art.(*answer.MultipleChoice); ok {
		s.choice = components.NewMultiChoice(mc.Labels())
		s.mcActive = true
	}
}

func (s *PlayScreen) Title() string {
	return "Play"
}

func (s *PlayScreen) HUD() *layout.HUD {
	state := s.engine.State()
	return &layout.HUD{
		Score:     state.Score,
		Level:     state.Level,
		Lives:     state.Lives,
		Unlimited: state.TimeAttack,
	}
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if s.mcActive {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.EngineEventsMsg:
		return s.handleEvents(msg.Events)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.mcActive && !s.confirmQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleEvents(events []session.Event) (screen.Screen, tea.Cmd) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case session.QuestionEvent:
			s.load(ev.Question, ev.Artifact)
		case session.AnswerEvent:
			s.last = &feedback{correct: ev.Correct, timedOut: ev.TimedOut, expected: ev.Expected}
		case session.ScoreEvent:
			if s.last != nil {
				s.last.delta = ev.Delta
			}
		case session.ComboEvent:
			s.bigCombo = ev.Big
		case session.GameOverEvent:
			next := gameover.New(s.engine, ev.Summary, func() screen.Screen { return New(s.engine) })
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.engine.QuitToMenu()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.mcActive {
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			s.submit(s.choice.Value())
		}
		return s, nil
	}

	if key == "enter" {
		if s.input.Value() != "" {
			s.submit(s.input.Value())
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) submit(raw string) {
	if _, err := s.engine.SubmitAnswer(raw); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
}
