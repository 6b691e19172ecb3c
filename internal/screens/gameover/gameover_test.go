package gameover

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/scheduler"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/session"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// finishedEngine returns an engine sitting on the game-over screen.
func finishedEngine(t *testing.T) *session.Engine {
	t.Helper()
	e := session.NewEngine(session.Options{
		Scheduler: scheduler.NewManual(),
		Rand:      rand.New(rand.NewPCG(1, 1)),
	})
	if err := e.OpenModeSelect(); err != nil {
		t.Fatal(err)
	}
	if err := e.SelectMode(problemgen.ModeCurriculum); err != nil {
		t.Fatal(err)
	}
	if err := e.StartGame(problemgen.ModeCurriculum, "smp"); err != nil {
		t.Fatal(err)
	}
	e.EndGame()
	return e
}

func testSummary() *session.Summary {
	return &session.Summary{
		Score:         120,
		Level:         3,
		MaxCombo:      7,
		CorrectCount:  8,
		TotalAnswered: 10,
		Accuracy:      0.8,
		Duration:      95 * time.Second,
		Mode:          problemgen.ModeDifficulty,
		Key:           "hard",
	}
}

func TestGameOverScreen_Title(t *testing.T) {
	s := New(finishedEngine(t), testSummary(), nil)
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
}

func TestGameOverScreen_Display(t *testing.T) {
	s := New(finishedEngine(t), testSummary(), nil)
	view := s.View(100, 30)

	for _, want := range []string{"★ 120", "Level 3", "Max combo 7", "Correct 8/10 (80%)", "1:35", "Difficulty · Hard", "PLAY AGAIN"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGameOverScreen_CurriculumLabel(t *testing.T) {
	sum := testSummary()
	sum.Mode = problemgen.ModeCurriculum
	sum.Key = "smp"
	if got := describeGame(sum); got != "Curriculum · SMP (Lower Secondary)" {
		t.Errorf("describeGame = %q", got)
	}
}

func TestGameOverScreen_EscReturnsHome(t *testing.T) {
	e := finishedEngine(t)
	s := New(e, e.Summary(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
	if got := e.State().Screen; got != session.ScreenMainMenu {
		t.Errorf("engine screen = %v, want %v", got, session.ScreenMainMenu)
	}
}

func TestGameOverScreen_PlayAgain(t *testing.T) {
	e := finishedEngine(t)
	s := New(e, e.Summary(), func() screen.Screen { return &stubScreen{title: "Play"} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Play" {
		t.Errorf("replacement title = %q", msg.Screen.Title())
	}

	state := e.State()
	if state.Screen != session.ScreenPlaying {
		t.Errorf("engine screen = %v, want %v", state.Screen, session.ScreenPlaying)
	}
	if state.Mode != problemgen.ModeCurriculum || state.Key != "smp" {
		t.Errorf("replayed %s/%s, want curriculum/smp", state.Mode, state.Key)
	}
}
