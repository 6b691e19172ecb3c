package keyselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/profile"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/screens/play"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/components"
	"github.com/abhisek/mathblitz/internal/ui/layout"
)

// KeySelectScreen lists the difficulty profiles or curriculum levels for
// the chosen mode and starts a game.
type KeySelectScreen struct {
	engine *session.Engine
	mode   problemgen.Mode
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*KeySelectScreen)(nil)
var _ screen.KeyHintProvider = (*KeySelectScreen)(nil)

// New creates a new KeySelectScreen for mode.
func New(engine *session.Engine, mode problemgen.Mode) *KeySelectScreen {
	s := &KeySelectScreen{engine: engine, mode: mode}

	var items []components.MenuItem
	switch mode {
	case problemgen.ModeCurriculum:
		for _, c := range problemgen.AllCurricula() {
			items = append(items, components.MenuItem{
				Label:  strings.ToUpper(string(c)),
				Detail: c.DisplayName(),
				Action: s.starter(string(c)),
			})
		}
	default:
		for _, k := range profile.Keys() {
			p, _ := profile.Lookup(k)
			items = append(items, components.MenuItem{
				Label:  strings.ToUpper(k.DisplayName()),
				Detail: describe(p),
				Action: s.starter(string(k)),
			})
		}
	}
	s.menu = components.NewMenu(items)
	s.menu.Compact = mode == problemgen.ModeCurriculum
	return s
}

// describe summarizes a profile for the detail line.
func describe(p profile.Profile) string {
	ops := make([]string, len(p.Operators))
	for i, op := range p.Operators {
		ops[i] = string(op)
	}
	lives := fmt.Sprintf("%d lives", p.Lives)
	if p.Unlimited() {
		lives = fmt.Sprintf("%ds clock", session.DefaultGlobalSeconds)
	}
	return fmt.Sprintf("%s · %d-%d · %s · %.0fs per question",
		lives, p.Range.Min, p.Range.Max, strings.Join(ops, " "), p.QuestionBudget().Seconds())
}

func (s *KeySelectScreen) starter(key string) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.engine.StartGame(s.mode, key); err != nil {
			s.errMsg = err.Error()
			if s.engine.State().Screen == session.ScreenGameOver {
				_ = s.engine.Back()
				return func() tea.Msg { return router.PopToRootMsg{} }
			}
			return nil
		}
		s.errMsg = ""
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: play.New(s.engine)}
		}
	}
}

func (s *KeySelectScreen) Init() tea.Cmd {
	return nil
}

func (s *KeySelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		if err := s.engine.Back(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *KeySelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := "SELECT DIFFICULTY"
	if s.mode == problemgen.ModeCurriculum {
		title = "SELECT LEVEL"
	}

	sections := []string{
		components.ArcadeTitle(title, cw),
		s.menu.View(cw),
	}
	if s.errMsg != "" {
		sections = append(sections, components.ErrorLine(s.errMsg, cw))
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *KeySelectScreen) Title() string {
	if s.mode == problemgen.ModeCurriculum {
		return "Curriculum"
	}
	return "Difficulty"
}

func (s *KeySelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}
