package modeselect

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/screens/keyselect"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/components"
	"github.com/abhisek/mathblitz/internal/ui/layout"
)

// ModeSelectScreen chooses between difficulty and curriculum questions.
type ModeSelectScreen struct {
	engine *session.Engine
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*ModeSelectScreen)(nil)
var _ screen.KeyHintProvider = (*ModeSelectScreen)(nil)

// New creates a new ModeSelectScreen.
func New(engine *session.Engine) *ModeSelectScreen {
	s := &ModeSelectScreen{engine: engine}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "DIFFICULTY",
			Detail: "Easy, normal, hard or a 60 second time attack",
			Action: func() tea.Cmd { return s.choose(problemgen.ModeDifficulty) },
		},
		{
			Label:  "CURRICULUM",
			Detail: "Questions by school level, from TK to S3",
			Action: func() tea.Cmd { return s.choose(problemgen.ModeCurriculum) },
		},
	})
	return s
}

func (s *ModeSelectScreen) choose(mode problemgen.Mode) tea.Cmd {
	if err := s.engine.SelectMode(mode); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: keyselect.New(s.engine, mode)}
	}
}

func (s *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

func (s *ModeSelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		components.ArcadeTitle("SELECT MODE", cw),
		s.menu.View(cw),
	}
	if s.errMsg != "" {
		sections = append(sections, components.ErrorLine(s.errMsg, cw))
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *ModeSelectScreen) Title() string {
	return "Mode"
}

func (s *ModeSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
