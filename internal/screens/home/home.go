package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/screens/modeselect"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/components"
	"github.com/abhisek/mathblitz/internal/ui/layout"
)

const answerModeItem = 1

// HomeScreen is the main menu.
type HomeScreen struct {
	engine *session.Engine
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen driving engine.
func New(engine *session.Engine) *HomeScreen {
	h := &HomeScreen{engine: engine}

	items := []components.MenuItem{
		{Label: "START GAME", Detail: "Pick a difficulty or a curriculum level", Action: h.start},
		{Label: answerModeLabel(engine), Detail: "Enter cycles multiple choice, essay and random", Action: h.cycleAnswerMode},
		{Label: "EXIT GAME", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) start() tea.Cmd {
	if err := h.engine.OpenModeSelect(); err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: modeselect.New(h.engine)}
	}
}

func (h *HomeScreen) cycleAnswerMode() tea.Cmd {
	next := h.engine.State().AnswerMode.Next()
	if err := h.engine.SetAnswerMode(next); err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.menu.SetLabel(answerModeItem, answerModeLabel(h.engine))
	return nil
}

func answerModeLabel(engine *session.Engine) string {
	return fmt.Sprintf("ANSWER: %s", strings.ToUpper(engine.State().AnswerMode.DisplayName()))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.engine.Summary(), cw, compact),
		h.menu.View(cw),
	}
	if h.errMsg != "" {
		sections = append(sections, components.ErrorLine(h.errMsg, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
