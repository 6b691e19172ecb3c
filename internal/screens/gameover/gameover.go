package gameover

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/profile"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/components"
	"github.com/abhisek/mathblitz/internal/ui/layout"
	"github.com/abhisek/mathblitz/internal/ui/theme"
)

// GameOverScreen displays the final stats of a game.
type GameOverScreen struct {
	engine  *session.Engine
	summary *session.Summary
	restart func() screen.Screen
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)

// New creates a new GameOverScreen. restart builds the screen shown when
// the player chooses to play again.
func New(engine *session.Engine, summary *session.Summary, restart func() screen.Screen) *GameOverScreen {
	s := &GameOverScreen{engine: engine, summary: summary, restart: restart}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: s.playAgain},
		{Label: "MAIN MENU", Action: s.mainMenu},
	})
	return s
}

func (s *GameOverScreen) playAgain() tea.Cmd {
	state := s.engine.State()
	if err := s.engine.StartGame(state.Mode, state.Key); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	next := s.restart()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *GameOverScreen) mainMenu() tea.Cmd {
	if err := s.engine.Back(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *GameOverScreen) Init() tea.Cmd {
	return nil
}

func (s *GameOverScreen) Title() string {
	return "Game Over"
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Main menu"},
	}
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, s.mainMenu()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *GameOverScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(components.ArcadeTitle("G A M E   O V E R", cw))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(describeGame(sum)))
	b.WriteString("\n\n")

	// Headline score.
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Score.Render(fmt.Sprintf("★ %d", sum.Score))))
	b.WriteString("\n\n")

	// Stats line.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Level %d    Max combo %d    Correct %d/%d (%.0f%%)    %d:%02d",
		sum.Level, sum.MaxCombo, sum.CorrectCount, sum.TotalAnswered, sum.Accuracy*100, mins, secs)
	b.WriteString(components.ArcadeCard(theme.Body.Render(statsLine), cw))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View(cw))
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorLine(s.errMsg, cw))
	}

	return components.CabinetFrame(b.String(), width, height)
}

// describeGame names what was played, e.g. "Difficulty · Hard".
func describeGame(sum *session.Summary) string {
	switch sum.Mode {
	case problemgen.ModeCurriculum:
		return "Curriculum · " + problemgen.Curriculum(sum.Key).DisplayName()
	default:
		return "Difficulty · " + profile.Key(sum.Key).DisplayName()
	}
}
