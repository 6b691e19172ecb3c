package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/components"
	"github.com/abhisek/mathblitz/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	state := s.engine.State()
	if s.question == nil {
		return renderLoading(width)
	}

	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderTimer(state, cw))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(components.ArcadeCard(theme.Question.Render(s.question.Text), cw))
	b.WriteString("\n\n")

	// Input area.
	if s.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}
	b.WriteString("\n\n")

	b.WriteString(s.renderFeedback(state, cw))
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(components.ErrorLine(s.errMsg, cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderTimer renders the per-question countdown, or the global clock in
// time attack.
func (s *PlayScreen) renderTimer(state session.SessionState, cw int) string {
	if state.TimeAttack {
		total := max(s.globalTotal, 1)
		return components.NewProgressBar("TIME",
			float64(state.GlobalTimer)/float64(total),
			fmt.Sprintf("%ds", state.GlobalTimer), cw).View()
	}
	remaining := state.TimerTick * time.Duration(state.Timer)
	return components.NewProgressBar("TIME",
		float64(state.Timer)/float64(session.TimerMax),
		fmt.Sprintf("%.1fs", remaining.Seconds()), cw).View()
}

// renderFeedback renders the result of the previous answer and the combo.
func (s *PlayScreen) renderFeedback(state session.SessionState, cw int) string {
	line := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var parts []string
	if s.last != nil {
		switch {
		case s.last.correct:
			parts = append(parts, theme.Correct.Render(fmt.Sprintf("Correct! +%d", s.last.delta)))
		case s.last.timedOut:
			parts = append(parts, theme.Incorrect.Render(
				"Time's up! Answer: "+problemgen.FormatNumber(s.last.expected)))
		default:
			parts = append(parts, theme.Incorrect.Render(
				"Not quite. Answer: "+problemgen.FormatNumber(s.last.expected)))
		}
	}

	if state.Combo > 1 {
		combo := fmt.Sprintf("COMBO ×%d", state.Combo)
		if s.bigCombo {
			parts = append(parts, theme.BigCombo.Render("★ "+combo+" ★"))
		} else {
			parts = append(parts, theme.Hint.Render(combo))
		}
	}

	return line.Render(strings.Join(parts, "    "))
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this game?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your score will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, back to menu"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))

	return b.String()
}

// renderLoading renders the state before the first question arrives.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Get ready...")
}
