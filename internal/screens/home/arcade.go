package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathblitz/internal/screens/welcome"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/theme"
)

// renderTitle returns the marquee, falling back to the compact banner.
func renderTitle(cw int, compact bool) string {
	bannerWidth := cw
	if compact {
		bannerWidth = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(bannerWidth) + "\n" + theme.Subtitle.Render("answer fast, keep the combo alive"))
}

// renderStatsBar shows the last game's result in a bordered box matching
// content width.
func renderStatsBar(last *session.Summary, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	comboStyle := lipgloss.NewStyle().Foreground(theme.ArcadePink).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case last == nil:
		stats = dimStyle.Render("INSERT COIN")
	case compact:
		stats = fmt.Sprintf("%s %s %s",
			scoreStyle.Render(fmt.Sprintf("★%d", last.Score)),
			levelStyle.Render(fmt.Sprintf("LV%d", last.Level)),
			comboStyle.Render(fmt.Sprintf("×%d", last.MaxCombo)),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("★ LAST %d", last.Score)),
			levelStyle.Render(fmt.Sprintf("LV %d", last.Level)),
			comboStyle.Render(fmt.Sprintf("× %d COMBO", last.MaxCombo)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
