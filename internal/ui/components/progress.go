package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathblitz/internal/ui/theme"
)

// ProgressBar displays a horizontal countdown bar that shifts from teal
// to amber to rose as it empties.
type ProgressBar struct {
	Label   string
	Percent float64
	Caption string
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, caption string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Caption: caption,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	captionWidth := 0
	if p.Caption != "" {
		captionWidth = len(p.Caption) + 2
	}

	barWidth := p.Width - labelWidth - captionWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(p.fillColor()).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.Caption != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s", p.Caption))
	}

	return result
}

func (p ProgressBar) fillColor() color.Color {
	switch {
	case p.Percent <= 0.25:
		return theme.Error
	case p.Percent <= 0.5:
		return theme.Warning
	default:
		return theme.Secondary
	}
}
