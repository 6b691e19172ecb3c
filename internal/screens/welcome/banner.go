package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathblitz/internal/ui/theme"
)

const bannerArt = `█▀▄▀█ ▄▀█ ▀█▀ █ █ █▄▄ █   █ ▀█▀ ▀█
█ ▀ █ █▀█  █  █▀█ █▄█ █▄▄ █  █  █▄`

const bannerCompact = "M · A · T · H · B · L · I · T · Z"

// RenderBanner returns the MATHBLITZ marquee in arcade yellow.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
