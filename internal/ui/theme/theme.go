package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: arcade cabinet on a dark background
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Warning      = lipgloss.Color("#FACC15") // Amber
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FDE047") // Marquee yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Scoreboard cyan
	ArcadePink   = lipgloss.Color("#F472B6") // Combo pink
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Question renders the expression being asked.
	Question = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	BigCombo = lipgloss.NewStyle().
			Foreground(ArcadePink).
			Bold(true)
)

// HUD
var (
	Score = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)

	Lives = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Level = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Bold(true)
)
