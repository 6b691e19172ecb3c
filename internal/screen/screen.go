package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HUDProvider is implemented by screens that show the score, level and
// lives in the header.
type HUDProvider interface {
	HUD() *layout.HUD
}

// EngineEventsMsg carries the events the engine emitted since the last
// message was processed, in emission order.
type EngineEventsMsg struct {
	Events []session.Event
}
