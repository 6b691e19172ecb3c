package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathblitz/internal/ui/theme"
)

// MultiChoice is a four-option selector. Number keys 1-4 pick an option
// directly; arrows move the cursor and enter confirms.
type MultiChoice struct {
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "left", "h":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "right", "l":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.Submitted = true
			m.Chosen = i
		}
	}

	return m, nil
}

// Value returns the chosen option label, or "" before submission.
func (m MultiChoice) Value() string {
	if !m.Submitted || m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// View renders the options in a 2×2 grid.
func (m MultiChoice) View() string {
	cells := make([]string, len(m.Options))
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d)  %s", i+1, opt)
		cells[i] = ArcadeButton(label, i == m.Selected, 18)
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		if i+1 < len(cells) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i], "  ", cells[i+1]))
		} else {
			rows = append(rows, cells[i])
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
