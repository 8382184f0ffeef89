package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders answer options with a movable cursor. Once Revealed,
// the correct option is shown in green and a wrong choice in red.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	ChosenIndex  int // -1 when nothing chosen
	Revealed     bool
}

// NewMultiChoice creates a new multiple-choice component. chosen is the
// previously recorded answer, or -1.
func NewMultiChoice(options []string, correctIndex, chosen int) MultiChoice {
	selected := 0
	if chosen >= 0 && chosen < len(options) {
		selected = chosen
	}
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     selected,
		ChosenIndex:  chosen,
		Revealed:     chosen >= 0,
	}
}

// Update moves the cursor with up/down (or k/j).
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}
	return m, nil
}

// Choose records option i and reveals the answer.
func (m MultiChoice) Choose(i int) MultiChoice {
	m.Selected = i
	m.ChosenIndex = i
	m.Revealed = true
	return m
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
		case m.Revealed && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect returns true if the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.ChosenIndex >= 0 && m.ChosenIndex == m.CorrectIndex
}
