package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

// Signal selects which lamp of the traffic light is lit.
type Signal int

const (
	SignalIdle Signal = iota // all lamps dim
	SignalStop
	SignalCaution
	SignalGo
)

// RenderSignal draws a small horizontal traffic light.
func RenderSignal(s Signal) string {
	lamp := func(lit bool, c lipgloss.Style) string {
		if lit {
			return c.Render("●")
		}
		return lipgloss.NewStyle().Foreground(theme.Border).Render("○")
	}

	lamps := []string{
		lamp(s == SignalStop, lipgloss.NewStyle().Foreground(theme.Error)),
		lamp(s == SignalCaution, lipgloss.NewStyle().Foreground(theme.Warning)),
		lamp(s == SignalGo, lipgloss.NewStyle().Foreground(theme.Success)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.TextDim).
		Padding(0, 1).
		Render(strings.Join(lamps, "  "))
}
