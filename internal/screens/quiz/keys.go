package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/dmvnavigator/dmvnav/internal/ui/layout"
)

type keyMap struct {
	Answer key.Binding
	Select key.Binding
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Finish key.Binding
	Reset  key.Binding
}

var keys = keyMap{
	Answer: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"),
		key.WithHelp("1-4", "Answer"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←", "Prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→", "Next"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "First"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "Last"),
	),
	Finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "Finish"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reset"),
	),
}

// optionIndex maps an answer key to an option index.
func optionIndex(k string) (int, bool) {
	switch k {
	case "1", "a":
		return 0, true
	case "2", "b":
		return 1, true
	case "3", "c":
		return 2, true
	case "4", "d":
		return 3, true
	}
	return 0, false
}

// Hints converts bindings to footer hints.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
