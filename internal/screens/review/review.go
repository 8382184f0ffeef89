package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/bank"
	"github.com/dmvnavigator/dmvnav/internal/screen"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/ui/components"
	"github.com/dmvnavigator/dmvnav/internal/ui/layout"
	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

// ReviewScreen is a read-only walk through a finished session's questions.
type ReviewScreen struct {
	items  []session.ReviewItem
	index  int
	wrongs bool // only step through incorrect answers
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen positioned at start.
func New(items []session.ReviewItem, start int) *ReviewScreen {
	if start < 0 || start >= len(items) {
		start = 0
	}
	return &ReviewScreen{items: items, index: start}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	filter := "Only incorrect"
	if s.wrongs {
		filter = "All questions"
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
		{Key: "w", Description: filter},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "right", "n":
		s.index = s.step(+1)
	case "left", "p":
		s.index = s.step(-1)
	case "w":
		s.wrongs = !s.wrongs
		if s.wrongs && !s.isWrong(s.index) {
			s.index = s.step(+1)
		}
	}
	return s, nil
}

// Index returns the position of the item on screen.
func (s *ReviewScreen) Index() int {
	return s.index
}

func (s *ReviewScreen) isWrong(i int) bool {
	it := s.items[i]
	return it.Answered && !it.Correct
}

// step returns the next index in direction dir, honoring the filter, or the
// current index if there is none.
func (s *ReviewScreen) step(dir int) int {
	for i := s.index + dir; i >= 0 && i < len(s.items); i += dir {
		if !s.wrongs || s.isWrong(i) {
			return i
		}
	}
	return s.index
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.items) == 0 {
		return components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "\n\nNothing to review.")
	}
	it := s.items[s.index]
	q := it.Question
	cw := min(width-4, 76)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), width,
		fmt.Sprintf("%s  ·  %d of %d", q.Category, s.index+1, len(s.items))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	choice := components.NewMultiChoice(q.Options, q.CorrectIndex, it.Chosen)
	choice.Revealed = true
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(choice.View())))
	b.WriteString("\n")

	switch {
	case !it.Answered:
		b.WriteString(components.Centered(dim, width,
			fmt.Sprintf("Not answered. Correct answer: %s", bank.OptionLabel(q.CorrectIndex))))
	case it.Correct:
		b.WriteString(components.Centered(theme.Correct, width, "You answered correctly"))
	default:
		b.WriteString(components.Centered(theme.Incorrect, width,
			fmt.Sprintf("You chose %s, correct answer: %s", bank.OptionLabel(it.Chosen), bank.OptionLabel(q.CorrectIndex))))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	return b.String()
}
