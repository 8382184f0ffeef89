package results

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/router"
	"github.com/dmvnavigator/dmvnav/internal/screen"
	"github.com/dmvnavigator/dmvnav/internal/screens/review"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/ui/components"
	"github.com/dmvnavigator/dmvnav/internal/ui/layout"
	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

// ResultsScreen displays the score of a finished session.
type ResultsScreen struct {
	summary *session.SessionSummary
	items   []session.ReviewItem
	retake  func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. retake builds the screen that starts a fresh
// session in the same mode; it may be nil.
func New(summary *session.SessionSummary, items []session.ReviewItem, retake func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{summary: summary, items: items, retake: retake}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return fmt.Sprintf("%.0f%%", s.summary.Overall.Percentage)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "v", Description: "Review"},
	}
	if s.retake != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retake"})
	}
	return append(hints,
		layout.KeyHint{Key: "h", Description: "Home"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "v":
		if len(s.items) == 0 {
			return s, nil
		}
		next := review.New(s.items, session.FirstIncorrect(s.items))
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "r":
		if s.retake == nil {
			return s, nil
		}
		next := s.retake()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "h", "enter":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder

	title := "Practice test complete!"
	if sum.Mode.Kind == session.ModeSingleCategory {
		title = sum.Mode.Category + " complete!"
	}
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), width, title))
	b.WriteString("\n\n")

	signal := components.SignalStop
	verdict := fmt.Sprintf("Not yet. %.0f%% is required to pass.", session.PassThreshold)
	verdictColor := theme.Error
	if sum.Overall.Passed {
		signal = components.SignalGo
		verdict = "You passed!"
		verdictColor = theme.Success
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.RenderSignal(signal)))
	b.WriteString("\n")
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(verdictColor).Bold(true), width,
		fmt.Sprintf("%.0f%%  %s", sum.Overall.Percentage, verdict)))
	b.WriteString("\n\n")

	o := sum.Overall
	b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Text), width,
		fmt.Sprintf("Correct: %d    Incorrect: %d    Unanswered: %d    Total: %d",
			o.Correct, o.Incorrect, o.Unanswered, o.Total)))
	b.WriteString("\n")
	b.WriteString(components.Centered(dim, width, "Time: "+formatDuration(sum.Duration)))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("Categories")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for _, cs := range sum.ScopedCategories() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderCategoryRow(cs, cw)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCategoryRow renders one category with its score bar and rating.
func renderCategoryRow(cs session.CategoryScore, cw int) string {
	name := lipgloss.NewStyle().Foreground(theme.Text).Render(truncate(cs.Category, cw/2))
	score := fmt.Sprintf("%d/%d", cs.Correct, cs.Answered)
	if cs.Answered < cs.Total {
		score += fmt.Sprintf(" (%d unanswered)", cs.Total-cs.Answered)
	}

	rating := session.Rate(cs.Percentage)
	tag := lipgloss.NewStyle().Foreground(ratingColor(rating)).Bold(true).Render(rating.DisplayName())
	if cs.Answered == 0 {
		tag = lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skipped")
	}

	header := name + "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(score)
	gap := cw - lipgloss.Width(header) - lipgloss.Width(tag)
	if gap < 1 {
		gap = 1
	}
	bar := components.NewProgressBar("", cs.Percentage/100, true, cw).View()
	return header + strings.Repeat(" ", gap) + tag + "\n" + bar
}

// ratingColor returns the theme color for a category rating.
func ratingColor(r session.Rating) color.Color {
	switch r {
	case session.RatingPass:
		return theme.Success
	case session.RatingReview:
		return theme.Warning
	default:
		return theme.Error
	}
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
