package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/bank"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/ui/components"
	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	q, ok := session.CurrentQuestion(s.state, s.env.Bank)
	if !ok {
		return components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
			"\n\n\n  No questions remain in this category.")
	}
	return s.renderQuestion(q, width)
}

// renderQuestion renders the info line, question grid, prompt, options and
// feedback for q.
func (s *QuizScreen) renderQuestion(q bank.Question, width int) string {
	pos := session.CurrentPosition(s.state)
	cw := min(width-4, 76)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Category)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", pos.Index+1, pos.CategoryLen))
	if pos.Categories > 1 {
		infoRight += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("   Category %d/%d", pos.CategoryNum, pos.Categories))
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderGrid(pos)))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	options := lipgloss.NewStyle().Width(cw).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options))
	b.WriteString("\n")

	if s.choice.Revealed {
		b.WriteString(renderFeedback(q, s.choice.ChosenIndex, width, cw))
	} else {
		b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
			"Select (1-4 / A-D) or use arrows + Enter"))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.Warning), width, s.notice))
	}

	return b.String()
}

// renderGrid draws one cell per question in the active category.
func (s *QuizScreen) renderGrid(pos session.Position) string {
	category, ok := session.ActiveCategory(s.state)
	if !ok {
		return ""
	}

	cells := make([]string, 0, pos.CategoryLen)
	for i, id := range s.state.CategoryPositions[category] {
		label := fmt.Sprintf("%d", i+1)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if option, answered := s.state.Answers[id]; answered {
			if q, ok := s.env.Bank.Question(id); ok && q.IsCorrect(option) {
				style = style.Foreground(theme.Success)
			} else {
				style = style.Foreground(theme.Error)
			}
		}
		if i == pos.Index {
			style = style.Bold(true).Underline(true)
			label = "[" + label + "]"
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}

// renderFeedback renders the correct/incorrect banner with the explanation.
func renderFeedback(q bank.Question, chosen, width, cw int) string {
	var b strings.Builder
	b.WriteString("\n")

	if q.IsCorrect(chosen) {
		b.WriteString(components.Centered(theme.Correct, width, "Correct!"))
	} else {
		b.WriteString(components.Centered(theme.Incorrect, width, "Incorrect"))
		b.WriteString("\n")
		b.WriteString(components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
			fmt.Sprintf("Correct answer: %s. %s", bank.OptionLabel(q.CorrectIndex), q.Options[q.CorrectIndex])))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return components.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		"\n\n\n  Shuffling questions...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return components.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
