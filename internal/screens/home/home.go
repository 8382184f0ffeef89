package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/router"
	"github.com/dmvnavigator/dmvnav/internal/screen"
	"github.com/dmvnavigator/dmvnav/internal/screens/categories"
	"github.com/dmvnavigator/dmvnav/internal/screens/quiz"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/ui/components"
	"github.com/dmvnavigator/dmvnav/internal/ui/layout"
	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

const titleFull = `╔╦╗╔╦╗╦  ╦  ╔╗╔╔═╗╦  ╦
 ║║║║║╚╗╔╝  ║║║╠═╣╚╗╔╝
═╩╝╩ ╩ ╚╝   ╝╚╝╩ ╩ ╚╝ `

const titleCompact = "D · M · V   N · A · V"

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	questions  int
	categories int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env quiz.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "FULL PRACTICE TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(env, session.FullTest())}
			}
		}},
		{Label: "PRACTICE A CATEGORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: categories.New(env)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		questions:  env.Bank.Len(),
		categories: len(env.Bank.Categories()),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.RenderSignal(components.SignalGo)))
	}
	sections = append(sections, renderStatsBar(h.questions, h.categories, cw))
	sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, h.menu.View()))

	return components.SignFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.SignYellow).Bold(true)
	title := titleFull
	if compact {
		title = titleCompact
	}
	subtitle := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Driver's license written test practice")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + subtitle)
}

// renderStatsBar renders the bank stats in a bordered box matching content width.
func renderStatsBar(questions, categories, cw int) string {
	count := lipgloss.NewStyle().Foreground(theme.SignYellow).Bold(true)
	pass := lipgloss.NewStyle().Foreground(theme.SignCyan).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		count.Render(fmt.Sprintf("%d QUESTIONS", questions)),
		count.Render(fmt.Sprintf("%d CATEGORIES", categories)),
		pass.Render(fmt.Sprintf("%.0f%% TO PASS", session.PassThreshold)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.SignCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
