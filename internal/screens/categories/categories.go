package categories

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmvnavigator/dmvnav/internal/router"
	"github.com/dmvnavigator/dmvnav/internal/screen"
	"github.com/dmvnavigator/dmvnav/internal/screens/quiz"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/ui/components"
	"github.com/dmvnavigator/dmvnav/internal/ui/layout"
	"github.com/dmvnavigator/dmvnav/internal/ui/theme"
)

// CategoriesScreen lets the user pick one category to practice.
type CategoriesScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*CategoriesScreen)(nil)
var _ screen.KeyHintProvider = (*CategoriesScreen)(nil)

// New creates a menu with one entry per category in bank order.
func New(env quiz.Env) *CategoriesScreen {
	groups := env.Bank.ByCategory()

	var items []components.MenuItem
	for _, category := range env.Bank.Categories() {
		n := len(groups[category])
		items = append(items, components.MenuItem{
			Label:  category,
			Detail: fmt.Sprintf("%d questions", n),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz.New(env, session.SingleCategory(category))}
				}
			},
			Disabled: n == 0,
		})
	}
	return &CategoriesScreen{menu: components.NewMenu(items)}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Title() string {
	return "Practice a Category"
}

func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoriesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := components.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), cw, "Choose a category")
	body := heading + "\n\n" + c.menu.View()
	return components.SignFrame(components.Card(body, cw), width, height)
}
