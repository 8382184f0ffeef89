package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dmvnavigator/dmvnav/internal/bank"
	"github.com/dmvnavigator/dmvnav/internal/router"
	"github.com/dmvnavigator/dmvnav/internal/screens/quiz"
	"github.com/dmvnavigator/dmvnav/internal/session"
)

func testOptions() Options {
	return Options{Env: quiz.Env{Bank: bank.MustLoad(), Options: session.SeededOptions(3)}}
}

// drain runs cmd and feeds the resulting message back into the model,
// following chains of navigation commands.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func TestApp_HomeView(t *testing.T) {
	m := newAppModel(testOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 34})
	m = next.(AppModel)

	content := m.render()
	if !strings.Contains(content, "DMVNav") {
		t.Error("expected header branding")
	}
	if !strings.Contains(content, "Home") {
		t.Error("expected Home title")
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(testOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(next.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestApp_StartModeOpensQuiz(t *testing.T) {
	opts := testOptions()
	mode := session.SingleCategory("Fines & Penalties")
	opts.StartMode = &mode

	m := newAppModel(opts)
	m = drain(t, m, m.Init())

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	q, ok := m.router.Active().(*quiz.QuizScreen)
	if !ok {
		t.Fatalf("expected quiz screen, got %T", m.router.Active())
	}
	if q.Status() == "" {
		t.Error("expected the session to be started")
	}
}

func TestApp_EscPops(t *testing.T) {
	m := newAppModel(testOptions())
	m = drain(t, m, func() tea.Msg { return router.PushScreenMsg{Screen: quiz.New(testOptions().Env, session.FullTest())} })
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(t, m, cmd)
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1 after Esc", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("Esc at root should be a no-op")
	}
}

func TestApp_Quit(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
