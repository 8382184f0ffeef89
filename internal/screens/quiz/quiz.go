package quiz

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/dmvnavigator/dmvnav/internal/bank"
	"github.com/dmvnavigator/dmvnav/internal/router"
	"github.com/dmvnavigator/dmvnav/internal/screen"
	"github.com/dmvnavigator/dmvnav/internal/screens/results"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/ui/components"
	"github.com/dmvnavigator/dmvnav/internal/ui/layout"
)

// autoAdvanceDelay is how long feedback stays up before moving on.
const autoAdvanceDelay = 1500 * time.Millisecond

// QuizScreen drives one session: it shows the current question, records
// answers and navigates the sequence.
type QuizScreen struct {
	env    Env
	mode   session.Mode
	state  *session.SessionState
	choice components.MultiChoice
	qid    int // question the choice component was built for
	notice string
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that starts a session in mode on Init.
func New(env Env, mode session.Mode) *QuizScreen {
	return &QuizScreen{env: env, mode: mode, qid: -1}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startSession()
}

func (s *QuizScreen) Title() string {
	if s.mode.Kind == session.ModeSingleCategory {
		return "Practice: " + s.mode.Category
	}
	return "Full Practice Test"
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	if s.state == nil {
		return ""
	}
	score := session.Overall(s.state, s.env.Bank)
	return fmt.Sprintf("✓ %d  ✗ %d  ○ %d", score.Correct, score.Incorrect, score.Unanswered)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	return Hints(keys.Answer, keys.Prev, keys.Next, keys.Finish, keys.Reset)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case autoAdvanceMsg:
		return s.handleAutoAdvance(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// startSession shuffles the bank and starts a new session.
func (s *QuizScreen) startSession() tea.Cmd {
	env, mode := s.env, s.mode
	return func() tea.Msg {
		state, err := session.Start(env.Bank, mode, env.Options)
		return sessionStartedMsg{State: state, Err: err}
	}
}

func (s *QuizScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.env.logger().Error("start session", "mode", s.mode.String(), "err", msg.Err)
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.qid = -1
	s.notice = ""
	s.env.logger().Info("session started",
		"session_id", s.state.ID,
		"mode", s.mode.String(),
		"categories", len(s.state.CategoryOrder))
	s.syncChoice()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil || s.state.Phase != session.PhaseInProgress {
		return s, nil
	}

	s.notice = ""
	switch {
	case key.Matches(msg, keys.Answer):
		i, _ := optionIndex(msg.String())
		return s.answer(i)

	case key.Matches(msg, keys.Select):
		if s.choice.Revealed && s.choice.Selected == s.choice.ChosenIndex {
			return s.advance()
		}
		return s.answer(s.choice.Selected)

	case key.Matches(msg, keys.Next):
		return s.advance()

	case key.Matches(msg, keys.Prev):
		s.navigate(session.Retreat(s.state))
		return s, nil

	case key.Matches(msg, keys.First):
		s.navigate(session.JumpTo(s.state, 0))
		return s, nil

	case key.Matches(msg, keys.Last):
		pos := session.CurrentPosition(s.state)
		s.navigate(session.JumpTo(s.state, pos.CategoryLen-1))
		return s, nil

	case key.Matches(msg, keys.Finish):
		if err := session.Finish(s.state); err != nil {
			s.notice = err.Error()
			return s, nil
		}
		return s, s.showResults()

	case key.Matches(msg, keys.Reset):
		return s.reset()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// answer records option i for the current question and shows feedback.
func (s *QuizScreen) answer(i int) (screen.Screen, tea.Cmd) {
	q, ok := session.CurrentQuestion(s.state, s.env.Bank)
	if !ok {
		return s, nil
	}
	if err := session.SubmitAnswer(s.state, s.env.Bank, q.ID, i); err != nil {
		if errors.Is(err, session.ErrInvalidOption) {
			s.notice = fmt.Sprintf("This question has only %d options", len(q.Options))
			return s, nil
		}
		s.notice = err.Error()
		return s, nil
	}

	s.choice = s.choice.Choose(i)
	s.env.logger().Debug("answer recorded",
		"session_id", s.state.ID,
		"question_id", q.ID,
		"option", bank.OptionLabel(i),
		"correct", q.IsCorrect(i))

	id, qid := s.state.ID, q.ID
	return s, tea.Tick(autoAdvanceDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{SessionID: id, QuestionID: qid}
	})
}

// handleAutoAdvance moves on after feedback, unless the user already moved
// or this is the last question of the category.
func (s *QuizScreen) handleAutoAdvance(msg autoAdvanceMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase != session.PhaseInProgress || s.state.ID != msg.SessionID {
		return s, nil
	}
	q, ok := session.CurrentQuestion(s.state, s.env.Bank)
	if !ok || q.ID != msg.QuestionID {
		return s, nil
	}
	pos := session.CurrentPosition(s.state)
	if pos.Index >= pos.CategoryLen-1 {
		return s, nil
	}
	return s.advance()
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := session.Advance(s.state, s.env.Bank); err != nil {
		s.notice = err.Error()
		return s, nil
	}
	if s.state.Phase == session.PhaseShowingResults {
		return s, s.showResults()
	}
	s.syncChoice()
	return s, nil
}

func (s *QuizScreen) navigate(err error) {
	if err != nil {
		s.notice = err.Error()
		return
	}
	s.syncChoice()
}

func (s *QuizScreen) reset() (screen.Screen, tea.Cmd) {
	state, err := session.Reset(s.env.Bank, s.mode, s.env.Options)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.env.logger().Info("session reset", "previous_session_id", s.state.ID, "session_id", state.ID)
	s.state = state
	s.qid = -1
	s.syncChoice()
	s.notice = "Test reset with a fresh shuffle"
	return s, nil
}

// syncChoice rebuilds the option selector when the current question changed.
func (s *QuizScreen) syncChoice() {
	q, ok := session.CurrentQuestion(s.state, s.env.Bank)
	if !ok || q.ID == s.qid {
		return
	}
	chosen, answered := s.state.Answers[q.ID]
	if !answered {
		chosen = -1
	}
	s.choice = components.NewMultiChoice(q.Options, q.CorrectIndex, chosen)
	s.qid = q.ID
}

// showResults logs the outcome and replaces this screen with the results.
func (s *QuizScreen) showResults() tea.Cmd {
	summary := session.BuildSummary(s.state, s.env.Bank)
	s.env.logger().Info("session finished",
		"session_id", summary.SessionID,
		"mode", summary.Mode.String(),
		"correct", summary.Overall.Correct,
		"total", summary.Overall.Total,
		"percentage", summary.Overall.Percentage,
		"passed", summary.Overall.Passed,
		"duration", summary.Duration)

	env, mode := s.env, s.mode
	retake := func() screen.Screen { return New(env, mode) }
	next := results.New(summary, session.Review(s.state, s.env.Bank), retake)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
