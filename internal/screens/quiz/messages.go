package quiz

import "github.com/dmvnavigator/dmvnav/internal/session"

// sessionStartedMsg is sent when the session has been shuffled and started.
type sessionStartedMsg struct {
	State *session.SessionState
	Err   error
}

// autoAdvanceMsg fires a moment after an answer is recorded.
type autoAdvanceMsg struct {
	SessionID  string
	QuestionID int
}
