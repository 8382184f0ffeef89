package session

import (
	"time"

	"github.com/dmvnavigator/dmvnav/internal/bank"
)

// SessionSummary holds the data displayed on the results screen.
type SessionSummary struct {
	SessionID  string
	Mode       Mode
	Duration   time.Duration
	Overall    OverallScore
	Categories []CategoryScore
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState, b *bank.Bank) *SessionSummary {
	return &SessionSummary{
		SessionID:  state.ID,
		Mode:       state.Mode,
		Duration:   Elapsed(state),
		Overall:    Overall(state, b),
		Categories: CategoryReport(state, b),
	}
}

// ScopedCategories returns only the categories the session traversed.
func (s *SessionSummary) ScopedCategories() []CategoryScore {
	if s.Mode.Kind != ModeSingleCategory {
		return s.Categories
	}
	for _, cs := range s.Categories {
		if cs.Category == s.Mode.Category {
			return []CategoryScore{cs}
		}
	}
	return nil
}
