package session

import "github.com/dmvnavigator/dmvnav/internal/bank"

// PassThreshold is the overall percentage needed to pass.
const PassThreshold = 80.0

// ReviewThreshold is the category percentage below which a category needs study.
const ReviewThreshold = 60.0

// OverallScore is the aggregate result of a session against the whole bank.
type OverallScore struct {
	Total      int
	Correct    int
	Incorrect  int
	Unanswered int
	Percentage float64 // 100 * Correct / Total
	Passed     bool
}

// CategoryScore is the result for a single category.
type CategoryScore struct {
	Category   string
	Total      int
	Answered   int
	Correct    int
	Percentage float64 // 100 * Correct / Answered
}

// Rating classifies a category percentage.
type Rating string

const (
	RatingPass   Rating = "pass"
	RatingReview Rating = "review"
	RatingStudy  Rating = "study"
)

// Rate returns the rating for a percentage.
func Rate(percentage float64) Rating {
	switch {
	case percentage >= PassThreshold:
		return RatingPass
	case percentage >= ReviewThreshold:
		return RatingReview
	default:
		return RatingStudy
	}
}

// DisplayName returns a human-readable label for the rating.
func (r Rating) DisplayName() string {
	switch r {
	case RatingPass:
		return "Pass"
	case RatingReview:
		return "Review"
	default:
		return "Study"
	}
}

// Overall scores the session's answers against the whole bank. Total is the
// bank size regardless of mode.
func Overall(state *SessionState, b *bank.Bank) OverallScore {
	s := OverallScore{Total: b.Len()}

	answered := 0
	for id, option := range state.Answers {
		q, ok := b.Question(id)
		if !ok {
			continue
		}
		answered++
		if q.IsCorrect(option) {
			s.Correct++
		}
	}

	s.Incorrect = answered - s.Correct
	s.Unanswered = s.Total - answered
	if s.Total > 0 {
		s.Percentage = 100 * float64(s.Correct) / float64(s.Total)
	}
	s.Passed = s.Percentage >= PassThreshold
	return s
}

// ByCategory scores each category of the bank. Unlike Overall, the
// percentage denominator is the number of answered questions.
func ByCategory(state *SessionState, b *bank.Bank) map[string]CategoryScore {
	report := CategoryReport(state, b)
	out := make(map[string]CategoryScore, len(report))
	for _, cs := range report {
		out[cs.Category] = cs
	}
	return out
}

// CategoryReport is ByCategory in the bank's first-seen category order.
func CategoryReport(state *SessionState, b *bank.Bank) []CategoryScore {
	groups := b.ByCategory()
	categories := b.Categories()

	report := make([]CategoryScore, 0, len(categories))
	for _, category := range categories {
		cs := CategoryScore{Category: category}
		for _, e := range groups[category] {
			cs.Total++
			option, answered := state.Answers[e.ID]
			if !answered {
				continue
			}
			cs.Answered++
			if e.Question.IsCorrect(option) {
				cs.Correct++
			}
		}
		if cs.Answered > 0 {
			cs.Percentage = 100 * float64(cs.Correct) / float64(cs.Answered)
		}
		report = append(report, cs)
	}
	return report
}
