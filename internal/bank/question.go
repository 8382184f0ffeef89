package bank

// MaxOptions is the largest number of options a question may carry.
const MaxOptions = 4

// MinOptions is the smallest number of options a question may carry.
const MinOptions = 2

// Question is a single multiple-choice question. Questions are immutable once loaded.
type Question struct {
	ID           int      `json:"id"`
	Category     string   `json:"category"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation,omitempty"`
}

// IsCorrect reports whether option is the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectIndex
}

// OptionLabel returns the letter shown next to option i ("A" for 0).
func OptionLabel(i int) string {
	if i < 0 || i >= 26 {
		return "?"
	}
	return string(rune('A' + i))
}

// clone returns a deep copy so callers cannot alias the bank's option slices.
func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

// Entry pairs a question with its ID inside a category grouping.
type Entry struct {
	ID       int
	Question Question
}
