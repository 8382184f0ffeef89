package bank

import "slices"

// Bank is an immutable, ordered question set with a precomputed category index.
type Bank struct {
	questions  []Question
	byID       map[int]int
	categories []string
	byCategory map[string][]int
}

// New validates the given questions and builds a Bank from them.
// The slice is copied; later changes by the caller are not observed.
func New(questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return buildBank(questions), nil
}

// buildBank constructs the indices. Callers must have validated questions.
func buildBank(questions []Question) *Bank {
	b := &Bank{
		questions:  make([]Question, len(questions)),
		byID:       make(map[int]int, len(questions)),
		byCategory: make(map[string][]int),
	}

	for i, q := range questions {
		b.questions[i] = q.clone()
		b.byID[q.ID] = i

		// Category order is first-seen order over the natural order.
		if _, seen := b.byCategory[q.Category]; !seen {
			b.categories = append(b.categories, q.Category)
		}
		b.byCategory[q.Category] = append(b.byCategory[q.Category], q.ID)
	}

	return b
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns all questions in natural order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// Question returns the question with the given ID.
func (b *Bank) Question(id int) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i].clone(), true
}

// Categories returns category names in first-seen order.
func (b *Bank) Categories() []string {
	return slices.Clone(b.categories)
}

// HasCategory reports whether any question belongs to category.
func (b *Bank) HasCategory(category string) bool {
	_, ok := b.byCategory[category]
	return ok
}

// CategoryIDs returns the question IDs of a category in natural order.
func (b *Bank) CategoryIDs(category string) []int {
	return slices.Clone(b.byCategory[category])
}

// CategoryIndex returns a copy of the category to question-ID index.
func (b *Bank) CategoryIndex() map[string][]int {
	out := make(map[string][]int, len(b.byCategory))
	for k, ids := range b.byCategory {
		out[k] = slices.Clone(ids)
	}
	return out
}

// ByCategory returns category -> ordered (ID, Question) pairs, in the bank's natural order.
func (b *Bank) ByCategory() map[string][]Entry {
	out := make(map[string][]Entry, len(b.byCategory))
	for category, ids := range b.byCategory {
		entries := make([]Entry, 0, len(ids))
		for _, id := range ids {
			entries = append(entries, Entry{ID: id, Question: b.questions[b.byID[id]].clone()})
		}
		out[category] = entries
	}
	return out
}
