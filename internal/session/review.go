package session

import "github.com/dmvnavigator/dmvnav/internal/bank"

// ReviewItem is one question as seen in the post-test review.
type ReviewItem struct {
	Question bank.Question
	Chosen   int // -1 when unanswered
	Answered bool
	Correct  bool
}

// Review lists the questions of the session's scope in traversal order with
// the recorded answers.
func Review(state *SessionState, b *bank.Bank) []ReviewItem {
	var items []ReviewItem
	for _, category := range state.CategoryOrder {
		for _, id := range state.CategoryPositions[category] {
			q, ok := b.Question(id)
			if !ok {
				continue
			}
			item := ReviewItem{Question: q, Chosen: -1}
			if option, answered := state.Answers[id]; answered {
				item.Chosen = option
				item.Answered = true
				item.Correct = q.IsCorrect(option)
			}
			items = append(items, item)
		}
	}
	return items
}

// FirstIncorrect returns the index of the first answered-but-wrong item, or
// 0 if every answer was correct.
func FirstIncorrect(items []ReviewItem) int {
	for i, it := range items {
		if it.Answered && !it.Correct {
			return i
		}
	}
	return 0
}
