package bank

import (
	"fmt"
	"strings"
)

// validateQuestions performs all integrity checks on the given question set.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	idSet := make(map[int]bool, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d (index %d)", q.ID, i)

		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		idSet[q.ID] = true

		if strings.TrimSpace(q.Category) == "" {
			errs = append(errs, fmt.Sprintf("%s: category must not be empty", prefix))
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: prompt must not be empty", prefix))
		}

		if len(q.Options) < MinOptions {
			errs = append(errs, fmt.Sprintf("%s: needs at least %d options, got %d", prefix, MinOptions, len(q.Options)))
		}
		if len(q.Options) > MaxOptions {
			errs = append(errs, fmt.Sprintf("%s: at most %d options allowed, got %d", prefix, MaxOptions, len(q.Options)))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= MaxOptions || q.CorrectIndex >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("%s: correct index %d out of range for %d options", prefix, q.CorrectIndex, len(q.Options)))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
