package session

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dmvnavigator/dmvnav/internal/bank"
)

// Start begins a new session over b in the given mode. Every category's
// question sequence is shuffled once; the permutation is fixed for the
// lifetime of the returned state.
func Start(b *bank.Bank, mode Mode, opts Options) (*SessionState, error) {
	opts = opts.withDefaults()

	var order []string
	switch mode.Kind {
	case ModeFullTest:
		order = b.Categories()
	case ModeSingleCategory:
		if !b.HasCategory(mode.Category) {
			return nil, fmt.Errorf("start %s: %w: %q", mode, ErrUnknownCategory, mode.Category)
		}
		order = []string{mode.Category}
	default:
		return nil, fmt.Errorf("start: unsupported mode %d", mode.Kind)
	}

	positions := make(map[string][]int, len(order))
	for _, category := range b.Categories() {
		ids := b.CategoryIDs(category)
		opts.Shuffler.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		positions[category] = ids
	}

	return &SessionState{
		ID:                uuid.New().String(),
		Mode:              mode,
		CategoryOrder:     order,
		CategoryPositions: positions,
		Answers:           make(map[int]int),
		Phase:             PhaseInProgress,
		StartedAt:         opts.Clock(),
		clock:             opts.Clock,
	}, nil
}

// Reset discards state and starts again with fresh randomness. All prior
// answers are lost.
func Reset(b *bank.Bank, mode Mode, opts Options) (*SessionState, error) {
	return Start(b, mode, opts)
}

// Restart returns the session to the intake phase, discarding all answers.
// Per-category sequences are re-shuffled by the next Start.
func Restart() *SessionState {
	return New()
}

// ActiveCategory returns the category the cursors currently point into.
func ActiveCategory(state *SessionState) (string, bool) {
	if state.CategoryCursor < 0 || state.CategoryCursor >= len(state.CategoryOrder) {
		return "", false
	}
	return state.CategoryOrder[state.CategoryCursor], true
}

// activeSequence returns the shuffled IDs of the active category.
func activeSequence(state *SessionState) []int {
	category, ok := ActiveCategory(state)
	if !ok {
		return nil
	}
	return state.CategoryPositions[category]
}

// CurrentQuestion returns the question under the cursors. It returns false
// when the active category is exhausted or the session is not in progress;
// exhaustion is a normal signal, not an error.
func CurrentQuestion(state *SessionState, b *bank.Bank) (bank.Question, bool) {
	if state.Phase != PhaseInProgress {
		return bank.Question{}, false
	}
	seq := activeSequence(state)
	if state.QuestionCursor < 0 || state.QuestionCursor >= len(seq) {
		return bank.Question{}, false
	}
	return b.Question(seq[state.QuestionCursor])
}

// SubmitAnswer records option as the answer to questionID. Re-submitting
// overwrites the prior answer. The cursors do not move.
func SubmitAnswer(state *SessionState, b *bank.Bank, questionID, option int) error {
	if state.Phase != PhaseInProgress {
		return fmt.Errorf("submit answer: %w (phase %s)", ErrNotInProgress, state.Phase)
	}

	q, ok := b.Question(questionID)
	if !ok {
		return fmt.Errorf("submit answer: %w: %d", ErrUnknownQuestion, questionID)
	}
	if !slices.Contains(state.CategoryOrder, q.Category) {
		return fmt.Errorf("submit answer: %w: question %d is in %q", ErrOutOfScope, questionID, q.Category)
	}
	if option < 0 || option >= bank.MaxOptions || option >= len(q.Options) {
		return fmt.Errorf("submit answer: %w: %d for question %d with %d options",
			ErrInvalidOption, option, questionID, len(q.Options))
	}

	state.Answers[questionID] = option
	return nil
}

// Advance moves to the next question. At the end of a category it moves to
// the next category in full-test mode; once nothing remains the session
// moves to PhaseShowingResults.
func Advance(state *SessionState, b *bank.Bank) error {
	if state.Phase != PhaseInProgress {
		return fmt.Errorf("advance: %w (phase %s)", ErrNotInProgress, state.Phase)
	}

	seq := activeSequence(state)
	if state.QuestionCursor+1 < len(seq) {
		state.QuestionCursor++
		return nil
	}

	if state.Mode.Kind == ModeFullTest && state.CategoryCursor+1 < len(state.CategoryOrder) {
		state.CategoryCursor++
		state.QuestionCursor = 0
		return nil
	}

	state.QuestionCursor = len(seq)
	finish(state)
	return nil
}

// Retreat moves back one question within the active category. It is a no-op
// at the first question of a category: crossing back over a category
// boundary is not supported.
func Retreat(state *SessionState) error {
	if state.Phase != PhaseInProgress {
		return fmt.Errorf("retreat: %w (phase %s)", ErrNotInProgress, state.Phase)
	}
	if state.QuestionCursor > 0 {
		state.QuestionCursor--
	}
	return nil
}

// JumpTo moves the question cursor to index within the active category.
func JumpTo(state *SessionState, index int) error {
	if state.Phase != PhaseInProgress {
		return fmt.Errorf("jump: %w (phase %s)", ErrNotInProgress, state.Phase)
	}
	seq := activeSequence(state)
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("jump: %w: %d not in [0, %d)", ErrCursorOutOfRange, index, len(seq))
	}
	state.QuestionCursor = index
	return nil
}

// Finish ends the session early and shows results.
func Finish(state *SessionState) error {
	if state.Phase != PhaseInProgress {
		return fmt.Errorf("finish: %w (phase %s)", ErrNotInProgress, state.Phase)
	}
	finish(state)
	return nil
}

func finish(state *SessionState) {
	state.Phase = PhaseShowingResults
	state.FinishedAt = state.now()
}
