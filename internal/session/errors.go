package session

import "errors"

var (
	// ErrNotInProgress is returned by navigation and answer operations issued
	// while the session is not in PhaseInProgress.
	ErrNotInProgress = errors.New("session is not in progress")

	// ErrInvalidOption is returned when an option index is out of range.
	ErrInvalidOption = errors.New("option index out of range")

	// ErrUnknownQuestion is returned for question IDs not present in the bank.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrOutOfScope is returned when answering a question outside the session's categories.
	ErrOutOfScope = errors.New("question is outside the session scope")

	// ErrUnknownCategory is returned when starting a practice session on a missing category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrCursorOutOfRange is returned by JumpTo for positions outside the active category.
	ErrCursorOutOfRange = errors.New("question position out of range")
)
