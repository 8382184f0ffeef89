package bank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every load-time integrity failure.
var ErrMalformed = errors.New("malformed question data")

// ValidationError lists every integrity problem found in a question set.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question bank validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

func (e *ValidationError) Unwrap() error { return ErrMalformed }

// SchemaError indicates a bank document that does not match the bank JSON schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("question bank schema violation: %v", e.Err)
}

func (e *SchemaError) Unwrap() []error { return []error{ErrMalformed, e.Err} }
