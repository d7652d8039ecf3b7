package task

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPriority is returned when priority text matches no level.
	ErrInvalidPriority = errors.New("invalid priority level")
)

// DueDateError reports due-date text that failed to parse. It carries
// the underlying parser error.
type DueDateError struct {
	Text string
	Err  error
}

func (e *DueDateError) Error() string {
	return fmt.Sprintf("invalid date format: %v", e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DueDateError) Unwrap() error {
	return e.Err
}
