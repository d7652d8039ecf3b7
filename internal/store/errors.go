package store

import "fmt"

// NotFoundError is returned when an operation targets a task id that
// is not in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.ID)
}
