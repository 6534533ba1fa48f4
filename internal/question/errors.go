package question

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested question, category or page does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorageFailure wraps a failed insert or delete.
	ErrStorageFailure = errors.New("storage failure")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
