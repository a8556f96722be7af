package cocktailapi

import (
	"errors"
	"fmt"
)

// Error is the failure returned by every Client call. Message is safe to show
// to the user.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("cocktailapi %s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("cocktailapi %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// clientSide reports errors that say nothing about the health of the API.
func clientSide(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status >= 400 && e.Status < 500
}
