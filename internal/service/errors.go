package service

import (
	"errors"
	"fmt"
)

var (
	ErrAdminIdentityMissing = errors.New("acting admin identity is missing")
	ErrAlreadyProcessed     = errors.New("request has already been processed")
	ErrRequestRequired      = errors.New("request is required")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrInvalidInput         = errors.New("invalid input")
)

// PersistenceError reports a failed store call. Writes that happened before
// Op are not rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsPersistenceFailure(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
