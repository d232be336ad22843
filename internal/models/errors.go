package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no word matches the given id
	ErrNotFound = errors.New("word not found")

	// ErrInvalidID is returned when an id is not well-formed for the store
	ErrInvalidID = errors.New("invalid word ID")

	// ErrInvalidWord is matched by every ValidationError
	ErrInvalidWord = errors.New("invalid word")
)

// ValidationError reports a missing required field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Is makes errors.Is(err, ErrInvalidWord) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidWord
}

// StoreError wraps a failure from the persistence layer
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
