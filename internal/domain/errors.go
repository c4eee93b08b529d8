package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistence indicates the history store could not be created,
	// opened, or written.
	ErrPersistence = errors.New("history persistence failed")

	// ErrCorruptRecord indicates a history row could not be parsed.
	ErrCorruptRecord = errors.New("corrupt history record")

	// ErrInvalidRange indicates a query end date precedes its start date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrMissingHomeDirectory indicates the default history location
	// could not be determined.
	ErrMissingHomeDirectory = errors.New("home directory unavailable")
)

// CorruptRecordError identifies one unparseable history row.
type CorruptRecordError struct {
	Line int
	Text string
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *CorruptRecordError) Unwrap() []error {
	return []error{ErrCorruptRecord, e.Err}
}
