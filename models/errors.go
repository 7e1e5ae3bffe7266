package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrScanInProgress         = errors.New("scan in progress")
	ErrScanNotRunning         = errors.New("scan is no longer running")
	ErrScanExecutionFailure   = errors.New("scan execution failure")
	ErrRedactionViolation     = errors.New("redaction violation")
)

type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type InvalidTransitionError struct {
	Resource string
	ID       string
	From     string
	To       string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for %s %s: %s -> %s", e.Resource, e.ID, e.From, e.To)
}

func (e InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ConcurrentModificationError means the row changed between the caller's
// read and its write. Actual is the status found at write time, so the
// caller can retry with it.
type ConcurrentModificationError struct {
	Resource string
	ID       string
	Expected string
	Actual   string
}

func (e ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently: expected status %s, found %s", e.Resource, e.ID, e.Expected, e.Actual)
}

func (e ConcurrentModificationError) Is(target error) bool {
	return target == ErrConcurrentModification
}

type ScanExecutionError struct {
	ScanID string
	Stage  string
	Err    error
}

func (e ScanExecutionError) Error() string {
	return fmt.Sprintf("scan %s failed during %s: %s", e.ScanID, e.Stage, e.Err)
}

func (e ScanExecutionError) Is(target error) bool {
	return target == ErrScanExecutionFailure
}

func (e ScanExecutionError) Unwrap() error {
	return e.Err
}

// RedactionViolationError never carries the offending value.
type RedactionViolationError struct {
	Field  string
	Reason string
}

func (e RedactionViolationError) Error() string {
	return fmt.Sprintf("refusing to store unredacted %s: %s", e.Field, e.Reason)
}

func (e RedactionViolationError) Is(target error) bool {
	return target == ErrRedactionViolation
}
