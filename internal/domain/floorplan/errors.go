package floorplan

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound    = errors.New("floor plan not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrVersionConflict = errors.New("version conflict")
	ErrAlreadyBooked   = errors.New("room is already booked")
	ErrNotBooked       = errors.New("room is not currently booked")
	ErrForbidden       = errors.New("room is booked by another user")
	ErrInvalidBatch    = errors.New("invalid change batch")
	ErrValidation      = errors.New("validation failed")
	ErrNoRoomAvailable = errors.New("no room can hold the requested participants")
)

// ConflictError is returned when a caller's version is stale. It carries the
// version the caller has to refresh to.
type ConflictError struct {
	CurrentVersion int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: current version is %d", e.CurrentVersion)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// ValidationError names the offending field of a rejected plan or request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// BatchError locates the change that made a sync batch malformed.
type BatchError struct {
	Index  int
	Reason string
}

func (e *BatchError) Error() string {
	if e.Index < 0 {
		return e.Reason
	}
	return fmt.Sprintf("changes[%d]: %s", e.Index, e.Reason)
}

func (e *BatchError) Is(target error) bool {
	return target == ErrInvalidBatch
}
