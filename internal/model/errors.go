package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrDuplicateEmail = errors.New("a player with that email already exists")
	ErrDuplicatePhone = errors.New("a player with that phone already exists")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotTaken           = errors.New("slot is already reserved")
	ErrSlotPast            = errors.New("slot is in the past")
	ErrSlotInvalid         = errors.New("slot is not on the schedule")
)

// ValidationError carries one human-readable message per failing field.
// A record is valid iff the map is empty.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from per-field messages,
// dropping empty (valid) entries. Returns nil if every field passed.
func NewValidationError(fields map[string]string) *ValidationError {
	failed := make(map[string]string)
	for field, msg := range fields {
		if msg != "" {
			failed[field] = msg
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &ValidationError{Fields: failed}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
