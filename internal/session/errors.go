// Package session holds resume editing state: a pure reducer that applies
// actions to a state value, and an in-memory store of live sessions.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// SessionNotFoundError indicates an unknown or expired session
type SessionNotFoundError struct {
	ID uuid.UUID
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ItemNotFoundError indicates an action targeted an id that is not in the section
type ItemNotFoundError struct {
	Section types.SectionType
	ID      string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s item not found: %s", e.Section, e.ID)
}

// InvalidActionError indicates an action that cannot apply to the state
type InvalidActionError struct {
	Message string
	Cause   error
}

func (e *InvalidActionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid action: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid action: %s", e.Message)
}

func (e *InvalidActionError) Unwrap() error {
	return e.Cause
}

func invalid(format string, args ...any) error {
	return &InvalidActionError{Message: fmt.Sprintf(format, args...)}
}
