package store

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle = errors.New("title is required")
	ErrLocked     = errors.New("app is locked")

	// Shop failures. Typed so callers can render "already owned" vs
	// "insufficient balance" without string matching.
	ErrAlreadyOwned    = errors.New("item already owned")
	ErrInsufficientXP  = errors.New("insufficient XP balance")
	ErrUnknownShopItem = errors.New("unknown shop item")

	ErrDuplicateChallenge = errors.New("a challenge with this title is already active")

	ErrBadPIN     = errors.New("incorrect PIN")
	ErrInvalidPIN = errors.New("PIN must be exactly 4 digits")
)

// NotFoundError identifies a missing record by collection and id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// StateError reports an operation applied to a record in the wrong state,
// e.g. completing an already-completed task.
type StateError struct {
	Kind string
	ID   string
	Msg  string
}

func (e StateError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.ID, e.Msg)
}
