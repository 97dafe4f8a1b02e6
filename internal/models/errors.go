package models

import "errors"

// User-facing validation outcomes. All are recoverable: callers surface the
// message and leave state unchanged.
var (
	ErrLoginRequired        = errors.New("login required")
	ErrEmptyField           = errors.New("name and a valid email are required")
	ErrNameMismatch         = errors.New("name does not match the email used previously")
	ErrPendingSessionExists = errors.New("save or delete the last session first")
	ErrNoPendingSession     = errors.New("no session to save")
	ErrSessionTooShort      = errors.New("session was too short, it was discarded")
	ErrStudyNotFound        = errors.New("study not found")
)

// IncompleteSelectionError names the first missing requirement that blocks
// saving a study plan.
type IncompleteSelectionError struct {
	Missing string
}

func (e *IncompleteSelectionError) Error() string {
	return "incomplete selection: " + e.Missing
}
