package session

import "errors"

var (
	// ErrNoActiveSession indicates an operation requires an active session.
	ErrNoActiveSession = errors.New("no active session")
	// ErrSessionAlreadyActive indicates a session is already in progress.
	ErrSessionAlreadyActive = errors.New("session already active")
	// ErrInvalidTransition indicates a state change the transition table forbids.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrCorruptLog indicates a persisted event record failed to parse.
	ErrCorruptLog = errors.New("corrupt session log")
)
