package model

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle phase of the child process view
type SessionStatus string

const (
	// SessionIdle means no child process exists and arguments are editable
	SessionIdle SessionStatus = "Idle"

	// SessionRunning means the child process is alive and attached to a terminal
	SessionRunning SessionStatus = "Running"

	// SessionExited means the child finished and the outcome awaits acknowledgement
	SessionExited SessionStatus = "Exited"
)

// String returns the string representation of SessionStatus
func (s SessionStatus) String() string {
	return string(s)
}

// HoldsHandle returns true while a session handle exists (running or not yet acknowledged)
func (s SessionStatus) HoldsHandle() bool {
	return s == SessionRunning || s == SessionExited
}

// SessionID identifies a single run
type SessionID string

// NewSessionID generates a unique session ID
func NewSessionID() SessionID {
	return SessionID("session-" + uuid.NewString())
}

// Outcome is the terminal-style exit status of a child process
type Outcome struct {
	ExitCode int
	// Signal is empty unless the process was terminated by a signal
	Signal string
}

// Succeeded returns true for a clean zero exit
func (o Outcome) Succeeded() bool {
	return o.ExitCode == 0 && o.Signal == ""
}

// Summary returns the completion message shown to the user
func (o Outcome) Summary(program string) string {
	switch {
	case o.Signal != "":
		return fmt.Sprintf("%s failed with signal %s", program, o.Signal)
	case o.ExitCode != 0:
		return fmt.Sprintf("%s failed with code %d", program, o.ExitCode)
	default:
		return fmt.Sprintf("%s completed", program)
	}
}

// SessionState is the tagged state of the session handle
type SessionState struct {
	Status  SessionStatus
	ID      SessionID
	Outcome Outcome // valid only when Status is SessionExited
}

// IdleState returns the initial state
func IdleState() SessionState {
	return SessionState{Status: SessionIdle}
}
