package credential

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConfigured indicates no credentials command was given.
	ErrNotConfigured = errors.New("no credentials command configured")

	// ErrCommandFailed indicates the credentials command could not be run or
	// exited unsuccessfully.
	ErrCommandFailed = errors.New("credentials command failed")

	// ErrEmptyCredential indicates the command succeeded but printed nothing.
	ErrEmptyCredential = errors.New("credentials command printed nothing")
)

// CommandError describes a failed credentials command.
// It carries stderr only; stdout may hold a partial secret and is dropped.
type CommandError struct {
	Command  string // Executable name
	ExitCode int    // -1 when the process could not be started
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "credentials command %q", e.Command)
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " exited with status %d", e.ExitCode)
	} else {
		b.WriteString(" could not be started")
	}
	if e.Stderr != "" {
		b.WriteString(": ")
		b.WriteString(e.Stderr)
	} else if e.ExitCode < 0 && e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns ErrCommandFailed so callers can match with errors.Is.
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}
