package command

import "strings"

// Error describes a command that could not be started or exited unsuccessfully.
type Error struct {
	Command  string   // Executable that was run
	Args     []string // Arguments passed to the executable
	Output   string   // Captured stderr output
	ExitCode int      // Exit status, or -1 if the process never ran
	Err      error    // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Output
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CommandLine returns the command and its arguments joined by spaces.
func (e *Error) CommandLine() string {
	return strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
}
