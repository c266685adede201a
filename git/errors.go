package git

import "errors"

// Git operation errors.
var (
	// ErrNotGitRepo indicates the path is not inside a git repository, or that
	// no registered worktree owns it.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrNoRemote indicates the requested remote has no URL.
	ErrNoRemote = errors.New("remote has no URL")
)

// Error wraps a git command error with context.
type Error struct {
	Op     string // Operation that failed (e.g., "get remote URL")
	Output string // Captured stderr output
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
