package errors

import (
	"errors"
	"strings"

	"github.com/randalmurphal/commitlsp/credential"
	"github.com/randalmurphal/commitlsp/git"
	"github.com/randalmurphal/commitlsp/health"
	"github.com/randalmurphal/commitlsp/remote"
	"github.com/randalmurphal/commitlsp/tracker"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Diagnose wraps err in a CLIError when it recognises the cause. Unknown
// errors and errors that already are a CLIError are returned unchanged.
func Diagnose(err error) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	d := &CLIError{Err: err}
	switch {
	case errors.Is(err, git.ErrNotGitRepo):
		d.Message = "This command must be run from within a git repository."
		d.Suggestion = "Run it inside a repository or pass --dir."

	case errors.Is(err, git.ErrNoRemote):
		d.Message = "The git remote does not exist."
		d.Suggestion = "Pass --remote with one of the names listed by 'git remote'."

	case errors.Is(err, remote.ErrInvalidURL):
		d.Message = "The remote URL could not be parsed."
		d.Details = err.Error()
		d.Suggestion = "Check 'git remote -v' and the issue_tracker_url setting."

	case errors.Is(err, credential.ErrEmptyCredential):
		d.Message = "The credentials command printed nothing."
		d.Suggestion = "Run the credentials_command from your config by hand and check that it prints a token."

	case errors.Is(err, credential.ErrCommandFailed):
		d.Message = "The credentials command failed."
		var cmdErr *credential.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
			d.Details = cmdErr.Stderr
		}
		d.Suggestion = "Run the credentials_command from your config by hand and check that it prints a token."

	case tracker.IsAuthentication(err):
		d.Message = "The issue tracker rejected the credential."
		d.Suggestion = "Check that the token has not expired and is allowed to read issues."

	case tracker.IsTransport(err):
		d.Message = "Could not reach the issue tracker."
		d.Details = err.Error()
		d.Suggestion = "Check your network connection and the issue_tracker_url setting."

	case errors.Is(err, tracker.ErrOther):
		d.Message = "The issue tracker returned an unexpected response."
		d.Details = err.Error()

	case errors.Is(err, ErrNoTracker):
		d.Message = "No issue tracker is available for this repository."
		d.Suggestion = "Run 'commit-lsp checkhealth' to see why."

	case errors.Is(err, ErrTicketNotFound):
		d.Message = err.Error()

	case errors.Is(err, health.ErrUnhealthy):
		d.Message = "Some health checks failed."
		d.Details = err.Error()
		d.Suggestion = "Fix the checks marked ERROR above."

	default:
		return err
	}
	return d
}
