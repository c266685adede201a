package command

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Run executes name with args in workDir and returns trimmed stdout.
	// An empty workDir runs the command in the current directory.
	Run(workDir, name string, args ...string) (string, error)
}

// ExecRunner runs commands using os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner that executes real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
// stdout and stderr are captured separately; on failure the returned *Error
// carries stderr only.
func (r *ExecRunner) Run(workDir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &Error{
			Command:  name,
			Args:     args,
			Output:   strings.TrimSpace(stderr.String()),
			ExitCode: exitCode,
			Err:      err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
