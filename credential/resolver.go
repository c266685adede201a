package credential

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/randalmurphal/commitlsp/command"
)

// Resolver runs credentials commands.
type Resolver struct {
	runner  command.Runner
	workDir string
	logger  *slog.Logger
}

// Option configures Resolver.
type Option func(*Resolver)

// WithRunner sets the command runner. Used by tests.
func WithRunner(runner command.Runner) Option {
	return func(r *Resolver) {
		r.runner = runner
	}
}

// WithWorkDir sets the directory the command runs in.
func WithWorkDir(dir string) Option {
	return func(r *Resolver) {
		r.workDir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver that executes real processes.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		runner: command.NewExecRunner(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs argv[0] with argv[1:] and returns its trimmed stdout.
func (r *Resolver) Resolve(argv []string) (Secret, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return Secret{}, ErrNotConfigured
	}

	out, err := r.runner.Run(r.workDir, argv[0], argv[1:]...)
	if err != nil {
		cmdErr := &CommandError{Command: argv[0], ExitCode: -1, Err: err}
		var runErr *command.Error
		if errors.As(err, &runErr) {
			cmdErr.ExitCode = runErr.ExitCode
			cmdErr.Stderr = strings.TrimSpace(runErr.Output)
		}
		r.logger.Warn("credentials command failed",
			"command", argv[0],
			"exit_code", cmdErr.ExitCode,
			"stderr", cmdErr.Stderr,
		)
		return Secret{}, cmdErr
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return Secret{}, ErrEmptyCredential
	}

	r.logger.Debug("credentials command succeeded", "command", argv[0])
	return NewSecret(out), nil
}
