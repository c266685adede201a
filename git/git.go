package git

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/randalmurphal/commitlsp/command"
)

// Locator answers "which repository is this" questions.
type Locator struct {
	runner command.Runner
	logger *slog.Logger
}

// Option configures Locator.
type Option func(*Locator)

// NewLocator creates a Locator that shells out to git.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{
		runner: command.NewExecRunner(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithRunner sets a custom command runner for git operations.
// This is primarily used for testing to inject mock command execution.
func WithRunner(runner command.Runner) Option {
	return func(l *Locator) {
		l.runner = runner
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// RepoRoot returns the top-level working directory of the repository that
// contains dir.
//
// The plain `--show-toplevel` query covers ordinary clones. When it fails, the
// registered worktrees are scanned for the one whose metadata directory is the
// one dir resolves to; the main worktree is used if none matches exactly.
func (l *Locator) RepoRoot(dir string) (string, error) {
	top, err := l.runGit(dir, "rev-parse", "--show-toplevel")
	if err == nil && top != "" {
		return top, nil
	}
	l.logger.Debug("show-toplevel failed, scanning worktrees", "dir", dir, "error", err)

	target, err := l.runGit(dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", ErrNotGitRepo
	}
	common, err := l.runGit(dir, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", ErrNotGitRepo
	}
	target = filepath.Clean(target)
	common = filepath.Clean(common)

	worktrees, err := l.ListWorktrees(dir)
	if err != nil {
		return "", ErrNotGitRepo
	}

	var main string
	for _, wt := range worktrees {
		gitDir, err := l.runGit(wt.Path, "rev-parse", "--absolute-git-dir")
		if err != nil {
			// Stale registration; the directory is gone or no longer a checkout.
			l.logger.Debug("skipping worktree", "path", wt.Path, "error", err)
			continue
		}
		gitDir = filepath.Clean(gitDir)

		if gitDir == target {
			return wt.Path, nil
		}
		if main == "" && gitDir == common {
			main = wt.Path
		}
	}

	if main != "" {
		return main, nil
	}
	return "", ErrNotGitRepo
}

// RemoteURL returns the URL git would use for the named remote, honouring
// insteadOf rewrites.
func (l *Locator) RemoteURL(dir, remote string) (string, error) {
	url, err := l.runGit(dir, "ls-remote", "--get-url", remote)
	if err != nil {
		return "", wrapError("get remote URL", err)
	}
	// ls-remote echoes the remote name back when it has no configured URL.
	if url == "" || url == remote {
		return "", &Error{Op: "get remote URL", Err: ErrNoRemote}
	}
	return url, nil
}

// runGit executes a git command and returns stdout.
func (l *Locator) runGit(dir string, args ...string) (string, error) {
	return l.runner.Run(dir, "git", args...)
}

func wrapError(op string, err error) error {
	var cmdErr *command.Error
	if errors.As(err, &cmdErr) {
		return &Error{Op: op, Output: cmdErr.Output, Err: err}
	}
	return &Error{Op: op, Err: err}
}
