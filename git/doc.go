// Package git locates the repository a process is running in and reads its
// remote configuration.
//
// Core types:
//   - Locator: Resolves repository roots, including linked worktrees
//   - WorktreeInfo: One entry of `git worktree list --porcelain`
//
// Example usage:
//
//	loc := git.NewLocator()
//	root, err := loc.RepoRoot(".")
//	if errors.Is(err, git.ErrNotGitRepo) {
//	    // not inside a repository
//	}
//	url, err := loc.RemoteURL(root, "origin")
//
// All git invocations go through a command.Runner, so tests can script the
// exact output of every subprocess with command.MockRunner.
package git
