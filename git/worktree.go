package git

import "strings"

// WorktreeInfo represents a registered git worktree.
type WorktreeInfo struct {
	Path     string // Filesystem path to the worktree
	Branch   string // Branch checked out in the worktree
	Commit   string // HEAD commit SHA
	Bare     bool   // Entry describes a bare repository
	Prunable bool   // Git considers the registration stale
}

// ListWorktrees returns all worktrees registered for the repository containing dir.
// The main worktree is always listed first.
func (l *Locator) ListWorktrees(dir string) ([]WorktreeInfo, error) {
	output, err := l.runGit(dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, wrapError("list worktrees", err)
	}
	return parseWorktreeList(output), nil
}

func parseWorktreeList(output string) []WorktreeInfo {
	var worktrees []WorktreeInfo
	var current WorktreeInfo

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if current.Path != "" {
				worktrees = append(worktrees, current)
				current = WorktreeInfo{}
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "worktree "):
			// A new record can start without a blank separator when the
			// runner trimmed the output.
			if current.Path != "" {
				worktrees = append(worktrees, current)
				current = WorktreeInfo{}
			}
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.Commit = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			// Format: branch refs/heads/branch-name
			ref := strings.TrimPrefix(line, "branch ")
			current.Branch = strings.TrimPrefix(ref, "refs/heads/")
		case line == "detached":
			current.Branch = "(detached)"
		case line == "bare":
			current.Bare = true
		case strings.HasPrefix(line, "prunable"):
			current.Prunable = true
		}
	}

	// Don't forget the last entry
	if current.Path != "" {
		worktrees = append(worktrees, current)
	}

	return worktrees
}
