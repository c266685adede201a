// Package testutil provides helpers for tests that need real git repositories,
// linked worktrees, or ticket fixture folders.
package testutil
