package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestRepo(t *testing.T) {
	dir := SetupTestRepo(t)

	assert.DirExists(t, filepath.Join(dir, ".git"))
	assert.FileExists(t, filepath.Join(dir, "README.md"))
	assert.Equal(t, dir, GitOutput(t, dir, "rev-parse", "--show-toplevel"))
	assert.Len(t, GitOutput(t, dir, "rev-parse", "HEAD"), 40)
}

func TestAddWorktree(t *testing.T) {
	repo := SetupTestRepo(t)
	wt := AddWorktree(t, repo, "feature")

	assert.FileExists(t, filepath.Join(wt, ".git"))
	assert.Equal(t, "feature", GitOutput(t, wt, "branch", "--show-current"))
}

func TestAddRemote(t *testing.T) {
	repo := SetupTestRepo(t)
	AddRemote(t, repo, "origin", "git@github.com:acme/widgets.git")

	assert.Equal(t, "git@github.com:acme/widgets.git", GitOutput(t, repo, "remote", "get-url", "origin"))
}

func TestWriteTicketFixtures(t *testing.T) {
	dir := WriteTicketFixtures(t, map[uint64]string{
		42: "Fix bug\n\nDetails here",
		7:  "Other",
	})

	data, err := os.ReadFile(filepath.Join(dir, "42"))
	require.NoError(t, err)
	assert.Equal(t, "Fix bug\n\nDetails here", string(data))
	assert.FileExists(t, filepath.Join(dir, "7"))
}

func TestTestContextWithTimeout(t *testing.T) {
	ctx := TestContextWithTimeout(t, time.Minute)

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	assert.NoError(t, TestContext(t).Err())
}
