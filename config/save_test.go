package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRemote(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			require.NoError(t, SaveRemote(path, Remote{Host: "github.com", CredentialsCommand: []string{"gh", "auth", "token"}}))
			require.NoError(t, SaveRemote(path, Remote{Host: "gitlab.com", IssueTrackerType: "GitLab"}))
			require.NoError(t, SaveRemote(path, Remote{Host: "github.com", CredentialsCommand: []string{"pass", "gh"}}))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

			loader := NewLoaderWithPaths(LoaderConfig{}, path, "")
			user := loader.Load()
			assert.Empty(t, loader.Warnings)
			require.Len(t, user.Remotes, 2)
			assert.Equal(t, []string{"pass", "gh"}, user.Remotes[0].CredentialsCommand)
			assert.Equal(t, "GitLab", user.Remotes[1].IssueTrackerType)
		})
	}
}

func TestSaveRemote_RequiresHost(t *testing.T) {
	assert.Error(t, SaveRemote(filepath.Join(t.TempDir(), "c.toml"), Remote{}))
}

func TestSaveRemote_RefusesToClobberBrokenFile(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "config.toml"), "not = [valid")

	err := SaveRemote(path, Remote{Host: "github.com"})
	assert.Error(t, err)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "not = [valid", string(data))
}

func TestRemoveRemote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveRemote(path, Remote{Host: "github.com"}))
	require.NoError(t, SaveRemote(path, Remote{Host: "gitlab.com"}))

	require.NoError(t, RemoveRemote(path, "github.com"))
	require.NoError(t, RemoveRemote(path, "absent.example"))
	require.NoError(t, RemoveRemote(filepath.Join(t.TempDir(), "missing.toml"), "x"))

	user := NewLoaderWithPaths(LoaderConfig{}, path, "").Load()
	require.Len(t, user.Remotes, 1)
	assert.Equal(t, "gitlab.com", user.Remotes[0].Host)
}
