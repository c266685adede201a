package config

import "strings"

// User is the merged configuration.
type User struct {
	Remotes []Remote `toml:"remotes" yaml:"remotes"`
}

// Remote holds the settings for one git host.
type Remote struct {
	// Host is matched as a substring of the remote URL.
	Host string `toml:"host" yaml:"host"`

	// CredentialsCommand is run without a shell; its trimmed stdout is the token.
	CredentialsCommand []string `toml:"credentials_command,omitempty" yaml:"credentials_command,omitempty"`

	// IssueTrackerType forces a backend ("GitHub", "GitLab", "AzureDevOps", "Demo").
	IssueTrackerType string `toml:"issue_tracker_type,omitempty" yaml:"issue_tracker_type,omitempty"`

	// IssueTrackerURL replaces the git remote URL when deriving tracker coordinates.
	IssueTrackerURL string `toml:"issue_tracker_url,omitempty" yaml:"issue_tracker_url,omitempty"`

	// Source records which file the entry was read from.
	Source Source `toml:"-" yaml:"-"`
}

// RemoteFor returns the first remote whose host occurs in url, or nil.
func (u *User) RemoteFor(url string) *Remote {
	if u == nil {
		return nil
	}
	for i := range u.Remotes {
		host := u.Remotes[i].Host
		if host != "" && strings.Contains(url, host) {
			r := u.Remotes[i]
			return &r
		}
	}
	return nil
}

// HasCredentialsCommand reports whether a non-empty command is configured.
func (r *Remote) HasCredentialsCommand() bool {
	return r != nil && len(r.CredentialsCommand) > 0 && strings.TrimSpace(r.CredentialsCommand[0]) != ""
}
