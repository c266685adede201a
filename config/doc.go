// Package config loads the per-remote settings commit-lsp needs to reach an
// issue tracker.
//
// Remotes are read from two layers, local entries first:
//  1. Local config: .commit-lsp.toml or .commit-lsp.yaml in the repository root
//  2. Global config: ~/.config/commit-lsp/config.toml (or config.yaml)
//
// COMMIT_LSP_CONFIG replaces the global path. The format is chosen by file
// extension: .yaml and .yml are YAML, anything else is TOML.
//
// # Example
//
//	[[remotes]]
//	host = "gitlab.example.com"
//	credentials_command = ["pass", "show", "gitlab/token"]
//
//	[[remotes]]
//	host = "github.com"
//	credentials_command = ["gh", "auth", "token"]
//	issue_tracker_type = "GitHub"
//
// # Lookup
//
// RemoteFor returns the first remote whose host occurs anywhere in the given
// URL, so a local entry shadows a global one for the same host:
//
//	loader := config.NewLoader(config.LoaderConfig{GitRootFinder: locator.RepoRoot}, ".")
//	user := loader.Load()
//	remote := user.RemoteFor("git@gitlab.example.com:group/project.git")
//
// Missing files are not errors. Files that fail to parse are skipped and
// reported through Loader.Warnings.
package config
