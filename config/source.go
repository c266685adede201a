package config

// Source indicates where a remote entry came from.
type Source string

// Configuration source constants.
const (
	// SourceGlobal indicates ~/.config/commit-lsp/config.toml or its override.
	SourceGlobal Source = "global"

	// SourceLocal indicates .commit-lsp.toml or .commit-lsp.yaml in the repository root.
	SourceLocal Source = "local"
)
