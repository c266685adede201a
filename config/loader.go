package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Default names used by NewLoader.
const (
	DefaultGlobalConfigDir = "commit-lsp"
	DefaultEnvVar          = "COMMIT_LSP_CONFIG"
)

var (
	defaultGlobalFiles = []string{"config.toml", "config.yaml"}
	defaultLocalFiles  = []string{".commit-lsp.toml", ".commit-lsp.yaml"}
)

// LoaderConfig configures the layered config loader.
type LoaderConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ holding the global file.
	// Defaults to "commit-lsp".
	GlobalConfigDir string

	// EnvVar names the variable that overrides the global path.
	// Defaults to COMMIT_LSP_CONFIG.
	EnvVar string

	// GitRootFinder finds the repository root holding the local config.
	// If nil, no local config is read.
	GitRootFinder func(startDir string) (string, error)

	// ErrWriter is where warnings are echoed. Nil keeps them silent.
	ErrWriter io.Writer
}

// Loader reads and merges the config layers.
type Loader struct {
	config     LoaderConfig
	globalPath string
	localPath  string
	gitRoot    string

	// Warnings collects non-fatal issues during loading.
	Warnings []string
}

// NewLoader creates a loader for the repository containing startDir.
func NewLoader(cfg LoaderConfig, startDir string) *Loader {
	if cfg.GlobalConfigDir == "" {
		cfg.GlobalConfigDir = DefaultGlobalConfigDir
	}
	if cfg.EnvVar == "" {
		cfg.EnvVar = DefaultEnvVar
	}

	l := &Loader{config: cfg}

	if cfg.GitRootFinder != nil {
		if root, err := cfg.GitRootFinder(startDir); err == nil && root != "" {
			l.gitRoot = root
			l.localPath = firstExisting(root, defaultLocalFiles)
		}
	}

	if override := os.Getenv(cfg.EnvVar); override != "" {
		l.globalPath = override
	} else if home, err := os.UserHomeDir(); err == nil {
		l.globalPath = firstExisting(filepath.Join(home, ".config", cfg.GlobalConfigDir), defaultGlobalFiles)
	}

	return l
}

// NewLoaderWithPaths creates a loader with explicit global and local paths.
// Either may be empty to skip that layer.
func NewLoaderWithPaths(cfg LoaderConfig, globalPath, localPath string) *Loader {
	return &Loader{
		config:     cfg,
		globalPath: globalPath,
		localPath:  localPath,
	}
}

// Load merges both layers. Local remotes come first so they shadow global
// entries for the same host.
func (l *Loader) Load() *User {
	user := &User{}
	user.Remotes = append(user.Remotes, l.readLayer(l.localPath, SourceLocal)...)
	user.Remotes = append(user.Remotes, l.readLayer(l.globalPath, SourceGlobal)...)
	return user
}

func (l *Loader) readLayer(path string, source Source) []Remote {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.warn(fmt.Sprintf("could not read %s: %v", path, err))
		}
		return nil
	}

	parsed, unknown, err := decode(path, data)
	if err != nil {
		l.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return nil
	}
	if len(unknown) > 0 {
		l.warn(fmt.Sprintf("%s: unknown keys %s", path, strings.Join(unknown, ", ")))
	}

	remotes := make([]Remote, 0, len(parsed.Remotes))
	for i, r := range parsed.Remotes {
		if r.Host == "" {
			l.warn(fmt.Sprintf("%s: remote #%d has no host, skipped", path, i+1))
			continue
		}
		r.Source = source
		remotes = append(remotes, r)
	}
	return remotes
}

// warn adds a warning and optionally prints it.
func (l *Loader) warn(msg string) {
	l.Warnings = append(l.Warnings, msg)
	if l.config.ErrWriter != nil {
		fmt.Fprintf(l.config.ErrWriter, "Warning: %s\n", msg)
	}
}

// GitRoot returns the detected repository root.
func (l *Loader) GitRoot() string {
	return l.gitRoot
}

// GlobalPath returns the path of the global config file.
func (l *Loader) GlobalPath() string {
	return l.globalPath
}

// LocalPath returns the path of the local config file, if a repository was found.
func (l *Loader) LocalPath() string {
	return l.localPath
}

// firstExisting returns the first of names present in dir, or the first name
// when none exists.
func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, names[0])
}
