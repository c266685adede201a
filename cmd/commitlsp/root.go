package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app holds the global flags and output streams shared by all commands.
type app struct {
	dir     string
	remote  string
	verbose bool

	// demoDir forces the demo tracker. Set from COMMIT_LSP_DEMO_FOLDER in
	// debug builds only.
	demoDir string

	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		demoDir: demoFolder(),
		stdout:  stdout,
		stderr:  stderr,
		logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commit-lsp",
		Short: "Issue tracker lookups for commit messages",
		Long: `commit-lsp finds the issue tracker behind a repository's git remote and
lists the tickets assigned to you.

Supported trackers are GitHub, GitLab and Azure DevOps. Per-host settings
live in ~/.config/commit-lsp/config.toml (or config.yaml) and in a
.commit-lsp.toml file at the repository root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", ".", "Directory inside the repository")
	rootCmd.PersistentFlags().StringVarP(&a.remote, "remote", "r", "origin", "Git remote whose issue tracker is used")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		createCheckhealthCmd(a),
		createTicketsCmd(a),
		createTicketCmd(a),
		createConfigCmd(a),
	)
	return rootCmd
}
