package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/commitlsp/config"
	"github.com/randalmurphal/commitlsp/git"
	"github.com/randalmurphal/commitlsp/tracker"
)

func createConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit per-host settings",
	}
	configCmd.AddCommand(
		createConfigShowCmd(a),
		createConfigSetRemoteCmd(a),
		createConfigRemoveRemoteCmd(a),
	)
	return configCmd
}

func createConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the merged remote entries",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			loader := a.configLoader()
			user := loader.Load()
			for _, w := range loader.Warnings {
				a.logger.Warn("config", "warning", w)
			}

			if len(user.Remotes) == 0 {
				fmt.Fprintln(a.stdout, "No remotes configured.")
				return nil
			}
			for _, r := range user.Remotes {
				fmt.Fprintf(a.stdout, "%s (%s)\n", r.Host, r.Source)
				if r.IssueTrackerType != "" {
					fmt.Fprintf(a.stdout, "  issue_tracker_type: %s\n", r.IssueTrackerType)
				}
				if r.IssueTrackerURL != "" {
					fmt.Fprintf(a.stdout, "  issue_tracker_url: %s\n", r.IssueTrackerURL)
				}
				if len(r.CredentialsCommand) > 0 {
					fmt.Fprintf(a.stdout, "  credentials_command: %s\n", strings.Join(r.CredentialsCommand, " "))
				}
			}
			return nil
		},
	}
}

func createConfigSetRemoteCmd(a *app) *cobra.Command {
	var (
		local       bool
		trackerType string
		trackerURL  string
	)

	cmd := &cobra.Command{
		Use:   "set-remote <host> [-- credentials-command...]",
		Short: "Add or replace the entry for a host",
		Example: `  commit-lsp config set-remote gitlab.example.com -- pass show gitlab/token
  commit-lsp config set-remote git.internal --type gitlab --url https://gitlab.internal/team/app
  commit-lsp config set-remote --local github.com -- gh auth token`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trackerType != "" {
				if _, err := tracker.ParseKind(trackerType); err != nil {
					return err
				}
			}

			entry := config.Remote{
				Host:             args[0],
				IssueTrackerType: trackerType,
				IssueTrackerURL:  trackerURL,
			}
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				if dash != 1 {
					return fmt.Errorf("expected exactly one host before --")
				}
				entry.CredentialsCommand = args[dash:]
			} else if len(args) > 1 {
				return fmt.Errorf("put the credentials command after --")
			}

			path, err := a.configPath(local)
			if err != nil {
				return err
			}
			if err := config.SaveRemote(path, entry); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Saved %s to %s\n", entry.Host, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Write to the repository config instead of the global one")
	cmd.Flags().StringVar(&trackerType, "type", "", "Issue tracker type (GitHub, GitLab, AzureDevOps)")
	cmd.Flags().StringVar(&trackerURL, "url", "", "Issue tracker URL when it differs from the git remote")
	return cmd
}

func createConfigRemoveRemoteCmd(a *app) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "remove-remote <host>",
		Short: "Delete the entry for a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := a.configPath(local)
			if err != nil {
				return err
			}
			if err := config.RemoveRemote(path, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Removed %s from %s\n", args[0], path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Edit the repository config instead of the global one")
	return cmd
}

// configLoader reads config for the repository around --dir, if any.
func (a *app) configLoader() *config.Loader {
	dir, err := filepath.Abs(a.dir)
	if err != nil {
		dir = a.dir
	}
	locator := git.NewLocator(git.WithLogger(a.logger))
	return config.NewLoader(config.LoaderConfig{GitRootFinder: locator.RepoRoot}, dir)
}

func (a *app) configPath(local bool) (string, error) {
	loader := a.configLoader()
	if !local {
		if loader.GlobalPath() == "" {
			return "", fmt.Errorf("cannot determine the global config path; set %s", config.DefaultEnvVar)
		}
		return loader.GlobalPath(), nil
	}
	if loader.LocalPath() == "" {
		return "", fmt.Errorf("--local needs a git repository")
	}
	return loader.LocalPath(), nil
}
