package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/commitlsp/config"
	"github.com/randalmurphal/commitlsp/credential"
	clierrors "github.com/randalmurphal/commitlsp/errors"
	"github.com/randalmurphal/commitlsp/git"
	"github.com/randalmurphal/commitlsp/health"
	"github.com/randalmurphal/commitlsp/tracker"
)

// session is the repository context every command starts from.
type session struct {
	root      string
	remoteURL string
	user      *config.User
}

// openSession locates the repository, its remote and the merged config.
func (a *app) openSession(r health.Reporter) (*session, error) {
	dir, err := filepath.Abs(a.dir)
	if err != nil {
		return nil, err
	}
	locator := git.NewLocator(git.WithLogger(a.logger))

	root, err := locator.RepoRoot(dir)
	if err != nil {
		health.Error(r, "find repository", err.Error())
		return nil, err
	}
	health.OK(r, "find repository", root)

	remoteURL, err := locator.RemoteURL(root, a.remote)
	if err != nil {
		health.Error(r, "retrieve repo url", "Failed to get remote url: "+err.Error())
		return nil, err
	}
	health.OK(r, "retrieve repo url", fmt.Sprintf("Remote '%s'", a.remote))

	loader := config.NewLoader(config.LoaderConfig{GitRootFinder: locator.RepoRoot}, root)
	user := loader.Load()
	if len(loader.Warnings) == 0 {
		health.OK(r, "load config", "Searched "+strings.Join(configPaths(loader), ", "))
	}
	for _, w := range loader.Warnings {
		health.Warn(r, "load config", w)
	}

	return &session{root: root, remoteURL: remoteURL, user: user}, nil
}

// openTracker builds the issue tracker for the session. It returns
// clierrors.ErrNoTracker when the repository has none.
func (a *app) openTracker(ctx context.Context, r health.Reporter) (*tracker.IssueTracker, error) {
	r.Section("Issue Tracker")

	s, err := a.openSession(r)
	if err != nil {
		return nil, err
	}

	it, err := tracker.Build(ctx, s.remoteURL, s.user.RemoteFor(s.remoteURL),
		tracker.WithHealth(r),
		tracker.WithLogger(a.logger),
		tracker.WithDemoDir(a.demoDir),
		tracker.WithCredentialResolver(credential.NewResolver(
			credential.WithWorkDir(s.root),
			credential.WithLogger(a.logger),
		)),
	)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("%w for remote %q", clierrors.ErrNoTracker, a.remote)
	}
	return it, nil
}

// configPaths lists the files the loader reads, present or not.
func configPaths(l *config.Loader) []string {
	var paths []string
	for _, p := range []string{l.LocalPath(), l.GlobalPath()} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return []string{"none"}
	}
	return paths
}
