// Package tracker connects a repository to the issue tracker behind its remote.
//
// Core types:
//   - IssueTracker: Façade owning one Adapter and a ticket cache
//   - Adapter: Two-operation contract every backend implements
//   - Ticket: Immutable id, title and body
//   - Kind: Closed set of backends (Demo, GitHub, GitLab, Azure DevOps)
//
// Backends:
//   - GitHub: go-github, issues assigned to the authenticated user
//   - GitLab: go-gitlab, open issues of the project
//   - AzureDevOps: WIQL query plus work-item batch over plain JSON
//   - Demo: one fixture file per ticket in a local directory
//
// Example usage:
//
//	it, err := tracker.Build(ctx, remoteURL, user.RemoteFor(remoteURL),
//	    tracker.WithHealth(reporter),
//	)
//	if err != nil || it == nil {
//	    // no tracker for this repository
//	}
//	tickets, err := it.RequestTicketInformation(ctx)
//	t, found, err := it.Ticket(ctx, 42)
//
// Every backend error is translated into *UpstreamError at the adapter
// boundary; callers match ErrTransport, ErrAuthentication or ErrOther with
// errors.Is.
package tracker
