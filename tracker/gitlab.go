package tracker

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/xanzy/go-gitlab"

	commithttp "github.com/randalmurphal/commitlsp/http"
)

// GitLab lists open issues of a GitLab project.
type GitLab struct {
	baseURL    string
	token      string
	project    string // "namespace/project"
	httpClient *http.Client
	logger     *slog.Logger

	client memo[*gitlab.Client]
}

// NewGitLab creates a GitLab adapter. Returns nil unless the remote has a
// host, owner and name and a credential is present.
func NewGitLab(cfg TrackerConfig, opts ...AdapterOption) *GitLab {
	r := cfg.Remote
	if r.Host == "" || r.Owner == "" || r.Name == "" || cfg.Secret.IsZero() {
		return nil
	}
	o := newAdapterOptions(opts)

	base := o.baseURL
	if base == "" {
		base = "https://" + r.Host + "/api/v4"
	}

	return &GitLab{
		baseURL:    base,
		token:      cfg.Secret.Reveal(),
		project:    r.Owner + "/" + r.Name,
		httpClient: o.httpClient,
		logger:     o.logger,
	}
}

// api returns the shared client, creating it on first use.
func (g *GitLab) api(ctx context.Context) (*gitlab.Client, error) {
	c, err := g.client.get(ctx, func(context.Context) (*gitlab.Client, error) {
		opts := []gitlab.ClientOptionFunc{
			gitlab.WithBaseURL(g.baseURL),
			gitlab.WithCustomRetryMax(0),
		}
		if g.httpClient != nil {
			opts = append(opts, gitlab.WithHTTPClient(g.httpClient))
		}
		c, err := gitlab.NewClient(g.token, opts...)
		if err != nil {
			return nil, otherErrorWrap(KindGitLab, err)
		}
		return c, nil
	})
	return c, asUpstream(KindGitLab, err)
}

// ListTicketIDs implements Adapter.
func (g *GitLab) ListTicketIDs(ctx context.Context) ([]uint64, error) {
	issues, err := g.listIssues(ctx, &gitlab.ListProjectIssuesOptions{
		State: gitlab.Ptr("opened"),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(issues))
	for _, issue := range issues {
		ids = append(ids, uint64(issue.IID))
	}
	g.logger.Debug("listed gitlab issues", "project", g.project, "count", len(ids))
	return ids, nil
}

// TicketDetails implements Adapter.
func (g *GitLab) TicketDetails(ctx context.Context, ids []uint64) ([]Ticket, error) {
	iids := make([]int, 0, len(ids))
	for _, id := range ids {
		// No issue can carry an iid beyond int range.
		if id <= math.MaxInt {
			iids = append(iids, int(id))
		}
	}
	// An empty iids filter would match every issue of the project.
	if len(iids) == 0 {
		return nil, nil
	}

	issues, err := g.listIssues(ctx, &gitlab.ListProjectIssuesOptions{
		IIDs: gitlab.Ptr(iids),
	})
	if err != nil {
		return nil, err
	}

	tickets := make([]Ticket, 0, len(issues))
	for _, issue := range issues {
		tickets = append(tickets, Ticket{
			ID:    uint64(issue.IID),
			Title: issue.Title,
			Body:  issue.Description,
		})
	}
	return tickets, nil
}

func (g *GitLab) listIssues(ctx context.Context, opts *gitlab.ListProjectIssuesOptions) ([]*gitlab.Issue, error) {
	client, err := g.api(ctx)
	if err != nil {
		return nil, err
	}

	iter := commithttp.NewPageIterator(func(ctx context.Context, page int) ([]*gitlab.Issue, int, error) {
		pageOpts := *opts
		pageOpts.ListOptions = gitlab.ListOptions{Page: page, PerPage: 100}

		issues, resp, err := client.Issues.ListProjectIssues(g.project, &pageOpts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, 0, mapGitLabError(resp, err)
		}
		return issues, resp.NextPage, nil
	})
	return iter.All(ctx)
}

func mapGitLabError(resp *gitlab.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return transportError(KindGitLab, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return authError(KindGitLab, err)
	}

	var glErr *gitlab.ErrorResponse
	if errors.As(err, &glErr) {
		msg := strings.TrimSpace(glErr.Message)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return otherError(KindGitLab, "%d %s", resp.StatusCode, msg)
	}
	return otherErrorWrap(KindGitLab, err)
}
