package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	commithttp "github.com/randalmurphal/commitlsp/http"
)

// githubDetailConcurrency bounds parallel per-issue requests.
const githubDetailConcurrency = 4

// GitHub lists issues assigned to the current user of a GitHub repository.
type GitHub struct {
	client        *github.Client
	owner         string
	repo          string
	authenticated bool
	logger        *slog.Logger

	user memo[string]
}

// NewGitHub creates a GitHub adapter. Returns nil when the remote has no
// owner or repository name. Without a credential requests are anonymous and
// the remote owner is taken as the username.
func NewGitHub(cfg TrackerConfig, opts ...AdapterOption) *GitHub {
	if cfg.Remote.Owner == "" || cfg.Remote.Name == "" {
		return nil
	}
	o := newAdapterOptions(opts)

	hc := o.httpClient
	if !cfg.Secret.IsZero() {
		ctx := context.Background()
		if hc != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, hc)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Secret.Reveal()})
		hc = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(hc)

	base := o.baseURL
	if base == "" && cfg.Remote.Host != "" && !strings.HasSuffix(cfg.Remote.Host, "github.com") {
		// GitHub Enterprise serves the API under /api/v3 of its own host.
		base = "https://" + cfg.Remote.Host + "/api/v3/"
	}
	if base != "" {
		u, err := url.Parse(strings.TrimSuffix(base, "/") + "/")
		if err != nil {
			o.logger.Warn("ignoring invalid GitHub API URL", "url", base, "error", err)
		} else {
			client.BaseURL = u
		}
	}

	return &GitHub{
		client:        client,
		owner:         cfg.Remote.Owner,
		repo:          cfg.Remote.Name,
		authenticated: !cfg.Secret.IsZero(),
		logger:        o.logger,
	}
}

// ListTicketIDs implements Adapter.
func (g *GitHub) ListTicketIDs(ctx context.Context) ([]uint64, error) {
	user, err := g.username(ctx)
	if err != nil {
		return nil, err
	}

	iter := commithttp.NewPageIterator(func(ctx context.Context, page int) ([]*github.Issue, int, error) {
		issues, resp, err := g.client.Issues.ListByRepo(ctx, g.owner, g.repo, &github.IssueListByRepoOptions{
			Assignee:    user,
			State:       "open",
			ListOptions: github.ListOptions{Page: page, PerPage: 100},
		})
		if err != nil {
			return nil, 0, g.mapError(resp, err)
		}
		return issues, resp.NextPage, nil
	})

	issues, err := iter.All(ctx)
	if err != nil {
		return nil, err
	}

	var ids []uint64
	for _, issue := range issues {
		// The issues endpoint also returns pull requests.
		if issue.IsPullRequest() {
			continue
		}
		ids = append(ids, uint64(issue.GetNumber()))
	}

	g.logger.Debug("listed github issues", "owner", g.owner, "repo", g.repo, "assignee", user, "count", len(ids))
	return ids, nil
}

// TicketDetails implements Adapter. GitHub has no batch endpoint, so each id
// is one request.
func (g *GitHub) TicketDetails(ctx context.Context, ids []uint64) ([]Ticket, error) {
	results := make([]*Ticket, len(ids))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(githubDetailConcurrency)
	for i, id := range ids {
		eg.Go(func() error {
			t, err := g.ticket(egCtx, id)
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	tickets := make([]Ticket, 0, len(ids))
	for _, t := range results {
		if t != nil {
			tickets = append(tickets, *t)
		}
	}
	return tickets, nil
}

// ticket returns nil for ids that do not exist.
func (g *GitHub) ticket(ctx context.Context, id uint64) (*Ticket, error) {
	if id > math.MaxInt {
		return nil, nil
	}
	issue, resp, err := g.client.Issues.Get(ctx, g.owner, g.repo, int(id))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, g.mapError(resp, err)
	}
	if issue.Title == nil {
		return nil, otherError(KindGitHub, "issue #%d has no title", id)
	}
	return &Ticket{ID: id, Title: issue.GetTitle(), Body: issue.GetBody()}, nil
}

// username resolves the login tickets are filtered by.
func (g *GitHub) username(ctx context.Context) (string, error) {
	if !g.authenticated {
		return g.owner, nil
	}
	user, err := g.user.get(ctx, func(ctx context.Context) (string, error) {
		u, resp, err := g.client.Users.Get(ctx, "")
		if err != nil {
			return "", g.mapError(resp, err)
		}
		if u.GetLogin() == "" {
			return "", otherError(KindGitHub, "user info has no login")
		}
		return u.GetLogin(), nil
	})
	return user, asUpstream(KindGitHub, err)
}

func (g *GitHub) mapError(resp *github.Response, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return otherError(KindGitHub, "rate limit exceeded, resets at %s", rateErr.Rate.Reset.Format("15:04:05"))
	}
	if resp == nil || resp.Response == nil {
		return transportError(KindGitHub, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return authError(KindGitHub, err)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return otherError(KindGitHub, "%d %s", resp.StatusCode, ghErr.Message)
	}
	return otherErrorWrap(KindGitHub, fmt.Errorf("status %d: %w", resp.StatusCode, err))
}
