package tracker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/commitlsp/credential"
	"github.com/randalmurphal/commitlsp/remote"
)

func githubConfig(secret string) TrackerConfig {
	cfg := TrackerConfig{Remote: remote.MustParse("git@github.com:acme/widgets.git")}
	if secret != "" {
		cfg.Secret = credential.NewSecret(secret)
	}
	return cfg
}

func newTestGitHub(t *testing.T, secret string, handler http.Handler) *GitHub {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g := NewGitHub(githubConfig(secret), WithBaseURL(server.URL))
	require.NotNil(t, g)
	return g
}

func TestNewGitHub_RequiresCoordinates(t *testing.T) {
	assert.Nil(t, NewGitHub(TrackerConfig{Remote: remote.Descriptor{Host: "github.com", Name: "widgets"}}))
	assert.Nil(t, NewGitHub(TrackerConfig{Remote: remote.Descriptor{Host: "github.com", Owner: "acme"}}))
	assert.NotNil(t, NewGitHub(githubConfig("")))
}

func TestNewGitHub_EnterpriseBaseURL(t *testing.T) {
	g := NewGitHub(TrackerConfig{Remote: remote.MustParse("https://github.corp.example/acme/widgets")})
	require.NotNil(t, g)
	assert.Equal(t, "https://github.corp.example/api/v3/", g.client.BaseURL.String())

	g = NewGitHub(githubConfig(""))
	require.NotNil(t, g)
	assert.Equal(t, "https://api.github.com/", g.client.BaseURL.String())
}

func TestGitHub_ListTicketIDs_Anonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "acme", r.URL.Query().Get("assignee"))
		assert.Equal(t, "open", r.URL.Query().Get("state"))

		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/repos/acme/widgets/issues?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[{"number":1,"title":"one"},{"number":2,"title":"pr","pull_request":{"url":"x"}}]`)
		case "2":
			fmt.Fprint(w, `[{"number":3,"title":"three"}]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, _ *http.Request) {
		t.Error("anonymous adapter must not query the current user")
		w.WriteHeader(http.StatusUnauthorized)
	})

	g := newTestGitHub(t, "", mux)

	ids, err := g.ListTicketIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, ids)
}

func TestGitHub_ListTicketIDs_Authenticated(t *testing.T) {
	var userCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		userCalls.Add(1)
		assert.Equal(t, "Bearer ghp_secret", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"login":"octocat"}`)
	})
	mux.HandleFunc("/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ghp_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "octocat", r.URL.Query().Get("assignee"))
		fmt.Fprint(w, `[{"number":12,"title":"twelve"}]`)
	})

	g := newTestGitHub(t, "ghp_secret", mux)

	for range 2 {
		ids, err := g.ListTicketIDs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []uint64{12}, ids)
	}
	assert.Equal(t, int32(1), userCalls.Load())
}

func TestGitHub_TicketDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/issues/1", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"number":1,"title":"Fix bug","body":"Details here"}`)
	})
	mux.HandleFunc("/repos/acme/widgets/issues/2", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	mux.HandleFunc("/repos/acme/widgets/issues/3", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"number":3,"title":"No body"}`)
	})

	g := newTestGitHub(t, "", mux)

	got, err := g.TicketDetails(context.Background(), []uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []Ticket{
		{ID: 1, Title: "Fix bug", Body: "Details here"},
		{ID: 3, Title: "No body"},
	}, got)
}

func TestGitHub_TicketDetails_MissingTitle(t *testing.T) {
	g := newTestGitHub(t, "", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"number":4}`)
	}))

	_, err := g.TicketDetails(context.Background(), []uint64{4})
	assert.ErrorIs(t, err, ErrOther)
}

func TestGitHub_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, IsAuthentication},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			return !IsTransport(err) && !IsAuthentication(err) && err != nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGitHub(t, "", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":"nope"}`)
			}))

			_, err := g.ListTicketIDs(context.Background())
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestGitHub_ErrorHidesClientTypes(t *testing.T) {
	g := newTestGitHub(t, "", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Bad credentials"}`)
	}))

	_, err := g.ListTicketIDs(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthentication(err))

	var ghErr *github.ErrorResponse
	assert.False(t, errors.As(err, &ghErr), "client error type leaked: %T", errors.Unwrap(err))
	var up *UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, KindGitHub, up.Backend)
}

func TestGitHub_Ticket_Missing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/issues/2", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	g := newTestGitHub(t, "", mux)

	_, found, err := New(KindGitHub, g).Ticket(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGitHub_TicketDetails_OutOfRangeID(t *testing.T) {
	var calls atomic.Int32
	g := newTestGitHub(t, "", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	got, err := g.TicketDetails(context.Background(), []uint64{math.MaxUint64})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, calls.Load())
}

func TestGitHub_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	g := NewGitHub(githubConfig(""), WithBaseURL(url))
	_, err := g.ListTicketIDs(context.Background())
	assert.True(t, IsTransport(err), "unexpected error: %v", err)
}
