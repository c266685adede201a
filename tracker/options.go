package tracker

import (
	"log/slog"
	"net/http"
)

// AdapterOption configures a backend adapter.
type AdapterOption func(*adapterOptions)

type adapterOptions struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func newAdapterOptions(opts []AdapterOption) adapterOptions {
	o := adapterOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHTTPClient sets the HTTP client adapters send requests through.
func WithHTTPClient(c *http.Client) AdapterOption {
	return func(o *adapterOptions) {
		o.httpClient = c
	}
}

// WithBaseURL points an adapter at a different API root. Used for self-hosted
// instances and tests.
func WithBaseURL(u string) AdapterOption {
	return func(o *adapterOptions) {
		o.baseURL = u
	}
}

// WithAdapterLogger sets the logger adapters use for debug output.
func WithAdapterLogger(l *slog.Logger) AdapterOption {
	return func(o *adapterOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
