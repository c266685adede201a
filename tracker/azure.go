package tracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	commithttp "github.com/randalmurphal/commitlsp/http"
)

const (
	azureAPIVersion = "7.0"

	// azureBatchSize is the workitemsbatch limit per request.
	azureBatchSize = 200

	azureMyWorkQuery = "SELECT [System.Id] FROM WorkItems WHERE [System.TeamProject] = @project " +
		"AND [Assigned To] = @me AND [System.Id] in (@MyRecentActivity)"
)

var azureFields = []string{"System.Title", "System.Description"}

// AzureDevOps lists work items assigned to the current user that they
// recently touched.
type AzureDevOps struct {
	client *commithttp.Client
	logger *slog.Logger
}

type wiqlRequest struct {
	Query string `json:"query"`
}

type wiqlResponse struct {
	WorkItems []struct {
		ID uint64 `json:"id"`
	} `json:"workItems"`
}

type workItemsBatchRequest struct {
	IDs    []uint64 `json:"ids"`
	Fields []string `json:"fields"`
	// "omit" makes missing ids come back as null entries instead of
	// failing the whole batch.
	ErrorPolicy string `json:"errorPolicy"`
}

type workItem struct {
	ID     uint64             `json:"id"`
	Fields map[string]*string `json:"fields"`
}

type workItemsBatchResponse struct {
	Value []*workItem `json:"value"`
}

// NewAzureDevOps creates an Azure DevOps adapter. Returns nil unless the
// remote names an organization and project and a credential is present.
func NewAzureDevOps(cfg TrackerConfig, opts ...AdapterOption) *AzureDevOps {
	r := cfg.Remote
	if r.Organization == "" || r.Owner == "" || cfg.Secret.IsZero() {
		return nil
	}
	o := newAdapterOptions(opts)

	base := o.baseURL
	if base == "" {
		base = "https://dev.azure.com"
	}
	base += "/" + url.PathEscape(r.Organization) + "/" + url.PathEscape(r.Owner) + "/_apis"

	secret := cfg.Secret
	client := commithttp.NewClient(commithttp.ClientConfig{
		Client:      o.httpClient,
		BaseURL:     base,
		ServiceName: "azure-devops",
		Query:       url.Values{"api-version": {azureAPIVersion}},
		BeforeRequest: func(req *http.Request) {
			req.SetBasicAuth("", secret.Reveal())
		},
		AcceptStatus: func(status int) bool {
			// 203 carries the HTML sign-in page, not JSON.
			return status >= 200 && status < 300 && status != http.StatusNonAuthoritativeInfo
		},
	})

	return &AzureDevOps{client: client, logger: o.logger}
}

// ListTicketIDs implements Adapter.
func (a *AzureDevOps) ListTicketIDs(ctx context.Context) ([]uint64, error) {
	var resp wiqlResponse
	if err := a.client.Post(ctx, "/wit/wiql", wiqlRequest{Query: azureMyWorkQuery}, &resp); err != nil {
		return nil, mapHTTPError(KindAzureDevOps, err)
	}

	ids := make([]uint64, 0, len(resp.WorkItems))
	for _, item := range resp.WorkItems {
		ids = append(ids, item.ID)
	}
	a.logger.Debug("listed azure work items", "base", a.client.BaseURL(), "count", len(ids))
	return ids, nil
}

// TicketDetails implements Adapter.
func (a *AzureDevOps) TicketDetails(ctx context.Context, ids []uint64) ([]Ticket, error) {
	var tickets []Ticket
	for start := 0; start < len(ids); start += azureBatchSize {
		end := min(start+azureBatchSize, len(ids))

		var resp workItemsBatchResponse
		req := workItemsBatchRequest{
			IDs:         ids[start:end],
			Fields:      azureFields,
			ErrorPolicy: "omit",
		}
		if err := a.client.Post(ctx, "/wit/workitemsbatch", req, &resp); err != nil {
			return nil, mapHTTPError(KindAzureDevOps, err)
		}

		for _, item := range resp.Value {
			if item == nil {
				continue
			}
			title := item.Fields["System.Title"]
			if title == nil {
				return nil, otherError(KindAzureDevOps, "work item %d has no title", item.ID)
			}
			var body string
			if desc := item.Fields["System.Description"]; desc != nil {
				body = *desc
			}
			tickets = append(tickets, Ticket{ID: item.ID, Title: *title, Body: body})
		}
	}
	return tickets, nil
}

// mapHTTPError translates errors from the shared JSON client.
func mapHTTPError(backend Kind, err error) error {
	switch {
	case commithttp.IsTransport(err):
		return transportError(backend, err)
	case commithttp.IsUnauthorized(err):
		return authError(backend, err)
	case commithttp.IsRateLimited(err):
		return otherError(backend, "rate limit exceeded, retry later")
	}

	var apiErr *commithttp.APIError
	if errors.As(err, &apiErr) {
		return otherError(backend, "%d %s", apiErr.StatusCode, apiErr.Message)
	}
	return otherErrorWrap(backend, err)
}
