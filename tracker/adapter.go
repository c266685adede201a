package tracker

import "context"

//go:generate go tool mockgen -source=adapter.go -destination=mocks/adapter.gen.go -package=mocks

// Adapter is the contract every backend implements.
//
// Results are unordered. Ids with no matching ticket are absent from
// TicketDetails rather than reported as errors. All errors are *UpstreamError.
type Adapter interface {
	// ListTicketIDs returns the ids of tickets relevant to the current user.
	ListTicketIDs(ctx context.Context) ([]uint64, error)

	// TicketDetails returns the tickets for ids.
	TicketDetails(ctx context.Context, ids []uint64) ([]Ticket, error)
}
