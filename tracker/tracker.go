package tracker

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// IssueTracker wraps one Adapter with a ticket cache. Safe for concurrent use;
// the cache lock is never held across a network call.
type IssueTracker struct {
	kind    Kind
	adapter Adapter

	mu    sync.Mutex
	cache map[uint64]Ticket
}

// New wraps adapter in an IssueTracker with an empty cache.
func New(kind Kind, adapter Adapter) *IssueTracker {
	return &IssueTracker{
		kind:    kind,
		adapter: adapter,
		cache:   make(map[uint64]Ticket),
	}
}

// Kind returns the backend in use.
func (t *IssueTracker) Kind() Kind {
	return t.kind
}

// RequestTicketInformation lists ticket ids, fetches their details and merges
// them into the cache. It returns only the tickets fetched by this call. On
// error the cache is left as it was.
func (t *IssueTracker) RequestTicketInformation(ctx context.Context) ([]Ticket, error) {
	ids, err := t.adapter.ListTicketIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	tickets, err := t.adapter.TicketDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	for _, ticket := range tickets {
		t.cache[ticket.ID] = ticket
	}
	t.mu.Unlock()

	return tickets, nil
}

// Tickets returns a copy of the cache ordered by id. It never touches the network.
func (t *IssueTracker) Tickets() []Ticket {
	t.mu.Lock()
	tickets := make([]Ticket, 0, len(t.cache))
	for _, ticket := range t.cache {
		tickets = append(tickets, ticket)
	}
	t.mu.Unlock()

	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	return tickets
}

// Ticket returns the ticket with id, fetching it on a cache miss. found is
// false when the backend returned no single match.
//
// It panics if the backend answers a single-id request with a different
// ticket, since every later lookup would be wrong.
func (t *IssueTracker) Ticket(ctx context.Context, id uint64) (ticket Ticket, found bool, err error) {
	t.mu.Lock()
	cached, ok := t.cache[id]
	t.mu.Unlock()
	if ok {
		return cached, true, nil
	}

	tickets, err := t.adapter.TicketDetails(ctx, []uint64{id})
	if err != nil {
		return Ticket{}, false, err
	}
	if len(tickets) != 1 {
		return Ticket{}, false, nil
	}

	ticket = tickets[0]
	if ticket.ID != id {
		panic(fmt.Sprintf("tracker: %s adapter returned ticket %d for requested id %d", t.kind, ticket.ID, id))
	}

	t.mu.Lock()
	t.cache[id] = ticket
	t.mu.Unlock()

	return ticket, true, nil
}
