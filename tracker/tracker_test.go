package tracker_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/randalmurphal/commitlsp/tracker"
	"github.com/randalmurphal/commitlsp/tracker/mocks"
)

var errUpstream = &tracker.UpstreamError{Kind: tracker.ErrorTransport, Backend: tracker.KindGitHub, Message: "connection refused"}

func newTracker(t *testing.T) (*tracker.IssueTracker, *mocks.MockAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	return tracker.New(tracker.KindGitHub, adapter), adapter
}

func TestRequestTicketInformation(t *testing.T) {
	it, adapter := newTracker(t)
	ctx := context.Background()

	adapter.EXPECT().ListTicketIDs(gomock.Any()).Return([]uint64{3, 1}, nil)
	adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{3, 1}).Return([]tracker.Ticket{
		{ID: 3, Title: "three"},
		{ID: 1, Title: "one"},
	}, nil)

	got, err := it.RequestTicketInformation(ctx)
	require.NoError(t, err)
	assert.Equal(t, []tracker.Ticket{{ID: 3, Title: "three"}, {ID: 1, Title: "one"}}, got)
	assert.Equal(t, []tracker.Ticket{{ID: 1, Title: "one"}, {ID: 3, Title: "three"}}, it.Tickets())
	assert.Equal(t, tracker.KindGitHub, it.Kind())
}

func TestRequestTicketInformation_RefreshOverwritesAndReturnsOnlyFresh(t *testing.T) {
	it, adapter := newTracker(t)
	ctx := context.Background()

	gomock.InOrder(
		adapter.EXPECT().ListTicketIDs(gomock.Any()).Return([]uint64{1, 2}, nil),
		adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{1, 2}).Return([]tracker.Ticket{
			{ID: 1, Title: "old"}, {ID: 2, Title: "two"},
		}, nil),
		adapter.EXPECT().ListTicketIDs(gomock.Any()).Return([]uint64{1}, nil),
		adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{1}).Return([]tracker.Ticket{
			{ID: 1, Title: "new"},
		}, nil),
	)

	_, err := it.RequestTicketInformation(ctx)
	require.NoError(t, err)

	fresh, err := it.RequestTicketInformation(ctx)
	require.NoError(t, err)
	assert.Equal(t, []tracker.Ticket{{ID: 1, Title: "new"}}, fresh)
	assert.Equal(t, []tracker.Ticket{{ID: 1, Title: "new"}, {ID: 2, Title: "two"}}, it.Tickets())
}

func TestRequestTicketInformation_EmptyListSkipsDetails(t *testing.T) {
	it, adapter := newTracker(t)

	adapter.EXPECT().ListTicketIDs(gomock.Any()).Return(nil, nil)
	adapter.EXPECT().TicketDetails(gomock.Any(), gomock.Any()).Times(0)

	got, err := it.RequestTicketInformation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, it.Tickets())
}

func TestRequestTicketInformation_FailureLeavesCacheUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		expect func(*mocks.MockAdapter)
	}{
		{
			name: "listing fails",
			expect: func(a *mocks.MockAdapter) {
				a.EXPECT().ListTicketIDs(gomock.Any()).Return(nil, errUpstream)
			},
		},
		{
			name: "details fail",
			expect: func(a *mocks.MockAdapter) {
				a.EXPECT().ListTicketIDs(gomock.Any()).Return([]uint64{1, 5}, nil)
				a.EXPECT().TicketDetails(gomock.Any(), []uint64{1, 5}).Return(nil, errUpstream)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, adapter := newTracker(t)
			ctx := context.Background()

			adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{1}).Return([]tracker.Ticket{{ID: 1, Title: "one"}}, nil)
			_, found, err := it.Ticket(ctx, 1)
			require.NoError(t, err)
			require.True(t, found)
			before := it.Tickets()

			tt.expect(adapter)
			_, err = it.RequestTicketInformation(ctx)
			require.Error(t, err)
			assert.True(t, tracker.IsTransport(err))
			assert.Equal(t, before, it.Tickets())
		})
	}
}

func TestTickets_EmptyBeforePopulation(t *testing.T) {
	it, _ := newTracker(t)

	got := it.Tickets()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTickets_ReturnsCopy(t *testing.T) {
	it, adapter := newTracker(t)
	adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{7}).Return([]tracker.Ticket{{ID: 7, Title: "seven"}}, nil)

	_, _, err := it.Ticket(context.Background(), 7)
	require.NoError(t, err)

	snapshot := it.Tickets()
	snapshot[0].Title = "mutated"
	assert.Equal(t, "seven", it.Tickets()[0].Title)
}

func TestTicket_CacheHitSkipsNetwork(t *testing.T) {
	it, adapter := newTracker(t)
	ctx := context.Background()

	adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{42}).
		Return([]tracker.Ticket{{ID: 42, Title: "Fix bug", Body: "Details here"}}, nil).
		Times(1)

	for range 2 {
		got, found, err := it.Ticket(ctx, 42)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, tracker.Ticket{ID: 42, Title: "Fix bug", Body: "Details here"}, got)
	}
}

func TestTicket_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		results []tracker.Ticket
	}{
		{name: "no results", results: nil},
		{name: "ambiguous results", results: []tracker.Ticket{{ID: 9, Title: "a"}, {ID: 9, Title: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, adapter := newTracker(t)
			adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{9}).Return(tt.results, nil).Times(2)

			for range 2 {
				_, found, err := it.Ticket(context.Background(), 9)
				require.NoError(t, err)
				assert.False(t, found)
			}
			assert.Empty(t, it.Tickets())
		})
	}
}

func TestTicket_ErrorPropagates(t *testing.T) {
	it, adapter := newTracker(t)
	authErr := &tracker.UpstreamError{Kind: tracker.ErrorAuthentication, Backend: tracker.KindGitLab}
	adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{3}).Return(nil, authErr)

	_, found, err := it.Ticket(context.Background(), 3)
	assert.False(t, found)
	assert.True(t, tracker.IsAuthentication(err))
	assert.True(t, errors.Is(err, tracker.ErrAuthentication))
}

func TestTicket_MismatchedIDPanics(t *testing.T) {
	it, adapter := newTracker(t)
	adapter.EXPECT().TicketDetails(gomock.Any(), []uint64{5}).Return([]tracker.Ticket{{ID: 6}}, nil)

	assert.Panics(t, func() {
		_, _, _ = it.Ticket(context.Background(), 5)
	})
}

// fakeAdapter serves a fixed ticket set and counts detail calls.
type fakeAdapter struct {
	mu      sync.Mutex
	tickets map[uint64]tracker.Ticket
	details int
}

func (f *fakeAdapter) ListTicketIDs(context.Context) ([]uint64, error) {
	var ids []uint64
	for id := range f.tickets {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeAdapter) TicketDetails(_ context.Context, ids []uint64) ([]tracker.Ticket, error) {
	f.mu.Lock()
	f.details++
	f.mu.Unlock()

	var out []tracker.Ticket
	for _, id := range ids {
		if t, ok := f.tickets[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestIssueTracker_ConcurrentAccess(t *testing.T) {
	fake := &fakeAdapter{tickets: map[uint64]tracker.Ticket{}}
	for id := uint64(1); id <= 20; id++ {
		fake.tickets[id] = tracker.Ticket{ID: id, Title: "t"}
	}
	it := tracker.New(tracker.KindDemo, fake)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch i % 3 {
			case 0:
				_, _ = it.RequestTicketInformation(ctx)
			case 1:
				_, _, _ = it.Ticket(ctx, uint64(i%20)+1)
			default:
				_ = it.Tickets()
			}
		}()
	}
	wg.Wait()

	_, err := it.RequestTicketInformation(ctx)
	require.NoError(t, err)
	assert.Len(t, it.Tickets(), 20)
}
