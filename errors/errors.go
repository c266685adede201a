package errors

import "errors"

// Errors returned by the commit-lsp commands.
var (
	// ErrNoTracker indicates the repository has no usable issue tracker.
	ErrNoTracker = errors.New("no issue tracker available")

	// ErrTicketNotFound indicates a lookup matched no single ticket.
	ErrTicketNotFound = errors.New("ticket not found")
)
