// Package http provides the JSON client used by tracker backends that have no
// dedicated SDK, plus a page iterator shared by the SDK-backed ones.
//
// The client issues read queries only and never retries: a failed request is
// reported to the caller, which decides whether to ask again later.
//
// Errors:
//   - Network failures wrap ErrTransport
//   - Non-success statuses return *APIError; 401 and 429 unwrap to
//     ErrUnauthorized and ErrRateLimited
//   - Undecodable bodies wrap ErrDecode
package http
