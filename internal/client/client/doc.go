// Package client contains the client-side building blocks for talking to the
// GEVP backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     method per backend action: Login/Register/CurrentUser, countries,
//     products, exporters, admin user management and audit logs.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that injects the
//     registered bearer token into every request, tags requests with an
//     X-Request-ID, and turns any 401 response into a session-invalid signal.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the shells, wiring an SQLite database and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the backend payload.
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrSessionInvalid and ErrUnauthorized (any 401), ErrForbidden
// (403), ErrNotFound (404), ErrUnavailable (transport failure) and ErrDecode
// (unreadable 2xx body). Message turns any of them into a single line for the
// user.
//
// # Session invalidation
//
// A 401 from any endpoint clears the registered token together with its
// persisted copy, then invokes every listener registered with
// OnSessionInvalid exactly once. The client never retries and never refreshes
// tokens; reacting to the signal (logging out, sending the user to the login
// prompt) is left to the caller.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. The token is read once when a request
// is dispatched, so a request in flight keeps the header it was sent with even
// if the token changes meanwhile.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     APIError, ErrSessionInvalid, ErrUnavailable, Message
package client
