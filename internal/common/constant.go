// Package common holds names shared by the GEVP client layers: storage keys
// for the local metadata table and HTTP header names used on outbound calls.
package common

// Keys of the local metadata table.
const (
	// SessionStorageKey holds the serialized session (user, token, isAuthenticated).
	SessionStorageKey = "auth-storage"
	// TokenStorageKey holds the raw bearer token registered with the API client.
	TokenStorageKey = "auth-token"
	// PreferencesStorageKey holds the serialized UI preferences (theme, language).
	PreferencesStorageKey = "ui-preferences"
)

// Header names set by the API client.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
