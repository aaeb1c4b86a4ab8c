// Package models defines the records exchanged with the GEVP backend and the
// client-side state persisted between runs.
//
// Backend records are decoded leniently: the API mixes snake_case and
// camelCase keys depending on the endpoint, so Product, Exporter and
// AuditLogEntry accept both spellings. Encoding always uses the snake_case
// names the write endpoints expect.
package models
