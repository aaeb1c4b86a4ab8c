// Package services holds the client-side state and rules shared by the
// terminal console and the web dashboard.
//
// SessionStore owns the current identity and bearer token; PreferencesStore
// owns theme and language. Both are explicit objects built at process start:
// they rehydrate from the local metadata table, fall back to defaults on any
// load failure, and write every change through to storage.
//
// catalog.go contains pure helpers (filtering, statistics, form validation)
// that operate on records fetched by the views.
package services
