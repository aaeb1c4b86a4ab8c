// Package metadata is the durable key/value storage of the client.
//
// It backs everything the console keeps between runs: the serialized session
// (common.SessionStorageKey), the raw bearer token (common.TokenStorageKey)
// and UI preferences (common.PreferencesStorageKey). Values are opaque bytes;
// LoadJSON and SaveJSON cover the common case of JSON-encoded records.
//
// Get returns (nil, nil) for a missing key so callers can tell "absent" from
// a storage failure without sentinel errors.
package metadata
