package metadata

import (
	"context"
	"time"
)

// Repository is the key/value store behind the session, the bearer token and
// the preferences.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes keys in one statement. Absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Entries describes the stored values, ordered by key, without loading
	// them.
	Entries(ctx context.Context) ([]Entry, error)
}

// Entry describes one stored value. UpdatedAt is zero for values written
// before write times were recorded.
type Entry struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}
