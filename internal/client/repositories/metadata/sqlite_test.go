package metadata

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// setupDB returns an in-memory database carrying the real client schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "."))
	return db
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth-token", []byte("eyJ.tok")))

	v, err := r.Get(ctx, "auth-token")
	require.NoError(t, err)
	require.Equal(t, []byte("eyJ.tok"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValueAndTime(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	first := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	r.now = fixedClock(first)
	require.NoError(t, r.Set(ctx, "ui-preferences", []byte(`{"theme":"light"}`)))
	r.now = fixedClock(first.Add(time.Hour))
	require.NoError(t, r.Set(ctx, "ui-preferences", []byte(`{"theme":"dark"}`)))

	v, err := r.Get(ctx, "ui-preferences")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"theme":"dark"}`), v)

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, first.Add(time.Hour).Equal(entries[0].UpdatedAt))
}

func TestEntries_DescribesValuesInKeyOrder(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	r.now = fixedClock(at)

	require.NoError(t, r.Set(ctx, "ui-preferences", []byte(`{"theme":"dark"}`)))
	require.NoError(t, r.Set(ctx, "auth-token", []byte("tok")))

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "auth-token", entries[0].Key)
	assert.Equal(t, 3, entries[0].Size)
	assert.True(t, at.Equal(entries[0].UpdatedAt))
	assert.Equal(t, "ui-preferences", entries[1].Key)
	assert.Equal(t, 16, entries[1].Size)
}

func TestEntries_Empty(t *testing.T) {
	entries, err := NewSQLiteRepository(setupDB(t)).Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntries_RowWithoutWriteTime(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('auth-storage', x'7B7D')`)
	require.NoError(t, err)

	entries, err := r.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Size)
	assert.True(t, entries[0].UpdatedAt.IsZero())
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestDelete_SeveralKeysLeavesOthers(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, k := range []string{"auth-storage", "auth-token", "ui-preferences"} {
		require.NoError(t, r.Set(ctx, k, []byte("v")))
	}
	require.NoError(t, r.Delete(ctx, "auth-storage", "auth-token", "absent"))

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ui-preferences", entries[0].Key)
}

func TestDelete_NoKeysIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	require.NoError(t, r.Delete(context.Background()), "no statement runs without keys")
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	v, err := r.Get(context.Background(), "k")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get metadata[k]")
}

func TestSet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	err := r.Set(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set metadata[k]")
}

func TestDelete_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	err := r.Delete(context.Background(), "a", "b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete metadata[a, b]")
}

func TestEntries_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Entries(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list metadata")
}
