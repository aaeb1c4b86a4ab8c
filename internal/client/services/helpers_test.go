package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupRepo(t *testing.T) (*metadata.SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "gevp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return metadata.NewSQLiteRepository(db), db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake API ----

// fakeAPI implements AuthAPI and mimics the token handling of the HTTP
// client, including the session-invalid signal on 401.
type fakeAPI struct {
	mu    sync.Mutex
	token string

	LoginToken string
	LoginErr   error
	MeUser     models.User
	MeErr      error

	LoginCalls int
	MeCalls    int
	SetCalls   []string

	onInvalid func()
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return models.TokenResponse{}, f.LoginErr
	}
	_ = f.SetAuthToken(ctx, f.LoginToken)
	return models.TokenResponse{AccessToken: f.LoginToken, TokenType: "bearer"}, nil
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (models.User, error) {
	f.MeCalls++
	if f.MeErr != nil {
		f.fail(f.MeErr)
		return models.User{}, f.MeErr
	}
	return f.MeUser, nil
}

func (f *fakeAPI) fail(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
		f.mu.Lock()
		f.token = ""
		fn := f.onInvalid
		f.mu.Unlock()
		if fn != nil {
			fn()
		}
	}
}

func (f *fakeAPI) SetAuthToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.SetCalls = append(f.SetCalls, token)
	return nil
}

func (f *fakeAPI) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}
