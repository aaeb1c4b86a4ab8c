package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/client/clienttest"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/client/services"
)

type testEnv struct {
	h      *Handler
	router http.Handler
	be     *clienttest.Backend
}

// newTestEnv wires a Handler to a fake backend and a fresh SQLite database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	be := clienttest.New(t)

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "gevp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	api := client.NewHTTPClient(be.URL(), repo)
	session := services.NewSessionStore(ctx, api, repo, nil)
	prefs := services.NewPreferencesStore(ctx, repo, nil)

	h, err := NewHandler(api, session, prefs, nil)
	require.NoError(t, err)
	return &testEnv{h: h, router: h.Router(), be: be}
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// post submits form with the handler's CSRF token.
func (e *testEnv) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrfField, e.h.csrf)
	return e.postRaw(path, form)
}

func (e *testEnv) postRaw(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) loginAs(t *testing.T, email, password string) {
	t.Helper()
	require.NoError(t, e.h.session.Login(context.Background(), email, password))
}

// follow requests the redirect target of rec carrying its flash cookie and
// returns the rendered body.
func (e *testEnv) follow(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	next := e.get(rec.Header().Get("Location"), rec.Result().Cookies()...)
	return next.Body.String()
}

func countRequests(be *clienttest.Backend, req string) int {
	n := 0
	for _, r := range be.Requests() {
		if r == req {
			n++
		}
	}
	return n
}
