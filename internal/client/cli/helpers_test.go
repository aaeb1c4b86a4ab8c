package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/client/clienttest"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/client/services"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// newTestApp wires an App to a fake backend and a fresh SQLite database.
// lines is the scripted terminal input, passwords included.
func newTestApp(t *testing.T, lines ...string) (*App, *clienttest.Backend, *bytes.Buffer) {
	t.Helper()

	oldTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = oldTerm })

	ctx := context.Background()
	be := clienttest.New(t)

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "gevp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	api := client.NewHTTPClient(be.URL(), repo)
	session := services.NewSessionStore(ctx, api, repo, nil)
	prefs := services.NewPreferencesStore(ctx, repo, nil)

	var out bytes.Buffer
	a := newApp(api, session, prefs, repo, nil, strings.NewReader(""), &out)
	a.reader = readerFromLines(lines...)
	return a, be, &out
}

// exec runs one command and returns what it printed.
func exec(t *testing.T, a *App, out *bytes.Buffer, name string, args ...string) string {
	t.Helper()
	out.Reset()
	require.NoError(t, a.Exec(context.Background(), name, args))
	return out.String()
}

func loginAs(t *testing.T, a *App, out *bytes.Buffer) {
	t.Helper()
	exec(t, a, out, "login")
	require.True(t, a.isLoggedIn(), "login failed: %s", out.String())
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
