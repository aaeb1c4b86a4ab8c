package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/client/clienttest"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/common"
)

func storedKeys(t *testing.T, a *App) []string {
	t.Helper()
	entries, err := a.store.Entries(context.Background())
	require.NoError(t, err)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestStorage_ListsStoredKeys(t *testing.T) {
	a, be, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword)

	got := exec(t, a, out, "storage")
	assert.Contains(t, got, "Nothing is stored locally.")

	loginAs(t, a, out)
	exec(t, a, out, "theme", "dark")
	before := len(be.Requests())

	got = exec(t, a, out, "storage")
	assert.Contains(t, got, "Local storage")
	assert.Contains(t, got, common.SessionStorageKey)
	assert.Contains(t, got, common.TokenStorageKey)
	assert.Contains(t, got, common.PreferencesStorageKey)
	assert.Len(t, be.Requests(), before, "storage is local only")
}

func TestForget_ErasesSessionAndPreferences(t *testing.T) {
	a, _, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword, "y")
	loginAs(t, a, out)
	exec(t, a, out, "lang", "es")
	require.Equal(t, "es", a.tr.Lang())

	got := exec(t, a, out, "forget")
	assert.Contains(t, got, "Local data erased.")
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.api.Token())
	assert.Equal(t, models.DefaultPreferences(), a.prefs.Preferences())
	assert.Equal(t, models.DefaultPreferences().Language, a.tr.Lang())
	assert.Empty(t, storedKeys(t, a))
}

func TestForget_Declined(t *testing.T) {
	a, _, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword, "n")
	loginAs(t, a, out)

	got := exec(t, a, out, "forget")
	assert.Contains(t, got, "Cancelled.")
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, storedKeys(t, a), common.TokenStorageKey)
}
