package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/gevp/console/internal/client/i18n"
	"github.com/gevp/console/internal/common"
)

// Storage lists what the console keeps in its local database.
func (a *App) Storage(ctx context.Context) error {
	entries, err := a.store.Entries(ctx)
	if err != nil {
		return err
	}

	a.println(a.render().title(a.T("storage.title")))
	if len(entries) == 0 {
		a.println(a.T("storage.empty"))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{e.Key, strconv.Itoa(e.Size), updated})
	}
	a.println(a.render().table([]string{
		a.T("storage.key"),
		a.T("storage.size"),
		a.T("storage.updated"),
	}, rows))
	return nil
}

// Forget signs out and erases the stored session, token and preferences.
func (a *App) Forget(ctx context.Context) error {
	if !GetConfirmation(a.reader, a.T("storage.confirmForget"), a.out) {
		a.println(a.T("app.cancelled"))
		return nil
	}

	a.session.Logout(ctx)
	a.needsLogin.Store(false)
	if err := a.prefs.Reset(ctx); err != nil {
		return err
	}
	if err := a.store.Delete(ctx, common.SessionStorageKey, common.TokenStorageKey); err != nil {
		return err
	}

	a.tr = i18n.New(a.prefs.Preferences().Language)
	a.notify(a.T("storage.forgotten"))
	return nil
}
