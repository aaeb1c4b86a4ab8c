package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/gevp/console/internal/client/i18n"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
)

// Theme prints the current theme, or switches to light, dark or the other
// one ("toggle").
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(a.T("prefs.theme", a.prefs.Preferences().Theme))
		return nil
	}

	arg := strings.ToLower(args[0])
	if arg == "toggle" {
		a.notify(a.T("prefs.theme", a.prefs.ToggleTheme(ctx)))
		return nil
	}

	if err := a.prefs.SetTheme(ctx, models.Theme(arg)); err != nil {
		if errors.Is(err, services.ErrUnknownTheme) {
			a.println(a.render().failure(a.T("prefs.badTheme", args[0])))
			return nil
		}
		return err
	}
	a.notify(a.T("prefs.theme", arg))
	return nil
}

// Lang prints the current language and the supported ones, or switches the
// language. Regional tags are accepted ("es-MX").
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(a.T("prefs.language", i18n.LanguageName(a.tr.Lang())))
		codes := make([]string, len(services.SupportedLanguages))
		for i, tag := range services.SupportedLanguages {
			codes[i] = tag.String() + " " + i18n.LanguageName(tag.String())
		}
		a.println(a.render().muted(strings.Join(codes, " · ")))
		return nil
	}

	code, err := a.prefs.SetLanguage(ctx, args[0])
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedLanguage) {
			a.println(a.render().failure(a.T("prefs.unsupported", args[0])))
			return nil
		}
		return err
	}
	a.tr = i18n.New(code)
	a.notify(a.T("prefs.language", i18n.LanguageName(code)))
	return nil
}
