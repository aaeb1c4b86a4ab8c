package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/common"
	"github.com/gevp/console/internal/logging"
	"golang.org/x/text/language"
)

var (
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// SupportedLanguages lists the UI languages in display order.
var SupportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.Bengali,
}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// MatchLanguage maps a BCP 47 tag onto a supported UI language and returns
// its base code, e.g. "es-MX" yields "es".
func MatchLanguage(tag string) (string, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}

	_, idx, conf := languageMatcher.Match(t)
	if conf < language.High {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return SupportedLanguages[idx].String(), nil
}

// PreferencesStore holds the UI preferences, persisted under
// common.PreferencesStorageKey.
type PreferencesStore struct {
	repo   metadata.Repository
	logger logging.Logger

	mu    sync.RWMutex
	prefs models.Preferences
}

// NewPreferencesStore loads stored preferences. Unreadable or invalid values
// are replaced by models.DefaultPreferences field by field.
func NewPreferencesStore(ctx context.Context, repo metadata.Repository, logger logging.Logger) *PreferencesStore {
	if logger == nil {
		logger = logging.Nop()
	}
	p := &PreferencesStore{repo: repo, logger: logger, prefs: models.DefaultPreferences()}
	p.load(ctx)
	return p
}

func (p *PreferencesStore) load(ctx context.Context) {
	if p.repo == nil {
		return
	}

	var stored models.Preferences
	found, err := metadata.LoadJSON(ctx, p.repo, common.PreferencesStorageKey, &stored)
	if err != nil {
		p.logger.Warn(ctx, "cannot restore preferences, using defaults", "error", err)
		return
	}
	if !found {
		return
	}

	if stored.Theme == models.ThemeLight || stored.Theme == models.ThemeDark {
		p.prefs.Theme = stored.Theme
	}
	if lang, err := MatchLanguage(stored.Language); err == nil {
		p.prefs.Language = lang
	}
}

// Preferences returns the current preferences.
func (p *PreferencesStore) Preferences() models.Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefs
}

// Language returns the current UI language as a tag.
func (p *PreferencesStore) Language() language.Tag {
	return language.Make(p.Preferences().Language)
}

// ToggleTheme switches between light and dark and returns the new theme.
func (p *PreferencesStore) ToggleTheme(ctx context.Context) models.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prefs.Theme == models.ThemeDark {
		p.prefs.Theme = models.ThemeLight
	} else {
		p.prefs.Theme = models.ThemeDark
	}
	p.persistLocked(ctx)
	return p.prefs.Theme
}

func (p *PreferencesStore) SetTheme(ctx context.Context, t models.Theme) error {
	if t != models.ThemeLight && t != models.ThemeDark {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, t)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs.Theme = t
	p.persistLocked(ctx)
	return nil
}

// SetLanguage matches tag against the supported languages and stores the
// result, which is also returned.
func (p *PreferencesStore) SetLanguage(ctx context.Context, tag string) (string, error) {
	lang, err := MatchLanguage(tag)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs.Language = lang
	p.persistLocked(ctx)
	return lang, nil
}

// Reset restores models.DefaultPreferences and removes the stored copy.
func (p *PreferencesStore) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prefs = models.DefaultPreferences()
	if p.repo == nil {
		return nil
	}
	if err := p.repo.Delete(ctx, common.PreferencesStorageKey); err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}

func (p *PreferencesStore) persistLocked(ctx context.Context) {
	if p.repo == nil {
		return
	}
	if err := metadata.SaveJSON(ctx, p.repo, common.PreferencesStorageKey, p.prefs); err != nil {
		p.logger.Warn(ctx, "failed to persist preferences", "error", err)
	}
}
