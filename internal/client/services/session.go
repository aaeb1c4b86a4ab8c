package services

import (
	"context"
	"sync"
	"time"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/common"
	"github.com/gevp/console/internal/logging"
)

// AuthAPI is the subset of the backend client used by SessionStore.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.TokenResponse, error)
	CurrentUser(ctx context.Context) (models.User, error)
	SetAuthToken(ctx context.Context, token string) error
	Token() string
}

// SessionStore holds the authenticated identity.
//
// State changes only through Login, Logout and SetUser. Each change is
// written to the metadata table under common.SessionStorageKey. Storage
// failures are logged and never undo the in-memory change.
//
// The store never holds its lock across a network call: the API client's
// session-invalid listeners typically call Logout.
type SessionStore struct {
	api    AuthAPI
	repo   metadata.Repository
	logger logging.Logger

	mu    sync.RWMutex
	state models.Session
}

// NewSessionStore builds a store and restores the persisted session. A
// restored token is registered with api before the store is returned. A
// missing, unreadable or inconsistent entry leaves the store logged out.
func NewSessionStore(ctx context.Context, api AuthAPI, repo metadata.Repository, logger logging.Logger) *SessionStore {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &SessionStore{api: api, repo: repo, logger: logger}
	s.rehydrate(ctx)
	return s
}

func (s *SessionStore) rehydrate(ctx context.Context) {
	if s.repo == nil {
		return
	}

	var st models.Session
	found, err := metadata.LoadJSON(ctx, s.repo, common.SessionStorageKey, &st)
	switch {
	case err != nil:
		s.logger.Warn(ctx, "cannot restore session, starting logged out", "error", err)
		return
	case !found:
		return
	case !st.Consistent():
		s.logger.Warn(ctx, "stored session is inconsistent, starting logged out",
			"has_user", st.User != nil, "has_token", st.Token != "", "authenticated", st.IsAuthenticated)
		return
	case !st.IsAuthenticated:
		return
	}

	if err := s.api.SetAuthToken(ctx, st.Token); err != nil {
		s.logger.Warn(ctx, "failed to persist restored token", "error", err)
	}
	s.state = st
}

// Session returns a copy of the current state.
func (s *SessionStore) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Login authenticates with the backend, fetches the profile and stores both.
// On failure the backend error is returned unchanged and the session is left
// as it was.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.restoreToken(ctx)
		return err
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.restoreToken(ctx)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.NewSession(user, tok.AccessToken)
	s.persistLocked(ctx)

	s.logger.Info(ctx, "logged in", "user_id", user.ID, "role", user.Role)
	return nil
}

// restoreToken puts back the token of the current session after a failed
// login attempt, or clears the API token when there is no session. A 401
// listener may already have logged the store out, in which case the token is
// cleared as well.
func (s *SessionStore) restoreToken(ctx context.Context) {
	s.mu.RLock()
	token := s.state.Token
	s.mu.RUnlock()

	if s.api.Token() == token {
		return
	}
	if err := s.api.SetAuthToken(ctx, token); err != nil {
		s.logger.Warn(ctx, "failed to restore token", "error", err)
	}
}

// Logout clears the session and the API token. It makes no backend call and
// is safe to call repeatedly.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.state.IsAuthenticated
	s.state = models.Session{}
	s.persistLocked(ctx)
	s.mu.Unlock()

	if err := s.api.SetAuthToken(ctx, ""); err != nil {
		s.logger.Warn(ctx, "failed to purge token", "error", err)
	}
	if wasAuthenticated {
		s.logger.Info(ctx, "logged out")
	}
}

// SetUser replaces the cached profile, keeping the token.
func (s *SessionStore) SetUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &user
	s.state.IsAuthenticated = s.state.Token != ""
	s.persistLocked(ctx)
}

// Refresh re-reads the profile from the backend and applies it with SetUser.
func (s *SessionStore) Refresh(ctx context.Context) (models.User, error) {
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	authenticated := s.state.IsAuthenticated
	s.mu.RUnlock()

	// A concurrent logout wins over a late profile response.
	if authenticated {
		s.SetUser(ctx, user)
	}
	return user, nil
}

// TokenExpiry reports the expiry of the current token, see TokenExpiry.
func (s *SessionStore) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	token := s.state.Token
	s.mu.RUnlock()
	return TokenExpiry(token)
}

func (s *SessionStore) persistLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := metadata.SaveJSON(ctx, s.repo, common.SessionStorageKey, s.state); err != nil {
		s.logger.Warn(ctx, "failed to persist session", "error", err)
	}
}
