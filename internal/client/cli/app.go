package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/config"
	"github.com/gevp/console/internal/client/guard"
	"github.com/gevp/console/internal/client/i18n"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/client/services"
	"github.com/gevp/console/internal/filex"
	"github.com/gevp/console/internal/logging"
)

// errUnknownCommand is returned by Exec for a command that is not registered.
var errUnknownCommand = errors.New("unknown command")

type App struct {
	config  *config.Config
	db      *sql.DB
	api     client.Client
	session *services.SessionStore
	prefs   *services.PreferencesStore
	store   metadata.Repository
	logger  logging.Logger
	tr      *i18n.Translator
	reader  *bufio.Reader
	out     io.Writer

	// needsLogin is set by the session-invalid listener; the next command
	// starts the login prompt.
	needsLogin atomic.Bool

	commands map[string]command
}

// NewApp opens the local database, restores the persisted session and
// preferences and connects the API client to c.APIBaseURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := metadata.NewSQLiteRepository(db)
	api := client.NewHTTPClient(c.APIBaseURL, repo, client.WithLogger(logger))
	session := services.NewSessionStore(ctx, api, repo, logger)
	prefs := services.NewPreferencesStore(ctx, repo, logger)

	a := newApp(api, session, prefs, repo, logger, os.Stdin, os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(api client.Client, session *services.SessionStore, prefs *services.PreferencesStore,
	store metadata.Repository, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}

	a := &App{
		api:     api,
		session: session,
		prefs:   prefs,
		store:   store,
		logger:  logger,
		tr:      i18n.New(prefs.Preferences().Language),
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.commands = a.registry()

	api.OnSessionInvalid(func() {
		a.session.Logout(context.Background())
		a.needsLogin.Store(true)
	})
	return a
}

// Run prints the banner and blocks in the REPL until the user exits or input
// ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println(a.render().title(a.T("app.title")))
	a.println(a.T("app.welcome"))
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the API client and the local database.
func (a *App) Close() error {
	err := a.api.Close()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

// T resolves a message in the current language.
func (a *App) T(id string, args ...any) string {
	return a.tr.T(id, args...)
}

func (a *App) isLoggedIn() bool {
	return a.session.Session().IsAuthenticated
}

// status is shown in the prompt: the user's email or "guest".
func (a *App) status() string {
	s := a.session.Session()
	if !s.IsAuthenticated || s.User == nil {
		return "guest"
	}
	return s.User.Email
}

func (a *App) render() renderer {
	return newRenderer(a.prefs.Preferences().Theme)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) notify(msg string) {
	a.println(a.render().success(msg))
}

// fail prints one notification for err. Validation failures list every
// field; everything else shows the backend message or a fallback text.
func (a *App) fail(err error) {
	var (
		verr   *services.ValidationError
		apiErr *client.APIError
	)

	switch {
	case errors.As(err, &verr):
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			a.println(a.render().failure(fmt.Sprintf("%s: %s", f, a.T("validation."+verr.Fields[f]))))
		}
		return

	case errors.As(err, &apiErr) && apiErr.Detail != "":
		a.println(a.render().failure(apiErr.Detail))

	case errors.Is(err, client.ErrSessionInvalid):
		a.println(a.render().failure(a.T("auth.sessionExpired")))

	case errors.Is(err, client.ErrUnavailable):
		a.println(a.render().failure(a.T("errors.unavailable")))

	default:
		a.println(a.render().failure(a.T("errors.generic")))
	}
	a.logger.Debug(context.Background(), "command failed", "error", err)
}

// Exec runs one command line. It returns errUnknownCommand for an
// unregistered command; handler errors are reported to the user and not
// returned.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	cmd, ok := a.commands[name]
	if !ok {
		return errUnknownCommand
	}

	prompted := false
	if a.needsLogin.CompareAndSwap(true, false) && !cmd.skipRelogin {
		a.println(a.render().failure(a.T("auth.loginRequired")))
		prompted = true
		if err := a.Login(ctx); err != nil {
			a.fail(err)
		}
	}

	if cmd.auth {
		switch guard.Check(a.session.Session(), cmd.role) {
		case guard.RedirectLogin:
			if prompted {
				return nil
			}
			a.println(a.T("auth.loginRequired"))
			if err := a.Login(ctx); err != nil {
				a.fail(err)
				return nil
			}
			if guard.Check(a.session.Session(), cmd.role) != guard.Allow {
				a.println(a.render().failure(a.T("auth.notAuthorized")))
				return nil
			}
		case guard.Forbidden:
			a.println(a.render().failure(a.T("auth.notAuthorized")))
			return nil
		}
	}

	if len(args) < cmd.minArgs {
		a.println(a.T("app.usage", cmd.usage))
		return nil
	}

	if err := cmd.run(ctx, args); err != nil {
		a.fail(err)
	}
	return nil
}

// help lists the commands the current session can use.
func (a *App) help() string {
	s := a.session.Session()

	var b strings.Builder
	for _, name := range commandOrder {
		cmd := a.commands[name]
		if cmd.auth && guard.Check(s, cmd.role) != guard.Allow {
			continue
		}
		fmt.Fprintf(&b, "  %-36s %s\n", cmd.usage, a.render().muted(cmd.summary))
	}
	return strings.TrimRight(b.String(), "\n")
}

func currentUser(s models.Session) models.User {
	if s.User == nil {
		return models.User{}
	}
	return *s.User
}
