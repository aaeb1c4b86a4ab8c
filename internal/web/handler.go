package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/guard"
	"github.com/gevp/console/internal/client/i18n"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
	"github.com/gevp/console/internal/logging"
	"github.com/gevp/console/internal/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

const csrfField = "csrf"

var pageNames = []string{"home", "exports", "login", "register", "dashboard", "admin", "forbidden"}

// Handler serves the dashboard pages.
type Handler struct {
	api     client.Client
	session *services.SessionStore
	prefs   *services.PreferencesStore
	logger  logging.Logger

	csrf  string
	pages map[string]*template.Template
}

// NewHandler parses the embedded templates and registers the session-invalid
// listener that logs the local operator out after a 401.
func NewHandler(api client.Client, session *services.SessionStore, prefs *services.PreferencesStore, logger logging.Logger) (*Handler, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	token, err := shared.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("csrf token: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}

	h := &Handler{
		api:     api,
		session: session,
		prefs:   prefs,
		logger:  logger.With("module", "web"),
		csrf:    token,
		pages:   pages,
	}

	api.OnSessionInvalid(func() {
		h.session.Logout(context.Background())
	})
	return h, nil
}

type languageOption struct {
	Code string
	Name string
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"num": func(tr *i18n.Translator, v any) string {
		switch n := v.(type) {
		case int:
			return tr.Number(float64(n))
		case float64:
			return tr.Number(n)
		}
		return fmt.Sprint(v)
	},
	"languages": func() []languageOption {
		out := make([]languageOption, len(services.SupportedLanguages))
		for i, tag := range services.SupportedLanguages {
			out[i] = languageOption{Code: tag.String(), Name: i18n.LanguageName(tag.String())}
		}
		return out
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format(time.DateTime)
	},
}

// Router returns the routes of the dashboard.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(h.logger), csrfProtect(h.csrf))

	r.HandleFunc("/", h.home).Methods(http.MethodGet)
	r.HandleFunc("/exports", h.exports).Methods(http.MethodGet)
	r.HandleFunc("/convert", h.convert).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	r.HandleFunc("/login", h.loginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/register", h.registerForm).Methods(http.MethodGet)
	r.HandleFunc("/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	r.HandleFunc("/preferences/theme", h.setTheme).Methods(http.MethodPost)
	r.HandleFunc("/preferences/language", h.setLanguage).Methods(http.MethodPost)

	forbidden := http.HandlerFunc(h.forbidden)

	dash := r.PathPrefix("/dashboard").Subrouter()
	dash.Use(guard.Middleware(h.currentSession, "", forbidden))
	dash.HandleFunc("", h.dashboard).Methods(http.MethodGet)
	dash.HandleFunc("/products", h.createProduct).Methods(http.MethodPost)
	dash.HandleFunc("/products/{id}", h.updateProduct).Methods(http.MethodPost)
	dash.HandleFunc("/products/{id}/delete", h.deleteProduct).Methods(http.MethodPost)
	dash.HandleFunc("/exporters", h.createExporter).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(guard.Middleware(h.currentSession, models.RoleSuperAdmin, forbidden))
	admin.HandleFunc("", h.admin).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/activate", h.activateUser).Methods(http.MethodPost)

	return r
}

func (h *Handler) currentSession(*http.Request) models.Session {
	return h.session.Session()
}

func (h *Handler) translator() *i18n.Translator {
	return i18n.New(h.prefs.Preferences().Language)
}

// page is the data every template receives. Data holds the page specific
// part.
type page struct {
	Title   string
	Tr      *i18n.Translator
	Session models.Session
	User    models.User
	Prefs   models.Preferences
	Flash   *flash
	CSRF    string
	Path    string
	Data    any
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, titleID string, data any) {
	tr := h.translator()
	s := h.session.Session()

	p := page{
		Title:   tr.T(titleID),
		Tr:      tr,
		Session: s,
		Prefs:   h.prefs.Preferences(),
		Flash:   popFlash(w, r),
		CSRF:    h.csrf,
		Path:    r.URL.RequestURI(),
		Data:    data,
	}
	if s.User != nil {
		p.User = *s.User
	}

	var buf bytes.Buffer
	if err := h.pages[name].Execute(&buf, p); err != nil {
		h.logger.Error(r.Context(), "render failed", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "forbidden", "auth.notAuthorized", nil)
}

// message returns the text shown for err in the operator's language.
func (h *Handler) message(err error) string {
	tr := h.translator()

	var (
		verr   *services.ValidationError
		apiErr *client.APIError
	)
	switch {
	case errors.As(err, &verr):
		parts := make([]string, 0, len(verr.Fields))
		for _, f := range slices.Sorted(maps.Keys(verr.Fields)) {
			parts = append(parts, f+": "+tr.T("validation."+verr.Fields[f]))
		}
		return strings.Join(parts, "; ")
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	case errors.Is(err, client.ErrSessionInvalid):
		return tr.T("auth.sessionExpired")
	case errors.Is(err, client.ErrUnavailable):
		return tr.T("errors.unavailable")
	}
	return tr.T("errors.generic")
}

// fail handles an error of a page fetch. A 401 sends the operator to the
// login page; anything else is reported with a 502 page carrying the message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, client.ErrSessionInvalid) {
		setFlash(w, "error", h.translator().T("auth.sessionExpired"))
		http.Redirect(w, r, guard.LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
		return
	}

	h.logger.Warn(r.Context(), "backend call failed", "path", r.URL.Path, "error", err)
	status := http.StatusBadGateway
	if errors.Is(err, client.ErrForbidden) {
		status = http.StatusForbidden
	}
	http.Error(w, h.message(err), status)
}

// done finishes a form post: the outcome goes into a flash and the browser
// is redirected to target. A 401 sends the operator to the login page
// instead.
func (h *Handler) done(w http.ResponseWriter, r *http.Request, target string, err error, successID string) {
	switch {
	case errors.Is(err, client.ErrSessionInvalid):
		setFlash(w, "error", h.translator().T("auth.sessionExpired"))
		http.Redirect(w, r, guard.LoginURL(target), http.StatusSeeOther)
		return
	case err != nil:
		setFlash(w, "error", h.message(err))
	default:
		setFlash(w, "success", h.translator().T(successID))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
