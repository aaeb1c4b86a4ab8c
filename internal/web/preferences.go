package web

import (
	"net/http"

	"github.com/gevp/console/internal/client/guard"
	"github.com/gevp/console/internal/client/models"
)

// back redirects to the form's "next" field when it is a local path.
func back(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, guard.SafeNext(r.PostFormValue("next")), http.StatusSeeOther)
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	theme := r.PostFormValue("theme")
	if theme == "" || theme == "toggle" {
		h.prefs.ToggleTheme(r.Context())
		back(w, r)
		return
	}

	if err := h.prefs.SetTheme(r.Context(), models.Theme(theme)); err != nil {
		setFlash(w, "error", h.translator().T("prefs.badTheme", theme))
	}
	back(w, r)
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.PostFormValue("language")
	if _, err := h.prefs.SetLanguage(r.Context(), lang); err != nil {
		setFlash(w, "error", h.translator().T("prefs.unsupported", lang))
	}
	back(w, r)
}
