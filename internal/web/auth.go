package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/guard"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
)

type loginData struct {
	Email string
	Next  string
	Error string
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", "auth.login", loginData{Next: r.URL.Query().Get("next")})
}

// login signs the operator in and redirects to the requested page, or to the
// dashboard.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	data := loginData{
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Next:  r.PostFormValue("next"),
	}
	password := r.PostFormValue("password")

	if err := services.ValidateLogin(data.Email, password); err != nil {
		data.Error = h.message(err)
		h.render(w, r, http.StatusUnprocessableEntity, "login", "auth.login", data)
		return
	}

	if err := h.session.Login(r.Context(), data.Email, password); err != nil {
		data.Error = h.message(err)
		status := http.StatusBadGateway
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		h.render(w, r, status, "login", "auth.login", data)
		return
	}

	u := h.session.Session().User
	setFlash(w, "success", h.translator().T("auth.loggedIn", u.Email, u.Role))

	target := "/dashboard"
	if data.Next != "" {
		target = guard.SafeNext(data.Next)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type registerData struct {
	Email     string
	Role      models.Role
	CountryID string
	Countries []models.Country
	Roles     []models.Role
	Error     string
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, registerData{Role: models.RoleEditor})
}

func (h *Handler) renderRegister(w http.ResponseWriter, r *http.Request, status int, data registerData) {
	countries, err := h.api.ListCountries(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data.Countries = countries
	data.Roles = services.RegistrationRoles
	h.render(w, r, status, "register", "auth.register", data)
}

// register submits the registration form. A new account is inactive, so the
// operator is sent to the login page with a notice rather than signed in.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	reg := models.Registration{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Password:  r.PostFormValue("password"),
		Role:      models.Role(r.PostFormValue("role")),
		CountryID: r.PostFormValue("country_id"),
	}
	if reg.Role == "" {
		reg.Role = models.RoleEditor
	}
	data := registerData{Email: reg.Email, Role: reg.Role, CountryID: reg.CountryID}

	if err := services.ValidateRegistration(reg, r.PostFormValue("confirm_password")); err != nil {
		data.Error = h.message(err)
		h.renderRegister(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	resp, err := h.api.Register(r.Context(), reg)
	if err != nil {
		data.Error = h.message(err)
		status := http.StatusBadGateway
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		h.renderRegister(w, r, status, data)
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = h.translator().T("auth.registered")
	}
	setFlash(w, "success", msg)
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	setFlash(w, "success", h.translator().T("auth.loggedOut"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
