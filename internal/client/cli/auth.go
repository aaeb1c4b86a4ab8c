package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
	"github.com/gevp/console/internal/shared"
)

// Login prompts for credentials and signs in. Any pending post-expiry login
// prompt is considered handled, whatever the outcome.
func (a *App) Login(ctx context.Context) error {
	defer a.needsLogin.Store(false)

	email, err := GetSimpleText(a.reader, a.T("auth.email"), a.out)
	if err != nil {
		return err
	}
	pw, err := GetPassword(a.reader, a.T("auth.password"), a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)
	password := string(pw)

	if err := services.ValidateLogin(email, password); err != nil {
		return err
	}
	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	u := currentUser(a.session.Session())
	a.notify(a.T("auth.loggedIn", u.Email, u.Role))
	return nil
}

// Register asks for the registration form, listing the countries to choose
// from, and submits it. The account stays inactive until an administrator
// activates it.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, a.T("auth.email"), a.out)
	if err != nil {
		return err
	}
	pw, err := GetPassword(a.reader, a.T("auth.password"), a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)
	confirm, err := GetPassword(a.reader, a.T("auth.confirmPassword"), a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	roles := make([]string, len(services.RegistrationRoles))
	for i, r := range services.RegistrationRoles {
		roles[i] = string(r)
	}
	role, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", a.T("auth.role"), strings.Join(roles, "/")), a.out)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleEditor)
	}

	countries, err := a.api.ListCountries(ctx)
	if err != nil {
		return err
	}
	a.println(a.countryTable(countries))
	countryID, err := GetSimpleText(a.reader, a.T("auth.country"), a.out)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Email:     email,
		Password:  string(pw),
		Role:      models.Role(strings.ToUpper(role)),
		CountryID: countryID,
	}
	if err := services.ValidateRegistration(reg, string(confirm)); err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, reg)
	if err != nil {
		return err
	}
	msg := resp.Message
	if msg == "" {
		msg = a.T("auth.registered")
	}
	a.notify(msg)
	return nil
}

// WhoAmI re-fetches the profile and prints it with the token expiry, when the
// token carries one.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.session.Refresh(ctx)
	if err != nil {
		return err
	}

	a.println(a.T("auth.loggedIn", u.Email, u.Role))
	if u.CountryID != "" {
		country := u.CountryID
		if u.Country != nil {
			country = u.Country.Name
		}
		a.println(fmt.Sprintf("%s: %s", a.T("auth.country"), country))
	}
	if exp, ok := a.session.TokenExpiry(); ok {
		a.println(a.render().muted(a.T("auth.tokenExpires", exp.Local().Format(time.RFC1123))))
	}
	return nil
}

// Logout clears the local session. The backend is not contacted.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.notify(a.T("auth.loggedOut"))
	return nil
}
