package cli

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
)

func (a *App) Users(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	a.printUsers(users)
	return nil
}

func (a *App) ActivateUser(ctx context.Context, id string) error {
	resp, err := a.api.ActivateUser(ctx, id)
	if err != nil {
		return err
	}
	msg := resp.Message
	if msg == "" {
		msg = a.T("users.activated")
	}
	a.notify(msg)
	return a.Users(ctx)
}

func (a *App) AuditLogs(ctx context.Context) error {
	logs, err := a.api.ListAuditLogs(ctx)
	if err != nil {
		return err
	}

	a.println(a.render().title(a.T("audit.title")))
	if len(logs) == 0 {
		a.println(a.T("audit.none"))
		return nil
	}

	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		user := l.UserID
		if l.User != nil {
			user = l.User.Email
		}
		ts := ""
		if !l.Timestamp.IsZero() {
			ts = l.Timestamp.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{ts, user, l.Action, l.Description})
	}
	a.println(a.render().table([]string{
		a.T("audit.timestamp"),
		a.T("audit.user"),
		a.T("audit.action"),
		a.T("audit.description"),
	}, rows))
	return nil
}

// Admin prints the platform statistics followed by the user list.
func (a *App) Admin(ctx context.Context) error {
	var (
		users     []models.User
		countries []models.Country
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = a.api.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		countries, err = a.api.ListCountries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	st := services.ComputeAdminStats(users, countries)
	a.println(a.render().title(a.T("nav.admin")))
	a.println(a.render().table([]string{"", ""}, [][]string{
		{a.T("stats.totalUsers"), a.tr.Number(float64(st.TotalUsers))},
		{a.T("stats.countries"), a.tr.Number(float64(st.Countries))},
		{a.T("stats.activeUsers"), a.tr.Number(float64(st.ActiveUsers))},
		{a.T("stats.pending"), a.tr.Number(float64(st.Pending))},
	}))
	a.printUsers(users)
	return nil
}

func (a *App) printUsers(users []models.User) {
	a.println(a.render().title(a.T("users.title")))

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		status := a.T("users.pending")
		if u.IsActive {
			status = a.T("users.active")
		}
		country := u.CountryID
		if u.Country != nil {
			country = u.Country.Name
		}
		rows = append(rows, []string{u.ID, u.Email, string(u.Role), country, status})
	}
	a.println(a.render().table([]string{
		"ID",
		a.T("auth.email"),
		a.T("auth.role"),
		a.T("auth.country"),
		"",
	}, rows))
}
