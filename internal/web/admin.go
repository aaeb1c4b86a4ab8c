package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
)

const adminPath = "/admin"

var adminTabs = []string{"users", "countries", "logs"}

type adminData struct {
	Tab       string
	Tabs      []string
	Users     []models.User
	Countries []models.Country
	Logs      []models.AuditLogEntry
	Stats     services.AdminStats
}

// admin renders the super-admin panel. Users and countries feed the
// statistics on every tab; the audit log is only fetched for its tab.
func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	data := adminData{Tab: r.URL.Query().Get("tab"), Tabs: adminTabs}
	switch data.Tab {
	case "users", "countries", "logs":
	default:
		data.Tab = "users"
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.Users, err = h.api.ListUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Countries, err = h.api.ListCountries(ctx)
		return err
	})
	if data.Tab == "logs" {
		g.Go(func() (err error) {
			data.Logs, err = h.api.ListAuditLogs(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}

	data.Stats = services.ComputeAdminStats(data.Users, data.Countries)
	h.render(w, r, http.StatusOK, "admin", "nav.admin", data)
}

func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request) {
	_, err := h.api.ActivateUser(r.Context(), mux.Vars(r)["id"])
	h.done(w, r, adminPath+"?tab=users", err, "users.activated")
}
