package cli

import (
	"context"

	"github.com/gevp/console/internal/client/models"
)

// command is one entry of the console's command table.
type command struct {
	usage   string
	summary string

	// auth marks a protected command; role, when set, must match the
	// user's role exactly.
	auth bool
	role models.Role

	minArgs int

	// skipRelogin exempts the command from the pending login prompt that
	// follows an expired session.
	skipRelogin bool

	run func(ctx context.Context, args []string) error
}

// commandOrder is the display order of "help".
var commandOrder = []string{
	"login", "register", "countries", "products", "country", "exporters",
	"convert", "theme", "lang", "health", "storage", "forget",
	"whoami", "logout", "dashboard", "addproduct", "editproduct", "deleteproduct", "addexporter",
	"users", "activate", "audit", "admin",
	"exit",
}

func (a *App) registry() map[string]command {
	noArgs := func(fn func(context.Context) error) func(context.Context, []string) error {
		return func(ctx context.Context, _ []string) error { return fn(ctx) }
	}
	firstArg := func(fn func(context.Context, string) error) func(context.Context, []string) error {
		return func(ctx context.Context, args []string) error { return fn(ctx, args[0]) }
	}

	return map[string]command{
		"login": {
			usage: "login", summary: "sign in",
			skipRelogin: true, run: noArgs(a.Login),
		},
		"register": {
			usage: "register", summary: "request an account",
			skipRelogin: true, run: noArgs(a.Register),
		},
		"countries": {
			usage: "countries", summary: "list participating countries",
			run: noArgs(a.Countries),
		},
		"products": {
			usage: "products [search] [--category=X]", summary: "search the export directory",
			run: a.Products,
		},
		"country": {
			usage: "country <id>", summary: "products and exporters of one country",
			minArgs: 1, run: firstArg(a.Country),
		},
		"exporters": {
			usage: "exporters [countryId]", summary: "list authorized exporters",
			run: a.Exporters,
		},
		"convert": {
			usage: "convert <value> <from> <to>", summary: "convert weight, volume or area units",
			run: a.Convert,
		},
		"theme": {
			usage: "theme [light|dark|toggle]", summary: "show or change the color theme",
			skipRelogin: true, run: a.Theme,
		},
		"lang": {
			usage: "lang [code]", summary: "show or change the language",
			skipRelogin: true, run: a.Lang,
		},
		"health": {
			usage: "health", summary: "check the backend",
			run: noArgs(a.Health),
		},
		"storage": {
			usage: "storage", summary: "show what is stored locally",
			skipRelogin: true, run: noArgs(a.Storage),
		},
		"forget": {
			usage: "forget", summary: "sign out and erase local data",
			skipRelogin: true, run: noArgs(a.Forget),
		},
		"whoami": {
			usage: "whoami", summary: "show the signed-in user",
			auth: true, run: noArgs(a.WhoAmI),
		},
		"logout": {
			usage: "logout", summary: "sign out",
			auth: true, skipRelogin: true, run: noArgs(a.Logout),
		},
		"dashboard": {
			usage: "dashboard", summary: "your country's products, exporters and statistics",
			auth: true, run: noArgs(a.Dashboard),
		},
		"addproduct": {
			usage: "addproduct", summary: "add a product",
			auth: true, run: noArgs(a.AddProduct),
		},
		"editproduct": {
			usage: "editproduct <id>", summary: "edit a product",
			auth: true, minArgs: 1, run: firstArg(a.EditProduct),
		},
		"deleteproduct": {
			usage: "deleteproduct <id>", summary: "delete a product",
			auth: true, minArgs: 1, run: firstArg(a.DeleteProduct),
		},
		"addexporter": {
			usage: "addexporter", summary: "register an authorized exporter",
			auth: true, run: noArgs(a.AddExporter),
		},
		"users": {
			usage: "users", summary: "list users",
			auth: true, role: models.RoleSuperAdmin, run: noArgs(a.Users),
		},
		"activate": {
			usage: "activate <id>", summary: "activate a pending user",
			auth: true, role: models.RoleSuperAdmin, minArgs: 1, run: firstArg(a.ActivateUser),
		},
		"audit": {
			usage: "audit", summary: "show the audit log",
			auth: true, role: models.RoleSuperAdmin, run: noArgs(a.AuditLogs),
		},
		"admin": {
			usage: "admin", summary: "platform statistics",
			auth: true, role: models.RoleSuperAdmin, run: noArgs(a.Admin),
		},
		"exit": {
			usage: "exit | quit", summary: "leave the console",
			skipRelogin: true, run: func(context.Context, []string) error { return nil },
		},
	}
}
