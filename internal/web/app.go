package web

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/config"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/client/services"
	"github.com/gevp/console/internal/filex"
	"github.com/gevp/console/internal/logging"
)

// App runs the web dashboard for one local operator.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    client.Client
	server *Server
}

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

	h, err := NewHandler(api, session, prefs, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		api:    api,
		server: NewServer(c.WebAddr, h.Router(), logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the dashboard until a termination signal arrives or ctx is
// cancelled.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting web dashboard...", "api", app.config.APIBaseURL)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "server stopped", "error", err)
			cancelFunc()
		}
	}()
	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close failed", "error", err)
	}
}

// Close releases the API client and the local database.
func (app *App) Close() error {
	return errors.Join(app.api.Close(), app.db.Close())
}
