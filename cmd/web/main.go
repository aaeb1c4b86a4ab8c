package main

import (
	"context"
	"log"

	"github.com/gevp/console/internal/client/config"
	"github.com/gevp/console/internal/logging"
	"github.com/gevp/console/internal/web"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewProductionZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := web.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
