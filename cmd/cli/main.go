package main

import (
	"context"
	"log"
	"os"

	"github.com/gevp/console/internal/client/cli"
	"github.com/gevp/console/internal/client/config"
	"github.com/gevp/console/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// stdout belongs to the REPL
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
