package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/carebook/carebook/internal/client/cli"
	"github.com/carebook/carebook/internal/client/config"
	"github.com/carebook/carebook/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
