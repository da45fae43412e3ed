package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/homeboard/internal/buildinfo"
	"github.com/dmitrijs2005/homeboard/internal/client/cli"
	"github.com/dmitrijs2005/homeboard/internal/client/config"
	"github.com/dmitrijs2005/homeboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// optional .env next to the binary; missing file is fine
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
