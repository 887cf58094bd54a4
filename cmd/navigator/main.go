package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/azhukov/campus-navigator/internal/buildinfo"
	"github.com/azhukov/campus-navigator/internal/client/cli"
	"github.com/azhukov/campus-navigator/internal/client/config"
	"github.com/azhukov/campus-navigator/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// optional .env for local development; absence is not an error
	_ = godotenv.Load()

	cfg := config.Load()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("exited with error", "error", err)
		os.Exit(1)
	}
}
