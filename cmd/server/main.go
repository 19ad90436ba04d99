// Package main implements the entry point for the mnemo API server, which
// schedules spaced-repetition review of medical mnemonics.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/mnemoapp/mnemo-api/internal/config"
	"github.com/mnemoapp/mnemo-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if _, err := logger.Setup(cfg.Server.LogLevel); err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		log.Fatal(err)
	}
	defer app.cleanup()

	if err := app.runMigrations(); err != nil {
		slog.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		slog.Error("server exited with error", "error", err)
		log.Fatal(err)
	}
}
