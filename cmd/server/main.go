// Package main implements the entry point for the TaskHub API server,
// which manages users and their tasks and streams task-created events
// to live subscribers.
package main

import (
	"context"
	"log"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/config"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.Setup(cfg.Server)
	logr.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, logr)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
