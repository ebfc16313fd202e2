package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/config"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/events"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/platform/postgres"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/service"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Event system
	bus *events.Bus

	// Services
	userService service.UserService
	taskService service.TaskService
}

// newApplication creates a new application instance with all
// dependencies initialized: database connection, schema migrations,
// stores, the event bus, and the services composing them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.db = db
	logger.Info("Database connection established")

	if err := postgres.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Database schema up to date")

	app.userStore = postgres.NewUserStore(db, logger)
	app.taskStore = postgres.NewTaskStore(db, logger)

	app.bus = events.NewBus(logger)

	app.userService, err = service.NewUserService(app.userStore, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, app.userStore, app.bus, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources: the event
// bus first so every live subscription stream drains and ends, then the
// database connection.
func (app *application) cleanup() {
	if app.bus != nil {
		app.bus.Close()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
