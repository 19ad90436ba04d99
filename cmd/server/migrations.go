package main

import (
	"fmt"

	"github.com/mnemoapp/mnemo-api/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations applies any pending embedded migrations at startup.
func (app *application) runMigrations() error {
	goose.SetBaseFS(migrations.Files)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(app.db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}
