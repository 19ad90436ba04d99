package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mnemoapp/mnemo-api/internal/config"
	"github.com/mnemoapp/mnemo-api/internal/platform/postgres"
	"github.com/mnemoapp/mnemo-api/internal/service/auth"
	"github.com/mnemoapp/mnemo-api/internal/service/catalog"
	"github.com/mnemoapp/mnemo-api/internal/service/review"
	"github.com/mnemoapp/mnemo-api/internal/store"
)

// application holds the wired dependencies for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore      store.UserStore
	mnemonicStore  store.MnemonicStore
	statsStore     store.StatsStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	reviewService  review.Service
	catalogService catalog.Service
}

// newApplication wires stores and services from the configuration. The
// caller owns cleanup.
func newApplication(cfg *config.Config) (*application, error) {
	log := slog.Default()

	db, err := openDatabase(cfg.Database.URL, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewUserStore(db, log)
	mnemonicStore := postgres.NewMnemonicStore(db, log)
	statsStore := postgres.NewStatsStore(db, log)

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userStore:      userStore,
		mnemonicStore:  mnemonicStore,
		statsStore:     statsStore,
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(0),
		reviewService:  review.NewService(db, mnemonicStore, statsStore, cfg.Review.DueCardsLimit, log),
		catalogService: catalog.NewService(mnemonicStore, log),
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
