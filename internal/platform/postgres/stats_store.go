package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/platform/logger"
	"github.com/mnemoapp/mnemo-api/internal/store"
)

// StatsStore implements store.StatsStore using a PostgreSQL database as the
// storage backend. The (user_id, mnemonic_id) pair is the primary key, so
// GetForUpdate's row lock serializes concurrent updates per key while
// leaving other keys untouched.
type StatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStatsStore creates a new PostgreSQL implementation of the StatsStore
// interface. If logger is nil, a default logger is used.
func NewStatsStore(db store.DBTX, logger *slog.Logger) *StatsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure StatsStore implements store.StatsStore
var _ store.StatsStore = (*StatsStore)(nil)

const statsColumns = `user_id, mnemonic_id, correct_count, incorrect_count,
	ease_factor, interval_days, last_reviewed_at, created_at, updated_at`

// Get implements store.StatsStore.Get
func (s *StatsStore) Get(ctx context.Context, userID, mnemonicID uuid.UUID) (*domain.MnemonicStats, error) {
	query := `SELECT ` + statsColumns + `
		FROM mnemonic_stats
		WHERE user_id = $1 AND mnemonic_id = $2`

	return s.getStats(ctx, query, userID, mnemonicID)
}

// GetForUpdate implements store.StatsStore.GetForUpdate
func (s *StatsStore) GetForUpdate(ctx context.Context, userID, mnemonicID uuid.UUID) (*domain.MnemonicStats, error) {
	query := `SELECT ` + statsColumns + `
		FROM mnemonic_stats
		WHERE user_id = $1 AND mnemonic_id = $2
		FOR UPDATE`

	return s.getStats(ctx, query, userID, mnemonicID)
}

func (s *StatsStore) getStats(ctx context.Context, query string, userID, mnemonicID uuid.UUID) (*domain.MnemonicStats, error) {
	stats, err := scanStats(s.db.QueryRowContext(ctx, query, userID, mnemonicID))
	if err != nil {
		if IsNotFound(err) {
			return nil, store.ErrStatsNotFound
		}
		return nil, MapError(err)
	}
	return stats, nil
}

// Upsert implements store.StatsStore.Upsert
func (s *StatsStore) Upsert(ctx context.Context, stats *domain.MnemonicStats) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := stats.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO mnemonic_stats (` + statsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, mnemonic_id) DO UPDATE SET
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count,
			ease_factor = EXCLUDED.ease_factor,
			interval_days = EXCLUDED.interval_days,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		stats.UserID, stats.MnemonicID, stats.CorrectCount, stats.IncorrectCount,
		stats.EaseFactor, stats.IntervalDays, nullableTime(stats.LastReviewedAt),
		stats.CreatedAt, stats.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: mnemonic %s or user %s not found",
				store.ErrInvalidEntity, stats.MnemonicID, stats.UserID)
		}
		log.Error("failed to upsert mnemonic stats",
			slog.String("error", err.Error()),
			slog.String("user_id", stats.UserID.String()),
			slog.String("mnemonic_id", stats.MnemonicID.String()))
		return MapError(err)
	}

	log.Debug("mnemonic stats upserted",
		slog.String("user_id", stats.UserID.String()),
		slog.String("mnemonic_id", stats.MnemonicID.String()),
		slog.Int("interval_days", stats.IntervalDays))
	return nil
}

// ListByUser implements store.StatsStore.ListByUser
func (s *StatsStore) ListByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]*domain.MnemonicStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + statsColumns + `
		FROM mnemonic_stats
		WHERE user_id = $1`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list mnemonic stats",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	statsByMnemonic := make(map[uuid.UUID]*domain.MnemonicStats)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, MapError(err)
		}
		statsByMnemonic[stats.MnemonicID] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return statsByMnemonic, nil
}

// WithTx implements store.StatsStore.WithTx
func (s *StatsStore) WithTx(tx *sql.Tx) store.StatsStore {
	return &StatsStore{db: tx, logger: s.logger}
}

func scanStats(row rowScanner) (*domain.MnemonicStats, error) {
	var stats domain.MnemonicStats
	var lastReviewed sql.NullTime

	err := row.Scan(
		&stats.UserID, &stats.MnemonicID, &stats.CorrectCount, &stats.IncorrectCount,
		&stats.EaseFactor, &stats.IntervalDays, &lastReviewed,
		&stats.CreatedAt, &stats.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if lastReviewed.Valid {
		stats.LastReviewedAt = lastReviewed.Time
	}

	return &stats, nil
}

// nullableTime maps the domain's zero-time convention to SQL NULL.
func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
