package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// StatsStore defines the interface for mnemonic statistics persistence.
// There is at most one record per (user, mnemonic) pair.
type StatsStore interface {
	// Get retrieves stats by the combination of user ID and mnemonic ID.
	// Returns ErrStatsNotFound if the record does not exist. No row lock is
	// taken; do not use this when you plan to update the row.
	Get(ctx context.Context, userID, mnemonicID uuid.UUID) (*domain.MnemonicStats, error)

	// GetForUpdate retrieves stats with a row-level lock (SELECT FOR
	// UPDATE). Must be called within a transaction; it is what serializes
	// concurrent answer submissions for the same (user, mnemonic) key.
	// Returns ErrStatsNotFound if the record does not exist.
	GetForUpdate(ctx context.Context, userID, mnemonicID uuid.UUID) (*domain.MnemonicStats, error)

	// Upsert creates the record if absent or overwrites it if present, as a
	// single atomic statement. It handles domain validation internally.
	Upsert(ctx context.Context, stats *domain.MnemonicStats) error

	// ListByUser retrieves all stats records for the given user, keyed by
	// mnemonic ID. The map may be sparse relative to the user's catalog.
	ListByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]*domain.MnemonicStats, error)

	// WithTx returns a new StatsStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) StatsStore
}
