package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/platform/logger"
	"github.com/mnemoapp/mnemo-api/internal/store"
)

// MnemonicStore implements store.MnemonicStore using a PostgreSQL database
// as the storage backend. Tags are stored as a JSONB array.
type MnemonicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMnemonicStore creates a new PostgreSQL implementation of the
// MnemonicStore interface. If logger is nil, a default logger is used.
func NewMnemonicStore(db store.DBTX, logger *slog.Logger) *MnemonicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MnemonicStore{
		db:     db,
		logger: logger.With(slog.String("component", "mnemonic_store")),
	}
}

// Ensure MnemonicStore implements store.MnemonicStore
var _ store.MnemonicStore = (*MnemonicStore)(nil)

// Create implements store.MnemonicStore.Create
func (s *MnemonicStore) Create(ctx context.Context, mnemonic *domain.Mnemonic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := mnemonic.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	tags, err := json.Marshal(mnemonic.Tags)
	if err != nil {
		return fmt.Errorf("%w: encoding tags: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO mnemonics
			(id, user_id, acronym, full_form, category, body_system,
			 difficulty, exam_relevance, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(ctx, query,
		mnemonic.ID, mnemonic.UserID, mnemonic.Acronym, mnemonic.FullForm,
		mnemonic.Category, mnemonic.BodySystem, mnemonic.Difficulty,
		mnemonic.ExamRelevance, tags, mnemonic.CreatedAt, mnemonic.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("unknown owner during mnemonic creation",
				slog.String("mnemonic_id", mnemonic.ID.String()),
				slog.String("user_id", mnemonic.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, mnemonic.UserID)
		}
		log.Error("failed to create mnemonic",
			slog.String("error", err.Error()),
			slog.String("mnemonic_id", mnemonic.ID.String()))
		return MapError(err)
	}

	log.Info("mnemonic created",
		slog.String("mnemonic_id", mnemonic.ID.String()),
		slog.String("user_id", mnemonic.UserID.String()),
		slog.String("category", mnemonic.Category))
	return nil
}

// GetByID implements store.MnemonicStore.GetByID
func (s *MnemonicStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mnemonic, error) {
	query := `
		SELECT id, user_id, acronym, full_form, category, body_system,
		       difficulty, exam_relevance, tags, created_at, updated_at
		FROM mnemonics
		WHERE id = $1
	`

	mnemonic, err := scanMnemonic(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, store.ErrMnemonicNotFound
		}
		return nil, MapError(err)
	}

	return mnemonic, nil
}

// ListByUser implements store.MnemonicStore.ListByUser
func (s *MnemonicStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter store.MnemonicFilter,
) ([]domain.Mnemonic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, acronym, full_form, category, body_system,
		       difficulty, exam_relevance, tags, created_at, updated_at
		FROM mnemonics
		WHERE user_id = $1
	`
	args := []any{userID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (acronym ILIKE $%d OR full_form ILIKE $%d)", len(args), len(args))
	}
	if filter.Category != "" && filter.Category != "All" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list mnemonics",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var mnemonics []domain.Mnemonic
	for rows.Next() {
		mnemonic, err := scanMnemonic(rows)
		if err != nil {
			return nil, MapError(err)
		}
		mnemonics = append(mnemonics, *mnemonic)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return mnemonics, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMnemonic(row rowScanner) (*domain.Mnemonic, error) {
	var mnemonic domain.Mnemonic
	var tags []byte

	err := row.Scan(
		&mnemonic.ID, &mnemonic.UserID, &mnemonic.Acronym, &mnemonic.FullForm,
		&mnemonic.Category, &mnemonic.BodySystem, &mnemonic.Difficulty,
		&mnemonic.ExamRelevance, &tags, &mnemonic.CreatedAt, &mnemonic.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &mnemonic.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for mnemonic %s: %w", mnemonic.ID, err)
		}
	}

	return &mnemonic, nil
}
