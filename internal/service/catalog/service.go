// Package catalog manages the mnemonic catalog: creating entries and
// listing them with search and category filters.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/platform/logger"
	"github.com/mnemoapp/mnemo-api/internal/store"
)

// Common catalog service errors
var (
	// ErrInvalidMnemonic indicates the submitted mnemonic failed validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrStoreUnavailable indicates the store could not complete the
	// operation.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)

// CreateRequest carries the fields for a new mnemonic.
type CreateRequest struct {
	Acronym       string
	FullForm      string
	Category      string
	BodySystem    string
	Difficulty    string
	ExamRelevance string
	Tags          []string
}

// Service provides catalog operations.
type Service interface {
	// Create validates and saves a new mnemonic owned by the given user.
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*domain.Mnemonic, error)

	// List returns the user's mnemonics, newest first. search matches
	// acronym or full form case-insensitively; category narrows to one
	// category, with "" and "All" matching everything.
	List(ctx context.Context, userID uuid.UUID, search, category string) ([]domain.Mnemonic, error)
}

type catalogService struct {
	mnemonicStore store.MnemonicStore
	logger        *slog.Logger
}

var _ Service = (*catalogService)(nil)

// NewService creates a catalog service.
func NewService(mnemonicStore store.MnemonicStore, log *slog.Logger) Service {
	if mnemonicStore == nil {
		panic("mnemonicStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &catalogService{
		mnemonicStore: mnemonicStore,
		logger:        log.With(slog.String("component", "catalog_service")),
	}
}

// Create implements Service.Create.
func (s *catalogService) Create(
	ctx context.Context,
	userID uuid.UUID,
	req CreateRequest,
) (*domain.Mnemonic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mnemonic, err := domain.NewMnemonic(
		userID,
		req.Acronym,
		req.FullForm,
		req.Category,
		req.BodySystem,
		req.Difficulty,
		req.ExamRelevance,
		req.Tags,
	)
	if err != nil {
		log.Debug("mnemonic rejected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	if err := s.mnemonicStore.Create(ctx, mnemonic); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
		}
		log.Error("failed to create mnemonic",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Info("mnemonic created",
		slog.String("mnemonic_id", mnemonic.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("category", mnemonic.Category))
	return mnemonic, nil
}

// List implements Service.List.
func (s *catalogService) List(
	ctx context.Context,
	userID uuid.UUID,
	search, category string,
) ([]domain.Mnemonic, error) {
	mnemonics, err := s.mnemonicStore.ListByUser(ctx, userID, store.MnemonicFilter{
		Search:   search,
		Category: category,
	})
	if err != nil {
		s.logger.Error("failed to list mnemonics",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return mnemonics, nil
}
