package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/domain/srs"
	"github.com/mnemoapp/mnemo-api/internal/platform/logger"
	"github.com/mnemoapp/mnemo-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*reviewService)(nil)

// reviewService implements the Service interface over the persistence
// stores. Scheduling decisions are delegated to the srs package.
type reviewService struct {
	mnemonicStore store.MnemonicStore
	statsStore    store.StatsStore
	params        srs.Params
	dueLimit      int
	timeFunc      func() time.Time                                // injectable for testing
	runTx         func(ctx context.Context, fn store.TxFn) error // injectable for testing
	logger        *slog.Logger
}

// NewService creates a review service. dueLimit caps DueCards responses;
// a non-positive value selects srs.DefaultDueLimit.
func NewService(
	db *sql.DB,
	mnemonicStore store.MnemonicStore,
	statsStore store.StatsStore,
	dueLimit int,
	log *slog.Logger,
) Service {
	if db == nil {
		panic("db cannot be nil")
	}
	if mnemonicStore == nil {
		panic("mnemonicStore cannot be nil")
	}
	if statsStore == nil {
		panic("statsStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	if dueLimit <= 0 {
		dueLimit = srs.DefaultDueLimit
	}

	return &reviewService{
		mnemonicStore: mnemonicStore,
		statsStore:    statsStore,
		params:        srs.DefaultParams(),
		dueLimit:      dueLimit,
		timeFunc:      time.Now,
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
		logger:        log.With(slog.String("component", "review_service")),
	}
}

// StartSession implements Service.StartSession.
func (s *reviewService) StartSession(
	ctx context.Context,
	userID uuid.UUID,
	req SessionRequest,
) (*srs.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mnemonics, stats, err := s.loadSnapshots(ctx, userID)
	if err != nil {
		return nil, err
	}

	filters := srs.SessionFilters{
		Categories:    srs.Categories(req.Categories...),
		Difficulty:    srs.Difficulty(req.Difficulty),
		Limit:         req.NumberOfCards,
		IncludeNew:    req.IncludeNew,
		IncludeReview: req.IncludeReview,
	}

	session, err := srs.SelectSession(mnemonics, stats, filters, s.timeFunc())
	if err != nil {
		log.Debug("session selection rejected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	log.Debug("study session selected",
		slog.String("user_id", userID.String()),
		slog.Int("cards", len(session.Cards)),
		slog.Int("total_available", session.TotalAvailable))
	return session, nil
}

// SubmitAnswer implements Service.SubmitAnswer. The stats row is locked,
// recomputed, and upserted within a single transaction so concurrent
// submissions for the same card serialize.
func (s *reviewService) SubmitAnswer(
	ctx context.Context,
	userID, mnemonicID uuid.UUID,
	correct bool,
) (*domain.MnemonicStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mnemonic, err := s.mnemonicStore.GetByID(ctx, mnemonicID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("answer submitted for unknown mnemonic",
				slog.String("user_id", userID.String()),
				slog.String("mnemonic_id", mnemonicID.String()))
			return nil, ErrMnemonicNotFound
		}
		return nil, s.wrapStoreError("get mnemonic", err)
	}
	if mnemonic.UserID != userID {
		log.Warn("answer submitted for mnemonic owned by another user",
			slog.String("user_id", userID.String()),
			slog.String("mnemonic_id", mnemonicID.String()))
		return nil, ErrMnemonicNotOwned
	}

	var updated *domain.MnemonicStats
	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStats := s.statsStore.WithTx(tx)

		prior, err := txStats.GetForUpdate(ctx, userID, mnemonicID)
		if err != nil {
			if !errors.Is(err, store.ErrStatsNotFound) {
				return fmt.Errorf("failed to load stats: %w", err)
			}
			prior = nil // first answer for this card
		}

		updated = srs.NextStats(prior, userID, mnemonicID, correct, s.timeFunc(), s.params)
		if err := txStats.Upsert(ctx, updated); err != nil {
			return fmt.Errorf("failed to save stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.wrapStoreError("submit answer", err)
	}

	log.Debug("answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("mnemonic_id", mnemonicID.String()),
		slog.Bool("correct", correct),
		slog.Int("interval_days", updated.IntervalDays))
	return updated, nil
}

// DueCards implements Service.DueCards.
func (s *reviewService) DueCards(ctx context.Context, userID uuid.UUID, limit int) ([]srs.Card, error) {
	if limit <= 0 || limit > s.dueLimit {
		limit = s.dueLimit
	}

	mnemonics, stats, err := s.loadSnapshots(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srs.DueCards(mnemonics, stats, s.timeFunc(), limit), nil
}

// Analytics implements Service.Analytics.
func (s *reviewService) Analytics(ctx context.Context, userID uuid.UUID) (*Analytics, error) {
	mnemonics, stats, err := s.loadSnapshots(ctx, userID)
	if err != nil {
		return nil, err
	}

	return aggregate(mnemonics, stats, s.timeFunc()), nil
}

// loadSnapshots reads the user's catalog and stats in one consistent pass.
func (s *reviewService) loadSnapshots(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Mnemonic, map[uuid.UUID]*domain.MnemonicStats, error) {
	mnemonics, err := s.mnemonicStore.ListByUser(ctx, userID, store.MnemonicFilter{})
	if err != nil {
		return nil, nil, s.wrapStoreError("list mnemonics", err)
	}

	stats, err := s.statsStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, s.wrapStoreError("list stats", err)
	}

	return mnemonics, stats, nil
}

func (s *reviewService) wrapStoreError(op string, err error) error {
	s.logger.Error("store operation failed",
		slog.String("operation", op),
		slog.String("error", err.Error()))
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
