// Package review implements the study-session workflow: selecting cards,
// recording answers, listing due cards, and aggregating progress analytics.
// All scheduling math lives in the srs package; this layer loads snapshots
// from the stores, runs the pure core over them, and persists the results.
package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/domain/srs"
)

// SessionRequest describes the cards a learner wants in a study session.
type SessionRequest struct {
	// Categories restricts the session to the named categories. Empty, or
	// containing "All", selects the whole catalog.
	Categories []string

	// Difficulty restricts the session to a single difficulty. Empty or
	// "All" disables the filter.
	Difficulty string

	// NumberOfCards caps the session size.
	NumberOfCards int

	// IncludeNew and IncludeReview choose which card populations are
	// eligible. At least one must be true.
	IncludeNew    bool
	IncludeReview bool
}

// Service provides the review scheduling operations.
type Service interface {
	// StartSession selects and orders the cards for a study session.
	// Returns srs.ErrNoCardTypesSelected when both card types are excluded
	// and srs.ErrNoMatchingCards when the filters match nothing.
	StartSession(ctx context.Context, userID uuid.UUID, req SessionRequest) (*srs.Session, error)

	// SubmitAnswer records one answer for a mnemonic and reschedules it.
	// Returns ErrMnemonicNotFound if the mnemonic does not exist and
	// ErrMnemonicNotOwned if it belongs to another user. The returned stats
	// reflect the state after the answer.
	SubmitAnswer(ctx context.Context, userID, mnemonicID uuid.UUID, correct bool) (*domain.MnemonicStats, error)

	// DueCards lists the cards ready for review right now, oldest review
	// first, capped at limit (non-positive selects the configured default).
	DueCards(ctx context.Context, userID uuid.UUID, limit int) ([]srs.Card, error)

	// Analytics aggregates the user's review statistics.
	Analytics(ctx context.Context, userID uuid.UUID) (*Analytics, error)
}

// Common review service errors
var (
	// ErrMnemonicNotFound indicates the mnemonic does not exist.
	ErrMnemonicNotFound = errors.New("mnemonic not found")

	// ErrMnemonicNotOwned indicates the mnemonic belongs to another user.
	ErrMnemonicNotOwned = errors.New("unauthorized access: mnemonic not owned by user")

	// ErrStoreUnavailable indicates the store could not complete a read or
	// write. The answer was not recorded; clients may retry.
	ErrStoreUnavailable = errors.New("review store unavailable")
)
