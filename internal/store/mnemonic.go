package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// MnemonicFilter narrows a catalog listing. The zero value matches the
// owner's entire catalog.
type MnemonicFilter struct {
	// Search matches acronym or full form, case-insensitively, as a
	// substring. Empty disables the filter.
	Search string

	// Category requires an exact category match. Empty or "All" disables
	// the filter.
	Category string
}

// MnemonicStore defines the interface for mnemonic catalog persistence.
type MnemonicStore interface {
	// Create saves a new mnemonic.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, mnemonic *domain.Mnemonic) error

	// GetByID retrieves a mnemonic by its unique ID.
	// Returns ErrMnemonicNotFound if the mnemonic does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mnemonic, error)

	// ListByUser retrieves all mnemonics owned by the given user that match
	// the filter, ordered by creation time descending.
	ListByUser(ctx context.Context, userID uuid.UUID, filter MnemonicFilter) ([]domain.Mnemonic, error)
}
