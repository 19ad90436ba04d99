package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Mnemonic validation errors
var (
	ErrMnemonicIDEmpty       = errors.New("mnemonic ID cannot be empty")
	ErrMnemonicUserIDEmpty   = errors.New("mnemonic user ID cannot be empty")
	ErrMnemonicAcronymEmpty  = errors.New("mnemonic acronym cannot be empty")
	ErrMnemonicFullFormEmpty = errors.New("mnemonic full form cannot be empty")
)

// Mnemonic is a single unit of study content: an acronym, its expansion, and
// the catalog metadata used for session filtering. Mnemonics are owned by the
// user who created them.
type Mnemonic struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Acronym       string    `json:"acronym"`
	FullForm      string    `json:"full_form"`
	Category      string    `json:"category"`
	BodySystem    string    `json:"body_system"`
	Difficulty    string    `json:"difficulty"`
	ExamRelevance string    `json:"exam_relevance"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewMnemonic creates a new Mnemonic owned by the given user.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewMnemonic(
	userID uuid.UUID,
	acronym, fullForm, category, bodySystem, difficulty, examRelevance string,
	tags []string,
) (*Mnemonic, error) {
	now := time.Now().UTC()
	mnemonic := &Mnemonic{
		ID:            uuid.New(),
		UserID:        userID,
		Acronym:       acronym,
		FullForm:      fullForm,
		Category:      category,
		BodySystem:    bodySystem,
		Difficulty:    difficulty,
		ExamRelevance: examRelevance,
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := mnemonic.Validate(); err != nil {
		return nil, err
	}

	return mnemonic, nil
}

// Validate checks if the Mnemonic has valid data.
// Returns an error if any field fails validation.
func (m *Mnemonic) Validate() error {
	if m.ID == uuid.Nil {
		return ErrMnemonicIDEmpty
	}

	if m.UserID == uuid.Nil {
		return ErrMnemonicUserIDEmpty
	}

	if m.Acronym == "" {
		return ErrMnemonicAcronymEmpty
	}

	if m.FullForm == "" {
		return ErrMnemonicFullFormEmpty
	}

	return nil
}
