package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewStatus classifies how a card relates to its review schedule.
type ReviewStatus string

// Possible review status values
const (
	ReviewStatusNew    ReviewStatus = "new"
	ReviewStatusDue    ReviewStatus = "due"
	ReviewStatusFuture ReviewStatus = "future"
)

// MnemonicStats validation errors
var (
	ErrEmptyStatsUserID     = errors.New("mnemonic stats user ID cannot be empty")
	ErrEmptyStatsMnemonicID = errors.New("mnemonic stats mnemonic ID cannot be empty")
	ErrNegativeCount        = errors.New("answer counts cannot be negative")
	ErrInvalidEaseFactor    = errors.New("ease factor must be at least 1.3")
	ErrInvalidInterval      = errors.New("interval must be at least 1 day")
)

// MnemonicStats tracks one user's spaced repetition state for one mnemonic.
// A record does not exist until the user answers the card for the first time;
// after that it is updated in place on every answer.
//
// A zero LastReviewedAt means the card has never been reviewed. Records
// written by this application always carry a review time, but the field is
// nullable in storage and a zero value still classifies as "new".
type MnemonicStats struct {
	UserID         uuid.UUID `json:"user_id"`
	MnemonicID     uuid.UUID `json:"mnemonic_id"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	EaseFactor     float64   `json:"ease_factor"`   // retention strength, floor 1.3
	IntervalDays   int       `json:"interval_days"` // days until the next review is due
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks if the MnemonicStats has valid data.
// Returns an error if any field fails validation.
func (s *MnemonicStats) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStatsUserID
	}

	if s.MnemonicID == uuid.Nil {
		return ErrEmptyStatsMnemonicID
	}

	if s.CorrectCount < 0 || s.IncorrectCount < 0 {
		return ErrNegativeCount
	}

	if s.EaseFactor < 1.3 {
		return ErrInvalidEaseFactor
	}

	if s.IntervalDays < 1 {
		return ErrInvalidInterval
	}

	return nil
}

// TotalAnswers returns the total number of recorded answers for this card.
func (s *MnemonicStats) TotalAnswers() int {
	return s.CorrectCount + s.IncorrectCount
}
