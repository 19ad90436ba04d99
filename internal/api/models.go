package api

import (
	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/domain/srs"
	"github.com/mnemoapp/mnemo-api/internal/service/review"
)

// Common request/response structures

// RegisterRequest is the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// VerifyResponse confirms a valid token and identifies its owner.
type VerifyResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Valid  bool      `json:"valid"`
}

// CreateMnemonicRequest is the payload for creating a catalog entry.
type CreateMnemonicRequest struct {
	Acronym       string   `json:"acronym"        validate:"required,max=100"`
	FullForm      string   `json:"full_form"      validate:"required"`
	Category      string   `json:"category"       validate:"required,max=100"`
	BodySystem    string   `json:"body_system"    validate:"max=100"`
	Difficulty    string   `json:"difficulty"     validate:"omitempty,oneof=easy medium hard"`
	ExamRelevance string   `json:"exam_relevance" validate:"max=100"`
	Tags          []string `json:"tags"`
}

// MnemonicListResponse wraps a catalog listing.
type MnemonicListResponse struct {
	Mnemonics []domain.Mnemonic `json:"mnemonics"`
	Count     int               `json:"count"`
}

// SessionRequest is the payload for starting a study session.
type SessionRequest struct {
	Categories    []string `json:"categories"`
	Difficulty    string   `json:"difficulty"      validate:"omitempty,oneof=easy medium hard All"`
	NumberOfCards int      `json:"number_of_cards" validate:"required,gt=0"`
	IncludeNew    bool     `json:"include_new"`
	IncludeReview bool     `json:"include_review"`
}

// AnswerRequest is the payload for submitting a review answer. Correct is a
// pointer so a missing field is distinguishable from false.
type AnswerRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// StatsResponse is the updated schedule returned after an answer.
type StatsResponse struct {
	MnemonicID     uuid.UUID `json:"mnemonic_id"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	EaseFactor     float64   `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	LastReviewedAt string    `json:"last_reviewed_at"`
}

// DueCardsResponse wraps a due-cards listing.
type DueCardsResponse struct {
	Cards []srs.Card `json:"cards"`
	Count int        `json:"count"`
}

// AnalyticsResponse wraps the aggregated review analytics.
type AnalyticsResponse struct {
	Analytics *review.Analytics `json:"analytics"`
}
