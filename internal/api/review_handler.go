package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mnemoapp/mnemo-api/internal/api/shared"
	"github.com/mnemoapp/mnemo-api/internal/service/review"
)

// ReviewHandler handles study-session and scheduling API requests.
type ReviewHandler struct {
	reviewService review.Service
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{reviewService: reviewService}
}

// StartSession handles POST /api/sessions.
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	session, err := h.reviewService.StartSession(r.Context(), userID, review.SessionRequest{
		Categories:    req.Categories,
		Difficulty:    req.Difficulty,
		NumberOfCards: req.NumberOfCards,
		IncludeNew:    req.IncludeNew,
		IncludeReview: req.IncludeReview,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, session)
}

// SubmitAnswer handles POST /api/mnemonics/{id}/answer.
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	mnemonicID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	stats, err := h.reviewService.SubmitAnswer(r.Context(), userID, mnemonicID, *req.Correct)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{
		MnemonicID:     stats.MnemonicID,
		CorrectCount:   stats.CorrectCount,
		IncorrectCount: stats.IncorrectCount,
		EaseFactor:     stats.EaseFactor,
		IntervalDays:   stats.IntervalDays,
		LastReviewedAt: stats.LastReviewedAt.Format(time.RFC3339),
	})
}

// DueCards handles GET /api/reviews/due with an optional limit query
// parameter.
func (h *ReviewHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	cards, err := h.reviewService.DueCards(r.Context(), userID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueCardsResponse{
		Cards: cards,
		Count: len(cards),
	})
}

// Analytics handles GET /api/analytics.
func (h *ReviewHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	analytics, err := h.reviewService.Analytics(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyticsResponse{Analytics: analytics})
}
