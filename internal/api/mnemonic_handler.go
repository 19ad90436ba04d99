package api

import (
	"net/http"

	"github.com/mnemoapp/mnemo-api/internal/api/shared"
	"github.com/mnemoapp/mnemo-api/internal/service/catalog"
)

// MnemonicHandler handles catalog-related API requests.
type MnemonicHandler struct {
	catalogService catalog.Service
}

// NewMnemonicHandler creates a MnemonicHandler.
func NewMnemonicHandler(catalogService catalog.Service) *MnemonicHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &MnemonicHandler{catalogService: catalogService}
}

// Create handles POST /api/mnemonics.
func (h *MnemonicHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateMnemonicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	mnemonic, err := h.catalogService.Create(r.Context(), userID, catalog.CreateRequest{
		Acronym:       req.Acronym,
		FullForm:      req.FullForm,
		Category:      req.Category,
		BodySystem:    req.BodySystem,
		Difficulty:    req.Difficulty,
		ExamRelevance: req.ExamRelevance,
		Tags:          req.Tags,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, mnemonic)
}

// List handles GET /api/mnemonics with optional search and category query
// parameters.
func (h *MnemonicHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	mnemonics, err := h.catalogService.List(r.Context(), userID, search, category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MnemonicListResponse{
		Mnemonics: mnemonics,
		Count:     len(mnemonics),
	})
}
