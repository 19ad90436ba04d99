package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogService struct {
	created      *domain.Mnemonic
	createErr    error
	listed       []domain.Mnemonic
	listErr      error
	lastSearch   string
	lastCategory string
}

var _ catalog.Service = (*stubCatalogService)(nil)

func (s *stubCatalogService) Create(ctx context.Context, userID uuid.UUID, req catalog.CreateRequest) (*domain.Mnemonic, error) {
	return s.created, s.createErr
}

func (s *stubCatalogService) List(ctx context.Context, userID uuid.UUID, search, category string) ([]domain.Mnemonic, error) {
	s.lastSearch = search
	s.lastCategory = category
	return s.listed, s.listErr
}

func TestCreateMnemonicHandler(t *testing.T) {
	t.Parallel()

	created := &domain.Mnemonic{ID: uuid.New(), Acronym: "MONA", FullForm: "Morphine, Oxygen, Nitrates, Aspirin"}
	handler := NewMnemonicHandler(&stubCatalogService{created: created})

	req := authedRequest(t, http.MethodPost, "/api/mnemonics", CreateMnemonicRequest{
		Acronym:  "MONA",
		FullForm: "Morphine, Oxygen, Nitrates, Aspirin",
		Category: "Cardiology",
	})
	w := httptest.NewRecorder()
	handler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp domain.Mnemonic
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, created.ID, resp.ID)
}

func TestCreateMnemonicHandlerValidation(t *testing.T) {
	t.Parallel()

	handler := NewMnemonicHandler(&stubCatalogService{})

	tests := []struct {
		name string
		req  CreateMnemonicRequest
	}{
		{"missing acronym", CreateMnemonicRequest{FullForm: "x", Category: "y"}},
		{"missing full form", CreateMnemonicRequest{Acronym: "x", Category: "y"}},
		{"bad difficulty", CreateMnemonicRequest{Acronym: "x", FullForm: "y", Category: "z", Difficulty: "impossible"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := authedRequest(t, http.MethodPost, "/api/mnemonics", tc.req)
			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListMnemonicsHandlerPassesFilters(t *testing.T) {
	t.Parallel()

	stub := &stubCatalogService{listed: []domain.Mnemonic{{ID: uuid.New()}}}
	handler := NewMnemonicHandler(stub)

	req := authedRequest(t, http.MethodGet, "/api/mnemonics?search=mud&category=Toxicology", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mud", stub.lastSearch)
	assert.Equal(t, "Toxicology", stub.lastCategory)

	var resp MnemonicListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}

func TestListMnemonicsHandlerStoreFailure(t *testing.T) {
	t.Parallel()

	handler := NewMnemonicHandler(&stubCatalogService{listErr: catalog.ErrStoreUnavailable})

	req := authedRequest(t, http.MethodGet, "/api/mnemonics", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
