package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/mnemoapp/mnemo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMnemonicStore struct {
	created   []*domain.Mnemonic
	listed    []domain.Mnemonic
	lastQuery store.MnemonicFilter
	createErr error
	listErr   error
}

var _ store.MnemonicStore = (*fakeMnemonicStore)(nil)

func (f *fakeMnemonicStore) Create(ctx context.Context, mnemonic *domain.Mnemonic) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, mnemonic)
	return nil
}

func (f *fakeMnemonicStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mnemonic, error) {
	return nil, store.ErrMnemonicNotFound
}

func (f *fakeMnemonicStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter store.MnemonicFilter,
) ([]domain.Mnemonic, error) {
	f.lastQuery = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Acronym:       "MUDPILES",
		FullForm:      "Methanol, Uremia, DKA, Propylene glycol, INH, Lactic acidosis, Ethylene glycol, Salicylates",
		Category:      "Toxicology",
		BodySystem:    "Renal",
		Difficulty:    "hard",
		ExamRelevance: "high",
		Tags:          []string{"acid-base"},
	}
}

func TestCreateMnemonic(t *testing.T) {
	t.Parallel()

	fake := &fakeMnemonicStore{}
	svc := NewService(fake, nil)
	userID := uuid.New()

	mnemonic, err := svc.Create(context.Background(), userID, validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, mnemonic)

	assert.Equal(t, userID, mnemonic.UserID)
	assert.Equal(t, "MUDPILES", mnemonic.Acronym)
	assert.NotEqual(t, uuid.Nil, mnemonic.ID)
	require.Len(t, fake.created, 1)
}

func TestCreateMnemonicValidationFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeMnemonicStore{}, nil)

	req := validCreateRequest()
	req.Acronym = ""

	mnemonic, err := svc.Create(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
	assert.Nil(t, mnemonic)
}

func TestCreateMnemonicStoreFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeMnemonicStore{createErr: errors.New("connection refused")}
	svc := NewService(fake, nil)

	mnemonic, err := svc.Create(context.Background(), uuid.New(), validCreateRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, mnemonic)
}

func TestListPassesFilters(t *testing.T) {
	t.Parallel()

	fake := &fakeMnemonicStore{}
	svc := NewService(fake, nil)

	_, err := svc.List(context.Background(), uuid.New(), "mud", "Toxicology")
	require.NoError(t, err)

	assert.Equal(t, "mud", fake.lastQuery.Search)
	assert.Equal(t, "Toxicology", fake.lastQuery.Category)
}

func TestListStoreFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeMnemonicStore{listErr: errors.New("timeout")}
	svc := NewService(fake, nil)

	mnemonics, err := svc.List(context.Background(), uuid.New(), "", "")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, mnemonics)
}
