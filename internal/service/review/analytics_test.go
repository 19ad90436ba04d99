package review

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyCatalog(t *testing.T) {
	t.Parallel()

	got := aggregate(nil, nil, time.Now())

	assert.Equal(t, 0, got.Overall.TotalCards)
	assert.Equal(t, 0, got.Overall.CardsStudied)
	assert.Zero(t, got.Overall.AverageEaseFactor)
	assert.Empty(t, got.Categories)
}

func TestAggregateOverall(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	studied := testMnemonic(userID, "MONA", "Cardiology", "easy")
	recent := testMnemonic(userID, "FAST", "Neurology", "easy")
	unstudied := testMnemonic(userID, "MUDPILES", "Toxicology", "hard")

	stats := map[uuid.UUID]*domain.MnemonicStats{
		// Reviewed 10 days ago with a 1-day interval: overdue, outside the
		// trailing week.
		studied.ID: {
			UserID:         userID,
			MnemonicID:     studied.ID,
			CorrectCount:   4,
			IncorrectCount: 2,
			EaseFactor:     2.2,
			IntervalDays:   1,
			LastReviewedAt: now.Add(-10 * 24 * time.Hour),
		},
		// Reviewed yesterday with a 6-day interval: not due, inside the
		// trailing week.
		recent.ID: {
			UserID:         userID,
			MnemonicID:     recent.ID,
			CorrectCount:   6,
			IncorrectCount: 0,
			EaseFactor:     2.8,
			IntervalDays:   6,
			LastReviewedAt: now.Add(-24 * time.Hour),
		},
	}

	got := aggregate([]domain.Mnemonic{studied, recent, unstudied}, stats, now)

	assert.Equal(t, 3, got.Overall.TotalCards)
	assert.Equal(t, 2, got.Overall.CardsStudied)
	assert.Equal(t, 10, got.Overall.TotalCorrect)
	assert.Equal(t, 2, got.Overall.TotalIncorrect)
	assert.InDelta(t, 2.5, got.Overall.AverageEaseFactor, 1e-9)
	assert.Equal(t, 1, got.Overall.CardsStudiedLast7Days)
	assert.Equal(t, 1, got.Overall.CardsDue)
}

func TestAggregateCategoriesSortedByCorrect(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cardio := testMnemonic(userID, "MONA", "Cardiology", "easy")
	neuro := testMnemonic(userID, "FAST", "Neurology", "easy")
	tox := testMnemonic(userID, "MUDPILES", "Toxicology", "hard")

	stats := map[uuid.UUID]*domain.MnemonicStats{
		cardio.ID: {
			UserID: userID, MnemonicID: cardio.ID,
			CorrectCount: 2, EaseFactor: 2.5, IntervalDays: 1,
			LastReviewedAt: now.Add(-24 * time.Hour),
		},
		neuro.ID: {
			UserID: userID, MnemonicID: neuro.ID,
			CorrectCount: 7, EaseFactor: 2.9, IntervalDays: 6,
			LastReviewedAt: now.Add(-24 * time.Hour),
		},
	}

	got := aggregate([]domain.Mnemonic{cardio, neuro, tox}, stats, now)

	require.Len(t, got.Categories, 3)
	assert.Equal(t, "Neurology", got.Categories[0].Category)
	assert.Equal(t, "Cardiology", got.Categories[1].Category)
	// Unstudied categories still appear, with zero counts, after the rest.
	assert.Equal(t, "Toxicology", got.Categories[2].Category)
	assert.Equal(t, 1, got.Categories[2].TotalCards)
	assert.Equal(t, 0, got.Categories[2].CardsStudied)
	assert.Zero(t, got.Categories[2].AverageEaseFactor)

	assert.InDelta(t, 2.9, got.Categories[0].AverageEaseFactor, 1e-9)
}
