package srs

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestNextEaseFactor(t *testing.T) {
	t.Parallel()
	params := DefaultParams()

	testCases := []struct {
		name     string
		current  float64
		correct  bool
		expected float64
	}{
		{
			name:     "correct answer adds the constant bonus",
			current:  2.5,
			correct:  true,
			expected: 2.6,
		},
		{
			name:     "incorrect answer subtracts the penalty",
			current:  2.6,
			correct:  false,
			expected: 2.4,
		},
		{
			name:     "incorrect answer clamps at the floor",
			current:  1.4,
			correct:  false,
			expected: 1.3,
		},
		{
			name:     "floor holds under repeated failure",
			current:  1.3,
			correct:  false,
			expected: 1.3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newEF := nextEaseFactor(tc.current, tc.correct, params)

			if !almostEqual(newEF, tc.expected) {
				t.Errorf("Expected ease factor %v, got %v", tc.expected, newEF)
			}
		})
	}
}

func TestNextInterval(t *testing.T) {
	t.Parallel()
	params := DefaultParams()

	testCases := []struct {
		name     string
		current  int
		correct  bool
		newEF    float64
		expected int
	}{
		{
			name:     "incorrect answer resets the interval",
			current:  42,
			correct:  false,
			newEF:    2.5,
			expected: 1,
		},
		{
			name:     "correct answer at the first step jumps to the second",
			current:  1,
			correct:  true,
			newEF:    1.3,
			expected: 6,
		},
		{
			name:     "correct answer grows by the ease factor",
			current:  6,
			correct:  true,
			newEF:    2.6,
			expected: 16, // round(6 * 2.6) = round(15.6)
		},
		{
			name:     "rounding goes to the nearest day",
			current:  10,
			correct:  true,
			newEF:    2.55,
			expected: 26, // round(25.5) rounds half away from zero
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newInterval := nextInterval(tc.current, tc.correct, tc.newEF, params)

			if newInterval != tc.expected {
				t.Errorf("Expected interval %d, got %d", tc.expected, newInterval)
			}
		})
	}
}

func TestNextStatsFirstAnswer(t *testing.T) {
	t.Parallel()
	params := DefaultParams()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	mnemonicID := uuid.New()

	t.Run("first correct answer", func(t *testing.T) {
		stats := NextStats(nil, userID, mnemonicID, true, now, params)

		if stats.CorrectCount != 1 || stats.IncorrectCount != 0 {
			t.Errorf("Expected counts 1/0, got %d/%d", stats.CorrectCount, stats.IncorrectCount)
		}
		if !almostEqual(stats.EaseFactor, 2.6) {
			t.Errorf("Expected ease factor 2.6, got %v", stats.EaseFactor)
		}
		if stats.IntervalDays != 1 {
			t.Errorf("Expected interval 1, got %d", stats.IntervalDays)
		}
		if !stats.LastReviewedAt.Equal(now) {
			t.Errorf("Expected last reviewed %v, got %v", now, stats.LastReviewedAt)
		}
		if stats.UserID != userID || stats.MnemonicID != mnemonicID {
			t.Error("Expected key fields to be set from the arguments")
		}
	})

	t.Run("first incorrect answer", func(t *testing.T) {
		stats := NextStats(nil, userID, mnemonicID, false, now, params)

		if stats.CorrectCount != 0 || stats.IncorrectCount != 1 {
			t.Errorf("Expected counts 0/1, got %d/%d", stats.CorrectCount, stats.IncorrectCount)
		}
		if !almostEqual(stats.EaseFactor, 2.5) {
			t.Errorf("Expected ease factor 2.5, got %v", stats.EaseFactor)
		}
		if stats.IntervalDays != 1 {
			t.Errorf("Expected interval 1, got %d", stats.IntervalDays)
		}
	})
}

func TestNextStatsExistingRecord(t *testing.T) {
	t.Parallel()
	params := DefaultParams()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	prior := &domain.MnemonicStats{
		UserID:         uuid.New(),
		MnemonicID:     uuid.New(),
		CorrectCount:   3,
		IncorrectCount: 1,
		EaseFactor:     2.5,
		IntervalDays:   1,
		LastReviewedAt: now.Add(-48 * time.Hour),
	}

	t.Run("correct answer at the first interval", func(t *testing.T) {
		stats := NextStats(prior, prior.UserID, prior.MnemonicID, true, now, params)

		if stats.CorrectCount != 4 || stats.IncorrectCount != 1 {
			t.Errorf("Expected counts 4/1, got %d/%d", stats.CorrectCount, stats.IncorrectCount)
		}
		if !almostEqual(stats.EaseFactor, 2.6) {
			t.Errorf("Expected ease factor 2.6, got %v", stats.EaseFactor)
		}
		if stats.IntervalDays != 6 {
			t.Errorf("Expected interval 6, got %d", stats.IntervalDays)
		}
	})

	t.Run("incorrect answer resets the schedule", func(t *testing.T) {
		seasoned := &domain.MnemonicStats{
			UserID:         prior.UserID,
			MnemonicID:     prior.MnemonicID,
			CorrectCount:   8,
			IncorrectCount: 2,
			EaseFactor:     2.6,
			IntervalDays:   6,
			LastReviewedAt: now.Add(-7 * 24 * time.Hour),
		}

		stats := NextStats(seasoned, seasoned.UserID, seasoned.MnemonicID, false, now, params)

		if !almostEqual(stats.EaseFactor, 2.4) {
			t.Errorf("Expected ease factor 2.4, got %v", stats.EaseFactor)
		}
		if stats.IntervalDays != 1 {
			t.Errorf("Expected interval reset to 1, got %d", stats.IntervalDays)
		}
		if stats.CorrectCount != 8 || stats.IncorrectCount != 3 {
			t.Errorf("Expected counts 8/3, got %d/%d", stats.CorrectCount, stats.IncorrectCount)
		}
	})

	t.Run("prior record is not mutated", func(t *testing.T) {
		before := *prior
		_ = NextStats(prior, prior.UserID, prior.MnemonicID, true, now, params)

		if *prior != before {
			t.Error("Expected NextStats to leave the prior record unchanged")
		}
	})
}

// The ease factor floor holds for every answer sequence.
func TestEaseFactorFloorInvariant(t *testing.T) {
	t.Parallel()
	params := DefaultParams()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	mnemonicID := uuid.New()

	sequences := [][]bool{
		{false, false, false, false, false, false, false, false},
		{true, false, false, true, false, false, false},
		{false, true, false, true, false, false},
	}

	for _, sequence := range sequences {
		var stats *domain.MnemonicStats
		for i, correct := range sequence {
			stats = NextStats(stats, userID, mnemonicID, correct, now.Add(time.Duration(i)*24*time.Hour), params)

			if stats.EaseFactor < params.MinEaseFactor-floatTolerance {
				t.Fatalf("Ease factor %v dropped below floor %v after %d answers",
					stats.EaseFactor, params.MinEaseFactor, i+1)
			}
		}
	}
}
