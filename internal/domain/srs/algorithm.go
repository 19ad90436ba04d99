package srs

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// nextEaseFactor determines the new ease factor after an answer.
//
// A correct answer raises the ease factor by a constant bonus, an incorrect
// answer lowers it by a constant penalty, and the result is clamped to the
// configured floor so intervals can never collapse entirely.
func nextEaseFactor(currentEF float64, correct bool, params Params) float64 {
	var newEF float64
	if correct {
		newEF = currentEF + params.CorrectEaseBonus
	} else {
		newEF = currentEF - params.IncorrectEasePenalty
	}

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// nextInterval determines the new interval in days after an answer.
//
// Any incorrect answer resets the interval to the first step. A correct
// answer promotes a card at the first step to the second fixed step;
// after that the interval grows multiplicatively by the new ease factor,
// rounded to the nearest whole day.
func nextInterval(currentInterval int, correct bool, newEaseFactor float64, params Params) int {
	if !correct {
		return params.FirstIntervalDays
	}

	if currentInterval == params.FirstIntervalDays {
		return params.SecondIntervalDays
	}

	return int(math.Round(float64(currentInterval) * newEaseFactor))
}

// NextStats computes the statistics record that results from one answer
// event, following immutability principles by returning a new record rather
// than mutating the prior one.
//
// A nil prior record is the defined zero-state for a card that has never
// been answered: the new record gets the initial interval regardless of
// correctness, and the initial ease factor plus the correct-answer bonus
// when the first answer is correct.
//
// Persisting the result is the caller's concern; this function is pure.
func NextStats(
	prior *domain.MnemonicStats,
	userID, mnemonicID uuid.UUID,
	correct bool,
	now time.Time,
	params Params,
) *domain.MnemonicStats {
	if prior == nil {
		stats := &domain.MnemonicStats{
			UserID:         userID,
			MnemonicID:     mnemonicID,
			EaseFactor:     params.InitialEaseFactor,
			IntervalDays:   params.FirstIntervalDays,
			LastReviewedAt: now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if correct {
			stats.CorrectCount = 1
			stats.EaseFactor = params.InitialEaseFactor + params.CorrectEaseBonus
		} else {
			stats.IncorrectCount = 1
		}
		return stats
	}

	stats := &domain.MnemonicStats{
		UserID:         prior.UserID,
		MnemonicID:     prior.MnemonicID,
		CorrectCount:   prior.CorrectCount,
		IncorrectCount: prior.IncorrectCount,
		CreatedAt:      prior.CreatedAt,
	}

	if correct {
		stats.CorrectCount++
	} else {
		stats.IncorrectCount++
	}

	stats.EaseFactor = nextEaseFactor(prior.EaseFactor, correct, params)
	stats.IntervalDays = nextInterval(prior.IntervalDays, correct, stats.EaseFactor, params)
	stats.LastReviewedAt = now
	stats.UpdatedAt = now

	return stats
}
