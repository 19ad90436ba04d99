package srs

import (
	"time"

	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// Classify computes a card's review status from its statistics and the
// current time.
//
// A card with no statistics record, or a record that has never been
// reviewed, is "new". A reviewed card becomes "due" once its interval has
// fully elapsed; the boundary instant itself counts as due. Anything else is
// "future".
//
// Intervals are fixed 24-hour multiples rather than calendar days, matching
// the storage layer's date arithmetic.
func Classify(stats *domain.MnemonicStats, now time.Time) domain.ReviewStatus {
	if stats == nil || stats.LastReviewedAt.IsZero() {
		return domain.ReviewStatusNew
	}

	dueAt := stats.LastReviewedAt.Add(time.Duration(stats.IntervalDays) * 24 * time.Hour)
	if !now.Before(dueAt) {
		return domain.ReviewStatusDue
	}

	return domain.ReviewStatusFuture
}
