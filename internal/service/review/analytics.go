package review

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// Analytics summarizes a user's review progress.
type Analytics struct {
	Overall    OverallStats    `json:"overall"`
	Categories []CategoryStats `json:"categories"`
}

// OverallStats aggregates across the whole catalog.
type OverallStats struct {
	TotalCards        int     `json:"total_cards"`
	CardsStudied      int     `json:"cards_studied"`
	TotalCorrect      int     `json:"total_correct"`
	TotalIncorrect    int     `json:"total_incorrect"`
	AverageEaseFactor float64 `json:"average_ease_factor"`

	// CardsStudiedLast7Days counts cards whose most recent review falls
	// within the trailing week.
	CardsStudiedLast7Days int `json:"cards_studied_last_7_days"`

	// CardsDue counts studied cards strictly past their interval. This is
	// narrower than the due-cards listing, which also includes records at
	// the exact boundary and records that were created but never reviewed.
	CardsDue int `json:"cards_due"`
}

// CategoryStats aggregates one category over the full catalog, so
// categories with no reviews still appear with zero counts.
type CategoryStats struct {
	Category          string  `json:"category"`
	TotalCards        int     `json:"total_cards"`
	CardsStudied      int     `json:"cards_studied"`
	TotalCorrect      int     `json:"total_correct"`
	TotalIncorrect    int     `json:"total_incorrect"`
	AverageEaseFactor float64 `json:"average_ease_factor"`
}

// aggregate folds the catalog and stats snapshots into Analytics. The
// computation is read-only.
func aggregate(
	mnemonics []domain.Mnemonic,
	stats map[uuid.UUID]*domain.MnemonicStats,
	now time.Time,
) *Analytics {
	weekAgo := now.Add(-7 * 24 * time.Hour)

	overall := OverallStats{TotalCards: len(mnemonics)}
	var overallEaseSum float64

	byCategory := make(map[string]*CategoryStats)
	var categoryEaseSums = make(map[string]float64)

	for _, mnemonic := range mnemonics {
		cat := byCategory[mnemonic.Category]
		if cat == nil {
			cat = &CategoryStats{Category: mnemonic.Category}
			byCategory[mnemonic.Category] = cat
		}
		cat.TotalCards++

		record := stats[mnemonic.ID]
		if record == nil {
			continue
		}

		overall.CardsStudied++
		overall.TotalCorrect += record.CorrectCount
		overall.TotalIncorrect += record.IncorrectCount
		overallEaseSum += record.EaseFactor

		cat.CardsStudied++
		cat.TotalCorrect += record.CorrectCount
		cat.TotalIncorrect += record.IncorrectCount
		categoryEaseSums[mnemonic.Category] += record.EaseFactor

		if !record.LastReviewedAt.IsZero() {
			if !record.LastReviewedAt.Before(weekAgo) {
				overall.CardsStudiedLast7Days++
			}
			dueAt := record.LastReviewedAt.Add(time.Duration(record.IntervalDays) * 24 * time.Hour)
			if now.After(dueAt) {
				overall.CardsDue++
			}
		}
	}

	if overall.CardsStudied > 0 {
		overall.AverageEaseFactor = overallEaseSum / float64(overall.CardsStudied)
	}

	categories := make([]CategoryStats, 0, len(byCategory))
	for name, cat := range byCategory {
		if cat.CardsStudied > 0 {
			cat.AverageEaseFactor = categoryEaseSums[name] / float64(cat.CardsStudied)
		}
		categories = append(categories, *cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].TotalCorrect != categories[j].TotalCorrect {
			return categories[i].TotalCorrect > categories[j].TotalCorrect
		}
		return categories[i].Category < categories[j].Category
	})

	return &Analytics{Overall: overall, Categories: categories}
}
