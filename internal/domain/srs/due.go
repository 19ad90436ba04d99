package srs

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// DefaultDueLimit caps the due-cards listing when the caller does not
// specify a limit.
const DefaultDueLimit = 50

// DueCards lists the cards that are ready for review right now.
//
// Unlike session selection, only cards that already have a statistics record
// are considered: a card qualifies when its record has never been reviewed
// or its interval has elapsed. Never-reviewed records sort first, then
// records ascending by last review time, truncated to limit.
func DueCards(
	mnemonics []domain.Mnemonic,
	stats map[uuid.UUID]*domain.MnemonicStats,
	now time.Time,
	limit int,
) []Card {
	if limit <= 0 {
		limit = DefaultDueLimit
	}

	byID := make(map[uuid.UUID]domain.Mnemonic, len(mnemonics))
	for _, mnemonic := range mnemonics {
		byID[mnemonic.ID] = mnemonic
	}

	cards := make([]Card, 0, len(stats))
	for id, record := range stats {
		if record == nil {
			continue
		}
		mnemonic, ok := byID[id]
		if !ok {
			continue
		}
		status := Classify(record, now)
		if status == domain.ReviewStatusFuture {
			continue
		}
		cards = append(cards, Card{Mnemonic: mnemonic, Stats: *record, Status: status})
	}

	sort.Slice(cards, func(i, j int) bool {
		iZero := cards[i].Stats.LastReviewedAt.IsZero()
		jZero := cards[j].Stats.LastReviewedAt.IsZero()
		if iZero != jZero {
			return iZero
		}
		return cards[i].Stats.LastReviewedAt.Before(cards[j].Stats.LastReviewedAt)
	})

	if limit < len(cards) {
		cards = cards[:limit]
	}
	return cards
}
