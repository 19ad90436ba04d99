package srs

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

// Session selection errors
var (
	// ErrNoMatchingCards is returned when the category and difficulty
	// filters leave no cards to choose from.
	ErrNoMatchingCards = errors.New("no cards match the session criteria")

	// ErrNoCardTypesSelected is returned when a session requests neither
	// new nor previously seen cards.
	ErrNoCardTypesSelected = errors.New("session must include new cards, review cards, or both")
)

// CategoryFilter restricts a session to a set of categories. The zero value
// matches everything.
type CategoryFilter struct {
	names map[string]struct{}
}

// Categories builds a CategoryFilter from the given names. An empty list, or
// a list containing the "All" sentinel used by clients, yields a filter that
// matches every category.
func Categories(names ...string) CategoryFilter {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" || name == "All" {
			return CategoryFilter{}
		}
		set[name] = struct{}{}
	}
	if len(set) == 0 {
		return CategoryFilter{}
	}
	return CategoryFilter{names: set}
}

// Matches reports whether the given category passes the filter.
func (f CategoryFilter) Matches(category string) bool {
	if f.names == nil {
		return true
	}
	_, ok := f.names[category]
	return ok
}

// DifficultyFilter restricts a session to a single difficulty. The zero
// value matches everything.
type DifficultyFilter struct {
	value string
}

// Difficulty builds a DifficultyFilter for the given value. An empty string
// or the "All" sentinel yields a filter that matches every difficulty.
func Difficulty(value string) DifficultyFilter {
	if value == "" || value == "All" {
		return DifficultyFilter{}
	}
	return DifficultyFilter{value: value}
}

// Matches reports whether the given difficulty passes the filter.
func (f DifficultyFilter) Matches(difficulty string) bool {
	return f.value == "" || f.value == difficulty
}

// SessionFilters configures which cards are eligible for a study session and
// how many are returned.
type SessionFilters struct {
	Categories    CategoryFilter
	Difficulty    DifficultyFilter
	Limit         int
	IncludeNew    bool
	IncludeReview bool
}

// Card is a catalog entry joined with the user's review statistics for it.
// Stats holds effective values: when the user has never answered the card,
// the defaults (zero counts, initial ease factor, first interval) are filled
// in and Status is new.
type Card struct {
	Mnemonic domain.Mnemonic      `json:"mnemonic"`
	Stats    domain.MnemonicStats `json:"stats"`
	Status   domain.ReviewStatus  `json:"review_status"`
}

// Session is an ordered, size-bounded selection of cards for one study
// round. TotalAvailable is the size of the filtered set before truncation,
// so callers can report how many more cards were eligible.
type Session struct {
	Cards          []Card `json:"cards"`
	TotalAvailable int    `json:"total_available"`
}

// SelectSession chooses and orders the cards for a study session.
//
// The catalog snapshot is joined with the stats snapshot and each card is
// classified as of the session start time. Category and difficulty filters
// are applied first; an empty result, or a request excluding both new and
// seen cards, is rejected. The surviving cards are ordered with all new
// cards first, then previously seen cards ascending by accuracy so the
// weakest cards come earliest, and finally truncated to the requested limit.
//
// The computation is read-only: neither snapshot is modified.
func SelectSession(
	mnemonics []domain.Mnemonic,
	stats map[uuid.UUID]*domain.MnemonicStats,
	filters SessionFilters,
	now time.Time,
) (*Session, error) {
	if !filters.IncludeNew && !filters.IncludeReview {
		return nil, ErrNoCardTypesSelected
	}

	cards := make([]Card, 0, len(mnemonics))
	for _, mnemonic := range mnemonics {
		if !filters.Categories.Matches(mnemonic.Category) {
			continue
		}
		if !filters.Difficulty.Matches(mnemonic.Difficulty) {
			continue
		}
		cards = append(cards, joinCard(mnemonic, stats[mnemonic.ID], now))
	}

	if len(cards) == 0 {
		return nil, ErrNoMatchingCards
	}

	if !filters.IncludeNew {
		cards = dropStatus(cards, func(s domain.ReviewStatus) bool { return s == domain.ReviewStatusNew })
	}
	if !filters.IncludeReview {
		cards = dropStatus(cards, func(s domain.ReviewStatus) bool { return s != domain.ReviewStatusNew })
	}

	// New cards first, then weakest accuracy first among the seen cards.
	sort.SliceStable(cards, func(i, j int) bool {
		iNew := cards[i].Status == domain.ReviewStatusNew
		jNew := cards[j].Status == domain.ReviewStatusNew
		if iNew != jNew {
			return iNew
		}
		if iNew {
			return false
		}
		return accuracy(cards[i].Stats) < accuracy(cards[j].Stats)
	})

	totalAvailable := len(cards)
	limit := filters.Limit
	if limit < 0 {
		limit = 0
	}
	if limit < len(cards) {
		cards = cards[:limit]
	}

	return &Session{Cards: cards, TotalAvailable: totalAvailable}, nil
}

// joinCard combines a catalog entry with the user's stats for it, filling in
// defaults when no record exists.
func joinCard(mnemonic domain.Mnemonic, stats *domain.MnemonicStats, now time.Time) Card {
	card := Card{Mnemonic: mnemonic, Status: Classify(stats, now)}
	if stats != nil {
		card.Stats = *stats
		return card
	}

	defaults := DefaultParams()
	card.Stats = domain.MnemonicStats{
		UserID:       mnemonic.UserID,
		MnemonicID:   mnemonic.ID,
		EaseFactor:   defaults.InitialEaseFactor,
		IntervalDays: defaults.FirstIntervalDays,
	}
	return card
}

// accuracy returns the fraction of answers the user got right. A seen card
// with no recorded answers is treated as most urgent (0.0) rather than
// producing an undefined ratio.
func accuracy(stats domain.MnemonicStats) float64 {
	total := stats.TotalAnswers()
	if total == 0 {
		return 0.0
	}
	return float64(stats.CorrectCount) / float64(total)
}

func dropStatus(cards []Card, drop func(domain.ReviewStatus) bool) []Card {
	kept := cards[:0]
	for _, card := range cards {
		if !drop(card.Status) {
			kept = append(kept, card)
		}
	}
	return kept
}
