package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/domain"
)

func newTestMnemonic(userID uuid.UUID, acronym, category, difficulty string) domain.Mnemonic {
	return domain.Mnemonic{
		ID:         uuid.New(),
		UserID:     userID,
		Acronym:    acronym,
		FullForm:   acronym + " expanded",
		Category:   category,
		Difficulty: difficulty,
	}
}

func reviewedStats(userID, mnemonicID uuid.UUID, correct, incorrect, intervalDays int, lastReviewed time.Time) *domain.MnemonicStats {
	return &domain.MnemonicStats{
		UserID:         userID,
		MnemonicID:     mnemonicID,
		CorrectCount:   correct,
		IncorrectCount: incorrect,
		EaseFactor:     2.5,
		IntervalDays:   intervalDays,
		LastReviewedAt: lastReviewed,
	}
}

func TestSelectSessionFilters(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	cardio1 := newTestMnemonic(userID, "MONA", "Cardiology", "Medium")
	cardio2 := newTestMnemonic(userID, "ROME", "Cardiology", "Hard")
	neuro := newTestMnemonic(userID, "WEBER", "Neurology", "Medium")
	catalog := []domain.Mnemonic{cardio1, cardio2, neuro}
	noStats := map[uuid.UUID]*domain.MnemonicStats{}

	baseFilters := func() SessionFilters {
		return SessionFilters{
			Categories:    Categories(),
			Difficulty:    Difficulty(""),
			Limit:         10,
			IncludeNew:    true,
			IncludeReview: true,
		}
	}

	t.Run("the All sentinel disables the category filter", func(t *testing.T) {
		filters := baseFilters()
		filters.Categories = Categories("All")

		session, err := SelectSession(catalog, noStats, filters, now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(session.Cards) != 3 {
			t.Errorf("Expected 3 cards, got %d", len(session.Cards))
		}
	})

	t.Run("category filter matches the set exactly", func(t *testing.T) {
		filters := baseFilters()
		filters.Categories = Categories("Cardiology")

		session, err := SelectSession(catalog, noStats, filters, now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(session.Cards) != 2 {
			t.Errorf("Expected 2 cards, got %d", len(session.Cards))
		}
		if session.TotalAvailable != 2 {
			t.Errorf("Expected TotalAvailable 2, got %d", session.TotalAvailable)
		}
	})

	t.Run("difficulty filter is an exact match", func(t *testing.T) {
		filters := baseFilters()
		filters.Difficulty = Difficulty("Hard")

		session, err := SelectSession(catalog, noStats, filters, now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(session.Cards) != 1 || session.Cards[0].Mnemonic.ID != cardio2.ID {
			t.Error("Expected only the hard card to survive the filter")
		}
	})

	t.Run("no matching cards is rejected", func(t *testing.T) {
		filters := baseFilters()
		filters.Categories = Categories("Pharmacology")

		_, err := SelectSession(catalog, noStats, filters, now)
		if err != ErrNoMatchingCards {
			t.Errorf("Expected ErrNoMatchingCards, got %v", err)
		}
	})

	t.Run("excluding both card types is rejected", func(t *testing.T) {
		filters := baseFilters()
		filters.IncludeNew = false
		filters.IncludeReview = false

		_, err := SelectSession(catalog, noStats, filters, now)
		if err != ErrNoCardTypesSelected {
			t.Errorf("Expected ErrNoCardTypesSelected, got %v", err)
		}
	})

	t.Run("empty catalog is rejected", func(t *testing.T) {
		_, err := SelectSession(nil, noStats, baseFilters(), now)
		if err != ErrNoMatchingCards {
			t.Errorf("Expected ErrNoMatchingCards, got %v", err)
		}
	})
}

func TestSelectSessionIncludeFlags(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	seen := newTestMnemonic(userID, "SEEN", "Cardiology", "Medium")
	fresh := newTestMnemonic(userID, "FRESH", "Cardiology", "Medium")
	catalog := []domain.Mnemonic{seen, fresh}
	stats := map[uuid.UUID]*domain.MnemonicStats{
		seen.ID: reviewedStats(userID, seen.ID, 2, 1, 1, now.Add(-48*time.Hour)),
	}

	t.Run("excluding new keeps only seen cards", func(t *testing.T) {
		session, err := SelectSession(catalog, stats, SessionFilters{
			Limit: 10, IncludeNew: false, IncludeReview: true,
		}, now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(session.Cards) != 1 || session.Cards[0].Mnemonic.ID != seen.ID {
			t.Error("Expected only the seen card")
		}
	})

	t.Run("excluding review keeps only new cards", func(t *testing.T) {
		session, err := SelectSession(catalog, stats, SessionFilters{
			Limit: 10, IncludeNew: true, IncludeReview: false,
		}, now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(session.Cards) != 1 || session.Cards[0].Mnemonic.ID != fresh.ID {
			t.Error("Expected only the new card")
		}
	})
}

func TestSelectSessionOrdering(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	strong := newTestMnemonic(userID, "STRONG", "Cardiology", "Medium")
	weak := newTestMnemonic(userID, "WEAK", "Cardiology", "Medium")
	fresh := newTestMnemonic(userID, "FRESH", "Cardiology", "Medium")
	unanswered := newTestMnemonic(userID, "BLANK", "Cardiology", "Medium")
	catalog := []domain.Mnemonic{strong, weak, fresh, unanswered}

	lastWeek := now.Add(-7 * 24 * time.Hour)
	stats := map[uuid.UUID]*domain.MnemonicStats{
		strong.ID: reviewedStats(userID, strong.ID, 9, 1, 6, lastWeek),
		weak.ID:   reviewedStats(userID, weak.ID, 1, 9, 1, lastWeek),
		// Seen card with no recorded answers: sentinel accuracy 0.0,
		// sorts ahead of every answered card.
		unanswered.ID: reviewedStats(userID, unanswered.ID, 0, 0, 1, lastWeek),
	}

	session, err := SelectSession(catalog, stats, SessionFilters{
		Limit: 10, IncludeNew: true, IncludeReview: true,
	}, now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(session.Cards) != 4 {
		t.Fatalf("Expected 4 cards, got %d", len(session.Cards))
	}

	expected := []uuid.UUID{fresh.ID, unanswered.ID, weak.ID, strong.ID}
	for i, id := range expected {
		if session.Cards[i].Mnemonic.ID != id {
			t.Errorf("Position %d: expected %q, got %q",
				i, acronymOf(catalog, id), session.Cards[i].Mnemonic.Acronym)
		}
	}

	// No new card may follow a seen card.
	seenStarted := false
	for _, card := range session.Cards {
		if card.Status != domain.ReviewStatusNew {
			seenStarted = true
		} else if seenStarted {
			t.Error("Found a new card after a seen card")
		}
	}
}

func TestSelectSessionCap(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	catalog := make([]domain.Mnemonic, 0, 8)
	for i := 0; i < 8; i++ {
		catalog = append(catalog, newTestMnemonic(userID, "CARD", "Cardiology", "Medium"))
	}

	testCases := []struct {
		name           string
		limit          int
		expectedLen    int
		totalAvailable int
	}{
		{"cap below the pool size truncates", 5, 5, 8},
		{"cap above the pool size returns everything", 20, 8, 8},
		{"cap equal to the pool size", 8, 8, 8},
		{"zero cap yields no cards but reports the pool", 0, 0, 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := SelectSession(catalog, nil, SessionFilters{
				Limit: tc.limit, IncludeNew: true, IncludeReview: true,
			}, now)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(session.Cards) != tc.expectedLen {
				t.Errorf("Expected %d cards, got %d", tc.expectedLen, len(session.Cards))
			}
			if session.TotalAvailable != tc.totalAvailable {
				t.Errorf("Expected TotalAvailable %d, got %d", tc.totalAvailable, session.TotalAvailable)
			}
		})
	}
}

func TestSelectSessionFillsDefaultStats(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	mnemonic := newTestMnemonic(userID, "MONA", "Cardiology", "Medium")

	session, err := SelectSession([]domain.Mnemonic{mnemonic}, nil, SessionFilters{
		Limit: 1, IncludeNew: true, IncludeReview: true,
	}, now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	card := session.Cards[0]
	if card.Status != domain.ReviewStatusNew {
		t.Errorf("Expected status new, got %q", card.Status)
	}
	if card.Stats.EaseFactor != 2.5 || card.Stats.IntervalDays != 1 {
		t.Errorf("Expected default stats 2.5/1, got %v/%d",
			card.Stats.EaseFactor, card.Stats.IntervalDays)
	}
	if card.Stats.TotalAnswers() != 0 {
		t.Errorf("Expected zero answers, got %d", card.Stats.TotalAnswers())
	}
}

func acronymOf(catalog []domain.Mnemonic, id uuid.UUID) string {
	for _, m := range catalog {
		if m.ID == id {
			return m.Acronym
		}
	}
	return id.String()
}
