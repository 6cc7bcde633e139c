package testutil

import (
	"time"

	"go.uber.org/zap"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDeck creates a test deck
func NewTestDeck(id, name string) *domain.Deck {
	now := time.Now()
	return &domain.Deck{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestCard creates a test flashcard with a fresh scheduling state
func NewTestCard(id, deckID, front, back string) *domain.Flashcard {
	now := time.Now()
	return &domain.Flashcard{
		ID:           id,
		DeckID:       deckID,
		FrontContent: front,
		BackContent:  back,
		Scheduling:   srs.NewState(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestReview creates a test review record
func NewTestReview(id, cardID, deckID string, quality float64) *domain.Review {
	return &domain.Review{
		ID:          id,
		FlashcardID: cardID,
		DeckID:      deckID,
		Quality:     quality,
		ReviewedAt:  time.Now(),
	}
}
