package repository

import (
	"time"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
)

// DeckRepository defines deck data operations
type DeckRepository interface {
	CreateDeck(deck *domain.Deck) error
	GetDeck(deckID string) (*domain.Deck, error)
	CountCards(deckID string) (int, error)
	TouchDeck(deckID string, updatedAt time.Time) error
}

// FlashcardRepository defines flashcard data operations
type FlashcardRepository interface {
	CreateCard(card *domain.Flashcard) error
	GetCard(cardID string) (*domain.Flashcard, error)
	GetCardsByDeck(deckID string) ([]domain.Flashcard, error)
	GetDueCards(deckID string, due time.Time) ([]domain.Flashcard, error)
	UpdateCardContent(cardID, front, back string, updatedAt time.Time) error
	UpdateScheduling(cardID string, state srs.State) error
}

// ReviewRepository defines review audit-log operations
type ReviewRepository interface {
	SaveReview(review *domain.Review) error
	GetReviewsByCard(cardID string, limit int) ([]domain.Review, error)
	CleanOldReviews(days int) error
}
