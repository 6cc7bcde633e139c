package testutil

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
)

// MockDeckRepository is a mock for DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) CreateDeck(deck *domain.Deck) error {
	args := m.Called(deck)
	return args.Error(0)
}

func (m *MockDeckRepository) GetDeck(deckID string) (*domain.Deck, error) {
	args := m.Called(deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) CountCards(deckID string) (int, error) {
	args := m.Called(deckID)
	return args.Int(0), args.Error(1)
}

func (m *MockDeckRepository) TouchDeck(deckID string, updatedAt time.Time) error {
	args := m.Called(deckID, updatedAt)
	return args.Error(0)
}

// MockFlashcardRepository is a mock for FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) CreateCard(card *domain.Flashcard) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockFlashcardRepository) GetCard(cardID string) (*domain.Flashcard, error) {
	args := m.Called(cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) GetCardsByDeck(deckID string) ([]domain.Flashcard, error) {
	args := m.Called(deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) GetDueCards(deckID string, due time.Time) ([]domain.Flashcard, error) {
	args := m.Called(deckID, due)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) UpdateCardContent(cardID, front, back string, updatedAt time.Time) error {
	args := m.Called(cardID, front, back, updatedAt)
	return args.Error(0)
}

func (m *MockFlashcardRepository) UpdateScheduling(cardID string, state srs.State) error {
	args := m.Called(cardID, state)
	return args.Error(0)
}

// MockReviewRepository is a mock for ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(review *domain.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetReviewsByCard(cardID string, limit int) ([]domain.Review, error) {
	args := m.Called(cardID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) CleanOldReviews(days int) error {
	args := m.Called(days)
	return args.Error(0)
}
