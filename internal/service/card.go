package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/repository"
	"github.com/vel190704/Tutor/internal/srs"
)

// CardService handles flashcard-related business logic
type CardService struct {
	deckRepo repository.DeckRepository
	cardRepo repository.FlashcardRepository
}

// NewCardService creates a new card service
func NewCardService(deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository) *CardService {
	return &CardService{deckRepo: deckRepo, cardRepo: cardRepo}
}

// CreateCard creates a new flashcard in a deck with a fresh scheduling state
func (s *CardService) CreateCard(deckID, front, back string, tags []string, now time.Time) (*domain.Flashcard, error) {
	if deckID == "" || front == "" || back == "" {
		return nil, fmt.Errorf("deck_id, front and back are required")
	}

	deck, err := s.deckRepo.GetDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.ErrDeckNotFound
	}

	card := &domain.Flashcard{
		ID:           uuid.NewString(),
		DeckID:       deckID,
		FrontContent: front,
		BackContent:  back,
		Tags:         tags,
		Scheduling:   srs.NewState(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.cardRepo.CreateCard(card); err != nil {
		return nil, err
	}

	if err := s.deckRepo.TouchDeck(deckID, now); err != nil {
		return nil, err
	}

	return card, nil
}

// GetCard returns a flashcard by ID
func (s *CardService) GetCard(cardID string) (*domain.Flashcard, error) {
	card, err := s.cardRepo.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrCardNotFound
	}
	return card, nil
}

// UpdateCard updates a card's front and/or back text.
// Empty fields keep their current value; at least one must be provided.
func (s *CardService) UpdateCard(cardID, front, back string, now time.Time) (*domain.Flashcard, error) {
	if front == "" && back == "" {
		return nil, fmt.Errorf("at least one of front or back must be provided")
	}

	card, err := s.cardRepo.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrCardNotFound
	}

	if front != "" {
		card.FrontContent = front
	}
	if back != "" {
		card.BackContent = back
	}
	card.UpdatedAt = now

	if err := s.cardRepo.UpdateCardContent(card.ID, card.FrontContent, card.BackContent, now); err != nil {
		return nil, err
	}

	if err := s.deckRepo.TouchDeck(card.DeckID, now); err != nil {
		return nil, err
	}

	return card, nil
}
