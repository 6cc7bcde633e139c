package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/repository"
)

// DeckService handles deck-related business logic
type DeckService struct {
	deckRepo repository.DeckRepository
	cardRepo repository.FlashcardRepository
}

// NewDeckService creates a new deck service
func NewDeckService(deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository) *DeckService {
	return &DeckService{deckRepo: deckRepo, cardRepo: cardRepo}
}

// CreateDeck creates a new flashcard deck
func (s *DeckService) CreateDeck(name, description, category string, isPublic bool, now time.Time) (*domain.Deck, error) {
	if name == "" {
		return nil, fmt.Errorf("deck name cannot be empty")
	}

	deck := &domain.Deck{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Category:    category,
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.deckRepo.CreateDeck(deck); err != nil {
		return nil, err
	}

	return deck, nil
}

// GetDeck returns a deck with its card count
func (s *DeckService) GetDeck(deckID string) (*domain.Deck, int, error) {
	deck, err := s.deckRepo.GetDeck(deckID)
	if err != nil {
		return nil, 0, err
	}
	if deck == nil {
		return nil, 0, domain.ErrDeckNotFound
	}

	count, err := s.deckRepo.CountCards(deckID)
	if err != nil {
		return nil, 0, err
	}

	return deck, count, nil
}

// GetDeckCards returns all cards in a deck, weakest memory first
func (s *DeckService) GetDeckCards(deckID string, now time.Time) ([]domain.Flashcard, error) {
	deck, err := s.deckRepo.GetDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.ErrDeckNotFound
	}

	cards, err := s.cardRepo.GetCardsByDeck(deckID)
	if err != nil {
		return nil, err
	}

	sortByStrength(cards, now)
	return cards, nil
}

// DeckExport bundles a deck with its cards for export
type DeckExport struct {
	Deck  *domain.Deck
	Cards []domain.Flashcard
}

// ExportDeck returns a deck and its cards for export in the given format.
// Supported formats are "json" and "txt".
func (s *DeckService) ExportDeck(deckID, format string, now time.Time) (*DeckExport, error) {
	if format != "json" && format != "txt" {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	deck, err := s.deckRepo.GetDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.ErrDeckNotFound
	}

	cards, err := s.cardRepo.GetCardsByDeck(deckID)
	if err != nil {
		return nil, err
	}

	sortByStrength(cards, now)
	return &DeckExport{Deck: deck, Cards: cards}, nil
}

// Text renders the export as a plain-text study sheet
func (e *DeckExport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flashcard Deck: %s\n\n", e.Deck.Name)
	for i, card := range e.Cards {
		fmt.Fprintf(&b, "Card %d:\nFront: %s\nBack: %s\n\n", i+1, card.FrontContent, card.BackContent)
	}
	return b.String()
}
