package postgres

import (
	"database/sql"
	"time"

	"github.com/vel190704/Tutor/internal/domain"
)

// DeckRepo implements repository.DeckRepository
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// CreateDeck inserts a new deck
func (r *DeckRepo) CreateDeck(deck *domain.Deck) error {
	query := `
		INSERT INTO decks (id, name, description, category, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		deck.ID, deck.Name, deck.Description, deck.Category, deck.IsPublic,
		deck.CreatedAt, deck.UpdatedAt,
	)
	return err
}

// GetDeck returns a deck by ID, or nil if it does not exist
func (r *DeckRepo) GetDeck(deckID string) (*domain.Deck, error) {
	var d domain.Deck
	query := `
		SELECT id, name, description, category, is_public, created_at, updated_at
		FROM decks
		WHERE id = $1
	`
	err := r.db.QueryRow(query, deckID).Scan(
		&d.ID, &d.Name, &d.Description, &d.Category, &d.IsPublic, &d.CreatedAt, &d.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// CountCards returns the number of flashcards in a deck
func (r *DeckRepo) CountCards(deckID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM flashcards
		WHERE deck_id = $1
	`
	var count int
	err := r.db.QueryRow(query, deckID).Scan(&count)
	return count, err
}

// TouchDeck bumps a deck's updated_at timestamp
func (r *DeckRepo) TouchDeck(deckID string, updatedAt time.Time) error {
	query := `
		UPDATE decks
		SET updated_at = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, deckID, updatedAt)
	return err
}
