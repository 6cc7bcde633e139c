package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
)

// FlashcardRepo implements repository.FlashcardRepository
type FlashcardRepo struct {
	db *sql.DB
}

// NewFlashcardRepo creates a new flashcard repository
func NewFlashcardRepo(db *sql.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

const cardColumns = `id, deck_id, front_content, back_content, tags,
		ease_factor, interval_days, repetition, next_review, difficulty, state_updated_at,
		created_at, updated_at`

// CreateCard inserts a new flashcard with its initial scheduling state
func (r *FlashcardRepo) CreateCard(card *domain.Flashcard) error {
	query := `
		INSERT INTO flashcards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(query,
		card.ID, card.DeckID, card.FrontContent, card.BackContent, pq.Array(card.Tags),
		card.Scheduling.EaseFactor, card.Scheduling.Interval, card.Scheduling.Repetition,
		card.Scheduling.NextReview, card.Scheduling.Difficulty, card.Scheduling.UpdatedAt,
		card.CreatedAt, card.UpdatedAt,
	)
	return err
}

// GetCard returns a flashcard by ID, or nil if it does not exist
func (r *FlashcardRepo) GetCard(cardID string) (*domain.Flashcard, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM flashcards
		WHERE id = $1
	`
	card, err := scanCard(r.db.QueryRow(query, cardID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return card, nil
}

// GetCardsByDeck returns all flashcards in a deck
func (r *FlashcardRepo) GetCardsByDeck(deckID string) ([]domain.Flashcard, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM flashcards
		WHERE deck_id = $1
		ORDER BY created_at
	`
	return r.queryCards(query, deckID)
}

// GetDueCards returns flashcards in a deck whose next review is due
func (r *FlashcardRepo) GetDueCards(deckID string, due time.Time) ([]domain.Flashcard, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM flashcards
		WHERE deck_id = $1 AND next_review <= $2
		ORDER BY next_review
	`
	return r.queryCards(query, deckID, due)
}

// UpdateCardContent updates a card's front/back text
func (r *FlashcardRepo) UpdateCardContent(cardID, front, back string, updatedAt time.Time) error {
	query := `
		UPDATE flashcards
		SET front_content = $2, back_content = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(query, cardID, front, back, updatedAt)
	return err
}

// UpdateScheduling writes a card's new scheduling state after a review
func (r *FlashcardRepo) UpdateScheduling(cardID string, state srs.State) error {
	query := `
		UPDATE flashcards
		SET ease_factor = $2, interval_days = $3, repetition = $4,
			next_review = $5, difficulty = $6, state_updated_at = $7
		WHERE id = $1
	`
	_, err := r.db.Exec(query, cardID,
		state.EaseFactor, state.Interval, state.Repetition,
		state.NextReview, state.Difficulty, state.UpdatedAt,
	)
	return err
}

func (r *FlashcardRepo) queryCards(query string, args ...interface{}) ([]domain.Flashcard, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Flashcard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}

	return cards, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCard(s scanner) (*domain.Flashcard, error) {
	var c domain.Flashcard
	err := s.Scan(
		&c.ID, &c.DeckID, &c.FrontContent, &c.BackContent, pq.Array(&c.Tags),
		&c.Scheduling.EaseFactor, &c.Scheduling.Interval, &c.Scheduling.Repetition,
		&c.Scheduling.NextReview, &c.Scheduling.Difficulty, &c.Scheduling.UpdatedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
