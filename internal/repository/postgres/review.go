package postgres

import (
	"database/sql"

	"github.com/vel190704/Tutor/internal/domain"
)

// ReviewRepo implements repository.ReviewRepository
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// SaveReview inserts one review audit row
func (r *ReviewRepo) SaveReview(review *domain.Review) error {
	query := `
		INSERT INTO flashcard_reviews (id, flashcard_id, deck_id, quality, response_time, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		review.ID, review.FlashcardID, review.DeckID,
		review.Quality, review.ResponseTime, review.ReviewedAt,
	)
	return err
}

// GetReviewsByCard returns the most recent reviews for a card
func (r *ReviewRepo) GetReviewsByCard(cardID string, limit int) ([]domain.Review, error) {
	query := `
		SELECT id, flashcard_id, deck_id, quality, response_time, reviewed_at
		FROM flashcard_reviews
		WHERE flashcard_id = $1
		ORDER BY reviewed_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(query, cardID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(
			&rev.ID, &rev.FlashcardID, &rev.DeckID,
			&rev.Quality, &rev.ResponseTime, &rev.ReviewedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}

// CleanOldReviews deletes review rows older than specified days
func (r *ReviewRepo) CleanOldReviews(days int) error {
	query := `
		DELETE FROM flashcard_reviews
		WHERE reviewed_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
