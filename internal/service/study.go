package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/repository"
	"github.com/vel190704/Tutor/internal/srs"
)

// StudyService handles review recording, the due-card queue and
// review-log retention
type StudyService struct {
	deckRepo      repository.DeckRepository
	cardRepo      repository.FlashcardRepository
	reviewRepo    repository.ReviewRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStudyService creates a new study service
func NewStudyService(
	deckRepo repository.DeckRepository,
	cardRepo repository.FlashcardRepository,
	reviewRepo repository.ReviewRepository,
	retentionDays int,
	logger *zap.Logger,
) *StudyService {
	return &StudyService{
		deckRepo:      deckRepo,
		cardRepo:      cardRepo,
		reviewRepo:    reviewRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// RecordReview applies one review to a card: it runs the scheduler over the
// card's current state, persists the new state and writes an audit row.
// The scheduler itself is pure; all I/O happens here.
func (s *StudyService) RecordReview(cardID string, quality, responseTime float64, now time.Time) (*domain.Flashcard, error) {
	card, err := s.cardRepo.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrCardNotFound
	}

	card.Scheduling = srs.Review(card.Scheduling, quality, now)

	if err := s.cardRepo.UpdateScheduling(card.ID, card.Scheduling); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:           uuid.NewString(),
		FlashcardID:  card.ID,
		DeckID:       card.DeckID,
		Quality:      quality,
		ResponseTime: responseTime,
		ReviewedAt:   now,
	}
	if err := s.reviewRepo.SaveReview(review); err != nil {
		return nil, err
	}

	s.logger.Info("Review recorded",
		zap.String("card_id", card.ID),
		zap.Float64("quality", quality),
		zap.Int("interval_days", card.Scheduling.Interval),
		zap.Int("repetition", card.Scheduling.Repetition),
		zap.Time("next_review", card.Scheduling.NextReview),
	)

	return card, nil
}

// DueCards returns the cards in a deck that are due for review at the given
// instant, weakest memory first
func (s *StudyService) DueCards(deckID string, now time.Time) ([]domain.Flashcard, error) {
	deck, err := s.deckRepo.GetDeck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.ErrDeckNotFound
	}

	cards, err := s.cardRepo.GetDueCards(deckID, now)
	if err != nil {
		return nil, err
	}

	sortByStrength(cards, now)
	return cards, nil
}

// ReviewHistory returns the most recent reviews recorded for a card
func (s *StudyService) ReviewHistory(cardID string, limit int) ([]domain.Review, error) {
	const defaultLimit = 50

	if limit <= 0 {
		limit = defaultLimit
	}

	card, err := s.cardRepo.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrCardNotFound
	}

	return s.reviewRepo.GetReviewsByCard(cardID, limit)
}

// CleanupOldReviews removes review audit rows past the retention window
func (s *StudyService) CleanupOldReviews() error {
	s.logger.Info("Starting cleanup of old reviews", zap.Int("retention_days", s.retentionDays))

	if err := s.reviewRepo.CleanOldReviews(s.retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old reviews", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
