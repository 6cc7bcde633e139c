package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service errors to HTTP statuses: not-found
// sentinels become 404, anything else is logged and returned as 500
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrDeckNotFound) || errors.Is(err, domain.ErrCardNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.logger.Error("Request failed", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal server error")
}

type spacingResponse struct {
	EaseFactor float64   `json:"ease_factor"`
	Interval   int       `json:"interval"`
	Repetition int       `json:"repetition"`
	NextReview time.Time `json:"next_review"`
	Difficulty float64   `json:"difficulty"`
}

type cardResponse struct {
	ID             string          `json:"id"`
	DeckID         string          `json:"deck_id"`
	FrontContent   string          `json:"front_content"`
	BackContent    string          `json:"back_content"`
	Tags           []string        `json:"tags"`
	Spacing        spacingResponse `json:"spacing"`
	MemoryStrength float64         `json:"memory_strength"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func toCardResponse(c domain.Flashcard, now time.Time) cardResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return cardResponse{
		ID:           c.ID,
		DeckID:       c.DeckID,
		FrontContent: c.FrontContent,
		BackContent:  c.BackContent,
		Tags:         tags,
		Spacing: spacingResponse{
			EaseFactor: c.Scheduling.EaseFactor,
			Interval:   c.Scheduling.Interval,
			Repetition: c.Scheduling.Repetition,
			NextReview: c.Scheduling.NextReview,
			Difficulty: c.Scheduling.Difficulty,
		},
		MemoryStrength: srs.MemoryStrength(c.Scheduling, now),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCardResponses(cards []domain.Flashcard, now time.Time) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c, now))
	}
	return out
}

type deckResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	IsPublic       bool           `json:"is_public"`
	FlashcardCount int            `json:"flashcard_count"`
	Flashcards     []cardResponse `json:"flashcards,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func toDeckResponse(d *domain.Deck, count int) deckResponse {
	return deckResponse{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Category:       d.Category,
		IsPublic:       d.IsPublic,
		FlashcardCount: count,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type reviewResponse struct {
	ID              string    `json:"id"`
	FlashcardID     string    `json:"flashcard_id"`
	ReviewTime      time.Time `json:"review_time"`
	ResponseTime    float64   `json:"response_time"`
	ResponseQuality float64   `json:"response_quality"`
}

func toReviewResponses(reviews []domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewResponse{
			ID:              r.ID,
			FlashcardID:     r.FlashcardID,
			ReviewTime:      r.ReviewedAt,
			ResponseTime:    r.ResponseTime,
			ResponseQuality: r.Quality,
		})
	}
	return out
}
