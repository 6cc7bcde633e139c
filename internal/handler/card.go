package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type createCardRequest struct {
	DeckID string   `json:"deck_id"`
	Front  string   `json:"front"`
	Back   string   `json:"back"`
	Tags   []string `json:"tags"`
}

type updateCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type reviewRequest struct {
	Quality      *float64 `json:"quality"`
	ResponseTime float64  `json:"response_time"`
}

// handleCards handles POST /api/flashcards/cards
func (h *Handler) handleCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.DeckID == "" || req.Front == "" || req.Back == "" {
		respondError(w, http.StatusBadRequest, "deck_id, front and back are required")
		return
	}

	now := time.Now().UTC()
	card, err := h.cardService.CreateCard(req.DeckID, req.Front, req.Back, req.Tags, now)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCardResponse(*card, now))
}

// handleCardSubtree handles requests under /api/flashcards/cards/:
// card get/update, review recording and review history
func (h *Handler) handleCardSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/flashcards/cards/")
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	if parts[0] == "" {
		respondError(w, http.StatusNotFound, "card id is required")
		return
	}
	cardID := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.getCard(w, cardID)
	case len(parts) == 1 && r.Method == http.MethodPut:
		h.updateCard(w, r, cardID)
	case len(parts) == 1:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	case len(parts) == 2 && parts[1] == "review" && r.Method == http.MethodPost:
		h.reviewCard(w, r, cardID)
	case len(parts) == 2 && parts[1] == "reviews" && r.Method == http.MethodGet:
		h.getReviewHistory(w, cardID)
	default:
		respondError(w, http.StatusNotFound, "not found")
	}
}

func (h *Handler) getCard(w http.ResponseWriter, cardID string) {
	card, err := h.cardService.GetCard(cardID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCardResponse(*card, time.Now().UTC()))
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request, cardID string) {
	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Front == "" && req.Back == "" {
		respondError(w, http.StatusBadRequest, "at least one of front or back must be provided")
		return
	}

	now := time.Now().UTC()
	card, err := h.cardService.UpdateCard(cardID, req.Front, req.Back, now)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCardResponse(*card, now))
}

func (h *Handler) reviewCard(w http.ResponseWriter, r *http.Request, cardID string) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// The scheduler clamps out-of-range values itself; only a missing or
	// non-numeric quality is rejected here.
	if req.Quality == nil {
		respondError(w, http.StatusBadRequest, "quality (number) is required")
		return
	}

	now := time.Now().UTC()
	card, err := h.studyService.RecordReview(cardID, *req.Quality, req.ResponseTime, now)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCardResponse(*card, now))
}

func (h *Handler) getReviewHistory(w http.ResponseWriter, cardID string) {
	reviews, err := h.studyService.ReviewHistory(cardID, 0)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toReviewResponses(reviews))
}
