package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type createDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"is_public"`
}

// handleDecks handles POST /api/flashcards/decks
func (h *Handler) handleDecks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	deck, err := h.deckService.CreateDeck(req.Name, req.Description, req.Category, req.IsPublic, time.Now().UTC())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toDeckResponse(deck, 0))
}

// handleDeckSubtree handles GET requests under /api/flashcards/decks/:
// the deck itself, its card list, its due queue and its export
func (h *Handler) handleDeckSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/flashcards/decks/")
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	if parts[0] == "" {
		respondError(w, http.StatusNotFound, "deck id is required")
		return
	}
	deckID := parts[0]

	switch {
	case len(parts) == 1:
		h.getDeck(w, r, deckID)
	case len(parts) == 2 && parts[1] == "cards":
		h.getDeckCards(w, deckID)
	case len(parts) == 2 && parts[1] == "due":
		h.getDueCards(w, deckID)
	case len(parts) == 2 && parts[1] == "export":
		h.exportDeck(w, r, deckID)
	default:
		respondError(w, http.StatusNotFound, "not found")
	}
}

func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request, deckID string) {
	deck, count, err := h.deckService.GetDeck(deckID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := toDeckResponse(deck, count)

	if r.URL.Query().Get("include_cards") == "true" {
		now := time.Now().UTC()
		cards, err := h.deckService.GetDeckCards(deckID, now)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		resp.Flashcards = toCardResponses(cards, now)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) getDeckCards(w http.ResponseWriter, deckID string) {
	now := time.Now().UTC()
	cards, err := h.deckService.GetDeckCards(deckID, now)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCardResponses(cards, now))
}

func (h *Handler) getDueCards(w http.ResponseWriter, deckID string) {
	now := time.Now().UTC()
	cards, err := h.studyService.DueCards(deckID, now)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCardResponses(cards, now))
}

type deckExportResponse struct {
	Deck  deckResponse   `json:"deck"`
	Cards []cardResponse `json:"cards"`
}

func (h *Handler) exportDeck(w http.ResponseWriter, r *http.Request, deckID string) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "txt" {
		respondError(w, http.StatusBadRequest, "supported formats: json, txt")
		return
	}

	now := time.Now().UTC()
	export, err := h.deckService.ExportDeck(deckID, format, now)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if format == "txt" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(export.Text()))
		return
	}

	respondJSON(w, http.StatusOK, deckExportResponse{
		Deck:  toDeckResponse(export.Deck, len(export.Cards)),
		Cards: toCardResponses(export.Cards, now),
	})
}
