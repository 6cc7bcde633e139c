package handler

import (
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/vel190704/Tutor/internal/service"
)

// Handler manages the HTTP API
type Handler struct {
	deckService  *service.DeckService
	cardService  *service.CardService
	studyService *service.StudyService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	deckService *service.DeckService,
	cardService *service.CardService,
	studyService *service.StudyService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		deckService:  deckService,
		cardService:  cardService,
		studyService: studyService,
		logger:       logger,
	}
}

// Routes builds the HTTP handler with all routes and middleware applied
func (h *Handler) Routes(corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/flashcards/decks", h.handleDecks)
	mux.HandleFunc("/api/flashcards/decks/", h.handleDeckSubtree)
	mux.HandleFunc("/api/flashcards/cards", h.handleCards)
	mux.HandleFunc("/api/flashcards/cards/", h.handleCardSubtree)
	mux.HandleFunc("/healthz", h.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})

	return h.logRequests(c.Handler(mux))
}

// handleHealth reports service liveness
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
