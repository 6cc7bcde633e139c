package domain

import "time"

// Review is one recorded review event for a flashcard, kept as an audit
// trail separate from the card's live scheduling state.
type Review struct {
	ID           string
	FlashcardID  string
	DeckID       string
	Quality      float64
	ResponseTime float64 // seconds the user took to answer, 0 if unknown
	ReviewedAt   time.Time
}
