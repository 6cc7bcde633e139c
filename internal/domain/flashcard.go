package domain

import (
	"time"

	"github.com/vel190704/Tutor/internal/srs"
)

// Flashcard is a single question-answer card together with its
// spaced-repetition scheduling state. DeckID is a plain foreign-key
// reference; cards never hold their deck in memory.
type Flashcard struct {
	ID           string
	DeckID       string
	FrontContent string
	BackContent  string
	Tags         []string
	Scheduling   srs.State
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
