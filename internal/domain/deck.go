package domain

import "time"

// Deck groups flashcards for study
type Deck struct {
	ID          string
	Name        string
	Description string
	Category    string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
