package service

import (
	"sort"
	"time"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
)

// sortByStrength orders cards by estimated memory strength, weakest first,
// so the cards most in need of review come out on top. Ties keep the
// repository ordering.
func sortByStrength(cards []domain.Flashcard, now time.Time) {
	sort.SliceStable(cards, func(i, j int) bool {
		return srs.MemoryStrength(cards[i].Scheduling, now) < srs.MemoryStrength(cards[j].Scheduling, now)
	})
}
