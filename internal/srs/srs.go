// Package srs implements the SM-2-variant spaced repetition scheduler.
//
// The package is pure: callers load a card's State, apply Review with the
// user's recall quality, and persist the returned State themselves. The
// current time is always passed in, never read from the clock.
package srs

import (
	"math"
	"time"
)

const (
	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor = 1.3

	// DefaultEaseFactor is the ease factor assigned to new cards.
	DefaultEaseFactor = 2.5

	// DefaultDifficulty is the descriptive difficulty for new cards (1-5 scale).
	DefaultDifficulty = 3.0
)

// State holds the scheduling state of a single flashcard.
type State struct {
	EaseFactor float64   // difficulty multiplier, always >= MinEaseFactor
	Interval   int       // days until the next review, >= 1 once reviewed
	Repetition int       // consecutive successful recalls since the last lapse
	NextReview time.Time // instant the card becomes due
	Difficulty float64   // caller-set 1-5 rating, not derived by the scheduler
	UpdatedAt  time.Time // instant of the last state change
}

// NewState returns the scheduling state for a freshly created card.
// The card is due immediately.
func NewState(now time.Time) State {
	return State{
		EaseFactor: DefaultEaseFactor,
		Interval:   1,
		Repetition: 0,
		NextReview: now,
		Difficulty: DefaultDifficulty,
		UpdatedAt:  now,
	}
}

// Review applies a single review to the state and returns the new state.
//
// quality is the user's 0-5 recall score; out-of-range values are clamped,
// never rejected. quality < 3 is a lapse: repetition and interval reset,
// ease factor stays as it was. quality >= 3 adjusts the ease factor and
// grows the interval on the 1 / 6 / round(interval * ease) ladder.
func Review(s State, quality float64, now time.Time) State {
	q := clampQuality(quality)

	if q < 3 {
		// Lapse: reset the schedule but keep the ease factor.
		s.Repetition = 0
		s.Interval = 1
	} else {
		s.EaseFactor = math.Max(MinEaseFactor, s.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))

		// Interval ladder uses the repetition count before incrementing.
		switch s.Repetition {
		case 0:
			s.Interval = 1
		case 1:
			s.Interval = 6
		default:
			s.Interval = int(math.Round(float64(s.Interval) * s.EaseFactor))
		}

		s.Repetition++
	}

	s.NextReview = now.Add(time.Duration(s.Interval) * 24 * time.Hour)
	s.UpdatedAt = now
	return s
}

// MemoryStrength estimates the card's current recall strength in [0, 1].
//
// Strength is 1 immediately after a review, 0.5 when half the scheduled
// interval has elapsed, and decays toward 0 beyond that. It is meant only
// for ordering cards within a study queue (weakest first) and is never
// persisted.
func MemoryStrength(s State, now time.Time) float64 {
	elapsed := int(now.Sub(s.UpdatedAt).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}

	interval := s.Interval
	if interval < 1 {
		// Malformed state from an external source; avoid dividing by zero.
		interval = 1
	}

	ratio := float64(elapsed) / (float64(interval) * 0.5)
	strength := 1.0 / (1.0 + ratio*ratio)

	return math.Max(0, math.Min(1, strength))
}

func clampQuality(q float64) float64 {
	if q < 0 {
		return 0
	}
	if q > 5 {
		return 5
	}
	return q
}
