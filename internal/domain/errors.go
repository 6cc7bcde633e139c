package domain

import "errors"

// ErrDeckNotFound is returned when an operation references a missing deck.
var ErrDeckNotFound = errors.New("deck not found")

// ErrCardNotFound is returned when an operation references a missing flashcard.
var ErrCardNotFound = errors.New("flashcard not found")
