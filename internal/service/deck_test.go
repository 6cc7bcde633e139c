package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vel190704/Tutor/internal/domain"
	"github.com/vel190704/Tutor/internal/srs"
	"github.com/vel190704/Tutor/internal/testutil"
)

func TestDeckService_CreateDeck(t *testing.T) {
	tests := []struct {
		name          string
		deckName      string
		mockError     error
		expectedError bool
	}{
		{
			name:          "valid deck",
			deckName:      "Go Basics",
			expectedError: false,
		},
		{
			name:          "empty name",
			deckName:      "",
			expectedError: true,
		},
		{
			name:          "repository error",
			deckName:      "Go Basics",
			mockError:     fmt.Errorf("insert failed"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deckRepo := new(testutil.MockDeckRepository)
			cardRepo := new(testutil.MockFlashcardRepository)

			if tt.deckName != "" {
				deckRepo.On("CreateDeck", mock.AnythingOfType("*domain.Deck")).Return(tt.mockError)
			}

			service := NewDeckService(deckRepo, cardRepo)

			deck, err := service.CreateDeck(tt.deckName, "desc", "category", false, time.Now())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, deck)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, deck)
				assert.NotEmpty(t, deck.ID)
				assert.Equal(t, tt.deckName, deck.Name)
			}

			if tt.deckName != "" {
				deckRepo.AssertExpectations(t)
			}
		})
	}
}

func TestDeckService_GetDeck(t *testing.T) {
	t.Run("deck found", func(t *testing.T) {
		deckRepo := new(testutil.MockDeckRepository)
		cardRepo := new(testutil.MockFlashcardRepository)

		testDeck := testutil.NewTestDeck("deck-1", "Go Basics")
		deckRepo.On("GetDeck", "deck-1").Return(testDeck, nil)
		deckRepo.On("CountCards", "deck-1").Return(3, nil)

		service := NewDeckService(deckRepo, cardRepo)

		deck, count, err := service.GetDeck("deck-1")

		assert.NoError(t, err)
		assert.Equal(t, testDeck, deck)
		assert.Equal(t, 3, count)
		deckRepo.AssertExpectations(t)
	})

	t.Run("deck missing", func(t *testing.T) {
		deckRepo := new(testutil.MockDeckRepository)
		cardRepo := new(testutil.MockFlashcardRepository)

		deckRepo.On("GetDeck", "deck-404").Return(nil, nil)

		service := NewDeckService(deckRepo, cardRepo)

		deck, _, err := service.GetDeck("deck-404")

		assert.ErrorIs(t, err, domain.ErrDeckNotFound)
		assert.Nil(t, deck)
	})
}

func TestDeckService_GetDeckCards_SortsWeakestFirst(t *testing.T) {
	deckRepo := new(testutil.MockDeckRepository)
	cardRepo := new(testutil.MockFlashcardRepository)

	now := time.Now()

	// strong: reviewed just now; weak: reviewed ten days ago.
	strong := *testutil.NewTestCard("card-strong", "deck-1", "f", "b")
	strong.Scheduling = srs.State{EaseFactor: 2.5, Interval: 6, UpdatedAt: now}
	weak := *testutil.NewTestCard("card-weak", "deck-1", "f", "b")
	weak.Scheduling = srs.State{EaseFactor: 2.5, Interval: 6, UpdatedAt: now.Add(-10 * 24 * time.Hour)}

	deckRepo.On("GetDeck", "deck-1").Return(testutil.NewTestDeck("deck-1", "Go Basics"), nil)
	cardRepo.On("GetCardsByDeck", "deck-1").Return([]domain.Flashcard{strong, weak}, nil)

	service := NewDeckService(deckRepo, cardRepo)

	cards, err := service.GetDeckCards("deck-1", now)

	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "card-weak", cards[0].ID)
	assert.Equal(t, "card-strong", cards[1].ID)
}

func TestDeckService_ExportDeck(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		service := NewDeckService(new(testutil.MockDeckRepository), new(testutil.MockFlashcardRepository))

		export, err := service.ExportDeck("deck-1", "xml", time.Now())

		assert.Error(t, err)
		assert.Nil(t, export)
	})

	t.Run("txt rendering", func(t *testing.T) {
		deckRepo := new(testutil.MockDeckRepository)
		cardRepo := new(testutil.MockFlashcardRepository)

		deckRepo.On("GetDeck", "deck-1").Return(testutil.NewTestDeck("deck-1", "Go Basics"), nil)
		cardRepo.On("GetCardsByDeck", "deck-1").Return([]domain.Flashcard{
			*testutil.NewTestCard("card-1", "deck-1", "What is a slice?", "A view over an array"),
		}, nil)

		service := NewDeckService(deckRepo, cardRepo)

		export, err := service.ExportDeck("deck-1", "txt", time.Now())

		assert.NoError(t, err)
		text := export.Text()
		assert.Contains(t, text, "Flashcard Deck: Go Basics")
		assert.Contains(t, text, "Card 1:")
		assert.Contains(t, text, "Front: What is a slice?")
		assert.Contains(t, text, "Back: A view over an array")
	})

	t.Run("deck missing", func(t *testing.T) {
		deckRepo := new(testutil.MockDeckRepository)
		cardRepo := new(testutil.MockFlashcardRepository)

		deckRepo.On("GetDeck", "deck-404").Return(nil, nil)

		service := NewDeckService(deckRepo, cardRepo)

		export, err := service.ExportDeck("deck-404", "json", time.Now())

		assert.ErrorIs(t, err, domain.ErrDeckNotFound)
		assert.Nil(t, export)
	})
}
