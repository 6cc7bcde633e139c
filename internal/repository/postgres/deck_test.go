package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/vel190704/Tutor/internal/domain"
)

func TestDeckRepo_CreateDeck(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDeckRepo(db)

	now := time.Now()
	deck := &domain.Deck{
		ID:          "3f7b7dbe-6d3a-4f19-9c6a-0d9a1d1a2b3c",
		Name:        "Go Basics",
		Description: "Introductory Go questions",
		Category:    "programming",
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectExec("INSERT INTO decks").
		WithArgs(deck.ID, deck.Name, deck.Description, deck.Category, deck.IsPublic, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.CreateDeck(deck)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckRepo_GetDeck(t *testing.T) {
	tests := []struct {
		name          string
		deckID        string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name:   "deck found",
			deckID: "deck-1",
			mockRows: sqlmock.NewRows([]string{"id", "name", "description", "category", "is_public", "created_at", "updated_at"}).
				AddRow("deck-1", "Go Basics", "", "programming", false, time.Now(), time.Now()),
			expectedNil:   false,
			expectedError: false,
		},
		{
			name:          "deck missing",
			deckID:        "deck-404",
			mockError:     sql.ErrNoRows,
			expectedNil:   true,
			expectedError: false,
		},
		{
			name:          "query error",
			deckID:        "deck-1",
			mockError:     fmt.Errorf("connection reset"),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewDeckRepo(db)

			query := "SELECT id, name, description, category, is_public, created_at, updated_at FROM decks"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.deckID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.deckID).WillReturnRows(tt.mockRows)
			}

			deck, err := repo.GetDeck(tt.deckID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, deck)
			} else {
				assert.NotNil(t, deck)
				assert.Equal(t, tt.deckID, deck.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeckRepo_CountCards(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDeckRepo(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("deck-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountCards("deck-1")

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckRepo_TouchDeck(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDeckRepo(db)

	now := time.Now()
	mock.ExpectExec("UPDATE decks").
		WithArgs("deck-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.TouchDeck("deck-1", now)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
