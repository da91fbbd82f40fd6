package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWordRepo_UpsertWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{"id", "important", "created_at"}).
		AddRow("11111111-2222-3333-4444-555555555555", false, createdAt)

	mock.ExpectQuery("INSERT INTO words").
		WithArgs(sqlmock.AnyArg(), userID, "Huis", "huis", "خانه",
			pq.Array([]string{}), pq.Array([]string{}), []byte("[]")).
		WillReturnRows(rows)

	word, err := repo.UpsertWord(userID, "Huis", "خانه", domain.Enrichment{})

	assert.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", word.ID)
	assert.Equal(t, "Huis", word.Dutch)
	assert.Equal(t, "خانه", word.Farsi)
	assert.False(t, word.Important)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_UpsertWord_WithEnrichment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)
	enrichment := domain.Enrichment{
		Synonyms: []string{"woning", "pand"},
		Antonyms: []string{},
		Examples: []domain.Example{{Dutch: "Het huis is groot.", Farsi: "خانه بزرگ است."}},
	}

	rows := sqlmock.NewRows([]string{"id", "important", "created_at"}).
		AddRow("11111111-2222-3333-4444-555555555555", true, time.Now())

	mock.ExpectQuery("INSERT INTO words").
		WithArgs(sqlmock.AnyArg(), userID, "huis", "huis", "خانه",
			pq.Array([]string{"woning", "pand"}), pq.Array([]string{}), sqlmock.AnyArg()).
		WillReturnRows(rows)

	word, err := repo.UpsertWord(userID, "huis", "خانه", enrichment)

	assert.NoError(t, err)
	assert.Equal(t, []string{"woning", "pand"}, word.Synonyms)
	assert.Len(t, word.Examples, 1)
	// Updating an existing entry keeps the important flag it already had
	assert.True(t, word.Important)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_UpsertWord_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("INSERT INTO words").
		WillReturnError(fmt.Errorf("query error"))

	word, err := repo.UpsertWord(123, "huis", "خانه", domain.Enrichment{})

	assert.Error(t, err)
	assert.Nil(t, word)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "dutch", "farsi", "synonyms", "antonyms", "examples", "important", "created_at"}).
		AddRow("id-1", userID, "huis", "خانه", []byte("{woning}"), []byte("{}"), []byte(`[{"dutch":"Het huis is groot.","farsi":"خانه بزرگ است."}]`), false, now).
		AddRow("id-2", userID, "boek", "کتاب", []byte("{}"), []byte("{}"), []byte("[]"), true, now.Add(time.Hour))

	mock.ExpectQuery("SELECT id, user_id, dutch, farsi, synonyms, antonyms, examples, important, created_at FROM words WHERE user_id = \\$1 ORDER BY created_at, id").
		WithArgs(userID).
		WillReturnRows(rows)

	words, err := repo.ListWords(userID)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "huis", words[0].Dutch)
	assert.Equal(t, []string{"woning"}, []string(words[0].Synonyms))
	assert.Len(t, words[0].Examples, 1)
	assert.Equal(t, "Het huis is groot.", words[0].Examples[0].Dutch)
	assert.Equal(t, "boek", words[1].Dutch)
	assert.True(t, words[1].Important)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListWords_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT id, user_id, dutch, farsi").
		WithArgs(int64(123)).
		WillReturnError(fmt.Errorf("query error"))

	words, err := repo.ListWords(123)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListWords_BadExamplesJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "dutch", "farsi", "synonyms", "antonyms", "examples", "important", "created_at"}).
		AddRow("id-1", int64(123), "huis", "خانه", []byte("{}"), []byte("{}"), []byte("not json"), false, time.Now())

	mock.ExpectQuery("SELECT id, user_id, dutch, farsi").
		WithArgs(int64(123)).
		WillReturnRows(rows)

	words, err := repo.ListWords(123)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListImportant(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)

	rows := sqlmock.NewRows([]string{"id", "user_id", "dutch", "farsi", "synonyms", "antonyms", "examples", "important", "created_at"}).
		AddRow("id-2", userID, "boek", "کتاب", []byte("{}"), []byte("{}"), []byte("[]"), true, time.Now())

	mock.ExpectQuery("SELECT id, user_id, dutch, farsi, synonyms, antonyms, examples, important, created_at FROM words WHERE user_id = \\$1 AND important = TRUE").
		WithArgs(userID).
		WillReturnRows(rows)

	words, err := repo.ListImportant(userID)

	assert.NoError(t, err)
	assert.Len(t, words, 1)
	assert.True(t, words[0].Important)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_SetImportant(t *testing.T) {
	tests := []struct {
		name          string
		affected      int64
		expectedKnown bool
	}{
		{
			name:          "word updated",
			affected:      1,
			expectedKnown: true,
		},
		{
			name:          "word not found",
			affected:      0,
			expectedKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectExec("UPDATE words").
				WithArgs(int64(123), "id-1", true).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			known, err := repo.SetImportant(123, "id-1", true)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedKnown, known)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_IsImportant(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"important"}).AddRow(true)

	mock.ExpectQuery("SELECT important FROM words").
		WithArgs(int64(123), "id-1").
		WillReturnRows(rows)

	important, err := repo.IsImportant(123, "id-1")

	assert.NoError(t, err)
	assert.True(t, important)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_IsImportant_UnknownWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT important FROM words").
		WithArgs(int64(123), "missing").
		WillReturnRows(sqlmock.NewRows([]string{"important"}))

	important, err := repo.IsImportant(123, "missing")

	assert.NoError(t, err)
	assert.False(t, important)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_CleanOldWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	days := 365

	mock.ExpectExec("DELETE FROM words WHERE created_at").
		WithArgs(days).
		WillReturnResult(sqlmock.NewResult(0, 10))

	err = repo.CleanOldWords(days)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
