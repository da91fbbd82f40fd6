package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// normalizeDutch produces the case-insensitive key used for duplicate detection
func normalizeDutch(dutch string) string {
	return strings.ToLower(strings.TrimSpace(dutch))
}

// UpsertWord saves a word pair, updating in place when the user already has
// an entry with the same normalized Dutch text. The existing id survives
// updates because the conflict target leaves the id column untouched.
func (r *WordRepo) UpsertWord(userID int64, dutch, farsi string, enrichment domain.Enrichment) (*domain.Word, error) {
	examples := enrichment.Examples
	if examples == nil {
		examples = []domain.Example{}
	}
	examplesJSON, err := json.Marshal(examples)
	if err != nil {
		return nil, fmt.Errorf("marshal examples: %w", err)
	}

	synonyms := enrichment.Synonyms
	if synonyms == nil {
		synonyms = []string{}
	}
	antonyms := enrichment.Antonyms
	if antonyms == nil {
		antonyms = []string{}
	}

	query := `
		INSERT INTO words (id, user_id, dutch, dutch_norm, farsi, synonyms, antonyms, examples)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, dutch_norm)
		DO UPDATE SET
			dutch = EXCLUDED.dutch,
			farsi = EXCLUDED.farsi,
			synonyms = EXCLUDED.synonyms,
			antonyms = EXCLUDED.antonyms,
			examples = EXCLUDED.examples
		RETURNING id, important, created_at
	`

	w := domain.Word{
		UserID:   userID,
		Dutch:    dutch,
		Farsi:    farsi,
		Synonyms: synonyms,
		Antonyms: antonyms,
		Examples: examples,
	}
	err = r.db.QueryRow(
		query,
		uuid.NewString(), userID, dutch, normalizeDutch(dutch), farsi,
		pq.Array(synonyms), pq.Array(antonyms), examplesJSON,
	).Scan(&w.ID, &w.Important, &w.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// ListWords returns the user's vocabulary in insertion order, oldest first
func (r *WordRepo) ListWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT id, user_id, dutch, farsi, synonyms, antonyms, examples, important, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	return r.queryWords(query, userID)
}

// ListImportant returns the words the user flagged as important
func (r *WordRepo) ListImportant(userID int64) ([]domain.Word, error) {
	query := `
		SELECT id, user_id, dutch, farsi, synonyms, antonyms, examples, important, created_at
		FROM words
		WHERE user_id = $1 AND important = TRUE
		ORDER BY created_at, id
	`
	return r.queryWords(query, userID)
}

func (r *WordRepo) queryWords(query string, userID int64) ([]domain.Word, error) {
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		var examplesJSON []byte
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Dutch, &w.Farsi,
			pq.Array(&w.Synonyms), pq.Array(&w.Antonyms), &examplesJSON,
			&w.Important, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(examplesJSON) > 0 {
			if err := json.Unmarshal(examplesJSON, &w.Examples); err != nil {
				return nil, fmt.Errorf("unmarshal examples: %w", err)
			}
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// SetImportant flags or unflags a word. Returns false when the word does not
// belong to the user's vocabulary.
func (r *WordRepo) SetImportant(userID int64, wordID string, important bool) (bool, error) {
	query := `
		UPDATE words
		SET important = $3
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.Exec(query, userID, wordID, important)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// IsImportant reports whether a word is flagged as important.
// Unknown word ids are simply not important.
func (r *WordRepo) IsImportant(userID int64, wordID string) (bool, error) {
	var important bool
	query := `SELECT important FROM words WHERE user_id = $1 AND id = $2`
	err := r.db.QueryRow(query, userID, wordID).Scan(&important)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return important, nil
}

// CleanOldWords deletes words older than the specified number of days
func (r *WordRepo) CleanOldWords(days int) error {
	query := `
		DELETE FROM words
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
