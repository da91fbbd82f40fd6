package postgres

import (
	"database/sql"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetScore returns the user's lifetime test score
func (r *UserRepo) GetScore(userID int64) (domain.Score, error) {
	var score domain.Score
	query := `SELECT score_correct, score_total FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&score.Correct, &score.Total)

	if err == sql.ErrNoRows {
		return domain.Score{}, nil
	}
	if err != nil {
		return domain.Score{}, err
	}

	return score, nil
}

// IncrementScore records one answered question and returns the updated score
func (r *UserRepo) IncrementScore(userID int64, correct bool) (domain.Score, error) {
	query := `
		INSERT INTO users (user_id, authorized, score_correct, score_total)
		VALUES ($1, FALSE, CASE WHEN $2 THEN 1 ELSE 0 END, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET
			score_correct = users.score_correct + EXCLUDED.score_correct,
			score_total = users.score_total + 1
		RETURNING score_correct, score_total
	`
	var score domain.Score
	err := r.db.QueryRow(query, userID, correct).Scan(&score.Correct, &score.Total)
	if err != nil {
		return domain.Score{}, err
	}

	return score, nil
}
