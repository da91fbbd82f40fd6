package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	"github.com/lib/pq"
)

// QuizStateRepo implements repository.QuizStateRepository
type QuizStateRepo struct {
	db *sql.DB
}

// NewQuizStateRepo creates a new quiz state repository
func NewQuizStateRepo(db *sql.DB) *QuizStateRepo {
	return &QuizStateRepo{db: db}
}

// GetSession returns the user's test session, or an inactive zero session
// for users who never started one
func (r *QuizStateRepo) GetSession(userID int64) (domain.TestSession, error) {
	var s domain.TestSession
	var startedAt sql.NullTime
	query := `SELECT active, used_word_ids, started_at FROM test_sessions WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&s.Active, pq.Array(&s.UsedWordIDs), &startedAt)

	if err == sql.ErrNoRows {
		return domain.TestSession{}, nil
	}
	if err != nil {
		return domain.TestSession{}, err
	}

	if startedAt.Valid {
		s.StartedAt = &startedAt.Time
	}

	return s, nil
}

// SaveSession persists the user's test session
func (r *QuizStateRepo) SaveSession(userID int64, session domain.TestSession) error {
	usedIDs := session.UsedWordIDs
	if usedIDs == nil {
		usedIDs = []string{}
	}

	var startedAt sql.NullTime
	if session.StartedAt != nil {
		startedAt = sql.NullTime{Time: *session.StartedAt, Valid: true}
	}

	query := `
		INSERT INTO test_sessions (user_id, active, used_word_ids, started_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			active = EXCLUDED.active,
			used_word_ids = EXCLUDED.used_word_ids,
			started_at = EXCLUDED.started_at
	`
	_, err := r.db.Exec(query, userID, session.Active, pq.Array(usedIDs), startedAt)
	return err
}

// GetCurrentQuestion returns the user's pending question, or nil if none
func (r *QuizStateRepo) GetCurrentQuestion(userID int64) (*domain.Question, error) {
	var raw []byte
	query := `SELECT question FROM current_questions WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&raw)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var q domain.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("unmarshal current question: %w", err)
	}

	return &q, nil
}

// SaveCurrentQuestion stores the pending question, replacing any prior one
func (r *QuizStateRepo) SaveCurrentQuestion(userID int64, q *domain.Question) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal current question: %w", err)
	}

	query := `
		INSERT INTO current_questions (user_id, question)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET question = EXCLUDED.question
	`
	_, err = r.db.Exec(query, userID, raw)
	return err
}

// ClearCurrentQuestion removes the pending question. Clearing an already
// empty slot is not an error.
func (r *QuizStateRepo) ClearCurrentQuestion(userID int64) error {
	query := `DELETE FROM current_questions WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
