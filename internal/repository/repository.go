package repository

import (
	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
)

// UserRepository defines user and score data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	GetScore(userID int64) (domain.Score, error)
	IncrementScore(userID int64, correct bool) (domain.Score, error)
}

// WordRepository defines vocabulary data operations
type WordRepository interface {
	// UpsertWord inserts the pair or, if the user already has an entry with
	// the same normalized Dutch text, replaces its translation and enrichment
	// while keeping the original id.
	UpsertWord(userID int64, dutch, farsi string, enrichment domain.Enrichment) (*domain.Word, error)
	// ListWords returns the user's vocabulary in insertion order, oldest first.
	ListWords(userID int64) ([]domain.Word, error)
	SetImportant(userID int64, wordID string, important bool) (bool, error)
	IsImportant(userID int64, wordID string) (bool, error)
	ListImportant(userID int64) ([]domain.Word, error)
	CleanOldWords(days int) error
}

// QuizStateRepository defines test session and pending question operations
type QuizStateRepository interface {
	GetSession(userID int64) (domain.TestSession, error)
	SaveSession(userID int64, session domain.TestSession) error
	// GetCurrentQuestion returns nil without error when no question is pending.
	GetCurrentQuestion(userID int64) (*domain.Question, error)
	SaveCurrentQuestion(userID int64, q *domain.Question) error
	ClearCurrentQuestion(userID int64) error
}
