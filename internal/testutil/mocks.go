package testutil

import (
	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetScore(userID int64) (domain.Score, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Score), args.Error(1)
}

func (m *MockUserRepository) IncrementScore(userID int64, correct bool) (domain.Score, error) {
	args := m.Called(userID, correct)
	return args.Get(0).(domain.Score), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) UpsertWord(userID int64, dutch, farsi string, enrichment domain.Enrichment) (*domain.Word, error) {
	args := m.Called(userID, dutch, farsi, enrichment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) SetImportant(userID int64, wordID string, important bool) (bool, error) {
	args := m.Called(userID, wordID, important)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) IsImportant(userID int64, wordID string) (bool, error) {
	args := m.Called(userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ListImportant(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CleanOldWords(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockQuizStateRepository is a mock for QuizStateRepository
type MockQuizStateRepository struct {
	mock.Mock
}

func (m *MockQuizStateRepository) GetSession(userID int64) (domain.TestSession, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.TestSession), args.Error(1)
}

func (m *MockQuizStateRepository) SaveSession(userID int64, session domain.TestSession) error {
	args := m.Called(userID, session)
	return args.Error(0)
}

func (m *MockQuizStateRepository) GetCurrentQuestion(userID int64) (*domain.Question, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuizStateRepository) SaveCurrentQuestion(userID int64, q *domain.Question) error {
	args := m.Called(userID, q)
	return args.Error(0)
}

func (m *MockQuizStateRepository) ClearCurrentQuestion(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}
