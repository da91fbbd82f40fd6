package service

import (
	"fmt"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
	"github.com/hameda9795/farsi-dutch-bot/internal/repository"

	"go.uber.org/zap"
)

// VocabularyService handles word storage and importance marks
type VocabularyService struct {
	wordRepo    repository.WordRepository
	userRepo    repository.UserRepository
	eligibility EligibilityPolicy
	logger      *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(
	wordRepo repository.WordRepository,
	userRepo repository.UserRepository,
	eligibility EligibilityPolicy,
	logger *zap.Logger,
) *VocabularyService {
	return &VocabularyService{
		wordRepo:    wordRepo,
		userRepo:    userRepo,
		eligibility: eligibility,
		logger:      logger,
	}
}

// UpsertWord saves a word pair. A pair whose Dutch text matches an existing
// entry (case-insensitive, trimmed) updates that entry in place.
func (s *VocabularyService) UpsertWord(userID int64, dutch, farsi string, enrichment domain.Enrichment) (*domain.Word, error) {
	if dutch == "" || farsi == "" {
		return nil, fmt.Errorf("word and translation cannot be empty")
	}

	word, err := s.wordRepo.UpsertWord(userID, dutch, farsi, enrichment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.String("dutch", word.Dutch),
	)

	return word, nil
}

// ListWords returns the user's vocabulary in insertion order
func (s *VocabularyService) ListWords(userID int64) ([]domain.Word, error) {
	return s.wordRepo.ListWords(userID)
}

// Stats returns vocabulary counts and the lifetime test score
func (s *VocabularyService) Stats(userID int64) (domain.VocabularyStats, error) {
	words, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return domain.VocabularyStats{}, err
	}

	score, err := s.userRepo.GetScore(userID)
	if err != nil {
		return domain.VocabularyStats{}, err
	}

	return domain.VocabularyStats{
		TotalWords:  len(words),
		SimpleWords: len(s.eligibility.SimpleWords(words)),
		Correct:     score.Correct,
		Answered:    score.Total,
	}, nil
}

// MarkImportant flags a word as important. Returns false when the word is
// not in the user's vocabulary; that is a no-op, not an error.
func (s *VocabularyService) MarkImportant(userID int64, wordID string) (bool, error) {
	return s.wordRepo.SetImportant(userID, wordID, true)
}

// UnmarkImportant removes the important flag from a word
func (s *VocabularyService) UnmarkImportant(userID int64, wordID string) (bool, error) {
	return s.wordRepo.SetImportant(userID, wordID, false)
}

// IsImportant reports whether a word is flagged as important
func (s *VocabularyService) IsImportant(userID int64, wordID string) (bool, error) {
	return s.wordRepo.IsImportant(userID, wordID)
}

// ListImportant returns the user's important words
func (s *VocabularyService) ListImportant(userID int64) ([]domain.Word, error) {
	return s.wordRepo.ListImportant(userID)
}
