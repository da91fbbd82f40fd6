package testutil

import (
	"fmt"
	"time"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestWord creates a test word pair
func NewTestWord(id string, userID int64, dutch, farsi string) domain.Word {
	return domain.Word{
		ID:        id,
		UserID:    userID,
		Dutch:     dutch,
		Farsi:     farsi,
		CreatedAt: time.Now(),
	}
}

// NewTestVocabulary creates n word pairs with distinct texts on both sides,
// in insertion order with increasing timestamps
func NewTestVocabulary(userID int64, n int) []domain.Word {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	words := make([]domain.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, domain.Word{
			ID:        fmt.Sprintf("w%03d", i),
			UserID:    userID,
			Dutch:     fmt.Sprintf("woord%d", i),
			Farsi:     fmt.Sprintf("واژه%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return words
}
