package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
	"github.com/hameda9795/farsi-dutch-bot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionManager_EnsureActive_ExistingSession(t *testing.T) {
	startedAt := time.Now()
	existing := domain.TestSession{
		Active:      true,
		UsedWordIDs: []string{"id-1"},
		StartedAt:   &startedAt,
	}

	mockRepo := new(testutil.MockQuizStateRepository)
	mockRepo.On("GetSession", int64(123)).Return(existing, nil)

	manager := NewSessionManager(mockRepo)

	session, err := manager.EnsureActive(123)

	assert.NoError(t, err)
	assert.True(t, session.Active)
	assert.Equal(t, []string{"id-1"}, session.UsedWordIDs)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
}

func TestSessionManager_EnsureActive_StartsNewSession(t *testing.T) {
	mockRepo := new(testutil.MockQuizStateRepository)
	mockRepo.On("GetSession", int64(123)).Return(domain.TestSession{}, nil)
	mockRepo.On("SaveSession", int64(123), mock.MatchedBy(func(s domain.TestSession) bool {
		return s.Active && len(s.UsedWordIDs) == 0 && s.StartedAt != nil
	})).Return(nil)

	manager := NewSessionManager(mockRepo)

	session, err := manager.EnsureActive(123)

	assert.NoError(t, err)
	assert.True(t, session.Active)
	assert.Empty(t, session.UsedWordIDs)
	mockRepo.AssertExpectations(t)
}

func TestSessionManager_EnsureActive_GetError(t *testing.T) {
	mockRepo := new(testutil.MockQuizStateRepository)
	mockRepo.On("GetSession", int64(123)).Return(domain.TestSession{}, fmt.Errorf("db error"))

	manager := NewSessionManager(mockRepo)

	_, err := manager.EnsureActive(123)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSessionManager_End(t *testing.T) {
	mockRepo := new(testutil.MockQuizStateRepository)
	mockRepo.On("SaveSession", int64(123), mock.MatchedBy(func(s domain.TestSession) bool {
		return !s.Active && len(s.UsedWordIDs) == 0 && s.StartedAt == nil
	})).Return(nil)

	manager := NewSessionManager(mockRepo)

	err := manager.End(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSessionManager_MarkUsed(t *testing.T) {
	startedAt := time.Now()
	session := domain.TestSession{
		Active:      true,
		UsedWordIDs: []string{"id-1"},
		StartedAt:   &startedAt,
	}

	mockRepo := new(testutil.MockQuizStateRepository)
	mockRepo.On("SaveSession", int64(123), mock.MatchedBy(func(s domain.TestSession) bool {
		return s.Active && len(s.UsedWordIDs) == 2 && s.UsedWordIDs[1] == "id-2"
	})).Return(nil)

	manager := NewSessionManager(mockRepo)

	updated, err := manager.MarkUsed(123, session, "id-2")

	assert.NoError(t, err)
	assert.Equal(t, []string{"id-1", "id-2"}, updated.UsedWordIDs)
	mockRepo.AssertExpectations(t)
}

func TestSessionManager_ResetUsed(t *testing.T) {
	startedAt := time.Now()
	session := domain.TestSession{
		Active:      true,
		UsedWordIDs: []string{"id-1", "id-2", "id-3"},
		StartedAt:   &startedAt,
	}

	mockRepo := new(testutil.MockQuizStateRepository)
	mockRepo.On("SaveSession", int64(123), mock.MatchedBy(func(s domain.TestSession) bool {
		return s.Active && len(s.UsedWordIDs) == 0
	})).Return(nil)

	manager := NewSessionManager(mockRepo)

	updated, err := manager.ResetUsed(123, session)

	assert.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Empty(t, updated.UsedWordIDs)
	mockRepo.AssertExpectations(t)
}

func TestSessionManager_Available(t *testing.T) {
	manager := NewSessionManager(nil)
	eligible := []domain.Word{
		testutil.NewTestWord("id-1", 123, "huis", "خانه"),
		testutil.NewTestWord("id-2", 123, "boek", "کتاب"),
		testutil.NewTestWord("id-3", 123, "water", "آب"),
	}

	tests := []struct {
		name        string
		usedIDs     []string
		expectedIDs []string
	}{
		{
			name:        "nothing used",
			usedIDs:     nil,
			expectedIDs: []string{"id-1", "id-2", "id-3"},
		},
		{
			name:        "one used",
			usedIDs:     []string{"id-2"},
			expectedIDs: []string{"id-1", "id-3"},
		},
		{
			name:        "all used",
			usedIDs:     []string{"id-1", "id-2", "id-3"},
			expectedIDs: nil,
		},
		{
			name:        "used id not in pool",
			usedIDs:     []string{"id-9"},
			expectedIDs: []string{"id-1", "id-2", "id-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := domain.TestSession{Active: true, UsedWordIDs: tt.usedIDs}

			available := manager.Available(session, eligible)

			var ids []string
			for _, w := range available {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}
