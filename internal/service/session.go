package service

import (
	"time"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
	"github.com/hameda9795/farsi-dutch-bot/internal/repository"
)

// SessionManager tracks per-user test session state: which words have
// already been asked, and when the current run started.
type SessionManager struct {
	stateRepo repository.QuizStateRepository
}

// NewSessionManager creates a new session manager
func NewSessionManager(stateRepo repository.QuizStateRepository) *SessionManager {
	return &SessionManager{stateRepo: stateRepo}
}

// EnsureActive returns the user's active session, starting a fresh one if
// no session is active.
func (m *SessionManager) EnsureActive(userID int64) (domain.TestSession, error) {
	session, err := m.stateRepo.GetSession(userID)
	if err != nil {
		return domain.TestSession{}, err
	}
	if session.Active {
		return session, nil
	}
	return m.Start(userID)
}

// Start begins a new session with an empty used set
func (m *SessionManager) Start(userID int64) (domain.TestSession, error) {
	now := time.Now()
	session := domain.TestSession{
		Active:      true,
		UsedWordIDs: []string{},
		StartedAt:   &now,
	}
	if err := m.stateRepo.SaveSession(userID, session); err != nil {
		return domain.TestSession{}, err
	}
	return session, nil
}

// End deactivates the session and clears its used set. Idempotent.
func (m *SessionManager) End(userID int64) error {
	return m.stateRepo.SaveSession(userID, domain.TestSession{})
}

// MarkUsed records that a word was asked as a question subject and persists
// the updated session.
func (m *SessionManager) MarkUsed(userID int64, session domain.TestSession, wordID string) (domain.TestSession, error) {
	session.UsedWordIDs = append(session.UsedWordIDs, wordID)
	if err := m.stateRepo.SaveSession(userID, session); err != nil {
		return domain.TestSession{}, err
	}
	return session, nil
}

// ResetUsed clears the used set while keeping the session active. Called
// when every eligible word has been asked, so the session rolls over instead
// of running dry.
func (m *SessionManager) ResetUsed(userID int64, session domain.TestSession) (domain.TestSession, error) {
	session.UsedWordIDs = []string{}
	if err := m.stateRepo.SaveSession(userID, session); err != nil {
		return domain.TestSession{}, err
	}
	return session, nil
}

// Available returns the eligible words not yet asked in this session,
// preserving their order. An empty result means the session is exhausted
// and must be reset before selecting again.
func (m *SessionManager) Available(session domain.TestSession, eligible []domain.Word) []domain.Word {
	if len(session.UsedWordIDs) == 0 {
		return eligible
	}

	used := make(map[string]struct{}, len(session.UsedWordIDs))
	for _, id := range session.UsedWordIDs {
		used[id] = struct{}{}
	}

	var available []domain.Word
	for _, w := range eligible {
		if _, ok := used[w.ID]; !ok {
			available = append(available, w)
		}
	}
	return available
}
