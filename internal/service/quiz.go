package service

import (
	"fmt"
	"math/rand"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
	"github.com/hameda9795/farsi-dutch-bot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuizService builds multiple-choice questions from a user's vocabulary and
// scores the answers. A question stays pending until answered or replaced;
// answering is one-shot.
type QuizService struct {
	wordRepo  repository.WordRepository
	userRepo  repository.UserRepository
	stateRepo repository.QuizStateRepository

	sessions    *SessionManager
	selector    *Selector
	eligibility EligibilityPolicy

	minEligibleWords int
	distractorCount  int

	rng    *rand.Rand
	logger *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(
	wordRepo repository.WordRepository,
	userRepo repository.UserRepository,
	stateRepo repository.QuizStateRepository,
	sessions *SessionManager,
	selector *Selector,
	eligibility EligibilityPolicy,
	minEligibleWords int,
	distractorCount int,
	rng *rand.Rand,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		wordRepo:         wordRepo,
		userRepo:         userRepo,
		stateRepo:        stateRepo,
		sessions:         sessions,
		selector:         selector,
		eligibility:      eligibility,
		minEligibleWords: minEligibleWords,
		distractorCount:  distractorCount,
		rng:              rng,
		logger:           logger,
	}
}

// BuildNextQuestion selects the next quiz subject and assembles a question
// around it. Fails with domain.ErrInsufficientVocabulary when the user has
// fewer simple words than a test needs.
func (s *QuizService) BuildNextQuestion(userID int64) (*domain.Question, error) {
	words, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	eligible := s.eligibility.SimpleWords(words)
	if len(eligible) < s.minEligibleWords {
		return nil, domain.ErrInsufficientVocabulary
	}

	session, err := s.sessions.EnsureActive(userID)
	if err != nil {
		return nil, fmt.Errorf("ensure session: %w", err)
	}

	available := s.sessions.Available(session, eligible)
	if len(available) == 0 {
		// Every eligible word has been asked: roll the session over
		s.logger.Info("Test session exhausted, resetting used words",
			zap.Int64("user_id", userID),
			zap.Int("eligible", len(eligible)),
		)
		session, err = s.sessions.ResetUsed(userID, session)
		if err != nil {
			return nil, fmt.Errorf("reset session: %w", err)
		}
		available = eligible
	}

	subject := s.selector.Pick(available)

	if _, err := s.sessions.MarkUsed(userID, session, subject.ID); err != nil {
		return nil, fmt.Errorf("mark used: %w", err)
	}

	kind := domain.KindDutchToFarsi
	if s.rng.Intn(2) == 1 {
		kind = domain.KindFarsiToDutch
	}

	distractors := s.pickDistractors(eligible, subject, kind)
	if len(distractors) < s.distractorCount {
		// With minEligibleWords enforced this only happens when too many
		// entries share one translation
		return nil, domain.ErrInsufficientVocabulary
	}

	question := s.buildQuestion(subject, distractors, kind)

	if err := s.stateRepo.SaveCurrentQuestion(userID, question); err != nil {
		return nil, fmt.Errorf("save current question: %w", err)
	}

	return question, nil
}

// CurrentQuestion returns the user's pending question, or nil if none
func (s *QuizService) CurrentQuestion(userID int64) (*domain.Question, error) {
	return s.stateRepo.GetCurrentQuestion(userID)
}

// SubmitAnswer checks the chosen option against the pending question,
// updates the score and clears the question. A second submit without a new
// question fails with domain.ErrNoActiveQuestion. Text that matches no
// option counts as an incorrect answer, not an error.
func (s *QuizService) SubmitAnswer(userID int64, chosenOption string) (*domain.AnswerResult, error) {
	question, err := s.stateRepo.GetCurrentQuestion(userID)
	if err != nil {
		return nil, fmt.Errorf("get current question: %w", err)
	}
	if question == nil {
		return nil, domain.ErrNoActiveQuestion
	}

	isCorrect := chosenOption == question.CorrectAnswer

	score, err := s.userRepo.IncrementScore(userID, isCorrect)
	if err != nil {
		return nil, fmt.Errorf("increment score: %w", err)
	}

	if err := s.stateRepo.ClearCurrentQuestion(userID); err != nil {
		return nil, fmt.Errorf("clear current question: %w", err)
	}

	return &domain.AnswerResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
		Score:         score,
	}, nil
}

// StartSession begins a fresh test session for the user
func (s *QuizService) StartSession(userID int64) error {
	if _, err := s.sessions.Start(userID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// EndSession deactivates the session and discards any pending question
func (s *QuizService) EndSession(userID int64) error {
	if err := s.sessions.End(userID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	if err := s.stateRepo.ClearCurrentQuestion(userID); err != nil {
		return fmt.Errorf("clear current question: %w", err)
	}
	return nil
}

// pickDistractors chooses wrong-answer words whose answer-side text differs
// from the correct answer and from each other
func (s *QuizService) pickDistractors(eligible []domain.Word, subject domain.Word, kind domain.QuestionKind) []domain.Word {
	correct := answerText(subject, kind)

	candidates := make([]domain.Word, 0, len(eligible))
	for _, w := range eligible {
		if w.ID != subject.ID {
			candidates = append(candidates, w)
		}
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	seen := map[string]struct{}{correct: {}}
	var distractors []domain.Word
	for _, c := range candidates {
		if len(distractors) >= s.distractorCount {
			break
		}
		text := answerText(c, kind)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		distractors = append(distractors, c)
	}

	return distractors
}

func (s *QuizService) buildQuestion(subject domain.Word, distractors []domain.Word, kind domain.QuestionKind) *domain.Question {
	question := &domain.Question{
		ID:     uuid.NewString(),
		Kind:   kind,
		WordID: subject.ID,
	}

	switch kind {
	case domain.KindFarsiToDutch:
		question.Prompt = fmt.Sprintf("معادل هلندی کلمه «%s» چیست؟", subject.Farsi)
		question.CorrectAnswer = subject.Dutch
		question.Explanation = fmt.Sprintf("کلمه «%s» به هلندی «%s» است.", subject.Farsi, subject.Dutch)
	default:
		question.Prompt = fmt.Sprintf("معنی کلمه «%s» چیست؟", subject.Dutch)
		question.CorrectAnswer = subject.Farsi
		question.Explanation = fmt.Sprintf("کلمه «%s» به معنی «%s» است.", subject.Dutch, subject.Farsi)
	}

	options := make([]string, 0, 1+len(distractors))
	options = append(options, question.CorrectAnswer)
	for _, d := range distractors {
		options = append(options, answerText(d, kind))
	}
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	question.Options = options

	return question
}

// answerText returns the side of the pair used as an answer option
func answerText(w domain.Word, kind domain.QuestionKind) string {
	if kind == domain.KindFarsiToDutch {
		return w.Dutch
	}
	return w.Farsi
}
