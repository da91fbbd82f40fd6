package domain

import "time"

// QuestionKind determines which side of the word pair is asked
type QuestionKind string

const (
	KindDutchToFarsi QuestionKind = "dutch_to_farsi"
	KindFarsiToDutch QuestionKind = "farsi_to_dutch"
)

// Question is one pending multiple-choice quiz turn for a user.
// It stays stored as the user's current question until answered or replaced.
type Question struct {
	ID            string       `json:"id"`
	Kind          QuestionKind `json:"kind"`
	WordID        string       `json:"word_id"`
	Prompt        string       `json:"prompt"`
	CorrectAnswer string       `json:"correct_answer"`
	Options       []string     `json:"options"`
	Explanation   string       `json:"explanation"`
}

// Score tracks a user's lifetime quiz results
type Score struct {
	Correct int
	Total   int
}

// TestSession tracks which words were already asked as question subjects
// during the current quiz run. UsedWordIDs only grows until every eligible
// word has been asked, then it is cleared and the session rolls over.
type TestSession struct {
	Active      bool
	UsedWordIDs []string
	StartedAt   *time.Time
}

// AnswerResult is returned after a submitted answer has been checked
type AnswerResult struct {
	IsCorrect     bool
	CorrectAnswer string
	Explanation   string
	Score         Score
}
