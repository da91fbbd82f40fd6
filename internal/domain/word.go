package domain

import "time"

// Word represents a Dutch-Farsi vocabulary pair saved by a user
type Word struct {
	ID        string
	UserID    int64
	Dutch     string
	Farsi     string
	Synonyms  []string
	Antonyms  []string
	Examples  []Example
	Important bool
	CreatedAt time.Time
}

// Example is a usage example attached to a word
type Example struct {
	Dutch string `json:"dutch"`
	Farsi string `json:"farsi"`
}

// Enrichment holds optional dictionary data saved alongside a word
type Enrichment struct {
	Synonyms []string
	Antonyms []string
	Examples []Example
}

// VocabularyStats summarizes a user's vocabulary and quiz results
type VocabularyStats struct {
	TotalWords  int
	SimpleWords int
	Correct     int
	Answered    int
}
