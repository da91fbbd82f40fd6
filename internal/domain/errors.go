package domain

import "errors"

var (
	// ErrInsufficientVocabulary means the user has fewer simple words than a test needs.
	ErrInsufficientVocabulary = errors.New("not enough simple words for a test")

	// ErrNoActiveQuestion means an answer arrived while no question was pending.
	ErrNoActiveQuestion = errors.New("no active question")
)
