package service

import (
	"strings"
	"unicode/utf8"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
)

// sentencePunctuation covers Latin and Persian terminal punctuation
const sentencePunctuation = ".!?;:؟؛"

// Dutch pronouns, determiners and auxiliary verbs that signal a sentence
// rather than a vocabulary word.
var dutchStopwords = []string{
	"ik", "jij", "hij", "zij", "wij", "jullie", "u", "we",
	"dat", "die", "deze", "waar", "wanneer", "hoe", "wat", "wie", "waarom",
	"hebben", "heeft", "hebt", "zijn", "bent", "is", "was", "waren", "wordt", "worden",
}

// Persian pronouns and forms of "to be" that signal a sentence.
var farsiStopwords = []string{
	"من", "تو", "او", "ما", "شما", "آنها",
	"که", "چه", "چی", "کی", "کجا", "چگونه", "چرا",
	"هستم", "هستی", "هست", "هستیم", "هستید", "هستند",
	"بودم", "بودی", "بود", "بودیم", "بودید", "بودند",
}

// Terms too technical to make a reasonable quiz question. These showed up in
// vocabularies after users translated cookie-consent banners.
var technicalTerms = []string{
	"identificatoren", "gepersonaliseerde", "doelgroepinzichten", "ontwikkeling",
	"verwerken", "persoonlijke", "gegevens", "apparaat",
	"شناسه‌ها", "شخصی‌سازی شده", "بینش‌های مخاطبان", "پردازش کردن", "داده‌ها", "دستگاه", "منحصر به فرد",
}

// EligibilityPolicy decides which saved words qualify as quiz material.
// The thresholds and word lists are tuning heuristics, not correctness rules:
// short idiomatic sentences without punctuation can slip through and that is
// acceptable.
type EligibilityPolicy struct {
	MaxTextLength  int
	MaxTokens      int
	DutchStopwords []string
	FarsiStopwords []string
	TechnicalTerms []string
}

// DefaultEligibilityPolicy returns the policy with the built-in word lists
func DefaultEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{
		MaxTextLength:  25,
		MaxTokens:      3,
		DutchStopwords: dutchStopwords,
		FarsiStopwords: farsiStopwords,
		TechnicalTerms: technicalTerms,
	}
}

// SimpleWords filters the vocabulary down to entries suitable for testing.
// Pure function: same input always yields the same output.
func (p EligibilityPolicy) SimpleWords(words []domain.Word) []domain.Word {
	var simple []domain.Word
	for _, w := range words {
		if p.IsSimple(w) {
			simple = append(simple, w)
		}
	}
	return simple
}

// IsSimple reports whether a single word pair qualifies as quiz material
func (p EligibilityPolicy) IsSimple(w domain.Word) bool {
	dutch := strings.TrimSpace(w.Dutch)
	farsi := strings.TrimSpace(w.Farsi)

	if dutch == "" || farsi == "" {
		return false
	}

	// Long texts are likely sentences or complex phrases
	if utf8.RuneCountInString(dutch) > p.MaxTextLength || utf8.RuneCountInString(farsi) > p.MaxTextLength {
		return false
	}

	dutchTokens := strings.Fields(dutch)
	farsiTokens := strings.Fields(farsi)
	if len(dutchTokens) > p.MaxTokens || len(farsiTokens) > p.MaxTokens {
		return false
	}

	if strings.ContainsAny(dutch, sentencePunctuation) || strings.ContainsAny(farsi, sentencePunctuation) {
		return false
	}

	if containsToken(dutchTokens, p.DutchStopwords) || containsToken(farsiTokens, p.FarsiStopwords) {
		return false
	}

	if containsTerm(dutch, p.TechnicalTerms) || containsTerm(farsi, p.TechnicalTerms) {
		return false
	}

	return true
}

// containsToken checks whitespace-separated tokens against a closed word list
func containsToken(tokens []string, list []string) bool {
	for _, tok := range tokens {
		lowered := strings.ToLower(tok)
		for _, stop := range list {
			if lowered == stop {
				return true
			}
		}
	}
	return false
}

// containsTerm checks for substring matches, case-insensitive
func containsTerm(text string, terms []string) bool {
	lowered := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
