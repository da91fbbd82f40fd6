package service

import "strings"

// InputKind classifies what the user typed into the translation flow
type InputKind string

const (
	// InputDictionary is a single token: look it up as a word
	InputDictionary InputKind = "dictionary"
	// InputTranslation is multi-word text: translate it as a whole
	InputTranslation InputKind = "translation"
	// InputInvalid is empty or whitespace-only text
	InputInvalid InputKind = "invalid"
)

// AnalyzeInput routes text to dictionary or translation mode.
// The rule is deliberately simple: no spaces means a single word.
func AnalyzeInput(text string) InputKind {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return InputInvalid
	}
	if strings.Contains(trimmed, " ") {
		return InputTranslation
	}
	return InputDictionary
}

// ContainsFarsi reports whether the text contains Arabic-script characters
func ContainsFarsi(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
