package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DictionaryEntry is the parsed LLM response for a single-word lookup
type DictionaryEntry struct {
	Word        string           `json:"word"`
	Translation string           `json:"translation"`
	Synonyms    []string         `json:"synonyms"`
	Antonyms    []string         `json:"antonyms"`
	Examples    []domain.Example `json:"examples"`
}

// Translator talks to the OpenAI API for translation and dictionary lookups.
// The prompts and parsing here are glue around an external black box; no
// quiz logic depends on this service.
type Translator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewTranslator creates a new translator
func NewTranslator(apiKey, model string, logger *zap.Logger) *Translator {
	return &Translator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// Lookup returns a dictionary entry for a single Dutch or Farsi word
func (t *Translator) Lookup(ctx context.Context, word string) (*DictionaryEntry, error) {
	var prompt string
	if ContainsFarsi(word) {
		prompt = fmt.Sprintf(`You are a Persian-Dutch dictionary. For the Persian word "%s", respond with JSON:
{"word": "%s", "translation": "Dutch translation", "synonyms": ["..."], "antonyms": ["..."], "examples": [{"dutch": "...", "farsi": "..."}]}
Provide 2-3 examples. Use empty arrays when not applicable. Respond ONLY with valid JSON.`, word, word)
	} else {
		prompt = fmt.Sprintf(`You are a Dutch-Persian dictionary. For the Dutch word "%s", respond with JSON:
{"word": "%s", "translation": "Farsi translation", "synonyms": ["..."], "antonyms": ["..."], "examples": [{"dutch": "...", "farsi": "..."}]}
Provide 2-3 examples. Use empty arrays when not applicable. Respond ONLY with valid JSON.`, word, word)
	}

	content, err := t.complete(ctx, "You are a professional Dutch-Farsi dictionary. Always respond with valid JSON only.", prompt)
	if err != nil {
		return nil, err
	}

	entry, err := parseDictionaryResponse(content)
	if err != nil {
		t.logger.Warn("Failed to parse dictionary response",
			zap.String("word", word),
			zap.Error(err),
		)
		return nil, err
	}

	return entry, nil
}

// Translate returns a plain translation of Dutch or Farsi text
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	var prompt string
	if ContainsFarsi(text) {
		prompt = fmt.Sprintf("Translate the following Persian text to Dutch. Respond with the translation only:\n\n%s", text)
	} else {
		prompt = fmt.Sprintf("Translate the following Dutch text to Persian (Farsi). Respond with the translation only:\n\n%s", text)
	}

	return t.complete(ctx, "You are a professional Dutch-Farsi translator.", prompt)
}

func (t *Translator) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseDictionaryResponse unmarshals the LLM reply, tolerating markdown
// code fences around the JSON
func parseDictionaryResponse(content string) (*DictionaryEntry, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var entry DictionaryEntry
	if err := json.Unmarshal([]byte(content), &entry); err != nil {
		return nil, fmt.Errorf("unmarshal dictionary response: %w", err)
	}
	if entry.Word == "" || entry.Translation == "" {
		return nil, fmt.Errorf("dictionary response missing word or translation")
	}

	return &entry, nil
}
