package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionaryResponse(t *testing.T) {
	content := `{"word": "huis", "translation": "خانه", "synonyms": ["woning"], "antonyms": [], "examples": [{"dutch": "Het huis is groot.", "farsi": "خانه بزرگ است."}]}`

	entry, err := parseDictionaryResponse(content)

	require.NoError(t, err)
	assert.Equal(t, "huis", entry.Word)
	assert.Equal(t, "خانه", entry.Translation)
	assert.Equal(t, []string{"woning"}, entry.Synonyms)
	assert.Empty(t, entry.Antonyms)
	require.Len(t, entry.Examples, 1)
	assert.Equal(t, "Het huis is groot.", entry.Examples[0].Dutch)
}

func TestParseDictionaryResponse_MarkdownFences(t *testing.T) {
	content := "```json\n{\"word\": \"boek\", \"translation\": \"کتاب\"}\n```"

	entry, err := parseDictionaryResponse(content)

	require.NoError(t, err)
	assert.Equal(t, "boek", entry.Word)
	assert.Equal(t, "کتاب", entry.Translation)
}

func TestParseDictionaryResponse_PlainFences(t *testing.T) {
	content := "```\n{\"word\": \"water\", \"translation\": \"آب\"}\n```"

	entry, err := parseDictionaryResponse(content)

	require.NoError(t, err)
	assert.Equal(t, "water", entry.Word)
}

func TestParseDictionaryResponse_InvalidJSON(t *testing.T) {
	entry, err := parseDictionaryResponse("sorry, I cannot help with that")

	assert.Error(t, err)
	assert.Nil(t, entry)
}

func TestParseDictionaryResponse_MissingTranslation(t *testing.T) {
	entry, err := parseDictionaryResponse(`{"word": "huis", "translation": ""}`)

	assert.Error(t, err)
	assert.Nil(t, entry)
}
