package handler

import (
	"strings"
	"testing"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
	"github.com/hameda9795/farsi-dutch-bot/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestion() *domain.Question {
	return &domain.Question{
		ID:            "q-1",
		Kind:          domain.KindDutchToFarsi,
		WordID:        "id-1",
		Prompt:        "معنی کلمه «huis» چیست؟",
		CorrectAnswer: "خانه",
		Options:       []string{"کتاب", "خانه", "آب"},
		Explanation:   "کلمه «huis» به معنی «خانه» است.",
	}
}

func TestFormatQuestion(t *testing.T) {
	text := formatQuestion(testQuestion())

	assert.Contains(t, text, "معنی کلمه «huis» چیست؟")
	assert.Contains(t, text, "آ) کتاب")
	assert.Contains(t, text, "ب) خانه")
	assert.Contains(t, text, "ج) آب")
}

func TestQuestionMarkup(t *testing.T) {
	markup := questionMarkup(testQuestion())

	// One row per option plus the end-test row
	require.Len(t, markup.InlineKeyboard, 4)

	assert.Equal(t, "آ", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "ans_0", markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "ans_1", markup.InlineKeyboard[1][0].Unique)
	assert.Equal(t, "ans_2", markup.InlineKeyboard[2][0].Unique)
	assert.Equal(t, btnEndTest.Text, markup.InlineKeyboard[3][0].Text)
}

func TestFormatAnswerFeedback_Correct(t *testing.T) {
	q := testQuestion()
	result := &domain.AnswerResult{
		IsCorrect:     true,
		CorrectAnswer: "خانه",
		Explanation:   q.Explanation,
		Score:         domain.Score{Correct: 3, Total: 5},
	}

	text := formatAnswerFeedback(q, "خانه", result)

	assert.Contains(t, text, "✅ ب) خانه ← انتخاب شما (درست)")
	assert.Contains(t, text, "⚪ آ) کتاب")
	assert.Contains(t, text, "⚪ ج) آب")
	assert.Contains(t, text, "آفرین! درست جواب دادی!")
	assert.Contains(t, text, "کلمه «huis» به معنی «خانه» است.")
	assert.Contains(t, text, "امتیاز شما: 3 از 5")
}

func TestFormatAnswerFeedback_Wrong(t *testing.T) {
	q := testQuestion()
	result := &domain.AnswerResult{
		IsCorrect:     false,
		CorrectAnswer: "خانه",
		Explanation:   q.Explanation,
		Score:         domain.Score{Correct: 3, Total: 6},
	}

	text := formatAnswerFeedback(q, "کتاب", result)

	assert.Contains(t, text, "❌ آ) کتاب ← انتخاب شما (اشتباه)")
	assert.Contains(t, text, "✅ ب) خانه ← جواب درست")
	assert.Contains(t, text, "⚪ ج) آب")
	assert.Contains(t, text, "متاسفانه اشتباه بود!")
	assert.Contains(t, text, "امتیاز شما: 3 از 6")
}

func TestFeedbackMarkup(t *testing.T) {
	notImportant := feedbackMarkup("id-1", false)
	require.NotEmpty(t, notImportant.InlineKeyboard)
	assert.Equal(t, "imp_id-1", notImportant.InlineKeyboard[0][0].Unique)

	important := feedbackMarkup("id-1", true)
	assert.Equal(t, "unimp_id-1", important.InlineKeyboard[0][0].Unique)

	// Continuation buttons follow the importance toggle
	assert.Equal(t, btnNextQuestion.Text, notImportant.InlineKeyboard[1][0].Text)
	assert.Equal(t, btnEndTest.Text, notImportant.InlineKeyboard[2][0].Text)
}

func TestFormatDictionaryEntry(t *testing.T) {
	entry := &service.DictionaryEntry{
		Word:        "huis",
		Translation: "خانه",
		Synonyms:    []string{"woning", "pand"},
		Antonyms:    []string{"buiten"},
		Examples:    []domain.Example{{Dutch: "Het huis is groot.", Farsi: "خانه بزرگ است."}},
	}

	text := formatDictionaryEntry(entry, true)

	assert.Contains(t, text, "📖 huis")
	assert.Contains(t, text, "🔄 خانه")
	assert.Contains(t, text, "مترادف: woning، pand")
	assert.Contains(t, text, "متضاد:")
	assert.Contains(t, text, "Het huis is groot.")
	assert.Contains(t, text, "به دیکشنری شما اضافه شد.")

	unsaved := formatDictionaryEntry(entry, false)
	assert.False(t, strings.Contains(unsaved, "اضافه شد"))
}
