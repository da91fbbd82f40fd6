package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var optionLetters = []string{"آ", "ب", "ج", "د"}

// handleStartTest begins a fresh test session and shows the first question
func (h *Handler) handleStartTest(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := h.quizService.StartSession(userID); err != nil {
		h.logger.Error("Failed to start test session", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	return h.sendNextQuestion(c, userID)
}

// handleNextQuestion continues the current session with another question
func (h *Handler) handleNextQuestion(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	return h.sendNextQuestion(c, userID)
}

func (h *Handler) sendNextQuestion(c tele.Context, userID int64) error {
	question, err := h.quizService.BuildNextQuestion(userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientVocabulary) {
			return h.sendInsufficientVocabulary(c, userID)
		}
		h.logger.Error("Failed to build question", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	text := formatQuestion(question)
	markup := questionMarkup(question)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// sendInsufficientVocabulary tells the user exactly how many simple words
// they have and how many a test needs
func (h *Handler) sendInsufficientVocabulary(c tele.Context, userID int64) error {
	stats, err := h.vocabService.Stats(userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	text := fmt.Sprintf(
		"📊 شما %d کلمه ساده در دیکشنری دارید.\n\n"+
			"🎯 برای ساخت تست حداقل 3 کلمه ساده نیاز است.\n\n"+
			"🔤 کلمه هلندی یا فارسی بفرستید تا ترجمه و ذخیره شود (مثل: huis، boek، water).",
		stats.SimpleWords,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleAnswerSelection processes an option button press ("ans_<index>")
func (h *Handler) handleAnswerSelection(c tele.Context, data string) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	index, err := strconv.Atoi(strings.TrimPrefix(data, "ans_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "گزینه نامعتبر"})
	}

	question, err := h.quizService.CurrentQuestion(userID)
	if err != nil {
		h.logger.Error("Failed to load current question", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}
	if question == nil || index < 0 || index >= len(question.Options) {
		// Stale button from an already answered or replaced question
		return c.Respond(&tele.CallbackResponse{
			Text:      "این سوال دیگر فعال نیست. سوال جدید بگیرید.",
			ShowAlert: true,
		})
	}

	chosen := question.Options[index]

	result, err := h.quizService.SubmitAnswer(userID, chosen)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveQuestion) {
			return c.Respond(&tele.CallbackResponse{
				Text:      "این سوال دیگر فعال نیست. سوال جدید بگیرید.",
				ShowAlert: true,
			})
		}
		h.logger.Error("Failed to submit answer", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	important, err := h.vocabService.IsImportant(userID, question.WordID)
	if err != nil {
		h.logger.Warn("Failed to check importance", zap.Error(err), zap.Int64("user_id", userID))
	}

	text := formatAnswerFeedback(question, chosen, result)
	markup := feedbackMarkup(question.WordID, important)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleMarkImportant toggles the importance flag from the feedback keyboard
func (h *Handler) handleMarkImportant(c tele.Context, data string, important bool) error {
	userID := c.Sender().ID

	prefix := "imp_"
	if !important {
		prefix = "unimp_"
	}
	wordID := strings.TrimPrefix(data, prefix)

	var ok bool
	var err error
	if important {
		ok, err = h.vocabService.MarkImportant(userID, wordID)
	} else {
		ok, err = h.vocabService.UnmarkImportant(userID, wordID)
	}
	if err != nil {
		h.logger.Error("Failed to update importance", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "این کلمه دیگر در دیکشنری شما نیست."})
	}

	if important {
		return c.Respond(&tele.CallbackResponse{Text: "⭐ به کلمات مهم اضافه شد."})
	}
	return c.Respond(&tele.CallbackResponse{Text: "از کلمات مهم حذف شد."})
}

// handleEndTest closes the session and shows the final score
func (h *Handler) handleEndTest(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := h.quizService.EndSession(userID); err != nil {
		h.logger.Error("Failed to end test session", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	stats, err := h.vocabService.Stats(userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	text := fmt.Sprintf("🏁 تست تمام شد!\n\n📊 امتیاز کل شما: %d از %d", stats.Correct, stats.Answered)

	if err := c.Edit(text, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, mainMenuMarkup())
	}
	return c.Respond()
}

// handleStats shows vocabulary and score statistics
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	stats, err := h.vocabService.Stats(userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	text := fmt.Sprintf(
		"📊 آمار شما\n\n"+
			"📚 کل کلمات: %d\n"+
			"🔤 کلمات قابل تست: %d\n"+
			"✅ پاسخ درست: %d از %d",
		stats.TotalWords, stats.SimpleWords, stats.Correct, stats.Answered,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleMyWords lists the user's saved vocabulary
func (h *Handler) handleMyWords(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.vocabService.ListWords(userID)
	if err != nil {
		h.logger.Error("Failed to list words", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	return h.sendWordList(c, userID, words, "📚 کلمات شما", "هنوز کلمه‌ای در دیکشنری شما ثبت نشده.")
}

// handleImportantWords lists the words the user flagged as important
func (h *Handler) handleImportantWords(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.vocabService.ListImportant(userID)
	if err != nil {
		h.logger.Error("Failed to list important words", zap.Error(err), zap.Int64("user_id", userID))
		return h.respondError(c)
	}

	return h.sendWordList(c, userID, words, "⭐ کلمات مهم شما", "هنوز کلمه‌ای را مهم علامت نزده‌اید.")
}

// maxListedWords caps word list messages; Telegram rejects texts over 4096
// characters
const maxListedWords = 50

func (h *Handler) sendWordList(c tele.Context, userID int64, words []domain.Word, title, emptyText string) error {
	if len(words) == 0 {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: emptyText, ShowAlert: true})
		}
		return c.Send(emptyText)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n\n", title, len(words))

	start := 0
	if len(words) > maxListedWords {
		start = len(words) - maxListedWords
		fmt.Fprintf(&b, "(%d کلمه آخر)\n\n", maxListedWords)
	}
	for i, w := range words[start:] {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, w.Dutch, w.Farsi)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	if c.Callback() != nil {
		if err := c.Edit(b.String(), markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(b.String(), markup)
		}
		return c.Respond()
	}
	return c.Send(b.String(), markup)
}

func (h *Handler) respondError(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: errGenericMessage})
	}
	return c.Send(errGenericMessage)
}

// formatQuestion renders the question with lettered options
func formatQuestion(q *domain.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔤 %s\n\n", q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "%s) %s\n", optionLetters[i], opt)
	}
	return b.String()
}

// questionMarkup builds the option buttons; callback data carries the
// option index because option text can exceed Telegram's data limit
func questionMarkup(q *domain.Question) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(q.Options)+1)
	for i := range q.Options {
		btn := markup.Data(optionLetters[i], fmt.Sprintf("ans_%d", i))
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnEndTest))
	markup.Inline(rows...)
	return markup
}

// formatAnswerFeedback renders per-option markers, the explanation and the
// running score
func formatAnswerFeedback(q *domain.Question, chosen string, result *domain.AnswerResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔤 %s\n\n", q.Prompt)

	for i, opt := range q.Options {
		switch {
		case opt == chosen && result.IsCorrect:
			fmt.Fprintf(&b, "✅ %s) %s ← انتخاب شما (درست)\n", optionLetters[i], opt)
		case opt == chosen && !result.IsCorrect:
			fmt.Fprintf(&b, "❌ %s) %s ← انتخاب شما (اشتباه)\n", optionLetters[i], opt)
		case opt == result.CorrectAnswer:
			fmt.Fprintf(&b, "✅ %s) %s ← جواب درست\n", optionLetters[i], opt)
		default:
			fmt.Fprintf(&b, "⚪ %s) %s\n", optionLetters[i], opt)
		}
	}

	b.WriteString("\n")
	if result.IsCorrect {
		b.WriteString("🎉 آفرین! درست جواب دادی!\n\n")
	} else {
		b.WriteString("😔 متاسفانه اشتباه بود!\n\n")
	}

	fmt.Fprintf(&b, "💡 %s\n\n", result.Explanation)
	fmt.Fprintf(&b, "📊 امتیاز شما: %d از %d", result.Score.Correct, result.Score.Total)

	return b.String()
}

// feedbackMarkup offers importance toggling and session continuation
func feedbackMarkup(wordID string, important bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var impBtn tele.Btn
	if important {
		impBtn = markup.Data("⭐ حذف از مهم‌ها", "unimp_"+wordID)
	} else {
		impBtn = markup.Data("⭐ علامت‌گذاری مهم", "imp_"+wordID)
	}

	markup.Inline(
		markup.Row(impBtn),
		markup.Row(btnNextQuestion),
		markup.Row(btnEndTest),
	)
	return markup
}
