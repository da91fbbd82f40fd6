package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
	"github.com/hameda9795/farsi-dutch-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles free text: password entry for new users, then the
// translation / dictionary flow
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errGenericMessage)
	}

	if !authorized {
		if h.authService.CheckPassword(text) {
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send(errGenericMessage)
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			return c.Send("✅ خوش آمدید!\n\n"+mainMenuText, mainMenuMarkup())
		}

		return c.Send("رمز اشتباه است. دوباره تلاش کنید:")
	}

	return h.handleTranslationInput(c, userID, text)
}

// handleTranslationInput routes text to dictionary or translation mode and
// saves looked-up words to the user's vocabulary
func (h *Handler) handleTranslationInput(c tele.Context, userID int64, text string) error {
	if h.translator == nil {
		return c.Send("سرویس ترجمه در حال حاضر در دسترس نیست.")
	}

	switch service.AnalyzeInput(text) {
	case service.InputDictionary:
		return h.handleDictionaryLookup(c, userID, text)
	case service.InputTranslation:
		return h.handleFullTranslation(c, text)
	default:
		return c.Send("لطفاً یک کلمه یا جمله بفرستید.")
	}
}

const llmTimeout = 45 * time.Second

func (h *Handler) handleDictionaryLookup(c tele.Context, userID int64, word string) error {
	ctx, cancel := context.WithTimeout(context.Background(), llmTimeout)
	defer cancel()

	entry, err := h.translator.Lookup(ctx, word)
	if err != nil {
		h.logger.Error("Dictionary lookup failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)
		return c.Send("ترجمه کلمه ممکن نشد. لطفاً دوباره تلاش کنید.")
	}

	// Persist the pair with the Dutch text on the Dutch side regardless of
	// the lookup direction
	dutch, farsi := entry.Word, entry.Translation
	if service.ContainsFarsi(entry.Word) {
		dutch, farsi = entry.Translation, entry.Word
	}

	enrichment := domain.Enrichment{
		Synonyms: entry.Synonyms,
		Antonyms: entry.Antonyms,
		Examples: entry.Examples,
	}
	saved, err := h.vocabService.UpsertWord(userID, dutch, farsi, enrichment)
	if err != nil {
		h.logger.Error("Failed to save looked-up word",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		// The lookup itself succeeded, still show it
		return c.Send(formatDictionaryEntry(entry, false))
	}

	h.logger.Info("Dictionary word saved",
		zap.Int64("user_id", userID),
		zap.String("dutch", saved.Dutch),
	)

	return c.Send(formatDictionaryEntry(entry, true))
}

func (h *Handler) handleFullTranslation(c tele.Context, text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), llmTimeout)
	defer cancel()

	translation, err := h.translator.Translate(ctx, text)
	if err != nil {
		h.logger.Error("Translation failed", zap.Error(err))
		return c.Send("ترجمه ممکن نشد. لطفاً دوباره تلاش کنید.")
	}

	return c.Send(fmt.Sprintf("🌐 ترجمه:\n\n%s", translation))
}

func formatDictionaryEntry(entry *service.DictionaryEntry, saved bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 %s\n🔄 %s\n", entry.Word, entry.Translation)

	if len(entry.Synonyms) > 0 {
		fmt.Fprintf(&b, "\n🟢 مترادف: %s\n", strings.Join(entry.Synonyms, "، "))
	}
	if len(entry.Antonyms) > 0 {
		fmt.Fprintf(&b, "🔴 متضاد: %s\n", strings.Join(entry.Antonyms, "، "))
	}
	if len(entry.Examples) > 0 {
		b.WriteString("\n✏️ مثال:\n")
		for _, ex := range entry.Examples {
			fmt.Fprintf(&b, "• %s\n  %s\n", ex.Dutch, ex.Farsi)
		}
	}

	if saved {
		b.WriteString("\n💾 به دیکشنری شما اضافه شد.")
	}

	return b.String()
}
