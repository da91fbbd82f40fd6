package handler

import (
	"sync"

	"github.com/hameda9795/farsi-dutch-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	vocabService *service.VocabularyService
	quizService  *service.QuizService
	translator   *service.Translator
	logger       *zap.Logger

	// Per-user locks serialize quiz read-modify-write sequences so two rapid
	// taps cannot lose an update
	userLocks map[int64]*sync.Mutex
	locksMux  sync.Mutex
}

// NewHandler creates a new handler instance. translator may be nil when no
// API key is configured; the translation flow then reports the feature as
// unavailable.
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	vocabService *service.VocabularyService,
	quizService *service.QuizService,
	translator *service.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		vocabService: vocabService,
		quizService:  quizService,
		translator:   translator,
		logger:       logger,
		userLocks:    make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers. authGuard protects every
// endpoint except /start and free text, which run the password flow.
func (h *Handler) RegisterHandlers(authGuard tele.MiddlewareFunc) {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/test", h.handleStartTest, authGuard)
	h.bot.Handle("/stats", h.handleStats, authGuard)
	h.bot.Handle("/words", h.handleMyWords, authGuard)
	h.bot.Handle("/important", h.handleImportantWords, authGuard)

	// Text messages (password entry, then translation / dictionary flow)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnStartTest, h.handleStartTest, authGuard)
	h.bot.Handle(&btnNextQuestion, h.handleNextQuestion, authGuard)
	h.bot.Handle(&btnEndTest, h.handleEndTest, authGuard)
	h.bot.Handle(&btnStats, h.handleStats, authGuard)
	h.bot.Handle(&btnMyWords, h.handleMyWords, authGuard)
	h.bot.Handle(&btnImportant, h.handleImportantWords, authGuard)
	h.bot.Handle(&btnMainMenu, h.handleStart, authGuard)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback, authGuard)
}

// lockUser returns the mutex serializing this user's quiz operations
func (h *Handler) lockUser(userID int64) *sync.Mutex {
	h.locksMux.Lock()
	defer h.locksMux.Unlock()

	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	return lock
}

// Inline keyboard buttons
var (
	btnStartTest = tele.Btn{
		Unique: "start_test",
		Text:   "📝 تست واژگان",
	}
	btnNextQuestion = tele.Btn{
		Unique: "next_question",
		Text:   "▶️ سوال بعدی",
	}
	btnEndTest = tele.Btn{
		Unique: "end_test",
		Text:   "🏁 پایان تست",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 آمار من",
	}
	btnMyWords = tele.Btn{
		Unique: "my_words",
		Text:   "📚 کلمات من",
	}
	btnImportant = tele.Btn{
		Unique: "important_words",
		Text:   "⭐ کلمات مهم",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 منوی اصلی",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStartTest),
		menu.Row(btnMyWords, btnImportant),
		menu.Row(btnStats),
	)
	return menu
}

const errGenericMessage = "خطایی پیش آمد. لطفاً دوباره تلاش کنید."
