package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hameda9795/farsi-dutch-bot/internal/config"
	"github.com/hameda9795/farsi-dutch-bot/internal/handler"
	"github.com/hameda9795/farsi-dutch-bot/internal/middleware"
	"github.com/hameda9795/farsi-dutch-bot/internal/repository/postgres"
	"github.com/hameda9795/farsi-dutch-bot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Farsi-Dutch Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	wordRepo := postgres.NewWordRepo(db)
	stateRepo := postgres.NewQuizStateRepo(db)

	// Quiz tuning from configuration
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	eligibility := service.DefaultEligibilityPolicy()
	eligibility.MaxTextLength = cfg.Quiz.MaxTextLength
	eligibility.MaxTokens = cfg.Quiz.MaxTokens

	selection := service.DefaultSelectionPolicy()
	selection.OldestShare = cfg.Quiz.OldestShare
	selection.NewestShare = cfg.Quiz.NewestShare
	selection.NewestWeight = cfg.Quiz.NewestWeight
	selection.MiddleWeight = cfg.Quiz.MiddleWeight

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	vocabService := service.NewVocabularyService(wordRepo, userRepo, eligibility, logger)
	sessions := service.NewSessionManager(stateRepo)
	selector := service.NewSelector(selection, rng)
	quizService := service.NewQuizService(
		wordRepo,
		userRepo,
		stateRepo,
		sessions,
		selector,
		eligibility,
		cfg.Quiz.MinEligibleWords,
		cfg.Quiz.DistractorCount,
		rng,
		logger,
	)
	maintenanceService := service.NewMaintenanceService(wordRepo, cfg.RetentionDays, logger)

	var translator *service.Translator
	if cfg.OpenAIAPIKey != "" {
		translator = service.NewTranslator(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
		logger.Info("Translator initialized", zap.String("model", cfg.OpenAIModel))
	} else {
		logger.Warn("OPENAI_API_KEY not set, translation features disabled")
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, authService, vocabService, quizService, translator, logger)
	h.RegisterHandlers(middleware.AuthMiddleware(authService, logger))

	logger.Info("Handlers registered")

	// Start cleanup job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCleanupJob(ctx, maintenanceService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case err == migrate.ErrNoChange:
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob runs periodic cleanup of old data
func runCleanupJob(ctx context.Context, maintenanceService *service.MaintenanceService, logger *zap.Logger) {
	// Run cleanup once at startup
	if err := maintenanceService.CleanupOldData(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	// Then run every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := maintenanceService.CleanupOldData(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
