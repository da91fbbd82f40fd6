package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	BotPassword   string
	OpenAIAPIKey  string
	OpenAIModel   string
	RetentionDays int
	Database      DatabaseConfig
	Quiz          QuizConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// QuizConfig holds the test-selection tuning knobs. The defaults are
// product tuning carried over from long use, not derived values.
type QuizConfig struct {
	MinEligibleWords int     // minimum simple words before a test can start
	DistractorCount  int     // wrong options per question
	MaxTextLength    int     // eligibility: max characters per side
	MaxTokens        int     // eligibility: max whitespace tokens per side
	OldestShare      float64 // selection: fraction of pool counted oldest
	NewestShare      float64 // selection: fraction of pool counted newest
	NewestWeight     float64 // selection: chance of drawing the newest stratum
	MiddleWeight     float64 // selection: chance of drawing the middle stratum
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		BotPassword:   os.Getenv("BOT_PASSWORD"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		RetentionDays: getEnvInt("RETENTION_DAYS", 365),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "farsidutch"),
			User:     getEnv("DB_USER", "farsidutch"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Quiz: QuizConfig{
			MinEligibleWords: getEnvInt("QUIZ_MIN_ELIGIBLE_WORDS", 3),
			DistractorCount:  getEnvInt("QUIZ_DISTRACTOR_COUNT", 2),
			MaxTextLength:    getEnvInt("QUIZ_MAX_TEXT_LENGTH", 25),
			MaxTokens:        getEnvInt("QUIZ_MAX_TOKENS", 3),
			OldestShare:      getEnvFloat("QUIZ_OLDEST_SHARE", 0.3),
			NewestShare:      getEnvFloat("QUIZ_NEWEST_SHARE", 0.3),
			NewestWeight:     getEnvFloat("QUIZ_NEWEST_WEIGHT", 0.4),
			MiddleWeight:     getEnvFloat("QUIZ_MIDDLE_WEIGHT", 0.3),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
