package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration values loaded from environment variables.
type Config struct {
	HTTPPort      string
	DatabaseURL   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	Temperature   float32
	MaxTokens     int
	HistoryLimit  int
	SystemPrompt  string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
// A missing DATABASE_URL is fatal; a missing OPENAI_API_KEY is not checked
// here and only surfaces as a runtime failure on the first model call.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file (useful for development)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Could not load .env file. Using environment variables only.", err)
		// Don't fail if .env is not present, might be in production
	}

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		log.Fatal("FATAL: DATABASE_URL environment variable is not set.")
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "3000"),
		DatabaseURL:   dbURL,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4.1-nano"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		Temperature:   getEnvFloat32("OPENAI_TEMPERATURE", 0.7),
		MaxTokens:     getEnvInt("OPENAI_MAX_TOKENS", 150),
		HistoryLimit:  getEnvInt("HISTORY_LIMIT", 20),
		SystemPrompt:  getEnv("SYSTEM_PROMPT", defaultSystemPrompt),
	}

	log.Printf("Loaded config: Port=%s, DB_URL=***, Model=%s, HistoryLimit=%d", cfg.HTTPPort, cfg.OpenAIModel, cfg.HistoryLimit)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s', using default %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

func getEnvFloat32(key string, fallback float32) float32 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s', using default %g. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return float32(value)
}
