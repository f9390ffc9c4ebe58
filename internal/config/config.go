package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL         string
	LLMModelName       string
	LLMAPIKey          string
	EmbeddingBaseURL   string
	EmbeddingModelName string
	WhisperBaseURL     string
	WhisperModelName   string
	QdrantURL          string
	QdrantAPIKey       string
	QdrantVectorSize   int
	DBPath             string
	LectureDir         string
	PDFDir             string
	WatchDir           string
	WatchOwnerID       int64
	APIPort            string
	APITokens          string
	LogLevel           slog.Level
	LogFormat          string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:         getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModelName:       getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMAPIKey:          getEnv("LLM_API_KEY", "dummy-key"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "granite-embedding-278m-multilingual"),
		WhisperBaseURL:     getEnv("WHISPER_BASE_URL", "http://localhost:8082"),
		WhisperModelName:   getEnv("WHISPER_MODEL_NAME", "whisper-1"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantAPIKey:       getEnv("QDRANT_API_KEY", ""),
		DBPath:             getEnv("DB_PATH", "./data/lecturemind.db"),
		LectureDir:         getEnv("LECTURE_DIR", "./data/lectures"),
		PDFDir:             getEnv("PDF_DIR", "./data/pdfs"),
		WatchDir:           getEnv("WATCH_DIR", ""),
		APIPort:            getEnv("API_PORT", "9000"),
		APITokens:          getEnv("API_TOKENS", ""),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	// The drop-dir watcher ingests on behalf of a fixed user.
	ownerStr := getEnv("WATCH_OWNER_ID", "1")
	ownerID, err := strconv.ParseInt(ownerStr, 10, 64)
	if err != nil || ownerID <= 0 {
		return nil, fmt.Errorf("WATCH_OWNER_ID must be a positive integer: got %q", ownerStr)
	}
	cfg.WatchOwnerID = ownerID

	// Parse QDRANT_VECTOR_SIZE
	// Note: This must match the output vector size of the embeddings model.
	// If the vector size changes, existing lecture collections must be recreated.
	vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
	if vectorSizeStr == "" {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required")
	}
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	cfg.QdrantVectorSize = vectorSize

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Create data directories if they don't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.LectureDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lecture directory: %w", err)
	}
	if err := os.MkdirAll(cfg.PDFDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create pdf directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel maps a level name to a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
