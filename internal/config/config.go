package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	OllamaBaseURL string
	OllamaModel   string
	LLMTimeout    time.Duration
}

type RetrievalConfig struct {
	Timeout      time.Duration
	MaxSources   int
	MaxPageChars int
	MinPageChars int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Ai: AIConfig{
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.2:1b"),
			LLMTimeout:    getEnvAsDuration("LLM_TIMEOUT_SECONDS", 120*time.Second),
		},
		Retrieval: RetrievalConfig{
			Timeout:      getEnvAsDuration("SCRAPE_TIMEOUT_SECONDS", 12*time.Second),
			MaxSources:   getEnvAsInt("RETRIEVAL_MAX_SOURCES", 2),
			MaxPageChars: getEnvAsInt("RETRIEVAL_MAX_PAGE_CHARS", 1800),
			MinPageChars: getEnvAsInt("RETRIEVAL_MIN_PAGE_CHARS", 250),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil && value > 0 {
		return time.Duration(value) * time.Second
	}
	return fallback
}
