package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment (.env respected).
type Config struct {
	Addr       string // listen address, e.g. ":8080"
	DBPath     string // sqlite file holding all persisted blobs
	LLMBaseURL string // completion endpoint, override for testing
	LLMModel   string // completion model identifier
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		Addr:       getenv("ADDR", ":8080"),
		DBPath:     getenv("DB_PATH", "macrotracker.db"),
		LLMBaseURL: getenv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:   getenv("LLM_MODEL", "gpt-4o-mini"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
