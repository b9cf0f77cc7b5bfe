package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup. A missing .env is fine in deployed
// environments where the variables are set directly.
type Config struct {
	Port        string
	MongoURL    string
	MongoDB     string
	PostgresURL string
	RedisURL    string

	AIProvider  string // "openai", "gemini" or "" for the local fallback only
	OpenAIKey   string
	GeminiKey   string
	GeminiModel string

	JWTSecret string

	DraftTTL time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "tourmuse"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		AIProvider:  os.Getenv("AI_PROVIDER"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		DraftTTL: getDurationEnv("DRAFT_TTL_MINUTES", 30) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
