package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// CORS
	AllowedOrigins []string
	// Redis (optional, the import rate limiter falls back to in-memory)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	ImportRateLimit  int
	ImportRateWindow time.Duration
}

func LoadConfig() (*Config, error) {
	// Effective locally only, ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBUrl:            getEnv("DATABASE_URL", ""),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "")),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		ImportRateLimit:  getEnvInt("IMPORT_RATE_LIMIT", 10),
		ImportRateWindow: time.Duration(getEnvInt("IMPORT_RATE_WINDOW_SECONDS", 60)) * time.Second,
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}
