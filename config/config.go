package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BaseURL        string
	AllowedOrigins string

	DatabaseURL string

	JWTSecret string
	JWTExpiry time.Duration

	GeminiAPIKey string
	EditTimeout  time.Duration

	StaticDir string
}

// Load reads configuration from the environment. A .env file is honored in
// local development; deployed environments supply variables directly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		Port:           envString("PORT", "8000"),
		BaseURL:        envString("BASE_URL", "http://localhost:8000"),
		AllowedOrigins: envString("ALLOWED_ORIGINS", ""),

		DatabaseURL: envRequired("DATABASE_URL"),

		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		GeminiAPIKey: envString("GEMINI_API_KEY", ""),
		EditTimeout:  envDuration("EDIT_TIMEOUT", 60*time.Second),

		StaticDir: envString("STATIC_DIR", "static"),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}
