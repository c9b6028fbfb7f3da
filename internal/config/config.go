package config

import (
	"os"
)

// Config holds everything the app reads from the environment. The fallbacks
// are development defaults only; production must set the real values.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	JWTSecret     string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "sqlite://askstack.db"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		JWTSecret:     getEnv("JWT_SECRET", "jwt_secret_key"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
