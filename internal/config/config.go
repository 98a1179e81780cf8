package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	BlobUploadURL string
	BlobAPIKey    string
	Environment   string
	LogLevel      string
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	return AppConfig{
		Port:          port,
		DatabaseURL:   mustGetEnv("DATABASE_URL"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		BlobUploadURL: mustGetEnv("BLOB_UPLOAD_URL"),
		BlobAPIKey:    os.Getenv("BLOB_API_KEY"),
		Environment:   env,
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required env: %s", key)
	}
	return v
}
