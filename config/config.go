package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	APP_URL     string
	SESSION_DIR string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	MINIO_ENDPOINT   string
	MINIO_ACCESS_KEY string
	MINIO_SECRET_KEY string
	MINIO_BUCKET     string
	MINIO_PUBLIC_URL string
	MINIO_USE_SSL    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")
	SESSION_DIR = getEnv("SESSION_DIR", "./data/sessions")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	MINIO_ENDPOINT = getEnv("MINIO_ENDPOINT", "")
	MINIO_ACCESS_KEY = getEnv("MINIO_ACCESS_KEY", "")
	MINIO_SECRET_KEY = getEnv("MINIO_SECRET_KEY", "")
	MINIO_BUCKET = getEnv("MINIO_BUCKET", "artworks")
	MINIO_PUBLIC_URL = getEnv("MINIO_PUBLIC_URL", "")
	MINIO_USE_SSL = getEnv("MINIO_USE_SSL", "false")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
