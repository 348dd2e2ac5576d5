package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	REDIS_URL  string
	JWT_SECRET string

	SITE_BASE_URL string
	CORS_ORIGIN   string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	TRANSLATE_API_URL string
	TRANSLATE_API_KEY string

	GMAIL_CLIENT_ID     string
	GMAIL_CLIENT_SECRET string
	GMAIL_REFRESH_TOKEN string
	GMAIL_SENDER        string

	OPENAI_API_KEY string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	REDIS_URL = getEnv("REDIS_URL", "")
	JWT_SECRET = mustEnv("JWT_SECRET")

	SITE_BASE_URL = getEnv("SITE_BASE_URL", "https://automatizalo.co")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	TRANSLATE_API_URL = getEnv("TRANSLATE_API_URL", "https://translation.googleapis.com/language/translate/v2")
	TRANSLATE_API_KEY = getEnv("TRANSLATE_API_KEY", "")

	GMAIL_CLIENT_ID = getEnv("GMAIL_CLIENT_ID", "")
	GMAIL_CLIENT_SECRET = getEnv("GMAIL_CLIENT_SECRET", "")
	GMAIL_REFRESH_TOKEN = getEnv("GMAIL_REFRESH_TOKEN", "")
	GMAIL_SENDER = getEnv("GMAIL_SENDER", "")

	OPENAI_API_KEY = getEnv("OPENAI_API_KEY", "")
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
