package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file when one exists;
// otherwise the process environment is used as is
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// BaseURL returns the externally reachable base URL of this deployment,
// used to build the capability links embedded in Telegram notifications
func BaseURL() string {
	return GetEnv("APP_BASE_URL", "http://localhost:8080")
}
