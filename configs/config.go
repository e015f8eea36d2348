package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDriver    string
	DatabaseURL string
	LogLevel    string
	TipCron     string
}

// Load reads .env when present and falls back to the process environment.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: getEnv("DATABASE_URL", "cyber_evolve.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		TipCron:     lookupEnv("TIP_CRON", "0 0 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// lookupEnv keeps an explicitly empty value, so TIP_CRON= disables the job.
func lookupEnv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}
