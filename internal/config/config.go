package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StorePath string
	LogLevel  string
}

// Load reads settings from the environment, honoring a .env file in the
// working directory when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StorePath: getEnv("PULSE_DB", ""),
		LogLevel:  getEnv("PULSE_LOG", "warn"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
