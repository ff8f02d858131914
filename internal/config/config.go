package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads configuration from the environment, after loading a .env
// file if one is present. Everything has a development default except
// the JWT secret: a signing key must be provided explicitly, there is
// no fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "linkbio"),
		DBPassword: getEnv("DB_PASSWORD", "linkbio_dev_password"),
		DBName:     getEnv("DB_NAME", "linkbio"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
