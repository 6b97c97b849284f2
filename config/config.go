package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingMongoURI is returned by Load when MONGODB_URI is not set.
// The application cannot serve any data-backed request without it, so
// callers should treat this as fatal.
var ErrMissingMongoURI = errors.New("MONGODB_URI environment variable is required")

// Config holds all configuration for the application
type Config struct {
	MongoURI    string
	MongoDBName string
	Environment string
	Port        string

	AllowedOrigins []string

	JWTSecret   string
	TokenExpiry time.Duration

	AdminEmail        string
	AdminPasswordHash string

	EmailProvider string
	EmailFrom     string
	EmailFromName string
	SESRegion     string
	SESAccessKey  string
	SESSecretKey  string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file first when not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually doesn't exist and we rely on
	// system environment variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:       env,
		MongoURI:          os.Getenv("MONGODB_URI"),
		MongoDBName:       os.Getenv("MONGODB_DATABASE"),
		Port:              os.Getenv("PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		EmailProvider:     os.Getenv("EMAIL_PROVIDER"),
		EmailFrom:         os.Getenv("EMAIL_FROM"),
		EmailFromName:     os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:         os.Getenv("SES_REGION"),
		SESAccessKey:      os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretKey:      os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	// The connection string has no sensible default: without it the
	// process must not attempt to connect at all.
	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}

	if cfg.MongoDBName == "" {
		cfg.MongoDBName = "eventbook"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.TokenExpiry == 0 {
		cfg.TokenExpiry = 24 * time.Hour
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	return cfg, nil
}
