package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	RedisAddr   string

	// PaymentsEnabled selects the lifecycle variant: when false an
	// accepted request is terminal, when true it moves to
	// accepted_unpaid and a Transaction row is created alongside.
	PaymentsEnabled bool

	// ServiceCost is the fixed amount stamped on a request when a
	// provider accepts it in the payment variant.
	ServiceCost float64
}

var cfg *Config

// Load reads configuration from environment variables, consulting a
// .env file first when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg = &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "your_secret_key"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		PaymentsEnabled: getEnvBool("PAYMENTS_ENABLED", false),
		ServiceCost:     getEnvFloat("SERVICE_COST", 499),
	}
	return cfg
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default", key, value)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default", key, value)
		return defaultValue
	}
	return parsed
}
