package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	RateLimit   RateLimitConfig
	Tax         TaxConfig
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// TaxConfig holds tax engine configuration
type TaxConfig struct {
	// Optional YAML file overriding the built-in rate table.
	RatesFile string

	// Fallback surtax rates for unmatched geography, percentage points.
	DefaultRegionalRate  float64
	DefaultMunicipalRate float64
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8001")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RATE_LIMIT_RPS", 100.0)
	viper.SetDefault("RATE_LIMIT_BURST", 200)
	viper.SetDefault("TAX_RATES_FILE", "")
	viper.SetDefault("TAX_DEFAULT_REGIONAL_RATE", 2.3)
	viper.SetDefault("TAX_DEFAULT_MUNICIPAL_RATE", 0.6)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Tax: TaxConfig{
			RatesFile:            viper.GetString("TAX_RATES_FILE"),
			DefaultRegionalRate:  viper.GetFloat64("TAX_DEFAULT_REGIONAL_RATE"),
			DefaultMunicipalRate: viper.GetFloat64("TAX_DEFAULT_MUNICIPAL_RATE"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
