package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Backend     BackendConfig
	Storage     StorageConfig
	Locale      string
	LogLevel    string
}

type BackendConfig struct {
	BaseURL   string
	AuthToken string
}

type StorageConfig struct {
	// Driver selects the cart storage backend: file, redis or memory
	Driver        string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("CART_STORAGE", "file")
	viper.SetDefault("CART_DATA_DIR", ".storefront")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("LOCALE", "en")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "3000"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Backend: BackendConfig{
			BaseURL:   getEnvOrViper("BACKEND_API_URL", ""),
			AuthToken: getEnvOrViper("BACKEND_API_TOKEN", ""),
		},
		Storage: StorageConfig{
			Driver:        getEnvOrViper("CART_STORAGE", "file"),
			DataDir:       getEnvOrViper("CART_DATA_DIR", ".storefront"),
			RedisAddr:     getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnvOrViper("REDIS_PASSWORD", ""),
			RedisDB:       viper.GetInt("REDIS_DB"),
		},
		Locale:   getEnvOrViper("LOCALE", "en"),
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_API_URL is required")
	}
	switch cfg.Storage.Driver {
	case "file", "redis", "memory":
	default:
		return nil, fmt.Errorf("CART_STORAGE must be one of file, redis, memory (got %q)", cfg.Storage.Driver)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
