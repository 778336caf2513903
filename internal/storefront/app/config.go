package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ShopAPIBaseURL string // Required: base URL of the shop backend API

	PagesDir     string // Optional: directory holding the static page tree (default: ./pages)
	MountPrefix  string // Optional: prefix when hosted below the domain root (e.g. /shop)
	DatabaseFile string // Optional: path to SQLite session database (default: ./storefront.db)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired credential sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		ShopAPIBaseURL:       getEnvOrDefault("SHOP_API_BASE_URL", "http://localhost:5000"),
		PagesDir:             getEnvOrDefault("STOREFRONT_PAGES_DIR", "pages"),
		MountPrefix:          os.Getenv("STOREFRONT_MOUNT_PREFIX"),
		DatabaseFile:         getEnvOrDefault("STOREFRONT_DATABASE_FILE", "storefront.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
