package config

import (
	"os"
	"strconv"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// MongoConfig holds database configuration.
type MongoConfig struct {
	URI      string
	Database string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// UploadConfig holds media upload configuration.
type UploadConfig struct {
	Dir       string
	MaxSizeMB int64
}

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Log    LogConfig
	Upload UploadConfig
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3003"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "real_estate"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			MaxSizeMB: getEnvAsInt64("UPLOAD_MAX_SIZE_MB", 50),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
