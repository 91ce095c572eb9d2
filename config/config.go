package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	EncoderBin     string
	DecoderBin     string
	DefaultQuality int
	LogLevel       string
}

func Load() (*Config, error) {
	defaultQuality, err := strconv.Atoi(getEnv("DEFAULT_QUALITY", "85"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_QUALITY: %w", err)
	}
	if defaultQuality < 1 || defaultQuality > 100 {
		return nil, fmt.Errorf("DEFAULT_QUALITY must be in [1,100], got %d", defaultQuality)
	}

	return &Config{
		EncoderBin:     getEnv("JXL_ENCODER", "cjxl"),
		DecoderBin:     getEnv("JXL_DECODER", "djxl"),
		DefaultQuality: defaultQuality,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
