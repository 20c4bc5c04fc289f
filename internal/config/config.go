package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port                 int
	GinMode              string
	SentryDSN            string
	MaxPasswordLength    int
	MinRecommendedLength int
}

func Load() *Config {
	return &Config{
		Port:                 envInt("PORT", 8080),
		GinMode:              envString("GIN_MODE", "release"),
		SentryDSN:            os.Getenv("SENTRY_DSN"),
		MaxPasswordLength:    envInt("MAX_PASSWORD_LENGTH", 256),
		MinRecommendedLength: envInt("MIN_RECOMMENDED_LENGTH", 10),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
