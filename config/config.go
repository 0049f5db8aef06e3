package config

import (
	"os"

	"github.com/spf13/cast"
)

// Config carries the handful of knobs the POS reads from the environment.
// Every field has a default so the binary runs with an empty .env.
type Config struct {
	Port         string
	DataFile     string
	GinMode      string
	RateLimit    int // requests per RateInterval per IP
	RateInterval int // seconds
	IDNode       int64
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DataFile:     getEnv("POS_DATA_FILE", "pos.db"),
		GinMode:      getEnv("GIN_MODE", ""),
		RateLimit:    50,
		RateInterval: 1,
		IDNode:       1,
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		cfg.RateLimit = cast.ToInt(v)
	}
	if v := os.Getenv("RATE_INTERVAL"); v != "" {
		cfg.RateInterval = cast.ToInt(v)
	}
	if v := os.Getenv("POS_ID_NODE"); v != "" {
		cfg.IDNode = cast.ToInt64(v)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
