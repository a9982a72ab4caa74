package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	AuthEnabled bool

	// Threshold settings for activity detection. The detection
	// threshold feeds the active-minute cutoff of the metrics
	// calculator; the classifier rule table is fixed.
	ActivityDetectionThreshold   float64
	MovementConsistencyThreshold float64

	RateLimitPerMinute int
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", ":8080"),
		DBPath:      getEnv("DB_PATH", "./data/activity/recognitions.db"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AuthEnabled: getEnvBool("AUTH_ENABLED", false),

		ActivityDetectionThreshold:   getEnvFloat("ACTIVITY_DETECTION_THRESHOLD", 0.3),
		MovementConsistencyThreshold: getEnvFloat("MOVEMENT_CONSISTENCY_THRESHOLD", 0.5),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
