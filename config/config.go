package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env                string
	Port               string
	TokenSecret        string
	TokenExpiryMin     int
	MaxLoginAttempts   int
	RateLimitWindowMin int
	LockoutMin         int
	LatencyPercent     int
	StoragePath        string
	DBURL              string
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		TokenSecret:        getEnv("TOKEN_SECRET", "demo-secret-not-for-production"),
		TokenExpiryMin:     getEnvAsInt("TOKEN_EXPIRY", 60),
		MaxLoginAttempts:   getEnvAsInt("MAX_LOGIN_ATTEMPTS", 5),
		RateLimitWindowMin: getEnvAsInt("RATE_LIMIT_WINDOW", 15),
		LockoutMin:         getEnvAsInt("LOCKOUT_DURATION", 15),
		LatencyPercent:     getEnvAsInt("SIM_LATENCY_PERCENT", 100),
		StoragePath:        getEnv("STORAGE_PATH", "data/authstore.json"),
		DBURL:              getEnv("DB_URL", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
