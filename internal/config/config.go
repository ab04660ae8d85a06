package config

import (
	"os"
	"strconv"
)

// DefaultAdminPassword is the password the bootstrap seeds the "admin"
// account with when ADMIN_PASSWORD is not set. Change it in any real
// deployment.
const DefaultAdminPassword = "123456"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	DBPath        string
	SessionSecret string
	AdminPassword string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "database.db"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me"),
		AdminPassword: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
