package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	DBPath           string
	ListenAddr       string
	AdminTokenSecret string
	BusinessName     string
	LogLevel         log.Lvl
}

// Load reads .env when present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded, using the environment only: %v", err)
	}

	return &Config{
		DBPath:           getEnv("DB_PATH", "./barbershop.db"),
		ListenAddr:       getEnv("LISTEN_ADDR", "127.0.0.1:6060"),
		AdminTokenSecret: os.Getenv("ADMIN_TOKEN_SECRET"),
		BusinessName:     getEnv("BUSINESS_NAME", "Almog Asaf Barbershop"),
		LogLevel:         parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
