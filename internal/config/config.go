package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabasePath    string
	Port            string
	Environment     string
	LogLevel        string
	AllowedOrigins  string
	SessionDuration time.Duration

	MailgunAPIKey      string
	MailgunDomain      string
	MailgunSenderEmail string
	MailgunSenderName  string

	AIBaseURL string
	AIAPIKey  string
	AIModel   string
}

func Load() *Config {
	cfg := &Config{
		DatabasePath:    getEnv("DATABASE_PATH", "styleai.db"),
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		SessionDuration: getEnvDuration("SESSION_DURATION_HOURS", 24*7),

		MailgunAPIKey:      getEnv("MAILGUN_API_KEY", ""),
		MailgunDomain:      getEnv("MAILGUN_DOMAIN", ""),
		MailgunSenderEmail: getEnv("MAILGUN_SENDER_EMAIL", "hello@styleai.app"),
		MailgunSenderName:  getEnv("MAILGUN_SENDER_NAME", "StyleAI"),

		AIBaseURL: getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIAPIKey:  getEnv("AI_API_KEY", ""),
		AIModel:   getEnv("AI_MODEL", "gpt-4o-mini"),
	}
	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads an hour count and returns it as a ready-to-use
// duration.
func getEnvDuration(key string, defaultHours int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if hours, err := strconv.Atoi(value); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return time.Duration(defaultHours) * time.Hour
}
