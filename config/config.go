package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// SMTP transport settings. All optional: when a required one is missing
	// the mail gateway stays unconfigured for the process lifetime and
	// requests are still served, just without notifications.
	SMTPHost     string
	SMTPPort     int
	SMTPSecure   bool
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	// Notification destinations, one per request kind.
	ContactFormEmail     string
	TransferRequestEmail string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPSecure:   getEnvBool("SMTP_SECURE", false),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),

		ContactFormEmail:     getEnv("CONTACT_FORM_EMAIL", ""),
		TransferRequestEmail: getEnv("TRANSFER_REQUEST_EMAIL", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP settings incomplete. Email notifications will be skipped.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
