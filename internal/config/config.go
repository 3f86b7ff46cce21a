package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Notify   NotifyConfig
	Storage  StorageConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name string
	Port string
}

type DatabaseConfig struct {
	URL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// NotifyConfig points the API at the lead-email function.
type NotifyConfig struct {
	URL string
}

// StorageConfig describes the public object storage serving blueprint files.
type StorageConfig struct {
	BaseURL string
	Bucket  string
}

type EmailConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

// Load reads configuration from the environment. A .env file is applied
// first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "aiconsult"),
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "aiconsult.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		},
		Notify: NotifyConfig{
			URL: getEnv("NOTIFY_URL", "http://localhost:8090/send-lead-email"),
		},
		Storage: StorageConfig{
			BaseURL: getEnv("STORAGE_BASE_URL", "http://localhost:9000"),
			Bucket:  getEnv("STORAGE_BUCKET", "blueprints"),
		},
		Email: EmailConfig{
			Enabled:    getEnvAsBool("EMAIL_ENABLED", false),
			SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:   getEnvAsInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			FromEmail:  getEnv("EMAIL_FROM", "noreply@aiconsult.dev"),
			FromName:   getEnv("EMAIL_FROM_NAME", "AI Consult"),
			AdminEmail: getEnv("ADMIN_EMAIL", ""),
		},
	}

	if cfg.Email.Enabled {
		if cfg.Email.SMTPHost == "" || cfg.Email.Username == "" || cfg.Email.Password == "" {
			return nil, fmt.Errorf("EMAIL_ENABLED=true but SMTP credentials are missing")
		}
		if cfg.Email.AdminEmail == "" {
			return nil, fmt.Errorf("EMAIL_ENABLED=true but ADMIN_EMAIL is empty")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvAsInt(key string, fallback int) int {
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

func getEnvAsSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
