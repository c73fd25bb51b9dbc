package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath    = "./dev.db"
	defaultPort      = "8080"
	defaultEnv       = "development"
	defaultLogLevel  = "info"
	defaultSESRegion = "us-east-1"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env           string
	Port          string
	DBPath        string
	LogLevel      string
	LogFormat     string
	AdminEmail    string
	AdminPassword string
	SessionSecret string

	// Email notification settings. Provider is "worker", "ses", or
	// "none"; the zero value disables notifications.
	EmailProvider     string
	EmailWorkerURL    string
	EmailWorkerAPIKey string
	SESRegion         string
	NotifyFrom        string
	NotifyRecipients  []string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = godotenv.Load()

	cfg := Config{
		Env:               os.Getenv("ENV"),
		Port:              os.Getenv("PORT"),
		DBPath:            os.Getenv("DB_PATH"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		LogFormat:         os.Getenv("LOG_FORMAT"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		EmailProvider:     os.Getenv("EMAIL_PROVIDER"),
		EmailWorkerURL:    os.Getenv("EMAIL_WORKER_URL"),
		EmailWorkerAPIKey: os.Getenv("EMAIL_WORKER_API_KEY"),
		SESRegion:         os.Getenv("SES_REGION"),
		NotifyFrom:        os.Getenv("NOTIFY_FROM"),
		NotifyRecipients:  splitList(os.Getenv("NOTIFY_RECIPIENTS")),
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFormat == "" {
		if cfg.IsDev() {
			cfg.LogFormat = "console"
		} else {
			cfg.LogFormat = "json"
		}
	}
	if cfg.SESRegion == "" {
		cfg.SESRegion = defaultSESRegion
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "none"
	}

	if cfg.AdminEmail == "" {
		log.Print("warning: ADMIN_EMAIL is not set")
	}
	if cfg.AdminPassword == "" {
		log.Print("warning: ADMIN_PASSWORD is not set")
	}
	if cfg.SessionSecret == "" {
		log.Print("warning: SESSION_SECRET is not set")
	}

	return cfg
}

// IsDev reports whether the service runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == "development"
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
