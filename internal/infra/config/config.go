package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers the reminder service can run against.
const (
	StoreDriverFirebase = "firebase"
	StoreDriverPostgres = "postgres"
)

// AppConfig holds all configuration for the reminder service.
type AppConfig struct {
	StoreDriver string

	// Firebase Realtime Database (STORE_DRIVER=firebase)
	FirebaseDatabaseURL string
	FirebaseAuthToken   string

	// Postgres (STORE_DRIVER=postgres)
	DatabaseURL string

	// Microsoft Graph mail identity
	AzureTenantID      string
	AzureClientID      string
	AzureClientSecret  string
	GraphSenderMailbox string

	CronSpecReminderCheck string
	LogLevel              string
	Environment           string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.StoreDriver = strings.ToLower(os.Getenv("STORE_DRIVER"))
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreDriverFirebase
	}
	switch cfg.StoreDriver {
	case StoreDriverFirebase:
		cfg.FirebaseDatabaseURL = os.Getenv("FIREBASE_DATABASE_URL")
		if cfg.FirebaseDatabaseURL == "" {
			return nil, fmt.Errorf("FIREBASE_DATABASE_URL is not set")
		}
		cfg.FirebaseAuthToken = os.Getenv("FIREBASE_DATABASE_SECRET")
	case StoreDriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s", cfg.StoreDriver)
	}

	// Mail credentials are not required at startup: a deployment with a
	// broken mail identity still boots and reports per-run send failures.
	cfg.AzureTenantID = os.Getenv("AZURE_TENANT_ID")
	cfg.AzureClientID = os.Getenv("AZURE_CLIENT_ID")
	cfg.AzureClientSecret = os.Getenv("AZURE_CLIENT_SECRET")
	cfg.GraphSenderMailbox = os.Getenv("MS_GRAPH_FROM_USER")

	cfg.CronSpecReminderCheck = os.Getenv("CRON_SPEC_REMINDER_CHECK")
	if cfg.CronSpecReminderCheck == "" {
		cfg.CronSpecReminderCheck = "0 * * * *" // Default: top of every hour
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
