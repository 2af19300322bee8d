package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Storage
	DataDir   string
	PublicDir string
	StaticURL string

	// Security
	AdminPassword string
	JWTSecret     string
	JWTExpiry     time.Duration

	// External verification API
	DirectAPIURL string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "casefolio"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		DataDir:   envString("DATA_DIR", "data"),
		PublicDir: envString("PUBLIC_DIR", "static"),
		StaticURL: envString("STATIC_URL", "/static"),

		AdminPassword: envRequired("ADMIN_PASSWORD"),
		JWTSecret:     envRequired("JWT_SECRET"),
		JWTExpiry:     envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		DirectAPIURL: envString("DIRECT_API_URL", ""),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	return cfg
}

// CasesFile is the case-study collection file.
func (c *Config) CasesFile() string {
	return filepath.Join(c.DataDir, "cases.json")
}

// UsersFile is the user collection file.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.json")
}

// ContentFile is the singleton site-content file.
func (c *Config) ContentFile() string {
	return filepath.Join(c.DataDir, "content.json")
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}
