// Package config provides configuration management for the visiontest application.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, and collective error reporting:
// every problem is reported at once instead of failing on the first missing key.
package config

import (
	"fmt"
	"net/url"
	// `os` package provides operating system functionalities, like reading environment variables.
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/user/visiontest-go/apperror"
)

// DatabaseConfig holds configuration for the PostgreSQL connection pool.
type DatabaseConfig struct {
	URL      string // postgres:// connection URL
	MaxConns int    // Upper bound for pooled connections
}

// SupabaseConfig holds the identity provider settings.
type SupabaseConfig struct {
	URL        string // Project base URL, e.g. https://xyz.supabase.co
	ServiceKey string // Sent as the `apikey` header on every verification call
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port               string        // Port for the HTTP server
	IndexHTMLPath      string        // Static document served at GET /
	CORSAllowedOrigins []string      // Origins allowed by the CORS middleware
	ShutdownTimeout    time.Duration // Grace period for in-flight requests on SIGTERM
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Supabase *SupabaseConfig
	Server   *ServerConfig
}

// Helper function to get a required environment variable.
// Appends an error to the errors slice if the variable is not set or blank.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return strings.TrimSpace(value)
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as an int.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// Helper function to get an optional environment variable parsed as time.Duration.
// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size between 1 and 100.
func clampPoolSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > 100 {
		return 100
	}
	return size
}

// NormalizeDatabaseURL converts SQLAlchemy-style URLs such as
// `postgresql+asyncpg://...` into the `postgres://` form understood by pgx
// and golang-migrate. Non-postgres schemes are rejected.
func NormalizeDatabaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	scheme := u.Scheme
	if i := strings.Index(scheme, "+"); i >= 0 {
		scheme = scheme[:i]
	}
	switch scheme {
	case "postgres", "postgresql":
		u.Scheme = "postgres"
	default:
		return "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("database URL has no host")
	}
	return u.String(), nil
}

// splitList parses a comma separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single ConfigError if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database Configuration
	dbConfig := loadDatabase(&errors)

	// Identity provider Configuration
	supabaseURL := getRequiredEnv("SUPABASE_URL", &errors)
	if supabaseURL != "" {
		if u, err := url.Parse(supabaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid value for SUPABASE_URL: %q is not an absolute URL", supabaseURL))
		}
		supabaseURL = strings.TrimRight(supabaseURL, "/")
	}
	supabaseKey := getRequiredEnv("SUPABASE_KEY", &errors)

	// Server Configuration
	serverConfig := &ServerConfig{
		Port:               getOptionalEnv("PORT", "8000"),
		IndexHTMLPath:      getOptionalEnv("INDEX_HTML_PATH", "index.html"),
		CORSAllowedOrigins: splitList(getOptionalEnv("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout:    getOptionalEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second, &errors),
	}

	if len(errors) > 0 {
		return nil, apperror.NewConfigError(
			fmt.Sprintf("configuration errors:\n- %s", strings.Join(errors, "\n- ")), nil)
	}

	return &AppConfig{
		Database: dbConfig,
		Supabase: &SupabaseConfig{URL: supabaseURL, ServiceKey: supabaseKey},
		Server:   serverConfig,
	}, nil
}

// LoadDatabaseConfig reads only the database settings. It backs CLI commands
// such as `migrate` that never talk to the identity provider.
func LoadDatabaseConfig() (*DatabaseConfig, error) {
	var errors []string
	dbConfig := loadDatabase(&errors)
	if len(errors) > 0 {
		return nil, apperror.NewConfigError(
			fmt.Sprintf("configuration errors:\n- %s", strings.Join(errors, "\n- ")), nil)
	}
	return dbConfig, nil
}

func loadDatabase(errors *[]string) *DatabaseConfig {
	dbURL := getRequiredEnv("DATABASE_URL", errors)
	if dbURL != "" {
		normalized, err := NormalizeDatabaseURL(dbURL)
		if err != nil {
			*errors = append(*errors, fmt.Sprintf("invalid value for DATABASE_URL: %v", err))
		}
		dbURL = normalized
	}
	return &DatabaseConfig{
		URL:      dbURL,
		MaxConns: clampPoolSize(getOptionalEnvInt("DB_MAX_CONNS", 10, errors)),
	}
}
