package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBPath        string
	MigrationsDir string

	// Redis backs the profile rate limiter; empty disables it
	RedisURL         string
	ProfileRateLimit int

	// JWTSecret enables admin tokens for plan authoring when set
	JWTSecret string

	CORSAllowedOrigins []string

	// Logging
	LogLevel    string
	LogFile     string
	LogJSON     bool
	LogToStdout bool

	// Recommendation archive; empty bucket disables it
	S3BucketName string
	AWSRegion    string

	MetricsEnabled bool
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LoadConfig reads configuration from an optional .env file, environment
// variables and Docker secrets, in that order of precedence after the
// environment itself.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	env := GetEnvironment()
	src := source{useSecrets: env != CI}

	cfg := &Config{
		Environment: env,

		ServerHost: src.get("SERVER_HOST", "server_host", "0.0.0.0"),
		ServerPort: src.get("SERVER_PORT", "server_port", "8080"),

		DBDriver:      src.get("DB_DRIVER", "db_driver", DriverPostgres),
		DBHost:        src.get("DB_HOST", "db_host", "localhost"),
		DBPort:        src.get("DB_PORT", "db_port", "5432"),
		DBUser:        src.get("DB_USER", "db_user", "postgres"),
		DBPassword:    src.get("DB_PASSWORD", "db_password", ""),
		DBName:        src.get("DB_NAME", "db_name", "fitplan"),
		DBSSLMode:     src.get("DB_SSL_MODE", "db_ssl_mode", "disable"),
		DBPath:        src.get("DB_PATH", "db_path", "fitplan.db"),
		MigrationsDir: src.get("MIGRATIONS_DIR", "", "migrations"),

		RedisURL:  src.get("REDIS_URL", "redis_url", ""),
		JWTSecret: src.get("JWT_SECRET", "jwt_secret", ""),

		CORSAllowedOrigins: splitList(src.get("CORS_ALLOWED_ORIGINS", "", "http://localhost:3000")),

		LogLevel: src.get("LOG_LEVEL", "", "info"),
		LogFile:  src.get("LOG_FILE", "", ""),

		S3BucketName: src.get("S3_BUCKET_NAME", "s3_bucket_name", ""),
		AWSRegion:    src.get("AWS_REGION", "", ""),
	}

	var err error
	if cfg.ProfileRateLimit, err = strconv.Atoi(src.get("RATE_LIMIT_PROFILES_PER_HOUR", "", "20")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PROFILES_PER_HOUR: %w", err)
	}
	if cfg.LogJSON, err = strconv.ParseBool(src.get("LOG_JSON", "", strconv.FormatBool(env == Production))); err != nil {
		return nil, fmt.Errorf("invalid LOG_JSON: %w", err)
	}
	if cfg.LogToStdout, err = strconv.ParseBool(src.get("LOG_TO_STDOUT", "", "true")); err != nil {
		return nil, fmt.Errorf("invalid LOG_TO_STDOUT: %w", err)
	}
	if cfg.MetricsEnabled, err = strconv.ParseBool(src.get("METRICS_ENABLED", "", "true")); err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// PostgresDSN builds the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// AdminAuthEnabled reports whether plan creation requires an admin token
func (c *Config) AdminAuthEnabled() bool {
	return c.JWTSecret != ""
}

// ArchiveEnabled reports whether recommendations are archived to S3
func (c *Config) ArchiveEnabled() bool {
	return c.S3BucketName != ""
}

// source resolves a setting from the environment, then Docker secrets.
type source struct {
	useSecrets bool
}

func (s source) get(envKey, secretName, def string) string {
	if v, ok := os.LookupEnv(envKey); ok && v != "" {
		return strings.TrimSpace(v)
	}
	if s.useSecrets && secretName != "" {
		if v := readSecret(secretName); v != "" {
			return v
		}
	}
	return def
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
