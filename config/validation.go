package config

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var err error
	invalid := func(field, msg string) {
		err = multierr.Append(err, ValidationError{Field: field, Message: msg})
	}

	if port, perr := strconv.Atoi(cfg.ServerPort); perr != nil || port <= 0 || port > 65535 {
		invalid("SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort))
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBHost == "" {
			invalid("DB_HOST", "required for postgres")
		}
		if cfg.DBName == "" {
			invalid("DB_NAME", "required for postgres")
		}
		if cfg.DBUser == "" {
			invalid("DB_USER", "required for postgres")
		}
		if cfg.Environment.IsProduction() && cfg.DBPassword == "" {
			invalid("DB_PASSWORD", "db_password secret is required in production")
		}
	case DriverSQLite:
		if cfg.DBPath == "" {
			invalid("DB_PATH", "required for sqlite")
		}
		if cfg.Environment.IsProduction() {
			invalid("DB_DRIVER", "sqlite is not supported in production")
		}
	default:
		invalid("DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver))
	}

	if cfg.ProfileRateLimit < 0 {
		invalid("RATE_LIMIT_PROFILES_PER_HOUR", "must not be negative")
	}

	if _, lerr := logrus.ParseLevel(cfg.LogLevel); lerr != nil {
		invalid("LOG_LEVEL", lerr.Error())
	}

	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		invalid("AWS_REGION", "required when S3_BUCKET_NAME is set")
	}

	return err
}
