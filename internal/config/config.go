package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv     string
	ServerPort string

	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBTimezone    string
	DBPath        string
	DBAutoMigrate bool
	DBLogLevel    string

	CORSAllowOrigins []string
}

// Load reads the environment into a Config. Local .env files are optional
// and never override variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	driver := strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres))

	cfg := &Config{
		AppEnv:     GetEnv("APP_ENV", "development"),
		ServerPort: GetEnv("SERVER_PORT", "2022"),

		DBDriver:    driver,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "disable"),
		DBTimezone:  GetEnv("DB_TIMEZONE", "UTC"),
		DBPath:      GetEnv("DB_PATH", "reports.db"),
		DBLogLevel:  GetEnv("DB_LOG_LEVEL", "warn"),

		CORSAllowOrigins: splitList(GetEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	// sqlite has no migration tool of its own, so it migrates by default.
	autoMigrate, err := strconv.ParseBool(GetEnv("DB_AUTO_MIGRATE", strconv.FormatBool(driver == DriverSQLite)))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}
	cfg.DBAutoMigrate = autoMigrate

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected driver has what it needs to connect.
func (c *Config) Validate() error {
	if c.DBDriver == DriverPostgres && c.DBAutoMigrate {
		return fmt.Errorf("DB_AUTO_MIGRATE is not supported for postgres; apply the schema with cmd/migrate")
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL != "" {
			return nil
		}
		fallthrough
	case DriverMySQL:
		if c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("database environment variables not configured for %s", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// GetEnv returns the value of key, or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
