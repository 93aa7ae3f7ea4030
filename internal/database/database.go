package database

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AloysioLvy/ReportTracker/backend/internal/config"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

// Connect opens the store selected by cfg.DBDriver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(LogLevel(cfg.DBLogLevel)),
		NowFunc: Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// Every sqlite connection to :memory: is a separate database and
		// sqlite serializes writers anyway.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Dialector builds the gorm dialector and DSN for the configured driver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(PostgresDSN(cfg)), nil
	case config.DriverMySQL:
		dsn, err := MySQLDSN(cfg)
		if err != nil {
			return nil, err
		}
		// gorm-mysql migrates DATETIME(3) by default; match the store clock.
		precision := datetimePrecision
		return mysql.New(mysql.Config{DSN: dsn, DefaultDatetimePrecision: &precision}), nil
	case config.DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.DBPath)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// PostgresDSN prefers DATABASE_URL and falls back to the discrete settings.
func PostgresDSN(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)
}

// datetimePrecision is the fractional-second precision of the store clock.
const datetimePrecision = 6

// MySQLDSN formats a go-sql-driver DSN that scans DATETIME into time.Time.
// Affected rows count matched rows, so an update that changes nothing still
// finds its row.
func MySQLDSN(cfg *config.Config) (string, error) {
	loc, err := time.LoadLocation(cfg.DBTimezone)
	if err != nil {
		return "", fmt.Errorf("invalid DB_TIMEZONE: %w", err)
	}

	mc := gomysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = loc
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}

// SQLiteDSN turns on foreign keys so follow-up actions cascade with
// their report.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// ErrPostgresAutoMigrate is returned by Migrate on postgres, whose schema
// (including the enum column types) belongs to cmd/migrate.
var ErrPostgresAutoMigrate = errors.New("auto-migrate is not supported on postgres; run cmd/migrate")

// Migrate creates or updates the reports and follow_up_actions tables on
// sqlite and mysql.
func Migrate(db *gorm.DB) error {
	if err := checkAutoMigrate(db.Dialector.Name()); err != nil {
		return err
	}
	return db.AutoMigrate(&models.Report{}, &models.FollowUpAction{})
}

func checkAutoMigrate(dialect string) error {
	if dialect == config.DriverPostgres {
		return ErrPostgresAutoMigrate
	}
	return nil
}

// Now is the store clock: UTC at the microsecond precision of postgres
// TIMESTAMPTZ and mysql DATETIME(6).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// LogLevel maps DB_LOG_LEVEL onto gorm's logger levels.
func LogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
