package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/farellandr/promptbox/internal/repository"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port            string
	GinMode         string
	DBDriver        string
	DBPath          string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	ConnectAttempts int
	SeedDefaults    bool
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		Port:            "8080",
		GinMode:         "release",
		DBDriver:        DriverSQLite,
		DBPath:          "prompts.db",
		ConnectAttempts: 5,
		SeedDefaults:    true,
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadDotEnv loads variables from path when the file exists. Variables already
// set in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

func LoadConfig() (*Config, error) {
	cfg := Default()

	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	if raw := os.Getenv("GIN_MODE"); raw != "" {
		cfg.GinMode = raw
	}
	if raw := os.Getenv("DB_DRIVER"); raw != "" {
		cfg.DBDriver = strings.ToLower(raw)
	}
	if raw := os.Getenv("DB_PATH"); raw != "" {
		cfg.DBPath = raw
	}
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	if raw := os.Getenv("DB_CONNECT_ATTEMPTS"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("invalid DB_CONNECT_ATTEMPTS %q", raw)
		}
		cfg.ConnectAttempts = value
	}
	if raw := os.Getenv("DB_SEED"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_SEED %q: %w", raw, err)
		}
		cfg.SeedDefaults = value
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		cfg.LogLevel = raw
	}
	if raw := os.Getenv("LOG_FORMAT"); raw != "" {
		cfg.LogFormat = raw
	}
	if raw := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS %q", raw)
		}
		cfg.ShutdownTimeout = time.Duration(value) * time.Second
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return &cfg, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=5000&_foreign_keys=on"
}

func postgresDSN(cfg *Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.DBPath)), nil
	case DriverPostgres:
		return postgres.Open(postgresDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return gormlogger.Info
	case "info", "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

// InitDatabase opens the configured store, migrates the schema and seeds the
// default catalog when enabled.
func InitDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}

	// A postgres container may still be starting when the API comes up.
	var db *gorm.DB
	err = retry.Do(
		func() error {
			db, err = gorm.Open(dial, &gorm.Config{
				TranslateError: true,
				Logger:         gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
			})
			return err
		},
		retry.Attempts(uint(attempts)),
		retry.Delay(1*time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("Database not reachable, retrying",
				zap.Uint("attempt", n+1),
				zap.String("db_driver", cfg.DBDriver),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	// A single connection keeps writes to the SQLite file serialized.
	if cfg.DBDriver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := repository.Migrate(db); err != nil {
		return nil, err
	}

	if cfg.SeedDefaults {
		if err := Seed(repository.NewStore(db, log), log); err != nil {
			return nil, err
		}
	}

	return db, nil
}
