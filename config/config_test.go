package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/farellandr/promptbox/internal/repository"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_CONNECT_ATTEMPTS", "DB_SEED", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != DriverSQLite || cfg.DBPath != "prompts.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.SeedDefaults {
		t.Fatal("expected seeding enabled by default")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_SEED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DBDriver != DriverPostgres || cfg.DBHost != "db.internal" {
		t.Fatalf("unexpected db settings: %+v", cfg)
	}
	if cfg.SeedDefaults {
		t.Fatal("expected seeding disabled")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"DB_DRIVER":                "mysql",
		"DB_SEED":                  "maybe",
		"SHUTDOWN_TIMEOUT_SECONDS": "-1",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PROMPTBOX_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROMPTBOX_TEST_VALUE", "")
	os.Unsetenv("PROMPTBOX_TEST_VALUE")
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("PROMPTBOX_TEST_VALUE"); got != "from-file" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := sqliteDSN("a.db"); got != "a.db?_busy_timeout=5000&_foreign_keys=on" {
		t.Fatalf("unexpected dsn %q", got)
	}
	if got := sqliteDSN("file:a.db?mode=memory"); got != "file:a.db?mode=memory" {
		t.Fatalf("dsn with params should be kept, got %q", got)
	}
}

func TestInitDatabaseSeedsOnce(t *testing.T) {
	cfg := Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "prompts.db")
	cfg.LogLevel = "error"

	db, err := InitDatabase(&cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("InitDatabase: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	store := repository.NewStore(db, zap.NewNop())

	categories, err := store.Categories.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != len(defaultCategories) {
		t.Fatalf("expected %d categories, got %d", len(defaultCategories), len(categories))
	}
	if categories[0].Name != "Analysis" {
		t.Fatalf("expected categories ordered by name, got %s first", categories[0].Name)
	}

	if err := Seed(store, zap.NewNop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	count, err := store.Prompts.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != int64(len(samplePrompts())) {
		t.Fatalf("expected %d prompts after reseed, got %d", len(samplePrompts()), count)
	}

	storytelling, err := store.Prompts.ListByCategory("Creativity")
	if err != nil {
		t.Fatal(err)
	}
	if len(storytelling) != 2 || storytelling[1].Likes != 103 || storytelling[1].Dislikes != 7 {
		t.Fatalf("unexpected seeded creativity prompts: %+v", storytelling)
	}
}

func TestInitDatabaseRetriesUnreachablePostgres(t *testing.T) {
	cfg := Default()
	cfg.DBDriver = DriverPostgres
	cfg.DBHost = "127.0.0.1"
	cfg.DBPort = "1"
	cfg.DBUser = "promptbox"
	cfg.DBName = "promptbox"
	cfg.ConnectAttempts = 2
	cfg.LogLevel = "error"

	core, logs := observer.New(zap.WarnLevel)
	if _, err := InitDatabase(&cfg, zap.New(core)); err == nil {
		t.Fatal("expected connection failure")
	}
	if logs.FilterMessage("Database not reachable, retrying").Len() == 0 {
		t.Fatal("expected retry attempts to be logged")
	}
}
