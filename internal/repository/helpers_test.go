package repository

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(openTestDB(t), zap.NewNop())
}

func mustCreateCategory(t *testing.T, store *Store, name string) uint {
	t.Helper()
	category, err := store.Categories.Create(name, "Code", "blue")
	if err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category.ID
}

func mustCreatePrompt(t *testing.T, store *Store, title, category, author string) uint {
	t.Helper()
	prompt, err := store.Prompts.Create(title, "content of "+title, category, author, nil)
	if err != nil {
		t.Fatalf("create prompt %s: %v", title, err)
	}
	return prompt.ID
}

func countByCategory(t *testing.T, store *Store, name string) int {
	t.Helper()
	prompts, err := store.Prompts.ListByCategory(name)
	if err != nil {
		t.Fatalf("list by category %s: %v", name, err)
	}
	return len(prompts)
}
