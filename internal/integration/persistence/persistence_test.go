package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

// openTestDB opens a fresh in-memory sqlite database with the full schema.
// Each call returns an isolated database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.BookModel{},
		&model.CategoryModel{},
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
