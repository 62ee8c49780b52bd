package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection for the test suite. A
// single connection is reused across scenarios; Clear wipes every table
// between them.
type Db struct {
	DbConn *gorm.DB
	models []any
}

func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	models := []any{
		&model.BookModel{},
		&model.CategoryModel{},
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	return &Db{DbConn: dbConn, models: models}
}

// Clear removes every row from every table.
func (d *Db) Clear() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", m, err)
		}
	}
	return nil
}

// CountRows returns the number of rows in the named table.
func (d *Db) CountRows(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
