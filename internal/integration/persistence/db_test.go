// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	t.Cleanup(func() { _ = dbSQL.Close() })

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.SavingModel{},
		&model.InvestmentModel{},
		&model.ExpenseGoalModel{},
		&model.SavingGoalModel{},
		&model.InvestmentGoalModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
