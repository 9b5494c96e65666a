// Package mock provides test infrastructure for integration tests.
package mock

import (
	"github.com/gkeele21/family-budget/config"
	"github.com/gkeele21/family-budget/internal/infra/db"
	"github.com/gkeele21/family-budget/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory sqlite database with the full schema
// migrated. Every call returns an isolated database, so scenarios never
// see each other's rows.
func NewDb() *db.Database {
	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: "sqlite",
		URL:    ":memory:",
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := database.AutoMigrate(
		&model.BudgetModel{},
		&model.AccountModel{},
		&model.CategoryGroupModel{},
		&model.CategoryModel{},
		&model.MonthlyBudgetModel{},
		&model.PayeeModel{},
		&model.TransactionModel{},
		&model.SplitTransactionModel{},
		&model.RecurringTransactionModel{},
	); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return database
}
