package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create creates a new recurring definition in the database.
func (r *recurringRepository) Create(ctx context.Context, recurring *entity.RecurringTransaction) error {
	recurringModel := model.RecurringTransactionFromEntity(recurring)
	result := r.db.WithContext(ctx).Create(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring definition by its ID.
func (r *recurringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error) {
	var recurringModel model.RecurringTransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByBudget retrieves all recurring definitions for a budget, ordered by
// next date.
func (r *recurringRepository) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("next_date ASC, created_at ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	recurrings := make([]*entity.RecurringTransaction, 0, len(recurringModels))
	for i := range recurringModels {
		recurrings = append(recurrings, recurringModels[i].ToEntity())
	}
	return recurrings, nil
}

// FindDue retrieves active definitions whose next date is on or before asOf,
// across all budgets.
func (r *recurringRepository) FindDue(ctx context.Context, asOf time.Time) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND next_date <= ?", true, asOf).
		Where("end_date IS NULL OR end_date >= next_date").
		Order("next_date ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	recurrings := make([]*entity.RecurringTransaction, 0, len(recurringModels))
	for i := range recurringModels {
		recurrings = append(recurrings, recurringModels[i].ToEntity())
	}
	return recurrings, nil
}

// Update updates an existing recurring definition in the database.
func (r *recurringRepository) Update(ctx context.Context, recurring *entity.RecurringTransaction) error {
	recurringModel := model.RecurringTransactionFromEntity(recurring)
	result := r.db.WithContext(ctx).Save(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a recurring definition. Materialized transactions keep their
// recurring reference cleared.
func (r *recurringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TransactionModel{}).
			Where("recurring_id = ?", id).
			Update("recurring_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.RecurringTransactionModel{}).Error
	})
}

// Materialize creates the given transaction and persists the advanced
// definition in a single database transaction.
func (r *recurringRepository) Materialize(ctx context.Context, recurring *entity.RecurringTransaction, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return tx.Save(model.RecurringTransactionFromEntity(recurring)).Error
	})
}
