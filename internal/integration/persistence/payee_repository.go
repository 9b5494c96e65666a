package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/integration/persistence/model"
)

// payeeRepository implements the adapter.PayeeRepository interface.
type payeeRepository struct {
	db *gorm.DB
}

// NewPayeeRepository creates a new payee repository instance.
func NewPayeeRepository(db *gorm.DB) adapter.PayeeRepository {
	return &payeeRepository{
		db: db,
	}
}

// FindOrCreate returns the budget's payee with the given name, creating it
// when absent. Name matching is case-insensitive; the first spelling used is
// the one kept.
func (r *payeeRepository) FindOrCreate(ctx context.Context, budgetID uuid.UUID, name string) (*entity.Payee, error) {
	name = strings.TrimSpace(name)

	var payeeModel model.PayeeModel
	err := r.db.WithContext(ctx).
		Where("budget_id = ? AND LOWER(name) = LOWER(?)", budgetID, name).
		First(&payeeModel).Error
	if err == nil {
		return payeeModel.ToEntity(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	payee := entity.NewPayee(budgetID, name, nil)
	if err := r.db.WithContext(ctx).Create(model.PayeeFromEntity(payee)).Error; err != nil {
		return nil, err
	}
	return payee, nil
}

// FindByID retrieves a payee by its ID.
func (r *payeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payee, error) {
	var payeeModel model.PayeeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&payeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return payeeModel.ToEntity(), nil
}

// FindByBudget retrieves all payees for a budget, ordered by name.
func (r *payeeRepository) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Payee, error) {
	var payeeModels []model.PayeeModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("name ASC").
		Find(&payeeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	payees := make([]*entity.Payee, 0, len(payeeModels))
	for i := range payeeModels {
		payees = append(payees, payeeModels[i].ToEntity())
	}
	return payees, nil
}

// Update updates an existing payee in the database.
func (r *payeeRepository) Update(ctx context.Context, payee *entity.Payee) error {
	payeeModel := model.PayeeFromEntity(payee)
	result := r.db.WithContext(ctx).Save(payeeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a payee. Transactions that referenced it keep a nil payee.
func (r *payeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TransactionModel{}).
			Where("payee_id = ?", id).
			Update("payee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.RecurringTransactionModel{}).
			Where("payee_id = ?", id).
			Update("payee_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PayeeModel{}).Error
	})
}
