package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByBudget retrieves all accounts for a budget, ordered by sort order.
func (r *accountRepository) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("sort_order ASC, created_at ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}
	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModels[i].ToEntity())
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateSortOrder persists the given sort order in a single database
// transaction.
func (r *accountRepository) UpdateSortOrder(ctx context.Context, budgetID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&model.AccountModel{}).
				Where("id = ? AND budget_id = ?", id, budgetID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// Delete removes an account. Its transactions cascade through foreign keys.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&model.RecurringTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("transaction_id IN (?)",
			tx.Model(&model.TransactionModel{}).Select("id").Where("account_id = ?", id),
		).Delete(&model.SplitTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.AccountModel{}).Error
	})
}

// HasTransactions reports whether any transaction references the account.
func (r *accountRepository) HasTransactions(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
