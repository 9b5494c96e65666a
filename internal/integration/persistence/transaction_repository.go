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

// transactionRepository implements the adapter.TransactionRepository
// interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a transaction together with its splits in one database
// transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		for _, split := range transaction.Splits {
			if err := tx.Create(model.SplitTransactionFromEntity(split)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateTransferPair creates both legs of a transfer in one database
// transaction.
func (r *transactionRepository) CreateTransferPair(ctx context.Context, outflow, inflow *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(outflow)).Error; err != nil {
			return err
		}
		return tx.Create(model.TransactionFromEntity(inflow)).Error
	})
}

// FindByID retrieves a transaction with its splits by ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves the budget's transactions matching the filter,
// newest first, with pagination.
func (r *transactionRepository) FindByFilter(ctx context.Context, budgetID uuid.UUID, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("budget_id = ?", budgetID)

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	} else {
		// Viewing all accounts shows each transfer once, as its outflow leg.
		query = query.Where("NOT (type = ? AND amount > 0)", string(entity.TransactionTypeTransfer))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PayeeID != nil {
		query = query.Where("payee_id = ?", *filter.PayeeID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Cleared != nil {
		query = query.Where("cleared = ?", *filter.Cleared)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.RecurringOnly {
		query = query.Where("recurring_id IS NOT NULL")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			r.db.Where("LOWER(memo) LIKE LOWER(?)", like).
				Or("CAST(amount AS TEXT) LIKE ?", like).
				Or("payee_id IN (?)", r.db.Model(&model.PayeeModel{}).
					Select("id").Where("LOWER(name) LIKE LOWER(?)", like)).
				Or("category_id IN (?)", r.db.Model(&model.CategoryModel{}).
					Select("id").Where("LOWER(name) LIKE LOWER(?)", like)),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	var transactionModels []model.TransactionModel
	result := query.
		Preload("Splits").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}

	totalPages := int(total) / pagination.Limit
	if int(total)%pagination.Limit > 0 {
		totalPages++
	}

	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

// FindByBudget retrieves all of the budget's transactions with splits,
// newest first.
func (r *transactionRepository) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("budget_id = ?", budgetID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByBudgetInRange retrieves the budget's transactions dated within
// [start, end], with splits.
func (r *transactionRepository) FindByBudgetInRange(ctx context.Context, budgetID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("budget_id = ? AND date >= ? AND date <= ?", budgetID, start, end).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByAccount retrieves all transactions for the account, with splits.
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("account_id = ?", accountID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// Update updates a transaction and replaces its splits in one database
// transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		if err := tx.Where("transaction_id = ?", transaction.ID).
			Delete(&model.SplitTransactionModel{}).Error; err != nil {
			return err
		}
		for _, split := range transaction.Splits {
			if err := tx.Create(model.SplitTransactionFromEntity(split)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateTransferPair updates both legs of a transfer in one database
// transaction.
func (r *transactionRepository) UpdateTransferPair(ctx context.Context, outflow, inflow *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.TransactionFromEntity(outflow)).Error; err != nil {
			return err
		}
		return tx.Save(model.TransactionFromEntity(inflow)).Error
	})
}

// Delete removes a transaction along with its splits and, for transfers, the
// paired leg, in one database transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		err := tx.Where("id = ?", id).First(&transactionModel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		ids := []uuid.UUID{transactionModel.ID}
		if transactionModel.TransferPairID != nil {
			ids = append(ids, *transactionModel.TransferPairID)
		}

		if err := tx.Where("transaction_id IN (?)", ids).
			Delete(&model.SplitTransactionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN (?)", ids).Delete(&model.TransactionModel{}).Error
	})
}

// EarliestDate returns the date of the budget's oldest transaction, or nil
// when the budget has none.
func (r *transactionRepository) EarliestDate(ctx context.Context, budgetID uuid.UUID) (*time.Time, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("date ASC").
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &transactionModel.Date, nil
}

func toTransactionEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}
	return transactions
}
