package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
	"github.com/gkeele21/family-budget/internal/integration/persistence/model"
)

// monthlyBudgetRepository implements the adapter.MonthlyBudgetRepository
// interface.
type monthlyBudgetRepository struct {
	db *gorm.DB
}

// NewMonthlyBudgetRepository creates a new monthly budget repository instance.
func NewMonthlyBudgetRepository(db *gorm.DB) adapter.MonthlyBudgetRepository {
	return &monthlyBudgetRepository{
		db: db,
	}
}

// FindByCategoryAndMonth retrieves the allocation for one category and month.
func (r *monthlyBudgetRepository) FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month valueobject.YearMonth) (*entity.MonthlyBudget, error) {
	var allocationModel model.MonthlyBudgetModel
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND month = ?", categoryID, month.String()).
		First(&allocationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return allocationModel.ToEntity(), nil
}

// FindByBudgetAndMonth retrieves all allocations for the budget's categories
// in the given month.
func (r *monthlyBudgetRepository) FindByBudgetAndMonth(ctx context.Context, budgetID uuid.UUID, month valueobject.YearMonth) ([]*entity.MonthlyBudget, error) {
	return r.findByBudget(ctx, budgetID, "monthly_budgets.month = ?", month.String())
}

// FindByBudgetBefore retrieves all allocations for the budget's categories in
// months strictly before the given month. Month keys are zero-padded, so the
// lexical comparison matches calendar order.
func (r *monthlyBudgetRepository) FindByBudgetBefore(ctx context.Context, budgetID uuid.UUID, month valueobject.YearMonth) ([]*entity.MonthlyBudget, error) {
	return r.findByBudget(ctx, budgetID, "monthly_budgets.month < ?", month.String())
}

func (r *monthlyBudgetRepository) findByBudget(ctx context.Context, budgetID uuid.UUID, monthCond string, monthArg string) ([]*entity.MonthlyBudget, error) {
	var allocationModels []model.MonthlyBudgetModel
	result := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = monthly_budgets.category_id").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id").
		Where("category_groups.budget_id = ?", budgetID).
		Where(monthCond, monthArg).
		Find(&allocationModels)
	if result.Error != nil {
		return nil, result.Error
	}
	allocations := make([]*entity.MonthlyBudget, 0, len(allocationModels))
	for i := range allocationModels {
		allocations = append(allocations, allocationModels[i].ToEntity())
	}
	return allocations, nil
}

// Upsert creates or replaces the allocation for the row's category and month.
func (r *monthlyBudgetRepository) Upsert(ctx context.Context, allocation *entity.MonthlyBudget) error {
	allocationModel := model.MonthlyBudgetFromEntity(allocation)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"budgeted_amount", "updated_at"}),
		}).
		Create(allocationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpsertMany creates or replaces allocations in a single database
// transaction.
func (r *monthlyBudgetRepository) UpsertMany(ctx context.Context, allocations []*entity.MonthlyBudget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range allocations {
			allocationModel := model.MonthlyBudgetFromEntity(a)
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{"budgeted_amount", "updated_at"}),
			}).Create(allocationModel)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// AdjustPair atomically moves delta between two categories' allocations for
// the month. The find-or-create-then-adjust sequence takes row locks on
// Postgres so concurrent moves on the same envelope serialize instead of
// losing updates; the sqlite driver is single-writer already and has no
// FOR UPDATE.
func (r *monthlyBudgetRepository) AdjustPair(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID, month valueobject.YearMonth, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.adjust(tx, fromCategoryID, month, delta.Neg()); err != nil {
			return err
		}
		return r.adjust(tx, toCategoryID, month, delta)
	})
}

func (r *monthlyBudgetRepository) adjust(tx *gorm.DB, categoryID uuid.UUID, month valueobject.YearMonth, delta decimal.Decimal) error {
	query := tx.Where("category_id = ? AND month = ?", categoryID, month.String())
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var allocationModel model.MonthlyBudgetModel
	err := query.First(&allocationModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := model.MonthlyBudgetFromEntity(entity.NewMonthlyBudget(categoryID, month, delta))
		return tx.Create(created).Error
	}
	if err != nil {
		return err
	}

	allocationModel.BudgetedAmount = allocationModel.BudgetedAmount.Add(delta)
	return tx.Model(&allocationModel).
		Update("budgeted_amount", allocationModel.BudgetedAmount).Error
}

// DeleteByBudgetAndMonth removes all of the budget's allocations for the
// month.
func (r *monthlyBudgetRepository) DeleteByBudgetAndMonth(ctx context.Context, budgetID uuid.UUID, month valueobject.YearMonth) error {
	categoryIDs := r.db.Model(&model.CategoryModel{}).
		Select("categories.id").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id").
		Where("category_groups.budget_id = ?", budgetID)

	result := r.db.WithContext(ctx).
		Where("month = ? AND category_id IN (?)", month.String(), categoryIDs).
		Delete(&model.MonthlyBudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
