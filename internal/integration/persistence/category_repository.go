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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// CreateGroup creates a new category group in the database.
func (r *categoryRepository) CreateGroup(ctx context.Context, group *entity.CategoryGroup) error {
	groupModel := model.CategoryGroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindGroupByID retrieves a category group with its categories.
func (r *categoryRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error) {
	var groupModel model.CategoryGroupModel
	result := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindGroupsByBudget retrieves all groups for a budget with their categories
// preloaded, both ordered by sort order.
func (r *categoryRepository) FindGroupsByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.CategoryGroup, error) {
	var groupModels []model.CategoryGroupModel
	result := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at ASC")
		}).
		Where("budget_id = ?", budgetID).
		Order("sort_order ASC, created_at ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}
	groups := make([]*entity.CategoryGroup, 0, len(groupModels))
	for i := range groupModels {
		groups = append(groups, groupModels[i].ToEntity())
	}
	return groups, nil
}

// UpdateGroup updates an existing category group in the database.
func (r *categoryRepository) UpdateGroup(ctx context.Context, group *entity.CategoryGroup) error {
	groupModel := model.CategoryGroupFromEntity(group)
	result := r.db.WithContext(ctx).Save(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateGroupSortOrder persists the given sort order in a single database
// transaction.
func (r *categoryRepository) UpdateGroupSortOrder(ctx context.Context, budgetID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&model.CategoryGroupModel{}).
				Where("id = ? AND budget_id = ?", id, budgetID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// DeleteGroup removes a category group, its categories and their monthly
// allocations in one database transaction.
func (r *categoryRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&model.CategoryModel{}).Select("id").Where("group_id = ?", id)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&model.MonthlyBudgetModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&model.CategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.CategoryGroupModel{}).Error
	})
}

// CreateCategory creates a new category in the database.
func (r *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindCategoriesByBudget retrieves all categories across the budget's groups,
// ordered by group then category sort order.
func (r *categoryRepository) FindCategoriesByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Joins("JOIN category_groups ON category_groups.id = categories.group_id").
		Where("category_groups.budget_id = ?", budgetID).
		Order("category_groups.sort_order ASC, categories.sort_order ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryModels[i].ToEntity())
	}
	return categories, nil
}

// UpdateCategory updates an existing category in the database.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateCategorySortOrder persists the given sort order in a single database
// transaction.
func (r *categoryRepository) UpdateCategorySortOrder(ctx context.Context, groupID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&model.CategoryModel{}).
				Where("id = ? AND group_id = ?", id, groupID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// DeleteCategory removes a category and its monthly allocations in one
// database transaction. Transactions that referenced it keep a nil category.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.MonthlyBudgetModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TransactionModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.CategoryModel{}).Error
	})
}

// HasTransactions reports whether any transaction or split references the
// category.
func (r *categoryRepository) HasTransactions(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	if count > 0 {
		return true, nil
	}
	result = r.db.WithContext(ctx).
		Model(&model.SplitTransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
