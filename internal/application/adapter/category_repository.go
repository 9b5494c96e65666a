package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// CategoryRepository defines the interface for category group and category
// persistence operations.
type CategoryRepository interface {
	// CreateGroup creates a new category group in the database.
	CreateGroup(ctx context.Context, group *entity.CategoryGroup) error

	// FindGroupByID retrieves a category group with its categories.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error)

	// FindGroupsByBudget retrieves all groups for a budget with their
	// categories preloaded, both ordered by sort order.
	FindGroupsByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.CategoryGroup, error)

	// UpdateGroup updates an existing category group in the database.
	UpdateGroup(ctx context.Context, group *entity.CategoryGroup) error

	// UpdateGroupSortOrder persists the given sort order for each group ID,
	// in a single database transaction.
	UpdateGroupSortOrder(ctx context.Context, budgetID uuid.UUID, orderedIDs []uuid.UUID) error

	// DeleteGroup removes a category group and its categories from the database.
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// CreateCategory creates a new category in the database.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategoriesByBudget retrieves all categories across the budget's
	// groups, ordered by group then category sort order.
	FindCategoriesByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Category, error)

	// UpdateCategory updates an existing category in the database.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategorySortOrder persists the given sort order for each category
	// ID within a group, in a single database transaction.
	UpdateCategorySortOrder(ctx context.Context, groupID uuid.UUID, orderedIDs []uuid.UUID) error

	// DeleteCategory removes a category from the database.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// HasTransactions reports whether any transaction or split references the category.
	HasTransactions(ctx context.Context, categoryID uuid.UUID) (bool, error)
}
