package category

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	BudgetID      uuid.UUID
	GroupID       uuid.UUID
	Name          string
	Icon          string
	DefaultAmount decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category creation. The new category sorts after its
// group's existing categories.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	g, err := findOwnedGroup(ctx, uc.categoryRepo, input.BudgetID, input.GroupID)
	if err != nil {
		return nil, err
	}
	c := entity.NewCategory(g.ID, name, input.Icon, input.DefaultAmount, len(g.Categories))
	if err := uc.categoryRepo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &CreateCategoryOutput{Category: c}, nil
}

// UpdateCategoryInput represents the input for category updates. Nil pointers
// leave the corresponding field unchanged.
type UpdateCategoryInput struct {
	BudgetID      uuid.UUID
	CategoryID    uuid.UUID
	Name          *string
	Icon          *string
	DefaultAmount *decimal.Decimal
	IsHidden      *bool
	GroupID       *uuid.UUID // move to another group in the same budget
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	c, err := findOwnedCategory(ctx, uc.categoryRepo, input.BudgetID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameRequired,
				"category name is required",
				domainerror.ErrCategoryNameRequired,
			)
		}
		c.Name = name
	}
	if input.Icon != nil {
		c.Icon = *input.Icon
	}
	if input.DefaultAmount != nil {
		c.DefaultAmount = *input.DefaultAmount
	}
	if input.IsHidden != nil {
		c.IsHidden = *input.IsHidden
	}
	if input.GroupID != nil && *input.GroupID != c.GroupID {
		if _, err := findOwnedGroup(ctx, uc.categoryRepo, input.BudgetID, *input.GroupID); err != nil {
			return nil, err
		}
		c.GroupID = *input.GroupID
	}

	if err := uc.categoryRepo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &UpdateCategoryOutput{Category: c}, nil
}

// DeleteCategoryUseCase deletes a category. Its monthly allocations cascade;
// historical transactions keep a dangling reference cleared by the store.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, budgetID, categoryID uuid.UUID) error {
	if _, err := findOwnedCategory(ctx, uc.categoryRepo, budgetID, categoryID); err != nil {
		return err
	}
	return uc.categoryRepo.DeleteCategory(ctx, categoryID)
}

// ReorderCategoriesInput represents the input for category reordering within
// one group.
type ReorderCategoriesInput struct {
	BudgetID   uuid.UUID
	GroupID    uuid.UUID
	OrderedIDs []uuid.UUID
}

// ReorderCategoriesUseCase persists a new sort order for a group's
// categories. Foreign IDs reject the whole operation.
type ReorderCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute performs the reorder.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) error {
	g, err := findOwnedGroup(ctx, uc.categoryRepo, input.BudgetID, input.GroupID)
	if err != nil {
		return err
	}
	ownedIDs := make(map[uuid.UUID]struct{}, len(g.Categories))
	for _, c := range g.Categories {
		ownedIDs[c.ID] = struct{}{}
	}
	for _, id := range input.OrderedIDs {
		if _, ok := ownedIDs[id]; !ok {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeForeignCategoryIDs,
				"reorder IDs must belong to the group",
				domainerror.ErrCategoryNotFound,
			)
		}
	}
	return uc.categoryRepo.UpdateCategorySortOrder(ctx, input.GroupID, input.OrderedIDs)
}

// findOwnedCategory resolves a category and checks that its group belongs to
// the budget.
func findOwnedCategory(ctx context.Context, repo adapter.CategoryRepository, budgetID, categoryID uuid.UUID) (*entity.Category, error) {
	c, err := repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if _, err := findOwnedGroup(ctx, repo, budgetID, c.GroupID); err != nil {
		return nil, err
	}
	return c, nil
}
