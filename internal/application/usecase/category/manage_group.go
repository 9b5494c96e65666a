// Package category contains category group and category management use cases.
package category

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// CreateGroupInput represents the input for category group creation.
type CreateGroupInput struct {
	BudgetID uuid.UUID
	Name     string
}

// CreateGroupOutput represents the output of category group creation.
type CreateGroupOutput struct {
	Group *entity.CategoryGroup
}

// CreateGroupUseCase handles category group creation.
type CreateGroupUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(categoryRepo adapter.CategoryRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{categoryRepo: categoryRepo}
}

// Execute performs the group creation. The new group sorts after the budget's
// existing groups.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"group name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	existing, err := uc.categoryRepo.FindGroupsByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}
	g := entity.NewCategoryGroup(input.BudgetID, name, len(existing))
	if err := uc.categoryRepo.CreateGroup(ctx, g); err != nil {
		return nil, err
	}
	return &CreateGroupOutput{Group: g}, nil
}

// UpdateGroupInput represents the input for category group updates.
type UpdateGroupInput struct {
	BudgetID uuid.UUID
	GroupID  uuid.UUID
	Name     string
}

// UpdateGroupOutput represents the output of a category group update.
type UpdateGroupOutput struct {
	Group *entity.CategoryGroup
}

// UpdateGroupUseCase handles category group renames.
type UpdateGroupUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(categoryRepo adapter.CategoryRepository) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{categoryRepo: categoryRepo}
}

// Execute performs the group update.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*UpdateGroupOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"group name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	g, err := findOwnedGroup(ctx, uc.categoryRepo, input.BudgetID, input.GroupID)
	if err != nil {
		return nil, err
	}
	g.Name = name
	if err := uc.categoryRepo.UpdateGroup(ctx, g); err != nil {
		return nil, err
	}
	return &UpdateGroupOutput{Group: g}, nil
}

// DeleteGroupUseCase deletes a category group and its categories.
type DeleteGroupUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(categoryRepo adapter.CategoryRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{categoryRepo: categoryRepo}
}

// Execute performs the deletion.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, budgetID, groupID uuid.UUID) error {
	if _, err := findOwnedGroup(ctx, uc.categoryRepo, budgetID, groupID); err != nil {
		return err
	}
	return uc.categoryRepo.DeleteGroup(ctx, groupID)
}

// ReorderGroupsInput represents the input for category group reordering.
type ReorderGroupsInput struct {
	BudgetID   uuid.UUID
	OrderedIDs []uuid.UUID
}

// ReorderGroupsUseCase persists a new sort order for the budget's groups.
// Foreign IDs reject the whole operation.
type ReorderGroupsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderGroupsUseCase creates a new ReorderGroupsUseCase instance.
func NewReorderGroupsUseCase(categoryRepo adapter.CategoryRepository) *ReorderGroupsUseCase {
	return &ReorderGroupsUseCase{categoryRepo: categoryRepo}
}

// Execute performs the reorder.
func (uc *ReorderGroupsUseCase) Execute(ctx context.Context, input ReorderGroupsInput) error {
	owned, err := uc.categoryRepo.FindGroupsByBudget(ctx, input.BudgetID)
	if err != nil {
		return err
	}
	ownedIDs := make(map[uuid.UUID]struct{}, len(owned))
	for _, g := range owned {
		ownedIDs[g.ID] = struct{}{}
	}
	for _, id := range input.OrderedIDs {
		if _, ok := ownedIDs[id]; !ok {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeForeignCategoryIDs,
				"reorder IDs must belong to the budget",
				domainerror.ErrCategoryGroupNotInBudget,
			)
		}
	}
	return uc.categoryRepo.UpdateGroupSortOrder(ctx, input.BudgetID, input.OrderedIDs)
}

// ListGroupsUseCase lists the budget's groups with their categories.
type ListGroupsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(categoryRepo adapter.CategoryRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{categoryRepo: categoryRepo}
}

// Execute returns the groups ordered by sort order, categories included.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, budgetID uuid.UUID) ([]*entity.CategoryGroup, error) {
	return uc.categoryRepo.FindGroupsByBudget(ctx, budgetID)
}

// findOwnedGroup resolves a group and checks budget ownership.
func findOwnedGroup(ctx context.Context, repo adapter.CategoryRepository, budgetID, groupID uuid.UUID) (*entity.CategoryGroup, error) {
	g, err := repo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryGroupNotFound,
			"category group not found",
			domainerror.ErrCategoryGroupNotFound,
		)
	}
	if g.BudgetID != budgetID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryGroupNotInBudget,
			"category group does not belong to budget",
			domainerror.ErrCategoryGroupNotInBudget,
		)
	}
	return g, nil
}
