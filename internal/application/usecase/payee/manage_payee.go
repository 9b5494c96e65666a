// Package payee contains payee management use cases.
package payee

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// ListPayeesUseCase lists the budget's payees ordered by name.
type ListPayeesUseCase struct {
	payeeRepo adapter.PayeeRepository
}

// NewListPayeesUseCase creates a new ListPayeesUseCase instance.
func NewListPayeesUseCase(payeeRepo adapter.PayeeRepository) *ListPayeesUseCase {
	return &ListPayeesUseCase{payeeRepo: payeeRepo}
}

// Execute performs the list query.
func (uc *ListPayeesUseCase) Execute(ctx context.Context, budgetID uuid.UUID) ([]*entity.Payee, error) {
	return uc.payeeRepo.FindByBudget(ctx, budgetID)
}

// UpdatePayeeInput represents the input for payee updates. Nil pointers leave
// the corresponding field unchanged.
type UpdatePayeeInput struct {
	BudgetID             uuid.UUID
	PayeeID              uuid.UUID
	Name                 *string
	DefaultCategoryID    *uuid.UUID
	ClearDefaultCategory bool
}

// UpdatePayeeOutput represents the output of a payee update.
type UpdatePayeeOutput struct {
	Payee *entity.Payee
}

// UpdatePayeeUseCase handles payee renames and default category changes.
type UpdatePayeeUseCase struct {
	payeeRepo    adapter.PayeeRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdatePayeeUseCase creates a new UpdatePayeeUseCase instance.
func NewUpdatePayeeUseCase(
	payeeRepo adapter.PayeeRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdatePayeeUseCase {
	return &UpdatePayeeUseCase{
		payeeRepo:    payeeRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the payee update.
func (uc *UpdatePayeeUseCase) Execute(ctx context.Context, input UpdatePayeeInput) (*UpdatePayeeOutput, error) {
	p, err := findOwnedPayee(ctx, uc.payeeRepo, input.BudgetID, input.PayeeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.ClearDefaultCategory {
		p.DefaultCategoryID = nil
	} else if input.DefaultCategoryID != nil {
		categories, err := uc.categoryRepo.FindCategoriesByBudget(ctx, input.BudgetID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, c := range categories {
			if c.ID == *input.DefaultCategoryID {
				found = true
				break
			}
		}
		if !found {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category does not belong to budget",
				domainerror.ErrCategoryNotFound,
			)
		}
		p.DefaultCategoryID = input.DefaultCategoryID
	}

	if err := uc.payeeRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &UpdatePayeeOutput{Payee: p}, nil
}

// DeletePayeeUseCase deletes a payee. Transactions that referenced it keep a
// nil payee.
type DeletePayeeUseCase struct {
	payeeRepo adapter.PayeeRepository
}

// NewDeletePayeeUseCase creates a new DeletePayeeUseCase instance.
func NewDeletePayeeUseCase(payeeRepo adapter.PayeeRepository) *DeletePayeeUseCase {
	return &DeletePayeeUseCase{payeeRepo: payeeRepo}
}

// Execute performs the deletion.
func (uc *DeletePayeeUseCase) Execute(ctx context.Context, budgetID, payeeID uuid.UUID) error {
	if _, err := findOwnedPayee(ctx, uc.payeeRepo, budgetID, payeeID); err != nil {
		return err
	}
	return uc.payeeRepo.Delete(ctx, payeeID)
}

// findOwnedPayee resolves a payee and checks budget ownership.
func findOwnedPayee(ctx context.Context, repo adapter.PayeeRepository, budgetID, payeeID uuid.UUID) (*entity.Payee, error) {
	p, err := repo.FindByID(ctx, payeeID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.BudgetID != budgetID {
		return nil, domainerror.NewPayeeError(
			domainerror.ErrCodePayeeNotFound,
			"payee not found",
			domainerror.ErrPayeeNotFound,
		)
	}
	return p, nil
}
