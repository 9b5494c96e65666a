// Package recurring contains recurring transaction definition use cases and
// the due-definition materializer.
package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// CreateRecurringInput represents the input for creating a recurring
// definition. Amount is a positive magnitude.
type CreateRecurringInput struct {
	BudgetID   uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	PayeeID    *uuid.UUID
	Amount     decimal.Decimal
	Type       entity.TransactionType
	Frequency  entity.Frequency
	NextDate   time.Time
	EndDate    *time.Time
	Memo       string
}

// CreateRecurringOutput represents the output of creating a recurring
// definition.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase handles recurring definition creation.
type CreateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
	accountRepo   adapter.AccountRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(
	recurringRepo adapter.RecurringRepository,
	accountRepo adapter.AccountRepository,
) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		recurringRepo: recurringRepo,
		accountRepo:   accountRepo,
	}
}

// Execute performs the creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if input.Type == entity.TransactionTypeTransfer {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringTransferUnsupported,
			"recurring transfers are not supported",
			domainerror.ErrRecurringTransferUnsupported,
		)
	}
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !entity.IsValidFrequency(input.Frequency) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be daily, weekly, biweekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeAmountNotPositive,
			"amount must be positive",
			domainerror.ErrAmountNotPositive,
		)
	}
	if input.EndDate != nil && input.EndDate.Before(input.NextDate) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeEndDateBeforeNextDate,
			"end date must be after next date",
			domainerror.ErrEndDateBeforeNextDate,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.BudgetID != input.BudgetID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotInBudget,
			"account does not belong to budget",
			domainerror.ErrAccountNotInBudget,
		)
	}

	r := entity.NewRecurringTransaction(
		input.BudgetID,
		input.AccountID,
		input.CategoryID,
		input.PayeeID,
		input.Amount,
		input.Type,
		input.Frequency,
		input.NextDate,
		input.EndDate,
		input.Memo,
	)
	if err := uc.recurringRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return &CreateRecurringOutput{Recurring: r}, nil
}

// UpdateRecurringInput represents the input for updating a recurring
// definition. Nil pointers leave the corresponding field unchanged.
type UpdateRecurringInput struct {
	BudgetID    uuid.UUID
	RecurringID uuid.UUID
	Amount      *decimal.Decimal
	Frequency   *entity.Frequency
	NextDate    *time.Time
	EndDate     *time.Time
	ClearEnd    bool
	Memo        *string
	CategoryID  *uuid.UUID
}

// UpdateRecurringOutput represents the output of a recurring update.
type UpdateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// UpdateRecurringUseCase handles recurring definition updates.
type UpdateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewUpdateRecurringUseCase creates a new UpdateRecurringUseCase instance.
func NewUpdateRecurringUseCase(recurringRepo adapter.RecurringRepository) *UpdateRecurringUseCase {
	return &UpdateRecurringUseCase{recurringRepo: recurringRepo}
}

// Execute performs the update.
func (uc *UpdateRecurringUseCase) Execute(ctx context.Context, input UpdateRecurringInput) (*UpdateRecurringOutput, error) {
	r, err := findOwnedRecurring(ctx, uc.recurringRepo, input.BudgetID, input.RecurringID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeAmountNotPositive,
				"amount must be positive",
				domainerror.ErrAmountNotPositive,
			)
		}
		r.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !entity.IsValidFrequency(*input.Frequency) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be daily, weekly, biweekly, monthly or yearly",
				domainerror.ErrInvalidFrequency,
			)
		}
		r.Frequency = *input.Frequency
	}
	if input.NextDate != nil {
		r.NextDate = *input.NextDate
	}
	if input.ClearEnd {
		r.EndDate = nil
	} else if input.EndDate != nil {
		r.EndDate = input.EndDate
	}
	if r.EndDate != nil && r.EndDate.Before(r.NextDate) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeEndDateBeforeNextDate,
			"end date must be after next date",
			domainerror.ErrEndDateBeforeNextDate,
		)
	}
	if input.Memo != nil {
		r.Memo = *input.Memo
	}
	if input.CategoryID != nil {
		r.CategoryID = input.CategoryID
	}

	r.UpdatedAt = time.Now().UTC()
	if err := uc.recurringRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return &UpdateRecurringOutput{Recurring: r}, nil
}

// ToggleActiveUseCase flips a definition's active flag.
type ToggleActiveUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewToggleActiveUseCase creates a new ToggleActiveUseCase instance.
func NewToggleActiveUseCase(recurringRepo adapter.RecurringRepository) *ToggleActiveUseCase {
	return &ToggleActiveUseCase{recurringRepo: recurringRepo}
}

// Execute performs the toggle.
func (uc *ToggleActiveUseCase) Execute(ctx context.Context, budgetID, recurringID uuid.UUID) (*entity.RecurringTransaction, error) {
	r, err := findOwnedRecurring(ctx, uc.recurringRepo, budgetID, recurringID)
	if err != nil {
		return nil, err
	}
	r.IsActive = !r.IsActive
	r.UpdatedAt = time.Now().UTC()
	if err := uc.recurringRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteRecurringUseCase deletes a definition. Transactions already
// materialized from it are kept.
type DeleteRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{recurringRepo: recurringRepo}
}

// Execute performs the deletion.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, budgetID, recurringID uuid.UUID) error {
	if _, err := findOwnedRecurring(ctx, uc.recurringRepo, budgetID, recurringID); err != nil {
		return err
	}
	return uc.recurringRepo.Delete(ctx, recurringID)
}

// ListRecurringUseCase lists the budget's definitions ordered by next date.
type ListRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(recurringRepo adapter.RecurringRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{recurringRepo: recurringRepo}
}

// Execute performs the list query.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, budgetID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	return uc.recurringRepo.FindByBudget(ctx, budgetID)
}

// findOwnedRecurring resolves a definition and checks budget ownership.
func findOwnedRecurring(ctx context.Context, repo adapter.RecurringRepository, budgetID, recurringID uuid.UUID) (*entity.RecurringTransaction, error) {
	r, err := repo.FindByID(ctx, recurringID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring transaction not found",
			domainerror.ErrRecurringNotFound,
		)
	}
	if r.BudgetID != budgetID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotInBudget,
			"recurring transaction does not belong to budget",
			domainerror.ErrRecurringNotInBudget,
		)
	}
	return r, nil
}
