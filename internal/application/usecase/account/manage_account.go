package account

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	BudgetID        uuid.UUID
	Name            string
	Type            entity.AccountType
	StartingBalance decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation. The new account sorts after the
// budget's existing accounts.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if !entity.IsValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be checking, savings, credit_card or cash",
			domainerror.ErrInvalidAccountType,
		)
	}

	existing, err := uc.accountRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}
	a := entity.NewAccount(input.BudgetID, strings.TrimSpace(input.Name), input.Type, input.StartingBalance, len(existing))
	if err := uc.accountRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return &CreateAccountOutput{Account: a}, nil
}

// UpdateAccountInput represents the input for account updates. Nil pointers
// leave the corresponding field unchanged.
type UpdateAccountInput struct {
	BudgetID        uuid.UUID
	AccountID       uuid.UUID
	Name            *string
	Type            *entity.AccountType
	StartingBalance *decimal.Decimal
	IsClosed        *bool
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account updates. Closing an account never
// deletes or hides its historical transactions.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	a, err := findOwnedAccount(ctx, uc.accountRepo, input.BudgetID, input.AccountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		a.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		if !entity.IsValidAccountType(*input.Type) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountType,
				"account type must be checking, savings, credit_card or cash",
				domainerror.ErrInvalidAccountType,
			)
		}
		a.Type = *input.Type
	}
	if input.StartingBalance != nil {
		a.StartingBalance = *input.StartingBalance
	}
	if input.IsClosed != nil {
		a.IsClosed = *input.IsClosed
	}

	if err := uc.accountRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return &UpdateAccountOutput{Account: a}, nil
}

// DeleteAccountUseCase deletes an account and its transactions.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, budgetID, accountID uuid.UUID) error {
	if _, err := findOwnedAccount(ctx, uc.accountRepo, budgetID, accountID); err != nil {
		return err
	}
	return uc.accountRepo.Delete(ctx, accountID)
}

// findOwnedAccount resolves an account and checks budget ownership.
func findOwnedAccount(ctx context.Context, repo adapter.AccountRepository, budgetID, accountID uuid.UUID) (*entity.Account, error) {
	a, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if a.BudgetID != budgetID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotInBudget,
			"account does not belong to budget",
			domainerror.ErrAccountNotInBudget,
		)
	}
	return a, nil
}
