package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// AccountWithBalances pairs an account with its derived balances.
type AccountWithBalances struct {
	Account        *entity.Account
	Balance        decimal.Decimal
	ClearedBalance decimal.Decimal
}

// ListAccountsOutput represents the output of the account list query.
type ListAccountsOutput struct {
	Accounts []AccountWithBalances
}

// ListAccountsUseCase lists the budget's accounts with derived balances.
type ListAccountsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the list query.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, budgetID uuid.UUID) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.transactionRepo.FindByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	out := &ListAccountsOutput{Accounts: make([]AccountWithBalances, 0, len(accounts))}
	for _, a := range accounts {
		out.Accounts = append(out.Accounts, AccountWithBalances{
			Account:        a,
			Balance:        Balance(a, transactions),
			ClearedBalance: ClearedBalance(a, transactions),
		})
	}
	return out, nil
}
