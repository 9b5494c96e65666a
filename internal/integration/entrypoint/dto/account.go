package dto

import (
	"time"

	"github.com/gkeele21/family-budget/internal/application/usecase/account"
	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=255"`
	Type            string `json:"type" binding:"required,oneof=checking savings credit_card cash"`
	StartingBalance string `json:"starting_balance,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Type            *string `json:"type,omitempty" binding:"omitempty,oneof=checking savings credit_card cash"`
	StartingBalance *string `json:"starting_balance,omitempty"`
	IsClosed        *bool   `json:"is_closed,omitempty"`
}

// ReorderRequest represents the request body for reordering a list of rows.
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID              string    `json:"id"`
	BudgetID        string    `json:"budget_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	StartingBalance string    `json:"starting_balance"`
	SortOrder       int       `json:"sort_order"`
	IsClosed        bool      `json:"is_closed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AccountWithBalancesResponse represents an account with computed balances.
type AccountWithBalancesResponse struct {
	AccountResponse
	Balance        string `json:"balance"`
	ClearedBalance string `json:"cleared_balance"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountWithBalancesResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse
// DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              a.ID.String(),
		BudgetID:        a.BudgetID.String(),
		Name:            a.Name,
		Type:            string(a.Type),
		StartingBalance: a.StartingBalance.String(),
		SortOrder:       a.SortOrder,
		IsClosed:        a.IsClosed,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ToAccountListResponse converts a ListAccountsOutput to an
// AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountWithBalancesResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = AccountWithBalancesResponse{
			AccountResponse: ToAccountResponse(a.Account),
			Balance:         a.Balance.String(),
			ClearedBalance:  a.ClearedBalance.String(),
		}
	}
	return AccountListResponse{Accounts: accounts}
}
