package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording an
// expense or income transaction. Amount is a positive magnitude; the sign is
// derived from the type.
type CreateTransactionRequest struct {
	AccountID  string       `json:"account_id" binding:"required"`
	CategoryID *string      `json:"category_id,omitempty"`
	PayeeName  string       `json:"payee_name,omitempty" binding:"omitempty,max=255"`
	Amount     string       `json:"amount" binding:"required"`
	Type       string       `json:"type" binding:"required,oneof=expense income"`
	Date       string       `json:"date" binding:"required"`
	Cleared    bool         `json:"cleared,omitempty"`
	Memo       string       `json:"memo,omitempty" binding:"omitempty,max=500"`
	Splits     []SplitEntry `json:"splits,omitempty"`
}

// SplitEntry represents one split line of a transaction.
type SplitEntry struct {
	CategoryID string `json:"category_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

// CreateTransferRequest represents the request body for recording a transfer
// between two accounts.
type CreateTransferRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required"`
	ToAccountID   string `json:"to_account_id" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Cleared       bool   `json:"cleared,omitempty"`
	Memo          string `json:"memo,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request body for transaction
// update.
type UpdateTransactionRequest struct {
	AccountID     *string      `json:"account_id,omitempty"`
	CategoryID    *string      `json:"category_id,omitempty"`
	ClearCategory bool         `json:"clear_category,omitempty"`
	Amount        *string      `json:"amount,omitempty"`
	Date          *string      `json:"date,omitempty"`
	Memo          *string      `json:"memo,omitempty" binding:"omitempty,max=500"`
	Splits        []SplitEntry `json:"splits,omitempty"`
}

// SplitResponse represents a split line in API responses.
type SplitResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Amount     string `json:"amount"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string          `json:"id"`
	BudgetID       string          `json:"budget_id"`
	AccountID      string          `json:"account_id"`
	CategoryID     *string         `json:"category_id,omitempty"`
	PayeeID        *string         `json:"payee_id,omitempty"`
	RecurringID    *string         `json:"recurring_id,omitempty"`
	TransferPairID *string         `json:"transfer_pair_id,omitempty"`
	Amount         string          `json:"amount"`
	Type           string          `json:"type"`
	Date           string          `json:"date"`
	Cleared        bool            `json:"cleared"`
	Memo           string          `json:"memo"`
	Splits         []SplitResponse `json:"splits,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API
// responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// TransferResponse represents both legs of a recorded transfer.
type TransferResponse struct {
	Outflow TransactionResponse `json:"outflow"`
	Inflow  TransactionResponse `json:"inflow"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:        t.ID.String(),
		BudgetID:  t.BudgetID.String(),
		AccountID: t.AccountID.String(),
		Amount:    t.Amount.String(),
		Type:      string(t.Type),
		Date:      t.Date.Format("2006-01-02"),
		Cleared:   t.Cleared,
		Memo:      t.Memo,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	response.CategoryID = uuidString(t.CategoryID)
	response.PayeeID = uuidString(t.PayeeID)
	response.RecurringID = uuidString(t.RecurringID)
	response.TransferPairID = uuidString(t.TransferPairID)

	for _, s := range t.Splits {
		response.Splits = append(response.Splits, SplitResponse{
			ID:         s.ID.String(),
			CategoryID: s.CategoryID.String(),
			Amount:     s.Amount.String(),
		})
	}

	return response
}

// ToTransactionListResponse converts a TransactionListResult to a
// TransactionListResponse.
func ToTransactionListResponse(result *adapter.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, t := range result.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
