package dto

import (
	"time"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for creating a
// recurring transaction definition.
type CreateRecurringRequest struct {
	AccountID  string  `json:"account_id" binding:"required"`
	CategoryID *string `json:"category_id,omitempty"`
	PayeeID    *string `json:"payee_id,omitempty"`
	Amount     string  `json:"amount" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=expense income"`
	Frequency  string  `json:"frequency" binding:"required,oneof=daily weekly biweekly monthly yearly"`
	NextDate   string  `json:"next_date" binding:"required"`
	EndDate    *string `json:"end_date,omitempty"`
	Memo       string  `json:"memo,omitempty" binding:"omitempty,max=500"`
}

// UpdateRecurringRequest represents the request body for updating a
// recurring transaction definition.
type UpdateRecurringRequest struct {
	Amount     *string `json:"amount,omitempty"`
	Frequency  *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly biweekly monthly yearly"`
	NextDate   *string `json:"next_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	ClearEnd   bool    `json:"clear_end,omitempty"`
	Memo       *string `json:"memo,omitempty" binding:"omitempty,max=500"`
	CategoryID *string `json:"category_id,omitempty"`
}

// RecurringResponse represents a recurring definition in API responses.
type RecurringResponse struct {
	ID         string    `json:"id"`
	BudgetID   string    `json:"budget_id"`
	AccountID  string    `json:"account_id"`
	CategoryID *string   `json:"category_id,omitempty"`
	PayeeID    *string   `json:"payee_id,omitempty"`
	Amount     string    `json:"amount"`
	Type       string    `json:"type"`
	Frequency  string    `json:"frequency"`
	NextDate   string    `json:"next_date"`
	EndDate    *string   `json:"end_date,omitempty"`
	Memo       string    `json:"memo"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecurringListResponse represents the response for listing recurring
// definitions.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
}

// MaterializeResponse reports how many transactions a materializer run
// created.
type MaterializeResponse struct {
	Materialized int `json:"materialized"`
}

// ToRecurringResponse converts a domain RecurringTransaction entity to a
// RecurringResponse DTO.
func ToRecurringResponse(r *entity.RecurringTransaction) RecurringResponse {
	response := RecurringResponse{
		ID:        r.ID.String(),
		BudgetID:  r.BudgetID.String(),
		AccountID: r.AccountID.String(),
		Amount:    r.Amount.String(),
		Type:      string(r.Type),
		Frequency: string(r.Frequency),
		NextDate:  r.NextDate.Format("2006-01-02"),
		Memo:      r.Memo,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	response.CategoryID = uuidString(r.CategoryID)
	response.PayeeID = uuidString(r.PayeeID)
	if r.EndDate != nil {
		endDate := r.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}
	return response
}

// ToRecurringListResponse converts recurring entities to a
// RecurringListResponse.
func ToRecurringListResponse(recurring []*entity.RecurringTransaction) RecurringListResponse {
	response := RecurringListResponse{Recurring: make([]RecurringResponse, len(recurring))}
	for i, r := range recurring {
		response.Recurring[i] = ToRecurringResponse(r)
	}
	return response
}
