package dto

import (
	"time"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// UpdatePayeeRequest represents the request body for payee update.
type UpdatePayeeRequest struct {
	Name                 *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	DefaultCategoryID    *string `json:"default_category_id,omitempty"`
	ClearDefaultCategory bool    `json:"clear_default_category,omitempty"`
}

// PayeeResponse represents a payee in API responses.
type PayeeResponse struct {
	ID                string    `json:"id"`
	BudgetID          string    `json:"budget_id"`
	Name              string    `json:"name"`
	DefaultCategoryID *string   `json:"default_category_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PayeeListResponse represents the response for listing payees.
type PayeeListResponse struct {
	Payees []PayeeResponse `json:"payees"`
}

// ToPayeeResponse converts a domain Payee entity to a PayeeResponse DTO.
func ToPayeeResponse(p *entity.Payee) PayeeResponse {
	return PayeeResponse{
		ID:                p.ID.String(),
		BudgetID:          p.BudgetID.String(),
		Name:              p.Name,
		DefaultCategoryID: uuidString(p.DefaultCategoryID),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPayeeListResponse converts payee entities to a PayeeListResponse.
func ToPayeeListResponse(payees []*entity.Payee) PayeeListResponse {
	response := PayeeListResponse{Payees: make([]PayeeResponse, len(payees))}
	for i, p := range payees {
		response.Payees[i] = ToPayeeResponse(p)
	}
	return response
}
