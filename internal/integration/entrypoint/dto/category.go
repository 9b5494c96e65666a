package dto

import (
	"time"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// CreateGroupRequest represents the request body for category group creation.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateGroupRequest represents the request body for category group update.
type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	GroupID       string `json:"group_id" binding:"required"`
	Name          string `json:"name" binding:"required,min=1,max=255"`
	Icon          string `json:"icon,omitempty" binding:"omitempty,max=50"`
	DefaultAmount string `json:"default_amount,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Icon          *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	DefaultAmount *string `json:"default_amount,omitempty"`
	IsHidden      *bool   `json:"is_hidden,omitempty"`
	GroupID       *string `json:"group_id,omitempty"`
}

// SaveProjectionsRequest represents the request body for saving projection
// amounts. Null entries keep the corresponding slot empty.
type SaveProjectionsRequest struct {
	Projections []*string `json:"projections" binding:"required,max=3"`
}

// GroupResponse represents a category group in API responses.
type GroupResponse struct {
	ID         string             `json:"id"`
	BudgetID   string             `json:"budget_id"`
	Name       string             `json:"name"`
	SortOrder  int                `json:"sort_order"`
	Categories []CategoryResponse `json:"categories,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID            string    `json:"id"`
	GroupID       string    `json:"group_id"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon"`
	DefaultAmount string    `json:"default_amount"`
	Projections   []*string `json:"projections,omitempty"`
	SortOrder     int       `json:"sort_order"`
	IsHidden      bool      `json:"is_hidden"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GroupListResponse represents the response for listing category groups.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse
// DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:            c.ID.String(),
		GroupID:       c.GroupID.String(),
		Name:          c.Name,
		Icon:          c.Icon,
		DefaultAmount: c.DefaultAmount.String(),
		SortOrder:     c.SortOrder,
		IsHidden:      c.IsHidden,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if len(c.Projections) > 0 {
		response.Projections = make([]*string, len(c.Projections))
		for i, p := range c.Projections {
			if p != nil {
				amount := p.String()
				response.Projections[i] = &amount
			}
		}
	}
	return response
}

// ToGroupResponse converts a domain CategoryGroup entity to a GroupResponse
// DTO.
func ToGroupResponse(g *entity.CategoryGroup) GroupResponse {
	response := GroupResponse{
		ID:        g.ID.String(),
		BudgetID:  g.BudgetID.String(),
		Name:      g.Name,
		SortOrder: g.SortOrder,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	for _, c := range g.Categories {
		response.Categories = append(response.Categories, ToCategoryResponse(c))
	}
	return response
}

// ToGroupListResponse converts category group entities to a
// GroupListResponse.
func ToGroupListResponse(groups []*entity.CategoryGroup) GroupListResponse {
	response := GroupListResponse{Groups: make([]GroupResponse, len(groups))}
	for i, g := range groups {
		response.Groups[i] = ToGroupResponse(g)
	}
	return response
}
