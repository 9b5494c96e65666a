package dto

import (
	"time"

	"github.com/gkeele21/family-budget/internal/application/usecase/budget"
	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name                 string  `json:"name" binding:"required,min=1,max=255"`
	StartMonth           *string `json:"start_month,omitempty"`
	DefaultMonthlyIncome string  `json:"default_monthly_income,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name                 *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	StartMonth           *string `json:"start_month,omitempty"`
	ClearStartMonth      bool    `json:"clear_start_month,omitempty"`
	DefaultMonthlyIncome *string `json:"default_monthly_income,omitempty"`
}

// SetBudgetedAmountRequest represents the request body for setting an
// envelope allocation.
type SetBudgetedAmountRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

// MoveMoneyRequest represents the request body for moving budgeted money
// between two categories.
type MoveMoneyRequest struct {
	FromCategoryID string `json:"from_category_id" binding:"required"`
	ToCategoryID   string `json:"to_category_id" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	StartMonth           *string   `json:"start_month,omitempty"`
	DefaultMonthlyIncome string    `json:"default_monthly_income"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CategorySnapshotResponse represents one category row of a month view.
type CategorySnapshotResponse struct {
	Category  CategoryResponse `json:"category"`
	Budgeted  string           `json:"budgeted"`
	Spent     string           `json:"spent"`
	Available string           `json:"available"`
}

// GroupSnapshotResponse represents one group section of a month view.
type GroupSnapshotResponse struct {
	Group      GroupResponse              `json:"group"`
	Categories []CategorySnapshotResponse `json:"categories"`
	Budgeted   string                     `json:"budgeted"`
	Spent      string                     `json:"spent"`
	Available  string                     `json:"available"`
}

// ReadyToAssignResponse represents the carry-forward figures of a month view.
type ReadyToAssignResponse struct {
	CarriedForward  string `json:"carried_forward"`
	ThisMonthIncome string `json:"this_month_income"`
	TotalBudgeted   string `json:"total_budgeted"`
	ToBudget        string `json:"to_budget"`
	IsFirstMonth    bool   `json:"is_first_month"`
}

// BudgetSnapshotResponse represents the full month view of a budget.
type BudgetSnapshotResponse struct {
	Budget         BudgetResponse          `json:"budget"`
	Month          string                  `json:"month"`
	EarliestMonth  string                  `json:"earliest_month"`
	Groups         []GroupSnapshotResponse `json:"groups"`
	TotalBudgeted  string                  `json:"total_budgeted"`
	TotalSpent     string                  `json:"total_spent"`
	TotalAvailable string                  `json:"total_available"`
	ReadyToAssign  ReadyToAssignResponse   `json:"ready_to_assign"`
}

// AllocationResponse represents an envelope allocation in API responses.
type AllocationResponse struct {
	ID             string `json:"id"`
	CategoryID     string `json:"category_id"`
	Month          string `json:"month"`
	BudgetedAmount string `json:"budgeted_amount"`
}

// AppliedCountResponse reports how many allocations a bulk action touched.
type AppliedCountResponse struct {
	Applied int `json:"applied"`
}

// CopiedCountResponse reports how many allocations were copied forward.
type CopiedCountResponse struct {
	Copied int `json:"copied"`
}

// AverageSpentResponse maps category IDs to monthly spending averages.
type AverageSpentResponse struct {
	Averages map[string]string `json:"averages"`
}

// DashboardAccountResponse represents an account with its derived balances
// on the dashboard.
type DashboardAccountResponse struct {
	Account        AccountResponse `json:"account"`
	Balance        string          `json:"balance"`
	ClearedBalance string          `json:"cleared_balance"`
}

// DashboardGroupResponse represents one account type section of the
// dashboard.
type DashboardGroupResponse struct {
	Type     string                     `json:"type"`
	Accounts []DashboardAccountResponse `json:"accounts"`
	Balance  string                     `json:"balance"`
}

// DashboardResponse represents the budget overview.
type DashboardResponse struct {
	Budget        BudgetResponse           `json:"budget"`
	Month         string                   `json:"month"`
	AccountGroups []DashboardGroupResponse `json:"account_groups"`
	TotalBalance  string                   `json:"total_balance"`
	ReadyToAssign ReadyToAssignResponse    `json:"ready_to_assign"`
}

// CategoryMonthEntryResponse represents one transaction's share of a
// category's monthly activity.
type CategoryMonthEntryResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Amount      string              `json:"amount"`
}

// CategoryMonthDetailResponse represents the activity behind one category
// cell of a month view.
type CategoryMonthDetailResponse struct {
	Category CategoryResponse             `json:"category"`
	Month    string                       `json:"month"`
	Entries  []CategoryMonthEntryResponse `json:"entries"`
	Total    string                       `json:"total"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:                   b.ID.String(),
		Name:                 b.Name,
		DefaultMonthlyIncome: b.DefaultMonthlyIncome.String(),
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
	if b.StartMonth != nil {
		startMonth := b.StartMonth.String()
		response.StartMonth = &startMonth
	}
	return response
}

// ToAllocationResponse converts a MonthlyBudget entity to an
// AllocationResponse DTO.
func ToAllocationResponse(a *entity.MonthlyBudget) AllocationResponse {
	return AllocationResponse{
		ID:             a.ID.String(),
		CategoryID:     a.CategoryID.String(),
		Month:          a.Month.String(),
		BudgetedAmount: a.BudgetedAmount.String(),
	}
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse.
func ToDashboardResponse(output *budget.GetDashboardOutput) DashboardResponse {
	groups := make([]DashboardGroupResponse, len(output.Groups))
	for i, g := range output.Groups {
		accounts := make([]DashboardAccountResponse, len(g.Accounts))
		for j, a := range g.Accounts {
			accounts[j] = DashboardAccountResponse{
				Account:        ToAccountResponse(a.Account),
				Balance:        a.Balance.String(),
				ClearedBalance: a.ClearedBalance.String(),
			}
		}
		groups[i] = DashboardGroupResponse{
			Type:     string(g.Type),
			Accounts: accounts,
			Balance:  g.Balance.String(),
		}
	}

	return DashboardResponse{
		Budget:        ToBudgetResponse(output.Budget),
		Month:         output.Month.String(),
		AccountGroups: groups,
		TotalBalance:  output.TotalBalance.String(),
		ReadyToAssign: ReadyToAssignResponse{
			CarriedForward:  output.ReadyToAssign.CarriedForward.String(),
			ThisMonthIncome: output.ReadyToAssign.ThisMonthIncome.String(),
			TotalBudgeted:   output.ReadyToAssign.TotalBudgeted.String(),
			ToBudget:        output.ReadyToAssign.ToBudget.String(),
			IsFirstMonth:    output.ReadyToAssign.IsFirstMonth,
		},
	}
}

// ToCategoryMonthDetailResponse converts a CategoryMonthDetailOutput to a
// CategoryMonthDetailResponse.
func ToCategoryMonthDetailResponse(output *budget.CategoryMonthDetailOutput) CategoryMonthDetailResponse {
	entries := make([]CategoryMonthEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = CategoryMonthEntryResponse{
			Transaction: ToTransactionResponse(e.Transaction),
			Amount:      e.Amount.String(),
		}
	}
	return CategoryMonthDetailResponse{
		Category: ToCategoryResponse(output.Category),
		Month:    output.Month.String(),
		Entries:  entries,
		Total:    output.Total.String(),
	}
}

// ToBudgetSnapshotResponse converts a GetBudgetSnapshotOutput to a
// BudgetSnapshotResponse.
func ToBudgetSnapshotResponse(output *budget.GetBudgetSnapshotOutput) BudgetSnapshotResponse {
	groups := make([]GroupSnapshotResponse, len(output.Groups))
	for i, g := range output.Groups {
		categories := make([]CategorySnapshotResponse, len(g.Categories))
		for j, c := range g.Categories {
			categories[j] = CategorySnapshotResponse{
				Category:  ToCategoryResponse(c.Category),
				Budgeted:  c.Budgeted.String(),
				Spent:     c.Spent.String(),
				Available: c.Available.String(),
			}
		}
		groups[i] = GroupSnapshotResponse{
			Group:      ToGroupResponse(g.Group),
			Categories: categories,
			Budgeted:   g.Budgeted.String(),
			Spent:      g.Spent.String(),
			Available:  g.Available.String(),
		}
	}

	return BudgetSnapshotResponse{
		Budget:         ToBudgetResponse(output.Budget),
		Month:          output.Month.String(),
		EarliestMonth:  output.EarliestMonth.String(),
		Groups:         groups,
		TotalBudgeted:  output.TotalBudgeted.String(),
		TotalSpent:     output.TotalSpent.String(),
		TotalAvailable: output.TotalAvailable.String(),
		ReadyToAssign: ReadyToAssignResponse{
			CarriedForward:  output.ReadyToAssign.CarriedForward.String(),
			ThisMonthIncome: output.ReadyToAssign.ThisMonthIncome.String(),
			TotalBudgeted:   output.ReadyToAssign.TotalBudgeted.String(),
			ToBudget:        output.ReadyToAssign.ToBudget.String(),
			IsFirstMonth:    output.ReadyToAssign.IsFirstMonth,
		},
	}
}
