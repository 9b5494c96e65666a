package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/application/usecase/budget"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// BudgetController handles budget and month view endpoints.
type BudgetController struct {
	createUseCase            *budget.CreateBudgetUseCase
	updateUseCase            *budget.UpdateBudgetUseCase
	listUseCase              *budget.ListBudgetsUseCase
	deleteUseCase            *budget.DeleteBudgetUseCase
	snapshotUseCase          *budget.GetBudgetSnapshotUseCase
	setBudgetedAmountUseCase *budget.SetBudgetedAmountUseCase
	moveMoneyUseCase         *budget.MoveMoneyUseCase
	copyPreviousMonthUseCase *budget.CopyPreviousMonthUseCase
	applyDefaultsUseCase     *budget.ApplyDefaultsUseCase
	applyProjectionUseCase   *budget.ApplyProjectionUseCase
	clearBudgetUseCase       *budget.ClearBudgetUseCase
	averageSpentUseCase      *budget.AverageSpentUseCase
	dashboardUseCase         *budget.GetDashboardUseCase
	categoryDetailUseCase    *budget.CategoryMonthDetailUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	snapshotUseCase *budget.GetBudgetSnapshotUseCase,
	setBudgetedAmountUseCase *budget.SetBudgetedAmountUseCase,
	moveMoneyUseCase *budget.MoveMoneyUseCase,
	copyPreviousMonthUseCase *budget.CopyPreviousMonthUseCase,
	applyDefaultsUseCase *budget.ApplyDefaultsUseCase,
	applyProjectionUseCase *budget.ApplyProjectionUseCase,
	clearBudgetUseCase *budget.ClearBudgetUseCase,
	averageSpentUseCase *budget.AverageSpentUseCase,
	dashboardUseCase *budget.GetDashboardUseCase,
	categoryDetailUseCase *budget.CategoryMonthDetailUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:            createUseCase,
		updateUseCase:            updateUseCase,
		listUseCase:              listUseCase,
		deleteUseCase:            deleteUseCase,
		snapshotUseCase:          snapshotUseCase,
		setBudgetedAmountUseCase: setBudgetedAmountUseCase,
		moveMoneyUseCase:         moveMoneyUseCase,
		copyPreviousMonthUseCase: copyPreviousMonthUseCase,
		applyDefaultsUseCase:     applyDefaultsUseCase,
		applyProjectionUseCase:   applyProjectionUseCase,
		clearBudgetUseCase:       clearBudgetUseCase,
		averageSpentUseCase:      averageSpentUseCase,
		dashboardUseCase:         dashboardUseCase,
		categoryDetailUseCase:    categoryDetailUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.CreateBudgetInput{Name: req.Name}

	if req.StartMonth != nil {
		startMonth, err := valueobject.ParseYearMonth(*req.StartMonth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start month format. Use YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.StartMonth = &startMonth
	}

	if req.DefaultMonthlyIncome != "" {
		income, ok := parseAmount(ctx, req.DefaultMonthlyIncome)
		if !ok {
			return
		}
		input.DefaultMonthlyIncome = income
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	budgets, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	responses := make([]dto.BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = dto.ToBudgetResponse(b)
	}
	ctx.JSON(http.StatusOK, gin.H{"budgets": responses})
}

// Update handles PATCH /budgets/:budgetId requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:        budgetID,
		Name:            req.Name,
		ClearStartMonth: req.ClearStartMonth,
	}

	if req.StartMonth != nil {
		startMonth, err := valueobject.ParseYearMonth(*req.StartMonth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start month format. Use YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.StartMonth = &startMonth
	}

	income, ok := parseOptionalAmount(ctx, req.DefaultMonthlyIncome)
	if !ok {
		return
	}
	input.DefaultMonthlyIncome = income

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:budgetId requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetID); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Snapshot handles GET /budgets/:budgetId/months/:month requests.
func (c *BudgetController) Snapshot(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), budget.GetBudgetSnapshotInput{
		BudgetID: budgetID,
		Month:    month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSnapshotResponse(output))
}

// SetBudgetedAmount handles PUT /budgets/:budgetId/months/:month/allocations
// requests.
func (c *BudgetController) SetBudgetedAmount(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	var req dto.SetBudgetedAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	categoryID, ok := parseUUIDField(ctx, req.CategoryID, "category ID")
	if !ok {
		return
	}
	amount, ok := parseAmount(ctx, req.Amount)
	if !ok {
		return
	}

	output, err := c.setBudgetedAmountUseCase.Execute(ctx.Request.Context(), budget.SetBudgetedAmountInput{
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Month:      month,
		Amount:     amount,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAllocationResponse(output.Allocation))
}

// MoveMoney handles POST /budgets/:budgetId/months/:month/move requests.
func (c *BudgetController) MoveMoney(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	var req dto.MoveMoneyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	fromCategoryID, ok := parseUUIDField(ctx, req.FromCategoryID, "source category ID")
	if !ok {
		return
	}
	toCategoryID, ok := parseUUIDField(ctx, req.ToCategoryID, "destination category ID")
	if !ok {
		return
	}
	amount, ok := parseAmount(ctx, req.Amount)
	if !ok {
		return
	}

	err := c.moveMoneyUseCase.Execute(ctx.Request.Context(), budget.MoveMoneyInput{
		BudgetID:       budgetID,
		FromCategoryID: fromCategoryID,
		ToCategoryID:   toCategoryID,
		Month:          month,
		Amount:         amount,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CopyPreviousMonth handles POST
// /budgets/:budgetId/months/:month/copy-previous requests.
func (c *BudgetController) CopyPreviousMonth(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	output, err := c.copyPreviousMonthUseCase.Execute(ctx.Request.Context(), budget.CopyPreviousMonthInput{
		BudgetID: budgetID,
		Month:    month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CopiedCountResponse{Copied: output.Copied})
}

// ApplyDefaults handles POST /budgets/:budgetId/months/:month/apply-defaults
// requests.
func (c *BudgetController) ApplyDefaults(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	output, err := c.applyDefaultsUseCase.Execute(ctx.Request.Context(), budget.ApplyDefaultsInput{
		BudgetID: budgetID,
		Month:    month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppliedCountResponse{Applied: output.Applied})
}

// ApplyProjection handles POST
// /budgets/:budgetId/months/:month/apply-projection/:index requests.
func (c *BudgetController) ApplyProjection(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid projection index",
			Code:  string(domainerror.ErrCodeInvalidProjectionIndex),
		})
		return
	}

	output, err := c.applyProjectionUseCase.Execute(ctx.Request.Context(), budget.ApplyProjectionInput{
		BudgetID:        budgetID,
		Month:           month,
		ProjectionIndex: index,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppliedCountResponse{Applied: output.Applied})
}

// ClearMonth handles DELETE /budgets/:budgetId/months/:month/allocations
// requests.
func (c *BudgetController) ClearMonth(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	err := c.clearBudgetUseCase.Execute(ctx.Request.Context(), budget.ClearBudgetInput{
		BudgetID: budgetID,
		Month:    month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AverageSpent handles GET /budgets/:budgetId/months/:month/average-spent
// requests.
func (c *BudgetController) AverageSpent(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}

	output, err := c.averageSpentUseCase.Execute(ctx.Request.Context(), budget.AverageSpentInput{
		BudgetID: budgetID,
		Month:    month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	averages := make(map[string]string, len(output.Averages))
	for id, avg := range output.Averages {
		averages[id.String()] = avg.String()
	}
	ctx.JSON(http.StatusOK, dto.AverageSpentResponse{Averages: averages})
}

// Dashboard handles GET /budgets/:budgetId/dashboard requests. The month
// defaults to the current one when the query parameter is absent.
func (c *BudgetController) Dashboard(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	now := time.Now().UTC()
	month := valueobject.NewYearMonth(now.Year(), now.Month())
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := valueobject.ParseYearMonth(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format. Use YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		month = parsed
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), budget.GetDashboardInput{
		BudgetID: budgetID,
		Month:    month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// CategoryMonthDetail handles GET
// /budgets/:budgetId/months/:month/categories/:categoryId/transactions
// requests.
func (c *BudgetController) CategoryMonthDetail(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	month, ok := parseMonthParam(ctx, "month")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDParam(ctx, "categoryId")
	if !ok {
		return
	}

	output, err := c.categoryDetailUseCase.Execute(ctx.Request.Context(), budget.CategoryMonthDetailInput{
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Month:      month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryMonthDetailResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP
// responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeCategoryNotInBudget:
		return http.StatusNotFound
	case domainerror.ErrCodeAllocationConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
