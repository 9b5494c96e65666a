package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/application/usecase/recurring"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring transaction definition endpoints.
type RecurringController struct {
	createUseCase       *recurring.CreateRecurringUseCase
	updateUseCase       *recurring.UpdateRecurringUseCase
	toggleActiveUseCase *recurring.ToggleActiveUseCase
	deleteUseCase       *recurring.DeleteRecurringUseCase
	listUseCase         *recurring.ListRecurringUseCase
	materializeUseCase  *recurring.MaterializeDueUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	createUseCase *recurring.CreateRecurringUseCase,
	updateUseCase *recurring.UpdateRecurringUseCase,
	toggleActiveUseCase *recurring.ToggleActiveUseCase,
	deleteUseCase *recurring.DeleteRecurringUseCase,
	listUseCase *recurring.ListRecurringUseCase,
	materializeUseCase *recurring.MaterializeDueUseCase,
) *RecurringController {
	return &RecurringController{
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		toggleActiveUseCase: toggleActiveUseCase,
		deleteUseCase:       deleteUseCase,
		listUseCase:         listUseCase,
		materializeUseCase:  materializeUseCase,
	}
}

// Create handles POST /budgets/:budgetId/recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	accountID, ok := parseUUIDField(ctx, req.AccountID, "account ID")
	if !ok {
		return
	}
	amount, ok := parseAmount(ctx, req.Amount)
	if !ok {
		return
	}
	nextDate, ok := parseDateField(ctx, req.NextDate)
	if !ok {
		return
	}

	input := recurring.CreateRecurringInput{
		BudgetID:  budgetID,
		AccountID: accountID,
		Amount:    amount,
		Type:      entity.TransactionType(req.Type),
		Frequency: entity.Frequency(req.Frequency),
		NextDate:  nextDate,
		Memo:      req.Memo,
	}

	categoryID, ok := parseOptionalUUIDField(ctx, req.CategoryID, "category ID")
	if !ok {
		return
	}
	input.CategoryID = categoryID

	payeeID, ok := parseOptionalUUIDField(ctx, req.PayeeID, "payee ID")
	if !ok {
		return
	}
	input.PayeeID = payeeID

	if req.EndDate != nil {
		endDate, ok := parseDateField(ctx, *req.EndDate)
		if !ok {
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Recurring))
}

// List handles GET /budgets/:budgetId/recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	recurrings, err := c.listUseCase.Execute(ctx.Request.Context(), budgetID)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(recurrings))
}

// Update handles PATCH /budgets/:budgetId/recurring/:recurringId requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	recurringID, ok := parseUUIDParam(ctx, "recurringId")
	if !ok {
		return
	}

	var req dto.UpdateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := recurring.UpdateRecurringInput{
		BudgetID:    budgetID,
		RecurringID: recurringID,
		ClearEnd:    req.ClearEnd,
		Memo:        req.Memo,
	}

	amount, ok := parseOptionalAmount(ctx, req.Amount)
	if !ok {
		return
	}
	input.Amount = amount

	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.NextDate != nil {
		nextDate, ok := parseDateField(ctx, *req.NextDate)
		if !ok {
			return
		}
		input.NextDate = &nextDate
	}
	if req.EndDate != nil {
		endDate, ok := parseDateField(ctx, *req.EndDate)
		if !ok {
			return
		}
		input.EndDate = &endDate
	}

	categoryID, ok := parseOptionalUUIDField(ctx, req.CategoryID, "category ID")
	if !ok {
		return
	}
	input.CategoryID = categoryID

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Recurring))
}

// ToggleActive handles POST
// /budgets/:budgetId/recurring/:recurringId/toggle-active requests.
func (c *RecurringController) ToggleActive(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	recurringID, ok := parseUUIDParam(ctx, "recurringId")
	if !ok {
		return
	}

	updated, err := c.toggleActiveUseCase.Execute(ctx.Request.Context(), budgetID, recurringID)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(updated))
}

// Delete handles DELETE /budgets/:budgetId/recurring/:recurringId requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	recurringID, ok := parseUUIDParam(ctx, "recurringId")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetID, recurringID); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Materialize handles POST /recurring/materialize requests. It runs the same
// pass the scheduler runs, immediately. An optional as_of query parameter
// pins the sweep date, which keeps test runs off the wall clock.
func (c *RecurringController) Materialize(ctx *gin.Context) {
	asOf := time.Now().UTC()
	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		parsed, ok := parseDateField(ctx, asOfStr)
		if !ok {
			return
		}
		asOf = parsed
	}

	output, err := c.materializeUseCase.Execute(ctx.Request.Context(), asOf)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MaterializeResponse{Materialized: output.Materialized})
}

// handleRecurringError handles recurring errors and returns appropriate HTTP
// responses.
func (c *RecurringController) handleRecurringError(ctx *gin.Context, err error) {
	var recurringErr *domainerror.RecurringError
	if errors.As(err, &recurringErr) {
		ctx.JSON(c.getStatusCodeForRecurringError(recurringErr.Code), dto.ErrorResponse{
			Error: recurringErr.Message,
			Code:  string(recurringErr.Code),
		})
		return
	}

	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// getStatusCodeForRecurringError maps recurring error codes to HTTP status
// codes.
func (c *RecurringController) getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound, domainerror.ErrCodeRecurringNotInBudget:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
