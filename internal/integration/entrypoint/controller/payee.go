package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/application/usecase/payee"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// PayeeController handles payee endpoints.
type PayeeController struct {
	listUseCase   *payee.ListPayeesUseCase
	updateUseCase *payee.UpdatePayeeUseCase
	deleteUseCase *payee.DeletePayeeUseCase
}

// NewPayeeController creates a new payee controller instance.
func NewPayeeController(
	listUseCase *payee.ListPayeesUseCase,
	updateUseCase *payee.UpdatePayeeUseCase,
	deleteUseCase *payee.DeletePayeeUseCase,
) *PayeeController {
	return &PayeeController{
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets/:budgetId/payees requests.
func (c *PayeeController) List(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	payees, err := c.listUseCase.Execute(ctx.Request.Context(), budgetID)
	if err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayeeListResponse(payees))
}

// Update handles PATCH /budgets/:budgetId/payees/:payeeId requests.
func (c *PayeeController) Update(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	payeeID, ok := parseUUIDParam(ctx, "payeeId")
	if !ok {
		return
	}

	var req dto.UpdatePayeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := payee.UpdatePayeeInput{
		BudgetID:             budgetID,
		PayeeID:              payeeID,
		Name:                 req.Name,
		ClearDefaultCategory: req.ClearDefaultCategory,
	}

	defaultCategoryID, ok := parseOptionalUUIDField(ctx, req.DefaultCategoryID, "default category ID")
	if !ok {
		return
	}
	input.DefaultCategoryID = defaultCategoryID

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayeeResponse(output.Payee))
}

// Delete handles DELETE /budgets/:budgetId/payees/:payeeId requests.
func (c *PayeeController) Delete(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	payeeID, ok := parseUUIDParam(ctx, "payeeId")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetID, payeeID); err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePayeeError handles payee errors and returns appropriate HTTP
// responses.
func (c *PayeeController) handlePayeeError(ctx *gin.Context, err error) {
	var payeeErr *domainerror.PayeeError
	if errors.As(err, &payeeErr) {
		statusCode := http.StatusBadRequest
		if payeeErr.Code == domainerror.ErrCodePayeeNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: payeeErr.Message,
			Code:  string(payeeErr.Code),
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
