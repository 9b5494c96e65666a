package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/application/usecase/account"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase  *account.CreateAccountUseCase
	listUseCase    *account.ListAccountsUseCase
	updateUseCase  *account.UpdateAccountUseCase
	deleteUseCase  *account.DeleteAccountUseCase
	reorderUseCase *account.ReorderAccountsUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	reorderUseCase *account.ReorderAccountsUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// Create handles POST /budgets/:budgetId/accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := account.CreateAccountInput{
		BudgetID: budgetID,
		Name:     req.Name,
		Type:     entity.AccountType(req.Type),
	}
	if req.StartingBalance != "" {
		balance, ok := parseAmount(ctx, req.StartingBalance)
		if !ok {
			return
		}
		input.StartingBalance = balance
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /budgets/:budgetId/accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budgetID)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Update handles PATCH /budgets/:budgetId/accounts/:accountId requests.
func (c *AccountController) Update(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	accountID, ok := parseUUIDParam(ctx, "accountId")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := account.UpdateAccountInput{
		BudgetID:  budgetID,
		AccountID: accountID,
		Name:      req.Name,
		IsClosed:  req.IsClosed,
	}
	if req.Type != nil {
		accountType := entity.AccountType(*req.Type)
		input.Type = &accountType
	}
	balance, ok := parseOptionalAmount(ctx, req.StartingBalance)
	if !ok {
		return
	}
	input.StartingBalance = balance

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /budgets/:budgetId/accounts/:accountId requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	accountID, ok := parseUUIDParam(ctx, "accountId")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetID, accountID); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /budgets/:budgetId/accounts/reorder requests.
func (c *AccountController) Reorder(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	orderedIDs, ok := parseUUIDList(ctx, req.OrderedIDs, "account ID")
	if !ok {
		return
	}

	err := c.reorderUseCase.Execute(ctx.Request.Context(), account.ReorderAccountsInput{
		BudgetID:   budgetID,
		OrderedIDs: orderedIDs,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles account errors and returns appropriate HTTP
// responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		ctx.JSON(c.getStatusCodeForAccountError(accountErr.Code), dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status
// codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound, domainerror.ErrCodeAccountNotInBudget:
		return http.StatusNotFound
	case domainerror.ErrCodeForeignReorderIDs:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
