package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/application/usecase/transaction"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase           *transaction.ListTransactionsUseCase
	recordUseCase         *transaction.RecordTransactionUseCase
	recordSplitUseCase    *transaction.RecordSplitTransactionUseCase
	recordTransferUseCase *transaction.RecordTransferUseCase
	updateUseCase         *transaction.UpdateTransactionUseCase
	deleteUseCase         *transaction.DeleteTransactionUseCase
	toggleClearedUseCase  *transaction.ToggleClearedUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	recordUseCase *transaction.RecordTransactionUseCase,
	recordSplitUseCase *transaction.RecordSplitTransactionUseCase,
	recordTransferUseCase *transaction.RecordTransferUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	toggleClearedUseCase *transaction.ToggleClearedUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:           listUseCase,
		recordUseCase:         recordUseCase,
		recordSplitUseCase:    recordSplitUseCase,
		recordTransferUseCase: recordTransferUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		toggleClearedUseCase:  toggleClearedUseCase,
	}
}

// List handles GET /budgets/:budgetId/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{BudgetID: budgetID}

	if accountIDStr := ctx.Query("accountId"); accountIDStr != "" {
		accountID, ok := parseUUIDField(ctx, accountIDStr, "account ID")
		if !ok {
			return
		}
		input.Filter.AccountID = &accountID
	}
	if categoryIDStr := ctx.Query("categoryId"); categoryIDStr != "" {
		categoryID, ok := parseUUIDField(ctx, categoryIDStr, "category ID")
		if !ok {
			return
		}
		input.Filter.CategoryID = &categoryID
	}
	if payeeIDStr := ctx.Query("payeeId"); payeeIDStr != "" {
		payeeID, ok := parseUUIDField(ctx, payeeIDStr, "payee ID")
		if !ok {
			return
		}
		input.Filter.PayeeID = &payeeID
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, ok := parseDateField(ctx, startDateStr)
		if !ok {
			return
		}
		input.Filter.StartDate = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, ok := parseDateField(ctx, endDateStr)
		if !ok {
			return
		}
		input.Filter.EndDate = &endDate
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		transactionType := entity.TransactionType(typeStr)
		input.Filter.Type = &transactionType
	}
	if clearedStr := ctx.Query("cleared"); clearedStr != "" {
		cleared := clearedStr == "true"
		input.Filter.Cleared = &cleared
	}
	input.Filter.RecurringOnly = ctx.Query("recurringOnly") == "true"
	input.Filter.Search = ctx.Query("search")

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Pagination.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Pagination.Limit = limit
		}
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(result))
}

// Create handles POST /budgets/:budgetId/transactions requests. A request
// with splits records a split transaction; one without records a direct one.
func (c *TransactionController) Create(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
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
	date, ok := parseDateField(ctx, req.Date)
	if !ok {
		return
	}

	if len(req.Splits) > 0 {
		splits := make([]transaction.SplitInput, len(req.Splits))
		for i, s := range req.Splits {
			splitCategoryID, ok := parseUUIDField(ctx, s.CategoryID, "split category ID")
			if !ok {
				return
			}
			splitAmount, ok := parseAmount(ctx, s.Amount)
			if !ok {
				return
			}
			splits[i] = transaction.SplitInput{
				CategoryID: splitCategoryID,
				Amount:     splitAmount,
			}
		}

		output, err := c.recordSplitUseCase.Execute(ctx.Request.Context(), transaction.RecordSplitTransactionInput{
			BudgetID:  budgetID,
			AccountID: accountID,
			PayeeName: req.PayeeName,
			Amount:    amount,
			Type:      entity.TransactionType(req.Type),
			Date:      date,
			Cleared:   req.Cleared,
			Memo:      req.Memo,
			Splits:    splits,
		})
		if err != nil {
			c.handleTransactionError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
		return
	}

	categoryID, ok := parseOptionalUUIDField(ctx, req.CategoryID, "category ID")
	if !ok {
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), transaction.RecordTransactionInput{
		BudgetID:   budgetID,
		AccountID:  accountID,
		CategoryID: categoryID,
		PayeeName:  req.PayeeName,
		Amount:     amount,
		Type:       entity.TransactionType(req.Type),
		Date:       date,
		Cleared:    req.Cleared,
		Memo:       req.Memo,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// CreateTransfer handles POST /budgets/:budgetId/transactions/transfer
// requests.
func (c *TransactionController) CreateTransfer(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	fromAccountID, ok := parseUUIDField(ctx, req.FromAccountID, "source account ID")
	if !ok {
		return
	}
	toAccountID, ok := parseUUIDField(ctx, req.ToAccountID, "destination account ID")
	if !ok {
		return
	}
	amount, ok := parseAmount(ctx, req.Amount)
	if !ok {
		return
	}
	date, ok := parseDateField(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.recordTransferUseCase.Execute(ctx.Request.Context(), transaction.RecordTransferInput{
		BudgetID:      budgetID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Date:          date,
		Cleared:       req.Cleared,
		Memo:          req.Memo,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TransferResponse{
		Outflow: dto.ToTransactionResponse(output.Outflow),
		Inflow:  dto.ToTransactionResponse(output.Inflow),
	})
}

// Update handles PATCH /budgets/:budgetId/transactions/:transactionId
// requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	transactionID, ok := parseUUIDParam(ctx, "transactionId")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		BudgetID:      budgetID,
		TransactionID: transactionID,
		ClearCategory: req.ClearCategory,
		Memo:          req.Memo,
	}

	accountID, ok := parseOptionalUUIDField(ctx, req.AccountID, "account ID")
	if !ok {
		return
	}
	input.AccountID = accountID

	categoryID, ok := parseOptionalUUIDField(ctx, req.CategoryID, "category ID")
	if !ok {
		return
	}
	input.CategoryID = categoryID

	amount, ok := parseOptionalAmount(ctx, req.Amount)
	if !ok {
		return
	}
	input.Amount = amount

	if req.Date != nil {
		date, ok := parseDateField(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	for _, s := range req.Splits {
		splitCategoryID, ok := parseUUIDField(ctx, s.CategoryID, "split category ID")
		if !ok {
			return
		}
		splitAmount, ok := parseAmount(ctx, s.Amount)
		if !ok {
			return
		}
		input.Splits = append(input.Splits, transaction.SplitInput{
			CategoryID: splitCategoryID,
			Amount:     splitAmount,
		})
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /budgets/:budgetId/transactions/:transactionId
// requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	transactionID, ok := parseUUIDParam(ctx, "transactionId")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetID, transactionID); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleCleared handles POST
// /budgets/:budgetId/transactions/:transactionId/toggle-cleared requests.
func (c *TransactionController) ToggleCleared(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	transactionID, ok := parseUUIDParam(ctx, "transactionId")
	if !ok {
		return
	}

	output, err := c.toggleClearedUseCase.Execute(ctx.Request.Context(), budgetID, transactionID)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// handleTransactionError handles transaction errors and returns appropriate
// HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(transactionErr.Code), dto.ErrorResponse{
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

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTransactionNotInBudget,
		domainerror.ErrCodeTxnAccountNotFound,
		domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
