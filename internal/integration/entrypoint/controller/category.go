package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/usecase/category"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// CategoryController handles category group and category endpoints.
type CategoryController struct {
	createGroupUseCase       *category.CreateGroupUseCase
	updateGroupUseCase       *category.UpdateGroupUseCase
	deleteGroupUseCase       *category.DeleteGroupUseCase
	reorderGroupsUseCase     *category.ReorderGroupsUseCase
	listGroupsUseCase        *category.ListGroupsUseCase
	createCategoryUseCase    *category.CreateCategoryUseCase
	updateCategoryUseCase    *category.UpdateCategoryUseCase
	deleteCategoryUseCase    *category.DeleteCategoryUseCase
	reorderCategoriesUseCase *category.ReorderCategoriesUseCase
	saveProjectionsUseCase   *category.SaveProjectionsUseCase
	clearProjectionsUseCase  *category.ClearProjectionsUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createGroupUseCase *category.CreateGroupUseCase,
	updateGroupUseCase *category.UpdateGroupUseCase,
	deleteGroupUseCase *category.DeleteGroupUseCase,
	reorderGroupsUseCase *category.ReorderGroupsUseCase,
	listGroupsUseCase *category.ListGroupsUseCase,
	createCategoryUseCase *category.CreateCategoryUseCase,
	updateCategoryUseCase *category.UpdateCategoryUseCase,
	deleteCategoryUseCase *category.DeleteCategoryUseCase,
	reorderCategoriesUseCase *category.ReorderCategoriesUseCase,
	saveProjectionsUseCase *category.SaveProjectionsUseCase,
	clearProjectionsUseCase *category.ClearProjectionsUseCase,
) *CategoryController {
	return &CategoryController{
		createGroupUseCase:       createGroupUseCase,
		updateGroupUseCase:       updateGroupUseCase,
		deleteGroupUseCase:       deleteGroupUseCase,
		reorderGroupsUseCase:     reorderGroupsUseCase,
		listGroupsUseCase:        listGroupsUseCase,
		createCategoryUseCase:    createCategoryUseCase,
		updateCategoryUseCase:    updateCategoryUseCase,
		deleteCategoryUseCase:    deleteCategoryUseCase,
		reorderCategoriesUseCase: reorderCategoriesUseCase,
		saveProjectionsUseCase:   saveProjectionsUseCase,
		clearProjectionsUseCase:  clearProjectionsUseCase,
	}
}

// CreateGroup handles POST /budgets/:budgetId/groups requests.
func (c *CategoryController) CreateGroup(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createGroupUseCase.Execute(ctx.Request.Context(), category.CreateGroupInput{
		BudgetID: budgetID,
		Name:     req.Name,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group))
}

// ListGroups handles GET /budgets/:budgetId/groups requests.
func (c *CategoryController) ListGroups(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	groups, err := c.listGroupsUseCase.Execute(ctx.Request.Context(), budgetID)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupListResponse(groups))
}

// UpdateGroup handles PATCH /budgets/:budgetId/groups/:groupId requests.
func (c *CategoryController) UpdateGroup(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "groupId")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateGroupUseCase.Execute(ctx.Request.Context(), category.UpdateGroupInput{
		BudgetID: budgetID,
		GroupID:  groupID,
		Name:     req.Name,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(output.Group))
}

// DeleteGroup handles DELETE /budgets/:budgetId/groups/:groupId requests.
func (c *CategoryController) DeleteGroup(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "groupId")
	if !ok {
		return
	}

	if err := c.deleteGroupUseCase.Execute(ctx.Request.Context(), budgetID, groupID); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ReorderGroups handles PUT /budgets/:budgetId/groups/reorder requests.
func (c *CategoryController) ReorderGroups(ctx *gin.Context) {
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

	orderedIDs, ok := parseUUIDList(ctx, req.OrderedIDs, "group ID")
	if !ok {
		return
	}

	err := c.reorderGroupsUseCase.Execute(ctx.Request.Context(), category.ReorderGroupsInput{
		BudgetID:   budgetID,
		OrderedIDs: orderedIDs,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateCategory handles POST /budgets/:budgetId/categories requests.
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	groupID, ok := parseUUIDField(ctx, req.GroupID, "group ID")
	if !ok {
		return
	}

	input := category.CreateCategoryInput{
		BudgetID: budgetID,
		GroupID:  groupID,
		Name:     req.Name,
		Icon:     req.Icon,
	}
	if req.DefaultAmount != "" {
		amount, ok := parseAmount(ctx, req.DefaultAmount)
		if !ok {
			return
		}
		input.DefaultAmount = amount
	}

	output, err := c.createCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// UpdateCategory handles PATCH /budgets/:budgetId/categories/:categoryId
// requests.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDParam(ctx, "categoryId")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := category.UpdateCategoryInput{
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Name:       req.Name,
		Icon:       req.Icon,
		IsHidden:   req.IsHidden,
	}
	amount, ok := parseOptionalAmount(ctx, req.DefaultAmount)
	if !ok {
		return
	}
	input.DefaultAmount = amount

	groupID, ok := parseOptionalUUIDField(ctx, req.GroupID, "group ID")
	if !ok {
		return
	}
	input.GroupID = groupID

	output, err := c.updateCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// DeleteCategory handles DELETE /budgets/:budgetId/categories/:categoryId
// requests.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDParam(ctx, "categoryId")
	if !ok {
		return
	}

	if err := c.deleteCategoryUseCase.Execute(ctx.Request.Context(), budgetID, categoryID); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ReorderCategories handles PUT
// /budgets/:budgetId/groups/:groupId/categories/reorder requests.
func (c *CategoryController) ReorderCategories(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(ctx, "groupId")
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

	orderedIDs, ok := parseUUIDList(ctx, req.OrderedIDs, "category ID")
	if !ok {
		return
	}

	err := c.reorderCategoriesUseCase.Execute(ctx.Request.Context(), category.ReorderCategoriesInput{
		BudgetID:   budgetID,
		GroupID:    groupID,
		OrderedIDs: orderedIDs,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SaveProjections handles PUT
// /budgets/:budgetId/categories/:categoryId/projections requests.
func (c *CategoryController) SaveProjections(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDParam(ctx, "categoryId")
	if !ok {
		return
	}

	var req dto.SaveProjectionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	projections := make([]*decimal.Decimal, len(req.Projections))
	for i, p := range req.Projections {
		if p == nil {
			continue
		}
		amount, ok := parseAmount(ctx, *p)
		if !ok {
			return
		}
		projections[i] = &amount
	}

	output, err := c.saveProjectionsUseCase.Execute(ctx.Request.Context(), category.SaveProjectionsInput{
		BudgetID:    budgetID,
		CategoryID:  categoryID,
		Projections: projections,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// ClearProjections handles DELETE
// /budgets/:budgetId/categories/:categoryId/projections requests.
func (c *CategoryController) ClearProjections(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDParam(ctx, "categoryId")
	if !ok {
		return
	}

	if err := c.clearProjectionsUseCase.Execute(ctx.Request.Context(), budgetID, categoryID); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError handles category errors and returns appropriate HTTP
// responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(categoryErr.Code), dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status
// codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeCategoryGroupNotFound,
		domainerror.ErrCodeCategoryGroupNotInBudget:
		return http.StatusNotFound
	case domainerror.ErrCodeForeignCategoryIDs:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
