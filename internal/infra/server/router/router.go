// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/integration/entrypoint/controller"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	budgetController      *controller.BudgetController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	recurringController   *controller.RecurringController
	payeeController       *controller.PayeeController
	voiceController       *controller.VoiceController
	rateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	budgetController *controller.BudgetController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	payeeController *controller.PayeeController,
	voiceController *controller.VoiceController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		budgetController:      budgetController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		recurringController:   recurringController,
		payeeController:       payeeController,
		voiceController:       voiceController,
		rateLimiter:           rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	// Materializer trigger is not budget scoped; it sweeps every budget.
	v1.POST("/recurring/materialize", r.recurringController.Materialize)

	v1.POST("/budgets", r.budgetController.Create)
	v1.GET("/budgets", r.budgetController.List)

	budgets := v1.Group("/budgets/:budgetId")
	{
		budgets.PATCH("", r.budgetController.Update)
		budgets.DELETE("", r.budgetController.Delete)
		budgets.GET("/dashboard", r.budgetController.Dashboard)

		months := budgets.Group("/months/:month")
		{
			months.GET("", r.budgetController.Snapshot)
			months.PUT("/allocations", r.budgetController.SetBudgetedAmount)
			months.DELETE("/allocations", r.budgetController.ClearMonth)
			months.POST("/move", r.budgetController.MoveMoney)
			months.POST("/copy-previous", r.budgetController.CopyPreviousMonth)
			months.POST("/apply-defaults", r.budgetController.ApplyDefaults)
			months.POST("/apply-projection/:index", r.budgetController.ApplyProjection)
			months.GET("/average-spent", r.budgetController.AverageSpent)
			months.GET("/categories/:categoryId/transactions", r.budgetController.CategoryMonthDetail)
		}

		accounts := budgets.Group("/accounts")
		{
			accounts.POST("", r.accountController.Create)
			accounts.GET("", r.accountController.List)
			accounts.PUT("/reorder", r.accountController.Reorder)
			accounts.PATCH("/:accountId", r.accountController.Update)
			accounts.DELETE("/:accountId", r.accountController.Delete)
		}

		groups := budgets.Group("/groups")
		{
			groups.POST("", r.categoryController.CreateGroup)
			groups.GET("", r.categoryController.ListGroups)
			groups.PUT("/reorder", r.categoryController.ReorderGroups)
			groups.PATCH("/:groupId", r.categoryController.UpdateGroup)
			groups.DELETE("/:groupId", r.categoryController.DeleteGroup)
			groups.PUT("/:groupId/categories/reorder", r.categoryController.ReorderCategories)
		}

		categories := budgets.Group("/categories")
		{
			categories.POST("", r.categoryController.CreateCategory)
			categories.PATCH("/:categoryId", r.categoryController.UpdateCategory)
			categories.DELETE("/:categoryId", r.categoryController.DeleteCategory)
			categories.PUT("/:categoryId/projections", r.categoryController.SaveProjections)
			categories.DELETE("/:categoryId/projections", r.categoryController.ClearProjections)
		}

		transactions := budgets.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.POST("/transfer", r.transactionController.CreateTransfer)
			transactions.PATCH("/:transactionId", r.transactionController.Update)
			transactions.DELETE("/:transactionId", r.transactionController.Delete)
			transactions.POST("/:transactionId/toggle-cleared", r.transactionController.ToggleCleared)
		}

		recurring := budgets.Group("/recurring")
		{
			recurring.POST("", r.recurringController.Create)
			recurring.GET("", r.recurringController.List)
			recurring.PATCH("/:recurringId", r.recurringController.Update)
			recurring.DELETE("/:recurringId", r.recurringController.Delete)
			recurring.POST("/:recurringId/toggle-active", r.recurringController.ToggleActive)
		}

		payees := budgets.Group("/payees")
		{
			payees.GET("", r.payeeController.List)
			payees.PATCH("/:payeeId", r.payeeController.Update)
			payees.DELETE("/:payeeId", r.payeeController.Delete)
		}

		// Voice endpoints answer 503 when no parser is configured, so they
		// are always registered.
		if r.voiceController != nil {
			voice := budgets.Group("/voice")
			{
				voice.POST("/preview", r.voiceController.Preview)
				voice.POST("/record", r.voiceController.Record)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
