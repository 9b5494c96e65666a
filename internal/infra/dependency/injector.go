// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/gkeele21/family-budget/config"
	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/application/usecase/account"
	"github.com/gkeele21/family-budget/internal/application/usecase/budget"
	"github.com/gkeele21/family-budget/internal/application/usecase/category"
	"github.com/gkeele21/family-budget/internal/application/usecase/payee"
	"github.com/gkeele21/family-budget/internal/application/usecase/recurring"
	"github.com/gkeele21/family-budget/internal/application/usecase/transaction"
	"github.com/gkeele21/family-budget/internal/application/usecase/voice"
	"github.com/gkeele21/family-budget/internal/infra/server/router"
	"github.com/gkeele21/family-budget/internal/integration/adapters"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/controller"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/middleware"
	"github.com/gkeele21/family-budget/internal/integration/persistence"
	"github.com/gkeele21/family-budget/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
	Worker *scheduler.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories
	budgetRepo := persistence.NewBudgetRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	monthlyBudgetRepo := persistence.NewMonthlyBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)
	payeeRepo := persistence.NewPayeeRepository(db)

	// Create adapters. Without an API key the parser stays nil and the voice
	// endpoints report the parser as unavailable.
	var voiceParser adapter.VoiceTransactionParser
	if gemini := adapters.NewGeminiVoiceParser(cfg.Voice.GeminiAPIKey, cfg.Voice.Model); gemini.IsAvailable() {
		voiceParser = gemini
	}

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	snapshotUseCase := budget.NewGetBudgetSnapshotUseCase(budgetRepo, accountRepo, categoryRepo, monthlyBudgetRepo, transactionRepo)
	setBudgetedAmountUseCase := budget.NewSetBudgetedAmountUseCase(categoryRepo, monthlyBudgetRepo)
	moveMoneyUseCase := budget.NewMoveMoneyUseCase(categoryRepo, monthlyBudgetRepo)
	copyPreviousMonthUseCase := budget.NewCopyPreviousMonthUseCase(monthlyBudgetRepo)
	applyDefaultsUseCase := budget.NewApplyDefaultsUseCase(categoryRepo, monthlyBudgetRepo)
	applyProjectionUseCase := budget.NewApplyProjectionUseCase(categoryRepo, monthlyBudgetRepo)
	clearBudgetUseCase := budget.NewClearBudgetUseCase(monthlyBudgetRepo)
	averageSpentUseCase := budget.NewAverageSpentUseCase(categoryRepo, transactionRepo)
	dashboardUseCase := budget.NewGetDashboardUseCase(budgetRepo, accountRepo, monthlyBudgetRepo, transactionRepo)
	categoryDetailUseCase := budget.NewCategoryMonthDetailUseCase(categoryRepo, transactionRepo)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, transactionRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)
	reorderAccountsUseCase := account.NewReorderAccountsUseCase(accountRepo)

	// Create category use cases
	createGroupUseCase := category.NewCreateGroupUseCase(categoryRepo)
	updateGroupUseCase := category.NewUpdateGroupUseCase(categoryRepo)
	deleteGroupUseCase := category.NewDeleteGroupUseCase(categoryRepo)
	reorderGroupsUseCase := category.NewReorderGroupsUseCase(categoryRepo)
	listGroupsUseCase := category.NewListGroupsUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(categoryRepo)
	saveProjectionsUseCase := category.NewSaveProjectionsUseCase(categoryRepo)
	clearProjectionsUseCase := category.NewClearProjectionsUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(transactionRepo, accountRepo, categoryRepo, payeeRepo)
	recordSplitTransactionUseCase := transaction.NewRecordSplitTransactionUseCase(transactionRepo, accountRepo, categoryRepo, payeeRepo)
	recordTransferUseCase := transaction.NewRecordTransferUseCase(transactionRepo, accountRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	toggleClearedUseCase := transaction.NewToggleClearedUseCase(transactionRepo, accountRepo)

	// Create recurring use cases
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo, accountRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringUseCase(recurringRepo)
	toggleActiveUseCase := recurring.NewToggleActiveUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)
	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo)
	materializeDueUseCase := recurring.NewMaterializeDueUseCase(recurringRepo, accountRepo)

	// Create payee use cases
	listPayeesUseCase := payee.NewListPayeesUseCase(payeeRepo)
	updatePayeeUseCase := payee.NewUpdatePayeeUseCase(payeeRepo, categoryRepo)
	deletePayeeUseCase := payee.NewDeletePayeeUseCase(payeeRepo)

	// Create voice use cases
	previewTranscriptUseCase := voice.NewPreviewTranscriptUseCase(voiceParser, accountRepo, categoryRepo, payeeRepo)
	recordTranscriptUseCase := voice.NewRecordTranscriptUseCase(previewTranscriptUseCase, recordTransactionUseCase)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		updateBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
		snapshotUseCase,
		setBudgetedAmountUseCase,
		moveMoneyUseCase,
		copyPreviousMonthUseCase,
		applyDefaultsUseCase,
		applyProjectionUseCase,
		clearBudgetUseCase,
		averageSpentUseCase,
		dashboardUseCase,
		categoryDetailUseCase,
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		reorderAccountsUseCase,
	)

	categoryController := controller.NewCategoryController(
		createGroupUseCase,
		updateGroupUseCase,
		deleteGroupUseCase,
		reorderGroupsUseCase,
		listGroupsUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoriesUseCase,
		saveProjectionsUseCase,
		clearProjectionsUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		recordTransactionUseCase,
		recordSplitTransactionUseCase,
		recordTransferUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		toggleClearedUseCase,
	)

	recurringController := controller.NewRecurringController(
		createRecurringUseCase,
		updateRecurringUseCase,
		toggleActiveUseCase,
		deleteRecurringUseCase,
		listRecurringUseCase,
		materializeDueUseCase,
	)

	payeeController := controller.NewPayeeController(
		listPayeesUseCase,
		updatePayeeUseCase,
		deletePayeeUseCase,
	)

	voiceController := controller.NewVoiceController(
		previewTranscriptUseCase,
		recordTranscriptUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		budgetController,
		accountController,
		categoryController,
		transactionController,
		recurringController,
		payeeController,
		voiceController,
		rateLimiter,
	)

	// Create background worker
	worker := scheduler.NewWorker(materializeDueUseCase, scheduler.WorkerConfig{
		PollInterval: cfg.Scheduler.PollInterval,
	})

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
		Worker: worker,
	}
}
