// Package dependency wires repositories, use cases and controllers into a
// ready-to-serve router. All dependencies flow through the injector; there
// are no package-level singletons, so tests can build fully isolated
// instances against their own database and cache.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/config"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/account"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/book"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/bootstrap"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/budget"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/category"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/ledger"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/statistics"
	"github.com/Avaria395/SmartExpenseTracker/internal/infra/server/router"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/controller"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence"
)

// Injector holds the fully wired application graph.
type Injector struct {
	Router       *router.Router
	SeedDefaults *bootstrap.SeedDefaultsUseCase
}

// New wires the application graph on top of the given database connection
// and statistics cache. Location is the calendar used for all (year, month)
// derivations; nil falls back to the process-local zone.
func New(db *gorm.DB, statsCache adapter.StatsCache, cacheTTL time.Duration, loc *time.Location, dbHealthChecker func() bool) *Injector {
	if loc == nil {
		loc = time.Local
	}

	// Repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db, loc)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	bookRepo := persistence.NewBookRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Ledger use cases
	recordUseCase := ledger.NewRecordTransactionUseCase(ledgerRepo, bookRepo, statsCache)
	getTransactionUseCase := ledger.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := ledger.NewListTransactionsUseCase(transactionRepo, loc)
	updateTransactionUseCase := ledger.NewUpdateTransactionUseCase(transactionRepo, statsCache)
	deleteTransactionUseCase := ledger.NewDeleteTransactionUseCase(transactionRepo, ledgerRepo, statsCache)
	recalculateUseCase := ledger.NewRecalculateUseCase(ledgerRepo, statsCache)

	// Account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	setBalanceUseCase := account.NewSetAccountBalanceUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Budget use cases
	setTotalBudgetUseCase := budget.NewSetTotalBudgetUseCase(budgetRepo, statsCache)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, statsCache)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, statsCache)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, statsCache)
	getRemainingBudgetUseCase := budget.NewGetRemainingBudgetUseCase(budgetRepo)
	updateBudgetSpentUseCase := budget.NewUpdateBudgetSpentUseCase(budgetRepo, statsCache)

	// Category and book use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	listBooksUseCase := book.NewListBooksUseCase(bookRepo)
	getDefaultBookUseCase := book.NewGetDefaultBookUseCase(bookRepo)
	createBookUseCase := book.NewCreateBookUseCase(bookRepo)
	updateBookUseCase := book.NewUpdateBookUseCase(bookRepo)

	// Statistics use cases
	todayUseCase := statistics.NewGetTodayStatsUseCase(transactionRepo, loc)
	monthlyUseCase := statistics.NewGetMonthlyStatisticsUseCase(transactionRepo, loc)
	yearlyUseCase := statistics.NewGetYearlyStatisticsUseCase(transactionRepo, loc)
	breakdownUseCase := statistics.NewGetCategoryBreakdownUseCase(transactionRepo, loc)
	totalsUseCase := statistics.NewGetPeriodTotalsUseCase(transactionRepo)
	assetsUseCase := statistics.NewGetAssetOverviewUseCase(accountRepo)
	widgetUseCase := statistics.NewGetWidgetSummaryUseCase(transactionRepo, budgetRepo, statsCache, cacheTTL, loc)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	transactionController := controller.NewTransactionController(
		recordUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		recalculateUseCase,
	)
	accountController := controller.NewAccountController(
		createAccountUseCase,
		getAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		setBalanceUseCase,
		deleteAccountUseCase,
	)
	budgetController := controller.NewBudgetController(
		setTotalBudgetUseCase,
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		getRemainingBudgetUseCase,
		updateBudgetSpentUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	bookController := controller.NewBookController(
		listBooksUseCase,
		getDefaultBookUseCase,
		createBookUseCase,
		updateBookUseCase,
	)
	statisticsController := controller.NewStatisticsController(
		todayUseCase,
		monthlyUseCase,
		yearlyUseCase,
		breakdownUseCase,
		totalsUseCase,
		assetsUseCase,
		widgetUseCase,
	)

	return &Injector{
		Router: router.NewRouter(
			healthController,
			transactionController,
			accountController,
			budgetController,
			categoryController,
			bookController,
			statisticsController,
		),
		SeedDefaults: bootstrap.NewSeedDefaultsUseCase(bookRepo, categoryRepo, accountRepo),
	}
}

// NewFromConfig wires the graph using configuration values.
func NewFromConfig(db *gorm.DB, statsCache adapter.StatsCache, cfg *config.Config, dbHealthChecker func() bool) *Injector {
	return New(db, statsCache, cfg.Cache.TTL, time.Local, dbHealthChecker)
}
