// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	accountController     *controller.AccountController
	budgetController      *controller.BudgetController
	categoryController    *controller.CategoryController
	bookController        *controller.BookController
	statisticsController  *controller.StatisticsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	accountController *controller.AccountController,
	budgetController *controller.BudgetController,
	categoryController *controller.CategoryController,
	bookController *controller.BookController,
	statisticsController *controller.StatisticsController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		accountController:     accountController,
		budgetController:      budgetController,
		categoryController:    categoryController,
		bookController:        bookController,
		statisticsController:  statisticsController,
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

	r.engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/recalculate", r.transactionController.Recalculate)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.GET("/:id", r.accountController.Get)
				accounts.PUT("/:id", r.accountController.Update)
				accounts.PUT("/:id/balance", r.accountController.SetBalance)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/remaining", r.budgetController.GetRemaining)
				budgets.PUT("/total", r.budgetController.SetTotal)
				budgets.PUT("/spent", r.budgetController.UpdateSpent)
				budgets.PUT("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/:id", r.categoryController.Get)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.bookController != nil {
			books := v1.Group("/books")
			{
				books.GET("", r.bookController.List)
				books.GET("/default", r.bookController.GetDefault)
				books.POST("", r.bookController.Create)
				books.PUT("/:id", r.bookController.Update)
			}
		}

		if r.statisticsController != nil {
			stats := v1.Group("/statistics")
			{
				stats.GET("/today", r.statisticsController.Today)
				stats.GET("/monthly", r.statisticsController.Monthly)
				stats.GET("/yearly", r.statisticsController.Yearly)
				stats.GET("/categories", r.statisticsController.Categories)
				stats.GET("/totals", r.statisticsController.Totals)
				stats.GET("/assets", r.statisticsController.Assets)
			}

			v1.GET("/widget/summary", r.statisticsController.Widget)
		}
	}
}
