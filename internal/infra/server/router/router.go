// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mycash/backend/internal/integration/entrypoint/controller"
	"github.com/mycash/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	creditCardController  *controller.CreditCardController
	bankAccountController *controller.BankAccountController
	memberController      *controller.MemberController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	dataController        *controller.DataController
	rateLimiter           *middleware.RateLimiter
	metrics               *middleware.Metrics
	metricsPath           string
}

// Controllers groups the controllers served under /api/v1.
type Controllers struct {
	Health      *controller.HealthController
	Transaction *controller.TransactionController
	Goal        *controller.GoalController
	CreditCard  *controller.CreditCardController
	BankAccount *controller.BankAccountController
	Member      *controller.MemberController
	Category    *controller.CategoryController
	Dashboard   *controller.DashboardController
	Data        *controller.DataController
}

// NewRouter creates a new router instance with all dependencies.
// A nil metrics disables the metrics endpoint.
func NewRouter(
	controllers Controllers,
	rateLimiter *middleware.RateLimiter,
	metrics *middleware.Metrics,
	metricsPath string,
) *Router {
	return &Router{
		healthController:      controllers.Health,
		transactionController: controllers.Transaction,
		goalController:        controllers.Goal,
		creditCardController:  controllers.CreditCard,
		bankAccountController: controllers.BankAccount,
		memberController:      controllers.Member,
		categoryController:    controllers.Category,
		dashboardController:   controllers.Dashboard,
		dataController:        controllers.Data,
		rateLimiter:           rateLimiter,
		metrics:               metrics,
		metricsPath:           metricsPath,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metrics != nil {
		r.engine.GET(r.metricsPath, gin.WrapH(r.metrics.Handler()))
	}
}

// setupAPIRoutes configures the main API routes. Mutating routes are rate limited.
func (r *Router) setupAPIRoutes() {
	limit := r.rateLimiter.Middleware()

	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.GET("/pending", r.transactionController.Pending)
			transactions.POST("", limit, r.transactionController.Create)
			transactions.PATCH("/:id", limit, r.transactionController.Update)
			transactions.DELETE("/:id", limit, r.transactionController.Delete)
			transactions.POST("/:id/pay", limit, r.transactionController.MarkPaid)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", limit, r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", limit, r.goalController.Update)
			goals.DELETE("/:id", limit, r.goalController.Delete)
		}

		creditCards := v1.Group("/credit-cards")
		{
			creditCards.GET("", r.creditCardController.List)
			creditCards.POST("", limit, r.creditCardController.Create)
			creditCards.GET("/:id", r.creditCardController.Get)
			creditCards.PATCH("/:id", limit, r.creditCardController.Update)
			creditCards.DELETE("/:id", limit, r.creditCardController.Delete)
		}

		bankAccounts := v1.Group("/bank-accounts")
		{
			bankAccounts.GET("", r.bankAccountController.List)
			bankAccounts.POST("", limit, r.bankAccountController.Create)
			bankAccounts.PATCH("/:id", limit, r.bankAccountController.Update)
			bankAccounts.DELETE("/:id", limit, r.bankAccountController.Delete)
		}

		members := v1.Group("/members")
		{
			members.GET("", r.memberController.List)
			members.POST("", limit, r.memberController.Create)
			members.PATCH("/:id", limit, r.memberController.Update)
			members.DELETE("/:id", limit, r.memberController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", limit, r.categoryController.Create)
			categories.PATCH("/:id", limit, r.categoryController.Update)
			categories.DELETE("/:id", limit, r.categoryController.Delete)
		}

		filters := v1.Group("/filters")
		{
			filters.GET("", r.dashboardController.GetFilters)
			filters.PATCH("", limit, r.dashboardController.UpdateFilters)
			filters.DELETE("", limit, r.dashboardController.ResetFilters)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
			dashboard.GET("/expenses-by-category", r.dashboardController.ExpensesByCategory)
			dashboard.GET("/flow-chart", r.dashboardController.FlowChart)
			dashboard.GET("/category-percentage", r.dashboardController.CategoryPercentage)
		}

		data := v1.Group("/data")
		{
			data.GET("/export", r.dataController.Export)
			data.DELETE("", limit, r.dataController.Clear)
			data.POST("/seed", limit, r.dataController.Seed)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
