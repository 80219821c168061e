// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/mycash/backend/config"
	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/application/usecase/bankaccount"
	"github.com/mycash/backend/internal/application/usecase/category"
	creditcard "github.com/mycash/backend/internal/application/usecase/credit_card"
	"github.com/mycash/backend/internal/application/usecase/dashboard"
	"github.com/mycash/backend/internal/application/usecase/data"
	"github.com/mycash/backend/internal/application/usecase/goal"
	"github.com/mycash/backend/internal/application/usecase/member"
	"github.com/mycash/backend/internal/application/usecase/transaction"
	"github.com/mycash/backend/internal/infra/server/router"
	"github.com/mycash/backend/internal/integration/entrypoint/controller"
	"github.com/mycash/backend/internal/integration/entrypoint/middleware"
	"github.com/mycash/backend/internal/integration/export"
	"github.com/mycash/backend/internal/integration/persistence"
	"github.com/mycash/backend/internal/integration/persistence/seed"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Store       *persistence.FinanceStore
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
	Reseed      *data.ReseedDataUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Extra store options are applied after the configured ones, so tests can
// replace the clock or the id generator.
func NewInjector(cfg *config.Config, storeOpts ...persistence.Option) *Injector {
	loc := cfg.Store.Location()

	// Create the store
	opts := append([]persistence.Option{
		persistence.WithLocation(loc),
		persistence.WithReferencePolicy(persistence.ReferencePolicy(cfg.Store.ReferencePolicy)),
	}, storeOpts...)
	store := persistence.NewFinanceStore(opts...)

	// Create adapters
	generator := seed.NewGenerator(cfg.Store.Seed)
	exporters := map[data.ExportFormat]adapter.SnapshotExporter{
		data.ExportFormatJSON: export.NewJSONExporter(store.Now),
		data.ExportFormatXLSX: export.NewXLSXExporter(),
	}

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(store, cfg.Store.PageSize)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(store)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(store)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(store)
	markPaidUseCase := transaction.NewMarkPaidUseCase(store)
	listPendingUseCase := transaction.NewListPendingUseCase(store)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(store)
	createGoalUseCase := goal.NewCreateGoalUseCase(store)
	getGoalUseCase := goal.NewGetGoalUseCase(store)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(store)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(store)

	// Create credit card use cases
	listCreditCardsUseCase := creditcard.NewListCreditCardsUseCase(store)
	createCreditCardUseCase := creditcard.NewCreateCreditCardUseCase(store)
	getCardDetailsUseCase := creditcard.NewGetCardDetailsUseCase(store)
	updateCreditCardUseCase := creditcard.NewUpdateCreditCardUseCase(store)
	deleteCreditCardUseCase := creditcard.NewDeleteCreditCardUseCase(store)

	// Create bank account use cases
	listBankAccountsUseCase := bankaccount.NewListBankAccountsUseCase(store)
	createBankAccountUseCase := bankaccount.NewCreateBankAccountUseCase(store)
	updateBankAccountUseCase := bankaccount.NewUpdateBankAccountUseCase(store)
	deleteBankAccountUseCase := bankaccount.NewDeleteBankAccountUseCase(store)

	// Create member use cases
	listMembersUseCase := member.NewListMembersUseCase(store)
	createMemberUseCase := member.NewCreateMemberUseCase(store)
	updateMemberUseCase := member.NewUpdateMemberUseCase(store)
	deleteMemberUseCase := member.NewDeleteMemberUseCase(store)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(store)
	createCategoryUseCase := category.NewCreateCategoryUseCase(store)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(store)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(store)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(store)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(store)
	flowChartUseCase := dashboard.NewGetFlowChartUseCase(store)
	percentageUseCase := dashboard.NewGetCategoryPercentageUseCase(store)
	getFiltersUseCase := dashboard.NewGetFiltersUseCase(store)
	updateFiltersUseCase := dashboard.NewUpdateFiltersUseCase(store)
	resetFiltersUseCase := dashboard.NewResetFiltersUseCase(store)

	// Create data use cases
	exportDataUseCase := data.NewExportDataUseCase(store, exporters)
	clearDataUseCase := data.NewClearDataUseCase(store)
	reseedDataUseCase := data.NewReseedDataUseCase(store, generator)

	storeCounts := func() map[string]int { return store.Snapshot().Counts() }

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(storeCounts, time.Now),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
			markPaidUseCase,
			listPendingUseCase,
			loc,
		),
		Goal: controller.NewGoalController(
			listGoalsUseCase,
			createGoalUseCase,
			getGoalUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			loc,
		),
		CreditCard: controller.NewCreditCardController(
			listCreditCardsUseCase,
			createCreditCardUseCase,
			getCardDetailsUseCase,
			updateCreditCardUseCase,
			deleteCreditCardUseCase,
		),
		BankAccount: controller.NewBankAccountController(
			listBankAccountsUseCase,
			createBankAccountUseCase,
			updateBankAccountUseCase,
			deleteBankAccountUseCase,
		),
		Member: controller.NewMemberController(
			listMembersUseCase,
			createMemberUseCase,
			updateMemberUseCase,
			deleteMemberUseCase,
		),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
		),
		Dashboard: controller.NewDashboardController(
			summaryUseCase,
			breakdownUseCase,
			flowChartUseCase,
			percentageUseCase,
			getFiltersUseCase,
			updateFiltersUseCase,
			resetFiltersUseCase,
			loc,
		),
		Data: controller.NewDataController(
			exportDataUseCase,
			clearDataUseCase,
			reseedDataUseCase,
		),
	}

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.Server)
	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics(storeCounts)
	}

	// Create router
	r := router.NewRouter(controllers, rateLimiter, metrics, cfg.Metrics.Path)

	return &Injector{
		Config:      cfg,
		Store:       store,
		Router:      r,
		RateLimiter: rateLimiter,
		Reseed:      reseedDataUseCase,
	}
}
