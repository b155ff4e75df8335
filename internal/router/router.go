package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/config"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/handler"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/middleware"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	crewRepo := repository.NewCrewRepository(db)
	productRepo := repository.NewProductRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	crewSvc := service.NewCrewService(crewRepo)
	catalogSvc := service.NewCatalogService(productRepo, txRepo, settingsRepo)
	journalSvc := service.NewJournalService(txRepo, crewRepo, productRepo)
	reportSvc := service.NewReportService(crewRepo, productRepo, txRepo, settingsRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	rolloverSvc := service.NewRolloverService(crewRepo, productRepo, txRepo, settingsRepo)
	backupSvc := service.NewBackupService(crewRepo, productRepo, txRepo, settingsRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	crewH := handler.NewCrewHandler(crewSvc)
	productsH := handler.NewProductsHandler(catalogSvc)
	transactionsH := handler.NewTransactionsHandler(journalSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	adminH := handler.NewAdminHandler(rolloverSvc, backupSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		crew := v1.Group("/crew")
		{
			crew.POST("", crewH.Create)
			crew.GET("", crewH.List)
			crew.GET("/:id", crewH.Get)
			crew.PUT("/:id", crewH.Update)
			crew.PATCH("/:id/active", crewH.SetActive)
			crew.DELETE("/:id", crewH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("", transactionsH.Checkout)
			transactions.GET("", transactionsH.List)
			transactions.PUT("/:id", transactionsH.Edit)
			transactions.DELETE("/:id", transactionsH.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/payroll", reportsH.Payroll)
			reports.GET("/inventory", reportsH.Inventory)
			reports.GET("/monthly", reportsH.Monthly)
			reports.GET("/representation", reportsH.Representation)
			reports.GET("/history", reportsH.History)
			reports.GET("/order-sheet", reportsH.OrderSheet)
			reports.GET("/workbook", reportsH.Workbook)
		}

		v1.GET("/dashboard/stats", reportsH.Dashboard)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)

		admin := v1.Group("/admin")
		{
			admin.POST("/close-month", adminH.CloseMonth)
			admin.POST("/hard-reset", adminH.HardReset)
			admin.GET("/backup", adminH.Backup)
			admin.POST("/restore", adminH.Restore)
		}
	}

	return r
}
