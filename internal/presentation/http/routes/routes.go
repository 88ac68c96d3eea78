package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/config"
	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/handler"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/middleware"
	"github.com/restrodesk/restrodesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Table    *handler.TableHandler
	HoldBill *handler.HoldBillHandler
	Bill     *handler.BillHandler
	Report   *handler.ReportHandler
	Expense  *handler.ExpenseHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	registerProductRoutes(protected, h)
	registerTableRoutes(protected, h)
	registerHoldBillRoutes(protected, h, deps)
	registerBillRoutes(protected, h, deps)
	registerReportRoutes(protected, h)
	registerExpenseRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.PATCH("/:id/stock", h.Product.UpdateStock)
		products.POST("/:id/image", h.Product.UploadImage)
		products.GET("/:id/image", h.Product.GetImage)
	}
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.POST("", h.Table.Create)
		tables.POST("/bulk", h.Table.CreateBulk)
		tables.PATCH("/:tableId/status", h.Table.UpdateStatus)
		tables.DELETE("/:tableId", h.Table.Delete)
		tables.GET("/:tableId/active-bill", h.Bill.ActiveByTable)
		tables.GET("/:tableId/hold-bills", h.HoldBill.ListByTable)
	}
}

func registerHoldBillRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	holdBills := protected.Group("/hold-bills")
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})
	{
		holdBills.GET("", h.HoldBill.List)
		// Staging uses the idempotency middleware so a retried submit
		// doesn't double an order.
		holdBills.POST("", idempotency, h.HoldBill.Create)
		holdBills.GET("/table/:tableId", h.HoldBill.ListByTable)
		holdBills.GET("/:id", h.HoldBill.Get)
		holdBills.PUT("/:id", h.HoldBill.Update)
		holdBills.POST("/:id/resume", h.HoldBill.Resume)
		holdBills.DELETE("/:id", h.HoldBill.Delete)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := protected.Group("/bills")
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})
	{
		bills.GET("", h.Bill.List)
		bills.GET("/summary", h.Bill.Summary)
		// Finalization draws a bill number; replaying a retried save must
		// not draw a second one. The path parameter is the table id.
		bills.POST("/:id/save", idempotency, h.Bill.Save)
		bills.GET("/:id", h.Bill.Get)
		bills.PATCH("/:id", h.Bill.Update)
		bills.PATCH("/:id/payment-method", h.Bill.UpdatePaymentMethod)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/item-sales", h.Report.ItemSales)
		reports.GET("/overview", h.Report.Overview)
		reports.GET("/kot-status", h.Report.KitchenStatus)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/stats", h.Expense.Stats)
		expenses.GET("/monthly", h.Expense.Monthly)
		expenses.POST("/delete-range", h.Expense.DeleteRange)
		expenses.PUT("/:expenseId", h.Expense.Update)
		expenses.DELETE("/:expenseId", h.Expense.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/bills/:id", h.Printer.PrintBill)
		printerGroup.POST("/kot/:id", h.Printer.PrintKitchenTicket)
	}
}
