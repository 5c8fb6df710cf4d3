package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/config"
	"github.com/parvezislam45/inventory/internal/handler"
	"github.com/parvezislam45/inventory/internal/middleware"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/repository"
	"github.com/parvezislam45/inventory/internal/service"
	"github.com/parvezislam45/inventory/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine plus the
// stock service, which main also hands to the worker pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, service.StockService) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	shopRepo := repository.NewShopRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	stockRepo := repository.NewStockRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	brandSvc := service.NewBrandService(brandRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo, brandRepo)
	shopSvc := service.NewShopService(shopRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, shopRepo, productRepo)
	stockSvc := service.NewStockService(stockRepo, productRepo, rdb, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	brandH := handler.NewBrandHandler(brandSvc)
	categoryH := handler.NewCategoryHandler(categorySvc)
	productH := handler.NewProductHandler(productSvc, stockSvc)
	shopH := handler.NewShopHandler(shopSvc, invoiceSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	stockH := handler.NewStockHandler(stockSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// The frontend mounts the account endpoints at the root; /accounts/ is
	// kept as an alias for API clients.
	r.POST("/register/", authH.Register)
	r.POST("/login/", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/logout/", authH.Logout)

	accounts := r.Group("/accounts")
	{
		accounts.POST("/register/", authH.Register)
		accounts.POST("/login/", middleware.LoginRateLimiter(), authH.Login)
		accounts.POST("/refresh/", authH.Refresh)
	}

	// Protected routes. Reads are open to every authenticated role; writes
	// require admin.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireRole(model.RoleAdmin)
	api := r.Group("/", jwtMW)
	{
		// Catalog
		api.GET("/brand/", brandH.List)
		api.POST("/brand/", adminMW, brandH.Create)
		api.PUT("/brand/:id/", adminMW, brandH.Update)
		api.DELETE("/brand/:id/", adminMW, brandH.Delete)

		api.GET("/categories/", categoryH.List)
		api.POST("/categories/", adminMW, categoryH.Create)
		api.PUT("/categories/:id/", adminMW, categoryH.Update)
		api.DELETE("/categories/:id/", adminMW, categoryH.Delete)

		// The admin UI edits products with PATCH and deletes through the
		// /delete/ sub-path; PUT and plain DELETE stay as aliases.
		api.GET("/product/", productH.List)
		api.POST("/product/", adminMW, productH.Create)
		api.GET("/product/:id/", productH.Get)
		api.PATCH("/product/:id/", adminMW, productH.Update)
		api.PUT("/product/:id/", adminMW, productH.Update)
		api.DELETE("/product/:id/", adminMW, productH.Delete)
		api.DELETE("/product/:id/delete/", adminMW, productH.Delete)
		api.POST("/product/:id/restock/", adminMW, productH.Restock)

		// Shops
		api.GET("/shops/", shopH.List)
		api.POST("/shops/", adminMW, shopH.Create)
		api.GET("/shops/:id/", shopH.Get)
		api.PUT("/shops/:id/", adminMW, shopH.Update)
		api.DELETE("/shops/:id/", adminMW, shopH.Delete)
		api.GET("/shops/:id/invoices/", shopH.Invoices)

		// Invoices
		api.POST("/invoice/create/", invoiceH.Create)
		api.GET("/invoices/", invoiceH.List)
		api.GET("/invoices/delivered/", invoiceH.ListDelivered)
		api.DELETE("/invoices/delivered/:id/", invoiceH.DeleteDelivered)
		api.GET("/invoices/:id/", invoiceH.Get)
		api.DELETE("/invoices/:id/", adminMW, invoiceH.Delete)
		api.POST("/invoices/:id/deliver/", invoiceH.MarkDelivered)
		api.PUT("/order-items/:id/update/", invoiceH.UpdateItem)
		api.DELETE("/order-items/:id/remove/", invoiceH.RemoveItem)

		// User administration — role assignment drives the role gates above
		api.GET("/users/", adminMW, userH.List)
		api.GET("/users/:username/", adminMW, userH.Get)
		api.PATCH("/users/:username/", adminMW, userH.UpdateRole)
		api.DELETE("/users/:username/", adminMW, userH.Delete)

		// Stock ledger
		api.GET("/stock/daily/:date/", stockH.Daily)
		api.GET("/stock-history/", stockH.History)
		api.GET("/products/brand-summary/", stockH.BrandSummary)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, stockSvc
}
