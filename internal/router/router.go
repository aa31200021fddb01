package router

import (
	"time"

	"github.com/AndreHordd/Zlagoda/internal/config"
	"github.com/AndreHordd/Zlagoda/internal/handler"
	"github.com/AndreHordd/Zlagoda/internal/middleware"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"
	"github.com/AndreHordd/Zlagoda/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries the fully wired service layer back to the composition root so
// the background sweep can share it with the HTTP surface.
type Deps struct {
	Promos service.PromoService
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *Deps) {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	accountRepo := repository.NewAccountRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db, accountRepo)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	storeProductRepo := repository.NewStoreProductRepository(db)
	cardRepo := repository.NewCardRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(accountRepo, employeeRepo, cfg)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo)
	storeProductSvc := service.NewStoreProductService(storeProductRepo)
	cardSvc := service.NewCardService(cardRepo)
	receiptSvc := service.NewReceiptService(receiptRepo, storeProductRepo, cardRepo)
	promoSvc := service.NewPromoService(storeProductRepo, cfg.PromoWindowDays)
	reportSvc := service.NewReportService(reportRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	storeProductsH := handler.NewStoreProductsHandler(storeProductSvc)
	cardsH := handler.NewCardsHandler(cardSvc)
	receiptsH := handler.NewReceiptsHandler(receiptSvc)
	promotionsH := handler.NewPromotionsHandler(promoSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	priceH := handler.NewPriceCheckHandler(storeProductSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/price/:upc", priceH.GetByUPC)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleCashier, model.RoleManager)
	managerOnly := middleware.RequireRole(model.RoleManager)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/me", anyRole, authH.Me)

		// Shared read surface: both roles browse the catalog, shelf, cards,
		// and receipts (cashiers are pinned to their own receipts).
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		v1.GET("/store-products", anyRole, storeProductsH.List)
		v1.GET("/store-products/:upc", anyRole, storeProductsH.Get)
		v1.GET("/categories", anyRole, categoriesH.List)

		v1.GET("/customer-cards", anyRole, cardsH.List)
		v1.GET("/customer-cards/:number", anyRole, cardsH.Get)
		// Cashiers may register and update cards, never delete them.
		v1.POST("/customer-cards", anyRole, cardsH.Create)
		v1.PUT("/customer-cards/:number", anyRole, cardsH.Update)
		v1.DELETE("/customer-cards/:number", managerOnly, cardsH.Delete)

		v1.POST("/receipts", anyRole, receiptsH.Checkout)
		v1.GET("/receipts", anyRole, receiptsH.List)
		v1.GET("/receipts/total", anyRole, receiptsH.TotalForPeriod)
		v1.GET("/receipts/:number", anyRole, receiptsH.Get)
		v1.GET("/receipts/:number/pdf", anyRole, receiptsH.PDF)
		v1.DELETE("/receipts/:number", managerOnly, receiptsH.Delete)
		v1.DELETE("/receipts/:number/sales/:upc", managerOnly, receiptsH.DeleteSale)

		// Manager-only write and analytics surface.
		manager := v1.Group("", managerOnly)
		{
			manager.POST("/auth/register", authH.Register)

			manager.POST("/employees", employeesH.Create)
			manager.GET("/employees", employeesH.List)
			manager.GET("/employees/:id", employeesH.Get)
			manager.PUT("/employees/:id", employeesH.Update)
			manager.DELETE("/employees/:id", employeesH.Delete)

			manager.POST("/categories", categoriesH.Create)
			manager.GET("/categories/:number", categoriesH.Get)
			manager.PUT("/categories/:number", categoriesH.Update)
			manager.DELETE("/categories/:number", categoriesH.Delete)

			manager.POST("/products", productsH.Create)
			manager.PUT("/products/:id", productsH.Update)
			manager.DELETE("/products/:id", productsH.Delete)

			manager.POST("/store-products", storeProductsH.Create)
			manager.PUT("/store-products/:upc", storeProductsH.Update)
			manager.DELETE("/store-products/:upc", storeProductsH.Delete)
			manager.GET("/store-products/:upc/units-sold", receiptsH.UnitsSold)

			manager.POST("/promotions/sweep", promotionsH.Sweep)

			reports := manager.Group("/reports")
			{
				reports.GET("/categories-by-cashier", reportsH.CategoriesByCashier)
				reports.GET("/category-price-stats", reportsH.CategoryPriceStats)
				reports.GET("/cashiers-by-category", reportsH.CashiersEveryReceiptHasCategory)
				reports.GET("/categories-without-promos", reportsH.CategoriesWithoutPromos)
				reports.GET("/preview/:table", reportsH.Preview)
			}
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, &Deps{Promos: promoSvc}
}
