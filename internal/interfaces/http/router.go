package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karamansaglik/pharmacy-api/internal/application/auth"
	"github.com/karamansaglik/pharmacy-api/internal/application/usecase"
	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	PricingUC  *usecase.PricingUseCase
	SaleUC     *usecase.SaleUseCase
	CurrencyUC *usecase.CurrencyUseCase
	JWTSecret  string
	Redis      *redis.Client // nil disables rate limiting
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public, rate limited)
	authGroup := api.Group("/auth", RateLimit(deps.Redis))
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// Static segment before the :id routes so "barcode" never matches as an id.
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id/price-comparison", pricingHandler.Compare)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleWarehouse), productHandler.Delete)

	// Sales (POS)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)

	// Currency ticker
	currencyHandler := NewCurrencyHandler(deps.CurrencyUC)
	protected.Get("/currency", currencyHandler.GetRates)
}
