package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    AuthService
	PricingUC PricingService
	CatalogUC CatalogService
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Motor de pricing
	pricingHandler := NewPricingHandler(deps.PricingUC)
	protected.Get("/hpp/:product_id", pricingHandler.GetHPP)
	protected.Post("/pricing/calc", pricingHandler.Calculate)
	protected.Post("/pricing/reverse", pricingHandler.Reverse)
	protected.Get("/pricing/store-products/:id/pdf", pricingHandler.SheetPDF)
	protected.Get("/decision/:store_id/:product_id", pricingHandler.Decision)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	materials := protected.Group("/materials")
	materials.Post("/", catalogHandler.CreateMaterial)
	materials.Get("/", catalogHandler.ListMaterials)
	materials.Get("/:id", catalogHandler.GetMaterial)
	materials.Put("/:id", catalogHandler.UpdateMaterial)
	materials.Delete("/:id", catalogHandler.DeleteMaterial)

	products := protected.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", catalogHandler.DeleteProduct)
	products.Post("/:id/bom", catalogHandler.AddBOMItem)
	products.Delete("/:id/bom/:item_id", catalogHandler.DeleteBOMItem)
	products.Post("/:id/extra-costs", catalogHandler.AddExtraCost)
	products.Delete("/:id/extra-costs/:cost_id", catalogHandler.DeleteExtraCost)

	storeHandler := NewStoreHandler(deps.CatalogUC)
	protected.Post("/marketplaces", storeHandler.CreateMarketplace)
	protected.Get("/marketplaces", storeHandler.ListMarketplaces)
	protected.Post("/cost-types", storeHandler.CreateCostType)
	protected.Get("/cost-types", storeHandler.ListCostTypes)

	stores := protected.Group("/stores")
	stores.Post("/", storeHandler.CreateStore)
	stores.Get("/", storeHandler.ListStores)
	stores.Get("/:id", storeHandler.GetStore)
	stores.Post("/:id/costs", storeHandler.AddStoreCost)
	stores.Get("/:id/costs", storeHandler.ListStoreCosts)
	stores.Delete("/:id/costs/:cost_id", storeHandler.DeleteStoreCost)

	storeProducts := protected.Group("/store-products")
	storeProducts.Post("/", storeHandler.CreateStoreProduct)
	storeProducts.Get("/", storeHandler.ListStoreProducts)
	storeProducts.Get("/:id", storeHandler.GetStoreProduct)
	storeProducts.Put("/:id", storeHandler.UpdateStoreProduct)
	storeProducts.Delete("/:id", storeHandler.DeleteStoreProduct)
	storeProducts.Post("/:id/costs", storeHandler.AddStoreProductCost)
	storeProducts.Delete("/:id/costs/:cost_id", storeHandler.DeleteStoreProductCost)
	storeProducts.Post("/:id/discounts", storeHandler.AddDiscount)
	storeProducts.Delete("/:id/discounts/:discount_id", storeHandler.DeleteDiscount)

	adsHandler := NewAdsHandler(deps.CatalogUC)
	ads := protected.Group("/ads")
	ads.Post("/", adsHandler.Create)
	ads.Get("/", adsHandler.List)
	ads.Delete("/:id", adsHandler.Delete)
}
