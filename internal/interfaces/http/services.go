package http

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
)

// Puertos que consumen los handlers. Los implementan auth.AuthUseCase, pricing.UseCase y catalog.UseCase.

// AuthService registro y login.
type AuthService interface {
	RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// PricingService operaciones del motor de pricing.
type PricingService interface {
	GetHPP(ctx context.Context, productID string) (*dto.HPPResponse, error)
	CalculatePricing(ctx context.Context, storeProductID int64) (*dto.PricingResponse, error)
	ReversePricing(ctx context.Context, in dto.ReversePricingRequest) (*dto.ReversePricingResponse, error)
	GetDecision(ctx context.Context, storeID, productID string) (*dto.DecisionResponse, error)
	PricingSheetPDF(ctx context.Context, storeProductID int64) ([]byte, string, error)
}

// CatalogService altas, consultas, cambios y bajas de datos maestros.
type CatalogService interface {
	CreateMaterial(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	GetMaterial(ctx context.Context, id string) (*dto.MaterialResponse, error)
	ListMaterials(ctx context.Context, page dto.PageRequest) (*dto.MaterialListResponse, error)
	UpdateMaterial(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
	DeleteMaterial(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error)
	UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	AddBOMItem(ctx context.Context, productID string, in dto.AddBOMItemRequest) (*dto.BOMItemResponse, error)
	DeleteBOMItem(ctx context.Context, productID string, itemID int64) error
	AddExtraCost(ctx context.Context, productID string, in dto.AddExtraCostRequest) (*dto.ExtraCostItem, error)
	DeleteExtraCost(ctx context.Context, productID string, costID int64) error

	CreateMarketplace(ctx context.Context, in dto.CreateMarketplaceRequest) (*dto.MarketplaceResponse, error)
	ListMarketplaces(ctx context.Context) ([]dto.MarketplaceResponse, error)
	CreateStore(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error)
	GetStore(ctx context.Context, id string) (*dto.StoreResponse, error)
	ListStores(ctx context.Context, marketplaceID string) ([]dto.StoreResponse, error)
	CreateCostType(ctx context.Context, in dto.CreateCostTypeRequest) (*dto.CostTypeResponse, error)
	ListCostTypes(ctx context.Context) ([]dto.CostTypeResponse, error)
	AddStoreCost(ctx context.Context, storeID string, in dto.AddCostRequest) (*dto.CostResponse, error)
	ListStoreCosts(ctx context.Context, storeID string) ([]dto.CostResponse, error)
	DeleteStoreCost(ctx context.Context, storeID string, costID int64) error

	CreateStoreProduct(ctx context.Context, in dto.CreateStoreProductRequest) (*dto.StoreProductResponse, error)
	GetStoreProduct(ctx context.Context, id int64) (*dto.StoreProductResponse, error)
	ListStoreProducts(ctx context.Context, storeID string) ([]dto.StoreProductResponse, error)
	UpdateStoreProduct(ctx context.Context, id int64, in dto.UpdateStoreProductRequest) (*dto.StoreProductResponse, error)
	DeleteStoreProduct(ctx context.Context, id int64) error
	AddStoreProductCost(ctx context.Context, storeProductID int64, in dto.AddCostRequest) (*dto.CostResponse, error)
	DeleteStoreProductCost(ctx context.Context, storeProductID, costID int64) error
	AddDiscount(ctx context.Context, storeProductID int64, in dto.AddDiscountRequest) (*dto.DiscountResponse, error)
	DeleteDiscount(ctx context.Context, storeProductID, discountID int64) error

	CreateAdRecord(ctx context.Context, in dto.CreateAdRecordRequest) (*dto.AdRecordResponse, error)
	ListAdRecords(ctx context.Context, storeID, productID string, page dto.PageRequest) (*dto.AdListResponse, error)
	DeleteAdRecord(ctx context.Context, id int64) error
}
