// Command seed carga un catálogo de ejemplo: un material, un producto con BOM, una tienda Shopee con comisión admin
// y el producto listado a Rp 20.000 con una campaña de iklan. Es idempotente: si el listado ya existe no hace nada.
package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/application/catalog"
	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/infrastructure/postgres"
	"github.com/jhoicas/marketplace-profit-api/pkg/config"
	"github.com/jhoicas/marketplace-profit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.Repositories(pool)
	existing, err := repos.StoreProducts.GetByStoreAndProduct(ctx, "shopee-1", "kaos-01")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar listado")
	}
	if existing != nil {
		log.Info().Int64("store_product_id", existing.ID).Msg("seed ya aplicado")
		return
	}

	uc := catalog.NewUseCase(repos.Materials, repos.Products, repos.Marketplaces, repos.Costs, repos.StoreProducts, repos.Ads)
	spID, err := seed(ctx, uc)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Int64("store_product_id", spID).Msg("seed completado")
}

func seed(ctx context.Context, uc *catalog.UseCase) (int64, error) {
	d := decimal.RequireFromString

	steps := []func() error{
		func() error {
			_, err := uc.CreateMaterial(ctx, dto.CreateMaterialRequest{
				ID: "kain", Nama: "Kain katun", HargaTotal: d("100000"), JumlahUnit: d("100"), Satuan: "meter",
			})
			return err
		},
		func() error {
			_, err := uc.CreateProduct(ctx, dto.CreateProductRequest{ID: "kaos-01", Nama: "Kaos Polos"})
			return err
		},
		func() error {
			_, err := uc.CreateMarketplace(ctx, dto.CreateMarketplaceRequest{ID: "shopee", Name: "Shopee"})
			return err
		},
		func() error {
			_, err := uc.CreateStore(ctx, dto.CreateStoreRequest{ID: "shopee-1", MarketplaceID: "shopee", Name: "Toko Kaos Shopee"})
			return err
		},
		func() error {
			_, err := uc.CreateCostType(ctx, dto.CreateCostTypeRequest{ID: "admin", Name: "Biaya Admin", CalcType: "percent", ApplyTo: "price"})
			return err
		},
		func() error {
			_, err := uc.CreateCostType(ctx, dto.CreateCostTypeRequest{ID: "ongkir", Name: "Subsidi Ongkir", CalcType: "fixed", ApplyTo: "price"})
			return err
		},
	}
	for _, step := range steps {
		if err := step(); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return 0, err
		}
	}

	// BOM y costos no tienen clave natural: solo se agregan junto con el listado nuevo.
	if _, err := uc.AddBOMItem(ctx, "kaos-01", dto.AddBOMItemRequest{MaterialID: "kain", Qty: d("2")}); err != nil {
		return 0, err
	}
	if _, err := uc.AddExtraCost(ctx, "kaos-01", dto.AddExtraCostRequest{Label: "packing", Value: d("2000")}); err != nil {
		return 0, err
	}
	if _, err := uc.AddStoreCost(ctx, "shopee-1", dto.AddCostRequest{CostTypeID: "admin", Value: d("0.05")}); err != nil {
		return 0, err
	}
	sp, err := uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("20000")})
	if err != nil {
		return 0, err
	}
	if _, err := uc.CreateAdRecord(ctx, dto.CreateAdRecordRequest{
		StoreID: "shopee-1", ProductID: "kaos-01", Campaign: "GMV Max",
		Spend: d("50000"), GMV: d("150000"), Orders: 10,
	}); err != nil {
		return 0, err
	}
	return sp.ID, nil
}
