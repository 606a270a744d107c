package pricing

import (
	"context"
	"time"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

// Repositories repositorios atados a un mismo snapshot de lectura.
type Repositories struct {
	Materials     repository.MaterialRepository
	Products      repository.ProductRepository
	Marketplaces  repository.MarketplaceRepository
	Costs         repository.CostRepository
	StoreProducts repository.StoreProductRepository
	Ads           repository.AdRepository
}

// SnapshotRunner ejecuta fn sobre una vista consistente de los datos (una transacción de solo lectura).
// Todo cálculo de nivel superior lee BOM, precios de material, costos e iklan desde el mismo snapshot.
type SnapshotRunner interface {
	ReadSnapshot(ctx context.Context, fn func(r Repositories) error) error
}

// MetricsRecorder registra resultados de negocio del motor.
type MetricsRecorder interface {
	ObserveGrade(grade string)
	ObserveInfeasible(reason string)
}

// PricingSheet datos que se imprimen en la hoja de pricing de un store-product.
type PricingSheet struct {
	HPP         dto.HPPResponse
	Pricing     dto.PricingResponse
	Decision    dto.DecisionResponse
	GeneratedAt time.Time
}

// PricingSheetGenerator puerto de salida para generar el PDF de la hoja de pricing.
type PricingSheetGenerator interface {
	GeneratePricingSheet(ctx context.Context, sheet *PricingSheet) ([]byte, error)
}

type nopMetrics struct{}

func (nopMetrics) ObserveGrade(string)      {}
func (nopMetrics) ObserveInfeasible(string) {}
