package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	engine "github.com/jhoicas/marketplace-profit-api/internal/domain/pricing"
	"github.com/jhoicas/marketplace-profit-api/pkg/logger"
)

// UseCase expone GetHPP, CalculatePricing, ReversePricing y GetDecision.
// Nada se cachea: cada llamada relee los datos vigentes en un snapshot propio.
type UseCase struct {
	runner  SnapshotRunner
	solver  engine.Solver
	grader  engine.Grader
	metrics MetricsRecorder
	sheets  PricingSheetGenerator
	now     func() time.Time
}

// NewUseCase construye el caso de uso. metrics y sheets pueden ser nil.
func NewUseCase(runner SnapshotRunner, solver engine.Solver, grader engine.Grader, metrics MetricsRecorder, sheets PricingSheetGenerator) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		runner:  runner,
		solver:  solver,
		grader:  grader,
		metrics: metrics,
		sheets:  sheets,
		now:     time.Now,
	}
}

// listing datos de un producto en una tienda ya resueltos para el motor.
type listing struct {
	sp        *entity.StoreProduct
	store     *entity.Store
	product   *entity.Product
	hpp       *engine.HPPBreakdown
	rules     []engine.FeeRule
	discounts []engine.DiscountRule
}

func (l *listing) input() engine.Input {
	return engine.Input{SellPrice: l.sp.SellPrice, HPP: l.hpp.HPP, Rules: l.rules, Discounts: l.discounts}
}

// GetHPP calcula el HPP vigente de un producto.
func (uc *UseCase) GetHPP(ctx context.Context, productID string) (*dto.HPPResponse, error) {
	if productID == "" {
		return nil, domain.Invalid("product_id", "wajib diisi")
	}
	var out *dto.HPPResponse
	err := uc.runner.ReadSnapshot(ctx, func(r Repositories) error {
		product, err := getProduct(ctx, r, productID)
		if err != nil {
			return err
		}
		hpp, err := computeHPP(ctx, r, product.ID)
		if err != nil {
			return err
		}
		out = toHPPResponse(product, hpp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CalculatePricing cálculo directo de un store-product.
func (uc *UseCase) CalculatePricing(ctx context.Context, storeProductID int64) (*dto.PricingResponse, error) {
	if storeProductID <= 0 {
		return nil, domain.Invalid("store_product_id", "wajib diisi")
	}
	var out *dto.PricingResponse
	err := uc.runner.ReadSnapshot(ctx, func(r Repositories) error {
		l, err := loadListingByID(ctx, r, storeProductID)
		if err != nil {
			return err
		}
		out = toPricingResponse(l, engine.Forward(l.input()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReversePricing resuelve el precio que alcanza el objetivo. Si el producto ya está listado en la tienda
// se usan sus costos y descuentos; si no, solo los costos de la tienda.
func (uc *UseCase) ReversePricing(ctx context.Context, in dto.ReversePricingRequest) (*dto.ReversePricingResponse, error) {
	if in.StoreID == "" {
		return nil, domain.Invalid("store_id", "wajib diisi")
	}
	if in.ProductID == "" {
		return nil, domain.Invalid("product_id", "wajib diisi")
	}
	target := engine.TargetType(in.TargetType)
	if !target.Valid() {
		return nil, domain.Invalid("target_type", "harus 'percent' atau 'fixed'")
	}

	var (
		rin     engine.ReverseInput
		product *entity.Product
	)
	err := uc.runner.ReadSnapshot(ctx, func(r Repositories) error {
		store, err := getStore(ctx, r, in.StoreID)
		if err != nil {
			return err
		}
		product, err = getProduct(ctx, r, in.ProductID)
		if err != nil {
			return err
		}
		hpp, err := computeHPP(ctx, r, product.ID)
		if err != nil {
			return err
		}
		sp, err := r.StoreProducts.GetByStoreAndProduct(ctx, store.ID, product.ID)
		if err != nil {
			return fmt.Errorf("reverse pricing: store product: %w", err)
		}
		rules, discounts, err := costStructure(ctx, r, store.ID, sp)
		if err != nil {
			return err
		}
		rin = engine.ReverseInput{
			HPP:         hpp.HPP,
			Rules:       rules,
			Discounts:   discounts,
			TargetType:  target,
			TargetValue: in.TargetValue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res, err := uc.solver.Solve(rin)
	if err != nil {
		uc.observeInfeasible(ctx, err, in)
		return nil, err
	}
	return toReverseResponse(in, rin, res), nil
}

// GetDecision califica la viabilidad con iklan de un producto en una tienda.
// Falla con ErrNotListed si el producto no está listado en esa tienda.
func (uc *UseCase) GetDecision(ctx context.Context, storeID, productID string) (*dto.DecisionResponse, error) {
	if storeID == "" {
		return nil, domain.Invalid("store_id", "wajib diisi")
	}
	if productID == "" {
		return nil, domain.Invalid("product_id", "wajib diisi")
	}
	var out *dto.DecisionResponse
	err := uc.runner.ReadSnapshot(ctx, func(r Repositories) error {
		sp, err := r.StoreProducts.GetByStoreAndProduct(ctx, storeID, productID)
		if err != nil {
			return fmt.Errorf("decision: store product: %w", err)
		}
		if sp == nil {
			return domain.ErrNotListed
		}
		l, err := loadListing(ctx, r, sp)
		if err != nil {
			return err
		}
		out, err = uc.decide(ctx, r, l, engine.Forward(l.input()))
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.ObserveGrade(out.Grade)
	return out, nil
}

// PricingSheetPDF genera el PDF con HPP, pricing y decisión de un store-product, leídos del mismo snapshot.
func (uc *UseCase) PricingSheetPDF(ctx context.Context, storeProductID int64) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", errors.New("pricing sheet: generador PDF no configurado")
	}
	if storeProductID <= 0 {
		return nil, "", domain.Invalid("store_product_id", "wajib diisi")
	}
	sheet := &PricingSheet{GeneratedAt: uc.now()}
	err := uc.runner.ReadSnapshot(ctx, func(r Repositories) error {
		l, err := loadListingByID(ctx, r, storeProductID)
		if err != nil {
			return err
		}
		fwd := engine.Forward(l.input())
		decision, err := uc.decide(ctx, r, l, fwd)
		if err != nil {
			return err
		}
		sheet.HPP = *toHPPResponse(l.product, l.hpp)
		sheet.Pricing = *toPricingResponse(l, fwd)
		sheet.Decision = *decision
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.sheets.GeneratePricingSheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("pricing sheet: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("pricing_%s_%s.pdf", sheet.Pricing.StoreID, sheet.Pricing.ProductID)
	return pdfBytes, filename, nil
}

func (uc *UseCase) decide(ctx context.Context, r Repositories, l *listing, fwd engine.ForwardResult) (*dto.DecisionResponse, error) {
	records, err := r.Ads.ListByStoreProduct(ctx, l.store.ID, l.product.ID)
	if err != nil {
		return nil, fmt.Errorf("decision: ads: %w", err)
	}
	d := uc.grader.Evaluate(fwd, engine.SummarizeAds(records))
	return toDecisionResponse(l, fwd, d), nil
}

func (uc *UseCase) observeInfeasible(ctx context.Context, err error, in dto.ReversePricingRequest) {
	reason := ""
	switch {
	case errors.Is(err, domain.ErrFeesExceedPrice):
		reason = "fees_exceed_price"
	case errors.Is(err, domain.ErrTargetUnreachable):
		reason = "target_unreachable"
	default:
		return
	}
	uc.metrics.ObserveInfeasible(reason)
	logger.FromContext(ctx).Debug().
		Str("store_id", in.StoreID).
		Str("product_id", in.ProductID).
		Str("target_type", in.TargetType).
		Str("target_value", in.TargetValue.String()).
		Str("reason", reason).
		Msg("reverse pricing sin solución")
}
