package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// CreateStoreProduct lista un producto en una tienda. (store_id, product_id) es único.
func (uc *UseCase) CreateStoreProduct(ctx context.Context, in dto.CreateStoreProductRequest) (*dto.StoreProductResponse, error) {
	if err := nonNegative("harga_jual", in.HargaJual); err != nil {
		return nil, err
	}
	store, err := uc.getStore(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	product, err := uc.getProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.storeProducts.GetByStoreAndProduct(ctx, store.ID, product.ID)
	if err != nil {
		return nil, fmt.Errorf("create store product: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: produk '%s' sudah terdaftar di toko '%s'", domain.ErrDuplicate, product.ID, store.ID)
	}
	now := uc.now()
	sp := &entity.StoreProduct{StoreID: store.ID, ProductID: product.ID, SellPrice: in.HargaJual, CreatedAt: now, UpdatedAt: now}
	if err := uc.storeProducts.Create(ctx, sp); err != nil {
		return nil, err
	}
	return toStoreProductResponse(sp, nil, nil), nil
}

// GetStoreProduct devuelve el store-product con sus costos propios y descuentos.
func (uc *UseCase) GetStoreProduct(ctx context.Context, id int64) (*dto.StoreProductResponse, error) {
	sp, err := uc.getStoreProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.storeProductView(ctx, sp)
}

// ListStoreProducts lista los productos de una tienda con sus costos propios y descuentos.
func (uc *UseCase) ListStoreProducts(ctx context.Context, storeID string) ([]dto.StoreProductResponse, error) {
	store, err := uc.getStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	list, err := uc.storeProducts.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("list store products: %w", err)
	}
	out := make([]dto.StoreProductResponse, 0, len(list))
	for _, sp := range list {
		view, err := uc.storeProductView(ctx, sp)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

// UpdateStoreProduct cambia harga_jual; el siguiente cálculo de pricing ya usa el nuevo precio.
func (uc *UseCase) UpdateStoreProduct(ctx context.Context, id int64, in dto.UpdateStoreProductRequest) (*dto.StoreProductResponse, error) {
	if err := nonNegative("harga_jual", in.HargaJual); err != nil {
		return nil, err
	}
	sp, err := uc.getStoreProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	sp.SellPrice = in.HargaJual
	sp.UpdatedAt = uc.now()
	if err := uc.storeProducts.UpdateSellPrice(ctx, sp); err != nil {
		return nil, err
	}
	return uc.storeProductView(ctx, sp)
}

// DeleteStoreProduct retira el producto de la tienda junto con sus costos propios y descuentos.
func (uc *UseCase) DeleteStoreProduct(ctx context.Context, id int64) error {
	sp, err := uc.getStoreProduct(ctx, id)
	if err != nil {
		return err
	}
	return uc.storeProducts.Delete(ctx, sp.ID)
}

func (uc *UseCase) storeProductView(ctx context.Context, sp *entity.StoreProduct) (*dto.StoreProductResponse, error) {
	costs, err := uc.costs.ListStoreProductCosts(ctx, sp.ID)
	if err != nil {
		return nil, fmt.Errorf("store product %d: costs: %w", sp.ID, err)
	}
	discounts, err := uc.storeProducts.ListDiscounts(ctx, sp.ID)
	if err != nil {
		return nil, fmt.Errorf("store product %d: discounts: %w", sp.ID, err)
	}
	return toStoreProductResponse(sp, costs, discounts), nil
}

// AddStoreProductCost asigna un costo específico; reemplaza al costo de tienda del mismo tipo.
func (uc *UseCase) AddStoreProductCost(ctx context.Context, storeProductID int64, in dto.AddCostRequest) (*dto.CostResponse, error) {
	sp, err := uc.getStoreProduct(ctx, storeProductID)
	if err != nil {
		return nil, err
	}
	if err := uc.validateCost(ctx, in); err != nil {
		return nil, err
	}
	c := &entity.StoreProductCost{StoreProductID: sp.ID, CostTypeID: in.CostTypeID, Value: in.Value}
	if err := uc.costs.AddStoreProductCost(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CostResponse{ID: c.ID, CostTypeID: c.CostTypeID, Value: c.Value}, nil
}

// AddDiscount agrega un descuento (percent como fracción de harga_jual, o fixed en Rp).
func (uc *UseCase) AddDiscount(ctx context.Context, storeProductID int64, in dto.AddDiscountRequest) (*dto.DiscountResponse, error) {
	typ := entity.DiscountType(in.DiscountType)
	if !typ.Valid() {
		return nil, domain.Invalid("discount_type", "harus 'percent' atau 'fixed'")
	}
	if err := nonNegative("value", in.Value); err != nil {
		return nil, err
	}
	if typ == entity.DiscountPercent {
		if err := fraction("value", in.Value); err != nil {
			return nil, err
		}
	}
	sp, err := uc.getStoreProduct(ctx, storeProductID)
	if err != nil {
		return nil, err
	}
	disc := &entity.Discount{StoreProductID: sp.ID, Type: typ, Value: in.Value}
	if err := uc.storeProducts.AddDiscount(ctx, disc); err != nil {
		return nil, err
	}
	return &dto.DiscountResponse{ID: disc.ID, DiscountType: string(disc.Type), Value: disc.Value}, nil
}

// DeleteStoreProductCost quita el costo específico; vuelve a regir el costo de tienda del mismo tipo.
func (uc *UseCase) DeleteStoreProductCost(ctx context.Context, storeProductID, costID int64) error {
	if costID <= 0 {
		return domain.Invalid("cost_id", "wajib diisi")
	}
	sp, err := uc.getStoreProduct(ctx, storeProductID)
	if err != nil {
		return err
	}
	if err := uc.costs.DeleteStoreProductCost(ctx, sp.ID, costID); err != nil {
		return fmt.Errorf("biaya produk %d: %w", costID, err)
	}
	return nil
}

// DeleteDiscount quita un descuento del store-product.
func (uc *UseCase) DeleteDiscount(ctx context.Context, storeProductID, discountID int64) error {
	if discountID <= 0 {
		return domain.Invalid("discount_id", "wajib diisi")
	}
	sp, err := uc.getStoreProduct(ctx, storeProductID)
	if err != nil {
		return err
	}
	if err := uc.storeProducts.DeleteDiscount(ctx, sp.ID, discountID); err != nil {
		return fmt.Errorf("diskon %d: %w", discountID, err)
	}
	return nil
}

func (uc *UseCase) getStoreProduct(ctx context.Context, id int64) (*entity.StoreProduct, error) {
	if id <= 0 {
		return nil, domain.Invalid("store_product_id", "wajib diisi")
	}
	sp, err := uc.storeProducts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store product: %w", err)
	}
	if sp == nil {
		return nil, fmt.Errorf("%w: store product %d", domain.ErrNotFound, id)
	}
	return sp, nil
}
