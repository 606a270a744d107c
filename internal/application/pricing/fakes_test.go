package pricing

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

// fakeDB implementa todos los repositorios en memoria. Los métodos de escritura que el
// motor no usa solo agregan a los slices.
type fakeDB struct {
	materials     map[string]*entity.Material
	products      map[string]*entity.Product
	bom           []entity.BOMItem
	extras        []entity.ExtraCost
	stores        map[string]*entity.Store
	costTypes     []entity.CostType
	storeCosts    []entity.StoreCost
	spCosts       []entity.StoreProductCost
	storeProducts []*entity.StoreProduct
	discounts     []entity.Discount
	ads           []entity.AdRecord
	failAds       bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		materials: map[string]*entity.Material{},
		products:  map[string]*entity.Product{},
		stores:    map[string]*entity.Store{},
	}
}

func (db *fakeDB) repos() Repositories {
	return Repositories{
		Materials:     (*fakeMaterials)(db),
		Products:      (*fakeProducts)(db),
		Marketplaces:  (*fakeMarketplaces)(db),
		Costs:         (*fakeCosts)(db),
		StoreProducts: (*fakeStoreProducts)(db),
		Ads:           (*fakeAds)(db),
	}
}

// fakeRunner cuenta snapshots abiertos.
type fakeRunner struct {
	db        *fakeDB
	snapshots int
}

func (r *fakeRunner) ReadSnapshot(_ context.Context, fn func(Repositories) error) error {
	r.snapshots++
	return fn(r.db.repos())
}

type fakeMetrics struct {
	grades     []string
	infeasible []string
}

func (m *fakeMetrics) ObserveGrade(g string)      { m.grades = append(m.grades, g) }
func (m *fakeMetrics) ObserveInfeasible(r string) { m.infeasible = append(m.infeasible, r) }

type fakeSheets struct{ last *PricingSheet }

func (f *fakeSheets) GeneratePricingSheet(_ context.Context, s *PricingSheet) ([]byte, error) {
	f.last = s
	return []byte("%PDF-1.4 fake"), nil
}

// ── materials ────────────────────────────────────────────────

type fakeMaterials fakeDB

func (f *fakeMaterials) Create(_ context.Context, m *entity.Material) error {
	f.materials[m.ID] = m
	return nil
}
func (f *fakeMaterials) GetByID(_ context.Context, id string) (*entity.Material, error) {
	return f.materials[id], nil
}
func (f *fakeMaterials) GetByIDs(_ context.Context, ids []string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, id := range ids {
		if m, ok := f.materials[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMaterials) Update(_ context.Context, m *entity.Material) error {
	f.materials[m.ID] = m
	return nil
}
func (f *fakeMaterials) List(context.Context, int, int) ([]*entity.Material, error) { return nil, nil }
func (f *fakeMaterials) Delete(_ context.Context, id string) error {
	delete(f.materials, id)
	return nil
}

// ── products ─────────────────────────────────────────────────

type fakeProducts fakeDB

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProducts) List(context.Context, int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProducts) Update(context.Context, *entity.Product) error {
	return nil
}
func (f *fakeProducts) Delete(context.Context, string) error {
	return nil
}
func (f *fakeProducts) DeleteBOMItem(context.Context, string, int64) error {
	return nil
}
func (f *fakeProducts) DeleteExtraCost(context.Context, string, int64) error {
	return nil
}
func (f *fakeProducts) AddBOMItem(_ context.Context, it *entity.BOMItem) error {
	f.bom = append(f.bom, *it)
	return nil
}
func (f *fakeProducts) ListBOMItems(_ context.Context, productID string) ([]entity.BOMItem, error) {
	var out []entity.BOMItem
	for _, it := range f.bom {
		if it.ProductID == productID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeProducts) AddExtraCost(_ context.Context, ec *entity.ExtraCost) error {
	f.extras = append(f.extras, *ec)
	return nil
}
func (f *fakeProducts) ListExtraCosts(_ context.Context, productID string) ([]entity.ExtraCost, error) {
	var out []entity.ExtraCost
	for _, ec := range f.extras {
		if ec.ProductID == productID {
			out = append(out, ec)
		}
	}
	return out, nil
}

// ── marketplaces / stores ────────────────────────────────────

type fakeMarketplaces fakeDB

func (f *fakeMarketplaces) CreateMarketplace(context.Context, *entity.Marketplace) error { return nil }
func (f *fakeMarketplaces) GetMarketplace(context.Context, string) (*entity.Marketplace, error) {
	return nil, nil
}
func (f *fakeMarketplaces) ListMarketplaces(context.Context) ([]*entity.Marketplace, error) {
	return nil, nil
}
func (f *fakeMarketplaces) CreateStore(_ context.Context, s *entity.Store) error {
	f.stores[s.ID] = s
	return nil
}
func (f *fakeMarketplaces) GetStore(_ context.Context, id string) (*entity.Store, error) {
	return f.stores[id], nil
}
func (f *fakeMarketplaces) ListStores(context.Context, string) ([]*entity.Store, error) {
	return nil, nil
}

// ── costs ────────────────────────────────────────────────────

type fakeCosts fakeDB

func (f *fakeCosts) CreateCostType(_ context.Context, ct *entity.CostType) error {
	f.costTypes = append(f.costTypes, *ct)
	return nil
}
func (f *fakeCosts) GetCostType(_ context.Context, id string) (*entity.CostType, error) {
	for i := range f.costTypes {
		if f.costTypes[i].ID == id {
			return &f.costTypes[i], nil
		}
	}
	return nil, nil
}
func (f *fakeCosts) ListCostTypes(context.Context) ([]entity.CostType, error) {
	return f.costTypes, nil
}
func (f *fakeCosts) AddStoreCost(_ context.Context, sc *entity.StoreCost) error {
	f.storeCosts = append(f.storeCosts, *sc)
	return nil
}
func (f *fakeCosts) ListStoreCosts(_ context.Context, storeID string) ([]entity.StoreCost, error) {
	var out []entity.StoreCost
	for _, sc := range f.storeCosts {
		if sc.StoreID == storeID {
			out = append(out, sc)
		}
	}
	return out, nil
}
func (f *fakeCosts) AddStoreProductCost(_ context.Context, c *entity.StoreProductCost) error {
	f.spCosts = append(f.spCosts, *c)
	return nil
}
func (f *fakeCosts) ListStoreProductCosts(_ context.Context, spID int64) ([]entity.StoreProductCost, error) {
	var out []entity.StoreProductCost
	for _, c := range f.spCosts {
		if c.StoreProductID == spID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCosts) DeleteStoreCost(context.Context, string, int64) error {
	return nil
}
func (f *fakeCosts) DeleteStoreProductCost(context.Context, int64, int64) error {
	return nil
}

// ── store products ───────────────────────────────────────────

type fakeStoreProducts fakeDB

func (f *fakeStoreProducts) Create(_ context.Context, sp *entity.StoreProduct) error {
	sp.ID = int64(len(f.storeProducts) + 1)
	f.storeProducts = append(f.storeProducts, sp)
	return nil
}
func (f *fakeStoreProducts) GetByID(_ context.Context, id int64) (*entity.StoreProduct, error) {
	for _, sp := range f.storeProducts {
		if sp.ID == id {
			return sp, nil
		}
	}
	return nil, nil
}
func (f *fakeStoreProducts) GetByStoreAndProduct(_ context.Context, storeID, productID string) (*entity.StoreProduct, error) {
	for _, sp := range f.storeProducts {
		if sp.StoreID == storeID && sp.ProductID == productID {
			return sp, nil
		}
	}
	return nil, nil
}
func (f *fakeStoreProducts) ListByStore(context.Context, string) ([]*entity.StoreProduct, error) {
	return f.storeProducts, nil
}
func (f *fakeStoreProducts) UpdateSellPrice(context.Context, *entity.StoreProduct) error { return nil }
func (f *fakeStoreProducts) Delete(context.Context, int64) error {
	return nil
}
func (f *fakeStoreProducts) DeleteDiscount(context.Context, int64, int64) error {
	return nil
}
func (f *fakeStoreProducts) AddDiscount(_ context.Context, d *entity.Discount) error {
	f.discounts = append(f.discounts, *d)
	return nil
}
func (f *fakeStoreProducts) ListDiscounts(_ context.Context, spID int64) ([]entity.Discount, error) {
	var out []entity.Discount
	for _, d := range f.discounts {
		if d.StoreProductID == spID {
			out = append(out, d)
		}
	}
	return out, nil
}

// ── ads ──────────────────────────────────────────────────────

type fakeAds fakeDB

func (f *fakeAds) Create(_ context.Context, r *entity.AdRecord) error {
	f.ads = append(f.ads, *r)
	return nil
}
func (f *fakeAds) ListByStoreProduct(_ context.Context, storeID, productID string) ([]entity.AdRecord, error) {
	if f.failAds {
		return nil, errors.New("conexión perdida")
	}
	var out []entity.AdRecord
	for _, r := range f.ads {
		if r.StoreID == storeID && r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAds) List(context.Context, repository.AdFilter) ([]entity.AdRecord, error) {
	return f.ads, nil
}
func (f *fakeAds) Delete(context.Context, int64) error {
	return nil
}

var (
	_ repository.MaterialRepository     = (*fakeMaterials)(nil)
	_ repository.ProductRepository      = (*fakeProducts)(nil)
	_ repository.MarketplaceRepository  = (*fakeMarketplaces)(nil)
	_ repository.CostRepository         = (*fakeCosts)(nil)
	_ repository.StoreProductRepository = (*fakeStoreProducts)(nil)
	_ repository.AdRepository           = (*fakeAds)(nil)
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// scenarioDB kain 100.000/100, kaos-01 con qty 2 + packing 2.000, listado en shopee-1 a 20.000 con admin 5%.
func scenarioDB() *fakeDB {
	db := newFakeDB()
	db.materials["kain"] = &entity.Material{ID: "kain", Name: "Kain katun", TotalPrice: d("100000"), UnitCount: d("100"), Unit: "meter"}
	db.products["kaos-01"] = &entity.Product{ID: "kaos-01", Name: "Kaos Polos"}
	db.bom = []entity.BOMItem{{ID: 1, ProductID: "kaos-01", MaterialID: "kain", Qty: d("2")}}
	db.extras = []entity.ExtraCost{{ID: 1, ProductID: "kaos-01", Label: "packing", Value: d("2000")}}
	db.stores["shopee-1"] = &entity.Store{ID: "shopee-1", MarketplaceID: "shopee", Name: "Toko Kaos Shopee"}
	db.costTypes = []entity.CostType{
		{ID: "admin", Name: "Biaya Admin", CalcType: entity.CalcTypePercent, ApplyTo: entity.ApplyToPrice},
		{ID: "ongkir", Name: "Subsidi Ongkir", CalcType: entity.CalcTypeFixed, ApplyTo: entity.ApplyToPrice},
	}
	db.storeCosts = []entity.StoreCost{{ID: 1, StoreID: "shopee-1", CostTypeID: "admin", Value: d("0.05")}}
	db.storeProducts = []*entity.StoreProduct{{ID: 1, StoreID: "shopee-1", ProductID: "kaos-01", SellPrice: d("20000")}}
	return db
}
