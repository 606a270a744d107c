package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// memRepos repositorios en memoria para los casos de uso de catálogo.
type memRepos struct {
	materials     map[string]*entity.Material
	products      map[string]*entity.Product
	bom           []entity.BOMItem
	extras        []entity.ExtraCost
	marketplaces  map[string]*entity.Marketplace
	stores        map[string]*entity.Store
	costTypes     map[string]*entity.CostType
	storeCosts    []entity.StoreCost
	spCosts       []entity.StoreProductCost
	storeProducts []*entity.StoreProduct
	discounts     []entity.Discount
	ads           []entity.AdRecord
	lastFilter    repository.AdFilter
}

func newMem() *memRepos {
	return &memRepos{
		materials:    map[string]*entity.Material{},
		products:     map[string]*entity.Product{},
		marketplaces: map[string]*entity.Marketplace{},
		stores:       map[string]*entity.Store{},
		costTypes:    map[string]*entity.CostType{},
	}
}

type memMaterials memRepos
type memProducts memRepos
type memMarketplaces memRepos
type memCosts memRepos
type memStoreProducts memRepos
type memAds memRepos

func (m *memMaterials) Create(_ context.Context, x *entity.Material) error {
	m.materials[x.ID] = x
	return nil
}
func (m *memMaterials) GetByID(_ context.Context, id string) (*entity.Material, error) {
	return m.materials[id], nil
}
func (m *memMaterials) GetByIDs(context.Context, []string) ([]*entity.Material, error) { return nil, nil }
func (m *memMaterials) Update(_ context.Context, x *entity.Material) error {
	m.materials[x.ID] = x
	return nil
}
func (m *memMaterials) List(_ context.Context, limit, offset int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, x := range m.materials {
		out = append(out, x)
	}
	return out, nil
}
func (m *memMaterials) Delete(_ context.Context, id string) error {
	delete(m.materials, id)
	return nil
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.products[id], nil
}
func (m *memProducts) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *entity.Product) int { return strings.Compare(a.ID, b.ID) })
	if offset >= len(out) {
		return nil, nil
	}
	return out[offset:min(offset+limit, len(out))], nil
}
func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.products[p.ID] = p
	return nil
}
func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	m.bom = slices.DeleteFunc(m.bom, func(it entity.BOMItem) bool { return it.ProductID == id })
	m.extras = slices.DeleteFunc(m.extras, func(ec entity.ExtraCost) bool { return ec.ProductID == id })
	return nil
}
func (m *memProducts) DeleteBOMItem(_ context.Context, productID string, itemID int64) error {
	i := slices.IndexFunc(m.bom, func(it entity.BOMItem) bool { return it.ID == itemID && it.ProductID == productID })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.bom = slices.Delete(m.bom, i, i+1)
	return nil
}
func (m *memProducts) DeleteExtraCost(_ context.Context, productID string, costID int64) error {
	i := slices.IndexFunc(m.extras, func(ec entity.ExtraCost) bool { return ec.ID == costID && ec.ProductID == productID })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.extras = slices.Delete(m.extras, i, i+1)
	return nil
}
func (m *memProducts) AddBOMItem(_ context.Context, it *entity.BOMItem) error {
	it.ID = int64(len(m.bom) + 1)
	m.bom = append(m.bom, *it)
	return nil
}
func (m *memProducts) ListBOMItems(context.Context, string) ([]entity.BOMItem, error) {
	return m.bom, nil
}
func (m *memProducts) AddExtraCost(_ context.Context, ec *entity.ExtraCost) error {
	ec.ID = int64(len(m.extras) + 1)
	m.extras = append(m.extras, *ec)
	return nil
}
func (m *memProducts) ListExtraCosts(context.Context, string) ([]entity.ExtraCost, error) {
	return m.extras, nil
}

func (m *memMarketplaces) CreateMarketplace(_ context.Context, x *entity.Marketplace) error {
	m.marketplaces[x.ID] = x
	return nil
}
func (m *memMarketplaces) GetMarketplace(_ context.Context, id string) (*entity.Marketplace, error) {
	return m.marketplaces[id], nil
}
func (m *memMarketplaces) ListMarketplaces(context.Context) ([]*entity.Marketplace, error) {
	var out []*entity.Marketplace
	for _, x := range m.marketplaces {
		out = append(out, x)
	}
	return out, nil
}
func (m *memMarketplaces) CreateStore(_ context.Context, s *entity.Store) error {
	m.stores[s.ID] = s
	return nil
}
func (m *memMarketplaces) GetStore(_ context.Context, id string) (*entity.Store, error) {
	return m.stores[id], nil
}
func (m *memMarketplaces) ListStores(_ context.Context, marketplaceID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range m.stores {
		if marketplaceID == "" || s.MarketplaceID == marketplaceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memCosts) CreateCostType(_ context.Context, ct *entity.CostType) error {
	m.costTypes[ct.ID] = ct
	return nil
}
func (m *memCosts) GetCostType(_ context.Context, id string) (*entity.CostType, error) {
	return m.costTypes[id], nil
}
func (m *memCosts) ListCostTypes(context.Context) ([]entity.CostType, error) {
	var out []entity.CostType
	for _, ct := range m.costTypes {
		out = append(out, *ct)
	}
	return out, nil
}
func (m *memCosts) AddStoreCost(_ context.Context, sc *entity.StoreCost) error {
	sc.ID = int64(len(m.storeCosts) + 1)
	m.storeCosts = append(m.storeCosts, *sc)
	return nil
}
func (m *memCosts) ListStoreCosts(context.Context, string) ([]entity.StoreCost, error) {
	return m.storeCosts, nil
}
func (m *memCosts) AddStoreProductCost(_ context.Context, c *entity.StoreProductCost) error {
	c.ID = int64(len(m.spCosts) + 1)
	m.spCosts = append(m.spCosts, *c)
	return nil
}
func (m *memCosts) ListStoreProductCosts(context.Context, int64) ([]entity.StoreProductCost, error) {
	return m.spCosts, nil
}
func (m *memCosts) DeleteStoreCost(_ context.Context, storeID string, id int64) error {
	i := slices.IndexFunc(m.storeCosts, func(sc entity.StoreCost) bool { return sc.ID == id && sc.StoreID == storeID })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.storeCosts = slices.Delete(m.storeCosts, i, i+1)
	return nil
}
func (m *memCosts) DeleteStoreProductCost(_ context.Context, storeProductID, id int64) error {
	i := slices.IndexFunc(m.spCosts, func(c entity.StoreProductCost) bool { return c.ID == id && c.StoreProductID == storeProductID })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.spCosts = slices.Delete(m.spCosts, i, i+1)
	return nil
}

func (m *memStoreProducts) Create(_ context.Context, sp *entity.StoreProduct) error {
	sp.ID = int64(len(m.storeProducts) + 1)
	m.storeProducts = append(m.storeProducts, sp)
	return nil
}
func (m *memStoreProducts) GetByID(_ context.Context, id int64) (*entity.StoreProduct, error) {
	for _, sp := range m.storeProducts {
		if sp.ID == id {
			return sp, nil
		}
	}
	return nil, nil
}
func (m *memStoreProducts) GetByStoreAndProduct(_ context.Context, storeID, productID string) (*entity.StoreProduct, error) {
	for _, sp := range m.storeProducts {
		if sp.StoreID == storeID && sp.ProductID == productID {
			return sp, nil
		}
	}
	return nil, nil
}
func (m *memStoreProducts) ListByStore(_ context.Context, storeID string) ([]*entity.StoreProduct, error) {
	var out []*entity.StoreProduct
	for _, sp := range m.storeProducts {
		if sp.StoreID == storeID {
			out = append(out, sp)
		}
	}
	return out, nil
}
func (m *memStoreProducts) UpdateSellPrice(_ context.Context, sp *entity.StoreProduct) error {
	i := slices.IndexFunc(m.storeProducts, func(x *entity.StoreProduct) bool { return x.ID == sp.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.storeProducts[i] = sp
	return nil
}
func (m *memStoreProducts) Delete(_ context.Context, id int64) error {
	i := slices.IndexFunc(m.storeProducts, func(x *entity.StoreProduct) bool { return x.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.storeProducts = slices.Delete(m.storeProducts, i, i+1)
	return nil
}
func (m *memStoreProducts) AddDiscount(_ context.Context, x *entity.Discount) error {
	x.ID = int64(len(m.discounts) + 1)
	m.discounts = append(m.discounts, *x)
	return nil
}
func (m *memStoreProducts) ListDiscounts(context.Context, int64) ([]entity.Discount, error) {
	return m.discounts, nil
}
func (m *memStoreProducts) DeleteDiscount(_ context.Context, storeProductID, id int64) error {
	i := slices.IndexFunc(m.discounts, func(x entity.Discount) bool { return x.ID == id && x.StoreProductID == storeProductID })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.discounts = slices.Delete(m.discounts, i, i+1)
	return nil
}

func (m *memAds) Create(_ context.Context, r *entity.AdRecord) error {
	r.ID = int64(len(m.ads) + 1)
	m.ads = append(m.ads, *r)
	return nil
}
func (m *memAds) ListByStoreProduct(context.Context, string, string) ([]entity.AdRecord, error) {
	return m.ads, nil
}
func (m *memAds) List(_ context.Context, f repository.AdFilter) ([]entity.AdRecord, error) {
	m.lastFilter = f
	return m.ads, nil
}
func (m *memAds) Delete(_ context.Context, id int64) error {
	i := slices.IndexFunc(m.ads, func(r entity.AdRecord) bool { return r.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	m.ads = slices.Delete(m.ads, i, i+1)
	return nil
}

func newCatalog() (*UseCase, *memRepos) {
	m := newMem()
	uc := NewUseCase((*memMaterials)(m), (*memProducts)(m), (*memMarketplaces)(m), (*memCosts)(m), (*memStoreProducts)(m), (*memAds)(m))
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return uc, m
}

// seeded tienda shopee-1, producto kaos-01, material kain y tipo de costo admin (percent).
func seeded(t *testing.T) (*UseCase, *memRepos) {
	t.Helper()
	uc, m := newCatalog()
	ctx := context.Background()
	_, err := uc.CreateMaterial(ctx, dto.CreateMaterialRequest{ID: "kain", Nama: "Kain", HargaTotal: d("100000"), JumlahUnit: d("100"), Satuan: "meter"})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, dto.CreateProductRequest{ID: "kaos-01", Nama: "Kaos Polos"})
	require.NoError(t, err)
	_, err = uc.CreateMarketplace(ctx, dto.CreateMarketplaceRequest{ID: "shopee", Name: "Shopee"})
	require.NoError(t, err)
	_, err = uc.CreateStore(ctx, dto.CreateStoreRequest{ID: "shopee-1", MarketplaceID: "shopee", Name: "Toko Kaos"})
	require.NoError(t, err)
	_, err = uc.CreateCostType(ctx, dto.CreateCostTypeRequest{ID: "admin", Name: "Biaya Admin", CalcType: "percent"})
	require.NoError(t, err)
	return uc, m
}

// ── Materials ────────────────────────────────────────────────

func TestCreateMaterial_DerivaHargaSatuan(t *testing.T) {
	uc, _ := newCatalog()
	out, err := uc.CreateMaterial(context.Background(), dto.CreateMaterialRequest{
		ID: " kain ", Nama: "Kain", HargaTotal: d("100000"), JumlahUnit: d("100"), Satuan: "meter",
	})
	require.NoError(t, err)
	assert.Equal(t, "kain", out.ID)
	assert.True(t, out.HargaSatuan.Equal(d("1000")))
}

func TestCreateMaterial_Validacion(t *testing.T) {
	base := dto.CreateMaterialRequest{ID: "x", Nama: "X", HargaTotal: d("10"), JumlahUnit: d("1"), Satuan: "pcs"}
	cases := map[string]func(r *dto.CreateMaterialRequest){
		"sin id":            func(r *dto.CreateMaterialRequest) { r.ID = "" },
		"sin nama":          func(r *dto.CreateMaterialRequest) { r.Nama = " " },
		"sin satuan":        func(r *dto.CreateMaterialRequest) { r.Satuan = "" },
		"harga negativa":    func(r *dto.CreateMaterialRequest) { r.HargaTotal = d("-1") },
		"jumlah_unit cero":  func(r *dto.CreateMaterialRequest) { r.JumlahUnit = decimal.Zero },
		"jumlah_unit menor": func(r *dto.CreateMaterialRequest) { r.JumlahUnit = d("-3") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			uc, _ := newCatalog()
			in := base
			mutate(&in)
			_, err := uc.CreateMaterial(context.Background(), in)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), "%v", err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestCreateMaterial_Duplicado(t *testing.T) {
	uc, _ := seeded(t)
	_, err := uc.CreateMaterial(context.Background(), dto.CreateMaterialRequest{ID: "kain", Nama: "Kain", HargaTotal: d("1"), JumlahUnit: d("1"), Satuan: "m"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestUpdateMaterial_Parcial(t *testing.T) {
	uc, m := seeded(t)
	price := d("150000")
	out, err := uc.UpdateMaterial(context.Background(), "kain", dto.UpdateMaterialRequest{HargaTotal: &price})
	require.NoError(t, err)
	assert.True(t, out.HargaSatuan.Equal(d("1500")))
	assert.Equal(t, "Kain", m.materials["kain"].Name)

	zero := decimal.Zero
	_, err = uc.UpdateMaterial(context.Background(), "kain", dto.UpdateMaterialRequest{JumlahUnit: &zero})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.UpdateMaterial(context.Background(), "nope", dto.UpdateMaterialRequest{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteMaterial(t *testing.T) {
	uc, m := seeded(t)
	require.NoError(t, uc.DeleteMaterial(context.Background(), "kain"))
	assert.Empty(t, m.materials)
	assert.True(t, errors.Is(uc.DeleteMaterial(context.Background(), "kain"), domain.ErrNotFound))
}

func TestListMaterials_PaginaPorDefecto(t *testing.T) {
	uc, _ := seeded(t)
	out, err := uc.ListMaterials(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 20, out.Page.Limit)
}

// ── Products / BOM ───────────────────────────────────────────

func TestAddBOMItem(t *testing.T) {
	uc, _ := seeded(t)
	ctx := context.Background()

	item, err := uc.AddBOMItem(ctx, "kaos-01", dto.AddBOMItemRequest{MaterialID: "kain", Qty: d("2")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)

	_, err = uc.AddBOMItem(ctx, "kaos-01", dto.AddBOMItemRequest{MaterialID: "kain", Qty: decimal.Zero})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.AddBOMItem(ctx, "kaos-01", dto.AddBOMItemRequest{MaterialID: "benang", Qty: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.AddBOMItem(ctx, "nope", dto.AddBOMItemRequest{MaterialID: "kain", Qty: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.AddExtraCost(ctx, "kaos-01", dto.AddExtraCostRequest{Label: "packing", Value: d("2000")})
	require.NoError(t, err)
	_, err = uc.AddExtraCost(ctx, "kaos-01", dto.AddExtraCostRequest{Label: "packing", Value: d("-1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	p, err := uc.GetProduct(ctx, "kaos-01")
	require.NoError(t, err)
	assert.Len(t, p.BOM, 1)
	assert.Len(t, p.ExtraCosts, 1)
}

// ── Stores / costs ───────────────────────────────────────────

func TestCreateStore_MarketplaceDebeExistir(t *testing.T) {
	uc, _ := seeded(t)
	_, err := uc.CreateStore(context.Background(), dto.CreateStoreRequest{ID: "tp-1", MarketplaceID: "tokopedia", Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.CreateStore(context.Background(), dto.CreateStoreRequest{ID: "shopee-1", MarketplaceID: "shopee", Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestCreateCostType_Validacion(t *testing.T) {
	uc, m := seeded(t)
	assert.Equal(t, entity.ApplyToPrice, m.costTypes["admin"].ApplyTo, "apply_to por defecto")

	_, err := uc.CreateCostType(context.Background(), dto.CreateCostTypeRequest{ID: "x", Name: "X", CalcType: "tiered"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.CreateCostType(context.Background(), dto.CreateCostTypeRequest{ID: "x", Name: "X", CalcType: "fixed", ApplyTo: "gross"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.CreateCostType(context.Background(), dto.CreateCostTypeRequest{ID: "admin", Name: "X", CalcType: "fixed"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestAddStoreCost_PercentEnRango(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()

	_, err := uc.AddStoreCost(ctx, "shopee-1", dto.AddCostRequest{CostTypeID: "admin", Value: d("0.05")})
	require.NoError(t, err)
	assert.Len(t, m.storeCosts, 1)

	_, err = uc.AddStoreCost(ctx, "shopee-1", dto.AddCostRequest{CostTypeID: "admin", Value: d("5")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "5 no es una fracción")

	_, err = uc.AddStoreCost(ctx, "shopee-1", dto.AddCostRequest{CostTypeID: "nope", Value: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.AddStoreCost(ctx, "nope", dto.AddCostRequest{CostTypeID: "admin", Value: d("0.1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ── Store products ───────────────────────────────────────────

func TestCreateStoreProduct_UnicoPorTienda(t *testing.T) {
	uc, _ := seeded(t)
	ctx := context.Background()

	sp, err := uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("20000")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sp.ID)

	_, err = uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("21000")})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("-1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestStoreProduct_CostosYDescuentos(t *testing.T) {
	uc, _ := seeded(t)
	ctx := context.Background()
	sp, err := uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("20000")})
	require.NoError(t, err)

	_, err = uc.AddStoreProductCost(ctx, sp.ID, dto.AddCostRequest{CostTypeID: "admin", Value: d("0.08")})
	require.NoError(t, err)
	_, err = uc.AddDiscount(ctx, sp.ID, dto.AddDiscountRequest{DiscountType: "percent", Value: d("0.1")})
	require.NoError(t, err)

	_, err = uc.AddDiscount(ctx, sp.ID, dto.AddDiscountRequest{DiscountType: "percent", Value: d("10")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.AddDiscount(ctx, sp.ID, dto.AddDiscountRequest{DiscountType: "bogo", Value: d("1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.AddDiscount(ctx, 99, dto.AddDiscountRequest{DiscountType: "fixed", Value: d("1000")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	got, err := uc.GetStoreProduct(ctx, sp.ID)
	require.NoError(t, err)
	assert.Len(t, got.Costs, 1)
	require.Len(t, got.Discounts, 1)
	assert.Equal(t, "percent", got.Discounts[0].DiscountType)
}

// ── Ads ──────────────────────────────────────────────────────

func TestCreateAdRecord_MetricasDerivadas(t *testing.T) {
	uc, _ := seeded(t)
	sales := d("500000")
	out, err := uc.CreateAdRecord(context.Background(), dto.CreateAdRecordRequest{
		StoreID: "shopee-1", ProductID: "kaos-01", Campaign: "GMV Max",
		Spend: d("50000"), GMV: d("150000"), Orders: 10, TotalSales: &sales,
	})
	require.NoError(t, err)
	assert.True(t, out.ROAS.Equal(d("3")))
	assert.True(t, out.CPA.Equal(d("5000")))
	assert.True(t, out.AOV.Equal(d("15000")))
	assert.True(t, out.TACoS.Equal(d("0.1")))
	require.NotNil(t, out.ACOS)
}

func TestCreateAdRecord_Validacion(t *testing.T) {
	uc, _ := seeded(t)
	ctx := context.Background()
	neg := d("-1")
	cases := map[string]dto.CreateAdRecordRequest{
		"spend negativo":       {StoreID: "shopee-1", ProductID: "kaos-01", Spend: neg},
		"orders negativo":      {StoreID: "shopee-1", ProductID: "kaos-01", Orders: -1},
		"total_sales negativo": {StoreID: "shopee-1", ProductID: "kaos-01", TotalSales: &neg},
	}
	for name, in := range cases {
		_, err := uc.CreateAdRecord(ctx, in)
		assert.Truef(t, errors.Is(err, domain.ErrInvalidInput), name)
	}
	_, err := uc.CreateAdRecord(ctx, dto.CreateAdRecordRequest{StoreID: "nope", ProductID: "kaos-01"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListAdRecords_PasaFiltro(t *testing.T) {
	uc, m := seeded(t)
	_, err := uc.CreateAdRecord(context.Background(), dto.CreateAdRecordRequest{StoreID: "shopee-1", ProductID: "kaos-01", Orders: 0})
	require.NoError(t, err)

	out, err := uc.ListAdRecords(context.Background(), "shopee-1", "", dto.PageRequest{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].ROAS, "spend cero no tiene ROAS")
	assert.Equal(t, repository.AdFilter{StoreID: "shopee-1", Limit: 5}, m.lastFilter)
}

// ── Listados, cambios y bajas ────────────────────────────────

func TestListProducts_Paginado(t *testing.T) {
	uc, _ := seeded(t)
	ctx := context.Background()
	_, err := uc.CreateProduct(ctx, dto.CreateProductRequest{ID: "kaos-02", Nama: "Kaos Lengan Panjang"})
	require.NoError(t, err)

	out, err := uc.ListProducts(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "kaos-01", out.Items[0].ID)
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 0}, out.Page)

	out, err = uc.ListProducts(ctx, dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "kaos-02", out.Items[0].ID)
}

func TestUpdateProduct(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()

	out, err := uc.UpdateProduct(ctx, "kaos-01", dto.UpdateProductRequest{Nama: "Kaos Oversize"})
	require.NoError(t, err)
	assert.Equal(t, "Kaos Oversize", out.Nama)
	assert.Equal(t, "Kaos Oversize", m.products["kaos-01"].Name)

	_, err = uc.UpdateProduct(ctx, "kaos-01", dto.UpdateProductRequest{Nama: " "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.UpdateProduct(ctx, "nope", dto.UpdateProductRequest{Nama: "X"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteProduct_ConBOM(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()
	_, err := uc.AddBOMItem(ctx, "kaos-01", dto.AddBOMItemRequest{MaterialID: "kain", Qty: d("2")})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, "kaos-01"))
	assert.Empty(t, m.products)
	assert.Empty(t, m.bom)
	assert.True(t, errors.Is(uc.DeleteProduct(ctx, "kaos-01"), domain.ErrNotFound))
}

func TestDeleteBOMItemYExtraCost(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()
	item, err := uc.AddBOMItem(ctx, "kaos-01", dto.AddBOMItemRequest{MaterialID: "kain", Qty: d("2")})
	require.NoError(t, err)
	ec, err := uc.AddExtraCost(ctx, "kaos-01", dto.AddExtraCostRequest{Label: "packing", Value: d("2000")})
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.DeleteBOMItem(ctx, "kaos-01", 0), domain.ErrInvalidInput))
	assert.True(t, errors.Is(uc.DeleteBOMItem(ctx, "nope", item.ID), domain.ErrNotFound))
	err = uc.DeleteBOMItem(ctx, "kaos-01", 42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "baris BOM 42")

	require.NoError(t, uc.DeleteBOMItem(ctx, "kaos-01", item.ID))
	require.NoError(t, uc.DeleteExtraCost(ctx, "kaos-01", ec.ID))
	assert.Empty(t, m.bom)
	assert.Empty(t, m.extras)
	assert.True(t, errors.Is(uc.DeleteExtraCost(ctx, "kaos-01", ec.ID), domain.ErrNotFound))
}

func TestListados_MarketplacesTiendasYTiposDeCosto(t *testing.T) {
	uc, _ := seeded(t)
	ctx := context.Background()

	mks, err := uc.ListMarketplaces(ctx)
	require.NoError(t, err)
	require.Len(t, mks, 1)
	assert.Equal(t, "shopee", mks[0].ID)

	stores, err := uc.ListStores(ctx, "shopee")
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "shopee-1", stores[0].ID)

	_, err = uc.ListStores(ctx, "tokopedia")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "marketplace inexistente")

	all, err := uc.ListStores(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	store, err := uc.GetStore(ctx, "shopee-1")
	require.NoError(t, err)
	assert.Equal(t, "shopee", store.MarketplaceID)
	_, err = uc.GetStore(ctx, "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	types, err := uc.ListCostTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "admin", types[0].ID)
}

func TestStoreCosts_ListarYQuitar(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()
	c, err := uc.AddStoreCost(ctx, "shopee-1", dto.AddCostRequest{CostTypeID: "admin", Value: d("0.05")})
	require.NoError(t, err)

	list, err := uc.ListStoreCosts(ctx, "shopee-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Value.Equal(d("0.05")))

	assert.True(t, errors.Is(uc.DeleteStoreCost(ctx, "shopee-1", -1), domain.ErrInvalidInput))
	assert.True(t, errors.Is(uc.DeleteStoreCost(ctx, "nope", c.ID), domain.ErrNotFound))
	require.NoError(t, uc.DeleteStoreCost(ctx, "shopee-1", c.ID))
	assert.Empty(t, m.storeCosts)
	assert.True(t, errors.Is(uc.DeleteStoreCost(ctx, "shopee-1", c.ID), domain.ErrNotFound))
}

func TestUpdateStoreProduct_CambiaPrecio(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()
	sp, err := uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("20000")})
	require.NoError(t, err)

	out, err := uc.UpdateStoreProduct(ctx, sp.ID, dto.UpdateStoreProductRequest{HargaJual: d("25000")})
	require.NoError(t, err)
	assert.True(t, out.HargaJual.Equal(d("25000")))
	assert.True(t, m.storeProducts[0].SellPrice.Equal(d("25000")))

	_, err = uc.UpdateStoreProduct(ctx, sp.ID, dto.UpdateStoreProductRequest{HargaJual: d("-5")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.UpdateStoreProduct(ctx, 99, dto.UpdateStoreProductRequest{HargaJual: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	list, err := uc.ListStoreProducts(ctx, "shopee-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].HargaJual.Equal(d("25000")))
	_, err = uc.ListStoreProducts(ctx, "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestStoreProduct_QuitarCostoDescuentoYListado(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()
	sp, err := uc.CreateStoreProduct(ctx, dto.CreateStoreProductRequest{StoreID: "shopee-1", ProductID: "kaos-01", HargaJual: d("20000")})
	require.NoError(t, err)
	c, err := uc.AddStoreProductCost(ctx, sp.ID, dto.AddCostRequest{CostTypeID: "admin", Value: d("0.08")})
	require.NoError(t, err)
	disc, err := uc.AddDiscount(ctx, sp.ID, dto.AddDiscountRequest{DiscountType: "fixed", Value: d("1000")})
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.DeleteDiscount(ctx, sp.ID, 0), domain.ErrInvalidInput))
	err = uc.DeleteDiscount(ctx, sp.ID, disc.ID+10)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "diskon")

	require.NoError(t, uc.DeleteDiscount(ctx, sp.ID, disc.ID))
	require.NoError(t, uc.DeleteStoreProductCost(ctx, sp.ID, c.ID))
	assert.Empty(t, m.discounts)
	assert.Empty(t, m.spCosts)

	require.NoError(t, uc.DeleteStoreProduct(ctx, sp.ID))
	assert.Empty(t, m.storeProducts)
	assert.True(t, errors.Is(uc.DeleteStoreProduct(ctx, sp.ID), domain.ErrNotFound))
}

func TestDeleteAdRecord(t *testing.T) {
	uc, m := seeded(t)
	ctx := context.Background()
	r, err := uc.CreateAdRecord(ctx, dto.CreateAdRecordRequest{StoreID: "shopee-1", ProductID: "kaos-01", Spend: d("1000")})
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.DeleteAdRecord(ctx, 0), domain.ErrInvalidInput))
	require.NoError(t, uc.DeleteAdRecord(ctx, r.ID))
	assert.Empty(t, m.ads)
	assert.True(t, errors.Is(uc.DeleteAdRecord(ctx, r.ID), domain.ErrNotFound))
}
