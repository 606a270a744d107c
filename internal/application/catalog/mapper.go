package catalog

import (
	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:          m.ID,
		Nama:        m.Name,
		HargaTotal:  m.TotalPrice,
		JumlahUnit:  m.UnitCount,
		Satuan:      m.Unit,
		HargaSatuan: m.UnitPrice(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product, bom []entity.BOMItem, extras []entity.ExtraCost) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:         p.ID,
		Nama:       p.Name,
		BOM:        make([]dto.BOMItemResponse, 0, len(bom)),
		ExtraCosts: make([]dto.ExtraCostItem, 0, len(extras)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for _, it := range bom {
		out.BOM = append(out.BOM, dto.BOMItemResponse{ID: it.ID, MaterialID: it.MaterialID, Qty: it.Qty})
	}
	for _, ec := range extras {
		out.ExtraCosts = append(out.ExtraCosts, dto.ExtraCostItem{ID: ec.ID, Label: ec.Label, Value: ec.Value})
	}
	return out
}

func toCostTypeResponse(ct *entity.CostType) *dto.CostTypeResponse {
	return &dto.CostTypeResponse{ID: ct.ID, Name: ct.Name, CalcType: string(ct.CalcType), ApplyTo: string(ct.ApplyTo)}
}

func toStoreProductResponse(sp *entity.StoreProduct, costs []entity.StoreProductCost, discounts []entity.Discount) *dto.StoreProductResponse {
	out := &dto.StoreProductResponse{
		ID:        sp.ID,
		StoreID:   sp.StoreID,
		ProductID: sp.ProductID,
		HargaJual: sp.SellPrice,
		Costs:     make([]dto.CostResponse, 0, len(costs)),
		Discounts: make([]dto.DiscountResponse, 0, len(discounts)),
		CreatedAt: sp.CreatedAt,
		UpdatedAt: sp.UpdatedAt,
	}
	for _, c := range costs {
		out.Costs = append(out.Costs, dto.CostResponse{ID: c.ID, CostTypeID: c.CostTypeID, Value: c.Value})
	}
	for _, d := range discounts {
		out.Discounts = append(out.Discounts, dto.DiscountResponse{ID: d.ID, DiscountType: string(d.Type), Value: d.Value})
	}
	return out
}

func toAdRecordResponse(r *entity.AdRecord) *dto.AdRecordResponse {
	return &dto.AdRecordResponse{
		ID:         r.ID,
		StoreID:    r.StoreID,
		ProductID:  r.ProductID,
		Campaign:   r.Campaign,
		Spend:      r.Spend,
		GMV:        r.GMV,
		Orders:     r.Orders,
		TotalSales: r.TotalSales,
		ROAS:       r.ROAS(),
		ACOS:       r.ACOS(),
		AOV:        r.AOV(),
		CPA:        r.CPA(),
		TACoS:      r.TACoS(),
		CreatedAt:  r.CreatedAt,
	}
}

func toMarketplaceResponse(m *entity.Marketplace) dto.MarketplaceResponse {
	return dto.MarketplaceResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}

func toStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{ID: s.ID, MarketplaceID: s.MarketplaceID, Name: s.Name, CreatedAt: s.CreatedAt}
}
