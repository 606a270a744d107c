package pricing

import (
	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	engine "github.com/jhoicas/marketplace-profit-api/internal/domain/pricing"
)

func toHPPResponse(p *entity.Product, h *engine.HPPBreakdown) *dto.HPPResponse {
	out := &dto.HPPResponse{
		ProductID:   p.ID,
		ProductNama: p.Name,
		TotalBahan:  h.TotalMaterials,
		BiayaLain:   h.OtherCosts,
		HPP:         h.HPP,
		BOMDetails:  make([]dto.BOMDetail, 0, len(h.Lines)),
		ExtraCosts:  make([]dto.ExtraCostItem, 0, len(h.ExtraCosts)),
	}
	for _, l := range h.Lines {
		out.BOMDetails = append(out.BOMDetails, dto.BOMDetail{
			MaterialID:     l.MaterialID,
			MaterialNama:   l.MaterialName,
			MaterialSatuan: l.MaterialUnit,
			Qty:            l.Qty,
			HargaSatuan:    l.UnitPrice,
			BiayaBahan:     l.Cost,
		})
	}
	for _, ec := range h.ExtraCosts {
		out.ExtraCosts = append(out.ExtraCosts, dto.ExtraCostItem{ID: ec.ID, Label: ec.Label, Value: ec.Value})
	}
	return out
}

func toFeeItems(fb engine.FeeBreakdown) []dto.FeeBreakdownItem {
	items := make([]dto.FeeBreakdownItem, 0, len(fb.Lines))
	for _, l := range fb.Lines {
		items = append(items, dto.FeeBreakdownItem{
			CostTypeID:     l.CostTypeID,
			CostTypeName:   l.CostTypeName,
			CalcType:       string(l.CalcType),
			ApplyTo:        string(l.ApplyTo),
			Value:          l.Value,
			CalculatedCost: l.Calculated,
		})
	}
	return items
}

func toPricingResponse(l *listing, fwd engine.ForwardResult) *dto.PricingResponse {
	return &dto.PricingResponse{
		StoreProductID:            l.sp.ID,
		StoreID:                   l.store.ID,
		ProductID:                 l.product.ID,
		ProductName:               l.product.Name,
		StoreName:                 l.store.Name,
		HargaJual:                 fwd.SellPrice,
		HPP:                       fwd.HPP,
		TotalDiskon:               fwd.TotalDiscount,
		HargaSetelahDiskon:        fwd.PriceAfterDiscount,
		TotalBiayaMarketplace:     fwd.Fees.Total,
		BiayaMarketplaceBreakdown: toFeeItems(fwd.Fees),
		ProfitPerOrder:            fwd.ProfitPerOrder,
		MarginPercent:             fwd.MarginPercent,
	}
}

func toReverseResponse(in dto.ReversePricingRequest, rin engine.ReverseInput, res *engine.ReverseResult) *dto.ReversePricingResponse {
	return &dto.ReversePricingResponse{
		StoreID:                   in.StoreID,
		ProductID:                 in.ProductID,
		HPP:                       rin.HPP,
		TargetType:                string(rin.TargetType),
		TargetValue:               rin.TargetValue,
		RecommendedPrice:          res.RecommendedPrice,
		ExpectedProfit:            res.ExpectedProfit,
		ExpectedMarginPercent:     res.ExpectedMarginPercent,
		BreakEvenROAS:             res.BreakEvenROAS,
		BreakEvenROASDisplay:      engine.BreakEvenDisplay(res.BreakEvenROAS),
		MaxCPA:                    res.MaxCPA,
		RoundedPrice:              res.RoundedPrice,
		RoundedProfit:             res.RoundedProfit,
		BiayaMarketplaceBreakdown: toFeeItems(res.Forward.Fees),
	}
}

func toDecisionResponse(l *listing, fwd engine.ForwardResult, d engine.Decision) *dto.DecisionResponse {
	alerts := make([]dto.AlertDTO, 0, len(d.Alerts))
	for _, a := range d.Alerts {
		alerts = append(alerts, dto.AlertDTO{Level: string(a.Level), Message: a.Message})
	}
	return &dto.DecisionResponse{
		StoreID:              l.store.ID,
		ProductID:            l.product.ID,
		ProductName:          l.product.Name,
		StoreName:            l.store.Name,
		HargaJual:            fwd.SellPrice,
		HPP:                  fwd.HPP,
		Grade:                string(d.Grade),
		GradeReason:          d.Reason,
		MarginPercent:        d.MarginPercent,
		ProfitPerOrder:       d.ProfitPerOrder,
		BreakEvenROAS:        d.BreakEvenROAS,
		BreakEvenROASDisplay: engine.BreakEvenDisplay(d.BreakEvenROAS),
		MaxCPA:               d.MaxCPA,
		HasAdsData:           d.Ads.HasData,
		TotalAdsSpend:        d.Ads.Spend,
		TotalGMV:             d.Ads.GMV,
		TotalOrders:          d.Ads.Orders,
		ROAS:                 d.Ads.ROAS,
		CPA:                  d.Ads.CPA,
		TACoS:                d.Ads.TACoS,
		AdsProfitTotal:       d.AdsProfitTotal,
		AdsProfitPerOrder:    d.AdsProfitPerOrder,
		Alerts:               alerts,
	}
}
