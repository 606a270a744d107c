package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
)

// PricingHandler expone HPP, pricing directo e inverso, decisión de iklan y la hoja PDF.
type PricingHandler struct {
	uc PricingService
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc PricingService) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// GetHPP godoc
// @Summary      HPP de un producto
// @Description  Recalcula el HPP desde el BOM y los precios actuales de los materiales.
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.HPPResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hpp/{product_id} [get]
func (h *PricingHandler) GetHPP(c *fiber.Ctx) error {
	out, err := h.uc.GetHPP(c.UserContext(), c.Params("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Calculate godoc
// @Summary      Pricing directo de un store-product
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculatePricingRequest  true  "store_product_id"
// @Success      200   {object}  dto.PricingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pricing/calc [post]
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculatePricingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.StoreProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_product_id wajib diisi"})
	}
	out, err := h.uc.CalculatePricing(c.UserContext(), in.StoreProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reverse godoc
// @Summary      Precio recomendado para un objetivo de ganancia
// @Description  target_type=fixed (Rp por pedido) o percent (fracción del precio, -1 < t < 1).
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReversePricingRequest  true  "store_id, product_id, target_type, target_value"
// @Success      200   {object}  dto.ReversePricingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pricing/reverse [post]
func (h *PricingHandler) Reverse(c *fiber.Ctx) error {
	var in dto.ReversePricingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ReversePricing(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Decision godoc
// @Summary      Viabilidad de iklan de un producto en una tienda
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        store_id    path  string  true  "ID de la tienda"
// @Param        product_id  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/decision/{store_id}/{product_id} [get]
func (h *PricingHandler) Decision(c *fiber.Ctx) error {
	out, err := h.uc.GetDecision(c.UserContext(), c.Params("store_id"), c.Params("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SheetPDF godoc
// @Summary      Hoja de pricing en PDF
// @Tags         pricing
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del store-product"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pricing/store-products/{id}/pdf [get]
func (h *PricingHandler) SheetPDF(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	pdf, filename, err := h.uc.PricingSheetPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
