package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
)

// AdsHandler registros de campañas de iklan.
type AdsHandler struct {
	uc CatalogService
}

// NewAdsHandler construye el handler.
func NewAdsHandler(uc CatalogService) *AdsHandler {
	return &AdsHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar resultado de campaña
// @Tags         ads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdRecordRequest  true  "store_id, product_id, campaign, spend, gmv, orders, total_sales"
// @Success      201   {object}  dto.AdRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ads [post]
func (h *AdsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateAdRecord(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar registros de iklan con métricas derivadas
// @Tags         ads
// @Security     Bearer
// @Produce      json
// @Param        store_id    query  string  false  "Filtrar por tienda"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AdListResponse
// @Router       /api/ads [get]
func (h *AdsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAdRecords(c.UserContext(), c.Query("store_id"), c.Query("product_id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de iklan
// @Tags         ads
// @Security     Bearer
// @Param        id   path  int  true  "ID del registro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ads/{id} [delete]
func (h *AdsHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteAdRecord(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
