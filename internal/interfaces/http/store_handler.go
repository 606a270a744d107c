package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
)

// StoreHandler marketplaces, tiendas, tipos de costo y store-products.
type StoreHandler struct {
	uc CatalogService
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc CatalogService) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// CreateMarketplace godoc
// @Summary      Crear marketplace
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarketplaceRequest  true  "id y name"
// @Success      201   {object}  dto.MarketplaceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/marketplaces [post]
func (h *StoreHandler) CreateMarketplace(c *fiber.Ctx) error {
	var in dto.CreateMarketplaceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateMarketplace(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateStore godoc
// @Summary      Crear tienda
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "id, marketplace_id, name"
// @Success      201   {object}  dto.StoreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateStore(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateCostType godoc
// @Summary      Crear tipo de costo de marketplace
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostTypeRequest  true  "calc_type percent|fixed, apply_to price|after_discount"
// @Success      201   {object}  dto.CostTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cost-types [post]
func (h *StoreHandler) CreateCostType(c *fiber.Ctx) error {
	var in dto.CreateCostTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCostType(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddStoreCost godoc
// @Summary      Asignar costo a tienda
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tienda"
// @Param        body  body  dto.AddCostRequest  true  "cost_type_id y value"
// @Success      201   {object}  dto.CostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/costs [post]
func (h *StoreHandler) AddStoreCost(c *fiber.Ctx) error {
	var in dto.AddCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddStoreCost(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateStoreProduct godoc
// @Summary      Listar producto en tienda
// @Tags         store-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreProductRequest  true  "store_id, product_id, harga_jual"
// @Success      201   {object}  dto.StoreProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/store-products [post]
func (h *StoreHandler) CreateStoreProduct(c *fiber.Ctx) error {
	var in dto.CreateStoreProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateStoreProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetStoreProduct godoc
// @Summary      Obtener store-product con costos y descuentos
// @Tags         store-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del store-product"
// @Success      200  {object}  dto.StoreProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-products/{id} [get]
func (h *StoreHandler) GetStoreProduct(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.GetStoreProduct(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddStoreProductCost godoc
// @Summary      Costo específico del producto en la tienda
// @Description  Reemplaza el costo de tienda del mismo tipo.
// @Tags         store-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del store-product"
// @Param        body  body  dto.AddCostRequest  true  "cost_type_id y value"
// @Success      201   {object}  dto.CostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/store-products/{id}/costs [post]
func (h *StoreHandler) AddStoreProductCost(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	var in dto.AddCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddStoreProductCost(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddDiscount godoc
// @Summary      Agregar descuento
// @Tags         store-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del store-product"
// @Param        body  body  dto.AddDiscountRequest  true  "discount_type percent|fixed y value"
// @Success      201   {object}  dto.DiscountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/store-products/{id}/discounts [post]
func (h *StoreHandler) AddDiscount(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	var in dto.AddDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddDiscount(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMarketplaces godoc
// @Summary      Listar marketplaces
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MarketplaceResponse
// @Router       /api/marketplaces [get]
func (h *StoreHandler) ListMarketplaces(c *fiber.Ctx) error {
	out, err := h.uc.ListMarketplaces(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListStores godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        marketplace_id  query  string  false  "Filtrar por marketplace"
// @Success      200  {array}   dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	out, err := h.uc.ListStores(c.UserContext(), c.Query("marketplace_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetStore godoc
// @Summary      Obtener tienda
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) GetStore(c *fiber.Ctx) error {
	out, err := h.uc.GetStore(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListCostTypes godoc
// @Summary      Listar tipos de costo
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CostTypeResponse
// @Router       /api/cost-types [get]
func (h *StoreHandler) ListCostTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListCostTypes(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListStoreCosts godoc
// @Summary      Costos a nivel tienda
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {array}   dto.CostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/costs [get]
func (h *StoreHandler) ListStoreCosts(c *fiber.Ctx) error {
	out, err := h.uc.ListStoreCosts(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteStoreCost godoc
// @Summary      Quitar costo de tienda
// @Tags         stores
// @Security     Bearer
// @Param        id       path  string  true  "ID de la tienda"
// @Param        cost_id  path  int     true  "ID del costo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/costs/{cost_id} [delete]
func (h *StoreHandler) DeleteStoreCost(c *fiber.Ctx) error {
	costID, ok, err := paramInt64(c, "cost_id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteStoreCost(c.UserContext(), c.Params("id"), costID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListStoreProducts godoc
// @Summary      Listar productos de una tienda
// @Tags         store-products
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  true  "ID de la tienda"
// @Success      200  {array}   dto.StoreProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-products [get]
func (h *StoreHandler) ListStoreProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListStoreProducts(c.UserContext(), c.Query("store_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStoreProduct godoc
// @Summary      Cambiar precio de venta
// @Tags         store-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del store-product"
// @Param        body  body  dto.UpdateStoreProductRequest  true  "harga_jual"
// @Success      200   {object}  dto.StoreProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/store-products/{id} [put]
func (h *StoreHandler) UpdateStoreProduct(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateStoreProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStoreProduct(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteStoreProduct godoc
// @Summary      Quitar producto de la tienda
// @Tags         store-products
// @Security     Bearer
// @Param        id   path  int  true  "ID del store-product"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-products/{id} [delete]
func (h *StoreHandler) DeleteStoreProduct(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteStoreProduct(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteStoreProductCost godoc
// @Summary      Quitar costo específico del producto
// @Tags         store-products
// @Security     Bearer
// @Param        id       path  int  true  "ID del store-product"
// @Param        cost_id  path  int  true  "ID del costo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-products/{id}/costs/{cost_id} [delete]
func (h *StoreHandler) DeleteStoreProductCost(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	costID, ok, err := paramInt64(c, "cost_id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteStoreProductCost(c.UserContext(), id, costID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteDiscount godoc
// @Summary      Quitar descuento
// @Tags         store-products
// @Security     Bearer
// @Param        id           path  int  true  "ID del store-product"
// @Param        discount_id  path  int  true  "ID del descuento"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-products/{id}/discounts/{discount_id} [delete]
func (h *StoreHandler) DeleteDiscount(c *fiber.Ctx) error {
	id, ok, err := paramInt64(c, "id")
	if !ok {
		return err
	}
	discountID, ok, err := paramInt64(c, "discount_id")
	if !ok {
		return err
	}
	if err := h.uc.DeleteDiscount(c.UserContext(), id, discountID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
