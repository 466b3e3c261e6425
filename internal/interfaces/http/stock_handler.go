package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/stock"
)

// StockHandler consultas de stock y edición de precios. Las cantidades no se
// pueden tocar por acá: solo cambian vía compras, ventas y planes.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar variantes de stock
// @Tags         stock
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.StockItemResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToStockItemResponse(item))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener variante de stock por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID de la variante"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToStockItemResponse(item))
}

// UpdatePrices godoc
// @Summary      Fijar precios de una variante
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la variante"
// @Param        body  body  dto.UpdateStockPricesRequest  true  "Nuevos precios"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/prices [put]
func (h *StockHandler) UpdatePrices(c *fiber.Ctx) error {
	var in dto.UpdateStockPricesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.UpdatePrices(c.Params("id"), in.SalePrice, in.PurchasePrice)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToStockItemResponse(item))
}
