package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/purchases"
)

// PurchaseHandler maneja las peticiones HTTP para compras a proveedor.
type PurchaseHandler struct {
	uc *purchases.CreatePurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.CreatePurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra a proveedor
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	lines := make([]purchases.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, purchases.LineInput{
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
		})
	}
	purchase, purchaseLines, err := h.uc.Create(c.Context(), purchases.Input{
		ProviderID: in.ProviderID,
		UserID:     in.UserID,
		Date:       in.Date,
		Lines:      lines,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPurchaseResponse(purchase, purchaseLines))
}

// GetByID godoc
// @Summary      Obtener compra por ID
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	purchase, lines, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToPurchaseResponse(purchase, lines))
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPurchaseResponse(p, nil))
	}
	return c.JSON(out)
}
