package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP para ventas, incluida la cancelación
// con reversa de stock y la descarga del recibo.
type SaleHandler struct {
	uc      *sales.SaleUseCase
	receipt *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, receipt *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	lines := make([]sales.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, sales.LineInput{
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}
	sale, saleLines, err := h.uc.Create(c.Context(), sales.CreateInput{
		CustomerID:      in.CustomerID,
		UserID:          in.UserID,
		PaymentMethodID: in.PaymentMethodID,
		Date:            in.Date,
		Discount:        in.Discount,
		Lines:           lines,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(sale, saleLines))
}

// Update godoc
// @Summary      Editar venta completada
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, err := h.uc.Update(c.Context(), c.Params("id"), sales.UpdateInput{
		CustomerID:      in.CustomerID,
		PaymentMethodID: in.PaymentMethodID,
		Discount:        in.Discount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSaleResponse(sale, nil))
}

// Cancel godoc
// @Summary      Cancelar venta y reponer stock
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	sale, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSaleResponse(sale, nil))
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, lines, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSaleResponse(sale, lines))
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSaleResponse(s, nil))
	}
	return c.JSON(out)
}

// DownloadReceipt godoc
// @Summary      Descargar recibo de venta en PDF
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) DownloadReceipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receipt.DownloadReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
