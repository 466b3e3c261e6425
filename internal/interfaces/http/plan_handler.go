package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/layaway"
)

// PlanHandler maneja las peticiones HTTP para planes separe.
type PlanHandler struct {
	uc *layaway.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *layaway.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plan separe con reserva de stock
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	lines := make([]layaway.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, layaway.LineInput{
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
		})
	}
	plan, planLines, err := h.uc.Create(c.Context(), layaway.CreateInput{
		CustomerID:    in.CustomerID,
		UserID:        in.UserID,
		InitialDebt:   in.InitialDebt,
		RemainingDebt: in.RemainingDebt,
		Lines:         lines,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPlanResponse(plan, planLines))
}

// Update godoc
// @Summary      Actualizar plan separe
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.UpdatePlanRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	plan, err := h.uc.Update(c.Context(), c.Params("id"), layaway.UpdateInput{
		CustomerID:    in.CustomerID,
		InitialDebt:   in.InitialDebt,
		RemainingDebt: in.RemainingDebt,
		Status:        in.Status,
		DueAt:         in.DueAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToPlanResponse(plan, nil))
}

// Delete godoc
// @Summary      Eliminar plan separe (libera reservas según estado)
// @Tags         plans
// @Param        id   path  string  true  "ID del plan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyPayment godoc
// @Summary      Registrar abono a plan separe
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.ApplyPaymentRequest  true  "Monto del abono"
// @Success      200   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/payments [post]
func (h *PlanHandler) ApplyPayment(c *fiber.Ctx) error {
	var in dto.ApplyPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	plan, err := h.uc.ApplyPayment(c.Context(), c.Params("id"), in.Amount, in.Concept)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToPlanResponse(plan, nil))
}

// GetByID godoc
// @Summary      Obtener plan separe por ID
// @Tags         plans
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) GetByID(c *fiber.Ctx) error {
	plan, lines, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToPlanResponse(plan, lines))
}

// ListActive godoc
// @Summary      Listar planes activos
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *PlanHandler) ListActive(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListActive(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPlanResponse(p, nil))
	}
	return c.JSON(out)
}

// ListOverdue godoc
// @Summary      Listar planes activos vencidos
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans/overdue [get]
func (h *PlanHandler) ListOverdue(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListOverdue(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPlanResponse(p, nil))
	}
	return c.JSON(out)
}

// ListPayments godoc
// @Summary      Historial de abonos del plan
// @Tags         plans
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {array}   dto.PlanPaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/payments [get]
func (h *PlanHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.uc.ListPayments(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PlanPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPlanPaymentResponse(p))
	}
	return c.JSON(out)
}
