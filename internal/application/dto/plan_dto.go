package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PlanLineRequest línea de reserva del body de creación de plan.
type PlanLineRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	ColorID   *string `json:"color_id,omitempty"`
	SizeID    *string `json:"size_id,omitempty"`
	Quantity  int64   `json:"quantity" validate:"gt=0"`
}

// CreatePlanRequest body para POST /api/plans.
type CreatePlanRequest struct {
	CustomerID    string            `json:"customer_id" validate:"required"`
	UserID        string            `json:"user_id" validate:"required"`
	InitialDebt   decimal.Decimal   `json:"initial_debt"`
	RemainingDebt decimal.Decimal   `json:"remaining_debt"`
	Lines         []PlanLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdatePlanRequest body para PUT /api/plans/:id. Solo los campos presentes se
// aplican; la ausencia nunca se interpreta como default.
type UpdatePlanRequest struct {
	CustomerID    *string          `json:"customer_id,omitempty"`
	InitialDebt   *decimal.Decimal `json:"initial_debt,omitempty"`
	RemainingDebt *decimal.Decimal `json:"remaining_debt,omitempty"`
	Status        *string          `json:"status,omitempty"`
	DueAt         *time.Time       `json:"due_at,omitempty"`
}

// ApplyPaymentRequest body para POST /api/plans/:id/payments.
type ApplyPaymentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept,omitempty"`
}

// PlanLineResponse línea de reserva en respuestas.
type PlanLineResponse struct {
	ID          string `json:"id"`
	StockItemID string `json:"stock_item_id"`
	Quantity    int64  `json:"quantity"`
}

// PlanResponse plan separe con sus líneas.
type PlanResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	UserID        string             `json:"user_id"`
	InitialDebt   decimal.Decimal    `json:"initial_debt"`
	RemainingDebt decimal.Decimal    `json:"remaining_debt"`
	PercentPaid   decimal.Decimal    `json:"percent_paid"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	DueAt         time.Time          `json:"due_at"`
	Lines         []PlanLineResponse `json:"lines,omitempty"`
}

// PlanPaymentResponse abono en respuestas.
type PlanPaymentResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Concept   string          `json:"concept,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToPlanResponse convierte la entidad y sus líneas a DTO.
func ToPlanResponse(p *entity.LayawayPlan, lines []*entity.PlanLine) PlanResponse {
	resp := PlanResponse{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		UserID:        p.UserID,
		InitialDebt:   p.InitialDebt,
		RemainingDebt: p.RemainingDebt,
		PercentPaid:   p.PercentPaid,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		DueAt:         p.DueAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, PlanLineResponse{ID: l.ID, StockItemID: l.StockItemID, Quantity: l.Quantity})
	}
	return resp
}

// ToPlanPaymentResponse convierte un abono a DTO.
func ToPlanPaymentResponse(p *entity.PlanPayment) PlanPaymentResponse {
	return PlanPaymentResponse{ID: p.ID, Amount: p.Amount, Concept: p.Concept, CreatedAt: p.CreatedAt}
}
