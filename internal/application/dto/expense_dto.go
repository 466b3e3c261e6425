package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Concept string          `json:"concept" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	UserID  string          `json:"user_id" validate:"required"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToExpenseResponse convierte la entidad a DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Concept:   e.Concept,
		Amount:    e.Amount,
		Date:      e.Date,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}
