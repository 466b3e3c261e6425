package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SaleLineRequest línea del body de creación de venta.
type SaleLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	ColorID   *string         `json:"color_id,omitempty"`
	SizeID    *string         `json:"size_id,omitempty"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID      *string           `json:"customer_id,omitempty"`
	UserID          string            `json:"user_id" validate:"required"`
	PaymentMethodID string            `json:"payment_method_id" validate:"required"`
	Date            time.Time         `json:"date"`
	Discount        decimal.Decimal   `json:"discount"`
	Lines           []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateSaleRequest body para PUT /api/sales/:id. Solo los campos presentes se
// aplican; las líneas de la venta son inmutables.
type UpdateSaleRequest struct {
	CustomerID      *string          `json:"customer_id,omitempty"`
	PaymentMethodID *string          `json:"payment_method_id,omitempty"`
	Discount        *decimal.Decimal `json:"discount,omitempty"`
}

// SaleLineResponse línea de venta en respuestas.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID              string             `json:"id"`
	CustomerID      *string            `json:"customer_id,omitempty"`
	UserID          string             `json:"user_id"`
	PaymentMethodID string             `json:"payment_method_id"`
	Date            time.Time          `json:"date"`
	Discount        decimal.Decimal    `json:"discount"`
	Total           decimal.Decimal    `json:"total"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Lines           []SaleLineResponse `json:"lines,omitempty"`
}

// ToSaleResponse convierte la entidad y sus líneas a DTO.
func ToSaleResponse(s *entity.Sale, lines []*entity.SaleLine) SaleResponse {
	resp := SaleResponse{
		ID:              s.ID,
		CustomerID:      s.CustomerID,
		UserID:          s.UserID,
		PaymentMethodID: s.PaymentMethodID,
		Date:            s.Date,
		Discount:        s.Discount,
		Total:           s.Total,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, SaleLineResponse{
			ID:          l.ID,
			StockItemID: l.StockItemID,
			Quantity:    l.Quantity,
			Price:       l.Price,
		})
	}
	return resp
}
