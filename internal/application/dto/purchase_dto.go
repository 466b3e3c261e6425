package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PurchaseLineRequest línea del body de creación de compra.
type PurchaseLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	ColorID   *string         `json:"color_id,omitempty"`
	SizeID    *string         `json:"size_id,omitempty"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	ProviderID string                `json:"provider_id" validate:"required"`
	UserID     string                `json:"user_id" validate:"required"`
	Date       time.Time             `json:"date"`
	Lines      []PurchaseLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// PurchaseLineResponse línea de compra en respuestas.
type PurchaseLineResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	ProviderID string                 `json:"provider_id"`
	UserID     string                 `json:"user_id"`
	Date       time.Time              `json:"date"`
	Total      decimal.Decimal        `json:"total"`
	CreatedAt  time.Time              `json:"created_at"`
	Lines      []PurchaseLineResponse `json:"lines,omitempty"`
}

// ToPurchaseResponse convierte la entidad y sus líneas a DTO.
func ToPurchaseResponse(p *entity.Purchase, lines []*entity.PurchaseLine) PurchaseResponse {
	resp := PurchaseResponse{
		ID:         p.ID,
		ProviderID: p.ProviderID,
		UserID:     p.UserID,
		Date:       p.Date,
		Total:      p.Total,
		CreatedAt:  p.CreatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, PurchaseLineResponse{
			ID:          l.ID,
			StockItemID: l.StockItemID,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
		})
	}
	return resp
}
