package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// StockItemResponse variante de stock para respuestas.
type StockItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ColorID       *string         `json:"color_id,omitempty"`
	SizeID        *string         `json:"size_id,omitempty"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToStockItemResponse convierte la entidad a DTO.
func ToStockItemResponse(item *entity.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:            item.ID,
		ProductID:     item.ProductID,
		ColorID:       item.ColorID,
		SizeID:        item.SizeID,
		Quantity:      item.Quantity,
		PurchasePrice: item.PurchasePrice,
		SalePrice:     item.SalePrice,
		UpdatedAt:     item.UpdatedAt,
	}
}

// UpdateStockPricesRequest body para PUT /api/stock/:id/prices.
type UpdateStockPricesRequest struct {
	SalePrice     decimal.Decimal  `json:"sale_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
}
