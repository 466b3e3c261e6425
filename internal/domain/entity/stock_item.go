package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockKey identifica una variante de inventario: producto + color y talla opcionales.
// La tripleta es la llave natural de stock_items.
type StockKey struct {
	ProductID string
	ColorID   *string
	SizeID    *string
}

// StockItem representa la existencia y precios de una variante.
// Quantity nunca puede quedar negativa; toda mutación pasa por el ledger de stock.
type StockItem struct {
	ID            string
	ProductID     string
	ColorID       *string
	SizeID        *string
	Quantity      int64
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	UpdatedAt     time.Time
}

// Key devuelve la llave natural de la variante.
func (s *StockItem) Key() StockKey {
	return StockKey{ProductID: s.ProductID, ColorID: s.ColorID, SizeID: s.SizeID}
}
