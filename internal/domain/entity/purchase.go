package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra a proveedor. Es un registro append-only:
// se crea una vez y nunca se actualiza ni se reversa.
type Purchase struct {
	ID         string
	ProviderID string
	UserID     string
	Date       time.Time
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// PurchaseLine línea de compra: cantidad y costo unitario de una variante.
type PurchaseLine struct {
	ID          string
	PurchaseID  string
	// LineNo posición de la línea dentro de la compra, base 1.
	LineNo      int
	StockItemID string
	Quantity    int64
	UnitCost    decimal.Decimal
}
