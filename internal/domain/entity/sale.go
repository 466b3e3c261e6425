package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Una venta nace completada y solo puede pasar a cancelada.
const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale representa una venta. Total es derivado: Σ cantidad×precio − descuento.
type Sale struct {
	ID              string
	CustomerID      *string
	UserID          string
	PaymentMethodID string
	Date            time.Time
	Discount        decimal.Decimal
	Total           decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SaleLine línea de venta. Price es el precio capturado al momento de la venta;
// nunca se recalcula desde el precio vigente de la variante.
type SaleLine struct {
	ID          string
	SaleID      string
	// LineNo posición de la línea dentro de la venta, base 1. Los IDs son
	// UUID y no conservan el orden de inserción.
	LineNo      int
	StockItemID string
	Quantity    int64
	Price       decimal.Decimal
}
