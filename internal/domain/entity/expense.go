package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo del negocio (arriendo, servicios, etc.).
type Expense struct {
	ID        string
	Concept   string
	Amount    decimal.Decimal
	Date      time.Time
	UserID    string
	CreatedAt time.Time
}
