package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un plan separe. Active es el estado inicial; los otros tres son finales.
const (
	PlanStatusActive    = "active"
	PlanStatusDefaulted = "defaulted"
	PlanStatusVoided    = "voided"
	PlanStatusFinished  = "finished"
)

// ValidPlanStatus verifica pertenencia al conjunto de estados permitidos.
func ValidPlanStatus(s string) bool {
	switch s {
	case PlanStatusActive, PlanStatusDefaulted, PlanStatusVoided, PlanStatusFinished:
		return true
	}
	return false
}

// LayawayPlan representa un plan separe (venta por abonos con reserva de stock).
// PercentPaid es derivado de InitialDebt/RemainingDebt y se guarda materializado.
type LayawayPlan struct {
	ID            string
	CustomerID    string
	UserID        string
	InitialDebt   decimal.Decimal
	RemainingDebt decimal.Decimal
	PercentPaid   decimal.Decimal
	Status        string
	CreatedAt     time.Time
	DueAt         time.Time
}

// PlanLine reserva de una variante dentro del plan. Se elimina junto con el plan.
type PlanLine struct {
	ID          string
	PlanID      string
	// LineNo posición de la línea dentro del plan, base 1.
	LineNo      int
	StockItemID string
	Quantity    int64
}

// PlanPayment abono registrado contra un plan separe.
type PlanPayment struct {
	ID        string
	PlanID    string
	Amount    decimal.Decimal
	Concept   string
	CreatedAt time.Time
}
