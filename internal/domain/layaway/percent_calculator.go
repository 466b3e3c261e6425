package layaway

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentPaid implementa el cálculo del porcentaje abonado (servicio de dominio).
// Porcentaje = (DeudaInicial - DeudaRestante) / DeudaInicial * 100, acotado a [0, 100].
// Con DeudaInicial <= 0 retorna 0.
func PercentPaid(initialDebt, remainingDebt decimal.Decimal) decimal.Decimal {
	if initialDebt.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := initialDebt.Sub(remainingDebt).Div(initialDebt).Mul(hundred)
	if pct.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
