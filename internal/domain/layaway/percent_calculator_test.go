package layaway_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/layaway"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestPercentPaid(t *testing.T) {
	cases := []struct {
		name      string
		initial   int64
		remaining int64
		want      int64
	}{
		{"sin abonos", 100000, 100000, 0},
		{"abono parcial", 100000, 60000, 40},
		{"saldado", 100000, 0, 100},
		{"mitad", 50000, 25000, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := layaway.PercentPaid(d(tc.initial), d(tc.remaining))
			assert.True(t, d(tc.want).Equal(got), "esperado %d, obtenido %s", tc.want, got)
		})
	}
}

// El porcentaje queda acotado a [0,100] incluso con entradas fuera de rango:
// deuda restante negativa o mayor a la inicial.
func TestPercentPaid_Acotado(t *testing.T) {
	assert.True(t, layaway.PercentPaid(d(100000), d(-5000)).Equal(d(100)))
	assert.True(t, layaway.PercentPaid(d(100000), d(150000)).Equal(d(0)))
}

// Deuda inicial cero o negativa no divide: el porcentaje es 0.
func TestPercentPaid_DeudaInicialCero(t *testing.T) {
	assert.True(t, layaway.PercentPaid(decimal.Zero, d(1000)).Equal(decimal.Zero))
	assert.True(t, layaway.PercentPaid(d(-10), decimal.Zero).Equal(decimal.Zero))
}
