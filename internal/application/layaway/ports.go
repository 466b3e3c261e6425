package layaway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de stock y planes atados a esa tx. La reserva (o liberación)
// de stock y el registro del plan se confirman o revierten juntos.
type TxRunner interface {
	RunPlan(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		planRepo repository.PlanRepository,
	) error) error
}

// StockLedger punto único de mutación de stock (reserva con delta negativo,
// liberación con delta positivo).
type StockLedger interface {
	AdjustInTx(stockRepo repository.StockItemRepository, key entity.StockKey, delta int64, newUnitCost *decimal.Decimal) (*entity.StockItem, error)
	AdjustItemInTx(stockRepo repository.StockItemRepository, stockItemID string, delta int64) (*entity.StockItem, error)
}
