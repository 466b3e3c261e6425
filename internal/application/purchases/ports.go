package purchases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el registro de compra y los
// aumentos de stock se confirmen o reviertan juntos.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}

// StockLedger punto único de mutación de stock (delta con signo).
type StockLedger interface {
	AdjustInTx(stockRepo repository.StockItemRepository, key entity.StockKey, delta int64, newUnitCost *decimal.Decimal) (*entity.StockItem, error)
}
