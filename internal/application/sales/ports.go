package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de stock y ventas atados a esa tx. La venta y sus descuentos
// de stock se confirman o revierten juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// StockLedger punto único de mutación de stock. AdjustInTx localiza por llave
// natural; AdjustItemInTx por ID de variante (reversas de cancelación).
type StockLedger interface {
	AdjustInTx(stockRepo repository.StockItemRepository, key entity.StockKey, delta int64, newUnitCost *decimal.Decimal) (*entity.StockItem, error)
	AdjustItemInTx(stockRepo repository.StockItemRepository, stockItemID string, delta int64) (*entity.StockItem, error)
}
