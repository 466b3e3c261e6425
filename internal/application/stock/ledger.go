package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Ledger centraliza toda mutación de cantidades de stock. Los workflows de
// compra, venta y plan separe ajustan existencias únicamente a través de él,
// siempre con un delta con signo y dentro de la transacción del caller.
type Ledger struct{}

// NewLedger construye el ledger de stock.
func NewLedger() *Ledger { return &Ledger{} }

// AdjustInTx localiza la variante por su llave natural (producto, color, talla)
// bloqueando la fila (SELECT FOR UPDATE) y aplica quantity += delta.
//   - Si no existe y delta > 0, la crea con cantidad = delta y precio de venta 0.
//   - Si no existe y delta <= 0, retorna ErrNotFound.
//   - Si el resultado sería negativo, retorna InsufficientStockError sin aplicar cambios.
//   - Si newUnitCost no es nil, sobrescribe el precio de compra.
//
// Nunca hace Commit: la atomicidad la garantiza el TxRunner del caller.
func (l *Ledger) AdjustInTx(
	stockRepo repository.StockItemRepository,
	key entity.StockKey,
	delta int64,
	newUnitCost *decimal.Decimal,
) (*entity.StockItem, error) {
	item, err := stockRepo.GetByKeyForUpdate(key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		if delta <= 0 {
			return nil, domain.ErrNotFound
		}
		item = &entity.StockItem{
			ID:            uuid.New().String(),
			ProductID:     key.ProductID,
			ColorID:       key.ColorID,
			SizeID:        key.SizeID,
			Quantity:      delta,
			PurchasePrice: decimal.Zero,
			SalePrice:     decimal.Zero,
			UpdatedAt:     time.Now(),
		}
		if newUnitCost != nil {
			item.PurchasePrice = *newUnitCost
		}
		if err := stockRepo.Create(item); err != nil {
			return nil, err
		}
		return item, nil
	}
	return l.apply(stockRepo, item, delta, newUnitCost)
}

// AdjustItemInTx ajusta una variante ya existente por su ID (reversas de venta
// y liberación de reservas). Mismas reglas de no-negatividad que AdjustInTx.
func (l *Ledger) AdjustItemInTx(
	stockRepo repository.StockItemRepository,
	stockItemID string,
	delta int64,
) (*entity.StockItem, error) {
	item, err := stockRepo.GetByIDForUpdate(stockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return l.apply(stockRepo, item, delta, nil)
}

func (l *Ledger) apply(
	stockRepo repository.StockItemRepository,
	item *entity.StockItem,
	delta int64,
	newUnitCost *decimal.Decimal,
) (*entity.StockItem, error) {
	newQty := item.Quantity + delta
	if newQty < 0 {
		return nil, &domain.InsufficientStockError{
			StockItemID: item.ID,
			Available:   item.Quantity,
			Requested:   -delta,
		}
	}
	item.Quantity = newQty
	if newUnitCost != nil {
		item.PurchasePrice = *newUnitCost
	}
	item.UpdatedAt = time.Now()
	if err := stockRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}
