package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase consultas y edición de precios de variantes. Las cantidades solo
// cambian a través del ledger dentro de los workflows transaccionales.
type UseCase struct {
	stockRepo repository.StockItemRepository
}

// NewUseCase construye el caso de uso de stock.
func NewUseCase(stockRepo repository.StockItemRepository) *UseCase {
	return &UseCase{stockRepo: stockRepo}
}

// List lista variantes con paginación.
func (uc *UseCase) List(limit, offset int) ([]*entity.StockItem, error) {
	return uc.stockRepo.List(limit, offset)
}

// GetByID obtiene una variante por ID.
func (uc *UseCase) GetByID(id string) (*entity.StockItem, error) {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// UpdatePrices fija precio de venta y opcionalmente precio de compra.
// El precio de venta inicia en 0 al crear la variante y se define aquí.
func (uc *UseCase) UpdatePrices(id string, salePrice decimal.Decimal, purchasePrice *decimal.Decimal) (*entity.StockItem, error) {
	if salePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.SalePrice = salePrice
	if purchasePrice != nil {
		if purchasePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.PurchasePrice = *purchasePrice
	}
	item.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}
