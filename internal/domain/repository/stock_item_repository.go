package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para variantes de stock.
// Los Get* retornan (nil, nil) cuando la variante no existe.
type StockItemRepository interface {
	GetByID(id string) (*entity.StockItem, error)
	GetByKey(key entity.StockKey) (*entity.StockItem, error)
	// GetByKeyForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de transacciones.
	GetByKeyForUpdate(key entity.StockKey) (*entity.StockItem, error)
	// GetByIDForUpdate bloquea la fila por ID; usar en cancelaciones y liberaciones.
	GetByIDForUpdate(id string) (*entity.StockItem, error)
	Create(item *entity.StockItem) error
	Update(item *entity.StockItem) error
	List(limit, offset int) ([]*entity.StockItem, error)
}
