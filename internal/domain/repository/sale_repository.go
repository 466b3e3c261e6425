package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate bloquea la fila de la venta dentro de la transacción
	// en curso. Serializa cancelaciones concurrentes de la misma venta.
	GetByIDForUpdate(id string) (*entity.Sale, error)
	GetLines(saleID string) ([]*entity.SaleLine, error)
	// Update aplica cabecera editable (cliente, medio de pago, descuento, estado).
	Update(sale *entity.Sale) error
	List(limit, offset int) ([]*entity.Sale, error)
}
