package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// PurchaseRepository puerto de persistencia para compras (append-only).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateLine(line *entity.PurchaseLine) error
	GetByID(id string) (*entity.Purchase, error)
	GetLines(purchaseID string) ([]*entity.PurchaseLine, error)
	List(limit, offset int) ([]*entity.Purchase, error)
}
