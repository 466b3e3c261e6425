package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository puerto CRUD del catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}

// ColorRepository puerto CRUD de colores.
type ColorRepository interface {
	Create(color *entity.Color) error
	GetByID(id string) (*entity.Color, error)
	List() ([]*entity.Color, error)
}

// BrandRepository puerto CRUD de marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
}

// SizeRepository puerto CRUD de tallas.
type SizeRepository interface {
	Create(size *entity.Size) error
	GetByID(id string) (*entity.Size, error)
	List() ([]*entity.Size, error)
}

// ProviderRepository puerto CRUD de proveedores.
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	List(limit, offset int) ([]*entity.Provider, error)
}

// PaymentMethodRepository puerto CRUD de medios de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
}
