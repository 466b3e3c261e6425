package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
