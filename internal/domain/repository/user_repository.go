package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios del negocio.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
}
