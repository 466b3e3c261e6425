package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios del negocio.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra un usuario con su rol.
func (uc *UserUseCase) Create(name, role string) (*entity.User, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if role != entity.RoleAdmin && role != entity.RoleVendedor {
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.repo.List()
}
