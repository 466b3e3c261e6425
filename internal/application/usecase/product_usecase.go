package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock por variante se
// maneja vía compras y ventas, nunca directo sobre el producto.
type ProductUseCase struct {
	repo      repository.ProductRepository
	brandRepo repository.BrandRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, brandRepo repository.BrandRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, brandRepo: brandRepo}
}

// Create crea un producto nuevo. Si trae marca, debe existir en el catálogo.
func (uc *ProductUseCase) Create(name string, brandID *string) (*entity.Product, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if brandID != nil {
		brand, err := uc.brandRepo.GetByID(*brandID)
		if err != nil || brand == nil {
			return nil, domain.ErrNotFound
		}
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		BrandID:   brandID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]*entity.Product, error) {
	return uc.repo.List(limit, offset)
}
