package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CatalogUseCase agrupa los catálogos auxiliares: marcas, colores, tallas,
// proveedores y medios de pago. Todos son listas pequeñas de referencia.
type CatalogUseCase struct {
	brandRepo    repository.BrandRepository
	colorRepo    repository.ColorRepository
	sizeRepo     repository.SizeRepository
	providerRepo repository.ProviderRepository
	methodRepo   repository.PaymentMethodRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	brandRepo repository.BrandRepository,
	colorRepo repository.ColorRepository,
	sizeRepo repository.SizeRepository,
	providerRepo repository.ProviderRepository,
	methodRepo repository.PaymentMethodRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		brandRepo:    brandRepo,
		colorRepo:    colorRepo,
		sizeRepo:     sizeRepo,
		providerRepo: providerRepo,
		methodRepo:   methodRepo,
	}
}

// CreateBrand registra una marca nueva.
func (uc *CatalogUseCase) CreateBrand(name string) (*entity.Brand, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand := &entity.Brand{ID: uuid.New().String(), Name: name}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// ListBrands lista todas las marcas.
func (uc *CatalogUseCase) ListBrands() ([]*entity.Brand, error) {
	return uc.brandRepo.List()
}

// CreateColor registra un color nuevo.
func (uc *CatalogUseCase) CreateColor(name string) (*entity.Color, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	color := &entity.Color{ID: uuid.New().String(), Name: name}
	if err := uc.colorRepo.Create(color); err != nil {
		return nil, err
	}
	return color, nil
}

// ListColors lista todos los colores.
func (uc *CatalogUseCase) ListColors() ([]*entity.Color, error) {
	return uc.colorRepo.List()
}

// CreateSize registra una talla nueva.
func (uc *CatalogUseCase) CreateSize(name string) (*entity.Size, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	size := &entity.Size{ID: uuid.New().String(), Name: name}
	if err := uc.sizeRepo.Create(size); err != nil {
		return nil, err
	}
	return size, nil
}

// ListSizes lista todas las tallas.
func (uc *CatalogUseCase) ListSizes() ([]*entity.Size, error) {
	return uc.sizeRepo.List()
}

// CreateProvider registra un proveedor nuevo.
func (uc *CatalogUseCase) CreateProvider(name, phone string) (*entity.Provider, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	provider := &entity.Provider{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
	if err := uc.providerRepo.Create(provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// ListProviders lista proveedores con paginación.
func (uc *CatalogUseCase) ListProviders(limit, offset int) ([]*entity.Provider, error) {
	return uc.providerRepo.List(limit, offset)
}

// CreatePaymentMethod registra un medio de pago nuevo.
func (uc *CatalogUseCase) CreatePaymentMethod(name string) (*entity.PaymentMethod, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	method := &entity.PaymentMethod{ID: uuid.New().String(), Name: name}
	if err := uc.methodRepo.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

// ListPaymentMethods lista todos los medios de pago.
func (uc *CatalogUseCase) ListPaymentMethods() ([]*entity.PaymentMethod, error) {
	return uc.methodRepo.List()
}
