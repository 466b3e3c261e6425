package usecase

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeBrandRepo repositorio en memoria para probar el catálogo de marcas.
type fakeBrandRepo struct {
	brands map[string]*entity.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: map[string]*entity.Brand{}}
}

func (f *fakeBrandRepo) Create(b *entity.Brand) error {
	for _, existing := range f.brands {
		if existing.Name == b.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *b
	f.brands[b.ID] = &cp
	return nil
}

func (f *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) {
	if b, ok := f.brands[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBrandRepo) List() ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(f.brands))
	for _, b := range f.brands {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// fakeProductRepo repositorio en memoria mínimo para productos.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func TestCreateBrand(t *testing.T) {
	brandRepo := newFakeBrandRepo()
	uc := NewCatalogUseCase(brandRepo, nil, nil, nil, nil)

	brand, err := uc.CreateBrand("Arturo Calle")
	require.NoError(t, err)
	assert.NotEmpty(t, brand.ID)

	_, err = uc.CreateBrand("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateBrand("Arturo Calle")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	brands, err := uc.ListBrands()
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Arturo Calle", brands[0].Name)
}

func TestCreateProduct_BrandMustExist(t *testing.T) {
	brandRepo := newFakeBrandRepo()
	productRepo := newFakeProductRepo()
	catalogUC := NewCatalogUseCase(brandRepo, nil, nil, nil, nil)
	productUC := NewProductUseCase(productRepo, brandRepo)

	// Marca desconocida.
	ghost := "no-existe"
	_, err := productUC.Create("Camisa manga larga", &ghost)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Con marca registrada, el producto queda asociado.
	brand, err := catalogUC.CreateBrand("Gef")
	require.NoError(t, err)
	product, err := productUC.Create("Camisa manga larga", &brand.ID)
	require.NoError(t, err)
	require.NotNil(t, product.BrandID)
	assert.Equal(t, brand.ID, *product.BrandID)

	// Sin marca sigue siendo válido.
	product, err = productUC.Create("Correa cuero", nil)
	require.NoError(t, err)
	assert.Nil(t, product.BrandID)
}
