package stock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeStockRepo repositorio en memoria para probar el ledger sin PostgreSQL.
type fakeStockRepo struct {
	items map[string]*entity.StockItem // por ID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{items: map[string]*entity.StockItem{}}
}

func sameKey(item *entity.StockItem, key entity.StockKey) bool {
	eq := func(a, b *string) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return *a == *b
	}
	return item.ProductID == key.ProductID && eq(item.ColorID, key.ColorID) && eq(item.SizeID, key.SizeID)
}

func (f *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStockRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return f.GetByID(id)
}

func (f *fakeStockRepo) GetByKey(key entity.StockKey) (*entity.StockItem, error) {
	for _, it := range f.items {
		if sameKey(it, key) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStockRepo) GetByKeyForUpdate(key entity.StockKey) (*entity.StockItem, error) {
	return f.GetByKey(key)
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	if existing, _ := f.GetByKey(item.Key()); existing != nil {
		return domain.ErrConflict
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(f.items))
	for _, it := range f.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func ptr(s string) *string { return &s }

func TestAdjustInTx_CreaVarianteEnPrimeraCompra(t *testing.T) {
	repo := newFakeStockRepo()
	ledger := NewLedger()

	cost := decimal.NewFromInt(1000)
	item, err := ledger.AdjustInTx(repo, entity.StockKey{ProductID: "7", ColorID: ptr("2")}, 10, &cost)
	require.NoError(t, err)

	assert.Equal(t, int64(10), item.Quantity)
	assert.True(t, item.PurchasePrice.Equal(cost))
	assert.True(t, item.SalePrice.IsZero(), "el precio de venta inicia en 0 hasta que se fije")
	assert.Nil(t, item.SizeID)
}

func TestAdjustInTx_VarianteAusenteConDeltaNegativo(t *testing.T) {
	repo := newFakeStockRepo()
	ledger := NewLedger()

	_, err := ledger.AdjustInTx(repo, entity.StockKey{ProductID: "99"}, -1, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustInTx_NuncaDejaCantidadNegativa(t *testing.T) {
	repo := newFakeStockRepo()
	ledger := NewLedger()

	item, err := ledger.AdjustInTx(repo, entity.StockKey{ProductID: "7"}, 5, nil)
	require.NoError(t, err)

	_, err = ledger.AdjustItemInTx(repo, item.ID, -8)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, int64(5), insErr.Available)
	assert.Equal(t, int64(8), insErr.Requested)

	// El fallo no aplica cambio alguno
	current, _ := repo.GetByID(item.ID)
	assert.Equal(t, int64(5), current.Quantity)
}

func TestAdjustInTx_SobrescribeCostoDeCompra(t *testing.T) {
	repo := newFakeStockRepo()
	ledger := NewLedger()

	first := decimal.NewFromInt(1000)
	second := decimal.NewFromInt(1200)
	item, err := ledger.AdjustInTx(repo, entity.StockKey{ProductID: "7"}, 10, &first)
	require.NoError(t, err)

	item, err = ledger.AdjustInTx(repo, item.Key(), 5, &second)
	require.NoError(t, err)
	assert.Equal(t, int64(15), item.Quantity)
	assert.True(t, item.PurchasePrice.Equal(second))
}

func TestAdjustItemInTx_IDInexistente(t *testing.T) {
	repo := newFakeStockRepo()
	ledger := NewLedger()

	_, err := ledger.AdjustItemInTx(repo, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
