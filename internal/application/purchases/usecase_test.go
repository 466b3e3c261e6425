package purchases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/stock"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
)

type purchaseFixture struct {
	store      *memory.Store
	uc         *CreatePurchaseUseCase
	providerID string
	userID     string
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	store := memory.NewStore()

	provider := &entity.Provider{ID: uuid.New().String(), Name: "Distribuidora Sur", CreatedAt: time.Now()}
	require.NoError(t, store.Providers().Create(provider))
	user := &entity.User{ID: uuid.New().String(), Name: "Marcela", Role: entity.RoleAdmin, CreatedAt: time.Now()}
	require.NoError(t, store.Users().Create(user))

	uc := NewCreatePurchaseUseCase(store, stock.NewLedger(), store.Providers(), store.Users(), store.Purchases())
	return &purchaseFixture{store: store, uc: uc, providerID: provider.ID, userID: user.ID}
}

func TestCreatePurchase_NewVariant(t *testing.T) {
	f := newPurchaseFixture(t)

	in := Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines: []LineInput{
			{ProductID: "camisa-1", Quantity: 10, UnitCost: decimal.NewFromInt(25000)},
		},
	}
	purchase, lines, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, purchase.Total.Equal(decimal.NewFromInt(250000)))

	// La variante se creó con la cantidad comprada, costo registrado y precio
	// de venta pendiente de fijar.
	item, err := f.store.Stock().GetByID(lines[0].StockItemID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(10), item.Quantity)
	assert.True(t, item.PurchasePrice.Equal(decimal.NewFromInt(25000)))
	assert.True(t, item.SalePrice.IsZero())
}

func TestCreatePurchase_AccumulatesAndUpdatesCost(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	first := Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines:      []LineInput{{ProductID: "camisa-1", Quantity: 10, UnitCost: decimal.NewFromInt(25000)}},
	}
	_, lines, err := f.uc.Create(ctx, first)
	require.NoError(t, err)

	second := Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines:      []LineInput{{ProductID: "camisa-1", Quantity: 5, UnitCost: decimal.NewFromInt(28000)}},
	}
	_, _, err = f.uc.Create(ctx, second)
	require.NoError(t, err)

	item, err := f.store.Stock().GetByID(lines[0].StockItemID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), item.Quantity)
	// El costo de compra queda en el de la última compra.
	assert.True(t, item.PurchasePrice.Equal(decimal.NewFromInt(28000)))
}

func TestCreatePurchase_VariantsPorColorYTalla(t *testing.T) {
	f := newPurchaseFixture(t)

	rojo := "rojo"
	m := "m"
	in := Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines: []LineInput{
			{ProductID: "camisa-1", ColorID: &rojo, SizeID: &m, Quantity: 3, UnitCost: decimal.NewFromInt(20000)},
			{ProductID: "camisa-1", Quantity: 4, UnitCost: decimal.NewFromInt(20000)},
		},
	}
	purchase, lines, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	// Color y talla distinguen variantes: dos filas de stock independientes.
	assert.NotEqual(t, lines[0].StockItemID, lines[1].StockItemID)

	// Las líneas conservan su posición dentro de la compra al releerlas.
	_, stored, err := f.uc.GetByID(purchase.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].LineNo)
	assert.Equal(t, 2, stored[1].LineNo)
	assert.Equal(t, lines[0].StockItemID, stored[0].StockItemID)
	assert.Equal(t, lines[1].StockItemID, stored[1].StockItemID)
}

func TestCreatePurchase_ValidationErrors(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	_, _, err := f.uc.Create(ctx, Input{ProviderID: f.providerID, UserID: f.userID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = f.uc.Create(ctx, Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines:      []LineInput{{ProductID: "camisa-1", Quantity: 0, UnitCost: decimal.NewFromInt(100)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = f.uc.Create(ctx, Input{
		ProviderID: uuid.New().String(),
		UserID:     f.userID,
		Lines:      []LineInput{{ProductID: "camisa-1", Quantity: 1, UnitCost: decimal.NewFromInt(100)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchase_ZeroTotalRejected(t *testing.T) {
	f := newPurchaseFixture(t)

	in := Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines:      []LineInput{{ProductID: "camisa-1", Quantity: 5, UnitCost: decimal.Zero}},
	}
	_, _, err := f.uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidTotal)

	// El rollback no deja rastro: ni compra ni variante creada.
	items, err := f.store.Stock().List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	list, err := f.store.Purchases().List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPurchaseGetByID(t *testing.T) {
	f := newPurchaseFixture(t)

	created, _, err := f.uc.Create(context.Background(), Input{
		ProviderID: f.providerID,
		UserID:     f.userID,
		Lines:      []LineInput{{ProductID: "camisa-1", Quantity: 2, UnitCost: decimal.NewFromInt(15000)}},
	})
	require.NoError(t, err)

	got, lines, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, lines, 1)

	_, _, err = f.uc.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
