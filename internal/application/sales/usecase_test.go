package sales

import (
	"context"
	"errors"
	"sync"
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

type saleFixture struct {
	store      *memory.Store
	uc         *SaleUseCase
	userID     string
	methodID   string
	customerID string
	itemID     string
}

// newSaleFixture siembra un usuario, un medio de pago, un cliente y una
// variante de stock con 10 unidades a precio de venta 1500.
func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	store := memory.NewStore()

	user := &entity.User{ID: uuid.New().String(), Name: "Marcela", Role: entity.RoleVendedor, CreatedAt: time.Now()}
	require.NoError(t, store.Users().Create(user))
	method := &entity.PaymentMethod{ID: uuid.New().String(), Name: "Efectivo"}
	require.NoError(t, store.PaymentMethods().Create(method))
	customer := &entity.Customer{ID: uuid.New().String(), Name: "Julián", CreatedAt: time.Now()}
	require.NoError(t, store.Customers().Create(customer))

	item := &entity.StockItem{
		ID:            uuid.New().String(),
		ProductID:     "camisa-1",
		Quantity:      10,
		PurchasePrice: decimal.NewFromInt(1000),
		SalePrice:     decimal.NewFromInt(1500),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, store.Stock().Create(item))

	uc := NewSaleUseCase(store, stock.NewLedger(), store.Sales(), store.Customers(), store.Users(), store.PaymentMethods())
	return &saleFixture{
		store:      store,
		uc:         uc,
		userID:     user.ID,
		methodID:   method.ID,
		customerID: customer.ID,
		itemID:     item.ID,
	}
}

func (f *saleFixture) createInput(quantity int64, discount decimal.Decimal) CreateInput {
	return CreateInput{
		UserID:          f.userID,
		PaymentMethodID: f.methodID,
		Discount:        discount,
		Lines: []LineInput{
			{ProductID: "camisa-1", Quantity: quantity, Price: decimal.NewFromInt(1500)},
		},
	}
}

func TestCreateSale_DiscountsStock(t *testing.T) {
	f := newSaleFixture(t)

	sale, lines, err := f.uc.Create(context.Background(), f.createInput(3, decimal.NewFromInt(500)))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// Total = 3×1500 − 500.
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)

	item, err := f.store.Stock().GetByID(f.itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.Quantity)

	// La línea captura el precio pactado.
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(1500)))
}

func TestCreateSale_InsufficientStockRollsBack(t *testing.T) {
	f := newSaleFixture(t)

	_, _, err := f.uc.Create(context.Background(), f.createInput(15, decimal.Zero))
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(10), stockErr.Available)
	assert.Equal(t, int64(15), stockErr.Requested)

	// Nada cambió: ni stock ni ventas.
	item, err := f.store.Stock().GetByID(f.itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Quantity)
	list, err := f.store.Sales().List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateSale_InvalidTotalRejected(t *testing.T) {
	f := newSaleFixture(t)

	// Descuento igual al bruto deja total en 0.
	_, _, err := f.uc.Create(context.Background(), f.createInput(2, decimal.NewFromInt(3000)))
	require.ErrorIs(t, err, domain.ErrInvalidTotal)

	item, _ := f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)
}

func TestCreateSale_UnknownReferences(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	in := f.createInput(1, decimal.Zero)
	in.UserID = uuid.New().String()
	_, _, err := f.uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = f.createInput(1, decimal.Zero)
	ghost := uuid.New().String()
	in.CustomerID = &ghost
	_, _, err = f.uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelSale_RestoresStock(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, _, err := f.uc.Create(ctx, f.createInput(4, decimal.Zero))
	require.NoError(t, err)
	item, _ := f.store.Stock().GetByID(f.itemID)
	require.Equal(t, int64(6), item.Quantity)

	cancelled, err := f.uc.Cancel(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, cancelled.Status)

	item, _ = f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)

	// Cancelar dos veces no duplica la reversa.
	_, err = f.uc.Cancel(ctx, sale.ID)
	require.ErrorIs(t, err, domain.ErrInvalidState)
	item, _ = f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)
}

func TestCancelSale_ConcurrentSingleReversal(t *testing.T) {
	f := newSaleFixture(t)

	sale, _, err := f.uc.Create(context.Background(), f.createInput(4, decimal.Zero))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Cancel(context.Background(), sale.ID)
		}(i)
	}
	wg.Wait()

	// La lectura con bloqueo serializa las cancelaciones: una ejecuta la
	// reversa, la otra ya ve el estado cancelado.
	var ok, invalid int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInvalidState):
			invalid++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, invalid)

	// El stock vuelve exactamente al nivel previo a la venta, sin doble abono.
	item, _ := f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)
}

func TestUpdateSale_OnlyWhileCompleted(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, _, err := f.uc.Create(ctx, f.createInput(2, decimal.Zero))
	require.NoError(t, err)

	newDiscount := decimal.NewFromInt(200)
	updated, err := f.uc.Update(ctx, sale.ID, UpdateInput{
		CustomerID: &f.customerID,
		Discount:   &newDiscount,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CustomerID)
	assert.Equal(t, f.customerID, *updated.CustomerID)
	assert.True(t, updated.Discount.Equal(newDiscount))
	// El total no se recalcula al editar el descuento.
	assert.True(t, updated.Total.Equal(sale.Total))

	_, err = f.uc.Cancel(ctx, sale.ID)
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, sale.ID, UpdateInput{Discount: &newDiscount})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCreateSale_ConcurrentLastUnit(t *testing.T) {
	f := newSaleFixture(t)

	// Dejar una sola unidad disponible.
	_, _, err := f.uc.Create(context.Background(), f.createInput(9, decimal.Zero))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.uc.Create(context.Background(), f.createInput(1, decimal.Zero))
		}(i)
	}
	wg.Wait()

	// Exactamente una venta gana la última unidad; la otra falla por stock.
	var ok, insufficient int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		var stockErr *domain.InsufficientStockError
		if assert.ErrorAs(t, err, &stockErr) {
			insufficient++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, insufficient)

	item, _ := f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(0), item.Quantity)
}
