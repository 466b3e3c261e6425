package layaway

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

type planFixture struct {
	store      *memory.Store
	uc         *PlanUseCase
	customerID string
	userID     string
	itemID     string
}

// newPlanFixture siembra cliente, usuario y una variante con 10 unidades.
func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	store := memory.NewStore()

	customer := &entity.Customer{ID: uuid.New().String(), Name: "Julián", CreatedAt: time.Now()}
	require.NoError(t, store.Customers().Create(customer))
	user := &entity.User{ID: uuid.New().String(), Name: "Marcela", Role: entity.RoleVendedor, CreatedAt: time.Now()}
	require.NoError(t, store.Users().Create(user))

	item := &entity.StockItem{
		ID:        uuid.New().String(),
		ProductID: "camisa-1",
		Quantity:  10,
		SalePrice: decimal.NewFromInt(50000),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Stock().Create(item))

	uc := NewPlanUseCase(store, stock.NewLedger(), store.Plans(), store.Customers(), store.Users())
	return &planFixture{store: store, uc: uc, customerID: customer.ID, userID: user.ID, itemID: item.ID}
}

func (f *planFixture) createInput(quantity int64, initial, remaining int64) CreateInput {
	return CreateInput{
		CustomerID:    f.customerID,
		UserID:        f.userID,
		InitialDebt:   decimal.NewFromInt(initial),
		RemainingDebt: decimal.NewFromInt(remaining),
		Lines:         []LineInput{{ProductID: "camisa-1", Quantity: quantity}},
	}
}

func TestCreatePlan_ReservesStock(t *testing.T) {
	f := newPlanFixture(t)

	plan, lines, err := f.uc.Create(context.Background(), f.createInput(3, 100000, 100000))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, entity.PlanStatusActive, plan.Status)
	assert.True(t, plan.PercentPaid.IsZero())
	assert.False(t, plan.DueAt.IsZero())

	item, _ := f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(7), item.Quantity)
}

func TestCreatePlan_DebtValidation(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	// Deuda inicial no positiva.
	_, _, err := f.uc.Create(ctx, f.createInput(1, 0, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Restante mayor que inicial.
	_, _, err = f.uc.Create(ctx, f.createInput(1, 100, 200))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePlan_InsufficientStockRollsBack(t *testing.T) {
	f := newPlanFixture(t)

	_, _, err := f.uc.Create(context.Background(), f.createInput(12, 100000, 100000))
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	item, _ := f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)
	plans, err := f.store.Plans().ListByStatus(entity.PlanStatusActive, 100, 0)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestApplyPayment_ProgressAndFinish(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	plan, _, err := f.uc.Create(ctx, f.createInput(2, 100000, 100000))
	require.NoError(t, err)

	// Primer abono: 60000 → 60% pagado.
	plan, err = f.uc.ApplyPayment(ctx, plan.ID, decimal.NewFromInt(60000), "abono inicial")
	require.NoError(t, err)
	assert.True(t, plan.RemainingDebt.Equal(decimal.NewFromInt(40000)))
	assert.True(t, plan.PercentPaid.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, entity.PlanStatusActive, plan.Status)

	// Abono mayor a la deuda restante se rechaza.
	_, err = f.uc.ApplyPayment(ctx, plan.ID, decimal.NewFromInt(50000), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Saldar la deuda pasa el plan a finished.
	plan, err = f.uc.ApplyPayment(ctx, plan.ID, decimal.NewFromInt(40000), "saldo")
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusFinished, plan.Status)
	assert.True(t, plan.PercentPaid.Equal(decimal.NewFromInt(100)))

	// El historial conserva ambos abonos.
	payments, err := f.uc.ListPayments(plan.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	// Un plan terminado no admite más abonos.
	_, err = f.uc.ApplyPayment(ctx, plan.ID, decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRemovePlan_ReleasesReservationByStatus(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	// Activo: al eliminar se libera la reserva.
	plan, _, err := f.uc.Create(ctx, f.createInput(3, 100000, 100000))
	require.NoError(t, err)
	item, _ := f.store.Stock().GetByID(f.itemID)
	require.Equal(t, int64(7), item.Quantity)

	require.NoError(t, f.uc.Remove(ctx, plan.ID))
	item, _ = f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)
	_, _, err = f.uc.GetByID(plan.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Finished: el stock ya se concilió, eliminar no lo toca.
	plan, _, err = f.uc.Create(ctx, f.createInput(2, 50000, 50000))
	require.NoError(t, err)
	_, err = f.uc.ApplyPayment(ctx, plan.ID, decimal.NewFromInt(50000), "")
	require.NoError(t, err)
	item, _ = f.store.Stock().GetByID(f.itemID)
	require.Equal(t, int64(8), item.Quantity)

	require.NoError(t, f.uc.Remove(ctx, plan.ID))
	item, _ = f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(8), item.Quantity)
}

func TestRemovePlan_ConcurrentSingleRelease(t *testing.T) {
	f := newPlanFixture(t)

	plan, _, err := f.uc.Create(context.Background(), f.createInput(3, 100000, 100000))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = f.uc.Remove(context.Background(), plan.ID)
		}(i)
	}
	wg.Wait()

	// Solo una eliminación libera la reserva; la otra ya no encuentra el plan.
	var ok, missing int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrNotFound):
			missing++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, missing)

	item, _ := f.store.Stock().GetByID(f.itemID)
	assert.Equal(t, int64(10), item.Quantity)
}

func TestUpdatePlan_PartialFields(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	plan, _, err := f.uc.Create(ctx, f.createInput(1, 100000, 100000))
	require.NoError(t, err)

	// Solo estado: lo demás queda intacto.
	defaulted := entity.PlanStatusDefaulted
	updated, err := f.uc.Update(ctx, plan.ID, UpdateInput{Status: &defaulted})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusDefaulted, updated.Status)
	assert.True(t, updated.InitialDebt.Equal(plan.InitialDebt))

	// Estado fuera del conjunto permitido.
	bogus := "paused"
	_, err = f.uc.Update(ctx, plan.ID, UpdateInput{Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cambiar la deuda restante recalcula el porcentaje con la inicial vigente.
	remaining := decimal.NewFromInt(25000)
	updated, err = f.uc.Update(ctx, plan.ID, UpdateInput{RemainingDebt: &remaining})
	require.NoError(t, err)
	assert.True(t, updated.PercentPaid.Equal(decimal.NewFromInt(75)))
}

func TestUpdatePlan_DebtRangeValidation(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	plan, _, err := f.uc.Create(ctx, f.createInput(1, 100000, 50000))
	require.NoError(t, err)

	// Restante negativo.
	negative := decimal.NewFromInt(-100)
	_, err = f.uc.Update(ctx, plan.ID, UpdateInput{RemainingDebt: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Restante mayor que la inicial vigente.
	tooHigh := decimal.NewFromInt(150000)
	_, err = f.uc.Update(ctx, plan.ID, UpdateInput{RemainingDebt: &tooHigh})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Inicial no positiva.
	zero := decimal.Zero
	_, err = f.uc.Update(ctx, plan.ID, UpdateInput{InitialDebt: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Bajar la inicial por debajo de la restante vigente también es inválido.
	small := decimal.NewFromInt(40000)
	_, err = f.uc.Update(ctx, plan.ID, UpdateInput{InitialDebt: &small})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El plan conserva sus valores originales tras los rechazos.
	got, _, err := f.uc.GetByID(plan.ID)
	require.NoError(t, err)
	assert.True(t, got.InitialDebt.Equal(decimal.NewFromInt(100000)))
	assert.True(t, got.RemainingDebt.Equal(decimal.NewFromInt(50000)))
}

func TestListOverdue(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	plan, _, err := f.uc.Create(ctx, f.createInput(1, 100000, 100000))
	require.NoError(t, err)

	// Recién creado no está vencido.
	overdue, err := f.uc.ListOverdue(100, 0)
	require.NoError(t, err)
	assert.Empty(t, overdue)

	// Atrasar la fecha límite lo vuelve vencido.
	past := time.Now().Add(-24 * time.Hour)
	_, err = f.uc.Update(ctx, plan.ID, UpdateInput{DueAt: &past})
	require.NoError(t, err)

	overdue, err = f.uc.ListOverdue(100, 0)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, plan.ID, overdue[0].ID)
}
