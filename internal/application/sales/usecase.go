package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SaleUseCase implementa el ciclo de vida de una venta: creación en estado
// completado, edición de cabecera mientras siga completada y cancelación con
// reversa total de stock. Máquina de estados: completed → cancelled, una vez.
type SaleUseCase struct {
	txRunner          TxRunner
	ledger            StockLedger
	saleRepo          repository.SaleRepository
	customerRepo      repository.CustomerRepository
	userRepo          repository.UserRepository
	paymentMethodRepo repository.PaymentMethodRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	ledger StockLedger,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:          txRunner,
		ledger:            ledger,
		saleRepo:          saleRepo,
		customerRepo:      customerRepo,
		userRepo:          userRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

// LineInput línea de venta: variante por llave natural, cantidad y precio pactado.
type LineInput struct {
	ProductID string
	ColorID   *string
	SizeID    *string
	Quantity  int64
	Price     decimal.Decimal
}

// CreateInput entrada para Create. CustomerID es opcional (venta de mostrador).
type CreateInput struct {
	CustomerID      *string
	UserID          string
	PaymentMethodID string
	Date            time.Time
	Discount        decimal.Decimal
	Lines           []LineInput
}

// UpdateInput campos editables de una venta completada. Solo se aplica lo
// explícitamente presente (punteros nil = no tocar). Las líneas son inmutables.
type UpdateInput struct {
	CustomerID      *string
	PaymentMethodID *string
	Discount        *decimal.Decimal
}

// Create valida referencias, abre la transacción, descuenta stock por línea
// (con bloqueo de fila) y persiste la venta en estado completado con el precio
// capturado en cada línea. Cualquier fallo revierte todo.
func (uc *SaleUseCase) Create(ctx context.Context, in CreateInput) (*entity.Sale, []*entity.SaleLine, error) {
	if len(in.Lines) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 || line.Price.LessThan(decimal.Zero) {
			return nil, nil, domain.ErrInvalidInput
		}
	}
	if in.Discount.LessThan(decimal.Zero) {
		return nil, nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil || user == nil {
		return nil, nil, domain.ErrNotFound
	}
	method, err := uc.paymentMethodRepo.GetByID(in.PaymentMethodID)
	if err != nil || method == nil {
		return nil, nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil || customer == nil {
			return nil, nil, domain.ErrNotFound
		}
	}

	// Total derivado: Σ cantidad×precio − descuento. Se valida antes de abrir
	// la transacción porque no depende del estado del stock.
	total := decimal.Zero
	for _, line := range in.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}
	total = total.Sub(in.Discount)
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, nil, domain.ErrInvalidTotal
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		CustomerID:      in.CustomerID,
		UserID:          in.UserID,
		PaymentMethodID: in.PaymentMethodID,
		Date:            date,
		Discount:        in.Discount,
		Total:           total,
		Status:          entity.SaleStatusCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	var lines []*entity.SaleLine

	err = uc.txRunner.RunSale(ctx, func(
		stockRepo repository.StockItemRepository,
		saleRepo repository.SaleRepository,
	) error {
		lines = lines[:0]
		for i, line := range in.Lines {
			key := entity.StockKey{ProductID: line.ProductID, ColorID: line.ColorID, SizeID: line.SizeID}
			// El ledger bloquea la fila y falla con disponible vs. solicitado
			// si la cantidad no alcanza; el rollback deja el stock intacto.
			item, err := uc.ledger.AdjustInTx(stockRepo, key, -line.Quantity, nil)
			if err != nil {
				return err
			}
			lines = append(lines, &entity.SaleLine{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				LineNo:      i + 1,
				StockItemID: item.ID,
				Quantity:    line.Quantity,
				Price:       line.Price,
			})
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, l := range lines {
			if err := saleRepo.CreateLine(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sale, lines, nil
}

// Update edita cliente, medio de pago o descuento de una venta completada.
// Una venta cancelada es inmutable. El total no se recalcula al cambiar el
// descuento: se conserva el comportamiento observado del sistema original.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in UpdateInput) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status != entity.SaleStatusCompleted {
		return nil, domain.ErrInvalidState
	}
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil || customer == nil {
			return nil, domain.ErrNotFound
		}
		sale.CustomerID = in.CustomerID
	}
	if in.PaymentMethodID != nil {
		method, err := uc.paymentMethodRepo.GetByID(*in.PaymentMethodID)
		if err != nil || method == nil {
			return nil, domain.ErrNotFound
		}
		sale.PaymentMethodID = *in.PaymentMethodID
	}
	if in.Discount != nil {
		if in.Discount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		sale.Discount = *in.Discount
	}
	sale.UpdatedAt = time.Now()
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Cancel reversa la venta: devuelve al stock la cantidad de cada línea
// original y marca la venta como cancelada, todo en una transacción.
// Cancelar una venta ya cancelada se rechaza para no duplicar la reversa;
// la venta se lee con bloqueo de fila para que dos cancelaciones
// concurrentes no pasen ambas la verificación de estado.
func (uc *SaleUseCase) Cancel(ctx context.Context, id string) (*entity.Sale, error) {
	var sale *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(
		stockRepo repository.StockItemRepository,
		saleRepo repository.SaleRepository,
	) error {
		var err error
		sale, err = saleRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == entity.SaleStatusCancelled {
			return domain.ErrInvalidState
		}
		lines, err := saleRepo.GetLines(id)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := uc.ledger.AdjustItemInTx(stockRepo, line.StockItemID, line.Quantity); err != nil {
				return err
			}
		}
		sale.Status = entity.SaleStatusCancelled
		sale.UpdatedAt = time.Now()
		return saleRepo.Update(sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(id string) (*entity.Sale, []*entity.SaleLine, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLines(id)
	if err != nil {
		return nil, nil, err
	}
	return sale, lines, nil
}

// List lista ventas con paginación.
func (uc *SaleUseCase) List(limit, offset int) ([]*entity.Sale, error) {
	return uc.saleRepo.List(limit, offset)
}
