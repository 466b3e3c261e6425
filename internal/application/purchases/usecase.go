package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CreatePurchaseUseCase registra compras a proveedor de forma transaccional:
// por cada línea aumenta el stock de la variante (creándola si es su primera
// compra) y persiste la compra con sus líneas. Todo o nada.
type CreatePurchaseUseCase struct {
	txRunner     TxRunner
	ledger       StockLedger
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
}

// NewCreatePurchaseUseCase construye el caso de uso.
func NewCreatePurchaseUseCase(
	txRunner TxRunner,
	ledger StockLedger,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		txRunner:     txRunner,
		ledger:       ledger,
		providerRepo: providerRepo,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
	}
}

// LineInput línea de compra: variante por llave natural, cantidad y costo unitario.
type LineInput struct {
	ProductID string
	ColorID   *string
	SizeID    *string
	Quantity  int64
	UnitCost  decimal.Decimal
}

// Input entrada para Create.
type Input struct {
	ProviderID string
	UserID     string
	Date       time.Time
	Lines      []LineInput
}

// Create valida referencias, abre la transacción, ajusta stock por línea,
// verifica total > 0 y persiste la compra. El fallo de cualquier línea
// revierte la compra completa: nunca se observan aumentos parciales.
func (uc *CreatePurchaseUseCase) Create(ctx context.Context, in Input) (*entity.Purchase, []*entity.PurchaseLine, error) {
	if len(in.Lines) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 || line.UnitCost.LessThan(decimal.Zero) {
			return nil, nil, domain.ErrInvalidInput
		}
	}
	provider, err := uc.providerRepo.GetByID(in.ProviderID)
	if err != nil || provider == nil {
		return nil, nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil || user == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		ProviderID: in.ProviderID,
		UserID:     in.UserID,
		Date:       date,
		CreatedAt:  now,
	}
	var lines []*entity.PurchaseLine

	err = uc.txRunner.RunPurchase(ctx, func(
		stockRepo repository.StockItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		total := decimal.Zero
		lines = lines[:0]
		for i, line := range in.Lines {
			unitCost := line.UnitCost
			key := entity.StockKey{ProductID: line.ProductID, ColorID: line.ColorID, SizeID: line.SizeID}
			item, err := uc.ledger.AdjustInTx(stockRepo, key, line.Quantity, &unitCost)
			if err != nil {
				return err
			}
			total = total.Add(unitCost.Mul(decimal.NewFromInt(line.Quantity)))
			lines = append(lines, &entity.PurchaseLine{
				ID:          uuid.New().String(),
				PurchaseID:  purchase.ID,
				LineNo:      i + 1,
				StockItemID: item.ID,
				Quantity:    line.Quantity,
				UnitCost:    unitCost,
			})
		}
		if total.LessThanOrEqual(decimal.Zero) {
			return domain.ErrInvalidTotal
		}
		purchase.Total = total
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, l := range lines {
			if err := purchaseRepo.CreateLine(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return purchase, lines, nil
}

// GetByID obtiene una compra con sus líneas.
func (uc *CreatePurchaseUseCase) GetByID(id string) (*entity.Purchase, []*entity.PurchaseLine, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if purchase == nil {
		return nil, nil, domain.ErrNotFound
	}
	lines, err := uc.purchaseRepo.GetLines(id)
	if err != nil {
		return nil, nil, err
	}
	return purchase, lines, nil
}

// List lista compras con paginación.
func (uc *CreatePurchaseUseCase) List(limit, offset int) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List(limit, offset)
}
