package layaway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	domlayaway "github.com/jhoicas/tienda-api/internal/domain/layaway"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// PlanUseCase implementa el ciclo de vida de un plan separe: creación con
// reserva de stock, actualización parcial, abonos con finalización automática
// y eliminación con liberación de reservas según el estado.
type PlanUseCase struct {
	txRunner     TxRunner
	ledger       StockLedger
	planRepo     repository.PlanRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(
	txRunner TxRunner,
	ledger StockLedger,
	planRepo repository.PlanRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *PlanUseCase {
	return &PlanUseCase{
		txRunner:     txRunner,
		ledger:       ledger,
		planRepo:     planRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// LineInput reserva de una variante por llave natural.
type LineInput struct {
	ProductID string
	ColorID   *string
	SizeID    *string
	Quantity  int64
}

// CreateInput entrada para Create.
type CreateInput struct {
	CustomerID    string
	UserID        string
	InitialDebt   decimal.Decimal
	RemainingDebt decimal.Decimal
	Lines         []LineInput
}

// UpdateInput campos editables de un plan. Solo se aplica lo explícitamente
// presente (punteros nil = no tocar); nunca se sobreescribe con defaults.
type UpdateInput struct {
	CustomerID    *string
	InitialDebt   *decimal.Decimal
	RemainingDebt *decimal.Decimal
	Status        *string
	DueAt         *time.Time
}

// Create valida referencias y deudas, calcula el porcentaje abonado y, dentro
// de la transacción, persiste el plan con sus líneas y reserva el stock de
// cada una. Si alguna reserva falla se revierte la creación completa.
func (uc *PlanUseCase) Create(ctx context.Context, in CreateInput) (*entity.LayawayPlan, []*entity.PlanLine, error) {
	if len(in.Lines) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, nil, domain.ErrInvalidInput
		}
	}
	if in.InitialDebt.LessThanOrEqual(decimal.Zero) {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.RemainingDebt.LessThan(decimal.Zero) || in.RemainingDebt.GreaterThan(in.InitialDebt) {
		return nil, nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil || user == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now()
	plan := &entity.LayawayPlan{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		UserID:        in.UserID,
		InitialDebt:   in.InitialDebt,
		RemainingDebt: in.RemainingDebt,
		PercentPaid:   domlayaway.PercentPaid(in.InitialDebt, in.RemainingDebt),
		Status:        entity.PlanStatusActive,
		CreatedAt:     now,
		DueAt:         now.AddDate(0, 1, 0), // fecha límite: un mes
	}
	var lines []*entity.PlanLine

	err = uc.txRunner.RunPlan(ctx, func(
		stockRepo repository.StockItemRepository,
		planRepo repository.PlanRepository,
	) error {
		if err := planRepo.Create(plan); err != nil {
			return err
		}
		lines = lines[:0]
		for i, line := range in.Lines {
			key := entity.StockKey{ProductID: line.ProductID, ColorID: line.ColorID, SizeID: line.SizeID}
			item, err := uc.ledger.AdjustInTx(stockRepo, key, -line.Quantity, nil)
			if err != nil {
				return err
			}
			pl := &entity.PlanLine{
				ID:          uuid.New().String(),
				PlanID:      plan.ID,
				LineNo:      i + 1,
				StockItemID: item.ID,
				Quantity:    line.Quantity,
			}
			if err := planRepo.CreateLine(pl); err != nil {
				return err
			}
			lines = append(lines, pl)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return plan, lines, nil
}

// Update aplica actualización parcial. Si viene Status debe pertenecer al
// conjunto de estados válidos; si viene alguna de las deudas, los valores
// combinados (existente o nuevo) deben cumplir las mismas reglas de rango que
// en Create y el porcentaje se recalcula con ellos.
func (uc *PlanUseCase) Update(ctx context.Context, id string, in UpdateInput) (*entity.LayawayPlan, error) {
	plan, err := uc.planRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if !entity.ValidPlanStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		plan.Status = *in.Status
	}
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil || customer == nil {
			return nil, domain.ErrNotFound
		}
		plan.CustomerID = *in.CustomerID
	}
	if in.DueAt != nil {
		plan.DueAt = *in.DueAt
	}
	if in.InitialDebt != nil || in.RemainingDebt != nil {
		if in.InitialDebt != nil {
			plan.InitialDebt = *in.InitialDebt
		}
		if in.RemainingDebt != nil {
			plan.RemainingDebt = *in.RemainingDebt
		}
		// Mismas reglas de rango que en Create, sobre los valores combinados.
		if plan.InitialDebt.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if plan.RemainingDebt.LessThan(decimal.Zero) || plan.RemainingDebt.GreaterThan(plan.InitialDebt) {
			return nil, domain.ErrInvalidInput
		}
		plan.PercentPaid = domlayaway.PercentPaid(plan.InitialDebt, plan.RemainingDebt)
	}
	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Remove elimina el plan. En estados active o defaulted libera primero la
// reserva de cada línea; en voided o finished el stock ya fue conciliado y se
// elimina sin tocar existencias. Abonos y líneas se borran antes que el plan.
// El plan se lee con bloqueo de fila: dos eliminaciones concurrentes no
// liberan la reserva dos veces.
func (uc *PlanUseCase) Remove(ctx context.Context, id string) error {
	return uc.txRunner.RunPlan(ctx, func(
		stockRepo repository.StockItemRepository,
		planRepo repository.PlanRepository,
	) error {
		plan, err := planRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrNotFound
		}
		lines, err := planRepo.GetLines(id)
		if err != nil {
			return err
		}
		if plan.Status == entity.PlanStatusActive || plan.Status == entity.PlanStatusDefaulted {
			for _, line := range lines {
				if _, err := uc.ledger.AdjustItemInTx(stockRepo, line.StockItemID, line.Quantity); err != nil {
					return err
				}
			}
		}
		if err := planRepo.DeletePayments(id); err != nil {
			return err
		}
		if err := planRepo.DeleteLines(id); err != nil {
			return err
		}
		return planRepo.Delete(id)
	})
}

// ApplyPayment registra un abono: valida 0 < monto <= deuda restante,
// descuenta la deuda, recalcula el porcentaje y pasa el plan a finished cuando
// la deuda llega a 0. El abono queda en el historial del plan. Solo se admite
// sobre planes activos.
func (uc *PlanUseCase) ApplyPayment(ctx context.Context, id string, amount decimal.Decimal, concept string) (*entity.LayawayPlan, error) {
	var plan *entity.LayawayPlan
	err := uc.txRunner.RunPlan(ctx, func(
		_ repository.StockItemRepository,
		planRepo repository.PlanRepository,
	) error {
		var err error
		plan, err = planRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrNotFound
		}
		if plan.Status != entity.PlanStatusActive {
			return domain.ErrInvalidState
		}
		if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(plan.RemainingDebt) {
			return domain.ErrInvalidInput
		}
		now := time.Now()
		plan.RemainingDebt = plan.RemainingDebt.Sub(amount)
		plan.PercentPaid = domlayaway.PercentPaid(plan.InitialDebt, plan.RemainingDebt)
		if plan.RemainingDebt.IsZero() {
			plan.Status = entity.PlanStatusFinished
		}
		if err := planRepo.CreatePayment(&entity.PlanPayment{
			ID:        uuid.New().String(),
			PlanID:    id,
			Amount:    amount,
			Concept:   concept,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return planRepo.Update(plan)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// GetByID obtiene un plan con sus líneas.
func (uc *PlanUseCase) GetByID(id string) (*entity.LayawayPlan, []*entity.PlanLine, error) {
	plan, err := uc.planRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, domain.ErrNotFound
	}
	lines, err := uc.planRepo.GetLines(id)
	if err != nil {
		return nil, nil, err
	}
	return plan, lines, nil
}

// ListActive planes en estado active.
func (uc *PlanUseCase) ListActive(limit, offset int) ([]*entity.LayawayPlan, error) {
	return uc.planRepo.ListByStatus(entity.PlanStatusActive, limit, offset)
}

// ListOverdue planes activos con fecha límite vencida.
func (uc *PlanUseCase) ListOverdue(limit, offset int) ([]*entity.LayawayPlan, error) {
	return uc.planRepo.ListOverdue(time.Now(), limit, offset)
}

// ListPayments historial de abonos de un plan.
func (uc *PlanUseCase) ListPayments(id string) ([]*entity.PlanPayment, error) {
	plan, err := uc.planRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return uc.planRepo.ListPayments(id)
}
