package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos operativos.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	userRepo repository.UserRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, userRepo repository.UserRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, userRepo: userRepo}
}

// Create registra un gasto. El monto debe ser positivo y el usuario existir.
func (uc *ExpenseUseCase) Create(concept string, amount decimal.Decimal, date time.Time, userID string) (*entity.Expense, error) {
	if concept == "" || amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if date.IsZero() {
		date = now
	}
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		Concept:   concept,
		Amount:    amount,
		Date:      date,
		UserID:    userID,
		CreatedAt: now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(id string) (*entity.Expense, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return expense, nil
}

// Delete elimina un gasto por ID.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista gastos con paginación.
func (uc *ExpenseUseCase) List(limit, offset int) ([]*entity.Expense, error) {
	return uc.repo.List(limit, offset)
}
