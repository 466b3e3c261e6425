package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Delete(id string) error
	List(limit, offset int) ([]*entity.Expense, error)
}
