package repository

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PlanRepository puerto de persistencia para planes separe, reservas y abonos.
type PlanRepository interface {
	Create(plan *entity.LayawayPlan) error
	CreateLine(line *entity.PlanLine) error
	GetByID(id string) (*entity.LayawayPlan, error)
	// GetByIDForUpdate bloquea la fila del plan; usar al abonar para serializar pagos.
	GetByIDForUpdate(id string) (*entity.LayawayPlan, error)
	GetLines(planID string) ([]*entity.PlanLine, error)
	Update(plan *entity.LayawayPlan) error
	// Eliminación respetando orden referencial: abonos y líneas antes que el plan.
	DeletePayments(planID string) error
	DeleteLines(planID string) error
	Delete(id string) error
	ListByStatus(status string, limit, offset int) ([]*entity.LayawayPlan, error)
	// ListOverdue planes activos con fecha límite vencida (due_at < now).
	ListOverdue(now time.Time, limit, offset int) ([]*entity.LayawayPlan, error)
	CreatePayment(payment *entity.PlanPayment) error
	ListPayments(planID string) ([]*entity.PlanPayment, error)
}
