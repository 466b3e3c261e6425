package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, customer_id, user_id, initial_debt, remaining_debt, percent_paid, status, created_at, due_at`

func scanPlan(row pgx.Row) (*entity.LayawayPlan, error) {
	var p entity.LayawayPlan
	err := row.Scan(&p.ID, &p.CustomerID, &p.UserID, &p.InitialDebt, &p.RemainingDebt,
		&p.PercentPaid, &p.Status, &p.CreatedAt, &p.DueAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste la cabecera del plan.
func (r *PlanRepo) Create(p *entity.LayawayPlan) error {
	query := `
		INSERT INTO layaway_plans (id, customer_id, user_id, initial_debt, remaining_debt, percent_paid, status, created_at, due_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CustomerID, p.UserID, p.InitialDebt, p.RemainingDebt,
		p.PercentPaid, p.Status, p.CreatedAt, p.DueAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de reserva.
func (r *PlanRepo) CreateLine(l *entity.PlanLine) error {
	query := `
		INSERT INTO plan_lines (id, plan_id, line_no, stock_item_id, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.PlanID, l.LineNo, l.StockItemID, l.Quantity)
	if err != nil {
		return fmt.Errorf("insert plan line: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID. (nil, nil) si no existe.
func (r *PlanRepo) GetByID(id string) (*entity.LayawayPlan, error) {
	query := `SELECT ` + planColumns + ` FROM layaway_plans WHERE id = $1`
	plan, err := scanPlan(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

// GetByIDForUpdate obtiene el plan y bloquea su fila (SELECT FOR UPDATE) para
// serializar abonos concurrentes contra la misma deuda.
func (r *PlanRepo) GetByIDForUpdate(id string) (*entity.LayawayPlan, error) {
	query := `SELECT ` + planColumns + ` FROM layaway_plans WHERE id = $1 FOR UPDATE`
	plan, err := scanPlan(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get plan for update: %w", err)
	}
	return plan, nil
}

// GetLines obtiene las líneas de reserva del plan en orden de inserción.
func (r *PlanRepo) GetLines(planID string) ([]*entity.PlanLine, error) {
	query := `SELECT id, plan_id, line_no, stock_item_id, quantity FROM plan_lines WHERE plan_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, planID)
	if err != nil {
		return nil, fmt.Errorf("list plan lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.PlanLine
	for rows.Next() {
		var l entity.PlanLine
		if err := rows.Scan(&l.ID, &l.PlanID, &l.LineNo, &l.StockItemID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan plan line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Update persiste la cabecera del plan (deudas, porcentaje, estado, fecha límite).
func (r *PlanRepo) Update(p *entity.LayawayPlan) error {
	query := `
		UPDATE layaway_plans
		SET customer_id = $2, initial_debt = $3, remaining_debt = $4, percent_paid = $5, status = $6, due_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CustomerID, p.InitialDebt, p.RemainingDebt, p.PercentPaid, p.Status, p.DueAt,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// DeletePayments elimina el historial de abonos del plan.
func (r *PlanRepo) DeletePayments(planID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM plan_payments WHERE plan_id = $1`, planID)
	if err != nil {
		return fmt.Errorf("delete plan payments: %w", err)
	}
	return nil
}

// DeleteLines elimina las líneas de reserva. Debe ejecutarse antes de Delete
// para respetar el orden referencial.
func (r *PlanRepo) DeleteLines(planID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM plan_lines WHERE plan_id = $1`, planID)
	if err != nil {
		return fmt.Errorf("delete plan lines: %w", err)
	}
	return nil
}

// Delete elimina la cabecera del plan. ErrNotFound si la fila ya no existe,
// para que una eliminación perdida frente a otra concurrente no pase en silencio.
func (r *PlanRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM layaway_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByStatus lista planes en un estado dado.
func (r *PlanRepo) ListByStatus(status string, limit, offset int) ([]*entity.LayawayPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM layaway_plans WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.listPlans(query, status, limit, offset)
}

// ListOverdue lista planes activos con fecha límite vencida.
func (r *PlanRepo) ListOverdue(now time.Time, limit, offset int) ([]*entity.LayawayPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM layaway_plans WHERE status = $1 AND due_at < $2 ORDER BY due_at LIMIT $3 OFFSET $4`
	return r.listPlans(query, entity.PlanStatusActive, now, limit, offset)
}

func (r *PlanRepo) listPlans(query string, args ...any) ([]*entity.LayawayPlan, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.LayawayPlan
	for rows.Next() {
		var p entity.LayawayPlan
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.UserID, &p.InitialDebt, &p.RemainingDebt,
			&p.PercentPaid, &p.Status, &p.CreatedAt, &p.DueAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}

// CreatePayment persiste un abono.
func (r *PlanRepo) CreatePayment(p *entity.PlanPayment) error {
	query := `
		INSERT INTO plan_payments (id, plan_id, amount, concept, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.PlanID, p.Amount, nullIfEmpty(p.Concept), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert plan payment: %w", err)
	}
	return nil
}

// ListPayments historial de abonos del plan, del más antiguo al más reciente.
func (r *PlanRepo) ListPayments(planID string) ([]*entity.PlanPayment, error) {
	query := `SELECT id, plan_id, amount, concept, created_at FROM plan_payments WHERE plan_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, planID)
	if err != nil {
		return nil, fmt.Errorf("list plan payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.PlanPayment
	for rows.Next() {
		var p entity.PlanPayment
		var concept *string
		if err := rows.Scan(&p.ID, &p.PlanID, &p.Amount, &concept, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan payment: %w", err)
		}
		if concept != nil {
			p.Concept = *concept
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
