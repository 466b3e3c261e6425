package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, provider_id, user_id, date, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProviderID, p.UserID, p.Date, p.Total, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de compra.
func (r *PurchaseRepo) CreateLine(l *entity.PurchaseLine) error {
	query := `
		INSERT INTO purchase_lines (id, purchase_id, line_no, stock_item_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.PurchaseID, l.LineNo, l.StockItemID, l.Quantity, l.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("insert purchase line: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID. (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT id, provider_id, user_id, date, total, created_at FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProviderID, &p.UserID, &p.Date, &p.Total, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetLines obtiene las líneas de una compra en orden de inserción (line_no).
func (r *PurchaseRepo) GetLines(purchaseID string) ([]*entity.PurchaseLine, error) {
	query := `
		SELECT id, purchase_id, line_no, stock_item_id, quantity, unit_cost
		FROM purchase_lines WHERE purchase_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.PurchaseLine
	for rows.Next() {
		var l entity.PurchaseLine
		if err := rows.Scan(&l.ID, &l.PurchaseID, &l.LineNo, &l.StockItemID, &l.Quantity, &l.UnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// List lista compras de la más reciente a la más antigua.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, provider_id, user_id, date, total, created_at
		FROM purchases ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ProviderID, &p.UserID, &p.Date, &p.Total, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}
