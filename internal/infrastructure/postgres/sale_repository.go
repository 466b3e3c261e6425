package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, user_id, payment_method_id, date, discount, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CustomerID, s.UserID, s.PaymentMethodID, s.Date,
		s.Discount, s.Total, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta con el precio capturado.
func (r *SaleRepo) CreateLine(l *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (id, sale_id, line_no, stock_item_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.SaleID, l.LineNo, l.StockItemID, l.Quantity, l.Price,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_id, user_id, payment_method_id, date, discount, total, status, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.UserID, &s.PaymentMethodID, &s.Date,
		&s.Discount, &s.Total, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetByIDForUpdate obtiene la venta y bloquea su fila (SELECT FOR UPDATE).
// Dos cancelaciones concurrentes de la misma venta se serializan aquí: la
// segunda ve el estado ya cancelado y no repite la reversa de stock.
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_id, user_id, payment_method_id, date, discount, total, status, created_at, updated_at
		FROM sales WHERE id = $1 FOR UPDATE`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.UserID, &s.PaymentMethodID, &s.Date,
		&s.Discount, &s.Total, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale for update: %w", err)
	}
	return &s, nil
}

// GetLines obtiene las líneas de la venta en orden de inserción (line_no).
func (r *SaleRepo) GetLines(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, line_no, stock_item_id, quantity, price
		FROM sale_lines WHERE sale_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.LineNo, &l.StockItemID, &l.Quantity, &l.Price); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Update persiste la cabecera editable (cliente, medio de pago, descuento, estado).
// Las líneas son inmutables: no existe UPDATE de sale_lines.
func (r *SaleRepo) Update(s *entity.Sale) error {
	query := `
		UPDATE sales
		SET customer_id = $2, payment_method_id = $3, discount = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CustomerID, s.PaymentMethodID, s.Discount, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// List lista ventas de la más reciente a la más antigua.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, customer_id, user_id, payment_method_id, date, discount, total, status, created_at, updated_at
		FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.UserID, &s.PaymentMethodID, &s.Date,
			&s.Discount, &s.Total, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}
