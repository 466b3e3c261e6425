package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `INSERT INTO customers (id, name, document, phone, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.Document), nullIfEmpty(c.Phone), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT id, name, document, phone, created_at FROM customers WHERE id = $1`
	var c entity.Customer
	var document, phone *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &document, &phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if document != nil {
		c.Document = *document
	}
	if phone != nil {
		c.Phone = *phone
	}
	return &c, nil
}

// List lista clientes por nombre.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT id, name, document, phone, created_at FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var document, phone *string
		if err := rows.Scan(&c.ID, &c.Name, &document, &phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		if document != nil {
			c.Document = *document
		}
		if phone != nil {
			c.Phone = *phone
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}
