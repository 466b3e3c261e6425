package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, product_id, color_id, size_id, quantity, purchase_price, sale_price, updated_at`

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	err := row.Scan(&s.ID, &s.ProductID, &s.ColorID, &s.SizeID, &s.Quantity, &s.PurchasePrice, &s.SalePrice, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetByID obtiene una variante por su ID. (nil, nil) si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetByIDForUpdate obtiene la variante por ID y bloquea la fila (SELECT FOR UPDATE).
func (r *StockItemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// GetByKey obtiene la variante por su llave natural (producto, color, talla).
// IS NOT DISTINCT FROM compara también los NULL de color y talla.
func (r *StockItemRepo) GetByKey(key entity.StockKey) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE product_id = $1 AND color_id IS NOT DISTINCT FROM $2 AND size_id IS NOT DISTINCT FROM $3`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, key.ProductID, key.ColorID, key.SizeID))
	if err != nil {
		return nil, fmt.Errorf("get stock item by key: %w", err)
	}
	return item, nil
}

// GetByKeyForUpdate obtiene la variante por llave natural y bloquea la fila.
func (r *StockItemRepo) GetByKeyForUpdate(key entity.StockKey) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE product_id = $1 AND color_id IS NOT DISTINCT FROM $2 AND size_id IS NOT DISTINCT FROM $3
		FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, key.ProductID, key.ColorID, key.SizeID))
	if err != nil {
		return nil, fmt.Errorf("get stock item by key for update: %w", err)
	}
	return item, nil
}

// Create inserta la variante. Un índice único sobre la tripleta convierte la
// creación concurrente de la misma variante en ErrConflict.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, product_id, color_id, size_id, quantity, purchase_price, sale_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.ColorID, item.SizeID,
		item.Quantity, item.PurchasePrice, item.SalePrice, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update persiste cantidad y precios de la variante.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET quantity = $2, purchase_price = $3, sale_price = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.PurchasePrice, item.SalePrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista variantes con paginación.
func (r *StockItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY product_id, color_id, size_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ColorID, &s.SizeID, &s.Quantity, &s.PurchasePrice, &s.SalePrice, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
