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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `INSERT INTO products (id, name, brand_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.BrandID, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, name, brand_id, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name, &p.BrandID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT id, name, brand_id, created_at FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.BrandID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

var _ repository.ColorRepository = (*ColorRepo)(nil)

// ColorRepo implementación de ColorRepository.
type ColorRepo struct {
	q Querier
}

// NewColorRepository construye el adaptador.
func NewColorRepository(q Querier) *ColorRepo { return &ColorRepo{q: q} }

func (r *ColorRepo) Create(c *entity.Color) error {
	_, err := r.q.Exec(context.Background(), `INSERT INTO colors (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert color: %w", err)
	}
	return nil
}

func (r *ColorRepo) GetByID(id string) (*entity.Color, error) {
	var c entity.Color
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM colors WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return &c, nil
}

func (r *ColorRepo) List() ([]*entity.Color, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	var colors []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		colors = append(colors, &c)
	}
	return colors, rows.Err()
}

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación de BrandRepository.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador.
func NewBrandRepository(q Querier) *BrandRepo { return &BrandRepo{q: q} }

func (r *BrandRepo) Create(b *entity.Brand) error {
	_, err := r.q.Exec(context.Background(), `INSERT INTO brands (id, name) VALUES ($1, $2)`, b.ID, b.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM brands WHERE id = $1`, id).Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}

var _ repository.SizeRepository = (*SizeRepo)(nil)

// SizeRepo implementación de SizeRepository.
type SizeRepo struct {
	q Querier
}

// NewSizeRepository construye el adaptador.
func NewSizeRepository(q Querier) *SizeRepo { return &SizeRepo{q: q} }

func (r *SizeRepo) Create(s *entity.Size) error {
	_, err := r.q.Exec(context.Background(), `INSERT INTO sizes (id, name) VALUES ($1, $2)`, s.ID, s.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert size: %w", err)
	}
	return nil
}

func (r *SizeRepo) GetByID(id string) (*entity.Size, error) {
	var s entity.Size
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM sizes WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

func (r *SizeRepo) List() ([]*entity.Size, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM sizes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()

	var sizes []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		sizes = append(sizes, &s)
	}
	return sizes, rows.Err()
}

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador.
func NewProviderRepository(q Querier) *ProviderRepo { return &ProviderRepo{q: q} }

func (r *ProviderRepo) Create(p *entity.Provider) error {
	query := `INSERT INTO providers (id, name, phone, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, nullIfEmpty(p.Phone), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	var p entity.Provider
	var phone *string
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, phone, created_at FROM providers WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &phone, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	if phone != nil {
		p.Phone = *phone
	}
	return &p, nil
}

func (r *ProviderRepo) List(limit, offset int) ([]*entity.Provider, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, phone, created_at FROM providers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var providers []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		var phone *string
		if err := rows.Scan(&p.ID, &p.Name, &phone, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		if phone != nil {
			p.Phone = *phone
		}
		providers = append(providers, &p)
	}
	return providers, rows.Err()
}

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo { return &PaymentMethodRepo{q: q} }

func (r *PaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	_, err := r.q.Exec(context.Background(), `INSERT INTO payment_methods (id, name) VALUES ($1, $2)`, m.ID, m.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM payment_methods WHERE id = $1`, id).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, &m)
	}
	return methods, rows.Err()
}
