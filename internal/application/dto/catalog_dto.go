package dto

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name    string  `json:"name" validate:"required"`
	BrandID *string `json:"brand_id,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BrandID   *string   `json:"brand_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NamedRequest body genérico para catálogos de solo nombre (marcas, colores,
// tallas, medios de pago).
type NamedRequest struct {
	Name string `json:"name" validate:"required"`
}

// NamedResponse entrada de catálogo de solo nombre.
type NamedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateProviderRequest body para POST /api/providers.
type CreateProviderRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
}

// ProviderResponse proveedor en respuestas.
type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required,oneof=admin vendedor"`
}

// UserResponse usuario en respuestas.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, BrandID: p.BrandID, CreatedAt: p.CreatedAt}
}

func ToBrandResponse(b *entity.Brand) NamedResponse { return NamedResponse{ID: b.ID, Name: b.Name} }

func ToColorResponse(c *entity.Color) NamedResponse { return NamedResponse{ID: c.ID, Name: c.Name} }

func ToSizeResponse(s *entity.Size) NamedResponse { return NamedResponse{ID: s.ID, Name: s.Name} }

func ToPaymentMethodResponse(m *entity.PaymentMethod) NamedResponse {
	return NamedResponse{ID: m.ID, Name: m.Name}
}

func ToProviderResponse(p *entity.Provider) ProviderResponse {
	return ProviderResponse{ID: p.ID, Name: p.Name, Phone: p.Phone, CreatedAt: p.CreatedAt}
}

func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Document: c.Document, Phone: c.Phone, CreatedAt: c.CreatedAt}
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt}
}
