package entity

import "time"

// Product artículo del catálogo. El stock por variante vive en StockItem.
type Product struct {
	ID        string
	Name      string
	BrandID   *string
	CreatedAt time.Time
}

// Color variante de color del catálogo.
type Color struct {
	ID   string
	Name string
}

// Size variante de talla del catálogo.
type Size struct {
	ID   string
	Name string
}

// Brand marca de producto.
type Brand struct {
	ID   string
	Name string
}

// Provider proveedor de compras.
type Provider struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// PaymentMethod medio de pago aceptado en ventas.
type PaymentMethod struct {
	ID   string
	Name string
}
