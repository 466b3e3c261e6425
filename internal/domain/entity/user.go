package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario registrado del negocio. La autenticación se
// resuelve fuera de este servicio; aquí solo se valida existencia y rol.
type User struct {
	ID        string
	Name      string
	Role      string // admin, vendedor
	CreatedAt time.Time
}
