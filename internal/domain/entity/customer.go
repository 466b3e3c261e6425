package entity

import "time"

// Customer representa un cliente (ventas de contado o plan separe).
type Customer struct {
	ID        string
	Name      string
	Document  string // Cédula o NIT
	Phone     string
	CreatedAt time.Time
}
