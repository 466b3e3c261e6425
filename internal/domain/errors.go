package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidState      = errors.New("operación no permitida en el estado actual")
	ErrInvalidTotal      = errors.New("el total calculado debe ser mayor a cero")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que la cantidad solicitada supera la disponible.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando en los callers.
type InsufficientStockError struct {
	StockItemID string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
