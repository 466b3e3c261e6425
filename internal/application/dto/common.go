package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// validate instancia compartida de go-playground/validator para los requests.
var validate = validator.New()

// Validate aplica las reglas `validate` del struct; cualquier violación se
// reporta como ErrInvalidInput del dominio.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
