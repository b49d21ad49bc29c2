package validator

import "github.com/go-playground/validator/v10"

// ErrorCampo describe una validación fallida de un campo del request.
type ErrorCampo struct {
	Campo string `json:"campo"`
	Regla string `json:"regla"`
	Valor string `json:"valor,omitempty"`
}

var validate = validator.New()

// ValidateStruct aplica las reglas de los tags `validate` del DTO y
// devuelve la lista de campos que fallaron (vacía si es válido).
func ValidateStruct(data interface{}) []ErrorCampo {
	var errores []ErrorCampo
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errores = append(errores, ErrorCampo{
				Campo: fe.StructNamespace(),
				Regla: fe.Tag(),
				Valor: fe.Param(),
			})
		}
	}
	return errores
}
