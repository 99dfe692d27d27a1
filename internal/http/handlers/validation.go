package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

const priceMessage = "El precio no puede ser menor o igual a cero."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"mapstructure", "json"} {
			if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// validateInput returns one entry per failing field, or nil.
func validateInput(in any) []ValidationError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationError{{Field: "", Description: err.Error()}}
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{Field: fe.Field(), Description: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	if fe.Field() == "precio" && (fe.Tag() == "gt" || fe.Tag() == "required") {
		return priceMessage
	}
	switch fe.Tag() {
	case "required":
		return "El campo es obligatorio."
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual que %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual que %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
	case "max":
		return fmt.Sprintf("No puede superar %s caracteres.", fe.Param())
	case "email":
		return "El correo electrónico no es válido."
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s.", fe.Param())
	}
	return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
}
