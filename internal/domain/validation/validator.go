package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve go-playground/validator con las reglas propias del marketplace.
type Validator struct {
	v *validator.Validate
}

// New construye el validador: nombres de campo según la etiqueta json y etiquetas pincode/phone10.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return IsPincode(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return IsPhone10(fl.Field().String())
	})
	return &Validator{v: v}
}

var std = New()

// Struct valida s con el validador por defecto.
func Struct(s any) Errors {
	return std.Struct(s)
}

// Struct valida las etiquetas de s y traduce los fallos a FieldError.
func (val *Validator) Struct(s any) Errors {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "", Kind: KindInvalid, Message: err.Error()}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, translate(fe))
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func translate(fe validator.FieldError) FieldError {
	out := FieldError{Field: fieldPath(fe), Kind: KindInvalid}
	switch fe.Tag() {
	case "required":
		out.Kind = KindRequired
		out.Message = "es requerido"
	case "email":
		out.Message = "email inválido"
	case "url":
		out.Message = "URL inválida"
	case "pincode":
		out.Message = "el pincode debe tener exactamente 6 dígitos"
	case "phone10":
		out.Message = "el teléfono debe tener exactamente 10 dígitos"
	case "oneof":
		out.Message = fmt.Sprintf("valor %q no permitido; opciones: %s", fmt.Sprint(fe.Value()), fe.Param())
	case "gte":
		out.Message = "debe ser mayor o igual a " + fe.Param()
	case "gt":
		out.Message = "debe ser mayor que " + fe.Param()
	case "lte":
		out.Message = "debe ser menor o igual a " + fe.Param()
	case "min":
		out.Message = "longitud mínima " + fe.Param()
	default:
		out.Message = "valor inválido (" + fe.Tag() + ")"
	}
	return out
}
