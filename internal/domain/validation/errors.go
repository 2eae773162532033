package validation

import (
	"errors"
	"strings"

	"github.com/jhoicas/textile-market/internal/domain"
)

// Kind clasifica el error de un campo.
type Kind string

const (
	KindInvalid     Kind = "invalid"
	KindRequired    Kind = "required"
	KindConditional Kind = "conditional_required"
	KindImmutable   Kind = "immutable"
)

// FieldError error legible asociado a un campo (ruta con nombres JSON, ej. "address.pincode").
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors agrega los errores de campo de un registro. Un registro con Errors no se persiste.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is contra domain.ErrValidation y los sentinels por tipo.
func (e Errors) Unwrap() []error {
	out := []error{domain.ErrValidation}
	var conditional, immutable bool
	for _, fe := range e {
		switch fe.Kind {
		case KindConditional:
			conditional = true
		case KindImmutable:
			immutable = true
		}
	}
	if conditional {
		out = append(out, domain.ErrConditionalRequired)
	}
	if immutable {
		out = append(out, domain.ErrImmutableField)
	}
	return out
}

// Field devuelve el error del campo indicado, o nil.
func (e Errors) Field(field string) *FieldError {
	for i := range e {
		if e[i].Field == field {
			return &e[i]
		}
	}
	return nil
}

// Add agrega fe si no es nil.
func (e *Errors) Add(fe *FieldError) {
	if fe != nil {
		*e = append(*e, *fe)
	}
}

// Err devuelve nil si no hay errores.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Merge combina errores de campo previos con el resultado de validar un registro.
// Un err que no sea Errors se devuelve tal cual.
func Merge(errs Errors, err error) error {
	var more Errors
	if errors.As(err, &more) {
		errs = append(errs, more...)
	} else if err != nil {
		return err
	}
	return errs.Err()
}
