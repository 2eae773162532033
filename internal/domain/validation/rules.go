package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// MinPasswordLength longitud mínima del password en texto plano.
const MinPasswordLength = 6

var (
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
)

// IsPincode informa si v tiene exactamente 6 dígitos.
func IsPincode(v string) bool { return pincodeRe.MatchString(v) }

// IsPhone10 informa si v tiene exactamente 10 dígitos.
func IsPhone10(v string) bool { return phoneRe.MatchString(v) }

// Password valida el password en texto plano antes del hash.
func Password(plain string) *FieldError {
	if plain == "" {
		return &FieldError{Field: "password", Kind: KindRequired, Message: "es requerido"}
	}
	if len([]rune(plain)) < MinPasswordLength {
		return &FieldError{Field: "password", Kind: KindInvalid, Message: fmt.Sprintf("debe tener al menos %d caracteres", MinPasswordLength)}
	}
	return nil
}

// SellerCompanyLink: company_id e is_company_owner son obligatorios solo para Seller
// y deben estar ausentes para cualquier otro rol.
func SellerCompanyLink(role string, companyID *string, isCompanyOwner *bool) Errors {
	var errs Errors
	if role == entity.RoleSeller {
		if companyID == nil || strings.TrimSpace(*companyID) == "" {
			errs = append(errs, FieldError{Field: "company_id", Kind: KindConditional, Message: "es requerido para vendedores"})
		}
		if isCompanyOwner == nil {
			errs = append(errs, FieldError{Field: "is_company_owner", Kind: KindConditional, Message: "es requerido para vendedores"})
		}
		return errs
	}
	if companyID != nil {
		errs = append(errs, FieldError{Field: "company_id", Kind: KindInvalid, Message: "solo aplica a vendedores"})
	}
	if isCompanyOwner != nil {
		errs = append(errs, FieldError{Field: "is_company_owner", Kind: KindInvalid, Message: "solo aplica a vendedores"})
	}
	return errs
}

// CategoryParent: las categorías raíz no tienen padre y el resto sí.
func CategoryParent(name string, parentID *string) *FieldError {
	if entity.IsRootCategory(name) {
		if parentID != nil {
			return &FieldError{Field: "parent_id", Kind: KindConditional, Message: "las categorías raíz deben tener parent_id nulo"}
		}
		return nil
	}
	if parentID == nil || strings.TrimSpace(*parentID) == "" {
		return &FieldError{Field: "parent_id", Kind: KindConditional, Message: "las subcategorías requieren una categoría padre"}
	}
	return nil
}

// SlugChange rechaza un slug enviado por el cliente distinto del almacenado.
func SlugChange(stored, requested string) *FieldError {
	if requested != "" && requested != stored {
		return &FieldError{Field: "slug", Kind: KindImmutable, Message: "el slug no se puede modificar manualmente"}
	}
	return nil
}

// EstablishedYear exige un año entre 1800 y el año en curso.
func EstablishedYear(year, currentYear int) *FieldError {
	if year < entity.MinEstablishedYear || year > currentYear {
		return &FieldError{Field: "established_year", Kind: KindInvalid, Message: fmt.Sprintf("debe estar entre %d y %d", entity.MinEstablishedYear, currentYear)}
	}
	return nil
}

// NonNegative exige d >= 0.
func NonNegative(field string, d decimal.Decimal) *FieldError {
	if d.IsNegative() {
		return &FieldError{Field: field, Kind: KindInvalid, Message: "debe ser mayor o igual a 0"}
	}
	return nil
}

// PriceBounds exige min <= max cuando max está definido (> 0).
func PriceBounds(minPrice, maxPrice decimal.Decimal) *FieldError {
	if maxPrice.IsPositive() && minPrice.GreaterThan(maxPrice) {
		return &FieldError{Field: "min_price", Kind: KindInvalid, Message: "no puede superar max_price"}
	}
	return nil
}

// Availability exige uno de los estados de disponibilidad.
func Availability(v string) *FieldError {
	if v != entity.AvailabilityInStock && v != entity.AvailabilityOutOfStock {
		return &FieldError{Field: "availability", Kind: KindInvalid, Message: fmt.Sprintf("valor %q no permitido; opciones: %s, %s", v, entity.AvailabilityInStock, entity.AvailabilityOutOfStock)}
	}
	return nil
}
