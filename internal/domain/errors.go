package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("credenciales inválidas")

	// Errores de validación por campo; los devuelve validation.Errors vía errors.Is.
	ErrValidation          = errors.New("validación fallida")
	ErrConditionalRequired = errors.New("campo requerido según otro campo")
	ErrImmutableField      = errors.New("campo no modificable")
)
