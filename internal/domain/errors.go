package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrInvalidState         = errors.New("transición de estado inválida")
	ErrInvalidContractRules = errors.New("reglas de contrato inválidas")
	// ErrNumberConflict indica que otro proceso tomó el mismo número de factura; es reintentable.
	ErrNumberConflict = errors.New("número de factura ya asignado")
)
