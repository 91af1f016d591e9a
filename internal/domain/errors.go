package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// envuelven con fmt.Errorf("%w: detalle") para conservar el motivo concreto
// de la primera regla que falla.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrPersistence  = errors.New("error de persistencia")
	ErrUnauthorized = errors.New("no autorizado")
)
