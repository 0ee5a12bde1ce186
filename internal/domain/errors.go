package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUpstream     = errors.New("error del backend remoto")

	// Errores del listado incremental y del controlador de filtros.
	ErrSuperseded = errors.New("resultado descartado: existe una petición más reciente")
	ErrBusy       = errors.New("ya hay una carga en curso")
	ErrExhausted  = errors.New("no hay más resultados")
)
