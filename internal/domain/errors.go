package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrUnknownReportType = errors.New("tipo de reporte desconocido")
	ErrUnknownFormat     = errors.New("formato de exportación desconocido")
	ErrFetchFailed       = errors.New("no se pudo cargar la colección")
)
