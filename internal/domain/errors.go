package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidAuditFile = errors.New("ficheiro SAF-T inválido")
	ErrSignatureKey     = errors.New("clave de firma no disponible")
)
