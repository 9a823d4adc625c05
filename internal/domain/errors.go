package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrPasswordMismatch = errors.New("las contraseñas no coinciden")
	ErrNotAuthenticated = errors.New("sesión no iniciada")
)
