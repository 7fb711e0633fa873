package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrClientNotFound      = errors.New("cliente no encontrado")
	ErrSalesNotFound       = errors.New("asesor no encontrado")
	ErrPackageNotFound     = errors.New("opción de paquete no encontrada")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInsufficientBalance = errors.New("saldo insuficiente")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
