package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Motor de ventas y stock.
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrStockExceeded        = errors.New("cantidad máxima de stock alcanzada")
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrMissingPaymentMethod = errors.New("método de pago requerido")

	// Sesión de caja.
	ErrNoOpenSession      = errors.New("no hay una sesión de caja abierta")
	ErrSessionAlreadyOpen = errors.New("ya existe una sesión de caja abierta")
	ErrSessionNotOpen     = errors.New("la sesión de caja no está abierta")
)
