package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// PaymentMethodRepository puerto de métodos de pago.
type PaymentMethodRepository interface {
	GetByID(id string) (*entity.PaymentMethod, error)
	ListActive() ([]*entity.PaymentMethod, error)
}
