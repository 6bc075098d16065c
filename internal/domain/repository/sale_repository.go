package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// SaleRepository puerto de persistencia de ventas confirmadas.
// Update reemplaza cabecera y líneas (flujo de edición); el ajuste de stock
// correspondiente corre en la misma transacción.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	Update(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIdempotencyKey busca una venta ya confirmada con esa clave en la
	// tienda; nil si no existe.
	GetByIdempotencyKey(shopID, key string) (*entity.Sale, error)
	ListByShop(shopID string, limit, offset int) ([]*entity.Sale, error)
}
