package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// PurchaseRepository puerto de persistencia de compras a proveedor.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	ListByShop(shopID string, limit, offset int) ([]*entity.Purchase, error)
}
