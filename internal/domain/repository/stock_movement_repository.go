package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// StockMovementRepository puerto del libro de movimientos de stock (auditoría).
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByProduct(shopProductID string, limit, offset int) ([]*entity.StockMovement, error)
}
