package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ShopRepository puerto de tiendas.
type ShopRepository interface {
	GetByID(id string) (*entity.Shop, error)
	List() ([]*entity.Shop, error)
}
