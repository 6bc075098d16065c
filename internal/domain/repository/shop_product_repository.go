package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ShopProductRepository puerto para consultar y ajustar el stock por tienda+producto.
// ApplyDelta es la única vía de mutación del stock y debe implementarse como
// update condicional atómico: falla con ErrInsufficientStock si el resultado
// quedaría negativo, sin separar lectura y escritura (evita lost updates entre
// la validación y el commit). Usado dentro de transacciones.
type ShopProductRepository interface {
	GetByID(id string) (*entity.ShopProduct, error)
	ListByShop(shopID string, limit, offset int) ([]*entity.ShopProduct, error)
	Create(p *entity.ShopProduct) error
	Update(p *entity.ShopProduct) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.ShopProduct, error)
	// ApplyDelta suma delta (puede ser negativo) con piso en cero y devuelve
	// el producto actualizado.
	ApplyDelta(id string, delta int64) (*entity.ShopProduct, error)
}
