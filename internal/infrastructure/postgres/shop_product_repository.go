package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ShopProductRepository = (*ShopProductRepo)(nil)

const shopProductColumns = "id, shop_id, name, sku, quantity, price, cost, created_at, updated_at"

// ShopProductRepo implementación de ShopProductRepository sobre PostgreSQL (usable con pool o tx).
type ShopProductRepo struct {
	q Querier
}

// NewShopProductRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewShopProductRepository(q Querier) *ShopProductRepo {
	return &ShopProductRepo{q: q}
}

// GetByID obtiene un producto con su stock actual.
func (r *ShopProductRepo) GetByID(id string) (*entity.ShopProduct, error) {
	query := `SELECT ` + shopProductColumns + ` FROM shop_products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get shop product")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ShopProductRepo) GetForUpdate(id string) (*entity.ShopProduct, error) {
	query := `SELECT ` + shopProductColumns + ` FROM shop_products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get shop product for update")
}

// ApplyDelta suma delta a la cantidad con piso en cero, en un solo update
// condicional: no hay lectura-luego-escritura separadas, así que no puede
// haber lost update entre validación y commit. Devuelve ErrInsufficientStock
// si el resultado quedaría negativo.
func (r *ShopProductRepo) ApplyDelta(id string, delta int64) (*entity.ShopProduct, error) {
	query := `
		UPDATE shop_products
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + shopProductColumns
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id, delta), "apply stock delta")
	if err != nil {
		return nil, err
	}
	if p == nil {
		// Sin fila afectada: o el producto no existe o el delta lo dejaría negativo.
		existing, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	return p, nil
}

// ListByShop lista los productos de una tienda ordenados por nombre.
func (r *ShopProductRepo) ListByShop(shopID string, limit, offset int) ([]*entity.ShopProduct, error) {
	query := `
		SELECT ` + shopProductColumns + `
		FROM shop_products WHERE shop_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shop products: %w", err)
	}
	defer rows.Close()

	var out []*entity.ShopProduct
	for rows.Next() {
		var p entity.ShopProduct
		if err := rows.Scan(&p.ID, &p.ShopID, &p.Name, &p.SKU, &p.Quantity, &p.Price, &p.Cost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Create persiste un producto nuevo.
func (r *ShopProductRepo) Create(p *entity.ShopProduct) error {
	query := `
		INSERT INTO shop_products (id, shop_id, name, sku, quantity, price, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.ShopID, p.Name, p.SKU, p.Quantity, p.Price, p.Cost)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shop product: %w", err)
	}
	return nil
}

// Update actualiza nombre, precio y costo (el stock solo cambia vía ApplyDelta).
func (r *ShopProductRepo) Update(p *entity.ShopProduct) error {
	query := `
		UPDATE shop_products
		SET name = $2, sku = $3, price = $4, cost = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.SKU, p.Price, p.Cost)
	if err != nil {
		return fmt.Errorf("update shop product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShopProductRepo) scanOne(row pgx.Row, op string) (*entity.ShopProduct, error) {
	var p entity.ShopProduct
	err := row.Scan(&p.ID, &p.ShopID, &p.Name, &p.SKU, &p.Quantity, &p.Price, &p.Cost, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
