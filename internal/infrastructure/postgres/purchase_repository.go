package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste cabecera y líneas de una compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchases (id, shop_id, supplier, total, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.ShopID, p.Supplier, p.Total, p.Notes, p.CreatedBy, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	itemQuery := `
		INSERT INTO purchase_items (purchase_id, position, shop_product_id, quantity, unit_cost, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, it := range p.Items {
		if _, err := r.q.Exec(ctx, itemQuery, p.ID, i, it.ShopProductID, it.Quantity, it.UnitCost, it.Subtotal); err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra con sus líneas.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	ctx := context.Background()
	query := `
		SELECT id, shop_id, supplier, total, notes, created_by, created_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.ShopID, &p.Supplier, &p.Total, &p.Notes, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	itemsQuery := `
		SELECT shop_product_id, quantity, unit_cost, subtotal
		FROM purchase_items WHERE purchase_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ShopProductID, &it.Quantity, &it.UnitCost, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		p.Items = append(p.Items, it)
	}
	return &p, rows.Err()
}

// ListByShop lista compras de la tienda, más recientes primero (sin líneas).
func (r *PurchaseRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, shop_id, supplier, total, notes, created_by, created_at
		FROM purchases WHERE shop_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ShopID, &p.Supplier, &p.Total, &p.Notes, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
