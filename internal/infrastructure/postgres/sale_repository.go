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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste cabecera y líneas de una venta confirmada.
// La clave de idempotencia (si viene) tiene índice único por tienda: un
// reintento que llegue en paralelo choca con 23505 y se traduce a ErrDuplicate.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, shop_id, session_id, payment_method_id, total, notes, status, idempotency_key, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ShopID, sale.SessionID, sale.PaymentMethodID, sale.Total,
		sale.Notes, sale.Status, sale.IdempotencyKey, sale.CreatedBy, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return r.insertItems(ctx, sale)
}

// Update reemplaza cabecera y líneas (flujo de edición o anulación).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		UPDATE sales
		SET payment_method_id = $2, total = $3, notes = $4, status = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		sale.ID, sale.PaymentMethodID, sale.Total, sale.Notes, sale.Status, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return r.insertItems(ctx, sale)
}

func (r *SaleRepo) insertItems(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sale_items (sale_id, position, shop_product_id, product_name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, it := range sale.Items {
		if _, err := r.q.Exec(ctx, query,
			sale.ID, i, it.ShopProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal,
		); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas en orden.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, shop_id, session_id, payment_method_id, total, notes, status, COALESCE(idempotency_key, ''), created_by, created_at, updated_at
		FROM sales WHERE id = $1`
	return r.scanWithItems(r.q.QueryRow(context.Background(), query, id))
}

// GetByIdempotencyKey busca una venta por clave de idempotencia en la tienda; nil si no hay.
func (r *SaleRepo) GetByIdempotencyKey(shopID, key string) (*entity.Sale, error) {
	query := `
		SELECT id, shop_id, session_id, payment_method_id, total, notes, status, COALESCE(idempotency_key, ''), created_by, created_at, updated_at
		FROM sales WHERE shop_id = $1 AND idempotency_key = $2`
	return r.scanWithItems(r.q.QueryRow(context.Background(), query, shopID, key))
}

// ListByShop lista ventas de la tienda, más recientes primero (sin líneas).
func (r *SaleRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, shop_id, session_id, payment_method_id, total, notes, status, COALESCE(idempotency_key, ''), created_by, created_at, updated_at
		FROM sales WHERE shop_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ShopID, &s.SessionID, &s.PaymentMethodID, &s.Total,
			&s.Notes, &s.Status, &s.IdempotencyKey, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SaleRepo) scanWithItems(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ShopID, &s.SessionID, &s.PaymentMethodID, &s.Total,
		&s.Notes, &s.Status, &s.IdempotencyKey, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	itemsQuery := `
		SELECT shop_product_id, product_name, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), itemsQuery, s.ID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ShopProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	return &s, rows.Err()
}
