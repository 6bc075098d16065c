package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ventas-api/internal/application/purchases"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and purchases.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ purchases.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es el límite transaccional de la confirmación de ventas: todos los ajustes
// de stock de una venta se confirman juntos o ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ShopProductRepository,
	saleRepo repository.SaleRepository,
	stockMovRepo repository.StockMovementRepository,
	cashMovRepo repository.CashMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewShopProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	stockMovRepo := NewStockMovementRepository(tx)
	cashMovRepo := NewCashMovementRepository(tx)

	if err := fn(productRepo, saleRepo, stockMovRepo, cashMovRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción con los repos de compras (para RegisterPurchase).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	productRepo repository.ShopProductRepository,
	purchaseRepo repository.PurchaseRepository,
	stockMovRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewShopProductRepository(tx)
	purchaseRepo := NewPurchaseRepository(tx)
	stockMovRepo := NewStockMovementRepository(tx)

	if err := fn(productRepo, purchaseRepo, stockMovRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
