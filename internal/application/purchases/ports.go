package purchases

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// TxRunner ejecuta la registración de una compra dentro de una transacción:
// incremento de stock, movimientos de auditoría y cabecera de compra, todo o nada.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		productRepo repository.ShopProductRepository,
		purchaseRepo repository.PurchaseRepository,
		stockMovRepo repository.StockMovementRepository,
	) error) error
}
