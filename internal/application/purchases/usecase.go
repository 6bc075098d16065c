package purchases

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RegisterPurchaseUseCase registra una compra a proveedor: incrementa el
// stock de cada producto y guarda la compra en una sola transacción.
type RegisterPurchaseUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(txRunner TxRunner, log *logger.Logger) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{txRunner: txRunner, log: log}
}

// Register valida y confirma la compra. Las compras no requieren sesión de
// caja: entran por el flujo de proveedores, no por el cajón.
func (uc *RegisterPurchaseUseCase) Register(ctx context.Context, shopID, userID string, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ShopProductID == "" || it.Quantity <= 0 || it.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	purchaseID := uuid.New().String()
	var purchase *entity.Purchase

	err := uc.txRunner.RunPurchase(ctx, func(
		productRepo repository.ShopProductRepository,
		purchaseRepo repository.PurchaseRepository,
		stockMovRepo repository.StockMovementRepository,
	) error {
		ids := make([]string, 0, len(in.Items))
		qty := make(map[string]int64, len(in.Items))
		for _, it := range in.Items {
			if _, seen := qty[it.ShopProductID]; !seen {
				ids = append(ids, it.ShopProductID)
			}
			qty[it.ShopProductID] += it.Quantity
		}
		sort.Strings(ids)

		for _, id := range ids {
			p, err := productRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if p == nil || p.ShopID != shopID {
				return domain.ErrNotFound
			}
			updated, err := productRepo.ApplyDelta(id, qty[id])
			if err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:            uuid.New().String(),
				ShopID:        shopID,
				ShopProductID: id,
				Type:          entity.StockMovementPurchase,
				Delta:         qty[id],
				QuantityAfter: updated.Quantity,
				ReferenceID:   purchaseID,
				CreatedAt:     now,
				CreatedBy:     userID,
			}
			if err := stockMovRepo.Create(mov); err != nil {
				return err
			}
		}

		items := make([]entity.PurchaseItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			subtotal := it.UnitCost.Mul(decimal.NewFromInt(it.Quantity))
			items = append(items, entity.PurchaseItem{
				ShopProductID: it.ShopProductID,
				Quantity:      it.Quantity,
				UnitCost:      it.UnitCost,
				Subtotal:      subtotal,
			})
			total = total.Add(subtotal)
		}
		purchase = &entity.Purchase{
			ID:        purchaseID,
			ShopID:    shopID,
			Supplier:  in.Supplier,
			Items:     items,
			Total:     total,
			Notes:     in.Notes,
			CreatedBy: userID,
			CreatedAt: now,
		}
		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("shop_id", shopID).
		Str("total", purchase.Total.String()).
		Msg("compra registrada")

	return &dto.PurchaseResponse{
		ID:        purchase.ID,
		ShopID:    purchase.ShopID,
		Supplier:  purchase.Supplier,
		Total:     purchase.Total,
		CreatedAt: purchase.CreatedAt,
	}, nil
}
