package sales

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/sale"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// VoidSaleUseCase anula una venta confirmada: devuelve todo el stock,
// registra los movimientos inversos de stock y caja y marca la venta como
// anulada, todo en una transacción.
type VoidSaleUseCase struct {
	txRunner    TxRunner
	sessionRepo repository.CashSessionRepository
	paymentRepo repository.PaymentMethodRepository
	saleRepo    repository.SaleRepository
	log         *logger.Logger
}

// NewVoidSaleUseCase construye el caso de uso.
func NewVoidSaleUseCase(
	txRunner TxRunner,
	sessionRepo repository.CashSessionRepository,
	paymentRepo repository.PaymentMethodRepository,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *VoidSaleUseCase {
	return &VoidSaleUseCase{
		txRunner:    txRunner,
		sessionRepo: sessionRepo,
		paymentRepo: paymentRepo,
		saleRepo:    saleRepo,
		log:         log,
	}
}

// Void anula la venta. Exige sesión de caja abierta porque la devolución en
// efectivo sale del cajón de la sesión en curso.
func (uc *VoidSaleUseCase) Void(ctx context.Context, shopID, userID, saleID string) (*dto.SaleResponse, error) {
	session, err := uc.sessionRepo.GetOpenByShop(shopID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenSession
	}

	target, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	if target.Status != entity.SaleStatusCommitted {
		return nil, domain.ErrConflict
	}

	payment, err := uc.paymentRepo.GetByID(target.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	previousLines := make([]sale.Line, 0, len(target.Items))
	for _, it := range target.Items {
		previousLines = append(previousLines, sale.Line{ShopProductID: it.ShopProductID, Quantity: it.Quantity})
	}
	// Anular equivale a editar a cero: todos los deltas son devoluciones.
	deltas := sale.Deltas(previousLines, nil)

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ShopProductRepository,
		saleRepo repository.SaleRepository,
		stockMovRepo repository.StockMovementRepository,
		cashMovRepo repository.CashMovementRepository,
	) error {
		ids := make([]string, 0, len(deltas))
		for id := range deltas {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			updated, err := productRepo.ApplyDelta(id, deltas[id])
			if err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:            uuid.New().String(),
				ShopID:        shopID,
				ShopProductID: id,
				Type:          entity.StockMovementVoid,
				Delta:         deltas[id],
				QuantityAfter: updated.Quantity,
				ReferenceID:   saleID,
				CreatedAt:     now,
				CreatedBy:     userID,
			}
			if err := stockMovRepo.Create(mov); err != nil {
				return err
			}
		}

		target.Status = entity.SaleStatusVoided
		target.UpdatedAt = now
		if err := saleRepo.Update(target); err != nil {
			return err
		}

		if payment != nil && payment.IsCash && !target.Total.IsZero() {
			cm := &entity.CashMovement{
				ID:          uuid.New().String(),
				SessionID:   session.ID,
				ShopID:      shopID,
				Type:        entity.CashMovementVoid,
				Amount:      target.Total.Neg(),
				Description: "anulación de venta",
				ReferenceID: saleID,
				CreatedAt:   now,
				CreatedBy:   userID,
			}
			if err := cashMovRepo.Create(cm); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", saleID).
		Str("shop_id", shopID).
		Msg("venta anulada")

	return toSaleResponse(target), nil
}
