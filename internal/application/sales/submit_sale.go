package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/sale"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// SubmitSaleUseCase orquesta la confirmación de una venta (nueva o editada):
// exige sesión de caja abierta, valida el borrador, calcula la reconciliación
// de stock y aplica todos los ajustes dentro de una sola transacción con
// bloqueo de fila. Ningún ajuste parcial sobrevive a un fallo.
type SubmitSaleUseCase struct {
	txRunner    TxRunner
	sessionRepo repository.CashSessionRepository
	paymentRepo repository.PaymentMethodRepository
	saleRepo    repository.SaleRepository
	log         *logger.Logger
}

// NewSubmitSaleUseCase construye el caso de uso.
func NewSubmitSaleUseCase(
	txRunner TxRunner,
	sessionRepo repository.CashSessionRepository,
	paymentRepo repository.PaymentMethodRepository,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *SubmitSaleUseCase {
	return &SubmitSaleUseCase{
		txRunner:    txRunner,
		sessionRepo: sessionRepo,
		paymentRepo: paymentRepo,
		saleRepo:    saleRepo,
		log:         log,
	}
}

// Submit confirma el borrador:
//
//  1. Exige una sesión de caja OPEN para la tienda (ErrNoOpenSession).
//  2. Exige items y método de pago resueltos (ErrEmptyCart / ErrMissingPaymentMethod).
//  3. Si hay clave de idempotencia y ya existe una venta con ella, la devuelve
//     sin tocar stock (reintento de red, no venta duplicada).
//  4. Calcula los deltas de reconciliación (previous = items confirmados si es
//     edición, vacío si es creación).
//  5. En una transacción: bloquea las filas de stock en orden determinista,
//     valida que ningún delta deje stock negativo sin mutar nada, aplica todos
//     los deltas, registra movimientos de stock y de caja y persiste la venta.
//
// El precio unitario se resuelve del catálogo al confirmar, nunca se arrastra
// del borrador.
func (uc *SubmitSaleUseCase) Submit(ctx context.Context, shopID, userID string, in dto.SubmitSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.PaymentMethodID == "" {
		return nil, domain.ErrMissingPaymentMethod
	}
	for _, it := range in.Items {
		if it.ShopProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	payment, err := uc.paymentRepo.GetByID(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if payment == nil || !payment.Active {
		return nil, domain.ErrMissingPaymentMethod
	}

	session, err := uc.sessionRepo.GetOpenByShop(shopID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenSession
	}

	// Reintento idempotente: misma clave -> misma venta, sin doble descuento.
	if in.IdempotencyKey != "" {
		existing, err := uc.saleRepo.GetByIdempotencyKey(shopID, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return toSaleResponse(existing), nil
		}
	}

	// Modo edición: cargar la venta original para la reconciliación.
	var previous *entity.Sale
	var previousLines []sale.Line
	if in.SaleID != "" {
		previous, err = uc.saleRepo.GetByID(in.SaleID)
		if err != nil {
			return nil, err
		}
		if previous == nil || previous.ShopID != shopID {
			return nil, domain.ErrNotFound
		}
		if previous.Status != entity.SaleStatusCommitted {
			return nil, domain.ErrConflict
		}
		for _, it := range previous.Items {
			previousLines = append(previousLines, sale.Line{ShopProductID: it.ShopProductID, Quantity: it.Quantity})
		}
	}

	// Si la edición cambia el método de pago hay que saber si el original era
	// efectivo: su total ya está en el cajón y debe salir completo.
	previousCash := false
	if previous != nil {
		prevPayment, err := uc.paymentRepo.GetByID(previous.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		previousCash = prevPayment != nil && prevPayment.IsCash
	}

	nextLines := make([]sale.Line, 0, len(in.Items))
	for _, it := range in.Items {
		nextLines = append(nextLines, sale.Line{ShopProductID: it.ShopProductID, Quantity: it.Quantity})
	}
	deltas := sale.Deltas(previousLines, nextLines)

	now := time.Now()
	saleID := in.SaleID
	if saleID == "" {
		saleID = uuid.New().String()
	}

	var committed *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ShopProductRepository,
		saleRepo repository.SaleRepository,
		stockMovRepo repository.StockMovementRepository,
		cashMovRepo repository.CashMovementRepository,
	) error {
		// Bloquear todas las filas involucradas (deltas y líneas del borrador)
		// en orden determinista para evitar deadlocks entre ventas concurrentes.
		ids := lockOrder(deltas, nextLines)
		locked := make(map[string]*entity.ShopProduct, len(ids))
		for _, id := range ids {
			p, err := productRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if p == nil || p.ShopID != shopID {
				return domain.ErrNotFound
			}
			locked[id] = p
		}

		// Validación en seco: si cualquier delta dejara stock negativo no se
		// aplica ninguno. Con las filas bloqueadas no hay carrera entre esta
		// verificación y la aplicación.
		for _, id := range ids {
			delta, ok := deltas[id]
			if !ok {
				continue
			}
			if locked[id].Quantity+delta < 0 {
				return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, id)
			}
		}

		movType := entity.StockMovementSale
		if previous != nil {
			movType = entity.StockMovementSaleEdit
		}
		for _, id := range ids {
			delta, ok := deltas[id]
			if !ok {
				continue
			}
			updated, err := productRepo.ApplyDelta(id, delta)
			if err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:            uuid.New().String(),
				ShopID:        shopID,
				ShopProductID: id,
				Type:          movType,
				Delta:         delta,
				QuantityAfter: updated.Quantity,
				ReferenceID:   saleID,
				CreatedAt:     now,
				CreatedBy:     userID,
			}
			if err := stockMovRepo.Create(mov); err != nil {
				return err
			}
		}

		// Armar la venta con precios re-resueltos de las filas bloqueadas.
		items := make([]entity.SaleItem, 0, len(nextLines))
		for _, l := range nextLines {
			p := locked[l.ShopProductID]
			qty := decimal.NewFromInt(l.Quantity)
			items = append(items, entity.SaleItem{
				ShopProductID: l.ShopProductID,
				ProductName:   p.Name,
				Quantity:      l.Quantity,
				UnitPrice:     p.Price,
				Subtotal:      p.Price.Mul(qty),
			})
		}
		s := &entity.Sale{
			ID:              saleID,
			ShopID:          shopID,
			SessionID:       session.ID,
			PaymentMethodID: in.PaymentMethodID,
			Items:           items,
			Notes:           in.Notes,
			Status:          entity.SaleStatusCommitted,
			IdempotencyKey:  in.IdempotencyKey,
			CreatedBy:       userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		s.Total = s.ComputeTotal()
		if previous != nil {
			s.SessionID = previous.SessionID
			s.CreatedBy = previous.CreatedBy
			s.CreatedAt = previous.CreatedAt
			if err := saleRepo.Update(s); err != nil {
				return err
			}
		} else if err := saleRepo.Create(s); err != nil {
			return err
		}

		// El cajón refleja solo la porción en efectivo: entra el total nuevo
		// si el método es efectivo y sale el total anterior si el original lo
		// era. Así la suma de movimientos de la sesión siempre coincide con
		// los totales en efectivo vigentes, aunque la edición cambie el
		// método de pago.
		amount := decimal.Zero
		if payment.IsCash {
			amount = s.Total
		}
		if previousCash {
			amount = amount.Sub(previous.Total)
		}
		if !amount.IsZero() {
			description := "venta"
			if previous != nil {
				description = "ajuste por edición de venta"
			}
			cm := &entity.CashMovement{
				ID:          uuid.New().String(),
				SessionID:   session.ID,
				ShopID:      shopID,
				Type:        entity.CashMovementSale,
				Amount:      amount,
				Description: description,
				ReferenceID: saleID,
				CreatedAt:   now,
				CreatedBy:   userID,
			}
			if err := cashMovRepo.Create(cm); err != nil {
				return err
			}
		}

		committed = s
		return nil
	})
	if err != nil {
		// Dos reintentos concurrentes con la misma clave pueden fallar ambos
		// la consulta inicial; el perdedor del índice único devuelve la venta
		// que el ganador ya confirmó en vez de un error.
		if in.SaleID == "" && in.IdempotencyKey != "" && errors.Is(err, domain.ErrDuplicate) {
			existing, lookupErr := uc.saleRepo.GetByIdempotencyKey(shopID, in.IdempotencyKey)
			if lookupErr == nil && existing != nil {
				return toSaleResponse(existing), nil
			}
		}
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", committed.ID).
		Str("shop_id", shopID).
		Str("session_id", session.ID).
		Bool("edit", previous != nil).
		Str("total", committed.Total.String()).
		Msg("venta confirmada")

	return toSaleResponse(committed), nil
}

// lockOrder ids a bloquear: unión de deltas y líneas del borrador, ordenada.
func lockOrder(deltas map[string]int64, lines []sale.Line) []string {
	set := make(map[string]struct{}, len(deltas)+len(lines))
	for id := range deltas {
		set[id] = struct{}{}
	}
	for _, l := range lines {
		set[l.ShopProductID] = struct{}{}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ShopProductID: it.ShopProductID,
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			Subtotal:      it.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:              s.ID,
		ShopID:          s.ShopID,
		SessionID:       s.SessionID,
		PaymentMethodID: s.PaymentMethodID,
		Items:           items,
		Total:           s.Total,
		Notes:           s.Notes,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
