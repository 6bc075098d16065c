package cashbox

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// CashboxUseCase ciclo de vida de la caja: apertura, ingresos/egresos
// manuales y cierre con arqueo. El monto esperado al cierre se calcula aquí
// (monto inicial + suma de movimientos de la sesión) y se inyecta a la
// entidad, que solo hace la aritmética.
type CashboxUseCase struct {
	sessionRepo repository.CashSessionRepository
	cashMovRepo repository.CashMovementRepository
	log         *logger.Logger
}

// NewCashboxUseCase construye el caso de uso.
func NewCashboxUseCase(
	sessionRepo repository.CashSessionRepository,
	cashMovRepo repository.CashMovementRepository,
	log *logger.Logger,
) *CashboxUseCase {
	return &CashboxUseCase{sessionRepo: sessionRepo, cashMovRepo: cashMovRepo, log: log}
}

// Open abre la caja de la tienda con el monto inicial declarado.
// Falla con ErrSessionAlreadyOpen si ya hay una sesión abierta; el índice
// único parcial en BD sostiene el invariante ante aperturas concurrentes.
func (uc *CashboxUseCase) Open(shopID, userID string, in dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	if in.OpeningAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.sessionRepo.GetOpenByShop(shopID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSessionAlreadyOpen
	}

	session := entity.NewCashSession(uuid.New().String(), shopID, in.OpeningAmount, userID, time.Now())
	if err := uc.sessionRepo.CreateOpen(session); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("session_id", session.ID).
		Str("shop_id", shopID).
		Str("opening_amount", session.OpeningAmount.String()).
		Msg("sesión de caja abierta")

	return toSessionResponse(session), nil
}

// Close cierra la sesión: calcula el monto esperado desde el libro de caja,
// clasifica la diferencia (EXACTO/SOBRANTE/FALTANTE) y persiste el cierre.
func (uc *CashboxUseCase) Close(shopID, userID, sessionID string, in dto.CloseSessionRequest) (*dto.CloseSessionResponse, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	if session.Status != entity.SessionOpen {
		return nil, domain.ErrSessionNotOpen
	}

	movements, err := uc.cashMovRepo.SumBySession(sessionID)
	if err != nil {
		return nil, err
	}
	expected := session.OpeningAmount.Add(movements)

	if err := session.Close(expected, in.CountedAmount, userID, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Close(session); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("session_id", session.ID).
		Str("shop_id", shopID).
		Str("difference", session.Difference.String()).
		Str("count_result", session.CountResult).
		Msg("sesión de caja cerrada")

	return &dto.CloseSessionResponse{
		ID:             session.ID,
		ExpectedAmount: session.ExpectedAmount,
		CountedAmount:  session.CountedAmount,
		Difference:     session.Difference,
		CountResult:    session.CountResult,
		ClosedAt:       *session.ClosedAt,
	}, nil
}

// Current devuelve la sesión abierta de la tienda, o ErrNoOpenSession.
func (uc *CashboxUseCase) Current(shopID string) (*dto.SessionResponse, error) {
	session, err := uc.sessionRepo.GetOpenByShop(shopID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenSession
	}
	return toSessionResponse(session), nil
}

// RegisterIncome registra un ingreso manual de efectivo en la sesión abierta.
func (uc *CashboxUseCase) RegisterIncome(shopID, userID string, in dto.CashMovementRequest) error {
	return uc.registerManual(shopID, userID, entity.CashMovementIncome, in)
}

// RegisterExpense registra un egreso manual de efectivo en la sesión abierta.
func (uc *CashboxUseCase) RegisterExpense(shopID, userID string, in dto.CashMovementRequest) error {
	return uc.registerManual(shopID, userID, entity.CashMovementExpense, in)
}

func (uc *CashboxUseCase) registerManual(shopID, userID, movType string, in dto.CashMovementRequest) error {
	if !in.Amount.GreaterThan(decimal.Zero) || in.Description == "" {
		return domain.ErrInvalidInput
	}
	session, err := uc.sessionRepo.GetOpenByShop(shopID)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNoOpenSession
	}

	amount := in.Amount
	if movType == entity.CashMovementExpense {
		amount = amount.Neg()
	}
	return uc.cashMovRepo.Create(&entity.CashMovement{
		ID:          uuid.New().String(),
		SessionID:   session.ID,
		ShopID:      shopID,
		Type:        movType,
		Amount:      amount,
		Description: in.Description,
		CreatedAt:   time.Now(),
		CreatedBy:   userID,
	})
}

func toSessionResponse(s *entity.CashSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:            s.ID,
		ShopID:        s.ShopID,
		Status:        s.Status,
		OpeningAmount: s.OpeningAmount,
		OpenedBy:      s.OpenedBy,
		OpenedAt:      s.OpenedAt,
	}
}
