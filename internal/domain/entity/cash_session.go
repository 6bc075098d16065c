package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// Estados de una sesión de caja. A lo sumo una sesión OPEN por tienda.
const (
	SessionClosed = "CLOSED"
	SessionOpen   = "OPEN"
)

// Clasificación del arqueo al cierre según la diferencia contado - esperado.
const (
	CountExact    = "EXACTO"   // diferencia = 0
	CountSurplus  = "SOBRANTE" // diferencia > 0
	CountShortage = "FALTANTE" // diferencia < 0
)

// CashSession ciclo de vida de la caja registradora de una tienda:
// apertura con monto inicial, operación, y cierre con arqueo.
// El monto esperado al cierre lo inyecta el caso de uso (suma de movimientos
// de caja atribuidos a la sesión); la entidad solo hace la aritmética.
type CashSession struct {
	ID            string
	ShopID        string
	Status        string
	OpeningAmount decimal.Decimal
	OpenedBy      string // UserID
	OpenedAt      time.Time

	// Campos de cierre; cero/nil mientras la sesión está abierta.
	ExpectedAmount decimal.Decimal
	CountedAmount  decimal.Decimal
	Difference     decimal.Decimal
	CountResult    string // EXACTO, SOBRANTE, FALTANTE
	ClosedBy       string
	ClosedAt       *time.Time
}

// NewCashSession abre una sesión con el monto inicial declarado.
func NewCashSession(id, shopID string, openingAmount decimal.Decimal, operator string, now time.Time) *CashSession {
	return &CashSession{
		ID:            id,
		ShopID:        shopID,
		Status:        SessionOpen,
		OpeningAmount: openingAmount,
		OpenedBy:      operator,
		OpenedAt:      now,
	}
}

// Close cierra la sesión: calcula diferencia y clasificación a partir del
// monto esperado (inyectado) y el contado. Falla si la sesión no está abierta.
func (s *CashSession) Close(expected, counted decimal.Decimal, operator string, now time.Time) error {
	if s.Status != SessionOpen {
		return domain.ErrSessionNotOpen
	}
	s.ExpectedAmount = expected
	s.CountedAmount = counted
	s.Difference = counted.Sub(expected)
	s.CountResult = ClassifyDifference(s.Difference)
	s.ClosedBy = operator
	s.ClosedAt = &now
	s.Status = SessionClosed
	return nil
}

// ClassifyDifference clasifica la diferencia del arqueo.
func ClassifyDifference(diff decimal.Decimal) string {
	switch diff.Sign() {
	case 1:
		return CountSurplus
	case -1:
		return CountShortage
	default:
		return CountExact
	}
}
