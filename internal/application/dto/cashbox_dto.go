package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenSessionRequest apertura de caja.
type OpenSessionRequest struct {
	OpeningAmount decimal.Decimal `json:"opening_amount"`
}

// CloseSessionRequest cierre de caja con el monto contado físicamente.
type CloseSessionRequest struct {
	CountedAmount decimal.Decimal `json:"counted_amount"`
}

// CashMovementRequest ingreso o egreso manual durante la sesión.
type CashMovementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// SessionResponse estado de una sesión de caja.
type SessionResponse struct {
	ID            string          `json:"id"`
	ShopID        string          `json:"shop_id"`
	Status        string          `json:"status"`
	OpeningAmount decimal.Decimal `json:"opening_amount"`
	OpenedBy      string          `json:"opened_by"`
	OpenedAt      time.Time       `json:"opened_at"`
}

// CloseSessionResponse resultado del arqueo al cierre.
type CloseSessionResponse struct {
	ID             string          `json:"id"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	CountedAmount  decimal.Decimal `json:"counted_amount"`
	Difference     decimal.Decimal `json:"difference"`
	CountResult    string          `json:"count_result"` // EXACTO, SOBRANTE, FALTANTE
	ClosedAt       time.Time       `json:"closed_at"`
}
