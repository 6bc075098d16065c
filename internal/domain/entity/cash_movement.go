package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	CashMovementSale    = "venta"
	CashMovementIncome  = "ingreso"
	CashMovementExpense = "egreso"
	CashMovementVoid    = "anulacion"
)

// CashMovement entrada inmutable en el libro de caja de una sesión.
// El monto esperado al cierre es MontoInicial + SUM(Amount) de la sesión.
// Los movimientos nunca se modifican; una anulación crea la entrada inversa.
type CashMovement struct {
	ID          string
	SessionID   string
	ShopID      string
	Type        string
	Amount      decimal.Decimal // positivo = entra dinero, negativo = sale
	Description string
	ReferenceID string // venta u operación manual que lo originó
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
