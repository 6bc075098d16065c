package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// CashMovementRepository puerto del libro de caja de una sesión.
// Los movimientos son inmutables; las anulaciones crean entradas inversas.
type CashMovementRepository interface {
	Create(m *entity.CashMovement) error
	ListBySession(sessionID string) ([]*entity.CashMovement, error)
	// SumBySession suma neta de los movimientos de la sesión; cero si no hay.
	SumBySession(sessionID string) (decimal.Decimal, error)
}
