package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo implementación del libro de caja sobre PostgreSQL (usable con pool o tx).
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

// Create persiste un movimiento de caja (inmutable).
func (r *CashMovementRepo) Create(m *entity.CashMovement) error {
	query := `
		INSERT INTO cash_movements (id, session_id, shop_id, type, amount, description, reference_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.SessionID, m.ShopID, m.Type, m.Amount, m.Description, m.ReferenceID, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert cash movement: %w", err)
	}
	return nil
}

// ListBySession lista los movimientos de una sesión en orden cronológico.
func (r *CashMovementRepo) ListBySession(sessionID string) ([]*entity.CashMovement, error) {
	query := `
		SELECT id, session_id, shop_id, type, amount, description, COALESCE(reference_id, ''), created_at, created_by
		FROM cash_movements WHERE session_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		if err := rows.Scan(&m.ID, &m.SessionID, &m.ShopID, &m.Type, &m.Amount, &m.Description, &m.ReferenceID, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// SumBySession suma neta de los movimientos de la sesión; cero si no hay filas.
func (r *CashMovementRepo) SumBySession(sessionID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM cash_movements WHERE session_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, sessionID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum cash movements: %w", err)
	}
	return sum, nil
}
