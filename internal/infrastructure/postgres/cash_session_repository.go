package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.CashSessionRepository = (*CashSessionRepo)(nil)

// CashSessionRepo implementación de CashSessionRepository sobre PostgreSQL.
// El invariante "a lo sumo una sesión OPEN por tienda" lo sostiene el índice
// único parcial:
//
//	CREATE UNIQUE INDEX uq_cash_sessions_open ON cash_sessions (shop_id) WHERE status = 'OPEN'
type CashSessionRepo struct {
	q Querier
}

// NewCashSessionRepository construye el adaptador de sesiones de caja.
func NewCashSessionRepository(q Querier) *CashSessionRepo {
	return &CashSessionRepo{q: q}
}

// CreateOpen inserta una sesión OPEN. Dos aperturas concurrentes para la
// misma tienda chocan con el índice único: la segunda recibe ErrSessionAlreadyOpen.
func (r *CashSessionRepo) CreateOpen(s *entity.CashSession) error {
	query := `
		INSERT INTO cash_sessions (id, shop_id, status, opening_amount, opened_by, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ShopID, s.Status, s.OpeningAmount, s.OpenedBy, s.OpenedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSessionAlreadyOpen
		}
		return fmt.Errorf("insert cash session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID.
func (r *CashSessionRepo) GetByID(id string) (*entity.CashSession, error) {
	query := sessionSelect + ` WHERE id = $1`
	return scanSession(r.q.QueryRow(context.Background(), query, id))
}

// GetOpenByShop devuelve la sesión OPEN de la tienda, o nil si no hay.
func (r *CashSessionRepo) GetOpenByShop(shopID string) (*entity.CashSession, error) {
	query := sessionSelect + ` WHERE shop_id = $1 AND status = 'OPEN'`
	return scanSession(r.q.QueryRow(context.Background(), query, shopID))
}

// Close persiste el cierre solo si la fila sigue OPEN; un cierre concurrente
// que llegue segundo recibe ErrSessionNotOpen.
func (r *CashSessionRepo) Close(s *entity.CashSession) error {
	query := `
		UPDATE cash_sessions
		SET status = $2, expected_amount = $3, counted_amount = $4, difference = $5,
		    count_result = $6, closed_by = $7, closed_at = $8
		WHERE id = $1 AND status = 'OPEN'`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.Status, s.ExpectedAmount, s.CountedAmount, s.Difference,
		s.CountResult, s.ClosedBy, s.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("close cash session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotOpen
	}
	return nil
}

const sessionSelect = `
	SELECT id, shop_id, status, opening_amount, opened_by, opened_at,
	       COALESCE(expected_amount, 0), COALESCE(counted_amount, 0), COALESCE(difference, 0),
	       COALESCE(count_result, ''), COALESCE(closed_by, ''), closed_at
	FROM cash_sessions`

func scanSession(row pgx.Row) (*entity.CashSession, error) {
	var s entity.CashSession
	err := row.Scan(
		&s.ID, &s.ShopID, &s.Status, &s.OpeningAmount, &s.OpenedBy, &s.OpenedAt,
		&s.ExpectedAmount, &s.CountedAmount, &s.Difference,
		&s.CountResult, &s.ClosedBy, &s.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash session: %w", err)
	}
	return &s, nil
}
