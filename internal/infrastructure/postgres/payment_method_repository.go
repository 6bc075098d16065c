package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador de métodos de pago.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// GetByID obtiene un método de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT id, name, is_cash, active FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Name, &m.IsCash, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// ListActive lista los métodos de pago activos.
func (r *PaymentMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	query := `SELECT id, name, is_cash, active FROM payment_methods WHERE active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var out []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.IsCash, &m.Active); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
