package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre ventas confirmadas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSeries agrupa ventas confirmadas por límite de calendario (date_trunc)
// en la zona horaria de la sesión de BD. Excluye ventas anuladas.
func (r *ReportRepo) SalesSeries(ctx context.Context, shopID, bucket string, from, to time.Time) ([]repository.SalesBucket, error) {
	switch bucket {
	case repository.BucketDay, repository.BucketWeek, repository.BucketMonth, repository.BucketYear:
	default:
		return nil, fmt.Errorf("bucket inválido: %q", bucket)
	}
	// bucket ya está validado contra la lista blanca; date_trunc no acepta placeholder.
	query := fmt.Sprintf(`
		SELECT date_trunc('%s', s.created_at)  AS period_start,
		       COUNT(DISTINCT s.id)            AS sale_count,
		       COALESCE(SUM(i.quantity), 0)    AS units_sold,
		       COALESCE(SUM(i.subtotal), 0)    AS revenue
		FROM sales s
		JOIN sale_items i ON i.sale_id = s.id
		WHERE s.shop_id = $1
		  AND s.status = 'committed'
		  AND s.created_at BETWEEN $2 AND $3
		GROUP BY period_start
		ORDER BY period_start`, bucket)

	rows, err := r.pool.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesSeries: %w", err)
	}
	defer rows.Close()

	var out []repository.SalesBucket
	for rows.Next() {
		var b repository.SalesBucket
		if err := rows.Scan(&b.PeriodStart, &b.SaleCount, &b.UnitsSold, &b.Revenue); err != nil {
			return nil, fmt.Errorf("reports.SalesSeries scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
