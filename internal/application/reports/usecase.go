package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ReportUseCase series de ventas confirmadas agrupadas por calendario
// (día/semana/mes/año). Proyección de solo lectura sobre ventas ya
// confirmadas; no toca stock ni sesiones.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// SalesSeries valida bucket y rango y delega la agregación al repositorio.
func (uc *ReportUseCase) SalesSeries(ctx context.Context, shopID string, in dto.SalesSeriesRequest) ([]dto.SalesBucketDTO, error) {
	switch in.Bucket {
	case repository.BucketDay, repository.BucketWeek, repository.BucketMonth, repository.BucketYear:
	case "":
		in.Bucket = repository.BucketDay
	default:
		return nil, domain.ErrInvalidInput
	}
	to, err := parseBound(in.To, time.Now())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	from, err := parseBound(in.From, to.AddDate(0, -1, 0))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}

	buckets, err := uc.reportRepo.SalesSeries(ctx, shopID, in.Bucket, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.SalesBucketDTO{
			PeriodStart: b.PeriodStart,
			SaleCount:   b.SaleCount,
			UnitsSold:   b.UnitsSold,
			Revenue:     b.Revenue,
		})
	}
	return out, nil
}

// parseBound acepta RFC3339 o fecha simple; vacío usa el valor por defecto.
func parseBound(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
