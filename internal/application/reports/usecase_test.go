package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// fakeReportRepo captura los argumentos con los que se lo consulta.
type fakeReportRepo struct {
	gotBucket string
	gotFrom   time.Time
	gotTo     time.Time
	result    []repository.SalesBucket
}

func (r *fakeReportRepo) SalesSeries(_ context.Context, shopID, bucket string, from, to time.Time) ([]repository.SalesBucket, error) {
	r.gotBucket = bucket
	r.gotFrom = from
	r.gotTo = to
	return r.result, nil
}

func TestSalesSeries_BucketPorDefecto(t *testing.T) {
	repo := &fakeReportRepo{result: []repository.SalesBucket{
		{PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), SaleCount: 3, UnitsSold: 12, Revenue: decimal.NewFromInt(120)},
	}}
	uc := reports.NewReportUseCase(repo)

	out, err := uc.SalesSeries(context.Background(), "shop-1", dto.SalesSeriesRequest{})
	require.NoError(t, err)

	assert.Equal(t, repository.BucketDay, repo.gotBucket, "bucket vacío debe resolver a day")
	assert.True(t, repo.gotFrom.Before(repo.gotTo), "rango por defecto: último mes")
	require.Len(t, out, 1)
	assert.EqualValues(t, 3, out[0].SaleCount)
	assert.True(t, out[0].Revenue.Equal(decimal.NewFromInt(120)))
}

func TestSalesSeries_BucketInvalido(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{})

	_, err := uc.SalesSeries(context.Background(), "shop-1", dto.SalesSeriesRequest{Bucket: "decade"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesSeries_RangoExplicito(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewReportUseCase(repo)

	_, err := uc.SalesSeries(context.Background(), "shop-1", dto.SalesSeriesRequest{
		Bucket: repository.BucketWeek,
		From:   "2026-01-01",
		To:     "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, repository.BucketWeek, repo.gotBucket)
	assert.Equal(t, 2026, repo.gotFrom.Year())
	assert.Equal(t, time.March, repo.gotTo.Month())
}

func TestSalesSeries_RangoInvertido(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{})

	_, err := uc.SalesSeries(context.Background(), "shop-1", dto.SalesSeriesRequest{
		From: "2026-03-01",
		To:   "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesSeries_FechaIlegible(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{})

	_, err := uc.SalesSeries(context.Background(), "shop-1", dto.SalesSeriesRequest{From: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
