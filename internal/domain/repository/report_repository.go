package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Buckets de agregación para las series de ventas.
const (
	BucketDay   = "day"
	BucketWeek  = "week"
	BucketMonth = "month"
	BucketYear  = "year"
)

// SalesBucket punto de una serie temporal de ventas confirmadas.
type SalesBucket struct {
	PeriodStart time.Time
	SaleCount   int64
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre ventas confirmadas.
// Es una proyección: nunca muta stock ni sesiones.
type ReportRepository interface {
	SalesSeries(ctx context.Context, shopID, bucket string, from, to time.Time) ([]SalesBucket, error)
}
