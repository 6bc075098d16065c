package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSeriesRequest parámetros de la serie de ventas. From/To en RFC3339
// o fecha simple (2006-01-02); vacíos aplican el último mes.
type SalesSeriesRequest struct {
	Bucket string `query:"bucket"` // day, week, month, year
	From   string `query:"from"`
	To     string `query:"to"`
}

// SalesBucketDTO punto de la serie.
type SalesBucketDTO struct {
	PeriodStart time.Time       `json:"period_start"`
	SaleCount   int64           `json:"sale_count"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}
