package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta confirmada.
const (
	SaleStatusCommitted = "committed"
	SaleStatusVoided    = "voided" // anulada: todo el stock fue devuelto
)

// Sale es una venta confirmada y persistida. Inmutable salvo por el flujo
// explícito de edición (que pasa de nuevo por la reconciliación de stock)
// o por la anulación.
type Sale struct {
	ID              string
	ShopID          string
	SessionID       string // sesión de caja abierta al momento de confirmar
	PaymentMethodID string
	Items           []SaleItem
	Total           decimal.Decimal
	Notes           string
	Status          string
	IdempotencyKey  string // vacío si el cliente no envió clave
	CreatedBy       string // UserID del operador
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SaleItem línea de venta con precio unitario resuelto al momento de confirmar.
type SaleItem struct {
	ShopProductID string
	ProductName   string
	Quantity      int64
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal
}

// ComputeTotal suma los subtotales de las líneas.
func (s *Sale) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}
