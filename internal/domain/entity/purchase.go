package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra a proveedor; incrementa el stock de la tienda al confirmarse.
type Purchase struct {
	ID        string
	ShopID    string
	Supplier  string
	Items     []PurchaseItem
	Total     decimal.Decimal
	Notes     string
	CreatedBy string // UserID
	CreatedAt time.Time
}

// PurchaseItem línea de compra con costo unitario.
type PurchaseItem struct {
	ShopProductID string
	Quantity      int64
	UnitCost      decimal.Decimal
	Subtotal      decimal.Decimal
}
