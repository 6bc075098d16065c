package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de compra a proveedor.
type PurchaseLineRequest struct {
	ShopProductID string          `json:"shop_product_id"`
	Quantity      int64           `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// RegisterPurchaseRequest compra completa; incrementa stock al confirmarse.
type RegisterPurchaseRequest struct {
	Supplier string                `json:"supplier"`
	Items    []PurchaseLineRequest `json:"items"`
	Notes    string                `json:"notes,omitempty"`
}

// PurchaseResponse compra confirmada.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	ShopID    string          `json:"shop_id"`
	Supplier  string          `json:"supplier"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
