package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopProductResponse producto con stock disponible y precio vigente.
// Alimenta al carrito del POS: el tope de unidades por línea se calcula
// contra Quantity al iniciar la composición.
type ShopProductResponse struct {
	ID        string          `json:"id"`
	ShopID    string          `json:"shop_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PaymentMethodResponse método de pago disponible.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsCash bool   `json:"is_cash"`
}
