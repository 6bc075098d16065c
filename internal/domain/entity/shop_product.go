package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopProduct representa el stock y precio de un producto dentro de una tienda.
// Quantity nunca es negativa después de una operación confirmada; las ventas
// la decrementan y las compras la incrementan, siempre dentro de una transacción.
type ShopProduct struct {
	ID        string
	ShopID    string
	Name      string
	SKU       string // código único por tienda
	Quantity  int64
	Price     decimal.Decimal // precio de venta unitario
	Cost      decimal.Decimal // costo de compra unitario
	CreatedAt time.Time
	UpdatedAt time.Time
}
