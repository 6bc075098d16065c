package entity

import "time"

// Tipos de movimiento de stock.
const (
	StockMovementSale     = "venta"
	StockMovementSaleEdit = "edicion_venta"
	StockMovementVoid     = "anulacion"
	StockMovementPurchase = "compra"
	StockMovementAdjust   = "ajuste"
)

// StockMovement registra cada cambio confirmado de stock de un producto.
// Los movimientos nunca se modifican ni se borran; una anulación crea el
// movimiento inverso.
type StockMovement struct {
	ID            string
	ShopID        string
	ShopProductID string
	Type          string
	Delta         int64 // positivo = entrada, negativo = salida
	QuantityAfter int64 // stock resultante tras aplicar el delta
	ReferenceID   string // venta, compra o ajuste que originó el movimiento
	CreatedAt     time.Time
	CreatedBy     string // UserID
}
