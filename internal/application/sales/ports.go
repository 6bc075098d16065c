package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los ajustes de stock, la venta
// y los movimientos de caja se confirmen todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ShopProductRepository,
		saleRepo repository.SaleRepository,
		stockMovRepo repository.StockMovementRepository,
		cashMovRepo repository.CashMovementRepository,
	) error) error
}

// ReceiptGenerator genera la representación imprimible (PDF) de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(in ReceiptData) ([]byte, error)
}

// ReceiptData datos ya resueltos para el ticket.
type ReceiptData struct {
	SaleID        string
	ShopName      string
	PaymentMethod string
	Items         []ReceiptItem
	Total         string
	IssuedAt      string
}

// ReceiptItem línea del ticket con montos ya formateados.
type ReceiptItem struct {
	Name      string
	Quantity  int64
	UnitPrice string
	Subtotal  string
}
