package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea del borrador enviado por el POS.
type SaleLineRequest struct {
	ShopProductID string `json:"shop_product_id"`
	Quantity      int64  `json:"quantity"`
}

// SubmitSaleRequest borrador completo a confirmar. SaleID vacío crea una
// venta nueva; con valor, edita la venta existente (pasa por reconciliación).
// IdempotencyKey es opcional: ante un reintento con la misma clave se
// devuelve la venta ya confirmada en lugar de descontar stock dos veces.
type SubmitSaleRequest struct {
	SaleID          string            `json:"sale_id,omitempty"`
	PaymentMethodID string            `json:"payment_method_id"`
	Items           []SaleLineRequest `json:"items"`
	Notes           string            `json:"notes,omitempty"`
	IdempotencyKey  string            `json:"idempotency_key,omitempty"`
}

// ValidateDraftRequest borrador a pre-validar contra el stock disponible.
// SaleID con valor valida una edición: las unidades de la venta original
// cuentan como reutilizables.
type ValidateDraftRequest struct {
	SaleID string            `json:"sale_id,omitempty"`
	Items  []SaleLineRequest `json:"items"`
}

// DraftLineStatus resultado por línea de la pre-validación.
type DraftLineStatus struct {
	ShopProductID string `json:"shop_product_id"`
	Requested     int64  `json:"requested"`
	MaxAllowed    int64  `json:"max_allowed"`
	Ok            bool   `json:"ok"`
}

// DraftValidationResponse resultado de la pre-validación del borrador.
type DraftValidationResponse struct {
	Ok    bool              `json:"ok"`
	Lines []DraftLineStatus `json:"lines"`
}

// SaleItemResponse línea confirmada con precio resuelto.
type SaleItemResponse struct {
	ShopProductID string          `json:"shop_product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID              string             `json:"id"`
	ShopID          string             `json:"shop_id"`
	SessionID       string             `json:"session_id"`
	PaymentMethodID string             `json:"payment_method_id"`
	Items           []SaleItemResponse `json:"items"`
	Total           decimal.Decimal    `json:"total"`
	Notes           string             `json:"notes,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
