package entity

// PaymentMethod método de pago aceptado en el punto de venta (efectivo, tarjeta, transferencia).
type PaymentMethod struct {
	ID     string
	Name   string
	IsCash bool // solo los métodos en efectivo afectan el arqueo de caja
	Active bool
}
