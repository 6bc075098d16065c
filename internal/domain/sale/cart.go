package sale

import "github.com/jhoicas/Ventas-api/internal/domain"

// Cart borrador de venta en composición. Es un value object acotado a la
// sesión de edición: se crea vacío (venta nueva) o hidratado desde una venta
// confirmada, y se descarta al confirmar o cancelar. Nunca se persiste
// parcialmente y nunca toca el stock real.
//
// Para cada producto el tope es:
//
//	maxAllowed = stockDisponible + cantidadOriginal
//
// donde cantidadOriginal es la cantidad confirmada de la venta que se edita
// (cero en modo creación). Eso permite que una edición "devuelva" las unidades
// que ya consumió sin disparar un falso stock insuficiente. Ambos valores se
// congelan al iniciar la edición; el guard definitivo es la validación
// transaccional del Stock Ledger al confirmar.
type Cart struct {
	saleID          string // vacío en modo creación
	lines           []Line // orden de inserción
	index           map[string]int
	available       map[string]int64 // stock disponible al iniciar la edición
	original        map[string]int64 // cantidades de la venta original
	paymentMethodID string
	notes           string
}

// NewCart crea un borrador vacío (venta nueva). available es la foto del stock
// disponible por producto al iniciar la composición.
func NewCart(available map[string]int64) *Cart {
	return &Cart{
		index:     make(map[string]int),
		available: available,
		original:  make(map[string]int64),
	}
}

// NewCartFromSale crea un borrador hidratado desde una venta confirmada
// (modo edición): las líneas y cantidades originales se cargan como estado
// inicial y como snapshot de reserva.
func NewCartFromSale(saleID string, committed []Line, available map[string]int64) *Cart {
	c := NewCart(available)
	c.saleID = saleID
	for _, l := range committed {
		c.original[l.ShopProductID] += l.Quantity
		c.setQuantity(l.ShopProductID, c.Quantity(l.ShopProductID)+l.Quantity)
	}
	return c
}

// SaleID devuelve el ID de la venta en edición, o vacío en modo creación.
func (c *Cart) SaleID() string { return c.saleID }

// IsEdit indica si el borrador edita una venta ya confirmada.
func (c *Cart) IsEdit() bool { return c.saleID != "" }

// MaxAllowed tope de unidades del producto en este borrador.
func (c *Cart) MaxAllowed(shopProductID string) int64 {
	return c.available[shopProductID] + c.original[shopProductID]
}

// Quantity cantidad actual del producto en el borrador (cero si no hay línea).
func (c *Cart) Quantity(shopProductID string) int64 {
	if i, ok := c.index[shopProductID]; ok {
		return c.lines[i].Quantity
	}
	return 0
}

// Increment suma una unidad del producto, creando la línea si no existe.
// Devuelve ErrStockExceeded si se alcanzó maxAllowed; es un guard blando
// (la UI deshabilita el control), no un fallo duro.
func (c *Cart) Increment(shopProductID string) error {
	if c.Quantity(shopProductID) >= c.MaxAllowed(shopProductID) {
		return domain.ErrStockExceeded
	}
	c.setQuantity(shopProductID, c.Quantity(shopProductID)+1)
	return nil
}

// Decrement resta una unidad; al llegar a cero la línea se elimina.
func (c *Cart) Decrement(shopProductID string) {
	q := c.Quantity(shopProductID)
	if q == 0 {
		return
	}
	c.setQuantity(shopProductID, q-1)
}

// SetPaymentMethod fija el método de pago del borrador.
func (c *Cart) SetPaymentMethod(paymentMethodID string) { c.paymentMethodID = paymentMethodID }

// PaymentMethodID método de pago seleccionado (vacío si falta).
func (c *Cart) PaymentMethodID() string { return c.paymentMethodID }

// SetNotes fija las notas libres del borrador.
func (c *Cart) SetNotes(notes string) { c.notes = notes }

// Notes notas libres del borrador.
func (c *Cart) Notes() string { return c.notes }

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// OriginalLines devuelve las cantidades confirmadas al iniciar la edición
// (vacío en modo creación). Es la entrada "previous" de la reconciliación.
func (c *Cart) OriginalLines() []Line {
	out := make([]Line, 0, len(c.original))
	for id, q := range c.original {
		out = append(out, Line{ShopProductID: id, Quantity: q})
	}
	return out
}

// IsEmpty indica si el borrador no tiene líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) setQuantity(shopProductID string, qty int64) {
	if i, ok := c.index[shopProductID]; ok {
		if qty == 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			delete(c.index, shopProductID)
			for j := i; j < len(c.lines); j++ {
				c.index[c.lines[j].ShopProductID] = j
			}
			return
		}
		c.lines[i].Quantity = qty
		return
	}
	if qty == 0 {
		return
	}
	c.index[shopProductID] = len(c.lines)
	c.lines = append(c.lines, Line{ShopProductID: shopProductID, Quantity: qty})
}
