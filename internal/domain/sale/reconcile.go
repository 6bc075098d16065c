package sale

// Line par producto/cantidad de un borrador o de una venta confirmada.
// Es la única forma que necesita el cálculo de reconciliación; el precio se
// resuelve desde el catálogo al confirmar, nunca se arrastra por línea.
type Line struct {
	ShopProductID string
	Quantity      int64
}

// Deltas calcula el ajuste de stock por producto entre las cantidades
// confirmadas previamente y las del borrador enviado:
//
//	delta = cantidadAnterior - cantidadNueva
//
// delta positivo devuelve stock, delta negativo lo consume. Es un full outer
// join por producto: un producto eliminado del borrador devuelve toda su
// cantidad original, y uno nuevo la consume entera. Para una venta nueva
// previous es vacío. Los productos cuyo delta es cero se omiten del resultado
// (no hay nada que aplicar).
func Deltas(previous, next []Line) map[string]int64 {
	prevQty := make(map[string]int64, len(previous))
	for _, l := range previous {
		prevQty[l.ShopProductID] += l.Quantity
	}
	nextQty := make(map[string]int64, len(next))
	for _, l := range next {
		nextQty[l.ShopProductID] += l.Quantity
	}

	deltas := make(map[string]int64)
	for id, q := range prevQty {
		if d := q - nextQty[id]; d != 0 {
			deltas[id] = d
		}
	}
	for id, q := range nextQty {
		if _, seen := prevQty[id]; !seen && q != 0 {
			deltas[id] = -q
		}
	}
	return deltas
}
