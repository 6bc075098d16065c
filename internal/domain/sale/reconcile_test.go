package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventas-api/internal/domain/sale"
)

func TestDeltas_VentaNueva(t *testing.T) {
	// Sin items previos todo el borrador consume stock.
	deltas := sale.Deltas(nil, []sale.Line{
		{ShopProductID: "p1", Quantity: 3},
		{ShopProductID: "p2", Quantity: 1},
	})

	assert.Equal(t, map[string]int64{"p1": -3, "p2": -1}, deltas)
}

func TestDeltas_ProductoEliminadoDevuelveTodo(t *testing.T) {
	deltas := sale.Deltas(
		[]sale.Line{{ShopProductID: "p1", Quantity: 4}},
		nil,
	)

	assert.Equal(t, map[string]int64{"p1": 4}, deltas,
		"un producto eliminado del borrador debe devolver toda su cantidad original")
}

func TestDeltas_EdicionMixta(t *testing.T) {
	previous := []sale.Line{
		{ShopProductID: "p1", Quantity: 3}, // sube a 5 -> consume 2
		{ShopProductID: "p2", Quantity: 2}, // baja a 1 -> devuelve 1
		{ShopProductID: "p3", Quantity: 1}, // eliminado -> devuelve 1
	}
	next := []sale.Line{
		{ShopProductID: "p1", Quantity: 5},
		{ShopProductID: "p2", Quantity: 1},
		{ShopProductID: "p4", Quantity: 2}, // nuevo -> consume 2
	}

	deltas := sale.Deltas(previous, next)

	assert.Equal(t, map[string]int64{"p1": -2, "p2": 1, "p3": 1, "p4": -2}, deltas)
}

func TestDeltas_SinCambiosNoTocaNada(t *testing.T) {
	lines := []sale.Line{{ShopProductID: "p1", Quantity: 2}}

	deltas := sale.Deltas(lines, lines)

	assert.Empty(t, deltas, "cantidades iguales no deben producir ajustes")
}

// TestDeltas_EquivalenciaBorrarYRecrear verifica la ley de equivalencia:
// aplicar los deltas de una edición deja el stock igual que si la venta se
// hubiera borrado (devolviendo todo) y recreado con las cantidades nuevas.
func TestDeltas_EquivalenciaBorrarYRecrear(t *testing.T) {
	previous := []sale.Line{
		{ShopProductID: "p1", Quantity: 3},
		{ShopProductID: "p2", Quantity: 2},
	}
	next := []sale.Line{
		{ShopProductID: "p1", Quantity: 1},
		{ShopProductID: "p3", Quantity: 4},
	}

	direct := sale.Deltas(previous, next)

	// Borrar (previous -> nada) y recrear (nada -> next), sumando ambos pasos.
	deleted := sale.Deltas(previous, nil)
	recreated := sale.Deltas(nil, next)
	combined := make(map[string]int64)
	for id, d := range deleted {
		combined[id] += d
	}
	for id, d := range recreated {
		combined[id] += d
	}
	for id, d := range combined {
		if d == 0 {
			delete(combined, id)
		}
	}

	assert.Equal(t, combined, direct)
}

// TestDeltas_EjemploSecuencia reproduce la secuencia de referencia:
// stock 10, venta de 3 -> 7; edición a 5 -> delta -2 -> 5; edición a 1 -> delta +4 -> 9.
func TestDeltas_EjemploSecuencia(t *testing.T) {
	stock := int64(10)
	apply := func(deltas map[string]int64) {
		stock += deltas["P"]
	}

	apply(sale.Deltas(nil, []sale.Line{{ShopProductID: "P", Quantity: 3}}))
	assert.Equal(t, int64(7), stock)

	apply(sale.Deltas(
		[]sale.Line{{ShopProductID: "P", Quantity: 3}},
		[]sale.Line{{ShopProductID: "P", Quantity: 5}},
	))
	assert.Equal(t, int64(5), stock)

	apply(sale.Deltas(
		[]sale.Line{{ShopProductID: "P", Quantity: 5}},
		[]sale.Line{{ShopProductID: "P", Quantity: 1}},
	))
	assert.Equal(t, int64(9), stock)
}
