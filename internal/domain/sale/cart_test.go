package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/sale"
)

func TestCart_IncrementRespetaStockDisponible(t *testing.T) {
	cart := sale.NewCart(map[string]int64{"p1": 2})

	require.NoError(t, cart.Increment("p1"))
	require.NoError(t, cart.Increment("p1"))

	err := cart.Increment("p1")
	assert.ErrorIs(t, err, domain.ErrStockExceeded)
	assert.Equal(t, int64(2), cart.Quantity("p1"),
		"la cantidad nunca debe superar el stock disponible")
}

func TestCart_IncrementProductoSinStock(t *testing.T) {
	cart := sale.NewCart(map[string]int64{})

	err := cart.Increment("agotado")
	assert.ErrorIs(t, err, domain.ErrStockExceeded)
	assert.True(t, cart.IsEmpty())
}

func TestCart_DecrementEliminaLineaEnCero(t *testing.T) {
	cart := sale.NewCart(map[string]int64{"p1": 5})
	require.NoError(t, cart.Increment("p1"))

	cart.Decrement("p1")

	assert.Equal(t, int64(0), cart.Quantity("p1"))
	assert.True(t, cart.IsEmpty(), "al llegar a cero la línea debe desaparecer")

	// Decrement sobre línea inexistente es no-op.
	cart.Decrement("p1")
	assert.True(t, cart.IsEmpty())
}

// TestCart_EdicionPermiteDevolverUnidades cubre el caso central del snapshot
// de reserva: al editar una venta de 3 unidades con stock disponible 0, el
// tope es 0 + 3 = 3, así la edición puede conservar o devolver sus unidades
// sin disparar un falso stock insuficiente.
func TestCart_EdicionPermiteDevolverUnidades(t *testing.T) {
	committed := []sale.Line{{ShopProductID: "p1", Quantity: 3}}
	cart := sale.NewCartFromSale("venta-1", committed, map[string]int64{"p1": 0})

	assert.True(t, cart.IsEdit())
	assert.Equal(t, int64(3), cart.Quantity("p1"))
	assert.Equal(t, int64(3), cart.MaxAllowed("p1"))

	// Con el tope alcanzado, un incremento más se rechaza.
	assert.ErrorIs(t, cart.Increment("p1"), domain.ErrStockExceeded)

	// Pero bajar y volver a subir dentro del tope funciona.
	cart.Decrement("p1")
	require.NoError(t, cart.Increment("p1"))
	assert.Equal(t, int64(3), cart.Quantity("p1"))
}

func TestCart_EdicionConStockExtra(t *testing.T) {
	committed := []sale.Line{{ShopProductID: "p1", Quantity: 2}}
	cart := sale.NewCartFromSale("venta-1", committed, map[string]int64{"p1": 4})

	// maxAllowed = 4 disponibles + 2 originales = 6
	assert.Equal(t, int64(6), cart.MaxAllowed("p1"))
	for i := 0; i < 4; i++ {
		require.NoError(t, cart.Increment("p1"))
	}
	assert.ErrorIs(t, cart.Increment("p1"), domain.ErrStockExceeded)
	assert.Equal(t, int64(6), cart.Quantity("p1"))
}

// TestCart_PropiedadNuncaExcedeTope martillea secuencias arbitrarias de
// increment/decrement y verifica el invariante qty <= maxAllowed en cada paso.
func TestCart_PropiedadNuncaExcedeTope(t *testing.T) {
	available := map[string]int64{"p1": 3, "p2": 1}
	committed := []sale.Line{{ShopProductID: "p1", Quantity: 2}}
	cart := sale.NewCartFromSale("venta-1", committed, available)

	ops := []struct {
		id  string
		inc bool
	}{
		{"p1", true}, {"p1", true}, {"p2", true}, {"p1", true}, {"p1", true},
		{"p1", true}, {"p2", true}, {"p2", true}, {"p1", false}, {"p1", true},
		{"p2", false}, {"p2", false}, {"p1", true}, {"p1", true}, {"p1", true},
	}
	for _, op := range ops {
		if op.inc {
			_ = cart.Increment(op.id)
		} else {
			cart.Decrement(op.id)
		}
		for _, id := range []string{"p1", "p2"} {
			assert.LessOrEqual(t, cart.Quantity(id), cart.MaxAllowed(id),
				"la cantidad de %s nunca debe superar disponible+original", id)
		}
	}
}

func TestCart_LinesConservaOrdenDeInsercion(t *testing.T) {
	cart := sale.NewCart(map[string]int64{"a": 9, "b": 9, "c": 9})
	require.NoError(t, cart.Increment("b"))
	require.NoError(t, cart.Increment("a"))
	require.NoError(t, cart.Increment("c"))
	require.NoError(t, cart.Increment("a"))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "b", lines[0].ShopProductID)
	assert.Equal(t, "a", lines[1].ShopProductID)
	assert.Equal(t, "c", lines[2].ShopProductID)
	assert.Equal(t, int64(2), lines[1].Quantity)
}
