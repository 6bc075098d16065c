// Package pdf implementa la generación del ticket de venta imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Venta + Fecha        │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL + Medio de pago                      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Ventas-api/internal/application/sales"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del ticket y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(in sales.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de venta", true).
		WithAuthor(in.ShopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, it := range in.Items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(in))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y N° de venta + fecha (der).
func headerRow(in sales.ReceiptData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(in.ShopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("TICKET DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(in.SaleID, props.Text{
				Size: 8, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+in.IssuedAt, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("CANT.", header)),
		col.New(6).Add(text.New("PRODUCTO", header)),
		col.New(2).Add(text.New("P. UNIT", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New("SUBTOTAL", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

func itemRow(it sales.ReceiptItem) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
		col.New(6).Add(text.New(it.Name, cell)),
		col.New(2).Add(text.New(it.UnitPrice, props.Text{Size: 8, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New(it.Subtotal, props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}

func totalRow(in sales.ReceiptData) core.Row {
	return row.New(12).Add(
		col.New(7).Add(
			text.New("Medio de pago: "+in.PaymentMethod, props.Text{
				Size: 8, Top: 3, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL: "+in.Total, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
