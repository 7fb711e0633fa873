// Package pdf implementa la generación del extracto de recargas de un
// cliente usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del cliente  │  Fecha del extracto          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUENTA: email / teléfono / saldo actual                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Método | Estado | Monto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL ACREDITADO (solo recargas completed)                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// currencyPrinter formatea montos con separador de miles.
var currencyPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa ports.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatement genera el PDF del extracto y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatement(_ context.Context, client *entity.Client) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de recargas", true).
		WithAuthor(client.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(accountRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range topUpRows(client.TopUps) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(client.TopUps))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar extracto: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del cliente (izq) y título + fecha (der).
func headerRow(client *entity.Client) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+client.ID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EXTRACTO DE RECARGAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d movimientos", len(client.TopUps)), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// accountRow: datos de contacto y saldo actual.
func accountRow(client *entity.Client) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Saldo actual: %s",
				client.Email,
				nonEmpty(client.Phone, "—"),
				formatMoney(client.Balance),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de recargas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Método", 3, align.Left),
		h("Estado", 3, align.Center),
		h("Monto", 3, align.Right),
	)
}

// topUpRows: una fila por recarga, más reciente primero.
func topUpRows(topUps []entity.TopUp) []core.Row {
	result := make([]core.Row, 0, len(topUps))
	for _, t := range topUps {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				t.Date.Format("02/01/2006"),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(3).Add(text.New(
				t.Method,
				props.Text{Size: 8, Top: 1},
			)),
			col.New(3).Add(text.New(
				t.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(t.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalRow: total acreditado, contando solo recargas completadas.
func totalRow(topUps []entity.TopUp) core.Row {
	total := decimal.Zero
	for _, t := range topUps {
		if t.Status == entity.TopUpStatusCompleted {
			total = total.Add(t.Amount)
		}
	}
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL ACREDITADO", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return currencyPrinter.Sprintf("$%.2f", f)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
