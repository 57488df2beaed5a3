// Package pdf genera los documentos PDF con Maroto v2: la factura mensual de pupilaje
// y el listado de animales.
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER (fondo azul): FACTURA  │  Emisor: nombre/NIF/contacto │
//	│  FACTURAR A: snapshot cliente  │  Nº / Fecha / Periodo        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Animales | Precio | Cant. | Total                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / Descuento / Retención / TOTAL │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	appbilling "github.com/ganaderia-aureo/pupilaje-api/internal/application/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59} // azul marino
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 241, Green: 245, Blue: 249}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// DraftLabel se muestra en lugar del número mientras la factura es un borrador.
const DraftLabel = "BORRADOR"

var _ appbilling.InvoiceDocumentGenerator = (*InvoiceGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// InvoiceGenerator implementa billing.InvoiceDocumentGenerator usando Maroto v2.
type InvoiceGenerator struct {
	now func() time.Time
}

// NewInvoiceGenerator construye el generador. now da la fecha de los borradores.
func NewInvoiceGenerator(now func() time.Time) *InvoiceGenerator {
	if now == nil {
		now = time.Now
	}
	return &InvoiceGenerator{now: now}
}

// GenerateInvoicePDF genera el PDF a partir del snapshot congelado y los totales guardados.
func (g *InvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	issuer entity.IssuerSettings,
) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("pdf: factura nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+documentNumber(inv), true).
		WithAuthor(issuer.FiscalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(issuer))
	m.AddRows(row.New(6))
	m.AddRows(billToRow(inv, g.documentDate(inv)))
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(inv.FrozenSnapshot.LineItems)...)
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(totalsRows(inv)...)
	if inv.FrozenSnapshot.DiscountReason != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Motivo del descuento: "+inv.FrozenSnapshot.DiscountReason, props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *InvoiceGenerator) documentDate(inv *entity.Invoice) time.Time {
	if inv.IssuedAt != nil {
		return *inv.IssuedAt
	}
	return g.now()
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título FACTURA (izq) y datos del emisor (der) sobre fondo azul.
func headerRow(issuer entity.IssuerSettings) core.Row {
	white := func(s string, top float64, size float64, style fontstyle.Type) core.Component {
		return text.New(s, props.Text{
			Style: style, Size: size, Align: align.Right, Color: colorWhite, Top: top, Right: 3,
		})
	}
	return row.New(28).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		col.New(6).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 22, Color: colorWhite, Top: 8, Left: 4,
			}),
		),
		col.New(6).Add(
			white(nonEmpty(issuer.FiscalName, "-"), 4, 11, fontstyle.Bold),
			white("NIF: "+nonEmpty(issuer.NIF, "-"), 11, 8, fontstyle.Normal),
			white(nonEmpty(issuer.Address, ""), 16, 8, fontstyle.Normal),
			white(joinNonEmpty(" | ", issuer.Phone, issuer.Email), 21, 8, fontstyle.Normal),
		),
	)
}

// billToRow: cliente del snapshot (izq) y número/fecha/periodo (der).
func billToRow(inv *entity.Invoice, date time.Time) core.Row {
	snap := inv.FrozenSnapshot
	meta := func(label, value string, top float64) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: top, Color: colorGray}),
			text.New(value, props.Text{Size: 9, Align: align.Right, Top: top}),
		}
	}
	right := col.New(5)
	right.Add(meta("Nº FACTURA", documentNumber(inv), 1)...)
	right.Add(meta("FECHA", format.Date(date), 7)...)
	right.Add(meta("PERIODO", format.MonthYear(inv.PeriodMonth, inv.PeriodYear), 13)...)

	return row.New(24).Add(
		col.New(7).Add(
			text.New("FACTURAR A", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(snap.ClientName, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("NIF: "+nonEmpty(snap.ClientNIF, "-"), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(snap.ClientAddress, props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
		right,
	)
}

// tableHeaderRow: cabecera de la tabla con fondo gris claro.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorLight}).Add(
		h("ANIMALES", 6, align.Left),
		h("PRECIO", 2, align.Right),
		h("CANT.", 2, align.Center),
		h("TOTAL", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea. La cantidad mostrada son los días facturados.
func tableDetailRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(it.Label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(format.Currency(it.DailyRate), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.Days), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(format.Currency(it.RowTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: bloque alineado a la derecha. Descuento y retención solo si son > 0.
func totalsRows(inv *entity.Invoice) []core.Row {
	t := inv.Totals
	totalLine := func(label, value string, grand bool) core.Row {
		p := props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1}
		h := 6.0
		if grand {
			p.Style = fontstyle.Bold
			p.Size = 11
			p.Color = colorPrimary
			h = 9
		}
		lp := p
		lp.Style = fontstyle.Bold
		return row.New(h).Add(
			col.New(6),
			col.New(3).Add(text.New(label, lp)),
			col.New(3).Add(text.New(value, p)),
		)
	}

	rows := []core.Row{
		totalLine("SUBTOTAL", format.Currency(t.Base), false),
	}
	if t.DiscountAmount.GreaterThan(decimal.Zero) {
		rows = append(rows, totalLine("DESCUENTO", "-"+format.Currency(t.DiscountAmount), false))
	}
	rows = append(rows, totalLine(fmt.Sprintf("IMPUESTO (%s)", format.Percent(t.IVARate)), format.Currency(t.IVAAmount), false))
	if t.RetentionAmount.GreaterThan(decimal.Zero) {
		rows = append(rows, totalLine(fmt.Sprintf("RETENCIÓN (%s)", format.Percent(t.RetentionRate)), "-"+format.Currency(t.RetentionAmount), false))
	}
	rows = append(rows, totalLine("TOTAL", format.Currency(t.Total), true))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func documentNumber(inv *entity.Invoice) string {
	if inv.InvoiceNumber == "" {
		return DraftLabel
	}
	return inv.InvoiceNumber
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
