// Package pdf genera el informe de una ejecución de validación SAF-T (PT).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIF       │  Ejecución + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ejercicio / Período / Resultado / Errores / Avisos │
//	│  HUELLA: SHA-256 canónico + QR                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLAS: Tabla | Docs | Débito | Crédito | Cantidad | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HALLAZGOS: Tipo | Código | Documento | Línea | Mensaje      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// MaxIssues hallazgos que se listan en el PDF; el resto solo se cuenta.
const MaxIssues = 500

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorError   = &props.Color{Red: 170, Green: 20, Blue: 20}
	colorWarning = &props.Color{Red: 190, Green: 120, Blue: 0}
	colorOK      = &props.Color{Red: 20, Green: 120, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa audit.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, run *entity.ValidationRun) ([]byte, error) {
	if run == nil {
		return nil, fmt.Errorf("pdf: ejecución nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de validación SAF-T (PT)", true).
		WithAuthor(nonEmpty(run.CompanyName, "saftpt-validator"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(run))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(run))
	m.AddRows(fingerprintRow(run))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("TABLAS DE DOCUMENTOS"))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(run.Tables)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow(fmt.Sprintf("HALLAZGOS (%d errores, %d avisos)", run.ErrorCount, run.WarningCount)))
	m.AddRows(issueRows(run.Issues)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + NIF (izq) y ejecución + fecha (der).
func headerRow(run *entity.ValidationRun) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(run.CompanyName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIF: "+nonEmpty(run.TaxRegistrationNumber, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE VALIDACIÓN SAF-T (PT)", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(run.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+run.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func summaryRow(run *entity.ValidationRun) core.Row {
	result, color := "VÁLIDO", colorOK
	if !run.Valid {
		result, color = "NO VÁLIDO", colorError
	}
	period := "-"
	if !run.StartDate.IsZero() && !run.EndDate.IsZero() {
		period = run.StartDate.Format("02/01/2006") + " a " + run.EndDate.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(3).Add(labelValue("Ejercicio", strconv.Itoa(run.FiscalYear))...),
		col.New(4).Add(labelValue("Período", period)...),
		col.New(2).Add(labelValue("Errores", strconv.Itoa(run.ErrorCount))...),
		col.New(2).Add(labelValue("Avisos", strconv.Itoa(run.WarningCount))...),
		col.New(1).Add(text.New(result, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: color, Top: 6,
		})),
	)
}

// fingerprintRow: huella partida + QR con id y huella.
func fingerprintRow(run *entity.ValidationRun) core.Row {
	chunks := splitEvery(run.Fingerprint, 32)
	c := col.New(9).Add(text.New("Huella SHA-256 (C14N):", props.Text{
		Style: fontstyle.Bold, Size: 7, Top: 2,
	}))
	for i, chunk := range chunks {
		c.Add(text.New(chunk, props.Text{Size: 7, Color: colorGray, Top: 7 + float64(i)*4, Left: 2}))
	}
	return row.New(24).Add(
		c,
		col.New(3).Add(code.NewQr(run.ID+";"+run.Fingerprint, props.Rect{Percent: 90, Center: true})),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Tabla", 3, align.Left),
		h("Docs.", 1, align.Center),
		h("Débito", 2, align.Right),
		h("Crédito", 2, align.Right),
		h("Cantidad", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

func tableRows(tables []entity.TableResult) []core.Row {
	if len(tables) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("El ficheiro no contiene tablas de documentos.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	out := make([]core.Row, 0, len(tables))
	for _, t := range tables {
		status, color := "OK", colorOK
		if !t.Valid {
			status, color = "CON ERRORES", colorError
		}
		out = append(out, row.New(6).Add(
			col.New(3).Add(text.New(t.Table, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(t.Documents), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatAmount(t.TotalDebit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatAmount(t.TotalCredit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatAmount(t.TotalQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(status, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: color})),
		))
	}
	return out
}

func issueRows(issues []entity.Issue) []core.Row {
	if len(issues) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin hallazgos.", props.Text{Size: 8, Color: colorOK, Top: 1}),
		))}
	}
	shown := issues
	if len(shown) > MaxIssues {
		shown = shown[:MaxIssues]
	}
	out := make([]core.Row, 0, len(shown)+1)
	for _, is := range shown {
		color := colorError
		if is.Severity == entity.SeverityWarning {
			color = colorWarning
		}
		where := is.Table
		if is.Document != "" {
			where = is.Document
		}
		lineNo := ""
		if is.Line > 0 {
			lineNo = strconv.Itoa(is.Line)
		}
		out = append(out, row.New(5).Add(
			col.New(1).Add(text.New(is.Severity.String(), props.Text{Size: 6.5, Color: color, Top: 0.5})),
			col.New(2).Add(text.New(string(is.Code), props.Text{Size: 6.5, Style: fontstyle.Bold, Top: 0.5})),
			col.New(2).Add(text.New(truncate(where, 24), props.Text{Size: 6.5, Top: 0.5})),
			col.New(1).Add(text.New(lineNo, props.Text{Size: 6.5, Align: align.Center, Top: 0.5})),
			col.New(6).Add(text.New(truncate(is.Message, 90), props.Text{Size: 6.5, Color: colorGray, Top: 0.5})),
		))
	}
	if rest := len(issues) - len(shown); rest > 0 {
		out = append(out, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("… y %d hallazgos más; consulte el informe JSON.", rest), props.Text{
				Size: 7, Style: fontstyle.Italic, Color: colorGray, Top: 1,
			}),
		)))
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func labelValue(label, value string) []core.Component {
	return []core.Component{
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
		text.New(value, props.Text{Size: 9, Top: 6}),
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount dos decimales con puntos de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50"
func formatAmount(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + formatThousands(intPart) + "," + frac
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
