package saftxml

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

var decimalPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// headerRequired elementos obligatorios de la cabecera.
var headerRequired = []string{
	"AuditFileVersion", "CompanyID", "TaxRegistrationNumber", "TaxAccountingBasis", "CompanyName",
	"CompanyAddress", "FiscalYear", "StartDate", "EndDate", "CurrencyCode", "DateCreated",
	"TaxEntity", "ProductCompanyTaxID", "SoftwareCertificateNumber", "ProductID", "ProductVersion",
}

// tableShape describe los elementos obligatorios y los formatos de una tabla de documentos.
type tableShape struct {
	name      string
	counters  []string // enteros de la cabecera de la tabla
	amounts   []string // decimales de la cabecera de la tabla
	document  string
	number    string
	required  []string
	dates     []string
	dateTimes []string
}

var tableShapes = []tableShape{
	{
		name:      validation.TableSalesInvoices,
		counters:  []string{"NumberOfEntries"},
		amounts:   []string{"TotalDebit", "TotalCredit"},
		document:  "Invoice",
		number:    "InvoiceNo",
		required:  []string{"InvoiceNo", "ATCUD", "DocumentStatus", "Hash", "HashControl", "InvoiceDate", "InvoiceType", "SourceID", "SystemEntryDate", "CustomerID", "Line", "DocumentTotals"},
		dates:     []string{"InvoiceDate"},
		dateTimes: []string{"SystemEntryDate"},
	},
	{
		name:      validation.TableMovementOfGoods,
		counters:  []string{"NumberOfMovementLines"},
		amounts:   []string{"TotalQuantityIssued"},
		document:  "StockMovement",
		number:    "DocumentNumber",
		required:  []string{"DocumentNumber", "ATCUD", "DocumentStatus", "Hash", "HashControl", "MovementDate", "MovementType", "SystemEntryDate", "MovementStartTime", "Line", "DocumentTotals"},
		dates:     []string{"MovementDate"},
		dateTimes: []string{"SystemEntryDate", "MovementStartTime", "MovementEndTime"},
	},
	{
		name:      validation.TableWorkingDocuments,
		counters:  []string{"NumberOfEntries"},
		amounts:   []string{"TotalDebit", "TotalCredit"},
		document:  "WorkDocument",
		number:    "DocumentNumber",
		required:  []string{"DocumentNumber", "ATCUD", "DocumentStatus", "Hash", "HashControl", "WorkDate", "WorkType", "SourceID", "SystemEntryDate", "CustomerID", "Line", "DocumentTotals"},
		dates:     []string{"WorkDate"},
		dateTimes: []string{"SystemEntryDate"},
	},
	{
		name:      validation.TablePayments,
		counters:  []string{"NumberOfEntries"},
		amounts:   []string{"TotalDebit", "TotalCredit"},
		document:  "Payment",
		number:    "PaymentRefNo",
		required:  []string{"PaymentRefNo", "ATCUD", "TransactionDate", "PaymentType", "DocumentStatus", "SourceID", "SystemEntryDate", "CustomerID", "Line", "DocumentTotals"},
		dates:     []string{"TransactionDate"},
		dateTimes: []string{"SystemEntryDate"},
	},
}

var (
	lineAmounts   = []string{"Quantity", "UnitPrice", "DebitAmount", "CreditAmount", "SettlementAmount"}
	totalsAmounts = []string{"TaxPayable", "NetTotal", "GrossTotal"}
)

// StructureValidator comprobación estructural del ficheiro: raíz, namespace, elementos
// obligatorios y formato de fechas e importes. No sustituye al XSD oficial; detecta los fallos
// que impiden la validación semántica.
type StructureValidator struct {
	namespace string
}

// NewStructureValidator crea el validador para el namespace SAF-T (PT) 1.04_01.
func NewStructureValidator() *StructureValidator {
	return &StructureValidator{namespace: saft.Namespace}
}

// Validate devuelve los problemas estructurales encontrados. Un XML que no se puede leer
// devuelve domain.ErrInvalidAuditFile.
func (v *StructureValidator) Validate(raw []byte) ([]entity.Issue, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAuditFile, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: documento sin raíz", domain.ErrInvalidAuditFile)
	}

	c := &structureCheck{}
	if root.Tag != "AuditFile" {
		c.add("", "", 0, "raíz <%s>, se esperaba <AuditFile>", root.Tag)
		return c.issues, nil
	}
	if ns := root.NamespaceURI(); ns != v.namespace {
		c.add("", "", 0, "namespace %q, se esperaba %q", ns, v.namespace)
	}

	header := root.SelectElement("Header")
	if header == nil {
		c.add("Header", "", 0, "falta <Header>")
	} else {
		c.required(header, "Header", "", 0, headerRequired)
		c.dates(header, "Header", "", 0, []string{"StartDate", "EndDate", "DateCreated"}, dateLayout)
	}
	if root.SelectElement("MasterFiles") == nil {
		c.add("MasterFiles", "", 0, "falta <MasterFiles>")
	}

	if sd := root.SelectElement("SourceDocuments"); sd != nil {
		for _, shape := range tableShapes {
			if table := sd.SelectElement(shape.name); table != nil {
				c.table(table, shape)
			}
		}
	}
	return c.issues, nil
}

type structureCheck struct {
	issues []entity.Issue
}

func (c *structureCheck) add(table, doc string, line int, format string, args ...any) {
	c.issues = append(c.issues, entity.Issue{
		Code:     entity.CodeStructure,
		Severity: entity.SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Table:    table,
		Document: doc,
		Line:     line,
	})
}

func (c *structureCheck) required(el *etree.Element, table, doc string, line int, names []string) {
	for _, name := range names {
		if el.SelectElement(name) == nil {
			c.add(table, doc, line, "falta <%s> en <%s>", name, el.Tag)
		}
	}
}

func (c *structureCheck) dates(el *etree.Element, table, doc string, line int, names []string, layout string) {
	for _, name := range names {
		child := el.SelectElement(name)
		if child == nil {
			continue
		}
		if _, err := time.Parse(layout, strings.TrimSpace(child.Text())); err != nil {
			c.add(table, doc, line, "<%s> %q no tiene el formato %s", name, child.Text(), layout)
		}
	}
}

func (c *structureCheck) amounts(el *etree.Element, table, doc string, line int, names []string) {
	for _, name := range names {
		child := el.SelectElement(name)
		if child == nil {
			continue
		}
		if !decimalPattern.MatchString(strings.TrimSpace(child.Text())) {
			c.add(table, doc, line, "<%s> %q no es un importe", name, child.Text())
		}
	}
}

func (c *structureCheck) table(table *etree.Element, shape tableShape) {
	c.required(table, shape.name, "", 0, shape.counters)
	c.required(table, shape.name, "", 0, shape.amounts)
	for _, name := range shape.counters {
		if el := table.SelectElement(name); el != nil && !isInteger(el.Text()) {
			c.add(shape.name, "", 0, "<%s> %q no es un entero", name, el.Text())
		}
	}
	c.amounts(table, shape.name, "", 0, shape.amounts)

	for _, d := range table.SelectElements(shape.document) {
		number := ""
		if n := d.SelectElement(shape.number); n != nil {
			number = strings.TrimSpace(n.Text())
		}
		c.required(d, shape.name, number, 0, shape.required)
		c.dates(d, shape.name, number, 0, shape.dates, dateLayout)
		c.dates(d, shape.name, number, 0, shape.dateTimes, dateTimeLayout)

		for _, l := range d.SelectElements("Line") {
			n := 0
			if ln := l.SelectElement("LineNumber"); ln != nil && isInteger(ln.Text()) {
				n, _ = strconv.Atoi(strings.TrimSpace(ln.Text()))
			} else {
				c.add(shape.name, number, 0, "<Line> sin <LineNumber> entero")
			}
			c.amounts(l, shape.name, number, n, lineAmounts)
		}
		if t := d.SelectElement("DocumentTotals"); t != nil {
			c.required(t, shape.name, number, 0, totalsAmounts)
			c.amounts(t, shape.name, number, 0, totalsAmounts)
		}
	}
}

func isInteger(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
