// Package saftxml lee el ficheiro SAF-T (PT) en XML: decodificación a entidades, validación
// estructural y huella canónica del contenido.
package saftxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// charsetReader admite las codificaciones habituales de los programas de faturação además de UTF-8.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "iso-8859-15", "iso8859-15", "latin9":
		return transform.NewReader(input, charmap.ISO8859_15.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", charset)
}

func newXMLDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	return dec
}

// Decode convierte el XML en un AuditFile. Un XML mal formado o sin raíz AuditFile devuelve
// domain.ErrInvalidAuditFile; los valores que no se pueden convertir (fechas, importes) quedan sin
// valor y se registran como N_XMLSTRUCTURE en el ErrorRegister del ficheiro.
func Decode(r io.Reader) (*entity.AuditFile, error) {
	var raw auditFileXML
	if err := newXMLDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAuditFile, err)
	}
	if raw.XMLName.Local != "AuditFile" {
		return nil, fmt.Errorf("%w: raíz %q, se esperaba AuditFile", domain.ErrInvalidAuditFile, raw.XMLName.Local)
	}

	a := entity.NewAuditFile()
	c := &converter{reg: a.ErrorRegister()}
	a.Header = c.header(raw.Header)
	a.MasterFiles = c.masterFiles(raw.MasterFiles)

	sd := raw.SourceDocuments
	if sd.SalesInvoices != nil {
		a.SourceDocuments.SalesInvoices = c.salesInvoices(sd.SalesInvoices)
	}
	if sd.MovementOfGoods != nil {
		a.SourceDocuments.MovementOfGoods = c.movementOfGoods(sd.MovementOfGoods)
	}
	if sd.WorkingDocuments != nil {
		a.SourceDocuments.WorkingDocuments = c.workingDocuments(sd.WorkingDocuments)
	}
	if sd.Payments != nil {
		a.SourceDocuments.Payments = c.payments(sd.Payments)
	}
	return a, nil
}

// DecodeBytes es Decode sobre un slice.
func DecodeBytes(data []byte) (*entity.AuditFile, error) {
	return Decode(bytes.NewReader(data))
}

// converter pasa texto a tipos y registra los valores que no se pueden convertir.
// table, doc y line dan contexto al mensaje.
type converter struct {
	reg   *entity.ErrorRegister
	table string
	doc   string
	line  int
}

func (c *converter) bad(field, value, want string) {
	c.reg.AddError(entity.Issue{
		Code:     entity.CodeStructure,
		Message:  fmt.Sprintf("%s: %q no es %s", field, value, want),
		Table:    c.table,
		Document: c.doc,
		Line:     c.line,
	})
}

func (c *converter) decimal(field, s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.bad(field, s, "un decimal")
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// amount es decimal para campos que la entidad guarda sin nulo (totales de tabla).
func (c *converter) amount(field, s string) decimal.Decimal {
	return c.decimal(field, s).Decimal
}

func (c *converter) integer(field, s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.bad(field, s, "un entero")
		return 0
	}
	return n
}

func (c *converter) date(field, s string) time.Time {
	return c.parseTime(field, s, dateLayout, "una fecha AAAA-MM-DD")
}

func (c *converter) dateTime(field, s string) time.Time {
	return c.parseTime(field, s, dateTimeLayout, "una fecha AAAA-MM-DDThh:mm:ss")
}

func (c *converter) parseTime(field, s, layout, want string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		c.bad(field, s, want)
		return time.Time{}
	}
	return t
}

func (c *converter) header(h headerXML) entity.Header {
	c.table, c.doc, c.line = "Header", "", 0
	return entity.Header{
		AuditFileVersion:          strings.TrimSpace(h.AuditFileVersion),
		CompanyID:                 strings.TrimSpace(h.CompanyID),
		TaxRegistrationNumber:     strings.TrimSpace(h.TaxRegistrationNumber),
		TaxAccountingBasis:        strings.TrimSpace(h.TaxAccountingBasis),
		CompanyName:               strings.TrimSpace(h.CompanyName),
		BusinessName:              strings.TrimSpace(h.BusinessName),
		CompanyAddress:            address(h.CompanyAddress),
		FiscalYear:                c.integer("FiscalYear", h.FiscalYear),
		StartDate:                 c.date("StartDate", h.StartDate),
		EndDate:                   c.date("EndDate", h.EndDate),
		CurrencyCode:              strings.TrimSpace(h.CurrencyCode),
		DateCreated:               c.date("DateCreated", h.DateCreated),
		TaxEntity:                 strings.TrimSpace(h.TaxEntity),
		ProductCompanyTaxID:       strings.TrimSpace(h.ProductCompanyTaxID),
		SoftwareCertificateNumber: strings.TrimSpace(h.SoftwareCertificateNumber),
		ProductID:                 strings.TrimSpace(h.ProductID),
		ProductVersion:            strings.TrimSpace(h.ProductVersion),
	}
}

func address(a addressXML) entity.Address {
	return entity.Address{
		BuildingNumber: strings.TrimSpace(a.BuildingNumber),
		StreetName:     strings.TrimSpace(a.StreetName),
		AddressDetail:  strings.TrimSpace(a.AddressDetail),
		City:           strings.TrimSpace(a.City),
		PostalCode:     strings.TrimSpace(a.PostalCode),
		Region:         strings.TrimSpace(a.Region),
		Country:        strings.TrimSpace(a.Country),
	}
}

func addresses(in []addressXML) []entity.Address {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Address, 0, len(in))
	for _, a := range in {
		out = append(out, address(a))
	}
	return out
}

func (c *converter) masterFiles(m masterFilesXML) entity.MasterFiles {
	c.table, c.doc, c.line = "MasterFiles", "", 0
	var out entity.MasterFiles
	for _, cu := range m.Customer {
		out.Customers = append(out.Customers, &entity.Customer{
			CustomerID:           strings.TrimSpace(cu.CustomerID),
			AccountID:            strings.TrimSpace(cu.AccountID),
			CustomerTaxID:        strings.TrimSpace(cu.CustomerTaxID),
			CompanyName:          strings.TrimSpace(cu.CompanyName),
			BillingAddress:       address(cu.BillingAddress),
			ShipToAddress:        addresses(cu.ShipToAddress),
			SelfBillingIndicator: c.integer("SelfBillingIndicator", cu.SelfBillingIndicator),
		})
	}
	for _, s := range m.Supplier {
		out.Suppliers = append(out.Suppliers, &entity.Supplier{
			SupplierID:           strings.TrimSpace(s.SupplierID),
			AccountID:            strings.TrimSpace(s.AccountID),
			SupplierTaxID:        strings.TrimSpace(s.SupplierTaxID),
			CompanyName:          strings.TrimSpace(s.CompanyName),
			BillingAddress:       address(s.BillingAddress),
			ShipFromAddress:      addresses(s.ShipFromAddress),
			SelfBillingIndicator: c.integer("SelfBillingIndicator", s.SelfBillingIndicator),
		})
	}
	for _, p := range m.Product {
		out.Products = append(out.Products, &entity.Product{
			ProductType:        strings.TrimSpace(p.ProductType),
			ProductCode:        strings.TrimSpace(p.ProductCode),
			ProductGroup:       strings.TrimSpace(p.ProductGroup),
			ProductDescription: strings.TrimSpace(p.ProductDescription),
			ProductNumberCode:  strings.TrimSpace(p.ProductNumberCode),
		})
	}
	for _, e := range m.TaxTable.TaxTableEntry {
		entry := &entity.TaxTableEntry{
			TaxType:          strings.TrimSpace(e.TaxType),
			TaxCountryRegion: strings.TrimSpace(e.TaxCountryRegion),
			TaxCode:          strings.TrimSpace(e.TaxCode),
			Description:      strings.TrimSpace(e.Description),
			TaxPercentage:    c.decimal("TaxPercentage", e.TaxPercentage),
			TaxAmount:        c.decimal("TaxAmount", e.TaxAmount),
		}
		if exp := c.date("TaxExpirationDate", e.TaxExpirationDate); !exp.IsZero() {
			entry.TaxExpirationDate = &exp
		}
		out.TaxTable = append(out.TaxTable, entry)
	}
	return out
}

// status lee el estado con los nombres de campo de la familia del documento.
func (c *converter) status(s *statusXML) *entity.DocumentStatus {
	if s == nil {
		return nil
	}
	code := firstNonEmpty(s.InvoiceStatus, s.MovementStatus, s.WorkStatus, s.PaymentStatus)
	date := firstNonEmpty(s.InvoiceStatusDate, s.MovementStatusDate, s.WorkStatusDate, s.PaymentStatusDate)
	return &entity.DocumentStatus{
		Status:        code,
		StatusDate:    c.dateTime("StatusDate", date),
		Reason:        strings.TrimSpace(s.Reason),
		SourceID:      strings.TrimSpace(s.SourceID),
		SourceBilling: firstNonEmpty(s.SourceBilling, s.SourcePayment),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (c *converter) shippingPoint(p *shippingPointXML) *entity.ShippingPoint {
	if p == nil {
		return nil
	}
	out := &entity.ShippingPoint{
		DeliveryID:   p.DeliveryID,
		DeliveryDate: c.date("DeliveryDate", p.DeliveryDate),
		WarehouseID:  p.WarehouseID,
		LocationID:   p.LocationID,
	}
	if p.Address != nil {
		a := address(*p.Address)
		out.Address = &a
	}
	return out
}

func (c *converter) lines(in []lineXML) []*entity.Line {
	out := make([]*entity.Line, 0, len(in))
	for _, l := range in {
		c.line = c.integer("LineNumber", l.LineNumber)
		line := &entity.Line{
			LineNumber:         c.line,
			ProductCode:        strings.TrimSpace(l.ProductCode),
			ProductDescription: strings.TrimSpace(l.ProductDescription),
			Quantity:           c.decimal("Quantity", l.Quantity),
			UnitOfMeasure:      strings.TrimSpace(l.UnitOfMeasure),
			UnitPrice:          c.decimal("UnitPrice", l.UnitPrice),
			TaxBase:            c.decimal("TaxBase", l.TaxBase),
			TaxPointDate:       c.date("TaxPointDate", l.TaxPointDate),
			Description:        strings.TrimSpace(l.Description),
			DebitAmount:        c.decimal("DebitAmount", l.DebitAmount),
			CreditAmount:       c.decimal("CreditAmount", l.CreditAmount),
			TaxExemptionReason: strings.TrimSpace(l.TaxExemptionReason),
			TaxExemptionCode:   strings.TrimSpace(l.TaxExemptionCode),
			SettlementAmount:   c.decimal("SettlementAmount", l.SettlementAmount),
		}
		for _, o := range l.OrderReferences {
			line.OrderReferences = append(line.OrderReferences, entity.OrderReference{
				OriginatingON: strings.TrimSpace(o.OriginatingON),
				OrderDate:     c.date("OrderDate", o.OrderDate),
			})
		}
		for _, r := range l.References {
			line.References = append(line.References, entity.Reference{
				Reference: strings.TrimSpace(r.Reference),
				Reason:    strings.TrimSpace(r.Reason),
			})
		}
		for _, s := range l.SourceDocumentID {
			line.SourceDocumentID = append(line.SourceDocumentID, entity.SourceDocumentID{
				OriginatingON: strings.TrimSpace(s.OriginatingON),
				InvoiceDate:   c.date("InvoiceDate", s.InvoiceDate),
				Description:   strings.TrimSpace(s.Description),
			})
		}
		if l.Tax != nil {
			line.Tax = &entity.Tax{
				TaxType:          strings.TrimSpace(l.Tax.TaxType),
				TaxCountryRegion: strings.TrimSpace(l.Tax.TaxCountryRegion),
				TaxCode:          strings.TrimSpace(l.Tax.TaxCode),
				TaxPercentage:    c.decimal("TaxPercentage", l.Tax.TaxPercentage),
				TaxAmount:        c.decimal("TaxAmount", l.Tax.TaxAmount),
			}
		}
		out = append(out, line)
	}
	c.line = 0
	return out
}

func (c *converter) paymentMethods(in []paymentMethodXML) []entity.PaymentMethod {
	var out []entity.PaymentMethod
	for _, p := range in {
		out = append(out, entity.PaymentMethod{
			PaymentMechanism: strings.TrimSpace(p.PaymentMechanism),
			PaymentAmount:    c.decimal("PaymentAmount", p.PaymentAmount),
			PaymentDate:      c.date("PaymentDate", p.PaymentDate),
		})
	}
	return out
}

func (c *converter) totals(t *totalsXML) *entity.DocumentTotals {
	if t == nil {
		return nil
	}
	out := &entity.DocumentTotals{
		TaxPayable: c.decimal("TaxPayable", t.TaxPayable),
		NetTotal:   c.decimal("NetTotal", t.NetTotal),
		GrossTotal: c.decimal("GrossTotal", t.GrossTotal),
		Payment:    c.paymentMethods(t.Payment),
	}
	if t.Currency != nil {
		out.Currency = &entity.Currency{
			CurrencyCode:   strings.TrimSpace(t.Currency.CurrencyCode),
			CurrencyAmount: c.decimal("CurrencyAmount", t.Currency.CurrencyAmount),
			ExchangeRate:   c.decimal("ExchangeRate", t.Currency.ExchangeRate),
		}
	}
	for _, s := range t.Settlement {
		out.Settlement = append(out.Settlement, entity.Settlement{
			SettlementDiscount: strings.TrimSpace(s.SettlementDiscount),
			SettlementAmount:   c.decimal("SettlementAmount", s.SettlementAmount),
			SettlementDate:     c.date("SettlementDate", s.SettlementDate),
			PaymentTerms:       strings.TrimSpace(s.PaymentTerms),
		})
	}
	return out
}

func (c *converter) withholding(in []withholdingTaxXML) []entity.WithholdingTax {
	var out []entity.WithholdingTax
	for _, w := range in {
		out = append(out, entity.WithholdingTax{
			WithholdingTaxType:        strings.TrimSpace(w.WithholdingTaxType),
			WithholdingTaxDescription: strings.TrimSpace(w.WithholdingTaxDescription),
			WithholdingTaxAmount:      c.decimal("WithholdingTaxAmount", w.WithholdingTaxAmount),
		})
	}
	return out
}

func (c *converter) salesInvoices(t *salesInvoicesXML) *entity.SalesInvoices {
	c.table, c.doc = validation.TableSalesInvoices, ""
	out := &entity.SalesInvoices{
		NumberOfEntries: c.integer("NumberOfEntries", t.NumberOfEntries),
		TotalDebit:      c.amount("TotalDebit", t.TotalDebit),
		TotalCredit:     c.amount("TotalCredit", t.TotalCredit),
		Invoices:        make([]*entity.Invoice, 0, len(t.Invoice)),
	}
	for _, x := range t.Invoice {
		c.doc = strings.TrimSpace(x.InvoiceNo)
		out.Invoices = append(out.Invoices, &entity.Invoice{
			InvoiceNo:         c.doc,
			ATCUD:             strings.TrimSpace(x.ATCUD),
			DocumentStatus:    c.status(x.DocumentStatus),
			Hash:              strings.TrimSpace(x.Hash),
			HashControl:       strings.TrimSpace(x.HashControl),
			Period:            c.integer("Period", x.Period),
			InvoiceDate:       c.date("InvoiceDate", x.InvoiceDate),
			InvoiceType:       strings.TrimSpace(x.InvoiceType),
			SelfBilling:       strings.TrimSpace(x.SpecialRegimes.SelfBillingIndicator) == "1",
			SourceID:          strings.TrimSpace(x.SourceID),
			EACCode:           strings.TrimSpace(x.EACCode),
			SystemEntryDate:   c.dateTime("SystemEntryDate", x.SystemEntryDate),
			TransactionID:     strings.TrimSpace(x.TransactionID),
			CustomerID:        strings.TrimSpace(x.CustomerID),
			ShipTo:            c.shippingPoint(x.ShipTo),
			ShipFrom:          c.shippingPoint(x.ShipFrom),
			MovementEndTime:   c.dateTime("MovementEndTime", x.MovementEndTime),
			MovementStartTime: c.dateTime("MovementStartTime", x.MovementStartTime),
			Lines:             c.lines(x.Line),
			DocumentTotals:    c.totals(x.DocumentTotals),
			WithholdingTax:    c.withholding(x.WithholdingTax),
		})
	}
	return out
}

func (c *converter) movementOfGoods(t *movementOfGoodsXML) *entity.MovementOfGoods {
	c.table, c.doc = validation.TableMovementOfGoods, ""
	out := &entity.MovementOfGoods{
		NumberOfMovementLines: c.integer("NumberOfMovementLines", t.NumberOfMovementLines),
		TotalQuantityIssued:   c.amount("TotalQuantityIssued", t.TotalQuantityIssued),
		StockMovements:        make([]*entity.StockMovement, 0, len(t.StockMovement)),
	}
	for _, x := range t.StockMovement {
		c.doc = strings.TrimSpace(x.DocumentNumber)
		out.StockMovements = append(out.StockMovements, &entity.StockMovement{
			DocumentNumber:    c.doc,
			ATCUD:             strings.TrimSpace(x.ATCUD),
			DocumentStatus:    c.status(x.DocumentStatus),
			Hash:              strings.TrimSpace(x.Hash),
			HashControl:       strings.TrimSpace(x.HashControl),
			Period:            c.integer("Period", x.Period),
			MovementDate:      c.date("MovementDate", x.MovementDate),
			MovementType:      strings.TrimSpace(x.MovementType),
			SystemEntryDate:   c.dateTime("SystemEntryDate", x.SystemEntryDate),
			TransactionID:     strings.TrimSpace(x.TransactionID),
			CustomerID:        strings.TrimSpace(x.CustomerID),
			SupplierID:        strings.TrimSpace(x.SupplierID),
			SourceID:          strings.TrimSpace(x.SourceID),
			EACCode:           strings.TrimSpace(x.EACCode),
			MovementComments:  strings.TrimSpace(x.MovementComments),
			ShipTo:            c.shippingPoint(x.ShipTo),
			ShipFrom:          c.shippingPoint(x.ShipFrom),
			MovementEndTime:   c.dateTime("MovementEndTime", x.MovementEndTime),
			MovementStartTime: c.dateTime("MovementStartTime", x.MovementStartTime),
			ATDocCodeID:       strings.TrimSpace(x.ATDocCodeID),
			Lines:             c.lines(x.Line),
			DocumentTotals:    c.totals(x.DocumentTotals),
		})
	}
	return out
}

func (c *converter) workingDocuments(t *workingDocumentsXML) *entity.WorkingDocuments {
	c.table, c.doc = validation.TableWorkingDocuments, ""
	out := &entity.WorkingDocuments{
		NumberOfEntries: c.integer("NumberOfEntries", t.NumberOfEntries),
		TotalDebit:      c.amount("TotalDebit", t.TotalDebit),
		TotalCredit:     c.amount("TotalCredit", t.TotalCredit),
		WorkDocuments:   make([]*entity.WorkDocument, 0, len(t.WorkDocument)),
	}
	for _, x := range t.WorkDocument {
		c.doc = strings.TrimSpace(x.DocumentNumber)
		out.WorkDocuments = append(out.WorkDocuments, &entity.WorkDocument{
			DocumentNumber:  c.doc,
			ATCUD:           strings.TrimSpace(x.ATCUD),
			DocumentStatus:  c.status(x.DocumentStatus),
			Hash:            strings.TrimSpace(x.Hash),
			HashControl:     strings.TrimSpace(x.HashControl),
			Period:          c.integer("Period", x.Period),
			WorkDate:        c.date("WorkDate", x.WorkDate),
			WorkType:        strings.TrimSpace(x.WorkType),
			SourceID:        strings.TrimSpace(x.SourceID),
			EACCode:         strings.TrimSpace(x.EACCode),
			SystemEntryDate: c.dateTime("SystemEntryDate", x.SystemEntryDate),
			TransactionID:   strings.TrimSpace(x.TransactionID),
			CustomerID:      strings.TrimSpace(x.CustomerID),
			Lines:           c.lines(x.Line),
			DocumentTotals:  c.totals(x.DocumentTotals),
		})
	}
	return out
}

func (c *converter) payments(t *paymentsXML) *entity.Payments {
	c.table, c.doc = validation.TablePayments, ""
	out := &entity.Payments{
		NumberOfEntries: c.integer("NumberOfEntries", t.NumberOfEntries),
		TotalDebit:      c.amount("TotalDebit", t.TotalDebit),
		TotalCredit:     c.amount("TotalCredit", t.TotalCredit),
		Payments:        make([]*entity.Payment, 0, len(t.Payment)),
	}
	for _, x := range t.Payment {
		c.doc = strings.TrimSpace(x.PaymentRefNo)
		out.Payments = append(out.Payments, &entity.Payment{
			PaymentRefNo:    c.doc,
			ATCUD:           strings.TrimSpace(x.ATCUD),
			Period:          c.integer("Period", x.Period),
			TransactionID:   strings.TrimSpace(x.TransactionID),
			TransactionDate: c.date("TransactionDate", x.TransactionDate),
			PaymentType:     strings.TrimSpace(x.PaymentType),
			Description:     strings.TrimSpace(x.Description),
			SystemID:        strings.TrimSpace(x.SystemID),
			DocumentStatus:  c.status(x.DocumentStatus),
			PaymentMethod:   c.paymentMethods(x.PaymentMethod),
			SourceID:        strings.TrimSpace(x.SourceID),
			SystemEntryDate: c.dateTime("SystemEntryDate", x.SystemEntryDate),
			CustomerID:      strings.TrimSpace(x.CustomerID),
			Lines:           c.lines(x.Line),
			DocumentTotals:  c.totals(x.DocumentTotals),
			WithholdingTax:  c.withholding(x.WithholdingTax),
		})
	}
	return out
}
