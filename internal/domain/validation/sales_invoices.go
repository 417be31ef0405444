package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
)

// SalesInvoicesValidator valida la tabla SalesInvoices (4.1).
type SalesInvoicesValidator struct {
	*engine
	table *entity.SalesInvoices
}

// NewSalesInvoicesValidator crea el validador. verifier puede ser nil: en ese caso solo se
// comprueba la presencia del Hash.
func NewSalesInvoicesValidator(audit *entity.AuditFile, cfg Config, verifier signature.Verifier, opts ...Option) *SalesInvoicesValidator {
	t := audit.SourceDocuments.SalesInvoices
	var errs *entity.ErrorMap
	if t != nil {
		errs = &t.Errors
	}
	return &SalesInvoicesValidator{engine: newEngine(salesInvoicesFamily, audit, cfg, verifier, errs, opts), table: t}
}

func (v *SalesInvoicesValidator) docs() []document {
	out := make([]document, 0, len(v.table.Invoices))
	for _, inv := range v.table.Invoices {
		out = append(out, invoiceDoc{inv})
	}
	return out
}

// Validate recorre la tabla completa. Una tabla ausente es válida.
func (v *SalesInvoicesValidator) Validate() bool {
	if v.table == nil {
		return v.IsValid()
	}
	v.NumberOfEntries()
	state := NewChainState()
	v.walk(v.docs(), state)
	v.TotalDebit(state)
	v.TotalCredit(state)
	return v.IsValid()
}

// InvoiceNo formato, prefijo y unicidad del número. state puede ser nil (sin control de duplicados).
func (v *SalesInvoicesValidator) InvoiceNo(inv *entity.Invoice, state *ChainState) bool {
	return v.documentNumber(invoiceDoc{inv}, state)
}

// InvoiceType tipo admitido.
func (v *SalesInvoicesValidator) InvoiceType(inv *entity.Invoice) bool {
	return v.documentType(invoiceDoc{inv})
}

// OutOfDateInvoiceTypes VD, TV, TD, AA y DA solo hasta 2012-12-31.
func (v *SalesInvoicesValidator) OutOfDateInvoiceTypes(inv *entity.Invoice) bool {
	return v.outOfDateType(invoiceDoc{inv})
}

// DocumentStatus estado de la factura.
func (v *SalesInvoicesValidator) DocumentStatus(inv *entity.Invoice) bool {
	return v.documentStatus(invoiceDoc{inv})
}

// CustomerID cliente obligatorio y existente.
func (v *SalesInvoicesValidator) CustomerID(inv *entity.Invoice) bool {
	return v.customerID(invoiceDoc{inv})
}

// InvoiceDateAndSystemEntryDate fechas dentro del período y no anteriores a las del documento
// anterior de la serie registrado en state.
func (v *SalesInvoicesValidator) InvoiceDateAndSystemEntryDate(inv *entity.Invoice, state *ChainState) bool {
	return v.dateAndSystemEntryDate(invoiceDoc{inv}, state)
}

// Lines numeración e importes de las líneas.
func (v *SalesInvoicesValidator) Lines(inv *entity.Invoice) bool {
	return v.lines(invoiceDoc{inv}, entity.NewDocTotalCalc())
}

// ProductCode productos de las líneas.
func (v *SalesInvoicesValidator) ProductCode(inv *entity.Invoice) bool {
	return eachLine(invoiceDoc{inv}, v.productCode)
}

// Tax impuestos de las líneas.
func (v *SalesInvoicesValidator) Tax(inv *entity.Invoice) bool {
	return eachLine(invoiceDoc{inv}, v.tax)
}

// References referencias de notas de crédito y débito.
func (v *SalesInvoicesValidator) References(inv *entity.Invoice) bool {
	return eachLine(invoiceDoc{inv}, v.references)
}

// OrderReferences referencias a notas de encomenda.
func (v *SalesInvoicesValidator) OrderReferences(inv *entity.Invoice) bool {
	return eachLine(invoiceDoc{inv}, v.orderReferences)
}

// Totals DocumentTotals frente a las líneas.
func (v *SalesInvoicesValidator) Totals(inv *entity.Invoice) bool {
	d := invoiceDoc{inv}
	return v.totals(d, sumLines(d))
}

// Sign verifica el Hash de la factura con la cadena de state.
func (v *SalesInvoicesValidator) Sign(inv *entity.Invoice, state *ChainState) bool {
	return v.sign(invoiceDoc{inv}, state)
}

// NumberOfEntries número de facturas declarado.
func (v *SalesInvoicesValidator) NumberOfEntries() bool {
	if v.table == nil {
		return true
	}
	return v.numberOfEntries(v.table.NumberOfEntries, len(v.table.Invoices), tableCalc(&v.table.Calc))
}

// TotalDebit TotalDebit declarado frente al acumulado en state.
func (v *SalesInvoicesValidator) TotalDebit(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	tableCalc(&v.table.Calc).TotalDebit = decimal.NewNullDecimal(state.TotalDebit)
	return v.tableAmount(ruleTotalDebit, "TotalDebit", v.table.TotalDebit, state.TotalDebit)
}

// TotalCredit TotalCredit declarado frente al acumulado en state.
func (v *SalesInvoicesValidator) TotalCredit(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	tableCalc(&v.table.Calc).TotalCredit = decimal.NewNullDecimal(state.TotalCredit)
	return v.tableAmount(ruleTotalCredit, "TotalCredit", v.table.TotalCredit, state.TotalCredit)
}
