package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// PaymentsValidator valida la tabla Payments (4.4). Los recibos no llevan Hash.
type PaymentsValidator struct {
	*engine
	table *entity.Payments
}

// NewPaymentsValidator crea el validador.
func NewPaymentsValidator(audit *entity.AuditFile, cfg Config, opts ...Option) *PaymentsValidator {
	t := audit.SourceDocuments.Payments
	var errs *entity.ErrorMap
	if t != nil {
		errs = &t.Errors
	}
	return &PaymentsValidator{engine: newEngine(paymentsFamily, audit, cfg, nil, errs, opts), table: t}
}

func (v *PaymentsValidator) docs() []document {
	out := make([]document, 0, len(v.table.Payments))
	for _, p := range v.table.Payments {
		out = append(out, paymentDoc{p})
	}
	return out
}

// Validate recorre la tabla completa. Una tabla ausente es válida.
func (v *PaymentsValidator) Validate() bool {
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

// PaymentRefNo formato, prefijo y unicidad del número. state puede ser nil (sin control de duplicados).
func (v *PaymentsValidator) PaymentRefNo(p *entity.Payment, state *ChainState) bool {
	return v.documentNumber(paymentDoc{p}, state)
}

// PaymentType tipo admitido.
func (v *PaymentsValidator) PaymentType(p *entity.Payment) bool {
	return v.documentType(paymentDoc{p})
}

// DocumentStatus estado del recibo.
func (v *PaymentsValidator) DocumentStatus(p *entity.Payment) bool {
	return v.documentStatus(paymentDoc{p})
}

// CustomerID cliente obligatorio y existente.
func (v *PaymentsValidator) CustomerID(p *entity.Payment) bool {
	return v.customerID(paymentDoc{p})
}

// TransactionDateAndSystemEntryDate fechas dentro del período y no anteriores a las del documento
// anterior de la serie registrado en state.
func (v *PaymentsValidator) TransactionDateAndSystemEntryDate(p *entity.Payment, state *ChainState) bool {
	return v.dateAndSystemEntryDate(paymentDoc{p}, state)
}

// Lines numeración e importes de las líneas.
func (v *PaymentsValidator) Lines(p *entity.Payment) bool {
	return v.lines(paymentDoc{p}, entity.NewDocTotalCalc())
}

// Tax impuestos de las líneas.
func (v *PaymentsValidator) Tax(p *entity.Payment) bool {
	return eachLine(paymentDoc{p}, v.tax)
}

// SourceDocumentID documentos liquidados por cada línea.
func (v *PaymentsValidator) SourceDocumentID(p *entity.Payment) bool {
	return eachLine(paymentDoc{p}, v.sourceDocumentID)
}

// Totals DocumentTotals frente a las líneas y a los medios de pago.
func (v *PaymentsValidator) Totals(p *entity.Payment) bool {
	d := paymentDoc{p}
	return v.totals(d, sumLines(d))
}

// NumberOfEntries número de recibos declarado.
func (v *PaymentsValidator) NumberOfEntries() bool {
	if v.table == nil {
		return true
	}
	return v.numberOfEntries(v.table.NumberOfEntries, len(v.table.Payments), tableCalc(&v.table.Calc))
}

// TotalDebit TotalDebit declarado frente al acumulado en state.
func (v *PaymentsValidator) TotalDebit(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	tableCalc(&v.table.Calc).TotalDebit = decimal.NewNullDecimal(state.TotalDebit)
	return v.tableAmount(ruleTotalDebit, "TotalDebit", v.table.TotalDebit, state.TotalDebit)
}

// TotalCredit TotalCredit declarado frente al acumulado en state.
func (v *PaymentsValidator) TotalCredit(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	tableCalc(&v.table.Calc).TotalCredit = decimal.NewNullDecimal(state.TotalCredit)
	return v.tableAmount(ruleTotalCredit, "TotalCredit", v.table.TotalCredit, state.TotalCredit)
}
