package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
)

// WorkingDocumentsValidator valida la tabla WorkingDocuments (4.3).
type WorkingDocumentsValidator struct {
	*engine
	table *entity.WorkingDocuments
}

// NewWorkingDocumentsValidator crea el validador. verifier puede ser nil: en ese caso solo se
// comprueba la presencia del Hash.
func NewWorkingDocumentsValidator(audit *entity.AuditFile, cfg Config, verifier signature.Verifier, opts ...Option) *WorkingDocumentsValidator {
	t := audit.SourceDocuments.WorkingDocuments
	var errs *entity.ErrorMap
	if t != nil {
		errs = &t.Errors
	}
	return &WorkingDocumentsValidator{engine: newEngine(workingDocumentsFamily, audit, cfg, verifier, errs, opts), table: t}
}

func (v *WorkingDocumentsValidator) docs() []document {
	out := make([]document, 0, len(v.table.WorkDocuments))
	for _, wd := range v.table.WorkDocuments {
		out = append(out, workDoc{wd})
	}
	return out
}

// Validate recorre la tabla completa. Una tabla ausente es válida.
func (v *WorkingDocumentsValidator) Validate() bool {
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

// DocumentNumber formato, prefijo y unicidad del número. state puede ser nil (sin control de duplicados).
func (v *WorkingDocumentsValidator) DocumentNumber(wd *entity.WorkDocument, state *ChainState) bool {
	return v.documentNumber(workDoc{wd}, state)
}

// WorkType tipo admitido.
func (v *WorkingDocumentsValidator) WorkType(wd *entity.WorkDocument) bool {
	return v.documentType(workDoc{wd})
}

// OutOfDateWorkTypes DC solo hasta 2017-06-30.
func (v *WorkingDocumentsValidator) OutOfDateWorkTypes(wd *entity.WorkDocument) bool {
	return v.outOfDateType(workDoc{wd})
}

// DocumentStatus estado del documento de conferência.
func (v *WorkingDocumentsValidator) DocumentStatus(wd *entity.WorkDocument) bool {
	return v.documentStatus(workDoc{wd})
}

// CustomerID cliente obligatorio y existente.
func (v *WorkingDocumentsValidator) CustomerID(wd *entity.WorkDocument) bool {
	return v.customerID(workDoc{wd})
}

// WorkDateAndSystemEntryDate fechas dentro del período y no anteriores a las del documento
// anterior de la serie registrado en state.
func (v *WorkingDocumentsValidator) WorkDateAndSystemEntryDate(wd *entity.WorkDocument, state *ChainState) bool {
	return v.dateAndSystemEntryDate(workDoc{wd}, state)
}

// Lines numeración e importes de las líneas.
func (v *WorkingDocumentsValidator) Lines(wd *entity.WorkDocument) bool {
	return v.lines(workDoc{wd}, entity.NewDocTotalCalc())
}

// ProductCode productos de las líneas.
func (v *WorkingDocumentsValidator) ProductCode(wd *entity.WorkDocument) bool {
	return eachLine(workDoc{wd}, v.productCode)
}

// Tax impuestos de las líneas.
func (v *WorkingDocumentsValidator) Tax(wd *entity.WorkDocument) bool {
	return eachLine(workDoc{wd}, v.tax)
}

// References referencias de notas de crédito y débito.
func (v *WorkingDocumentsValidator) References(wd *entity.WorkDocument) bool {
	return eachLine(workDoc{wd}, v.references)
}

// OrderReferences referencias a notas de encomenda.
func (v *WorkingDocumentsValidator) OrderReferences(wd *entity.WorkDocument) bool {
	return eachLine(workDoc{wd}, v.orderReferences)
}

// Totals DocumentTotals frente a las líneas.
func (v *WorkingDocumentsValidator) Totals(wd *entity.WorkDocument) bool {
	d := workDoc{wd}
	return v.totals(d, sumLines(d))
}

// Sign verifica el Hash del documento con la cadena de state.
func (v *WorkingDocumentsValidator) Sign(wd *entity.WorkDocument, state *ChainState) bool {
	return v.sign(workDoc{wd}, state)
}

// NumberOfEntries número de documentos declarado.
func (v *WorkingDocumentsValidator) NumberOfEntries() bool {
	if v.table == nil {
		return true
	}
	return v.numberOfEntries(v.table.NumberOfEntries, len(v.table.WorkDocuments), tableCalc(&v.table.Calc))
}

// TotalDebit TotalDebit declarado frente al acumulado en state.
func (v *WorkingDocumentsValidator) TotalDebit(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	tableCalc(&v.table.Calc).TotalDebit = decimal.NewNullDecimal(state.TotalDebit)
	return v.tableAmount(ruleTotalDebit, "TotalDebit", v.table.TotalDebit, state.TotalDebit)
}

// TotalCredit TotalCredit declarado frente al acumulado en state.
func (v *WorkingDocumentsValidator) TotalCredit(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	tableCalc(&v.table.Calc).TotalCredit = decimal.NewNullDecimal(state.TotalCredit)
	return v.tableAmount(ruleTotalCredit, "TotalCredit", v.table.TotalCredit, state.TotalCredit)
}
