package validation

import (
	"fmt"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

// TypeRegistry série interna ("FT 2024") → tipo de documento ya asignado. Se comparte entre
// tablas para detectar séries usadas con más de un tipo.
type TypeRegistry map[string]string

// OtherValidations reglas que cruzan documentos de distintas tablas.
type OtherValidations struct {
	audit *entity.AuditFile
	errs  entity.ErrorMap
	valid bool
}

// NewOtherValidations crea el validador de reglas entre tablas.
func NewOtherValidations(audit *entity.AuditFile) *OtherValidations {
	return &OtherValidations{audit: audit, valid: true}
}

// IsValid false si alguna série quedó duplicada.
func (o *OtherValidations) IsValid() bool { return o.valid }

// Errors errores registrados por este validador.
func (o *OtherValidations) Errors() *entity.ErrorMap { return &o.errs }

type typedNumber struct{ number, docType string }

// Validate comprueba las cuatro tablas compartiendo un único registro de séries.
func (o *OtherValidations) Validate() bool {
	registry := TypeRegistry{}
	sd := o.audit.SourceDocuments
	if sd.SalesInvoices != nil {
		o.CheckInvoicesType(sd.SalesInvoices.Invoices, registry)
	}
	if sd.MovementOfGoods != nil {
		o.CheckStockMovementType(sd.MovementOfGoods.StockMovements, registry)
	}
	if sd.WorkingDocuments != nil {
		o.CheckWorkDocumentType(sd.WorkingDocuments.WorkDocuments, registry)
	}
	if sd.Payments != nil {
		o.CheckPaymentType(sd.Payments.Payments, registry)
	}
	return o.valid
}

// CheckInvoicesType cada série interna de las facturas corresponde a un solo tipo.
func (o *OtherValidations) CheckInvoicesType(invoices []*entity.Invoice, registry TypeRegistry) bool {
	docs := make([]typedNumber, 0, len(invoices))
	for _, inv := range invoices {
		docs = append(docs, typedNumber{inv.InvoiceNo, inv.InvoiceType})
	}
	return o.checkTypes(TableSalesInvoices, docs, registry)
}

// CheckStockMovementType ídem para guías.
func (o *OtherValidations) CheckStockMovementType(movements []*entity.StockMovement, registry TypeRegistry) bool {
	docs := make([]typedNumber, 0, len(movements))
	for _, m := range movements {
		docs = append(docs, typedNumber{m.DocumentNumber, m.MovementType})
	}
	return o.checkTypes(TableMovementOfGoods, docs, registry)
}

// CheckWorkDocumentType ídem para documentos de conferência.
func (o *OtherValidations) CheckWorkDocumentType(works []*entity.WorkDocument, registry TypeRegistry) bool {
	docs := make([]typedNumber, 0, len(works))
	for _, w := range works {
		docs = append(docs, typedNumber{w.DocumentNumber, w.WorkType})
	}
	return o.checkTypes(TableWorkingDocuments, docs, registry)
}

// CheckPaymentType ídem para recibos.
func (o *OtherValidations) CheckPaymentType(payments []*entity.Payment, registry TypeRegistry) bool {
	docs := make([]typedNumber, 0, len(payments))
	for _, p := range payments {
		docs = append(docs, typedNumber{p.PaymentRefNo, p.PaymentType})
	}
	return o.checkTypes(TablePayments, docs, registry)
}

// checkTypes registra un error por série si dentro de la tabla aparece con dos tipos o si el
// registro externo ya la tiene con otro tipo. Al terminar añade las séries nuevas al registro.
func (o *OtherValidations) checkTypes(table string, docs []typedNumber, registry TypeRegistry) bool {
	ok := true
	local := make(map[string]string)
	reported := make(map[string]bool)
	for _, d := range docs {
		series := saft.InternalSeries(d.number)
		if series == "" {
			continue
		}
		if t, found := local[series]; found && t != d.docType && !reported[series] {
			o.fail(CodeDuplicatedSeriesInDocuments, table, d.number,
				fmt.Sprintf("série %q usada por los tipos %q y %q", series, t, d.docType))
			reported[series] = true
			ok = false
		} else if !found {
			local[series] = d.docType
		}
		if t, found := registry[series]; found && t != d.docType && !reported[series] {
			o.fail(CodeDuplicatedSeriesInTypes, table, d.number,
				fmt.Sprintf("série %q ya registrada con el tipo %q, el documento es %q", series, t, d.docType))
			reported[series] = true
			ok = false
		}
	}
	if registry != nil {
		for series, t := range local {
			if _, found := registry[series]; !found {
				registry[series] = t
			}
		}
	}
	return ok
}

func (o *OtherValidations) fail(code entity.Code, table, number, msg string) {
	o.errs.Add(code, msg)
	o.audit.ErrorRegister().AddError(entity.Issue{Code: code, Message: msg, Table: table, Document: number})
	o.valid = false
}
