package validation

import (
	"time"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

// Nombres de tabla usados en el ErrorRegister.
const (
	TableSalesInvoices    = "SalesInvoices"
	TableMovementOfGoods  = "MovementOfGoods"
	TableWorkingDocuments = "WorkingDocuments"
	TablePayments         = "Payments"
)

type partyRule int

const (
	partyCustomer partyRule = iota
	partySupplier
	partyEither
)

// family parámetros que diferencian a las cuatro familias de documentos. El algoritmo de
// validación es el mismo para todas.
type family struct {
	table    string
	codes    map[rule]entity.Code
	types    map[string]bool
	statuses map[string]bool
	party    func(docType string) partyRule

	signed         bool
	shipment       bool
	lineArithmetic bool // Quantity × UnitPrice = importe de la línea
	requireProduct bool
	taxOptional    bool
	sourceDocs     bool // líneas con SourceDocumentID (recibos)
	creditNoteType string

	legacyTypes  map[string]bool
	legacyCutoff time.Time

	excluded map[string]bool // estados que no suman a los totales de la tabla
}

func (f *family) code(r rule) entity.Code { return f.codes[r] }

func (f *family) partyFor(docType string) partyRule {
	if f.party == nil {
		return partyCustomer
	}
	return f.party(docType)
}

func alwaysCustomer(string) partyRule { return partyCustomer }

var salesInvoicesFamily = &family{
	table: TableSalesInvoices,
	codes: codeTable(map[rule]entity.Code{
		ruleDocumentNumber: CodeInvoiceNo,
		ruleDocumentType:   CodeInvoiceType,
		ruleStatus:         CodeInvoiceStatus,
		ruleStatusDate:     CodeInvoiceStatusDate,
		ruleDate:           CodeInvoiceDate,
		ruleOutOfDateType:  CodeOutOfDateInvoiceType,
	}),
	types:          saft.ValidInvoiceTypes,
	statuses:       saft.ValidInvoiceStatus,
	party:          alwaysCustomer,
	signed:         true,
	lineArithmetic: true,
	requireProduct: true,
	creditNoteType: saft.InvoiceTypeNotaCredito,
	legacyTypes:    saft.LegacyInvoiceTypes,
	legacyCutoff:   saft.InvoiceLegacyCutoff,
	excluded:       map[string]bool{saft.StatusAnulado: true, saft.StatusFaturado: true},
}

var movementOfGoodsFamily = &family{
	table: TableMovementOfGoods,
	codes: codeTable(map[rule]entity.Code{
		ruleDocumentNumber: CodeMovementDocumentNumber,
		ruleDocumentType:   CodeMovementType,
		ruleStatus:         CodeMovementStatus,
		ruleStatusDate:     CodeMovementStatusDate,
		ruleDate:           CodeMovementDate,
	}),
	types:    saft.ValidMovementTypes,
	statuses: saft.ValidMovementStatus,
	party: func(docType string) partyRule {
		if docType == saft.MovementTypeDevolucao {
			return partySupplier
		}
		return partyEither
	},
	signed:         true,
	shipment:       true,
	lineArithmetic: true,
	requireProduct: true,
	taxOptional:    true,
	excluded:       map[string]bool{saft.StatusAnulado: true, saft.StatusFaturado: true},
}

var workingDocumentsFamily = &family{
	table: TableWorkingDocuments,
	codes: codeTable(map[rule]entity.Code{
		ruleDocumentNumber: CodeWorkDocumentNumber,
		ruleDocumentType:   CodeWorkType,
		ruleStatus:         CodeWorkStatus,
		ruleStatusDate:     CodeWorkStatusDate,
		ruleDate:           CodeWorkDate,
		ruleOutOfDateType:  CodeOutOfDateWorkType,
	}),
	types:          saft.ValidWorkTypes,
	statuses:       saft.ValidWorkStatus,
	party:          alwaysCustomer,
	signed:         true,
	lineArithmetic: true,
	requireProduct: true,
	legacyTypes:    saft.LegacyWorkTypes,
	legacyCutoff:   saft.WorkLegacyCutoff,
	excluded:       map[string]bool{saft.StatusAnulado: true, saft.StatusFaturado: true},
}

var paymentsFamily = &family{
	table: TablePayments,
	codes: codeTable(map[rule]entity.Code{
		ruleDocumentNumber: CodePaymentRefNo,
		ruleDocumentType:   CodePaymentType,
		ruleStatus:         CodePaymentStatus,
		ruleStatusDate:     CodePaymentStatusDate,
		ruleDate:           CodeTransactionDate,
	}),
	types:       saft.ValidPaymentTypes,
	statuses:    saft.ValidPaymentStatus,
	party:       alwaysCustomer,
	taxOptional: true,
	sourceDocs:  true,
	excluded:    map[string]bool{saft.StatusAnulado: true},
}
