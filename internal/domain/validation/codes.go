package validation

import "github.com/jhoicas/saftpt-validator/internal/domain/entity"

// Códigos comunes a todas las familias.
const (
	CodeDocumentStatus   entity.Code = "N_DOCUMENTSTATUS"
	CodeReason           entity.Code = "N_REASON"
	CodeCustomerID       entity.Code = "N_CUSTOMERID"
	CodeSupplierID       entity.Code = "N_SUPPLIERID"
	CodeLine             entity.Code = "N_LINE"
	CodeLineNumber       entity.Code = "N_LINENUMBER"
	CodeQuantity         entity.Code = "N_QUANTITY"
	CodeUnitPrice        entity.Code = "N_UNITPRICE"
	CodeDebitCredit      entity.Code = "N_DEBITCREDITAMOUNT"
	CodeLineAmount       entity.Code = "N_LINEAMOUNT"
	CodeProductCode      entity.Code = "N_PRODUCTCODE"
	CodeTax              entity.Code = "N_TAX"
	CodeTaxExemption     entity.Code = "N_TAXEXEMPTION"
	CodeTaxTable         entity.Code = "N_TAXTABLE"
	CodeReferences       entity.Code = "N_REFERENCES"
	CodeOrderReferences  entity.Code = "N_ORDERREFERENCES"
	CodeOriginatingON    entity.Code = "N_ORIGINATINGON"
	CodeSourceDocumentID entity.Code = "N_SOURCEDOCUMENTID"
	CodeDocumentTotals   entity.Code = "N_DOCUMENTTOTALS"
	CodeNetTotal         entity.Code = "N_NETTOTAL"
	CodeTaxPayable       entity.Code = "N_TAXPAYABLE"
	CodeGrossTotal       entity.Code = "N_GROSSTOTAL"
	CodeCurrency         entity.Code = "N_CURRENCY"
	CodePaymentMethod    entity.Code = "N_PAYMENTMETHOD"
	CodeHash             entity.Code = "N_HASH"
	CodeSignature        entity.Code = "N_SIGNATURE"
	CodeSystemEntryDate  entity.Code = "N_SYSTEMENTRYDATE"
	CodeMovementStart    entity.Code = "N_MOVEMENTSTARTTIME"
	CodeMovementEnd      entity.Code = "N_MOVEMENTENDTIME"
	CodeShipFrom         entity.Code = "N_SHIPFROM"
	CodeShipTo           entity.Code = "N_SHIPTO"
	CodeDeliveryDate     entity.Code = "N_DELIVERYDATE"
	CodeNumberOfEntries  entity.Code = "N_NUMBEROFENTRIES"
	CodeNumberOfLines    entity.Code = "N_NUMBEROFMOVEMENTLINES"
	CodeTotalQuantity    entity.Code = "N_TOTALQUANTITYISSUED"
	CodeTotalDebit       entity.Code = "N_TOTALDEBIT"
	CodeTotalCredit      entity.Code = "N_TOTALCREDIT"

	CodeDuplicatedSeriesInDocuments entity.Code = "N_DUPLICATEDSERIESINDOCUMENTS"
	CodeDuplicatedSeriesInTypes     entity.Code = "N_DUPLICATEDSERIESINTYPES"
)

// SalesInvoices.
const (
	CodeInvoiceNo            entity.Code = "N_INVOICENO"
	CodeInvoiceType          entity.Code = "N_INVOICETYPE"
	CodeInvoiceStatus        entity.Code = "N_INVOICESTATUS"
	CodeInvoiceStatusDate    entity.Code = "N_INVOICESTATUSDATE"
	CodeInvoiceDate          entity.Code = "N_INVOICEDATE"
	CodeOutOfDateInvoiceType entity.Code = "N_OUTOFDATEINVOICETYPE"
)

// MovementOfGoods.
const (
	CodeMovementDocumentNumber entity.Code = "N_MOVEMENTDOCUMENTNUMBER"
	CodeMovementType           entity.Code = "N_MOVEMENTTYPE"
	CodeMovementStatus         entity.Code = "N_MOVEMENTSTATUS"
	CodeMovementStatusDate     entity.Code = "N_MOVEMENTSTATUSDATE"
	CodeMovementDate           entity.Code = "N_MOVEMENTDATE"
)

// WorkingDocuments.
const (
	CodeWorkDocumentNumber entity.Code = "N_WORKDOCUMENTNUMBER"
	CodeWorkType           entity.Code = "N_WORKTYPE"
	CodeWorkStatus         entity.Code = "N_WORKSTATUS"
	CodeWorkStatusDate     entity.Code = "N_WORKSTATUSDATE"
	CodeWorkDate           entity.Code = "N_WORKDATE"
	CodeOutOfDateWorkType  entity.Code = "N_OUTOFDATEWORKTYPE"
)

// Payments.
const (
	CodePaymentRefNo      entity.Code = "N_PAYMENTREFNO"
	CodePaymentType       entity.Code = "N_PAYMENTTYPE"
	CodePaymentStatus     entity.Code = "N_PAYMENTSTATUS"
	CodePaymentStatusDate entity.Code = "N_PAYMENTSTATUSDATE"
	CodeTransactionDate   entity.Code = "N_TRANSACTIONDATE"
)

// rule regla genérica; cada familia la traduce a su código.
type rule int

const (
	ruleDocumentNumber rule = iota
	ruleDocumentType
	ruleDocumentStatus
	ruleStatus
	ruleStatusDate
	ruleReason
	ruleCustomerID
	ruleSupplierID
	ruleLine
	ruleLineNumber
	ruleQuantity
	ruleUnitPrice
	ruleDebitCredit
	ruleLineAmount
	ruleProductCode
	ruleTax
	ruleTaxExemption
	ruleTaxTable
	ruleReferences
	ruleOrderReferences
	ruleOriginatingON
	ruleSourceDocumentID
	ruleDocumentTotals
	ruleNetTotal
	ruleTaxPayable
	ruleGrossTotal
	ruleCurrency
	rulePaymentMethod
	ruleHash
	ruleSignature
	ruleDate
	ruleSystemEntryDate
	ruleHeaderDates
	ruleOutOfDateType
	ruleMovementStart
	ruleMovementEnd
	ruleShipFrom
	ruleShipTo
	ruleDeliveryDate
	ruleNumberOfEntries
	ruleNumberOfLines
	ruleTotalQuantity
	ruleTotalDebit
	ruleTotalCredit
)

// commonCodes códigos que no cambian entre familias.
var commonCodes = map[rule]entity.Code{
	ruleDocumentStatus:   CodeDocumentStatus,
	ruleReason:           CodeReason,
	ruleCustomerID:       CodeCustomerID,
	ruleSupplierID:       CodeSupplierID,
	ruleLine:             CodeLine,
	ruleLineNumber:       CodeLineNumber,
	ruleQuantity:         CodeQuantity,
	ruleUnitPrice:        CodeUnitPrice,
	ruleDebitCredit:      CodeDebitCredit,
	ruleLineAmount:       CodeLineAmount,
	ruleProductCode:      CodeProductCode,
	ruleTax:              CodeTax,
	ruleTaxExemption:     CodeTaxExemption,
	ruleTaxTable:         CodeTaxTable,
	ruleReferences:       CodeReferences,
	ruleOrderReferences:  CodeOrderReferences,
	ruleOriginatingON:    CodeOriginatingON,
	ruleSourceDocumentID: CodeSourceDocumentID,
	ruleDocumentTotals:   CodeDocumentTotals,
	ruleNetTotal:         CodeNetTotal,
	ruleTaxPayable:       CodeTaxPayable,
	ruleGrossTotal:       CodeGrossTotal,
	ruleCurrency:         CodeCurrency,
	rulePaymentMethod:    CodePaymentMethod,
	ruleHash:             CodeHash,
	ruleSignature:        CodeSignature,
	ruleSystemEntryDate:  CodeSystemEntryDate,
	ruleHeaderDates:      entity.CodeHeaderDates,
	ruleMovementStart:    CodeMovementStart,
	ruleMovementEnd:      CodeMovementEnd,
	ruleShipFrom:         CodeShipFrom,
	ruleShipTo:           CodeShipTo,
	ruleDeliveryDate:     CodeDeliveryDate,
	ruleNumberOfEntries:  CodeNumberOfEntries,
	ruleNumberOfLines:    CodeNumberOfLines,
	ruleTotalQuantity:    CodeTotalQuantity,
	ruleTotalDebit:       CodeTotalDebit,
	ruleTotalCredit:      CodeTotalCredit,
}

// codeTable construye la enumeración de una familia: los comunes más los propios.
func codeTable(own map[rule]entity.Code) map[rule]entity.Code {
	out := make(map[rule]entity.Code, len(commonCodes)+len(own))
	for r, c := range commonCodes {
		out[r] = c
	}
	for r, c := range own {
		out[r] = c
	}
	return out
}
