package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus estado actual del documento (InvoiceStatus, MovementStatus, WorkStatus, PaymentStatus).
type DocumentStatus struct {
	Status        string
	StatusDate    time.Time
	Reason        string
	SourceID      string
	SourceBilling string // SourceBilling o SourcePayment según la familia
}

// Currency moneda extranjera del documento.
type Currency struct {
	CurrencyCode   string
	CurrencyAmount decimal.NullDecimal
	ExchangeRate   decimal.NullDecimal
}

// Settlement acordos de descontos.
type Settlement struct {
	SettlementDiscount string
	SettlementAmount   decimal.NullDecimal
	SettlementDate     time.Time
	PaymentTerms       string
}

// PaymentMethod meio de pagamento.
type PaymentMethod struct {
	PaymentMechanism string
	PaymentAmount    decimal.NullDecimal
	PaymentDate      time.Time
}

// DocumentTotals totales del documento. Errors recibe los fallos de conciliación de totales,
// separados de los errores del documento.
type DocumentTotals struct {
	TaxPayable decimal.NullDecimal
	NetTotal   decimal.NullDecimal
	GrossTotal decimal.NullDecimal
	Currency   *Currency
	Settlement []Settlement
	Payment    []PaymentMethod

	Errors ErrorMap
}

// WithholdingTax retenção na fonte.
type WithholdingTax struct {
	WithholdingTaxType        string
	WithholdingTaxDescription string
	WithholdingTaxAmount      decimal.NullDecimal
}

// ShippingPoint local de carga o descarga (ShipTo / ShipFrom).
type ShippingPoint struct {
	DeliveryID   []string
	DeliveryDate time.Time
	WarehouseID  []string
	LocationID   []string
	Address      *Address
}

// Tax impuesto de la línea.
type Tax struct {
	TaxType          string
	TaxCountryRegion string
	TaxCode          string
	TaxPercentage    decimal.NullDecimal
	TaxAmount        decimal.NullDecimal
}

// OrderReference referencia a la nota de encomenda de origen.
type OrderReference struct {
	OriginatingON string
	OrderDate     time.Time
}

// Reference referencia a la fatura o fatura simplificada corregida (notas de crédito y débito).
type Reference struct {
	Reference string
	Reason    string
}

// SourceDocumentID documento de origen liquidado por un recibo.
type SourceDocumentID struct {
	OriginatingON string
	InvoiceDate   time.Time
	Description   string
}

// Line línea de un documento comercial. Las cuatro familias comparten la forma; los campos que
// una familia no declara quedan sin valor (ej: Quantity en recibos, SourceDocumentID en facturas).
type Line struct {
	LineNumber         int // 0 = no declarado
	OrderReferences    []OrderReference
	ProductCode        string
	ProductDescription string
	Quantity           decimal.NullDecimal
	UnitOfMeasure      string
	UnitPrice          decimal.NullDecimal
	TaxBase            decimal.NullDecimal
	TaxPointDate       time.Time
	References         []Reference
	SourceDocumentID   []SourceDocumentID
	Description        string
	DebitAmount        decimal.NullDecimal
	CreditAmount       decimal.NullDecimal
	Tax                *Tax
	TaxExemptionReason string
	TaxExemptionCode   string
	SettlementAmount   decimal.NullDecimal

	Errors   ErrorMap
	Warnings ErrorMap
}

// Invoice documento de faturação (4.1.4).
type Invoice struct {
	InvoiceNo         string
	ATCUD             string
	DocumentStatus    *DocumentStatus
	Hash              string
	HashControl       string
	Period            int
	InvoiceDate       time.Time
	InvoiceType       string
	SelfBilling       bool
	SourceID          string
	EACCode           string
	SystemEntryDate   time.Time
	TransactionID     string
	CustomerID        string
	ShipTo            *ShippingPoint
	ShipFrom          *ShippingPoint
	MovementEndTime   time.Time
	MovementStartTime time.Time
	Lines             []*Line
	DocumentTotals    *DocumentTotals
	WithholdingTax    []WithholdingTax

	Errors   ErrorMap
	Warnings ErrorMap
}

// StockMovement documento de movimentação de mercadorias (4.2.3).
type StockMovement struct {
	DocumentNumber    string
	ATCUD             string
	DocumentStatus    *DocumentStatus
	Hash              string
	HashControl       string
	Period            int
	MovementDate      time.Time
	MovementType      string
	SystemEntryDate   time.Time
	TransactionID     string
	CustomerID        string
	SupplierID        string
	SourceID          string
	EACCode           string
	MovementComments  string
	ShipTo            *ShippingPoint
	ShipFrom          *ShippingPoint
	MovementEndTime   time.Time
	MovementStartTime time.Time
	ATDocCodeID       string
	Lines             []*Line
	DocumentTotals    *DocumentTotals

	Errors   ErrorMap
	Warnings ErrorMap
}

// WorkDocument documento de conferência (4.3.4).
type WorkDocument struct {
	DocumentNumber  string
	ATCUD           string
	DocumentStatus  *DocumentStatus
	Hash            string
	HashControl     string
	Period          int
	WorkDate        time.Time
	WorkType        string
	SourceID        string
	EACCode         string
	SystemEntryDate time.Time
	TransactionID   string
	CustomerID      string
	Lines           []*Line
	DocumentTotals  *DocumentTotals

	Errors   ErrorMap
	Warnings ErrorMap
}

// Payment recibo (4.4.4). SAF-T (PT) 1.04_01 no define Hash para recibos.
type Payment struct {
	PaymentRefNo    string
	ATCUD           string
	Period          int
	TransactionID   string
	TransactionDate time.Time
	PaymentType     string
	Description     string
	SystemID        string
	DocumentStatus  *DocumentStatus
	PaymentMethod   []PaymentMethod
	SourceID        string
	SystemEntryDate time.Time
	CustomerID      string
	Lines           []*Line
	DocumentTotals  *DocumentTotals
	WithholdingTax  []WithholdingTax

	Errors   ErrorMap
	Warnings ErrorMap
}
