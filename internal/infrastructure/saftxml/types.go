// Estructuras XML del ficheiro SAF-T (PT) 1.04_01. Todos los valores se leen como texto y se
// convierten después, para que un valor mal formado no aborte la lectura del ficheiro entero.

package saftxml

import "encoding/xml"

type auditFileXML struct {
	XMLName         xml.Name
	Header          headerXML          `xml:"Header"`
	MasterFiles     masterFilesXML     `xml:"MasterFiles"`
	SourceDocuments sourceDocumentsXML `xml:"SourceDocuments"`
}

type headerXML struct {
	AuditFileVersion          string     `xml:"AuditFileVersion"`
	CompanyID                 string     `xml:"CompanyID"`
	TaxRegistrationNumber     string     `xml:"TaxRegistrationNumber"`
	TaxAccountingBasis        string     `xml:"TaxAccountingBasis"`
	CompanyName               string     `xml:"CompanyName"`
	BusinessName              string     `xml:"BusinessName"`
	CompanyAddress            addressXML `xml:"CompanyAddress"`
	FiscalYear                string     `xml:"FiscalYear"`
	StartDate                 string     `xml:"StartDate"`
	EndDate                   string     `xml:"EndDate"`
	CurrencyCode              string     `xml:"CurrencyCode"`
	DateCreated               string     `xml:"DateCreated"`
	TaxEntity                 string     `xml:"TaxEntity"`
	ProductCompanyTaxID       string     `xml:"ProductCompanyTaxID"`
	SoftwareCertificateNumber string     `xml:"SoftwareCertificateNumber"`
	ProductID                 string     `xml:"ProductID"`
	ProductVersion            string     `xml:"ProductVersion"`
}

type addressXML struct {
	BuildingNumber string `xml:"BuildingNumber"`
	StreetName     string `xml:"StreetName"`
	AddressDetail  string `xml:"AddressDetail"`
	City           string `xml:"City"`
	PostalCode     string `xml:"PostalCode"`
	Region         string `xml:"Region"`
	Country        string `xml:"Country"`
}

type masterFilesXML struct {
	Customer []customerXML `xml:"Customer"`
	Supplier []supplierXML `xml:"Supplier"`
	Product  []productXML  `xml:"Product"`
	TaxTable struct {
		TaxTableEntry []taxTableEntryXML `xml:"TaxTableEntry"`
	} `xml:"TaxTable"`
}

type customerXML struct {
	CustomerID           string       `xml:"CustomerID"`
	AccountID            string       `xml:"AccountID"`
	CustomerTaxID        string       `xml:"CustomerTaxID"`
	CompanyName          string       `xml:"CompanyName"`
	BillingAddress       addressXML   `xml:"BillingAddress"`
	ShipToAddress        []addressXML `xml:"ShipToAddress"`
	SelfBillingIndicator string       `xml:"SelfBillingIndicator"`
}

type supplierXML struct {
	SupplierID           string       `xml:"SupplierID"`
	AccountID            string       `xml:"AccountID"`
	SupplierTaxID        string       `xml:"SupplierTaxID"`
	CompanyName          string       `xml:"CompanyName"`
	BillingAddress       addressXML   `xml:"BillingAddress"`
	ShipFromAddress      []addressXML `xml:"ShipFromAddress"`
	SelfBillingIndicator string       `xml:"SelfBillingIndicator"`
}

type productXML struct {
	ProductType        string `xml:"ProductType"`
	ProductCode        string `xml:"ProductCode"`
	ProductGroup       string `xml:"ProductGroup"`
	ProductDescription string `xml:"ProductDescription"`
	ProductNumberCode  string `xml:"ProductNumberCode"`
}

type taxTableEntryXML struct {
	TaxType           string `xml:"TaxType"`
	TaxCountryRegion  string `xml:"TaxCountryRegion"`
	TaxCode           string `xml:"TaxCode"`
	Description       string `xml:"Description"`
	TaxExpirationDate string `xml:"TaxExpirationDate"`
	TaxPercentage     string `xml:"TaxPercentage"`
	TaxAmount         string `xml:"TaxAmount"`
}

type sourceDocumentsXML struct {
	SalesInvoices    *salesInvoicesXML    `xml:"SalesInvoices"`
	MovementOfGoods  *movementOfGoodsXML  `xml:"MovementOfGoods"`
	WorkingDocuments *workingDocumentsXML `xml:"WorkingDocuments"`
	Payments         *paymentsXML         `xml:"Payments"`
}

// statusXML agrupa los cuatro nombres de estado; cada familia rellena solo los suyos.
type statusXML struct {
	InvoiceStatus      string `xml:"InvoiceStatus"`
	InvoiceStatusDate  string `xml:"InvoiceStatusDate"`
	MovementStatus     string `xml:"MovementStatus"`
	MovementStatusDate string `xml:"MovementStatusDate"`
	WorkStatus         string `xml:"WorkStatus"`
	WorkStatusDate     string `xml:"WorkStatusDate"`
	PaymentStatus      string `xml:"PaymentStatus"`
	PaymentStatusDate  string `xml:"PaymentStatusDate"`
	Reason             string `xml:"Reason"`
	SourceID           string `xml:"SourceID"`
	SourceBilling      string `xml:"SourceBilling"`
	SourcePayment      string `xml:"SourcePayment"`
}

type shippingPointXML struct {
	DeliveryID   []string    `xml:"DeliveryID"`
	DeliveryDate string      `xml:"DeliveryDate"`
	WarehouseID  []string    `xml:"WarehouseID"`
	LocationID   []string    `xml:"LocationID"`
	Address      *addressXML `xml:"Address"`
}

type taxXML struct {
	TaxType          string `xml:"TaxType"`
	TaxCountryRegion string `xml:"TaxCountryRegion"`
	TaxCode          string `xml:"TaxCode"`
	TaxPercentage    string `xml:"TaxPercentage"`
	TaxAmount        string `xml:"TaxAmount"`
}

type lineXML struct {
	LineNumber      string `xml:"LineNumber"`
	OrderReferences []struct {
		OriginatingON string `xml:"OriginatingON"`
		OrderDate     string `xml:"OrderDate"`
	} `xml:"OrderReferences"`
	ProductCode        string `xml:"ProductCode"`
	ProductDescription string `xml:"ProductDescription"`
	Quantity           string `xml:"Quantity"`
	UnitOfMeasure      string `xml:"UnitOfMeasure"`
	UnitPrice          string `xml:"UnitPrice"`
	TaxBase            string `xml:"TaxBase"`
	TaxPointDate       string `xml:"TaxPointDate"`
	References         []struct {
		Reference string `xml:"Reference"`
		Reason    string `xml:"Reason"`
	} `xml:"References"`
	SourceDocumentID []struct {
		OriginatingON string `xml:"OriginatingON"`
		InvoiceDate   string `xml:"InvoiceDate"`
		Description   string `xml:"Description"`
	} `xml:"SourceDocumentID"`
	Description        string  `xml:"Description"`
	DebitAmount        string  `xml:"DebitAmount"`
	CreditAmount       string  `xml:"CreditAmount"`
	Tax                *taxXML `xml:"Tax"`
	TaxExemptionReason string  `xml:"TaxExemptionReason"`
	TaxExemptionCode   string  `xml:"TaxExemptionCode"`
	SettlementAmount   string  `xml:"SettlementAmount"`
}

type paymentMethodXML struct {
	PaymentMechanism string `xml:"PaymentMechanism"`
	PaymentAmount    string `xml:"PaymentAmount"`
	PaymentDate      string `xml:"PaymentDate"`
}

type totalsXML struct {
	TaxPayable string `xml:"TaxPayable"`
	NetTotal   string `xml:"NetTotal"`
	GrossTotal string `xml:"GrossTotal"`
	Currency   *struct {
		CurrencyCode   string `xml:"CurrencyCode"`
		CurrencyAmount string `xml:"CurrencyAmount"`
		ExchangeRate   string `xml:"ExchangeRate"`
	} `xml:"Currency"`
	Settlement []struct {
		SettlementDiscount string `xml:"SettlementDiscount"`
		SettlementAmount   string `xml:"SettlementAmount"`
		SettlementDate     string `xml:"SettlementDate"`
		PaymentTerms       string `xml:"PaymentTerms"`
	} `xml:"Settlement"`
	Payment []paymentMethodXML `xml:"Payment"`
}

type withholdingTaxXML struct {
	WithholdingTaxType        string `xml:"WithholdingTaxType"`
	WithholdingTaxDescription string `xml:"WithholdingTaxDescription"`
	WithholdingTaxAmount      string `xml:"WithholdingTaxAmount"`
}

type salesInvoicesXML struct {
	NumberOfEntries string       `xml:"NumberOfEntries"`
	TotalDebit      string       `xml:"TotalDebit"`
	TotalCredit     string       `xml:"TotalCredit"`
	Invoice         []invoiceXML `xml:"Invoice"`
}

type invoiceXML struct {
	InvoiceNo      string     `xml:"InvoiceNo"`
	ATCUD          string     `xml:"ATCUD"`
	DocumentStatus *statusXML `xml:"DocumentStatus"`
	Hash           string     `xml:"Hash"`
	HashControl    string     `xml:"HashControl"`
	Period         string     `xml:"Period"`
	InvoiceDate    string     `xml:"InvoiceDate"`
	InvoiceType    string     `xml:"InvoiceType"`
	SpecialRegimes struct {
		SelfBillingIndicator string `xml:"SelfBillingIndicator"`
	} `xml:"SpecialRegimes"`
	SourceID          string              `xml:"SourceID"`
	EACCode           string              `xml:"EACCode"`
	SystemEntryDate   string              `xml:"SystemEntryDate"`
	TransactionID     string              `xml:"TransactionID"`
	CustomerID        string              `xml:"CustomerID"`
	ShipTo            *shippingPointXML   `xml:"ShipTo"`
	ShipFrom          *shippingPointXML   `xml:"ShipFrom"`
	MovementEndTime   string              `xml:"MovementEndTime"`
	MovementStartTime string              `xml:"MovementStartTime"`
	Line              []lineXML           `xml:"Line"`
	DocumentTotals    *totalsXML          `xml:"DocumentTotals"`
	WithholdingTax    []withholdingTaxXML `xml:"WithholdingTax"`
}

type movementOfGoodsXML struct {
	NumberOfMovementLines string             `xml:"NumberOfMovementLines"`
	TotalQuantityIssued   string             `xml:"TotalQuantityIssued"`
	StockMovement         []stockMovementXML `xml:"StockMovement"`
}

type stockMovementXML struct {
	DocumentNumber    string            `xml:"DocumentNumber"`
	ATCUD             string            `xml:"ATCUD"`
	DocumentStatus    *statusXML        `xml:"DocumentStatus"`
	Hash              string            `xml:"Hash"`
	HashControl       string            `xml:"HashControl"`
	Period            string            `xml:"Period"`
	MovementDate      string            `xml:"MovementDate"`
	MovementType      string            `xml:"MovementType"`
	SystemEntryDate   string            `xml:"SystemEntryDate"`
	TransactionID     string            `xml:"TransactionID"`
	CustomerID        string            `xml:"CustomerID"`
	SupplierID        string            `xml:"SupplierID"`
	SourceID          string            `xml:"SourceID"`
	EACCode           string            `xml:"EACCode"`
	MovementComments  string            `xml:"MovementComments"`
	ShipTo            *shippingPointXML `xml:"ShipTo"`
	ShipFrom          *shippingPointXML `xml:"ShipFrom"`
	MovementEndTime   string            `xml:"MovementEndTime"`
	MovementStartTime string            `xml:"MovementStartTime"`
	ATDocCodeID       string            `xml:"ATDocCodeID"`
	Line              []lineXML         `xml:"Line"`
	DocumentTotals    *totalsXML        `xml:"DocumentTotals"`
}

type workingDocumentsXML struct {
	NumberOfEntries string            `xml:"NumberOfEntries"`
	TotalDebit      string            `xml:"TotalDebit"`
	TotalCredit     string            `xml:"TotalCredit"`
	WorkDocument    []workDocumentXML `xml:"WorkDocument"`
}

type workDocumentXML struct {
	DocumentNumber  string     `xml:"DocumentNumber"`
	ATCUD           string     `xml:"ATCUD"`
	DocumentStatus  *statusXML `xml:"DocumentStatus"`
	Hash            string     `xml:"Hash"`
	HashControl     string     `xml:"HashControl"`
	Period          string     `xml:"Period"`
	WorkDate        string     `xml:"WorkDate"`
	WorkType        string     `xml:"WorkType"`
	SourceID        string     `xml:"SourceID"`
	EACCode         string     `xml:"EACCode"`
	SystemEntryDate string     `xml:"SystemEntryDate"`
	TransactionID   string     `xml:"TransactionID"`
	CustomerID      string     `xml:"CustomerID"`
	Line            []lineXML  `xml:"Line"`
	DocumentTotals  *totalsXML `xml:"DocumentTotals"`
}

type paymentsXML struct {
	NumberOfEntries string       `xml:"NumberOfEntries"`
	TotalDebit      string       `xml:"TotalDebit"`
	TotalCredit     string       `xml:"TotalCredit"`
	Payment         []paymentXML `xml:"Payment"`
}

type paymentXML struct {
	PaymentRefNo    string              `xml:"PaymentRefNo"`
	ATCUD           string              `xml:"ATCUD"`
	Period          string              `xml:"Period"`
	TransactionID   string              `xml:"TransactionID"`
	TransactionDate string              `xml:"TransactionDate"`
	PaymentType     string              `xml:"PaymentType"`
	Description     string              `xml:"Description"`
	SystemID        string              `xml:"SystemID"`
	DocumentStatus  *statusXML          `xml:"DocumentStatus"`
	PaymentMethod   []paymentMethodXML  `xml:"PaymentMethod"`
	SourceID        string              `xml:"SourceID"`
	SystemEntryDate string              `xml:"SystemEntryDate"`
	CustomerID      string              `xml:"CustomerID"`
	Line            []lineXML           `xml:"Line"`
	DocumentTotals  *totalsXML          `xml:"DocumentTotals"`
	WithholdingTax  []withholdingTaxXML `xml:"WithholdingTax"`
}
