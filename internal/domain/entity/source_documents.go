package entity

import "github.com/shopspring/decimal"

// SourceDocuments tablas de documentos comerciales (4.). Una tabla ausente en el ficheiro es nil.
type SourceDocuments struct {
	SalesInvoices    *SalesInvoices
	MovementOfGoods  *MovementOfGoods
	WorkingDocuments *WorkingDocuments
	Payments         *Payments
}

// SalesInvoices tabla de documentos de faturação (4.1).
type SalesInvoices struct {
	NumberOfEntries int
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Invoices        []*Invoice

	Calc   *DocTableTotalCalc
	Errors ErrorMap
}

// MovementOfGoods tabla de documentos de movimentação de mercadorias (4.2).
type MovementOfGoods struct {
	NumberOfMovementLines int
	TotalQuantityIssued   decimal.Decimal
	StockMovements        []*StockMovement

	Calc   *MovOfGoodsTableTotalCalc
	Errors ErrorMap
}

// WorkingDocuments tabla de documentos de conferência (4.3).
type WorkingDocuments struct {
	NumberOfEntries int
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	WorkDocuments   []*WorkDocument

	Calc   *DocTableTotalCalc
	Errors ErrorMap
}

// Payments tabla de recibos (4.4).
type Payments struct {
	NumberOfEntries int
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Payments        []*Payment

	Calc   *DocTableTotalCalc
	Errors ErrorMap
}
