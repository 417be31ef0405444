package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationRun resultado persistido de validar un ficheiro SAF-T.
type ValidationRun struct {
	ID                    string
	Fingerprint           string // SHA-256 de la forma canónica del XML
	CompanyName           string
	TaxRegistrationNumber string
	FiscalYear            int
	StartDate             time.Time
	EndDate               time.Time
	Valid                 bool
	ErrorCount            int
	WarningCount          int
	Tables                []TableResult
	Issues                []Issue
	CreatedBy             string
	CreatedAt             time.Time
}

// TableResult resumen de una tabla de documentos en una ejecución.
type TableResult struct {
	Table         string
	Documents     int
	Valid         bool
	TotalDebit    decimal.Decimal // calculado de las líneas
	TotalCredit   decimal.Decimal
	TotalQuantity decimal.Decimal // solo MovementOfGoods
}
