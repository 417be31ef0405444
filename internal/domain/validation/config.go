// Package validation es el motor de validación semántica del ficheiro SAF-T (PT): un validador por
// familia de documentos (SalesInvoices, WorkingDocuments, MovementOfGoods, Payments) que recorre
// su tabla en orden de documento, y OtherValidations para las reglas entre tablas.
package validation

import "github.com/shopspring/decimal"

// DefaultDelta tolerancia por defecto de todas las comparaciones de importes.
var DefaultDelta = decimal.RequireFromString("0.01")

// Config parámetros de una pasada de validación. No cambia durante la pasada.
// Las tolerancias se guardan siempre en valor absoluto.
type Config struct {
	deltaLine     decimal.Decimal
	deltaTable    decimal.Decimal
	deltaCurrency decimal.Decimal
	deltaTotalDoc decimal.Decimal

	// ContinuousLines exige numeración de líneas 1..n sin huecos; si es false basta con que no se repitan.
	ContinuousLines bool
	// AllowDebitAndCredit admite líneas con DebitAmount y CreditAmount que se anulan entre sí.
	AllowDebitAndCredit bool
	// SignValidation activa la verificación de la cadena de firmas.
	SignValidation bool
	// SchemaValidation activa la validación estructural del XML antes de la semántica.
	SchemaValidation bool
}

// NewConfig devuelve la configuración por defecto.
func NewConfig() Config {
	return Config{
		deltaLine:        DefaultDelta,
		deltaTable:       DefaultDelta,
		deltaCurrency:    DefaultDelta,
		deltaTotalDoc:    DefaultDelta,
		ContinuousLines:  true,
		SignValidation:   true,
		SchemaValidation: true,
	}
}

// DeltaLine tolerancia de cantidad × precio frente al importe de la línea.
func (c Config) DeltaLine() decimal.Decimal { return c.deltaLine }

// SetDeltaLine fija la tolerancia de línea.
func (c *Config) SetDeltaLine(d decimal.Decimal) { c.deltaLine = d.Abs() }

// DeltaTable tolerancia de los totales de tabla (TotalDebit, TotalCredit, TotalQuantityIssued).
func (c Config) DeltaTable() decimal.Decimal { return c.deltaTable }

// SetDeltaTable fija la tolerancia de tabla.
func (c *Config) SetDeltaTable(d decimal.Decimal) { c.deltaTable = d.Abs() }

// DeltaCurrency tolerancia de la conversión de moneda.
func (c Config) DeltaCurrency() decimal.Decimal { return c.deltaCurrency }

// SetDeltaCurrency fija la tolerancia de moneda.
func (c *Config) SetDeltaCurrency(d decimal.Decimal) { c.deltaCurrency = d.Abs() }

// DeltaTotalDoc tolerancia de los totales del documento frente a sus líneas.
func (c Config) DeltaTotalDoc() decimal.Decimal { return c.deltaTotalDoc }

// SetDeltaTotalDoc fija la tolerancia de totales de documento.
func (c *Config) SetDeltaTotalDoc(d decimal.Decimal) { c.deltaTotalDoc = d.Abs() }

// ApproximatelyEquals indica si |a - b| <= |delta|.
func ApproximatelyEquals(a, b, delta decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(delta.Abs())
}
