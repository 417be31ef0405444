package entity

import "github.com/shopspring/decimal"

// NullInt entero que distingue "no calculado" de cero.
type NullInt struct {
	Int   int
	Valid bool
}

// Acumuladores de conciliación. Todos los campos empiezan sin valor (Valid=false):
// leer un campo que ningún validador escribió devuelve "sin valor", nunca cero.

// DocTotalCalc totales de un documento calculados a partir de sus líneas.
type DocTotalCalc struct {
	NetTotal    decimal.NullDecimal
	TaxPayable  decimal.NullDecimal
	GrossTotal  decimal.NullDecimal
	TotalDebit  decimal.NullDecimal
	TotalCredit decimal.NullDecimal
	// Lines valor neto de cada línea por número de línea.
	Lines map[int]decimal.Decimal
}

// NewDocTotalCalc crea un acumulador vacío.
func NewDocTotalCalc() *DocTotalCalc {
	return &DocTotalCalc{Lines: make(map[int]decimal.Decimal)}
}

// AddDebit suma un importe a débito.
func (c *DocTotalCalc) AddDebit(v decimal.Decimal) { c.TotalDebit = addNull(c.TotalDebit, v) }

// AddCredit suma un importe a crédito.
func (c *DocTotalCalc) AddCredit(v decimal.Decimal) { c.TotalCredit = addNull(c.TotalCredit, v) }

// AddTax suma el impuesto de una línea.
func (c *DocTotalCalc) AddTax(v decimal.Decimal) { c.TaxPayable = addNull(c.TaxPayable, v) }

// SetLine registra el valor neto de una línea.
func (c *DocTotalCalc) SetLine(number int, v decimal.Decimal) {
	if c.Lines == nil {
		c.Lines = make(map[int]decimal.Decimal)
	}
	c.Lines[number] = v
}

// Close calcula NetTotal (|crédito - débito|), TaxPayable (|impuesto acumulado|) y GrossTotal
// (neto + impuesto). El impuesto de líneas a débito se acumula en negativo. Si no se acumuló
// ningún importe los totales quedan sin valor. Se puede llamar más de una vez.
func (c *DocTotalCalc) Close() {
	if !c.TotalDebit.Valid && !c.TotalCredit.Valid {
		return
	}
	net := c.TotalCredit.Decimal.Sub(c.TotalDebit.Decimal).Abs()
	c.NetTotal = decimal.NewNullDecimal(net)
	tax := c.TaxPayable.Decimal.Abs()
	c.TaxPayable = decimal.NewNullDecimal(tax)
	c.GrossTotal = decimal.NewNullDecimal(net.Add(tax))
}

// DocTableTotalCalc totales de una tabla (SalesInvoices, WorkingDocuments, Payments).
type DocTableTotalCalc struct {
	NumberOfEntries NullInt
	TotalDebit      decimal.NullDecimal
	TotalCredit     decimal.NullDecimal
}

// AddDebit suma a TotalDebit.
func (c *DocTableTotalCalc) AddDebit(v decimal.Decimal) { c.TotalDebit = addNull(c.TotalDebit, v) }

// AddCredit suma a TotalCredit.
func (c *DocTableTotalCalc) AddCredit(v decimal.Decimal) {
	c.TotalCredit = addNull(c.TotalCredit, v)
}

// MovOfGoodsTableTotalCalc totales de la tabla MovementOfGoods.
type MovOfGoodsTableTotalCalc struct {
	NumberOfMovementLines NullInt
	TotalQuantityIssued   decimal.NullDecimal
}

func addNull(n decimal.NullDecimal, v decimal.Decimal) decimal.NullDecimal {
	if !n.Valid {
		return decimal.NewNullDecimal(v)
	}
	return decimal.NewNullDecimal(n.Decimal.Add(v))
}
