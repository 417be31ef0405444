package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// numberOfEntries NumberOfEntries declarado igual al número de documentos de la tabla.
func (e *engine) numberOfEntries(declared, counted int, calc *entity.DocTableTotalCalc) bool {
	if calc != nil {
		calc.NumberOfEntries = entity.NullInt{Int: counted, Valid: true}
	}
	if declared != counted {
		e.failTable(ruleNumberOfEntries, "NumberOfEntries declarado %d, documentos en la tabla %d", declared, counted)
		return false
	}
	return true
}

// tableAmount total declarado de la tabla frente al acumulado, con la tolerancia de tabla.
func (e *engine) tableAmount(r rule, name string, declared, computed decimal.Decimal) bool {
	if !ApproximatelyEquals(declared, computed, e.cfg.DeltaTable()) {
		e.failTable(r, "%s declarado %s, calculado %s", name, declared.String(), computed.String())
		return false
	}
	return true
}

// tableCalc devuelve el acumulador de la tabla, creándolo si no existe.
func tableCalc(c **entity.DocTableTotalCalc) *entity.DocTableTotalCalc {
	if *c == nil {
		*c = &entity.DocTableTotalCalc{}
	}
	return *c
}

// sumLines acumula las líneas de un documento sin validarlas.
func sumLines(d document) *entity.DocTotalCalc {
	calc := entity.NewDocTotalCalc()
	for _, l := range d.lines() {
		if l.DebitAmount.Valid {
			calc.AddDebit(l.DebitAmount.Decimal)
		}
		if l.CreditAmount.Valid {
			calc.AddCredit(l.CreditAmount.Decimal)
		}
		signed := l.CreditAmount.Decimal.Sub(l.DebitAmount.Decimal)
		calc.SetLine(l.LineNumber, signed)
		calc.AddTax(lineTax(l, signed))
	}
	calc.Close()
	return calc
}

// eachLine aplica check a todas las líneas; true si ninguna falló.
func eachLine(d document, check func(document, *entity.Line) bool) bool {
	ok := true
	for _, l := range d.lines() {
		ok = check(d, l) && ok
	}
	return ok
}
