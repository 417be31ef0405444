package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

var hundred = decimal.NewFromInt(100)

// lines numeración de las líneas, importes a débito/crédito y, si la familia lo pide,
// cantidad × precio. Acumula en calc los importes y el impuesto de cada línea.
func (e *engine) lines(d document, calc *entity.DocTotalCalc) bool {
	ls := d.lines()
	if len(ls) == 0 {
		e.fail(d.errs(), d, 0, ruleLine, "documento sin líneas")
		return false
	}
	ok := true
	seen := make(map[int]bool, len(ls))
	expected := 1
	for i, l := range ls {
		n := l.LineNumber
		switch {
		case n <= 0:
			e.fail(&l.Errors, d, n, ruleLineNumber, "línea %d sin número de línea válido", i+1)
			ok = false
		case seen[n]:
			e.fail(&l.Errors, d, n, ruleLineNumber, "número de línea %d repetido", n)
			ok = false
		case i == 0 && n != 1:
			e.fail(&l.Errors, d, n, ruleLineNumber, "la numeración de líneas debe empezar en 1, empieza en %d", n)
			ok = false
		case e.cfg.ContinuousLines && n != expected:
			e.fail(&l.Errors, d, n, ruleLineNumber, "se esperaba la línea %d y aparece la %d", expected, n)
			ok = false
		}
		if n > 0 {
			seen[n] = true
			expected = n + 1
		}
		ok = e.line(d, l, calc) && ok
	}
	calc.Close()
	return ok
}

func (e *engine) line(d document, l *entity.Line, calc *entity.DocTotalCalc) bool {
	amount, ok := e.debitCredit(d, l)

	// los importes declarados se acumulan aunque la regla de débito/crédito falle
	debit, credit := l.DebitAmount.Decimal, l.CreditAmount.Decimal
	if l.DebitAmount.Valid {
		calc.AddDebit(debit)
	}
	if l.CreditAmount.Valid {
		calc.AddCredit(credit)
	}
	signed := credit.Sub(debit)
	calc.SetLine(l.LineNumber, signed)
	calc.AddTax(lineTax(l, signed))

	if !e.family.lineArithmetic {
		return ok
	}
	factors := true
	if !l.Quantity.Valid {
		e.fail(&l.Errors, d, l.LineNumber, ruleQuantity, "línea %d sin Quantity", l.LineNumber)
		factors = false
	}
	if !l.UnitPrice.Valid {
		e.fail(&l.Errors, d, l.LineNumber, ruleUnitPrice, "línea %d sin UnitPrice", l.LineNumber)
		factors = false
	}
	if !ok || !factors {
		return false
	}
	product := l.Quantity.Decimal.Mul(l.UnitPrice.Decimal)
	if !ApproximatelyEquals(product, amount, e.cfg.DeltaLine()) {
		e.fail(&l.Errors, d, l.LineNumber, ruleLineAmount, "línea %d: Quantity × UnitPrice = %s y el importe es %s",
			l.LineNumber, product.String(), amount.String())
		return false
	}
	return true
}

// debitCredit exactamente uno de DebitAmount / CreditAmount. Con AllowDebitAndCredit se admiten
// los dos si se anulan dentro de la tolerancia de línea. Devuelve el importe de la línea.
func (e *engine) debitCredit(d document, l *entity.Line) (decimal.Decimal, bool) {
	dv, cv := l.DebitAmount, l.CreditAmount
	if (dv.Valid && dv.Decimal.IsNegative()) || (cv.Valid && cv.Decimal.IsNegative()) {
		e.fail(&l.Errors, d, l.LineNumber, ruleDebitCredit, "línea %d con importe negativo", l.LineNumber)
		return decimal.Zero, false
	}
	switch {
	case !dv.Valid && !cv.Valid:
		e.fail(&l.Errors, d, l.LineNumber, ruleDebitCredit, "línea %d sin DebitAmount ni CreditAmount", l.LineNumber)
		return decimal.Zero, false
	case dv.Valid && cv.Valid:
		if !e.cfg.AllowDebitAndCredit {
			e.fail(&l.Errors, d, l.LineNumber, ruleDebitCredit, "línea %d con DebitAmount y CreditAmount a la vez", l.LineNumber)
			return decimal.Zero, false
		}
		if !ApproximatelyEquals(dv.Decimal, cv.Decimal, e.cfg.DeltaLine()) {
			e.fail(&l.Errors, d, l.LineNumber, ruleDebitCredit, "línea %d: DebitAmount %s y CreditAmount %s no se anulan",
				l.LineNumber, dv.Decimal.String(), cv.Decimal.String())
			return decimal.Zero, false
		}
		return cv.Decimal, true
	case dv.Valid:
		return dv.Decimal, true
	default:
		return cv.Decimal, true
	}
}

// lineTax impuesto de la línea con el signo del importe (crédito positivo, débito negativo).
func lineTax(l *entity.Line, signed decimal.Decimal) decimal.Decimal {
	t := l.Tax
	if t == nil {
		return decimal.Zero
	}
	if t.TaxPercentage.Valid {
		return signed.Mul(t.TaxPercentage.Decimal).Div(hundred)
	}
	if t.TaxAmount.Valid {
		if signed.IsNegative() {
			return t.TaxAmount.Decimal.Neg()
		}
		return t.TaxAmount.Decimal
	}
	return decimal.Zero
}

// productCode producto declarado y existente en MasterFiles.
func (e *engine) productCode(d document, l *entity.Line) bool {
	code := strings.TrimSpace(l.ProductCode)
	if code == "" {
		e.fail(&l.Errors, d, l.LineNumber, ruleProductCode, "línea %d sin ProductCode", l.LineNumber)
		return false
	}
	if _, found := e.audit.MasterFiles.Product(code); !found {
		e.fail(&l.Errors, d, l.LineNumber, ruleProductCode, "ProductCode %q no existe en MasterFiles", code)
		return false
	}
	return true
}

// tax impuesto completo, régimen de exención coherente y entrada vigente en la TaxTable.
func (e *engine) tax(d document, l *entity.Line) bool {
	t := l.Tax
	if t == nil {
		if e.family.taxOptional {
			return true
		}
		e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d sin Tax", l.LineNumber)
		return false
	}

	complete := true
	if t.TaxType == "" || t.TaxCountryRegion == "" || t.TaxCode == "" {
		e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d: Tax sin TaxType, TaxCountryRegion o TaxCode", l.LineNumber)
		complete = false
	} else {
		if !saft.ValidTaxTypes[t.TaxType] {
			e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d: TaxType %q no admitido", l.LineNumber, t.TaxType)
			complete = false
		} else if !saft.IsValidTaxCode(t.TaxType, t.TaxCode) {
			e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d: TaxCode %q no admitido para %s",
				l.LineNumber, t.TaxCode, t.TaxType)
			complete = false
		}
		if !saft.IsValidTaxCountryRegion(t.TaxCountryRegion) {
			e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d: TaxCountryRegion %q no admitida",
				l.LineNumber, t.TaxCountryRegion)
			complete = false
		}
	}
	switch {
	case !t.TaxPercentage.Valid && !t.TaxAmount.Valid:
		e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d: Tax sin TaxPercentage ni TaxAmount", l.LineNumber)
		complete = false
	case t.TaxPercentage.Valid && t.TaxAmount.Valid:
		e.fail(&l.Errors, d, l.LineNumber, ruleTax, "línea %d: Tax con TaxPercentage y TaxAmount a la vez", l.LineNumber)
		complete = false
	}

	ok := e.taxExemption(d, l) && complete
	if !complete {
		return false
	}

	if len(e.audit.MasterFiles.TaxTable) == 0 {
		e.fail(&l.Errors, d, l.LineNumber, ruleTaxTable, "TaxTable vacía; no se puede resolver el impuesto de la línea %d", l.LineNumber)
		return false
	}
	for _, entry := range e.audit.MasterFiles.TaxTableEntries(t.TaxType, t.TaxCountryRegion, t.TaxCode) {
		if !entry.LiveAt(d.date()) {
			continue
		}
		if t.TaxPercentage.Valid && entry.TaxPercentage.Valid && entry.TaxPercentage.Decimal.Equal(t.TaxPercentage.Decimal) {
			return ok
		}
		if t.TaxAmount.Valid && entry.TaxAmount.Valid {
			return ok
		}
	}
	e.fail(&l.Errors, d, l.LineNumber, ruleTaxTable, "línea %d: no hay entrada vigente en TaxTable para %s/%s/%s",
		l.LineNumber, t.TaxType, t.TaxCountryRegion, t.TaxCode)
	return false
}

// taxExemption código y motivo de exención van juntos; tasa 0 o código ISE los exigen;
// ISE no admite porcentaje distinto de cero.
func (e *engine) taxExemption(d document, l *entity.Line) bool {
	t := l.Tax
	code := strings.TrimSpace(l.TaxExemptionCode)
	reason := strings.TrimSpace(l.TaxExemptionReason)
	zero := t.TaxPercentage.Valid && t.TaxPercentage.Decimal.IsZero()
	exempt := t.TaxCode == saft.TaxCodeIsenta

	ok := true
	if exempt && t.TaxPercentage.Valid && !zero {
		e.fail(&l.Errors, d, l.LineNumber, ruleTaxExemption, "línea %d: código ISE con porcentaje %s",
			l.LineNumber, t.TaxPercentage.Decimal.String())
		ok = false
	}
	switch {
	case (zero || exempt) && (code == "" || reason == ""):
		e.fail(&l.Errors, d, l.LineNumber, ruleTaxExemption, "línea %d exenta sin TaxExemptionCode y TaxExemptionReason", l.LineNumber)
		ok = false
	case (code == "") != (reason == ""):
		e.fail(&l.Errors, d, l.LineNumber, ruleTaxExemption, "línea %d: TaxExemptionCode y TaxExemptionReason deben declararse juntos", l.LineNumber)
		ok = false
	}
	return ok
}

// references cada referencia debe identificar el documento o el motivo; las notas de crédito
// exigen al menos una.
func (e *engine) references(d document, l *entity.Line) bool {
	ok := true
	if e.family.creditNoteType != "" && d.docType() == e.family.creditNoteType && len(l.References) == 0 {
		e.fail(&l.Errors, d, l.LineNumber, ruleReferences, "línea %d de nota de crédito sin References", l.LineNumber)
		ok = false
	}
	for _, r := range l.References {
		if strings.TrimSpace(r.Reference) == "" && strings.TrimSpace(r.Reason) == "" {
			e.fail(&l.Errors, d, l.LineNumber, ruleReferences, "línea %d: referencia sin documento ni motivo", l.LineNumber)
			ok = false
		}
	}
	return ok
}

// orderReferences OrderDate presente y no futura; OriginatingON presente. Un OriginatingON con
// formato irreconocible es solo un aviso.
func (e *engine) orderReferences(d document, l *entity.Line) bool {
	ok := true
	now := e.now()
	for _, o := range l.OrderReferences {
		switch {
		case o.OrderDate.IsZero():
			e.fail(&l.Errors, d, l.LineNumber, ruleOrderReferences, "línea %d: OrderReferences sin OrderDate", l.LineNumber)
			ok = false
		case o.OrderDate.After(now):
			e.fail(&l.Errors, d, l.LineNumber, ruleOrderReferences, "línea %d: OrderDate %s posterior a la fecha actual",
				l.LineNumber, o.OrderDate.Format(dateLayout))
			ok = false
		}
		on := strings.TrimSpace(o.OriginatingON)
		switch {
		case on == "":
			e.fail(&l.Errors, d, l.LineNumber, ruleOrderReferences, "línea %d: OrderReferences sin OriginatingON", l.LineNumber)
			ok = false
		case !saft.IsValidOriginatingON(on):
			e.warn(&l.Warnings, d, l.LineNumber, ruleOriginatingON, "línea %d: OriginatingON %q con formato no reconocido", l.LineNumber, on)
		}
	}
	return ok
}

// sourceDocumentID cada línea de recibo liquida al menos un documento con número y fecha.
func (e *engine) sourceDocumentID(d document, l *entity.Line) bool {
	if len(l.SourceDocumentID) == 0 {
		e.fail(&l.Errors, d, l.LineNumber, ruleSourceDocumentID, "línea %d sin SourceDocumentID", l.LineNumber)
		return false
	}
	ok := true
	for _, s := range l.SourceDocumentID {
		on := strings.TrimSpace(s.OriginatingON)
		switch {
		case on == "":
			e.fail(&l.Errors, d, l.LineNumber, ruleSourceDocumentID, "línea %d: SourceDocumentID sin OriginatingON", l.LineNumber)
			ok = false
		case !saft.IsValidOriginatingON(on):
			e.warn(&l.Warnings, d, l.LineNumber, ruleOriginatingON, "línea %d: OriginatingON %q con formato no reconocido", l.LineNumber, on)
		}
		if s.InvoiceDate.IsZero() {
			e.fail(&l.Errors, d, l.LineNumber, ruleSourceDocumentID, "línea %d: SourceDocumentID sin InvoiceDate", l.LineNumber)
			ok = false
		}
	}
	return ok
}
