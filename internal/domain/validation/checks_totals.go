package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// totals NetTotal, TaxPayable y GrossTotal declarados frente a lo acumulado de las líneas;
// conversión de moneda y medios de pago. Los fallos van a DocumentTotals.Errors.
func (e *engine) totals(d document, calc *entity.DocTotalCalc) bool {
	t := d.totals()
	if t == nil {
		e.fail(d.errs(), d, 0, ruleDocumentTotals, "documento sin DocumentTotals")
		return false
	}
	calc.Close()

	ok := true
	check := func(r rule, name string, declared, computed decimal.NullDecimal) {
		if !declared.Valid {
			e.fail(&t.Errors, d, 0, r, "%s no declarado", name)
			ok = false
			return
		}
		if !computed.Valid {
			e.fail(&t.Errors, d, 0, r, "%s declarado %s y ninguna línea tiene importe",
				name, declared.Decimal.String())
			ok = false
			return
		}
		if !ApproximatelyEquals(declared.Decimal, computed.Decimal, e.cfg.DeltaTotalDoc()) {
			e.fail(&t.Errors, d, 0, r, "%s declarado %s, calculado de las líneas %s",
				name, declared.Decimal.String(), computed.Decimal.String())
			ok = false
		}
	}
	check(ruleNetTotal, "NetTotal", t.NetTotal, calc.NetTotal)
	check(ruleTaxPayable, "TaxPayable", t.TaxPayable, calc.TaxPayable)
	check(ruleGrossTotal, "GrossTotal", t.GrossTotal, calc.GrossTotal)

	if t.Currency != nil {
		ok = e.currency(d, t) && ok
	}
	if len(d.payments()) > 0 {
		ok = e.paymentMethods(d, t) && ok
	}
	return ok
}

// currency CurrencyAmount ≈ GrossTotal / ExchangeRate.
func (e *engine) currency(d document, t *entity.DocumentTotals) bool {
	c := t.Currency
	if !c.CurrencyAmount.Valid || !c.ExchangeRate.Valid {
		e.fail(&t.Errors, d, 0, ruleCurrency, "Currency %q sin CurrencyAmount o ExchangeRate", c.CurrencyCode)
		return false
	}
	if c.ExchangeRate.Decimal.IsZero() {
		e.fail(&t.Errors, d, 0, ruleCurrency, "Currency %q con ExchangeRate cero", c.CurrencyCode)
		return false
	}
	if !t.GrossTotal.Valid {
		return false
	}
	expected := t.GrossTotal.Decimal.Div(c.ExchangeRate.Decimal)
	if !ApproximatelyEquals(c.CurrencyAmount.Decimal, expected, e.cfg.DeltaCurrency()) {
		e.fail(&t.Errors, d, 0, ruleCurrency, "CurrencyAmount %s distinto de GrossTotal / ExchangeRate = %s",
			c.CurrencyAmount.Decimal.String(), expected.StringFixed(2))
		return false
	}
	return true
}

// paymentMethods suma de medios de pago más retenciones ≈ GrossTotal.
func (e *engine) paymentMethods(d document, t *entity.DocumentTotals) bool {
	if !t.GrossTotal.Valid {
		return false
	}
	sum := decimal.Zero
	for _, p := range d.payments() {
		if !p.PaymentAmount.Valid {
			e.fail(&t.Errors, d, 0, rulePaymentMethod, "medio de pago %q sin PaymentAmount", p.PaymentMechanism)
			return false
		}
		sum = sum.Add(p.PaymentAmount.Decimal)
	}
	for _, w := range d.withholding() {
		if w.WithholdingTaxAmount.Valid {
			sum = sum.Add(w.WithholdingTaxAmount.Decimal)
		}
	}
	if !ApproximatelyEquals(sum, t.GrossTotal.Decimal, e.cfg.DeltaTotalDoc()) {
		e.fail(&t.Errors, d, 0, rulePaymentMethod, "medios de pago suman %s y GrossTotal es %s",
			sum.String(), t.GrossTotal.Decimal.String())
		return false
	}
	return true
}
