package validation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
)

// newPayment RG A/<seq> que liquida FT A/1 por 123.
func newPayment(seq, day int) *entity.Payment {
	date := march(day)
	return &entity.Payment{
		PaymentRefNo:    fmt.Sprintf("RG A/%d", seq),
		PaymentType:     "RG",
		TransactionDate: date,
		SystemEntryDate: date.Add(10 * time.Hour),
		DocumentStatus:  normalStatus(date),
		CustomerID:      "C1",
		PaymentMethod:   []entity.PaymentMethod{{PaymentMechanism: "TB", PaymentAmount: dec("123"), PaymentDate: date}},
		Lines: []*entity.Line{{
			LineNumber:       1,
			SourceDocumentID: []entity.SourceDocumentID{{OriginatingON: "FT A/1", InvoiceDate: march(1)}},
			CreditAmount:     dec("100"),
			Tax:              taxNOR(),
		}},
		DocumentTotals: totals("100", "23", "123"),
	}
}

func paymentFile(n int) *entity.AuditFile {
	a := newAuditFile()
	ps := make([]*entity.Payment, 0, n)
	for i := 1; i <= n; i++ {
		ps = append(ps, newPayment(i, i))
	}
	a.SourceDocuments.Payments = &entity.Payments{
		NumberOfEntries: n,
		TotalCredit:     decimal.NewFromInt(int64(100 * n)),
		Payments:        ps,
	}
	return a
}

func newPaymentsValidator(a *entity.AuditFile) *validation.PaymentsValidator {
	return validation.NewPaymentsValidator(a, validation.NewConfig(), clock())
}

func TestPayments_Validate_SinHash(t *testing.T) {
	a := paymentFile(2)
	v := newPaymentsValidator(a)

	assert.True(t, v.Validate(), "issues: %+v", a.ErrorRegister().All())
	assert.Empty(t, a.ErrorRegister().All())
}

func TestPayments_Validate_TotalDebit(t *testing.T) {
	a := paymentFile(2)
	a.SourceDocuments.Payments.TotalDebit = decimal.NewFromInt(10)

	v := newPaymentsValidator(a)
	assert.False(t, v.Validate())
	assert.True(t, a.SourceDocuments.Payments.Errors.Has(validation.CodeTotalDebit))
}

func TestPayments_SourceDocumentID(t *testing.T) {
	a := newAuditFile()
	v := newPaymentsValidator(a)

	assert.True(t, v.SourceDocumentID(newPayment(1, 1)))

	none := newPayment(2, 1)
	none.Lines[0].SourceDocumentID = nil
	assert.False(t, v.SourceDocumentID(none))
	assert.True(t, none.Lines[0].Errors.Has(validation.CodeSourceDocumentID))

	noDate := newPayment(3, 1)
	noDate.Lines[0].SourceDocumentID[0].InvoiceDate = time.Time{}
	assert.False(t, v.SourceDocumentID(noDate))
}

func TestPayments_SourceDocumentID_FormatoNoReconocidoEsAviso(t *testing.T) {
	a := newAuditFile()
	v := newPaymentsValidator(a)
	p := newPayment(1, 1)
	p.Lines[0].SourceDocumentID[0].OriginatingON = "FT-2024-1"

	assert.True(t, v.SourceDocumentID(p))
	assert.True(t, v.IsValid())
	assert.True(t, p.Lines[0].Warnings.Has(validation.CodeOriginatingON))
	assert.Len(t, a.ErrorRegister().Warnings(), 1)
}

func TestPayments_MediosDePago(t *testing.T) {
	v := newPaymentsValidator(newAuditFile())

	short := newPayment(1, 1)
	short.PaymentMethod[0].PaymentAmount = dec("100")
	assert.False(t, v.Totals(short))
	assert.True(t, short.DocumentTotals.Errors.Has(validation.CodePaymentMethod))

	withheld := newPayment(2, 1)
	withheld.PaymentMethod[0].PaymentAmount = dec("100")
	withheld.WithholdingTax = []entity.WithholdingTax{{WithholdingTaxType: "IRS", WithholdingTaxAmount: dec("23")}}
	assert.True(t, v.Totals(withheld), "retención completa el total")
}

func TestPayments_TaxOpcional(t *testing.T) {
	v := newPaymentsValidator(newAuditFile())
	p := newPayment(1, 1)
	p.Lines[0].Tax = nil

	assert.True(t, v.Tax(p))
}

func TestPayments_CodigosPropios(t *testing.T) {
	v := newPaymentsValidator(newAuditFile())

	p := newPayment(1, 2)
	p.DocumentStatus.StatusDate = march(1)
	assert.False(t, v.DocumentStatus(p))
	assert.True(t, p.Errors.Has(validation.CodePaymentStatusDate))

	ft := newPayment(2, 1)
	ft.PaymentType = "FT"
	assert.False(t, v.PaymentType(ft))
	assert.True(t, ft.Errors.Has(validation.CodePaymentType))

	late := newPayment(3, 1)
	late.TransactionDate = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.False(t, v.TransactionDateAndSystemEntryDate(late, nil))
	assert.True(t, late.Errors.Has(validation.CodeTransactionDate))
}
