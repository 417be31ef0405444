package validation_test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
)

// fakeSigner firma con sha256 del mensaje legal. Determinista y sin claves.
type fakeSigner struct{}

func (fakeSigner) CreateSignature(f signature.Fields) (string, error) {
	sum := sha256.Sum256([]byte(signature.Message(f)))
	return hex.EncodeToString(sum[:]), nil
}

func (s fakeSigner) VerifySignature(f signature.Fields, hash string) (bool, error) {
	h, err := s.CreateSignature(f)
	return h == hash, err
}

var (
	periodStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	fixedNow    = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func march(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

// newAuditFile ficheiro con cabecera 2024, un cliente, un fornecedor, un producto y
// IVA normal (23) e isento (0) en el continente.
func newAuditFile() *entity.AuditFile {
	a := entity.NewAuditFile()
	a.Header.StartDate = periodStart
	a.Header.EndDate = periodEnd
	a.MasterFiles.SetCustomers([]*entity.Customer{{CustomerID: "C1", CompanyName: "Cliente Um"}})
	a.MasterFiles.SetSuppliers([]*entity.Supplier{{SupplierID: "S1", CompanyName: "Fornecedor Um"}})
	a.MasterFiles.SetProducts([]*entity.Product{{ProductCode: "P1", ProductDescription: "Parafuso"}})
	a.MasterFiles.TaxTable = []*entity.TaxTableEntry{
		{TaxType: "IVA", TaxCountryRegion: "PT", TaxCode: "NOR", TaxPercentage: dec("23")},
		{TaxType: "IVA", TaxCountryRegion: "PT", TaxCode: "ISE", TaxPercentage: dec("0")},
	}
	return a
}

func taxNOR() *entity.Tax {
	return &entity.Tax{TaxType: "IVA", TaxCountryRegion: "PT", TaxCode: "NOR", TaxPercentage: dec("23")}
}

// saleLine 2 × 50 = 100 a crédito con IVA 23.
func saleLine(n int) *entity.Line {
	return &entity.Line{
		LineNumber:   n,
		ProductCode:  "P1",
		Quantity:     dec("2"),
		UnitPrice:    dec("50"),
		CreditAmount: dec("100"),
		Tax:          taxNOR(),
	}
}

func totals(net, tax, gross string) *entity.DocumentTotals {
	return &entity.DocumentTotals{NetTotal: dec(net), TaxPayable: dec(tax), GrossTotal: dec(gross)}
}

func normalStatus(date time.Time) *entity.DocumentStatus {
	return &entity.DocumentStatus{Status: "N", StatusDate: date.Add(10 * time.Hour), SourceBilling: "P"}
}

// newInvoice FT A/<seq> de una línea, válida salvo el Hash.
func newInvoice(seq, day int) *entity.Invoice {
	date := march(day)
	return &entity.Invoice{
		InvoiceNo:       fmt.Sprintf("FT A/%d", seq),
		InvoiceType:     "FT",
		InvoiceDate:     date,
		SystemEntryDate: date.Add(10 * time.Hour),
		DocumentStatus:  normalStatus(date),
		CustomerID:      "C1",
		Lines:           []*entity.Line{saleLine(1)},
		DocumentTotals:  totals("100", "23", "123"),
	}
}

// signInvoices encadena las firmas en el orden recibido.
func signInvoices(t *testing.T, invoices ...*entity.Invoice) {
	t.Helper()
	prev := ""
	for _, inv := range invoices {
		h, err := fakeSigner{}.CreateSignature(signature.Fields{
			DocumentDate:    inv.InvoiceDate,
			SystemEntryDate: inv.SystemEntryDate,
			DocumentNumber:  inv.InvoiceNo,
			GrossTotal:      inv.DocumentTotals.GrossTotal.Decimal,
			PreviousHash:    prev,
		})
		require.NoError(t, err)
		inv.Hash = h
		prev = h
	}
}

// salesFile ficheiro con n facturas firmadas y totales de tabla correctos.
func salesFile(t *testing.T, n int) *entity.AuditFile {
	t.Helper()
	a := newAuditFile()
	invs := make([]*entity.Invoice, 0, n)
	for i := 1; i <= n; i++ {
		invs = append(invs, newInvoice(i, i))
	}
	signInvoices(t, invs...)
	a.SourceDocuments.SalesInvoices = &entity.SalesInvoices{
		NumberOfEntries: n,
		TotalCredit:     decimal.NewFromInt(int64(100 * n)),
		Invoices:        invs,
	}
	return a
}

func clock() validation.Option {
	return validation.WithClock(func() time.Time { return fixedNow })
}

func newSalesValidator(a *entity.AuditFile, cfg validation.Config) *validation.SalesInvoicesValidator {
	return validation.NewSalesInvoicesValidator(a, cfg, fakeSigner{}, clock())
}
