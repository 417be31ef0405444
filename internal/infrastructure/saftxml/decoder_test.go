package saftxml_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/saftxml"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "saft_valid.xml"))
	require.NoError(t, err)
	return data
}

// ──────────────────────────────────────────────────────────────────────────────
// Decode
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_Cabecera(t *testing.T) {
	a, err := saftxml.DecodeBytes(readFixture(t))
	require.NoError(t, err)

	assert.Equal(t, "1.04_01", a.Header.AuditFileVersion)
	assert.Equal(t, 2024, a.Header.FiscalYear)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), a.Header.StartDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), a.Header.EndDate)
	assert.Equal(t, "Braga", a.Header.CompanyAddress.City)
	assert.False(t, a.ErrorRegister().HasErrors())
}

func TestDecode_MasterFiles(t *testing.T) {
	a, err := saftxml.DecodeBytes(readFixture(t))
	require.NoError(t, err)

	c, ok := a.MasterFiles.Customer("C1")
	require.True(t, ok)
	assert.Equal(t, "Cliente Um", c.CompanyName)
	_, ok = a.MasterFiles.Product("P1")
	assert.True(t, ok)

	require.Len(t, a.MasterFiles.TaxTable, 1)
	e := a.MasterFiles.TaxTable[0]
	assert.Nil(t, e.TaxExpirationDate)
	assert.True(t, e.TaxPercentage.Decimal.Equal(decimal.NewFromInt(23)))
	assert.False(t, e.TaxAmount.Valid)
}

func TestDecode_Documentos(t *testing.T) {
	a, err := saftxml.DecodeBytes(readFixture(t))
	require.NoError(t, err)
	sd := a.SourceDocuments

	require.NotNil(t, sd.SalesInvoices)
	require.Len(t, sd.SalesInvoices.Invoices, 2)
	inv := sd.SalesInvoices.Invoices[0]
	assert.Equal(t, "FT A/1", inv.InvoiceNo)
	assert.Equal(t, "N", inv.DocumentStatus.Status)
	assert.Equal(t, "P", inv.DocumentStatus.SourceBilling)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), inv.SystemEntryDate)
	require.Len(t, inv.Lines, 1)
	assert.True(t, inv.Lines[0].CreditAmount.Valid)
	assert.False(t, inv.Lines[0].DebitAmount.Valid)
	require.Len(t, inv.DocumentTotals.Payment, 1)
	assert.Equal(t, "NU", inv.DocumentTotals.Payment[0].PaymentMechanism)

	require.NotNil(t, sd.MovementOfGoods)
	m := sd.MovementOfGoods.StockMovements[0]
	assert.Equal(t, "GR", m.MovementType)
	require.NotNil(t, m.ShipFrom)
	require.NotNil(t, m.ShipFrom.Address)
	assert.Equal(t, "Braga", m.ShipFrom.Address.City)
	assert.Equal(t, time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC), m.MovementStartTime)

	require.NotNil(t, sd.WorkingDocuments)
	assert.Equal(t, "PF A/1", sd.WorkingDocuments.WorkDocuments[0].DocumentNumber)

	require.NotNil(t, sd.Payments)
	p := sd.Payments.Payments[0]
	assert.Equal(t, "P", p.DocumentStatus.SourceBilling, "SourcePayment se lee como origen")
	require.Len(t, p.Lines[0].SourceDocumentID, 1)
	assert.Equal(t, "FT A/2", p.Lines[0].SourceDocumentID[0].OriginatingON)
	require.Len(t, p.PaymentMethod, 1)
}

// El ficheiro de ejemplo pasa todas las validaciones semánticas sin verificador de firma.
func TestDecode_FicheiroValidoPasaLaValidacion(t *testing.T) {
	a, err := saftxml.DecodeBytes(readFixture(t))
	require.NoError(t, err)
	cfg := validation.NewConfig()
	clock := validation.WithClock(func() time.Time { return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC) })

	assert.True(t, validation.NewSalesInvoicesValidator(a, cfg, nil, clock).Validate())
	assert.True(t, validation.NewMovementOfGoodsValidator(a, cfg, nil, clock).Validate())
	assert.True(t, validation.NewWorkingDocumentsValidator(a, cfg, nil, clock).Validate())
	assert.True(t, validation.NewPaymentsValidator(a, cfg, clock).Validate())
	assert.True(t, validation.NewOtherValidations(a).Validate())
	assert.Empty(t, a.ErrorRegister().All())
}

func TestDecode_ValoresMalFormadosSeRegistran(t *testing.T) {
	data := bytes.Replace(readFixture(t), []byte("<TotalCredit>200.00</TotalCredit>"), []byte("<TotalCredit>2OO</TotalCredit>"), 1)
	data = bytes.Replace(data, []byte("<InvoiceDate>2024-03-02</InvoiceDate>"), []byte("<InvoiceDate>02/03/2024</InvoiceDate>"), 1)

	a, err := saftxml.DecodeBytes(data)
	require.NoError(t, err)

	errs := a.ErrorRegister().Errors()
	require.Len(t, errs, 2)
	for _, i := range errs {
		assert.Equal(t, entity.CodeStructure, i.Code)
		assert.Equal(t, validation.TableSalesInvoices, i.Table)
	}
	assert.Equal(t, "FT A/2", errs[1].Document)
	assert.True(t, a.SourceDocuments.SalesInvoices.Invoices[1].InvoiceDate.IsZero())
}

func TestDecode_XMLInvalido(t *testing.T) {
	_, err := saftxml.DecodeBytes([]byte("<AuditFile><Header>"))
	assert.ErrorIs(t, err, domain.ErrInvalidAuditFile)

	_, err = saftxml.DecodeBytes([]byte("<Invoice/>"))
	assert.ErrorIs(t, err, domain.ErrInvalidAuditFile)
}

func TestDecode_Windows1252(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="Windows-1252"?>`)
	buf.WriteString(`<AuditFile xmlns="urn:OECD:StandardAuditFile-Tax:PT_1.04_01"><Header><CompanyName>Com`)
	buf.WriteByte(0xE9) // é
	buf.WriteString(`rcio</CompanyName></Header></AuditFile>`)

	a, err := saftxml.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Comércio", a.Header.CompanyName)
}

func TestDecode_CodificacionNoSoportada(t *testing.T) {
	_, err := saftxml.Decode(strings.NewReader(`<?xml version="1.0" encoding="EBCDIC"?><AuditFile/>`))
	assert.ErrorIs(t, err, domain.ErrInvalidAuditFile)
}
