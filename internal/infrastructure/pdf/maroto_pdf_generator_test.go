package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

func sampleRun(issues int) *entity.ValidationRun {
	run := &entity.ValidationRun{
		ID:                    "6f1c2b9e-7d0a-4c55-9a7e-3a2f1b0c9d8e",
		Fingerprint:           "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		CompanyName:           "Exemplo, Lda",
		TaxRegistrationNumber: "999999990",
		FiscalYear:            2024,
		StartDate:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt:             time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
		Tables: []entity.TableResult{
			{Table: "SalesInvoices", Documents: 2, Valid: true, TotalCredit: decimal.NewFromInt(200)},
			{Table: "MovementOfGoods", Documents: 1, TotalQuantity: decimal.NewFromInt(2)},
		},
	}
	for i := 0; i < issues; i++ {
		run.Issues = append(run.Issues, entity.Issue{
			Code: "N_HASH", Severity: entity.SeverityError, Table: "SalesInvoices",
			Document: fmt.Sprintf("FT A/%d", i+1), Message: "hash no coincide con la cadena",
		})
	}
	run.ErrorCount = issues
	run.Valid = issues == 0
	return run
}

func TestGenerateReportPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()

	data, err := g.GenerateReportPDF(context.Background(), sampleRun(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	clean, err := g.GenerateReportPDF(context.Background(), sampleRun(0))
	require.NoError(t, err)
	assert.NotEmpty(t, clean)
}

func TestGenerateReportPDF_RecortaHallazgos(t *testing.T) {
	data, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), sampleRun(MaxIssues+5))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateReportPDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0,00", formatAmount(decimal.Zero))
	assert.Equal(t, "123,00", formatAmount(decimal.NewFromInt(123)))
	assert.Equal(t, "1.234.567,50", formatAmount(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-1.000,01", formatAmount(decimal.RequireFromString("-1000.005")))
}

func TestTruncateYSplit(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, []string{"abcd", "ef"}, splitEvery("abcdef", 4))
	assert.Nil(t, splitEvery("", 4))
}
