package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/internal/application/dto"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

func TestToReportResponse(t *testing.T) {
	run := &entity.ValidationRun{
		ID:         "r1",
		FiscalYear: 2024,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ErrorCount: 1,
		Tables: []entity.TableResult{
			{Table: "SalesInvoices", Documents: 2, TotalCredit: decimal.RequireFromString("200.5")},
			{Table: "MovementOfGoods", Documents: 1, TotalQuantity: decimal.RequireFromString("2.5")},
		},
		Issues: []entity.Issue{{Code: "N_HASH", Severity: entity.SeverityWarning, Document: "FT A/2", Line: 0, Message: "m"}},
	}

	r := dto.ToReportResponse(run)
	assert.Equal(t, "2024-01-01", r.StartDate)
	assert.Empty(t, r.EndDate)
	assert.Equal(t, "200.50", r.Tables[0].TotalCredit)
	assert.Equal(t, "0.00", r.Tables[0].TotalDebit)
	assert.Empty(t, r.Tables[0].TotalQuantity)
	assert.Equal(t, "2.5", r.Tables[1].TotalQuantity)
	assert.Equal(t, "warning", r.Issues[0].Severity)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"r1"`, "el resumen se aplana en el JSON")
}

func TestToReportResponse_ListasVacias(t *testing.T) {
	raw, err := json.Marshal(dto.ToReportResponse(&entity.ValidationRun{ID: "r1"}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tables":[]`)
	assert.Contains(t, string(raw), `"issues":[]`)
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := dto.PageRequest{Limit: 500, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 0, p.Offset)

	z := dto.PageRequest{}
	z.DefaultPage()
	assert.Equal(t, 20, z.Limit)
}
