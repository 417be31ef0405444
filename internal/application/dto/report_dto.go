package dto

import (
	"time"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// IssueResponse hallazgo de validación.
type IssueResponse struct {
	Code     string `json:"code"`
	Severity string `json:"severity"` // error | warning
	Table    string `json:"table,omitempty"`
	Document string `json:"document,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

// TableResultResponse resumen de una tabla de documentos. Los importes van como texto decimal.
type TableResultResponse struct {
	Table         string `json:"table"`
	Documents     int    `json:"documents"`
	Valid         bool   `json:"valid"`
	TotalDebit    string `json:"total_debit"`
	TotalCredit   string `json:"total_credit"`
	TotalQuantity string `json:"total_quantity,omitempty"`
}

// ReportSummary datos de una ejecución sin hallazgos (listados).
type ReportSummary struct {
	ID                    string    `json:"id"`
	Fingerprint           string    `json:"fingerprint"`
	CompanyName           string    `json:"company_name"`
	TaxRegistrationNumber string    `json:"tax_registration_number"`
	FiscalYear            int       `json:"fiscal_year"`
	StartDate             string    `json:"start_date,omitempty"` // AAAA-MM-DD
	EndDate               string    `json:"end_date,omitempty"`
	Valid                 bool      `json:"valid"`
	ErrorCount            int       `json:"error_count"`
	WarningCount          int       `json:"warning_count"`
	CreatedBy             string    `json:"created_by,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// ReportResponse ejecución completa.
type ReportResponse struct {
	ReportSummary
	Tables []TableResultResponse `json:"tables"`
	Issues []IssueResponse       `json:"issues"`
}

// ReportListResponse página de ejecuciones.
type ReportListResponse struct {
	Items []ReportSummary `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToReportSummary mapea la entidad sin tablas ni hallazgos.
func ToReportSummary(run *entity.ValidationRun) ReportSummary {
	return ReportSummary{
		ID:                    run.ID,
		Fingerprint:           run.Fingerprint,
		CompanyName:           run.CompanyName,
		TaxRegistrationNumber: run.TaxRegistrationNumber,
		FiscalYear:            run.FiscalYear,
		StartDate:             formatDate(run.StartDate),
		EndDate:               formatDate(run.EndDate),
		Valid:                 run.Valid,
		ErrorCount:            run.ErrorCount,
		WarningCount:          run.WarningCount,
		CreatedBy:             run.CreatedBy,
		CreatedAt:             run.CreatedAt,
	}
}

// ToReportResponse mapea la ejecución completa. Tables e Issues nunca son null en el JSON.
func ToReportResponse(run *entity.ValidationRun) ReportResponse {
	out := ReportResponse{
		ReportSummary: ToReportSummary(run),
		Tables:        make([]TableResultResponse, 0, len(run.Tables)),
		Issues:        make([]IssueResponse, 0, len(run.Issues)),
	}
	for _, t := range run.Tables {
		r := TableResultResponse{
			Table:       t.Table,
			Documents:   t.Documents,
			Valid:       t.Valid,
			TotalDebit:  t.TotalDebit.StringFixed(2),
			TotalCredit: t.TotalCredit.StringFixed(2),
		}
		if !t.TotalQuantity.IsZero() {
			r.TotalQuantity = t.TotalQuantity.String()
		}
		out.Tables = append(out.Tables, r)
	}
	for _, is := range run.Issues {
		out.Issues = append(out.Issues, IssueResponse{
			Code:     string(is.Code),
			Severity: is.Severity.String(),
			Table:    is.Table,
			Document: is.Document,
			Line:     is.Line,
			Message:  is.Message,
		})
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
