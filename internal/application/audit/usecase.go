// Package audit orquesta una ejecución de validación: huella, estructura, decodificación,
// validadores por familia, validaciones entre tablas y persistencia del resultado.
package audit

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/repository"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
	"github.com/jhoicas/saftpt-validator/pkg/logger"
)

// Option personaliza el caso de uso.
type Option func(*ValidationUseCase)

// WithClock reloj para CreatedAt y para las reglas que comparan contra la fecha actual.
func WithClock(now func() time.Time) Option {
	return func(uc *ValidationUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithPDFGenerator habilita ReportPDF.
func WithPDFGenerator(g ReportPDFGenerator) Option {
	return func(uc *ValidationUseCase) { uc.pdf = g }
}

// ValidationUseCase valida ficheiros SAF-T (PT) y guarda cada ejecución.
type ValidationUseCase struct {
	reader   AuditFileReader
	repo     repository.ValidationRunRepository
	verifier signature.Verifier
	cfg      validation.Config
	pdf      ReportPDFGenerator
	log      *logger.Logger
	now      func() time.Time
}

// NewValidationUseCase construye el caso de uso. verifier puede ser nil: entonces la cadena
// de firmas solo comprueba la presencia del Hash.
func NewValidationUseCase(
	reader AuditFileReader,
	repo repository.ValidationRunRepository,
	verifier signature.Verifier,
	cfg validation.Config,
	log *logger.Logger,
	opts ...Option,
) *ValidationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &ValidationUseCase{
		reader:   reader,
		repo:     repo,
		verifier: verifier,
		cfg:      cfg,
		log:      log.WithComponent("audit"),
		now:      time.Now,
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// ValidateAuditFile valida el XML y persiste el resultado.
//
// Retorna:
//   - domain.ErrInvalidInput     si el cuerpo está vacío.
//   - domain.ErrInvalidAuditFile si el XML no se puede leer o no es un AuditFile.
//
// Los hallazgos de validación nunca son error: quedan en run.Issues.
func (uc *ValidationUseCase) ValidateAuditFile(ctx context.Context, raw []byte, user string) (*entity.ValidationRun, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: ficheiro vacío", domain.ErrInvalidInput)
	}
	started := uc.now()

	// ── 1. Huella ─────────────────────────────────────────────────────────────
	fingerprint, err := uc.reader.Fingerprint(raw)
	if err != nil {
		return nil, err
	}

	// ── 2. Estructura ─────────────────────────────────────────────────────────
	var structural []entity.Issue
	if uc.cfg.SchemaValidation {
		if structural, err = uc.reader.Structure(raw); err != nil {
			return nil, err
		}
	}

	// ── 3. Decodificar ────────────────────────────────────────────────────────
	audit, err := uc.reader.Decode(raw)
	if err != nil {
		return nil, err
	}

	// ── 4. Validadores por familia ────────────────────────────────────────────
	tables := uc.validateTables(audit)

	// ── 5. Validaciones entre tablas ──────────────────────────────────────────
	crossValid := validation.NewOtherValidations(audit).Validate()

	// ── 6. Resultado ──────────────────────────────────────────────────────────
	h := audit.Header
	run := &entity.ValidationRun{
		ID:                    uuid.NewString(),
		Fingerprint:           fingerprint,
		CompanyName:           h.CompanyName,
		TaxRegistrationNumber: h.TaxRegistrationNumber,
		FiscalYear:            h.FiscalYear,
		StartDate:             h.StartDate,
		EndDate:               h.EndDate,
		Tables:                tables,
		Issues:                mergeIssues(structural, audit.ErrorRegister().All()),
		CreatedBy:             user,
		CreatedAt:             started,
	}
	for _, is := range run.Issues {
		if is.Severity == entity.SeverityWarning {
			run.WarningCount++
		} else {
			run.ErrorCount++
		}
	}
	run.Valid = run.ErrorCount == 0 && crossValid && allValid(tables)

	// ── 7. Persistir ──────────────────────────────────────────────────────────
	if err := uc.repo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("audit: guardar ejecución: %w", err)
	}

	uc.log.Info().
		Str("run_id", run.ID).
		Str("fingerprint", run.Fingerprint).
		Str("nif", run.TaxRegistrationNumber).
		Int("errors", run.ErrorCount).
		Int("warnings", run.WarningCount).
		Bool("valid", run.Valid).
		Dur("elapsed", uc.now().Sub(started)).
		Msg("ficheiro SAF-T validado")

	return run, nil
}

func (uc *ValidationUseCase) validateTables(a *entity.AuditFile) []entity.TableResult {
	opts := []validation.Option{validation.WithClock(uc.now)}
	sd := &a.SourceDocuments
	var out []entity.TableResult

	if t := sd.SalesInvoices; t != nil {
		ok := validation.NewSalesInvoicesValidator(a, uc.cfg, uc.verifier, opts...).Validate()
		out = append(out, docTableResult(validation.TableSalesInvoices, len(t.Invoices), ok, t.Calc))
	}
	if t := sd.MovementOfGoods; t != nil {
		ok := validation.NewMovementOfGoodsValidator(a, uc.cfg, uc.verifier, opts...).Validate()
		r := entity.TableResult{Table: validation.TableMovementOfGoods, Documents: len(t.StockMovements), Valid: ok}
		if t.Calc != nil {
			r.TotalQuantity = t.Calc.TotalQuantityIssued.Decimal
		}
		out = append(out, r)
	}
	if t := sd.WorkingDocuments; t != nil {
		ok := validation.NewWorkingDocumentsValidator(a, uc.cfg, uc.verifier, opts...).Validate()
		out = append(out, docTableResult(validation.TableWorkingDocuments, len(t.WorkDocuments), ok, t.Calc))
	}
	if t := sd.Payments; t != nil {
		ok := validation.NewPaymentsValidator(a, uc.cfg, opts...).Validate()
		out = append(out, docTableResult(validation.TablePayments, len(t.Payments), ok, t.Calc))
	}

	for _, r := range out {
		uc.log.Debug().Str("table", r.Table).Int("documents", r.Documents).Bool("valid", r.Valid).Msg("tabla validada")
	}
	return out
}

func docTableResult(table string, docs int, valid bool, calc *entity.DocTableTotalCalc) entity.TableResult {
	r := entity.TableResult{Table: table, Documents: docs, Valid: valid}
	if calc != nil {
		r.TotalDebit = calc.TotalDebit.Decimal
		r.TotalCredit = calc.TotalCredit.Decimal
	}
	return r
}

func allValid(tables []entity.TableResult) bool {
	for _, t := range tables {
		if !t.Valid {
			return false
		}
	}
	return true
}

type issueKey struct {
	table, document string
	line            int
}

// mergeIssues antepone los problemas estructurales y descarta los valores mal formados que el
// decodificador registró en la misma posición.
func mergeIssues(structural, register []entity.Issue) []entity.Issue {
	seen := make(map[issueKey]bool, len(structural))
	for _, is := range structural {
		seen[issueKey{is.Table, is.Document, is.Line}] = true
	}
	out := make([]entity.Issue, 0, len(structural)+len(register))
	out = append(out, structural...)
	for _, is := range register {
		if is.Code == entity.CodeStructure && seen[issueKey{is.Table, is.Document, is.Line}] {
			continue
		}
		out = append(out, is)
	}
	return out
}

// GetReport devuelve una ejecución con sus tablas y hallazgos.
func (uc *ValidationUseCase) GetReport(ctx context.Context, id string) (*entity.ValidationRun, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
	}
	run, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit: obtener ejecución: %w", err)
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}
	return run, nil
}

// ListReports ejecuciones más recientes primero, sin hallazgos.
func (uc *ValidationUseCase) ListReports(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error) {
	runs, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("audit: listar ejecuciones: %w", err)
	}
	return runs, nil
}

// ReportPDF genera el informe PDF de una ejecución y el nombre de fichero sugerido.
func (uc *ValidationUseCase) ReportPDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("audit: generador PDF no configurado")
	}
	run, err := uc.GetReport(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateReportPDF(ctx, run)
	if err != nil {
		return nil, "", fmt.Errorf("audit: generar PDF: %w", err)
	}
	name := fmt.Sprintf("saft-%s-%d-%s.pdf", nonEmpty(run.TaxRegistrationNumber, "nif"), run.FiscalYear, run.ID[:8])
	return data, name, nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
