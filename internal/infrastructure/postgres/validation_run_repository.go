package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/repository"
)

var _ repository.ValidationRunRepository = (*ValidationRunRepo)(nil)

// ValidationRunRepo implementación de repository.ValidationRunRepository con pgx.
type ValidationRunRepo struct {
	q  Querier
	tx *TxRunner
}

// NewValidationRunRepository construye el repositorio sobre el pool.
func NewValidationRunRepository(pool *pgxpool.Pool) *ValidationRunRepo {
	return &ValidationRunRepo{q: pool, tx: NewTxRunner(pool)}
}

var issueColumns = []string{"run_id", "position", "code", "severity", "table_name", "document", "line_number", "message"}

// Create inserta la ejecución, sus tablas y sus hallazgos en una sola transacción.
func (r *ValidationRunRepo) Create(ctx context.Context, run *entity.ValidationRun) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: ejecución sin id", domain.ErrInvalidInput)
	}
	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO validation_runs (id, fingerprint, company_name, tax_registration_number, fiscal_year,
				start_date, end_date, valid, error_count, warning_count, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			run.ID, run.Fingerprint, run.CompanyName, run.TaxRegistrationNumber, run.FiscalYear,
			nullIfZeroTime(run.StartDate), nullIfZeroTime(run.EndDate), run.Valid,
			run.ErrorCount, run.WarningCount, nullIfEmpty(run.CreatedBy), run.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: ejecución %s ya registrada", domain.ErrInvalidInput, run.ID)
			}
			return fmt.Errorf("insert validation_run: %w", err)
		}

		for i, args := range tableArgs(run) {
			if _, err := q.Exec(ctx, insertTableSQL, args...); err != nil {
				return fmt.Errorf("insert validation_run_table %s: %w", run.Tables[i].Table, err)
			}
		}

		if len(run.Issues) == 0 {
			return nil
		}
		rows := make([][]any, 0, len(run.Issues))
		for i, is := range run.Issues {
			rows = append(rows, []any{run.ID, i, string(is.Code), is.Severity.String(), is.Table, is.Document, is.Line, is.Message})
		}
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"validation_issues"}, issueColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy validation_issues: %w", err)
		}
		return nil
	})
}

const insertTableSQL = `
	INSERT INTO validation_run_tables (run_id, position, table_name, documents, valid, total_debit, total_credit, total_quantity)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// tableArgs argumentos de insertTableSQL; position conserva el orden de run.Tables.
func tableArgs(run *entity.ValidationRun) [][]any {
	out := make([][]any, 0, len(run.Tables))
	for i, t := range run.Tables {
		out = append(out, []any{run.ID, i, t.Table, t.Documents, t.Valid, t.TotalDebit, t.TotalCredit, t.TotalQuantity})
	}
	return out
}

const runColumns = `id, fingerprint, company_name, tax_registration_number, fiscal_year,
	start_date, end_date, valid, error_count, warning_count, created_by, created_at`

// GetByID devuelve la ejecución con tablas e issues. nil, nil si no existe.
func (r *ValidationRunRepo) GetByID(ctx context.Context, id string) (*entity.ValidationRun, error) {
	row := r.q.QueryRow(ctx, `SELECT `+runColumns+` FROM validation_runs WHERE id = $1`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get validation_run: %w", err)
	}

	if run.Tables, err = r.tables(ctx, id); err != nil {
		return nil, err
	}
	if run.Issues, err = r.issues(ctx, id); err != nil {
		return nil, err
	}
	return run, nil
}

// List devuelve las ejecuciones más recientes primero, sin tablas ni issues.
func (r *ValidationRunRepo) List(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.q.Query(ctx, `SELECT `+runColumns+` FROM validation_runs
		ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list validation_runs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ValidationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan validation_run: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}

func (r *ValidationRunRepo) tables(ctx context.Context, runID string) ([]entity.TableResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT table_name, documents, valid, total_debit, total_credit, total_quantity
		FROM validation_run_tables WHERE run_id = $1 ORDER BY position, table_name`, runID)
	if err != nil {
		return nil, fmt.Errorf("list validation_run_tables: %w", err)
	}
	defer rows.Close()

	var out []entity.TableResult
	for rows.Next() {
		var t entity.TableResult
		if err := rows.Scan(&t.Table, &t.Documents, &t.Valid, &t.TotalDebit, &t.TotalCredit, &t.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan validation_run_table: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ValidationRunRepo) issues(ctx context.Context, runID string) ([]entity.Issue, error) {
	rows, err := r.q.Query(ctx, `
		SELECT code, severity, table_name, document, line_number, message
		FROM validation_issues WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list validation_issues: %w", err)
	}
	defer rows.Close()

	var out []entity.Issue
	for rows.Next() {
		var (
			is       entity.Issue
			code     string
			severity string
		)
		if err := rows.Scan(&code, &severity, &is.Table, &is.Document, &is.Line, &is.Message); err != nil {
			return nil, fmt.Errorf("scan validation_issue: %w", err)
		}
		is.Code = entity.Code(code)
		is.Severity = entity.ParseSeverity(severity)
		out = append(out, is)
	}
	return out, rows.Err()
}

func scanRun(row pgx.Row) (*entity.ValidationRun, error) {
	var (
		run        entity.ValidationRun
		start, end *time.Time
		createdBy  *string
	)
	err := row.Scan(&run.ID, &run.Fingerprint, &run.CompanyName, &run.TaxRegistrationNumber, &run.FiscalYear,
		&start, &end, &run.Valid, &run.ErrorCount, &run.WarningCount, &createdBy, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	if start != nil {
		run.StartDate = *start
	}
	if end != nil {
		run.EndDate = *end
	}
	run.CreatedBy = derefString(createdBy)
	return &run, nil
}
