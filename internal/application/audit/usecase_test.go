package audit_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/internal/application/audit"
	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/memory"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/saftxml"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/signer"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func fixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "infrastructure", "saftxml", "testdata", "saft_valid.xml"))
	require.NoError(t, err)
	return data
}

type fakePDF struct{ got *entity.ValidationRun }

func (f *fakePDF) GenerateReportPDF(_ context.Context, run *entity.ValidationRun) ([]byte, error) {
	f.got = run
	return []byte("%PDF-1.3"), nil
}

type failingRepo struct{ *memory.ValidationRunRepo }

func (failingRepo) Create(context.Context, *entity.ValidationRun) error { return errors.New("db caída") }

func newUseCase(verifier signature.Verifier, opts ...audit.Option) (*audit.ValidationUseCase, *memory.ValidationRunRepo) {
	repo := memory.NewValidationRunRepository()
	opts = append([]audit.Option{audit.WithClock(func() time.Time { return testNow })}, opts...)
	return audit.NewValidationUseCase(saftxml.NewReader(), repo, verifier, validation.NewConfig(), nil, opts...), repo
}

func hasCode(issues []entity.Issue, code entity.Code) bool {
	for _, is := range issues {
		if is.Code == code {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateAuditFile
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateAuditFile_FicheiroValido(t *testing.T) {
	uc, repo := newUseCase(nil)

	run, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
	require.NoError(t, err)

	assert.True(t, run.Valid, "issues: %+v", run.Issues)
	assert.Zero(t, run.ErrorCount)
	assert.Empty(t, run.Issues)
	assert.Len(t, run.Fingerprint, 64)
	assert.Equal(t, 2024, run.FiscalYear)
	assert.Equal(t, "u1", run.CreatedBy)
	assert.Equal(t, testNow, run.CreatedAt)
	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)

	require.Len(t, run.Tables, 4)
	sales := run.Tables[0]
	assert.Equal(t, validation.TableSalesInvoices, sales.Table)
	assert.Equal(t, 2, sales.Documents)
	assert.True(t, sales.TotalCredit.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, validation.TableMovementOfGoods, run.Tables[1].Table)
	assert.True(t, run.Tables[1].TotalQuantity.Equal(decimal.NewFromInt(2)))

	stored, err := repo.GetByID(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, run.Fingerprint, stored.Fingerprint)
}

func TestValidateAuditFile_CuerpoVacio(t *testing.T) {
	uc, _ := newUseCase(nil)

	_, err := uc.ValidateAuditFile(context.Background(), []byte("  \n"), "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateAuditFile_XMLIlegible(t *testing.T) {
	uc, repo := newUseCase(nil)

	_, err := uc.ValidateAuditFile(context.Background(), []byte("<AuditFile><Header>"), "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidAuditFile)

	runs, _ := repo.List(context.Background(), 10, 0)
	assert.Empty(t, runs, "no se persiste nada")
}

func TestValidateAuditFile_ProblemaEstructuralYSemantico(t *testing.T) {
	uc, _ := newUseCase(nil)
	data := bytes.Replace(fixture(t), []byte("<Hash>aGFzaDI=</Hash>"), nil, 1)

	run, err := uc.ValidateAuditFile(context.Background(), data, "u1")
	require.NoError(t, err)

	assert.False(t, run.Valid)
	require.NotEmpty(t, run.Issues)
	assert.Equal(t, entity.CodeStructure, run.Issues[0].Code, "los problemas estructurales van primero")
	assert.True(t, hasCode(run.Issues, validation.CodeHash))
	assert.Equal(t, run.ErrorCount, len(run.Issues))
}

func TestValidateAuditFile_ValorMalFormadoNoSeDuplica(t *testing.T) {
	uc, _ := newUseCase(nil)
	data := bytes.Replace(fixture(t), []byte("<GrossTotal>123.00</GrossTotal>"), []byte("<GrossTotal>123,00</GrossTotal>"), 1)

	run, err := uc.ValidateAuditFile(context.Background(), data, "u1")
	require.NoError(t, err)

	structural := 0
	for _, is := range run.Issues {
		if is.Code == entity.CodeStructure {
			structural++
		}
	}
	assert.Equal(t, 1, structural)
	assert.False(t, run.Valid)
}

func TestValidateAuditFile_SinValidacionEstructural(t *testing.T) {
	repo := memory.NewValidationRunRepository()
	cfg := validation.NewConfig()
	cfg.SchemaValidation = false
	uc := audit.NewValidationUseCase(saftxml.NewReader(), repo, nil, cfg, nil,
		audit.WithClock(func() time.Time { return testNow }))
	data := bytes.Replace(fixture(t), []byte("<GrossTotal>123.00</GrossTotal>"), []byte("<GrossTotal>123,00</GrossTotal>"), 1)

	run, err := uc.ValidateAuditFile(context.Background(), data, "u1")
	require.NoError(t, err)
	assert.True(t, hasCode(run.Issues, entity.CodeStructure), "el decodificador sigue registrando el valor")
}

func TestValidateAuditFile_ConVerificadorDetectaHashesFalsos(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	svc, err := signer.NewService(key, nil)
	require.NoError(t, err)
	uc, _ := newUseCase(svc)

	run, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
	require.NoError(t, err)
	assert.False(t, run.Valid)
	assert.True(t, hasCode(run.Issues, validation.CodeSignature))
}

func TestValidateAuditFile_ErrorDeRepositorio(t *testing.T) {
	repo := failingRepo{memory.NewValidationRunRepository()}
	uc := audit.NewValidationUseCase(saftxml.NewReader(), repo, nil, validation.NewConfig(), nil)

	_, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
	assert.ErrorContains(t, err, "db caída")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetReport(t *testing.T) {
	uc, _ := newUseCase(nil)
	run, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
	require.NoError(t, err)

	got, err := uc.GetReport(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)

	_, err = uc.GetReport(context.Background(), "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetReport(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListReports(t *testing.T) {
	uc, _ := newUseCase(nil)
	for i := 0; i < 3; i++ {
		_, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
		require.NoError(t, err)
	}

	runs, err := uc.ListReports(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestReportPDF(t *testing.T) {
	gen := &fakePDF{}
	uc, _ := newUseCase(nil, audit.WithPDFGenerator(gen))
	run, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
	require.NoError(t, err)

	data, name, err := uc.ReportPDF(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
	assert.Equal(t, "saft-"+run.TaxRegistrationNumber+"-2024-"+run.ID[:8]+".pdf", name)
	assert.Equal(t, run.ID, gen.got.ID)

	_, _, err = uc.ReportPDF(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportPDF_SinGenerador(t *testing.T) {
	uc, _ := newUseCase(nil)
	run, err := uc.ValidateAuditFile(context.Background(), fixture(t), "u1")
	require.NoError(t, err)

	_, _, err = uc.ReportPDF(context.Background(), run.ID)
	assert.Error(t, err)
}
