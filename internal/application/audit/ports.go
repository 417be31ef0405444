package audit

import (
	"context"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// AuditFileReader lectura del XML SAF-T. Lo implementa saftxml.Reader.
type AuditFileReader interface {
	// Fingerprint huella del contenido; falla si el XML no se puede leer.
	Fingerprint(raw []byte) (string, error)
	// Structure problemas estructurales; falla si el XML no se puede leer.
	Structure(raw []byte) ([]entity.Issue, error)
	// Decode construye el AuditFile. Los valores mal formados quedan en su ErrorRegister.
	Decode(raw []byte) (*entity.AuditFile, error)
}

// ReportPDFGenerator genera el informe de una ejecución en PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, run *entity.ValidationRun) ([]byte, error)
}
