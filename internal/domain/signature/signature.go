// Package signature define la cadena de firma de los documentos SAF-T (PT) y los puertos del
// servicio que firma y verifica. La primitiva criptográfica vive en infrastructure/signer.
package signature

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fields datos que entran en la firma de un documento, en el orden legal.
type Fields struct {
	DocumentDate    time.Time
	SystemEntryDate time.Time
	DocumentNumber  string
	GrossTotal      decimal.Decimal
	PreviousHash    string // vacío = primer documento de la cadena
}

// Message construye la cadena a firmar:
//
//	InvoiceDate;SystemEntryDate;InvoiceNo;GrossTotal;Hash anterior
//
// Fecha AAAA-MM-DD, fecha de sistema AAAA-MM-DDThh:mm:ss, total con dos decimales y punto.
func Message(f Fields) string {
	var sb strings.Builder
	sb.WriteString(f.DocumentDate.Format("2006-01-02"))
	sb.WriteByte(';')
	sb.WriteString(f.SystemEntryDate.Format("2006-01-02T15:04:05"))
	sb.WriteByte(';')
	sb.WriteString(strings.TrimSpace(f.DocumentNumber))
	sb.WriteByte(';')
	sb.WriteString(f.GrossTotal.Round(2).StringFixed(2))
	sb.WriteByte(';')
	sb.WriteString(f.PreviousHash)
	return sb.String()
}

// Validate comprueba que los campos obligatorios de la firma estén presentes.
func (f Fields) Validate() error {
	if f.DocumentDate.IsZero() {
		return fmt.Errorf("signature: fecha del documento es obligatoria")
	}
	if f.SystemEntryDate.IsZero() {
		return fmt.Errorf("signature: fecha de sistema es obligatoria")
	}
	if strings.TrimSpace(f.DocumentNumber) == "" {
		return fmt.Errorf("signature: número de documento es obligatorio")
	}
	return nil
}

// Signer produce la firma de un documento. Mismas entradas, misma salida.
type Signer interface {
	CreateSignature(f Fields) (string, error)
}

// Verifier comprueba que hash sea la firma de los campos.
type Verifier interface {
	VerifySignature(f Fields, hash string) (bool, error)
}
