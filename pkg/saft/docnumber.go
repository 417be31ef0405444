package saft

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// documentNumberPattern formato "<tipo> <série>/<número>" (ej: "FT A/1", "GR 2024/15").
var documentNumberPattern = regexp.MustCompile(`^([^ ]+) ([^/^ ]+)/([0-9]+)$`)

// DocumentNumber número de documento descompuesto.
type DocumentNumber struct {
	Type     string
	Series   string
	Sequence int64
}

// String reconstruye el número en formato SAF-T.
func (n DocumentNumber) String() string {
	return fmt.Sprintf("%s %s/%d", n.Type, n.Series, n.Sequence)
}

// SeriesKey identifica la serie (tipo + série) a la que pertenece el documento.
func (n DocumentNumber) SeriesKey() string {
	return n.Type + " " + n.Series
}

// ParseDocumentNumber descompone un número de documento. Devuelve error si no respeta el formato.
func ParseDocumentNumber(s string) (DocumentNumber, error) {
	m := documentNumberPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DocumentNumber{}, fmt.Errorf("saft: número de documento %q no respeta el formato '<tipo> <série>/<número>'", s)
	}
	seq, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return DocumentNumber{}, fmt.Errorf("saft: número secuencial inválido en %q: %w", s, err)
	}
	return DocumentNumber{Type: m[1], Series: m[2], Sequence: seq}, nil
}

// IsFirstInSeries indica si el número corresponde al primer documento de su serie.
// Un número que no se puede interpretar nunca es el primero.
func IsFirstInSeries(number string) bool {
	n, err := ParseDocumentNumber(number)
	if err != nil {
		return false
	}
	return n.Sequence == 1
}

// IsValidOriginatingON indica si una referencia a documento de origen (OriginatingON)
// respeta el formato "<tipo> <série>/<número>".
func IsValidOriginatingON(s string) bool {
	return documentNumberPattern.MatchString(s)
}

// InternalSeries clave de la série interna: el número sin el secuencial ("FT 2024/7" → "FT 2024").
// Devuelve "" si el número no tiene secuencial.
func InternalSeries(number string) string {
	s := strings.TrimSpace(number)
	i := strings.LastIndexByte(s, '/')
	if i <= 0 {
		return ""
	}
	return strings.TrimSpace(s[:i])
}
