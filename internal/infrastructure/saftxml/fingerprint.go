package saftxml

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"github.com/ucarion/c14n"

	"github.com/jhoicas/saftpt-validator/internal/domain"
)

// Fingerprint SHA-256 (hex) de la forma canónica C14N del XML. Dos exportaciones con el mismo
// contenido y distinta serialización (orden de atributos, elementos vacíos, codificación) dan la
// misma huella.
func Fingerprint(raw []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = map[string]string{}
	dec.CharsetReader = charsetReader
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("%w: canonicalizar: %v", domain.ErrInvalidAuditFile, err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
