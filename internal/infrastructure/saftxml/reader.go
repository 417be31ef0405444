package saftxml

import "github.com/jhoicas/saftpt-validator/internal/domain/entity"

// Reader reúne huella, comprobación estructural y decodificación sobre el mismo XML.
type Reader struct {
	structure *StructureValidator
}

// NewReader crea el lector SAF-T (PT).
func NewReader() *Reader {
	return &Reader{structure: NewStructureValidator()}
}

func (r *Reader) Fingerprint(raw []byte) (string, error) { return Fingerprint(raw) }

func (r *Reader) Structure(raw []byte) ([]entity.Issue, error) { return r.structure.Validate(raw) }

func (r *Reader) Decode(raw []byte) (*entity.AuditFile, error) { return DecodeBytes(raw) }
