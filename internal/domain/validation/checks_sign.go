package validation

import (
	"strings"

	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

// sign verifica el Hash del documento contra la cadena de su serie. Si el documento anterior
// no está en el ficheiro y la firma no cuadra con hash anterior vacío, se avisa en lugar de
// fallar. Un Hash ausente siempre es error.
func (e *engine) sign(d document, state *ChainState) bool {
	if !e.family.signed || !e.cfg.SignValidation {
		return true
	}
	hash := strings.TrimSpace(d.hash())
	if hash == "" {
		e.fail(d.errs(), d, 0, ruleHash, "documento sin Hash")
		return false
	}
	if e.verifier == nil {
		return true
	}
	t := d.totals()
	if t == nil || !t.GrossTotal.Valid {
		e.fail(d.errs(), d, 0, ruleSignature, "no se puede verificar la firma sin GrossTotal")
		return false
	}

	prev := ""
	if state != nil {
		prev = state.PreviousHash(d.number())
	}
	f := signature.Fields{
		DocumentDate:    d.date(),
		SystemEntryDate: d.systemEntryDate(),
		DocumentNumber:  d.number(),
		GrossTotal:      t.GrossTotal.Decimal,
		PreviousHash:    prev,
	}
	if err := f.Validate(); err != nil {
		e.fail(d.errs(), d, 0, ruleSignature, "no se puede verificar la firma: %v", err)
		return false
	}
	match, err := e.verifier.VerifySignature(f, hash)
	if err != nil {
		e.fail(d.errs(), d, 0, ruleSignature, "error verificando la firma: %v", err)
		return false
	}
	if match {
		return true
	}
	if prev == "" && !saft.IsFirstInSeries(d.number()) {
		e.warn(d.warns(), d, 0, ruleSignature, "el documento anterior de la serie no está en el ficheiro; la firma no se puede comprobar")
		return true
	}
	e.fail(d.errs(), d, 0, ruleSignature, "el Hash no corresponde a la firma del documento")
	return false
}
