package validation

import (
	"fmt"
	"time"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
)

// Option personaliza un validador.
type Option func(*engine)

// WithClock fija el reloj usado para las reglas que comparan contra la fecha actual
// (OrderDate). Por defecto time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *engine) {
		if now != nil {
			e.now = now
		}
	}
}

// engine algoritmo común a las cuatro familias, parametrizado por family.
type engine struct {
	family    *family
	audit     *entity.AuditFile
	cfg       Config
	verifier  signature.Verifier
	now       func() time.Time
	tableErrs *entity.ErrorMap
	valid     bool
}

func newEngine(f *family, audit *entity.AuditFile, cfg Config, verifier signature.Verifier, tableErrs *entity.ErrorMap, opts []Option) *engine {
	if tableErrs == nil {
		tableErrs = &entity.ErrorMap{}
	}
	e := &engine{
		family:    f,
		audit:     audit,
		cfg:       cfg,
		verifier:  verifier,
		now:       time.Now,
		tableErrs: tableErrs,
		valid:     true,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// IsValid false si alguna regla falló. Los avisos no cuentan.
func (e *engine) IsValid() bool { return e.valid }

// Config configuración con la que se creó el validador.
func (e *engine) Config() Config { return e.cfg }

func (e *engine) issue(r rule, doc document, line int, format string, args ...any) (entity.Code, entity.Issue) {
	code := e.family.code(r)
	number := ""
	if doc != nil {
		number = doc.number()
	}
	msg := fmt.Sprintf(format, args...)
	return code, entity.Issue{Code: code, Message: msg, Table: e.family.table, Document: number, Line: line}
}

// fail registra un error en el mapa de la entidad y en el ErrorRegister, y marca el
// validador como inválido.
func (e *engine) fail(target *entity.ErrorMap, doc document, line int, r rule, format string, args ...any) {
	code, is := e.issue(r, doc, line, format, args...)
	target.Add(code, is.Message)
	e.audit.ErrorRegister().AddError(is)
	e.valid = false
}

// warn registra un aviso. No cambia IsValid.
func (e *engine) warn(target *entity.ErrorMap, doc document, line int, r rule, format string, args ...any) {
	code, is := e.issue(r, doc, line, format, args...)
	target.Add(code, is.Message)
	e.audit.ErrorRegister().AddWarning(is)
}

func (e *engine) failTable(r rule, format string, args ...any) {
	e.fail(e.tableErrs, nil, 0, r, format, args...)
}

// walk recorre los documentos en orden de serie y secuencial aplicando todas las reglas de
// documento y acumulando los totales de la tabla en state.
func (e *engine) walk(docs []document, state *ChainState) {
	for _, d := range documentOrder(docs) {
		e.validateDocument(d, state)
	}
}

func (e *engine) validateDocument(d document, state *ChainState) {
	e.documentNumber(d, state)
	e.documentType(d)
	e.documentStatus(d)
	e.party(d)
	if e.family.legacyTypes != nil {
		e.outOfDateType(d)
	}
	e.dateAndSystemEntryDate(d, state)

	calc := entity.NewDocTotalCalc()
	e.lines(d, calc)
	for _, l := range d.lines() {
		if e.family.requireProduct {
			e.productCode(d, l)
		}
		e.tax(d, l)
		e.references(d, l)
		e.orderReferences(d, l)
		if e.family.sourceDocs {
			e.sourceDocumentID(d, l)
		}
	}
	e.totals(d, calc)
	if e.family.shipment {
		e.shipment(d)
	}
	e.sign(d, state)

	e.accumulate(d, calc, state)
	state.Record(d.number(), d.hash(), d.date(), d.systemEntryDate())
}

// accumulate suma el documento a los totales de la tabla salvo que su estado lo excluya.
func (e *engine) accumulate(d document, calc *entity.DocTotalCalc, state *ChainState) {
	state.Entries++
	if st := d.status(); st != nil && e.family.excluded[st.Status] {
		return
	}
	if calc.TotalDebit.Valid {
		state.TotalDebit = state.TotalDebit.Add(calc.TotalDebit.Decimal)
	}
	if calc.TotalCredit.Valid {
		state.TotalCredit = state.TotalCredit.Add(calc.TotalCredit.Decimal)
	}
	for _, l := range d.lines() {
		state.Lines++
		if l.Quantity.Valid {
			state.Quantity = state.Quantity.Add(l.Quantity.Decimal)
		}
	}
}
