package validation

import (
	"strings"
	"time"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

const dateLayout = "2006-01-02"

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// documentNumber formato "<tipo> <série>/<número>", prefijo igual al tipo y unicidad en la tabla.
func (e *engine) documentNumber(d document, state *ChainState) bool {
	number := strings.TrimSpace(d.number())
	if number == "" {
		e.fail(d.errs(), d, 0, ruleDocumentNumber, "número de documento vacío")
		return false
	}
	ok := true
	n, err := saft.ParseDocumentNumber(number)
	switch {
	case err != nil:
		e.fail(d.errs(), d, 0, ruleDocumentNumber, "número de documento %q no respeta el formato '<tipo> <série>/<número>'", number)
		ok = false
	case d.docType() != "" && n.Type != d.docType():
		e.fail(d.errs(), d, 0, ruleDocumentNumber, "el prefijo %q no coincide con el tipo %q", n.Type, d.docType())
		ok = false
	}
	if state != nil && !state.markSeen(number) {
		e.fail(d.errs(), d, 0, ruleDocumentNumber, "número de documento %q duplicado", number)
		ok = false
	}
	return ok
}

// documentType tipo declarado y admitido por la familia.
func (e *engine) documentType(d document) bool {
	t := d.docType()
	if t == "" {
		e.fail(d.errs(), d, 0, ruleDocumentType, "tipo de documento no declarado")
		return false
	}
	if !e.family.types[t] {
		e.fail(d.errs(), d, 0, ruleDocumentType, "tipo de documento %q no admitido", t)
		return false
	}
	return true
}

// documentStatus estado presente y admitido; N exige fecha de estado no anterior a la del
// documento y A exige motivo.
func (e *engine) documentStatus(d document) bool {
	st := d.status()
	if st == nil || *st == (entity.DocumentStatus{}) {
		e.fail(d.errs(), d, 0, ruleDocumentStatus, "DocumentStatus no declarado")
		return false
	}
	ok := true
	if st.Status == "" || !e.family.statuses[st.Status] {
		e.fail(d.errs(), d, 0, ruleStatus, "estado %q no admitido", st.Status)
		ok = false
	}
	if st.SourceBilling != "" && !saft.ValidSourceBilling[st.SourceBilling] {
		e.fail(d.errs(), d, 0, ruleStatus, "origen %q no admitido", st.SourceBilling)
		ok = false
	}
	switch st.Status {
	case saft.StatusNormal:
		switch {
		case st.StatusDate.IsZero():
			e.fail(d.errs(), d, 0, ruleStatusDate, "documento en estado N sin fecha de estado")
			ok = false
		case !d.date().IsZero() && st.StatusDate.Before(day(d.date())):
			e.fail(d.errs(), d, 0, ruleStatusDate, "fecha de estado %s anterior a la fecha del documento %s",
				st.StatusDate.Format(time.DateTime), d.date().Format(dateLayout))
			ok = false
		}
	case saft.StatusAnulado:
		if strings.TrimSpace(st.Reason) == "" {
			e.fail(d.errs(), d, 0, ruleReason, "documento anulado sin motivo")
			ok = false
		}
	}
	return ok
}

// customerID cliente obligatorio y existente en MasterFiles.
func (e *engine) customerID(d document) bool {
	id := strings.TrimSpace(d.customerID())
	if id == "" {
		e.fail(d.errs(), d, 0, ruleCustomerID, "CustomerID no declarado")
		return false
	}
	if _, found := e.audit.MasterFiles.Customer(id); !found {
		e.fail(d.errs(), d, 0, ruleCustomerID, "CustomerID %q no existe en MasterFiles", id)
		return false
	}
	return true
}

// supplierID fornecedor obligatorio y existente en MasterFiles.
func (e *engine) supplierID(d document) bool {
	id := strings.TrimSpace(d.supplierID())
	if id == "" {
		e.fail(d.errs(), d, 0, ruleSupplierID, "SupplierID no declarado")
		return false
	}
	if _, found := e.audit.MasterFiles.Supplier(id); !found {
		e.fail(d.errs(), d, 0, ruleSupplierID, "SupplierID %q no existe en MasterFiles", id)
		return false
	}
	return true
}

// customerOrSupplierID exactamente uno de los dos.
func (e *engine) customerOrSupplierID(d document) bool {
	c, s := strings.TrimSpace(d.customerID()), strings.TrimSpace(d.supplierID())
	switch {
	case c == "" && s == "":
		e.fail(d.errs(), d, 0, ruleCustomerID, "el documento debe declarar CustomerID o SupplierID")
		return false
	case c != "" && s != "":
		e.fail(d.errs(), d, 0, ruleCustomerID, "el documento declara CustomerID y SupplierID a la vez")
		return false
	case c != "":
		return e.customerID(d)
	default:
		return e.supplierID(d)
	}
}

func (e *engine) party(d document) bool {
	switch e.family.partyFor(d.docType()) {
	case partySupplier:
		return e.supplierID(d)
	case partyEither:
		return e.customerOrSupplierID(d)
	default:
		return e.customerID(d)
	}
}

// outOfDateType tipos retirados solo valen hasta la fecha de corte.
func (e *engine) outOfDateType(d document) bool {
	t := d.docType()
	if !e.family.legacyTypes[t] || d.date().IsZero() {
		return true
	}
	if day(d.date()).After(e.family.legacyCutoff) {
		e.fail(d.errs(), d, 0, ruleOutOfDateType, "tipo %q solo admitido hasta %s; documento de %s",
			t, e.family.legacyCutoff.Format(dateLayout), d.date().Format(dateLayout))
		return false
	}
	return true
}

// dateAndSystemEntryDate ambas fechas dentro del período de la cabecera y no anteriores a las
// del documento anterior de la misma serie.
func (e *engine) dateAndSystemEntryDate(d document, state *ChainState) bool {
	h := e.audit.Header
	if h.StartDate.IsZero() || h.EndDate.IsZero() {
		e.fail(d.errs(), d, 0, ruleHeaderDates, "cabecera sin StartDate o EndDate; no se pueden validar las fechas")
		return false
	}
	start, end := day(h.StartDate), day(h.EndDate)
	outside := func(t time.Time) bool {
		t = day(t)
		return t.Before(start) || t.After(end)
	}

	ok := true
	date, sys := d.date(), d.systemEntryDate()
	switch {
	case date.IsZero():
		e.fail(d.errs(), d, 0, ruleDate, "fecha del documento no declarada")
		ok = false
	case outside(date):
		e.fail(d.errs(), d, 0, ruleDate, "fecha %s fuera del período %s a %s",
			date.Format(dateLayout), start.Format(dateLayout), end.Format(dateLayout))
		ok = false
	}
	switch {
	case sys.IsZero():
		e.fail(d.errs(), d, 0, ruleSystemEntryDate, "SystemEntryDate no declarada")
		ok = false
	case outside(sys):
		e.fail(d.errs(), d, 0, ruleSystemEntryDate, "SystemEntryDate %s fuera del período %s a %s",
			sys.Format(time.DateTime), start.Format(dateLayout), end.Format(dateLayout))
		ok = false
	}

	if state == nil {
		return ok
	}
	lastDate, lastSys, found := state.Last(d.number())
	if !found {
		return ok
	}
	if !date.IsZero() && !lastDate.IsZero() && date.Before(lastDate) {
		e.fail(d.errs(), d, 0, ruleDate, "fecha %s anterior a la del documento anterior de la serie (%s)",
			date.Format(dateLayout), lastDate.Format(dateLayout))
		ok = false
	}
	if !sys.IsZero() && !lastSys.IsZero() && sys.Before(lastSys) {
		e.fail(d.errs(), d, 0, ruleSystemEntryDate, "SystemEntryDate %s anterior a la del documento anterior de la serie (%s)",
			sys.Format(time.DateTime), lastSys.Format(time.DateTime))
		ok = false
	}
	return ok
}
