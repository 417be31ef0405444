package validation

import (
	"strings"
	"time"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

// shipment MovementStartTime y MovementEndTime, ShipFrom y ShipTo con morada completa y
// orden de las fechas de entrega. Los documentos de resumo (R) no exigen ShipFrom ni el
// orden de entregas; la guia global (GT) no exige ShipTo.
func (e *engine) shipment(d document) bool {
	s := d.shipping()
	status, sourceBilling := "", ""
	if st := d.status(); st != nil {
		status, sourceBilling = st.Status, st.SourceBilling
	}
	resume := status == saft.StatusResumo

	ok := true
	if s.start.IsZero() {
		e.fail(d.errs(), d, 0, ruleMovementStart, "MovementStartTime no declarado")
		ok = false
	} else {
		if !s.end.IsZero() && s.end.Before(s.start) {
			e.fail(d.errs(), d, 0, ruleMovementEnd, "MovementEndTime %s anterior a MovementStartTime %s",
				s.end.Format(time.DateTime), s.start.Format(time.DateTime))
			ok = false
		}
		if !d.date().IsZero() && s.start.Before(day(d.date())) {
			e.fail(d.errs(), d, 0, ruleMovementStart, "MovementStartTime %s anterior a la fecha del documento %s",
				s.start.Format(time.DateTime), d.date().Format(dateLayout))
			ok = false
		}
		sys := d.systemEntryDate()
		if sourceBilling == saft.SourceBillingProduced && !sys.IsZero() && s.start.Before(sys) {
			e.fail(d.errs(), d, 0, ruleMovementStart, "MovementStartTime %s anterior a SystemEntryDate %s",
				s.start.Format(time.DateTime), sys.Format(time.DateTime))
			ok = false
		}
	}

	if !resume {
		if s.shipFrom == nil {
			e.fail(d.errs(), d, 0, ruleShipFrom, "ShipFrom no declarado")
			ok = false
		} else {
			ok = e.shippingAddress(d, s.shipFrom, ruleShipFrom, "ShipFrom") && ok
		}
	}
	if d.docType() != saft.MovementTypeGlobal {
		if s.shipTo == nil {
			e.fail(d.errs(), d, 0, ruleShipTo, "ShipTo no declarado")
			ok = false
		} else {
			ok = e.shippingAddress(d, s.shipTo, ruleShipTo, "ShipTo") && ok
		}
	}

	if !resume && s.shipFrom != nil && s.shipTo != nil &&
		!s.shipFrom.DeliveryDate.IsZero() && !s.shipTo.DeliveryDate.IsZero() &&
		s.shipFrom.DeliveryDate.After(s.shipTo.DeliveryDate) {
		e.fail(d.errs(), d, 0, ruleDeliveryDate, "DeliveryDate de ShipFrom %s posterior a la de ShipTo %s",
			s.shipFrom.DeliveryDate.Format(dateLayout), s.shipTo.DeliveryDate.Format(dateLayout))
		ok = false
	}
	return ok
}

func (e *engine) shippingAddress(d document, p *entity.ShippingPoint, r rule, name string) bool {
	a := p.Address
	if a == nil {
		e.fail(d.errs(), d, 0, r, "%s sin Address", name)
		return false
	}
	if strings.TrimSpace(a.AddressDetail) == "" || strings.TrimSpace(a.City) == "" || strings.TrimSpace(a.Country) == "" {
		e.fail(d.errs(), d, 0, r, "%s: Address exige AddressDetail, City y Country", name)
		return false
	}
	return true
}
